package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mercus/internal/dto"
	"mercus/internal/middleware"
	"mercus/internal/service"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Bootstrap creates the first admin account on an empty installation.
func (h *AuthHandler) Bootstrap(c *gin.Context) {
	var req dto.BootstrapRequest
	if !bindAndValidate(c, &req) {
		return
	}
	user, err := h.svc.Bootstrap(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusCreated, user)
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.svc.Me(c.Request.Context(), middleware.GetClaims(c))
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, user)
}
