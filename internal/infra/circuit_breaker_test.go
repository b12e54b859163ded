package infra

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var errUpstream = errors.New("upstream down")

func failing() error { return errUpstream }
func succeeding() error { return nil }

func TestCircuitBreakerOpensAfterThreshold(t *testing.T) {
	cb := NewCircuitBreaker(CircuitBreakerConfig{FailureThreshold: 3, SuccessThreshold: 1, OpenTimeout: time.Minute})

	for i := 0; i < 3; i++ {
		assert.ErrorIs(t, cb.Execute(failing), errUpstream)
	}
	assert.Equal(t, CBOpen, cb.State())
	assert.ErrorIs(t, cb.Execute(succeeding), ErrCircuitOpen)
}

func TestCircuitBreakerRecoversThroughHalfOpen(t *testing.T) {
	cb := NewCircuitBreaker(CircuitBreakerConfig{FailureThreshold: 1, SuccessThreshold: 2, OpenTimeout: 10 * time.Millisecond})

	assert.ErrorIs(t, cb.Execute(failing), errUpstream)
	assert.Equal(t, CBOpen, cb.State())

	time.Sleep(15 * time.Millisecond)
	assert.Equal(t, CBHalfOpen, cb.State())

	assert.NoError(t, cb.Execute(succeeding))
	assert.Equal(t, CBHalfOpen, cb.State())
	assert.NoError(t, cb.Execute(succeeding))
	assert.Equal(t, CBClosed, cb.State())
}

func TestCircuitBreakerFailedProbeReopens(t *testing.T) {
	cb := NewCircuitBreaker(CircuitBreakerConfig{FailureThreshold: 1, SuccessThreshold: 1, OpenTimeout: 10 * time.Millisecond})

	assert.ErrorIs(t, cb.Execute(failing), errUpstream)
	time.Sleep(15 * time.Millisecond)
	assert.Equal(t, CBHalfOpen, cb.State())

	assert.ErrorIs(t, cb.Execute(failing), errUpstream)
	assert.Equal(t, CBOpen, cb.State())
}

func TestCircuitBreakerClosedResetsFailureCountOnSuccess(t *testing.T) {
	cb := NewCircuitBreaker(CircuitBreakerConfig{FailureThreshold: 2, SuccessThreshold: 1, OpenTimeout: time.Minute})

	assert.ErrorIs(t, cb.Execute(failing), errUpstream)
	assert.NoError(t, cb.Execute(succeeding))
	assert.ErrorIs(t, cb.Execute(failing), errUpstream)
	// one success in between, so still below the threshold
	assert.Equal(t, CBClosed, cb.State())
}
