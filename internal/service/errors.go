package service

import "errors"

// Sentinel errors returned by services. Handlers map these onto the HTTP
// error taxonomy; anything else becomes a 500 with a generic message.
var (
	ErrNaoEncontrado         = errors.New("registro nao encontrado")
	ErrAcessoNegado          = errors.New("acesso negado")
	ErrCredenciaisInvalidas  = errors.New("credenciais invalidas")
	ErrSistemaJaInicializado = errors.New("sistema ja inicializado")

	ErrCNPJJaCadastrado   = errors.New("cnpj ja cadastrado")
	ErrCodigoJaCadastrado = errors.New("codigo de produto ja cadastrado")
	ErrEmailJaCadastrado  = errors.New("email ja cadastrado")

	ErrClienteInativo      = errors.New("cliente inativo")
	ErrQuantidadeInvalida  = errors.New("quantidade deve ser maior que zero")
	ErrProdutoInativo      = errors.New("produto inativo")
	ErrEstoqueInsuficiente = errors.New("estoque insuficiente")
	ErrStatusInvalido      = errors.New("status invalido")

	ErrVendedorComPedidos = errors.New("vendedor possui pedidos e nao pode ser excluido")
)
