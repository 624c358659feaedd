package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("não autorizado")
	ErrInvalidCredentials = errors.New("usuário ou senha inválidos")
	ErrLastItem           = errors.New("o mapa precisa de pelo menos um item")
	ErrLastSupplier       = errors.New("o mapa precisa de pelo menos um fornecedor")
	ErrConfirmationNeeded = errors.New("exclusão permanente exige confirmação")
)
