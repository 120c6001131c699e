package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro padronizados retornados para o front-end
const (
	// Erros de autenticação (AUTH_*)
	ErrInvalidCredentials    = "AUTH_001" // Credenciais inválidas
	ErrUserDisabled          = "AUTH_002" // Usuário desativado
	ErrUserNotFound          = "AUTH_003" // Usuário não encontrado
	ErrInvalidToken          = "AUTH_004" // Token inválido
	ErrExpiredToken          = "AUTH_005" // Token expirado
	ErrInsufficientPrivilege = "AUTH_006" // Privilégios insuficientes
	ErrUserAlreadyExists     = "AUTH_007" // Usuário já existe

	// Erros de validação (VAL_*)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros de catálogo e precificação (PRD_*)
	ErrProductNotFound    = "PRD_001" // Produto não encontrado
	ErrIngredientNotFound = "PRD_002" // Insumo não encontrado
	ErrChannelNotFound    = "PRD_003" // Canal de venda não encontrado
	ErrCostNotFound       = "PRD_004" // Lançamento de custo não encontrado

	// Erros de importação de vendas (IMP_*)
	ErrImportEmpty    = "IMP_001" // Nenhuma linha aproveitável no texto colado
	ErrImportFailed   = "IMP_002" // Falha inesperada ao processar a importação
	ErrBatchNotFound  = "IMP_003" // Lote de importação não encontrado
	ErrNothingToWrite = "IMP_004" // Nenhum item selecionado para gravação

	// Erros do servidor (SRV_*)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrUserDisabled:          http.StatusForbidden,
	ErrUserNotFound:          http.StatusNotFound,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrUserAlreadyExists:     http.StatusBadRequest,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrProductNotFound:       http.StatusNotFound,
	ErrIngredientNotFound:    http.StatusNotFound,
	ErrChannelNotFound:       http.StatusNotFound,
	ErrCostNotFound:          http.StatusNotFound,
	ErrImportEmpty:           http.StatusBadRequest,
	ErrImportFailed:          http.StatusInternalServerError,
	ErrBatchNotFound:         http.StatusNotFound,
	ErrNothingToWrite:        http.StatusBadRequest,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
