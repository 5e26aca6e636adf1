package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de validação (2000-2999)
	ErrInvalidRequest = "VAL_001" // Requisição inválida
	ErrUnknownChart   = "VAL_004" // Gráfico desconhecido

	// Erros da planilha de vendas (3000-3999)
	ErrSchema = "DATA_001" // Planilha, aba ou coluna ausente
	ErrFormat = "DATA_002" // Valor de célula inválido

	// Erros de roteamento (4000-4999)
	ErrNotFound         = "HTTP_404" // Rota não encontrada
	ErrMethodNotAllowed = "HTTP_405" // Método não suportado

	// Erros do servidor (5000-5999)
	ErrInternalServer = "SRV_001" // Erro interno do servidor
	ErrUnavailable    = "SRV_005" // Requisição cancelada ou expirada
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:   http.StatusBadRequest,
	ErrUnknownChart:     http.StatusNotFound,
	ErrSchema:           http.StatusInternalServerError,
	ErrFormat:           http.StatusInternalServerError,
	ErrNotFound:         http.StatusNotFound,
	ErrMethodNotAllowed: http.StatusMethodNotAllowed,
	ErrInternalServer:   http.StatusInternalServerError,
	ErrUnavailable:      http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP de um código de erro
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	_ = json.NewEncoder(w).Encode(apiErr)
}
