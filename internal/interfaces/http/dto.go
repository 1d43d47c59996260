package http

// ErrorResponse corpo padrão de erro da API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func erroNaoEncontrado(recurso string) ErrorResponse {
	return ErrorResponse{Code: "NOT_FOUND", Message: recurso + " não encontrado"}
}

var (
	erroCorpoInvalido = ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"}
	erroIDInvalido    = ErrorResponse{Code: "INVALID_ID", Message: "id inválido"}
)
