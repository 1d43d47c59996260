package entity

// Fornecedor representa um fornecedor cadastrado. Espelha o registro remoto;
// a API é a fonte de verdade, o cliente nunca mantém cópia durável.
type Fornecedor struct {
	ID              int64  `json:"id"`
	Nome            string `json:"nome" validate:"required"`
	CNPJ            string `json:"cnpj" validate:"required"`
	Telefone        string `json:"telefone"`
	Celular         string `json:"celular" validate:"required"`
	Email           string `json:"email" validate:"required"`
	Site            string `json:"site"`
	CEP             string `json:"cep" validate:"required"`
	Endereco        string `json:"endereco" validate:"required"`
	NumeroEndereco  string `json:"numero_endereco"`
	Bairro          string `json:"bairro" validate:"required"`
	Cidade          string `json:"cidade" validate:"required"`
	Estado          string `json:"estado" validate:"required"`
	Banco           string `json:"banco"`
	TipoConta       string `json:"tipo_conta"`
	Conta           string `json:"conta"`
	AgenciaBancaria string `json:"agencia_bancaria"`
}
