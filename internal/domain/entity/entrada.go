package entity

import "github.com/shopspring/decimal"

// Entrada registra a entrada de produtos no estoque.
// FornecedorID é derivado do produto escolhido no cadastro (auto-preenchido).
type Entrada struct {
	ID           int64           `json:"id"`
	ProdutoID    int64           `json:"produto_id" validate:"required"`
	Quantidade   int             `json:"quantidade" validate:"required"` // sempre positiva
	FornecedorID int64           `json:"fornecedor_id" validate:"required"`
	DataEntrada  string          `json:"data_entrada" validate:"required"` // ISO YYYY-MM-DD; exibida como DD/MM/YYYY
	NumeroLote   string          `json:"numero_lote" validate:"required"`
	PrecoCompra  decimal.Decimal `json:"preco_compra" validate:"required"`
}
