package entity

// Retirada registra a saída de produtos do estoque.
type Retirada struct {
	ID           int64  `json:"id"`
	ProdutoID    int64  `json:"produto_id" validate:"required"`
	Quantidade   int    `json:"quantidade" validate:"required"`
	TipoRetirada string `json:"tipo_retirada" validate:"required"` // texto livre (venda, perda, ajuste...)
	DataRetirada string `json:"data_retirada" validate:"required"` // ISO YYYY-MM-DD
	NumeroLote   string `json:"numero_lote" validate:"required"`
}
