package entity

// Movimentacao é o agregado por produto calculado pelo servidor a partir de
// entradas e retiradas. Somente leitura: nunca é criado ou editado no cliente.
type Movimentacao struct {
	ProdutoID              int64  `json:"produto_id"`
	Nome                   string `json:"nome"`
	DataEntrada            string `json:"data_entrada"`  // última entrada (ISO, pode ser vazia)
	DataRetirada           string `json:"data_retirada"` // última retirada (ISO, pode ser vazia)
	QuantidadeTotalEntrada int    `json:"quantidade_total_entrada"`
	QuantidadeTotalSaida   int    `json:"quantidade_total_saida"`
	QuantidadeEmEstoque    int    `json:"quantidade_em_estoque"`
}
