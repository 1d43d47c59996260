package entity

// Produto representa um produto do estoque. FornecedorID é referência fraca:
// resolvida por lookup na hora de exibir, sem integridade referencial no cliente.
type Produto struct {
	ID           int64  `json:"id"`
	Nome         string `json:"nome" validate:"required"`
	Marca        string `json:"marca"`
	Categoria    string `json:"categoria" validate:"required"`
	FornecedorID int64  `json:"fornecedor_id" validate:"required"`
	Picture      string `json:"picture"` // URL da foto; vazio usa imagem padrão na tela
}
