package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/seu-usuario/controle-estoque/internal/domain/entity"
	"github.com/seu-usuario/controle-estoque/internal/domain/repository"
)

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

// ProdutoRepo implementação do porto ProdutoRepository sobre HTTP.
type ProdutoRepo struct {
	c *Client
}

// NewProdutoRepository constrói o adaptador remoto de produtos.
func NewProdutoRepository(c *Client) *ProdutoRepo {
	return &ProdutoRepo{c: c}
}

// List busca todos os produtos.
func (r *ProdutoRepo) List(ctx context.Context) ([]entity.Produto, error) {
	return getList[entity.Produto](ctx, r.c, "/produtos")
}

// GetByID busca um produto pelo ID. Usado pelo cadastro de entradas para
// derivar o fornecedor do produto escolhido.
func (r *ProdutoRepo) GetByID(ctx context.Context, id int64) (*entity.Produto, error) {
	var p entity.Produto
	if err := r.c.do(ctx, http.MethodGet, fmt.Sprintf("/produtos/%d", id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create cadastra um produto.
func (r *ProdutoRepo) Create(ctx context.Context, p *entity.Produto) error {
	return r.c.do(ctx, http.MethodPost, "/produtos", p, p)
}

// Update atualiza um produto.
func (r *ProdutoRepo) Update(ctx context.Context, p *entity.Produto) error {
	return r.c.do(ctx, http.MethodPut, fmt.Sprintf("/produtos/%d", p.ID), p, p)
}

// Delete remove um produto.
func (r *ProdutoRepo) Delete(ctx context.Context, id int64) error {
	return r.c.do(ctx, http.MethodDelete, fmt.Sprintf("/produtos/%d", id), nil, nil)
}
