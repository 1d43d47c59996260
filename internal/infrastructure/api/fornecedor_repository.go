package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/seu-usuario/controle-estoque/internal/domain/entity"
	"github.com/seu-usuario/controle-estoque/internal/domain/repository"
)

var _ repository.FornecedorRepository = (*FornecedorRepo)(nil)

// FornecedorRepo implementação do porto FornecedorRepository sobre HTTP.
type FornecedorRepo struct {
	c *Client
}

// NewFornecedorRepository constrói o adaptador remoto de fornecedores.
func NewFornecedorRepository(c *Client) *FornecedorRepo {
	return &FornecedorRepo{c: c}
}

// List busca todos os fornecedores.
func (r *FornecedorRepo) List(ctx context.Context) ([]entity.Fornecedor, error) {
	return getList[entity.Fornecedor](ctx, r.c, "/fornecedores")
}

// Create cadastra um fornecedor; o servidor atribui o ID e o devolve no corpo.
func (r *FornecedorRepo) Create(ctx context.Context, f *entity.Fornecedor) error {
	return r.c.do(ctx, http.MethodPost, "/fornecedores", f, f)
}

// Update atualiza o fornecedor identificado pelo ID do próprio registro.
func (r *FornecedorRepo) Update(ctx context.Context, f *entity.Fornecedor) error {
	return r.c.do(ctx, http.MethodPut, fmt.Sprintf("/fornecedores/%d", f.ID), f, f)
}

// Delete remove um fornecedor. Deletar um ID já removido devolve erro (404),
// nunca sucesso silencioso.
func (r *FornecedorRepo) Delete(ctx context.Context, id int64) error {
	return r.c.do(ctx, http.MethodDelete, fmt.Sprintf("/fornecedores/%d", id), nil, nil)
}
