package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/seu-usuario/controle-estoque/internal/domain/entity"
	"github.com/seu-usuario/controle-estoque/internal/domain/repository"
)

var _ repository.EntradaRepository = (*EntradaRepo)(nil)

// EntradaRepo implementação do porto EntradaRepository sobre HTTP.
type EntradaRepo struct {
	c *Client
}

// NewEntradaRepository constrói o adaptador remoto de entradas.
func NewEntradaRepository(c *Client) *EntradaRepo {
	return &EntradaRepo{c: c}
}

// List busca todas as entradas.
func (r *EntradaRepo) List(ctx context.Context) ([]entity.Entrada, error) {
	return getList[entity.Entrada](ctx, r.c, "/entradas")
}

// Create registra uma entrada de estoque.
func (r *EntradaRepo) Create(ctx context.Context, e *entity.Entrada) error {
	return r.c.do(ctx, http.MethodPost, "/entradas", e, e)
}

// Update atualiza uma entrada.
func (r *EntradaRepo) Update(ctx context.Context, e *entity.Entrada) error {
	return r.c.do(ctx, http.MethodPut, fmt.Sprintf("/entradas/%d", e.ID), e, e)
}

// Delete remove uma entrada.
func (r *EntradaRepo) Delete(ctx context.Context, id int64) error {
	return r.c.do(ctx, http.MethodDelete, fmt.Sprintf("/entradas/%d", id), nil, nil)
}
