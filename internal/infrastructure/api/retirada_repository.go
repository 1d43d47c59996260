package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/seu-usuario/controle-estoque/internal/domain/entity"
	"github.com/seu-usuario/controle-estoque/internal/domain/repository"
)

var _ repository.RetiradaRepository = (*RetiradaRepo)(nil)

// RetiradaRepo implementação do porto RetiradaRepository sobre HTTP.
type RetiradaRepo struct {
	c *Client
}

// NewRetiradaRepository constrói o adaptador remoto de retiradas.
func NewRetiradaRepository(c *Client) *RetiradaRepo {
	return &RetiradaRepo{c: c}
}

// List busca todas as retiradas.
func (r *RetiradaRepo) List(ctx context.Context) ([]entity.Retirada, error) {
	return getList[entity.Retirada](ctx, r.c, "/retiradas")
}

// Create registra uma retirada de estoque.
func (r *RetiradaRepo) Create(ctx context.Context, ret *entity.Retirada) error {
	return r.c.do(ctx, http.MethodPost, "/retiradas", ret, ret)
}

// Update atualiza uma retirada.
func (r *RetiradaRepo) Update(ctx context.Context, ret *entity.Retirada) error {
	return r.c.do(ctx, http.MethodPut, fmt.Sprintf("/retiradas/%d", ret.ID), ret, ret)
}

// Delete remove uma retirada.
func (r *RetiradaRepo) Delete(ctx context.Context, id int64) error {
	return r.c.do(ctx, http.MethodDelete, fmt.Sprintf("/retiradas/%d", id), nil, nil)
}
