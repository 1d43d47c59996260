package api

import (
	"context"

	"github.com/seu-usuario/controle-estoque/internal/domain/entity"
	"github.com/seu-usuario/controle-estoque/internal/domain/repository"
)

var _ repository.MovimentacaoRepository = (*MovimentacaoRepo)(nil)

// MovimentacaoRepo leitura do agregado de movimentações (somente GET).
type MovimentacaoRepo struct {
	c *Client
}

// NewMovimentacaoRepository constrói o adaptador remoto de movimentações.
func NewMovimentacaoRepository(c *Client) *MovimentacaoRepo {
	return &MovimentacaoRepo{c: c}
}

// List busca o agregado por produto calculado no servidor.
func (r *MovimentacaoRepo) List(ctx context.Context) ([]entity.Movimentacao, error) {
	return getList[entity.Movimentacao](ctx, r.c, "/movimentacoes")
}
