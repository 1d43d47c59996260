package repository

import (
	"context"

	"github.com/seu-usuario/controle-estoque/internal/domain/entity"
)

// RetiradaRepository define o porto de acesso às retiradas de estoque.
type RetiradaRepository interface {
	List(ctx context.Context) ([]entity.Retirada, error)
	Create(ctx context.Context, r *entity.Retirada) error
	Update(ctx context.Context, r *entity.Retirada) error
	Delete(ctx context.Context, id int64) error
}
