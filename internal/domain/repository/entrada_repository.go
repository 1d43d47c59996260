package repository

import (
	"context"

	"github.com/seu-usuario/controle-estoque/internal/domain/entity"
)

// EntradaRepository define o porto de acesso às entradas de estoque.
type EntradaRepository interface {
	List(ctx context.Context) ([]entity.Entrada, error)
	Create(ctx context.Context, e *entity.Entrada) error
	Update(ctx context.Context, e *entity.Entrada) error
	Delete(ctx context.Context, id int64) error
}
