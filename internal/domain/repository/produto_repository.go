package repository

import (
	"context"

	"github.com/seu-usuario/controle-estoque/internal/domain/entity"
)

// ProdutoRepository define o porto de acesso aos produtos remotos.
// GetByID sustenta o auto-preenchimento do fornecedor no cadastro de entradas.
type ProdutoRepository interface {
	List(ctx context.Context) ([]entity.Produto, error)
	GetByID(ctx context.Context, id int64) (*entity.Produto, error)
	Create(ctx context.Context, p *entity.Produto) error
	Update(ctx context.Context, p *entity.Produto) error
	Delete(ctx context.Context, id int64) error
}
