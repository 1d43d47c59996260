package repository

import (
	"context"

	"github.com/seu-usuario/controle-estoque/internal/domain/entity"
)

// FornecedorRepository define o porto de acesso aos fornecedores remotos (DIP).
// List devolve a coleção inteira: a API não pagina.
type FornecedorRepository interface {
	List(ctx context.Context) ([]entity.Fornecedor, error)
	Create(ctx context.Context, f *entity.Fornecedor) error
	Update(ctx context.Context, f *entity.Fornecedor) error
	Delete(ctx context.Context, id int64) error
}
