package repository

import (
	"context"

	"github.com/seu-usuario/controle-estoque/internal/domain/entity"
)

// MovimentacaoRepository define o porto de leitura das movimentações.
// O agregado é calculado pelo servidor; não há escrita.
type MovimentacaoRepository interface {
	List(ctx context.Context) ([]entity.Movimentacao, error)
}
