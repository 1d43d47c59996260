package list

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/seu-usuario/controle-estoque/internal/domain"
)

// FalhaExclusao resultado de um DELETE individual que falhou.
type FalhaExclusao struct {
	ID  int64
	Err error
}

// ResultadoLote agrega o resultado por item de uma exclusão em lote. O lote
// não é tudo-ou-nada: cada ID tem seu próprio desfecho, e a tela informa
// "N de M itens excluídos" em vez de uma falha genérica.
type ResultadoLote struct {
	Excluidos []int64
	Falhas    []FalhaExclusao
}

// Completo informa se todos os itens do lote foram excluídos.
func (r ResultadoLote) Completo() bool {
	return len(r.Falhas) == 0
}

// Resumo devolve a mensagem de resultado exibida na notificação.
func (r ResultadoLote) Resumo() string {
	total := len(r.Excluidos) + len(r.Falhas)
	if r.Completo() {
		return fmt.Sprintf("%d itens excluídos com sucesso", total)
	}
	return fmt.Sprintf("%d de %d itens excluídos; %d falharam",
		len(r.Excluidos), total, len(r.Falhas))
}

// ConfirmDelete exclui os itens selecionados, um DELETE por ID, com no máximo
// maxExclusoesSimultaneas requisições em voo ao mesmo tempo. Ao final recarrega
// a coleção; a reconciliação da seleção remove os IDs que sumiram e mantém
// selecionados os que falharam e continuam na tabela.
func (c *Controller[T]) ConfirmDelete(ctx context.Context) (ResultadoLote, error) {
	ids := c.Selecionados()
	if len(ids) == 0 {
		return ResultadoLote{}, domain.ErrSelecaoVazia
	}

	c.mu.Lock()
	c.confirmando = false
	c.mu.Unlock()

	sem := semaphore.NewWeighted(maxExclusoesSimultaneas)
	erros := make([]error, len(ids))
	var wg sync.WaitGroup
	for i, id := range ids {
		if err := sem.Acquire(ctx, 1); err != nil {
			erros[i] = err
			continue
		}
		wg.Add(1)
		go func(i int, id int64) {
			defer wg.Done()
			defer sem.Release(1)
			erros[i] = c.adapter.Delete(ctx, id)
		}(i, id)
	}
	wg.Wait()

	var resultado ResultadoLote
	for i, id := range ids {
		if erros[i] != nil {
			resultado.Falhas = append(resultado.Falhas, FalhaExclusao{ID: id, Err: erros[i]})
			c.log.Warn().Err(erros[i]).Int64("id", id).
				Str("recurso", c.adapter.Recurso).Msg("falha ao excluir item")
			continue
		}
		resultado.Excluidos = append(resultado.Excluidos, id)
	}

	c.log.Info().
		Str("recurso", c.adapter.Recurso).
		Int("excluidos", len(resultado.Excluidos)).
		Int("falhas", len(resultado.Falhas)).
		Msg("exclusão em lote concluída")

	if err := c.Load(ctx); err != nil {
		return resultado, err
	}
	return resultado, nil
}
