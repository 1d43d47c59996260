// Package report implementa o relatório de movimentações de estoque: a
// listagem agregada por produto calculada pelo servidor e a exportação em PDF.
package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/seu-usuario/controle-estoque/internal/domain/entity"
	"github.com/seu-usuario/controle-estoque/internal/domain/repository"
	"github.com/seu-usuario/controle-estoque/pkg/logger"
)

// GeradorPDF gera o documento do relatório de movimentações.
type GeradorPDF interface {
	GerarRelatorioMovimentacoes(ctx context.Context, movimentacoes []entity.Movimentacao) ([]byte, error)
}

// Relatorio tela de movimentações: dados agregados somente leitura.
type Relatorio struct {
	repo    repository.MovimentacaoRepository
	gerador GeradorPDF
	dir     string
	log     *logger.Logger

	mu    sync.RWMutex
	itens []entity.Movimentacao
}

// NewRelatorio constrói a tela de movimentações. dir é o destino dos PDFs.
func NewRelatorio(repo repository.MovimentacaoRepository, gerador GeradorPDF, dir string, log *logger.Logger) *Relatorio {
	return &Relatorio{repo: repo, gerador: gerador, dir: dir, log: log}
}

// Load busca a listagem agregada no servidor. Em caso de falha a listagem
// anterior permanece visível.
func (r *Relatorio) Load(ctx context.Context) error {
	itens, err := r.repo.List(ctx)
	if err != nil {
		r.log.Error().Err(err).Msg("falha ao carregar movimentações")
		return err
	}

	r.mu.Lock()
	r.itens = itens
	r.mu.Unlock()

	r.log.Debug().Int("total", len(itens)).Msg("movimentações carregadas")
	return nil
}

// Itens devolve a listagem carregada.
func (r *Relatorio) Itens() []entity.Movimentacao {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]entity.Movimentacao(nil), r.itens...)
}

// Exportar gera o PDF da listagem carregada e o grava no diretório de
// relatórios com nome datado. Devolve o caminho do arquivo gravado.
func (r *Relatorio) Exportar(ctx context.Context) (string, error) {
	itens := r.Itens()

	doc, err := r.gerador.GerarRelatorioMovimentacoes(ctx, itens)
	if err != nil {
		r.log.Error().Err(err).Msg("falha ao gerar PDF de movimentações")
		return "", err
	}

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", fmt.Errorf("relatorio: criar diretório %s: %w", r.dir, err)
	}

	nome := fmt.Sprintf("movimentacoes-%s.pdf", time.Now().Format("2006-01-02-150405"))
	caminho := filepath.Join(r.dir, nome)
	if err := os.WriteFile(caminho, doc, 0o644); err != nil {
		return "", fmt.Errorf("relatorio: gravar %s: %w", caminho, err)
	}

	r.log.Info().Str("arquivo", caminho).Int("itens", len(itens)).Msg("relatório exportado")
	return caminho, nil
}
