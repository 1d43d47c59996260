package report

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-usuario/controle-estoque/internal/domain/entity"
	"github.com/seu-usuario/controle-estoque/pkg/logger"
)

type movimentacoesFalsas struct {
	itens []entity.Movimentacao
	err   error
}

func (m *movimentacoesFalsas) List(ctx context.Context) ([]entity.Movimentacao, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.itens, nil
}

type geradorFalso struct {
	doc      []byte
	err      error
	recebido []entity.Movimentacao
}

func (g *geradorFalso) GerarRelatorioMovimentacoes(ctx context.Context, movimentacoes []entity.Movimentacao) ([]byte, error) {
	g.recebido = movimentacoes
	if g.err != nil {
		return nil, g.err
	}
	return g.doc, nil
}

func exemplo() []entity.Movimentacao {
	return []entity.Movimentacao{
		{ProdutoID: 10, Nome: "Queijo Minas", QuantidadeTotalEntrada: 12, QuantidadeTotalSaida: 4, QuantidadeEmEstoque: 8},
		{ProdutoID: 11, Nome: "Leite Integral", QuantidadeTotalEntrada: 30, QuantidadeTotalSaida: 30, QuantidadeEmEstoque: 0},
	}
}

func TestLoad_CarregaListagem(t *testing.T) {
	rel := NewRelatorio(&movimentacoesFalsas{itens: exemplo()}, &geradorFalso{}, t.TempDir(), logger.Nop())

	require.NoError(t, rel.Load(context.Background()))

	itens := rel.Itens()
	require.Len(t, itens, 2)
	assert.Equal(t, "Queijo Minas", itens[0].Nome)
	assert.Equal(t, 8, itens[0].QuantidadeEmEstoque)
}

func TestLoad_FalhaMantemListagemAnterior(t *testing.T) {
	repo := &movimentacoesFalsas{itens: exemplo()}
	rel := NewRelatorio(repo, &geradorFalso{}, t.TempDir(), logger.Nop())
	require.NoError(t, rel.Load(context.Background()))

	repo.err = errors.New("timeout")
	require.Error(t, rel.Load(context.Background()))

	assert.Len(t, rel.Itens(), 2, "listagem anterior permanece")
}

func TestExportar_GravaPDFNoDiretorio(t *testing.T) {
	dir := t.TempDir()
	gerador := &geradorFalso{doc: []byte("%PDF-1.7 conteudo")}
	rel := NewRelatorio(&movimentacoesFalsas{itens: exemplo()}, gerador, dir, logger.Nop())
	require.NoError(t, rel.Load(context.Background()))

	caminho, err := rel.Exportar(context.Background())

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(caminho, dir))
	assert.Contains(t, caminho, "movimentacoes-")
	assert.Len(t, gerador.recebido, 2)

	conteudo, err := os.ReadFile(caminho)
	require.NoError(t, err)
	assert.Equal(t, gerador.doc, conteudo)
}

func TestExportar_FalhaNoGeradorNaoGravaArquivo(t *testing.T) {
	dir := t.TempDir()
	gerador := &geradorFalso{err: errors.New("fonte ausente")}
	rel := NewRelatorio(&movimentacoesFalsas{itens: exemplo()}, gerador, dir, logger.Nop())
	require.NoError(t, rel.Load(context.Background()))

	_, err := rel.Exportar(context.Background())

	require.Error(t, err)
	entradas, lerr := os.ReadDir(dir)
	require.NoError(t, lerr)
	assert.Empty(t, entradas)
}
