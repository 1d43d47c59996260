package form_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/seu-usuario/controle-estoque/internal/application/form"
	"github.com/seu-usuario/controle-estoque/internal/domain/entity"
	"github.com/seu-usuario/controle-estoque/pkg/logger"
)

func novoStore() *form.Store {
	return form.NewStore(logger.Nop())
}

func TestDraft_UpdateMudaSomenteOCampoNomeado(t *testing.T) {
	s := novoStore()
	s.Fornecedor.Set(entity.Fornecedor{Nome: "Lacticínios SA", Email: "a@b.com", Cidade: "Recife"})

	s.Fornecedor.Update(func(f *entity.Fornecedor) { f.Email = "novo@b.com" })

	f := s.Fornecedor.Get()
	assert.Equal(t, "novo@b.com", f.Email)
	assert.Equal(t, "Lacticínios SA", f.Nome, "os demais campos permanecem intactos")
	assert.Equal(t, "Recife", f.Cidade)
}

func TestStore_EditarUmTipoNaoTocaOutro(t *testing.T) {
	s := novoStore()
	s.Produto.Set(entity.Produto{Nome: "Queijo", FornecedorID: 5})

	s.Entrada.Update(func(e *entity.Entrada) {
		e.ProdutoID = 10
		e.Quantidade = 3
	})

	assert.Equal(t, "Queijo", s.Produto.Get().Nome, "rascunho de produto intacto")
	assert.Zero(t, s.Fornecedor.Get().Nome, "rascunho de fornecedor intacto")
	assert.Equal(t, int64(10), s.Entrada.Get().ProdutoID)
}

func TestDraft_SetSubstituiTotalmente(t *testing.T) {
	s := novoStore()
	s.Entrada.Set(entity.Entrada{ProdutoID: 10, NumeroLote: "L-1", PrecoCompra: decimal.NewFromInt(50)})

	// registro novo sem lote: o campo não pode reter valor antigo
	s.Entrada.Set(entity.Entrada{ProdutoID: 11})

	e := s.Entrada.Get()
	assert.Equal(t, int64(11), e.ProdutoID)
	assert.Empty(t, e.NumeroLote, "substituição é total, não merge")
	assert.True(t, e.PrecoCompra.IsZero())
}

func TestDraft_GetSemEdicaoDevolveTemplateVazio(t *testing.T) {
	s := novoStore()
	f := s.Fornecedor.Get()
	assert.Equal(t, entity.Fornecedor{}, f, "nunca falha; devolve o template vazio")
}

func TestStore_ResetAll(t *testing.T) {
	s := novoStore()
	s.Fornecedor.Set(entity.Fornecedor{Nome: "X"})
	s.Retirada.Set(entity.Retirada{Quantidade: 2})

	s.ResetAll()

	assert.Equal(t, entity.Fornecedor{}, s.Fornecedor.Get())
	assert.Equal(t, entity.Retirada{}, s.Retirada.Get())
}

func TestStore_ResetTipoDesconhecidoNaoDerruba(t *testing.T) {
	s := novoStore()
	s.Produto.Set(entity.Produto{Nome: "Queijo"})

	assert.NotPanics(t, func() { s.Reset(form.Kind(99)) })
	assert.Equal(t, "Queijo", s.Produto.Get().Nome, "nenhum rascunho é alterado")
}

func TestParseKind(t *testing.T) {
	k, ok := form.ParseKind("entrada")
	assert.True(t, ok)
	assert.Equal(t, form.KindEntrada, k)

	_, ok = form.ParseKind("pedido")
	assert.False(t, ok)
}

func TestDraft_SubscribeNotificaMutacoes(t *testing.T) {
	s := novoStore()
	var chamadas int
	s.Produto.Subscribe(func() { chamadas++ })

	s.Produto.Set(entity.Produto{Nome: "A"})
	s.Produto.Update(func(p *entity.Produto) { p.Marca = "B" })
	s.Produto.Reset()

	assert.Equal(t, 3, chamadas)
}
