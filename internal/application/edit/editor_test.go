package edit_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-usuario/controle-estoque/internal/application/edit"
	"github.com/seu-usuario/controle-estoque/internal/application/form"
	"github.com/seu-usuario/controle-estoque/internal/domain/entity"
	"github.com/seu-usuario/controle-estoque/pkg/logger"
)

func TestSubmit_EnviaORascunhoEAtualizaComAResposta(t *testing.T) {
	store := form.NewStore(logger.Nop())
	store.Produto.Set(entity.Produto{ID: 10, Nome: "Queijo", Marca: "Velha"})

	var recebido entity.Produto
	editor := edit.NewEditor(&store.Produto,
		func(_ context.Context, p *entity.Produto) error {
			recebido = *p
			p.Marca = "Nova" // o servidor pode normalizar campos na resposta
			return nil
		}, nil, logger.Nop())

	editor.Atualizar(func(p *entity.Produto) { p.Marca = "Atualizada" })
	require.NoError(t, editor.Submit(context.Background()))

	assert.Equal(t, int64(10), recebido.ID, "o PUT usa o ID do rascunho")
	assert.Equal(t, "Atualizada", recebido.Marca)
	assert.Equal(t, "Nova", store.Produto.Get().Marca, "a resposta do servidor volta ao rascunho")
	assert.False(t, editor.Submetendo())
}

func TestSubmit_FalhaMantemRascunhoEReabilita(t *testing.T) {
	store := form.NewStore(logger.Nop())
	store.Entrada.Set(entity.Entrada{ID: 7, Quantidade: 3, NumeroLote: "L-1"})

	editor := edit.NewEditor(&store.Entrada,
		func(context.Context, *entity.Entrada) error {
			return errors.New("rede caiu")
		}, nil, logger.Nop())

	err := editor.Submit(context.Background())
	assert.Error(t, err, "o modal permanece aberto; o chamador mostra a notificação")
	assert.Equal(t, "L-1", store.Entrada.Get().NumeroLote, "valores digitados são preservados")
	assert.False(t, editor.Submetendo(), "submit é reabilitado após a falha")
}

func TestSubmit_EdicaoNaoValidaCamposObrigatorios(t *testing.T) {
	// só o cadastro valida campos obrigatórios; a edição não
	store := form.NewStore(logger.Nop())
	store.Retirada.Set(entity.Retirada{ID: 3}) // todos os demais campos vazios

	chamado := false
	editor := edit.NewEditor(&store.Retirada,
		func(context.Context, *entity.Retirada) error {
			chamado = true
			return nil
		}, nil, logger.Nop())

	require.NoError(t, editor.Submit(context.Background()))
	assert.True(t, chamado, "a submissão passa mesmo com campos vazios")
}

func TestOpen_FalhaDegradaDropdownsSemBloquearEdicao(t *testing.T) {
	store := form.NewStore(logger.Nop())
	editor := edit.NewEditor(&store.Produto,
		func(context.Context, *entity.Produto) error { return nil },
		func(context.Context) (edit.Auxiliares, error) {
			return edit.Auxiliares{}, errors.New("rede caiu")
		}, logger.Nop())

	aux, err := editor.Open(context.Background())
	assert.Error(t, err, "a falha é reportada para a notificação")
	assert.Empty(t, aux.Fornecedores, "dropdown degrada para vazio")

	// os campos de texto continuam editáveis e submissíveis
	editor.Atualizar(func(p *entity.Produto) { p.Nome = "Queijo" })
	assert.NoError(t, editor.Submit(context.Background()))
}

func TestOpen_CarregaOpcoes(t *testing.T) {
	store := form.NewStore(logger.Nop())
	editor := edit.NewEditor(&store.Entrada,
		func(context.Context, *entity.Entrada) error { return nil },
		func(context.Context) (edit.Auxiliares, error) {
			return edit.Auxiliares{
				Produtos:     []edit.Opcao{{ID: 10, Nome: "Queijo"}},
				Fornecedores: []edit.Opcao{{ID: 5, Nome: "Lacticínios SA"}},
			}, nil
		}, logger.Nop())

	aux, err := editor.Open(context.Background())
	require.NoError(t, err)
	assert.Len(t, aux.Produtos, 1)
	assert.Len(t, aux.Fornecedores, 1)
}
