package cadastro

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-usuario/controle-estoque/internal/application/form"
	"github.com/seu-usuario/controle-estoque/internal/domain"
	"github.com/seu-usuario/controle-estoque/internal/domain/entity"
	"github.com/seu-usuario/controle-estoque/pkg/logger"
)

type fornecedoresFalsos struct {
	criados []entity.Fornecedor
	err     error
}

func (f *fornecedoresFalsos) List(ctx context.Context) ([]entity.Fornecedor, error) {
	return nil, nil
}

func (f *fornecedoresFalsos) Create(ctx context.Context, fornecedor *entity.Fornecedor) error {
	if f.err != nil {
		return f.err
	}
	fornecedor.ID = int64(len(f.criados) + 1)
	f.criados = append(f.criados, *fornecedor)
	return nil
}

func (f *fornecedoresFalsos) Update(ctx context.Context, fornecedor *entity.Fornecedor) error {
	return nil
}

func (f *fornecedoresFalsos) Delete(ctx context.Context, id int64) error { return nil }

type produtosFalsos struct {
	porID map[int64]entity.Produto
	err   error
}

func (p *produtosFalsos) List(ctx context.Context) ([]entity.Produto, error) { return nil, nil }

func (p *produtosFalsos) GetByID(ctx context.Context, id int64) (*entity.Produto, error) {
	if p.err != nil {
		return nil, p.err
	}
	produto, ok := p.porID[id]
	if !ok {
		return nil, domain.ErrNaoEncontrado
	}
	return &produto, nil
}

func (p *produtosFalsos) Create(ctx context.Context, produto *entity.Produto) error { return nil }

func (p *produtosFalsos) Update(ctx context.Context, produto *entity.Produto) error { return nil }

func (p *produtosFalsos) Delete(ctx context.Context, id int64) error { return nil }

type entradasFalsas struct {
	criadas []entity.Entrada
	err     error
}

func (e *entradasFalsas) List(ctx context.Context) ([]entity.Entrada, error) { return nil, nil }

func (e *entradasFalsas) Create(ctx context.Context, entrada *entity.Entrada) error {
	if e.err != nil {
		return e.err
	}
	entrada.ID = int64(len(e.criadas) + 1)
	e.criadas = append(e.criadas, *entrada)
	return nil
}

func (e *entradasFalsas) Update(ctx context.Context, entrada *entity.Entrada) error { return nil }

func (e *entradasFalsas) Delete(ctx context.Context, id int64) error { return nil }

func fornecedorCompleto() entity.Fornecedor {
	return entity.Fornecedor{
		Nome:     "Lacticínios SA",
		CNPJ:     "12.345.678/0001-00",
		Celular:  "11 99999-0000",
		Email:    "contato@lacticinios.com.br",
		CEP:      "01001-000",
		Endereco: "Rua do Leite",
		Bairro:   "Centro",
		Cidade:   "São Paulo",
		Estado:   "SP",
	}
}

func TestSubmit_CampoFaltanteBloqueiaEnvio(t *testing.T) {
	store := form.NewStore(logger.Nop())
	repo := &fornecedoresFalsos{}
	cad := NewFornecedorCadastro(store, repo, logger.Nop())

	completo := fornecedorCompleto()
	completo.Email = ""
	store.Fornecedor.Set(completo)

	campos, err := cad.Submit(context.Background())

	require.ErrorIs(t, err, domain.ErrValidacao)
	assert.Equal(t, "O campo E-mail é obrigatório.", campos["email"])
	assert.Empty(t, repo.criados, "nada deve ser enviado com campo faltando")
	assert.Equal(t, "Lacticínios SA", store.Fornecedor.Get().Nome, "rascunho preservado")
}

func TestSubmit_TodosCamposFaltando(t *testing.T) {
	store := form.NewStore(logger.Nop())
	cad := NewFornecedorCadastro(store, &fornecedoresFalsos{}, logger.Nop())

	campos, err := cad.Submit(context.Background())

	require.ErrorIs(t, err, domain.ErrValidacao)
	assert.Len(t, campos, 9)
	assert.Equal(t, "O campo Nome é obrigatório.", campos["nome"])
	assert.Equal(t, "O campo CNPJ é obrigatório.", campos["cnpj"])
}

func TestSubmit_SucessoResetaApenasOProprioRascunho(t *testing.T) {
	store := form.NewStore(logger.Nop())
	repo := &fornecedoresFalsos{}
	cad := NewFornecedorCadastro(store, repo, logger.Nop())

	store.Fornecedor.Set(fornecedorCompleto())
	store.Produto.Update(func(p *entity.Produto) { p.Nome = "Queijo Minas" })

	campos, err := cad.Submit(context.Background())

	require.NoError(t, err)
	assert.Empty(t, campos)
	require.Len(t, repo.criados, 1)
	assert.Equal(t, "Lacticínios SA", repo.criados[0].Nome)
	assert.Empty(t, store.Fornecedor.Get().Nome, "rascunho resetado após sucesso")
	assert.Equal(t, "Queijo Minas", store.Produto.Get().Nome, "rascunho de outro tipo intocado")
}

func TestSubmit_FalhaRemotaPreservaRascunho(t *testing.T) {
	store := form.NewStore(logger.Nop())
	falha := errors.New("conexão recusada")
	cad := NewFornecedorCadastro(store, &fornecedoresFalsos{err: falha}, logger.Nop())

	store.Fornecedor.Set(fornecedorCompleto())

	campos, err := cad.Submit(context.Background())

	require.ErrorIs(t, err, falha)
	assert.Empty(t, campos)
	assert.Equal(t, "Lacticínios SA", store.Fornecedor.Get().Nome, "valores digitados preservados")
}

func TestSubmit_EntradaCompleta(t *testing.T) {
	store := form.NewStore(logger.Nop())
	repo := &entradasFalsas{}
	cad := NewEntradaCadastro(store, repo, &produtosFalsos{}, logger.Nop())

	store.Entrada.Set(entity.Entrada{
		ProdutoID:    10,
		Quantidade:   5,
		FornecedorID: 3,
		DataEntrada:  "2024-02-19",
		NumeroLote:   "L-001",
		PrecoCompra:  decimal.NewFromFloat(129.90),
	})

	campos, err := cad.Submit(context.Background())

	require.NoError(t, err)
	assert.Empty(t, campos)
	require.Len(t, repo.criadas, 1)
	assert.Equal(t, int64(10), repo.criadas[0].ProdutoID)
}

func TestSubmit_EntradaSemPrecoBloqueada(t *testing.T) {
	store := form.NewStore(logger.Nop())
	repo := &entradasFalsas{}
	cad := NewEntradaCadastro(store, repo, &produtosFalsos{}, logger.Nop())

	store.Entrada.Set(entity.Entrada{
		ProdutoID:    10,
		Quantidade:   5,
		FornecedorID: 3,
		DataEntrada:  "2024-02-19",
		NumeroLote:   "L-001",
	})

	campos, err := cad.Submit(context.Background())

	require.ErrorIs(t, err, domain.ErrValidacao)
	assert.Equal(t, "O campo Preço de Compra é obrigatório.", campos["preco_compra"])
	assert.Empty(t, repo.criadas)
}

func TestSelecionarProduto_PreencheFornecedor(t *testing.T) {
	store := form.NewStore(logger.Nop())
	produtos := &produtosFalsos{porID: map[int64]entity.Produto{
		10: {ID: 10, Nome: "Queijo Minas", FornecedorID: 7},
	}}
	cad := NewEntradaCadastro(store, &entradasFalsas{}, produtos, logger.Nop())

	store.Entrada.Update(func(e *entity.Entrada) { e.FornecedorID = 99 })

	err := cad.SelecionarProduto(context.Background(), 10)

	require.NoError(t, err)
	entrada := store.Entrada.Get()
	assert.Equal(t, int64(10), entrada.ProdutoID)
	assert.Equal(t, int64(7), entrada.FornecedorID, "fornecedor anterior sobrescrito")
}

func TestSelecionarProduto_FalhaMantemFornecedor(t *testing.T) {
	store := form.NewStore(logger.Nop())
	produtos := &produtosFalsos{err: errors.New("timeout")}
	cad := NewEntradaCadastro(store, &entradasFalsas{}, produtos, logger.Nop())

	store.Entrada.Update(func(e *entity.Entrada) { e.FornecedorID = 99 })

	err := cad.SelecionarProduto(context.Background(), 10)

	require.Error(t, err)
	entrada := store.Entrada.Get()
	assert.Equal(t, int64(10), entrada.ProdutoID, "produto escolhido é registrado mesmo na falha")
	assert.Equal(t, int64(99), entrada.FornecedorID, "fornecedor atual preservado")
}

func TestCancelar_DescartaRascunho(t *testing.T) {
	store := form.NewStore(logger.Nop())
	cad := NewFornecedorCadastro(store, &fornecedoresFalsos{}, logger.Nop())

	store.Fornecedor.Set(fornecedorCompleto())
	cad.Cancelar()

	assert.Empty(t, store.Fornecedor.Get().Nome)
}
