package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-usuario/controle-estoque/internal/domain"
	"github.com/seu-usuario/controle-estoque/internal/domain/entity"
	"github.com/seu-usuario/controle-estoque/internal/infrastructure/api"
	"github.com/seu-usuario/controle-estoque/pkg/logger"
)

// newServer sobe um servidor de teste e devolve o cliente apontando para ele.
func newServer(t *testing.T, handler http.HandlerFunc) *api.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return api.NewClient(srv.URL, 0, logger.Nop())
}

func TestProdutoRepo_List(t *testing.T) {
	var gotPath, gotRequestID string
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotRequestID = r.Header.Get("X-Request-ID")
		json.NewEncoder(w).Encode([]entity.Produto{
			{ID: 10, Nome: "Queijo", FornecedorID: 5},
		})
	})

	produtos, err := api.NewProdutoRepository(c).List(context.Background())
	require.NoError(t, err)
	require.Len(t, produtos, 1)
	assert.Equal(t, "Queijo", produtos[0].Nome)
	assert.Equal(t, "/produtos", gotPath)
	assert.NotEmpty(t, gotRequestID, "toda requisição leva X-Request-ID para correlação")
}

func TestFornecedorRepo_Create_RecebeIDDoServidor(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/fornecedores", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var f entity.Fornecedor
		require.NoError(t, json.NewDecoder(r.Body).Decode(&f))
		f.ID = 42 // o servidor atribui o ID
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(f)
	})

	f := &entity.Fornecedor{Nome: "Lacticínios SA", Email: "contato@lacticinios.com"}
	require.NoError(t, api.NewFornecedorRepository(c).Create(context.Background(), f))
	assert.Equal(t, int64(42), f.ID, "o ID atribuído pelo servidor volta para o registro")
	assert.Equal(t, "Lacticínios SA", f.Nome)
}

func TestEntradaRepo_Update_UsaIDDoRegistro(t *testing.T) {
	var gotPath string
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.Equal(t, http.MethodPut, r.Method)
		var e entity.Entrada
		json.NewDecoder(r.Body).Decode(&e)
		json.NewEncoder(w).Encode(e)
	})

	e := &entity.Entrada{ID: 7, ProdutoID: 10, Quantidade: 3}
	require.NoError(t, api.NewEntradaRepository(c).Update(context.Background(), e))
	assert.Equal(t, "/entradas/7", gotPath)
}

func TestProdutoRepo_Delete_404ViraErrNaoEncontrado(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	err := api.NewProdutoRepository(c).Delete(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado,
		"deletar ID já removido é falha explícita, nunca sucesso silencioso")
}

func TestErroDoServidorViraErrRemoto(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := api.NewMovimentacaoRepository(c).List(context.Background())
	assert.ErrorIs(t, err, domain.ErrRemoto)
}

func TestProdutoRepo_GetByID(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/produtos/10", r.URL.Path)
		json.NewEncoder(w).Encode(entity.Produto{ID: 10, Nome: "Queijo", FornecedorID: 5})
	})

	p, err := api.NewProdutoRepository(c).GetByID(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, int64(5), p.FornecedorID)
}
