package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-usuario/controle-estoque/internal/domain/entity"
	apphttp "github.com/seu-usuario/controle-estoque/internal/interfaces/http"
	"github.com/seu-usuario/controle-estoque/pkg/logger"
)

// buildTestApp constrói uma aplicação Fiber com o armazém vazio.
func buildTestApp() (*fiber.App, *apphttp.Armazem) {
	armazem := apphttp.NewArmazem()
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{Armazem: armazem, Log: logger.Nop()})
	return app, armazem
}

// doJSON lança uma requisição com corpo JSON e devolve a resposta.
func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestFornecedores_CicloCompleto(t *testing.T) {
	app, _ := buildTestApp()

	// Create atribui ID sequencial
	resp := doJSON(t, app, http.MethodPost, "/fornecedores", entity.Fornecedor{Nome: "Lacticínios SA", CNPJ: "12.345.678/0001-00"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var criado entity.Fornecedor
	decode(t, resp, &criado)
	assert.Equal(t, int64(1), criado.ID)

	// Update substitui o registro
	criado.Cidade = "Campinas"
	resp = doJSON(t, app, http.MethodPut, "/fornecedores/1", criado)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// List devolve o registro atualizado
	resp = doJSON(t, app, http.MethodGet, "/fornecedores", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var lista []entity.Fornecedor
	decode(t, resp, &lista)
	require.Len(t, lista, 1)
	assert.Equal(t, "Campinas", lista[0].Cidade)

	// Delete remove
	resp = doJSON(t, app, http.MethodDelete, "/fornecedores/1", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/fornecedores", nil)
	decode(t, resp, &lista)
	assert.Empty(t, lista)
}

func TestProdutos_GetByID(t *testing.T) {
	app, armazem := buildTestApp()
	produto := armazem.CriarProduto(entity.Produto{Nome: "Queijo Minas", FornecedorID: 7})

	resp := doJSON(t, app, http.MethodGet, "/produtos/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out entity.Produto
	decode(t, resp, &out)
	assert.Equal(t, produto.Nome, out.Nome)
	assert.Equal(t, int64(7), out.FornecedorID)
}

func TestProdutos_GetByID_Inexistente404(t *testing.T) {
	app, _ := buildTestApp()

	resp := doJSON(t, app, http.MethodGet, "/produtos/99", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDelete_Inexistente404(t *testing.T) {
	app, _ := buildTestApp()

	resp := doJSON(t, app, http.MethodDelete, "/entradas/99", nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdate_CorpoInvalido400(t *testing.T) {
	app, armazem := buildTestApp()
	armazem.CriarRetirada(entity.Retirada{ProdutoID: 1, Quantidade: 2})

	req := httptest.NewRequest(http.MethodPut, "/retiradas/1", bytes.NewReader([]byte("{nao-e-json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMovimentacoes_AgregaPorProduto(t *testing.T) {
	app, armazem := buildTestApp()
	produto := armazem.CriarProduto(entity.Produto{Nome: "Queijo Minas"})
	armazem.CriarEntrada(entity.Entrada{ProdutoID: produto.ID, Quantidade: 12, DataEntrada: "2024-02-19"})
	armazem.CriarEntrada(entity.Entrada{ProdutoID: produto.ID, Quantidade: 8, DataEntrada: "2024-03-02"})
	armazem.CriarRetirada(entity.Retirada{ProdutoID: produto.ID, Quantidade: 4, DataRetirada: "2024-02-21"})

	resp := doJSON(t, app, http.MethodGet, "/movimentacoes", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var movs []entity.Movimentacao
	decode(t, resp, &movs)

	require.Len(t, movs, 1)
	mov := movs[0]
	assert.Equal(t, "Queijo Minas", mov.Nome)
	assert.Equal(t, 20, mov.QuantidadeTotalEntrada)
	assert.Equal(t, 4, mov.QuantidadeTotalSaida)
	assert.Equal(t, 16, mov.QuantidadeEmEstoque)
	assert.Equal(t, "2024-03-02", mov.DataEntrada, "data de entrada mais recente")
	assert.Equal(t, "2024-02-21", mov.DataRetirada)
}

func TestRequestID_EcoaOHeaderDoCliente(t *testing.T) {
	app, _ := buildTestApp()

	req := httptest.NewRequest(http.MethodGet, "/fornecedores", nil)
	req.Header.Set(fiber.HeaderXRequestID, "abc-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "abc-123", resp.Header.Get(fiber.HeaderXRequestID))
}

func TestRequestID_GeraQuandoAusente(t *testing.T) {
	app, _ := buildTestApp()

	resp := doJSON(t, app, http.MethodGet, "/produtos", nil)
	defer resp.Body.Close()

	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
}
