// Package http expõe a API REST de estoque usada pela aplicação de mesa:
// fornecedores, produtos, entradas, retiradas e o relatório agregado de
// movimentações. Os dados vivem em memória, com IDs sequenciais por recurso.
package http

import (
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/seu-usuario/controle-estoque/internal/domain/entity"
)

// Armazem guarda os registros em memória.
type Armazem struct {
	mu           sync.RWMutex
	proximoID    map[string]int64
	fornecedores map[int64]entity.Fornecedor
	produtos     map[int64]entity.Produto
	entradas     map[int64]entity.Entrada
	retiradas    map[int64]entity.Retirada
}

// NewArmazem constrói o armazém vazio.
func NewArmazem() *Armazem {
	return &Armazem{
		proximoID:    make(map[string]int64),
		fornecedores: make(map[int64]entity.Fornecedor),
		produtos:     make(map[int64]entity.Produto),
		entradas:     make(map[int64]entity.Entrada),
		retiradas:    make(map[int64]entity.Retirada),
	}
}

func (a *Armazem) gerarID(recurso string) int64 {
	a.proximoID[recurso]++
	return a.proximoID[recurso]
}

// ── Fornecedores ──────────────────────────────────────────────────────────────

func (a *Armazem) ListarFornecedores() []entity.Fornecedor {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return ordenado(a.fornecedores, func(f entity.Fornecedor) int64 { return f.ID })
}

func (a *Armazem) CriarFornecedor(f entity.Fornecedor) entity.Fornecedor {
	a.mu.Lock()
	defer a.mu.Unlock()
	f.ID = a.gerarID("fornecedores")
	a.fornecedores[f.ID] = f
	return f
}

func (a *Armazem) AtualizarFornecedor(f entity.Fornecedor) (entity.Fornecedor, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.fornecedores[f.ID]; !ok {
		return entity.Fornecedor{}, false
	}
	a.fornecedores[f.ID] = f
	return f, true
}

func (a *Armazem) ExcluirFornecedor(id int64) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.fornecedores[id]; !ok {
		return false
	}
	delete(a.fornecedores, id)
	return true
}

// ── Produtos ──────────────────────────────────────────────────────────────────

func (a *Armazem) ListarProdutos() []entity.Produto {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return ordenado(a.produtos, func(p entity.Produto) int64 { return p.ID })
}

func (a *Armazem) BuscarProduto(id int64) (entity.Produto, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	p, ok := a.produtos[id]
	return p, ok
}

func (a *Armazem) CriarProduto(p entity.Produto) entity.Produto {
	a.mu.Lock()
	defer a.mu.Unlock()
	p.ID = a.gerarID("produtos")
	a.produtos[p.ID] = p
	return p
}

func (a *Armazem) AtualizarProduto(p entity.Produto) (entity.Produto, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.produtos[p.ID]; !ok {
		return entity.Produto{}, false
	}
	a.produtos[p.ID] = p
	return p, true
}

func (a *Armazem) ExcluirProduto(id int64) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.produtos[id]; !ok {
		return false
	}
	delete(a.produtos, id)
	return true
}

// ── Entradas ──────────────────────────────────────────────────────────────────

func (a *Armazem) ListarEntradas() []entity.Entrada {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return ordenado(a.entradas, func(e entity.Entrada) int64 { return e.ID })
}

func (a *Armazem) CriarEntrada(e entity.Entrada) entity.Entrada {
	a.mu.Lock()
	defer a.mu.Unlock()
	e.ID = a.gerarID("entradas")
	a.entradas[e.ID] = e
	return e
}

func (a *Armazem) AtualizarEntrada(e entity.Entrada) (entity.Entrada, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.entradas[e.ID]; !ok {
		return entity.Entrada{}, false
	}
	a.entradas[e.ID] = e
	return e, true
}

func (a *Armazem) ExcluirEntrada(id int64) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.entradas[id]; !ok {
		return false
	}
	delete(a.entradas, id)
	return true
}

// ── Retiradas ─────────────────────────────────────────────────────────────────

func (a *Armazem) ListarRetiradas() []entity.Retirada {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return ordenado(a.retiradas, func(r entity.Retirada) int64 { return r.ID })
}

func (a *Armazem) CriarRetirada(r entity.Retirada) entity.Retirada {
	a.mu.Lock()
	defer a.mu.Unlock()
	r.ID = a.gerarID("retiradas")
	a.retiradas[r.ID] = r
	return r
}

func (a *Armazem) AtualizarRetirada(r entity.Retirada) (entity.Retirada, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.retiradas[r.ID]; !ok {
		return entity.Retirada{}, false
	}
	a.retiradas[r.ID] = r
	return r, true
}

func (a *Armazem) ExcluirRetirada(id int64) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.retiradas[id]; !ok {
		return false
	}
	delete(a.retiradas, id)
	return true
}

// ── Movimentações ─────────────────────────────────────────────────────────────

// Movimentacoes agrega entradas e retiradas por produto: totais, datas mais
// recentes e saldo em estoque. Datas ISO comparam lexicograficamente.
func (a *Armazem) Movimentacoes() []entity.Movimentacao {
	a.mu.RLock()
	defer a.mu.RUnlock()

	porProduto := make(map[int64]*entity.Movimentacao)
	obter := func(produtoID int64) *entity.Movimentacao {
		mov, ok := porProduto[produtoID]
		if !ok {
			mov = &entity.Movimentacao{ProdutoID: produtoID}
			if p, existe := a.produtos[produtoID]; existe {
				mov.Nome = p.Nome
			}
			porProduto[produtoID] = mov
		}
		return mov
	}

	for _, e := range a.entradas {
		mov := obter(e.ProdutoID)
		mov.QuantidadeTotalEntrada += e.Quantidade
		if e.DataEntrada > mov.DataEntrada {
			mov.DataEntrada = e.DataEntrada
		}
	}
	for _, r := range a.retiradas {
		mov := obter(r.ProdutoID)
		mov.QuantidadeTotalSaida += r.Quantidade
		if r.DataRetirada > mov.DataRetirada {
			mov.DataRetirada = r.DataRetirada
		}
	}

	result := make([]entity.Movimentacao, 0, len(porProduto))
	for _, mov := range porProduto {
		mov.QuantidadeEmEstoque = mov.QuantidadeTotalEntrada - mov.QuantidadeTotalSaida
		result = append(result, *mov)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ProdutoID < result[j].ProdutoID })
	return result
}

// SeedDemo popula o armazém com dados de exemplo para desenvolvimento.
func (a *Armazem) SeedDemo() {
	f := a.CriarFornecedor(entity.Fornecedor{
		Nome: "Lacticínios SA", CNPJ: "12.345.678/0001-00", Celular: "11 99999-0000",
		Email: "contato@lacticinios.com.br", CEP: "01001-000", Endereco: "Rua do Leite",
		Bairro: "Centro", Cidade: "São Paulo", Estado: "SP",
	})
	p := a.CriarProduto(entity.Produto{
		Nome: "Queijo Minas", Marca: "Serra Azul", Categoria: "Frios", FornecedorID: f.ID,
	})
	a.CriarEntrada(entity.Entrada{
		ProdutoID: p.ID, Quantidade: 12, FornecedorID: f.ID,
		DataEntrada: "2024-02-19", NumeroLote: "L-001",
		PrecoCompra: decimal.NewFromFloat(24.90),
	})
	a.CriarRetirada(entity.Retirada{
		ProdutoID: p.ID, Quantidade: 4, TipoRetirada: "Venda",
		DataRetirada: "2024-02-21", NumeroLote: "L-001",
	})
}

// ordenado materializa um map de registros em slice ordenada por ID.
func ordenado[T any](m map[int64]T, id func(T) int64) []T {
	result := make([]T, 0, len(m))
	for _, v := range m {
		result = append(result, v)
	}
	sort.Slice(result, func(i, j int) bool { return id(result[i]) < id(result[j]) })
	return result
}
