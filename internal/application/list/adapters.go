package list

import (
	"context"

	"github.com/seu-usuario/controle-estoque/internal/application/form"
	"github.com/seu-usuario/controle-estoque/internal/domain/entity"
	"github.com/seu-usuario/controle-estoque/internal/domain/repository"
)

// Adapters das quatro telas de listagem. Cada tela difere apenas em endpoints,
// colunas e referências a resolver; toda a lógica mora no Controller genérico.

// FornecedorAdapter listagem de fornecedores (sem referências auxiliares).
func FornecedorAdapter(repo repository.FornecedorRepository, store *form.Store) Adapter[entity.Fornecedor] {
	return Adapter[entity.Fornecedor]{
		Recurso: "fornecedores",
		Fetch:   repo.List,
		Delete:  repo.Delete,
		ID:      func(f entity.Fornecedor) int64 { return f.ID },
		CarregarRascunho: func(f entity.Fornecedor) {
			store.Fornecedor.Set(f)
		},
	}
}

// ProdutoAdapter listagem de produtos; resolve fornecedor_id -> nome.
func ProdutoAdapter(repo repository.ProdutoRepository, fornecedores repository.FornecedorRepository, store *form.Store) Adapter[entity.Produto] {
	return Adapter[entity.Produto]{
		Recurso: "produtos",
		Fetch:   repo.List,
		Delete:  repo.Delete,
		ID:      func(p entity.Produto) int64 { return p.ID },
		CarregarRascunho: func(p entity.Produto) {
			store.Produto.Set(p)
		},
		Referencias: func(ctx context.Context) (*Referencias, error) {
			idx, err := carregarFornecedores(ctx, fornecedores)
			if err != nil {
				return nil, err
			}
			return &Referencias{Fornecedores: idx}, nil
		},
	}
}

// EntradaAdapter listagem de entradas; resolve produto e fornecedor.
func EntradaAdapter(repo repository.EntradaRepository, produtos repository.ProdutoRepository, fornecedores repository.FornecedorRepository, store *form.Store) Adapter[entity.Entrada] {
	return Adapter[entity.Entrada]{
		Recurso: "entradas",
		Fetch:   repo.List,
		Delete:  repo.Delete,
		ID:      func(e entity.Entrada) int64 { return e.ID },
		CarregarRascunho: func(e entity.Entrada) {
			store.Entrada.Set(e)
		},
		Referencias: func(ctx context.Context) (*Referencias, error) {
			prods, err := carregarProdutos(ctx, produtos)
			if err != nil {
				return nil, err
			}
			forns, err := carregarFornecedores(ctx, fornecedores)
			if err != nil {
				// produtos já resolvidos continuam valendo; fornecedores caem
				// no rótulo "Desconhecido"
				return &Referencias{Produtos: prods}, nil
			}
			return &Referencias{Produtos: prods, Fornecedores: forns}, nil
		},
	}
}

// RetiradaAdapter listagem de retiradas; resolve só o produto.
func RetiradaAdapter(repo repository.RetiradaRepository, produtos repository.ProdutoRepository, store *form.Store) Adapter[entity.Retirada] {
	return Adapter[entity.Retirada]{
		Recurso: "retiradas",
		Fetch:   repo.List,
		Delete:  repo.Delete,
		ID:      func(r entity.Retirada) int64 { return r.ID },
		CarregarRascunho: func(r entity.Retirada) {
			store.Retirada.Set(r)
		},
		Referencias: func(ctx context.Context) (*Referencias, error) {
			idx, err := carregarProdutos(ctx, produtos)
			if err != nil {
				return nil, err
			}
			return &Referencias{Produtos: idx}, nil
		},
	}
}
