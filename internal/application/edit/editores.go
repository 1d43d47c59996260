package edit

import (
	"context"

	"github.com/seu-usuario/controle-estoque/internal/application/form"
	"github.com/seu-usuario/controle-estoque/internal/domain/entity"
	"github.com/seu-usuario/controle-estoque/internal/domain/repository"
	"github.com/seu-usuario/controle-estoque/pkg/logger"
)

// Construtores dos editores por tipo, ligando rascunho, PUT e dropdowns.

// FornecedorEditor edição de fornecedor (sem dropdowns de referência).
func FornecedorEditor(store *form.Store, repo repository.FornecedorRepository, log *logger.Logger) *Editor[entity.Fornecedor] {
	return NewEditor(&store.Fornecedor, repo.Update, nil, log)
}

// ProdutoEditor edição de produto; dropdown de fornecedores.
func ProdutoEditor(store *form.Store, repo repository.ProdutoRepository, fornecedores repository.FornecedorRepository, log *logger.Logger) *Editor[entity.Produto] {
	return NewEditor(&store.Produto, repo.Update,
		func(ctx context.Context) (Auxiliares, error) {
			forns, err := fornecedores.List(ctx)
			if err != nil {
				return Auxiliares{}, err
			}
			return Auxiliares{Fornecedores: opcoesFornecedor(forns)}, nil
		}, log)
}

// EntradaEditor edição de entrada; dropdowns de produtos e fornecedores.
func EntradaEditor(store *form.Store, repo repository.EntradaRepository, produtos repository.ProdutoRepository, fornecedores repository.FornecedorRepository, log *logger.Logger) *Editor[entity.Entrada] {
	return NewEditor(&store.Entrada, repo.Update,
		func(ctx context.Context) (Auxiliares, error) {
			prods, err := produtos.List(ctx)
			if err != nil {
				return Auxiliares{}, err
			}
			forns, err := fornecedores.List(ctx)
			if err != nil {
				// o dropdown de fornecedores degrada para vazio
				return Auxiliares{Produtos: opcoesProduto(prods)}, err
			}
			return Auxiliares{
				Produtos:     opcoesProduto(prods),
				Fornecedores: opcoesFornecedor(forns),
			}, nil
		}, log)
}

// RetiradaEditor edição de retirada; dropdown de produtos.
func RetiradaEditor(store *form.Store, repo repository.RetiradaRepository, produtos repository.ProdutoRepository, log *logger.Logger) *Editor[entity.Retirada] {
	return NewEditor(&store.Retirada, repo.Update,
		func(ctx context.Context) (Auxiliares, error) {
			prods, err := produtos.List(ctx)
			if err != nil {
				return Auxiliares{}, err
			}
			return Auxiliares{Produtos: opcoesProduto(prods)}, nil
		}, log)
}

func opcoesProduto(produtos []entity.Produto) []Opcao {
	out := make([]Opcao, 0, len(produtos))
	for _, p := range produtos {
		out = append(out, Opcao{ID: p.ID, Nome: p.Nome})
	}
	return out
}

func opcoesFornecedor(fornecedores []entity.Fornecedor) []Opcao {
	out := make([]Opcao, 0, len(fornecedores))
	for _, f := range fornecedores {
		out = append(out, Opcao{ID: f.ID, Nome: f.Nome})
	}
	return out
}
