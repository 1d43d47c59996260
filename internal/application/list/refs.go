package list

import (
	"context"

	"github.com/seu-usuario/controle-estoque/internal/domain"
	"github.com/seu-usuario/controle-estoque/internal/domain/entity"
	"github.com/seu-usuario/controle-estoque/internal/domain/repository"
)

// Referencias coleções auxiliares carregadas junto com a listagem para
// resolver referências fracas (fornecedor_id, produto_id) na hora de exibir.
// Toda resolução que falha vira o rótulo "Desconhecido"; nunca erro, nunca vazio.
type Referencias struct {
	Fornecedores map[int64]string
	Produtos     map[int64]string
}

// NomeFornecedor resolve o nome do fornecedor ou devolve o rótulo de fallback.
// Seguro com receptor nil (coleção auxiliar que nem chegou a carregar).
func (r *Referencias) NomeFornecedor(id int64) string {
	if r == nil {
		return domain.RotuloDesconhecido
	}
	if nome, ok := r.Fornecedores[id]; ok && nome != "" {
		return nome
	}
	return domain.RotuloDesconhecido
}

// NomeProduto resolve o nome do produto ou devolve o rótulo de fallback.
func (r *Referencias) NomeProduto(id int64) string {
	if r == nil {
		return domain.RotuloDesconhecido
	}
	if nome, ok := r.Produtos[id]; ok && nome != "" {
		return nome
	}
	return domain.RotuloDesconhecido
}

// carregarFornecedores monta o índice id -> nome dos fornecedores.
func carregarFornecedores(ctx context.Context, repo repository.FornecedorRepository) (map[int64]string, error) {
	fornecedores, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return indexar(fornecedores, func(f entity.Fornecedor) (int64, string) { return f.ID, f.Nome }), nil
}

// carregarProdutos monta o índice id -> nome dos produtos.
func carregarProdutos(ctx context.Context, repo repository.ProdutoRepository) (map[int64]string, error) {
	produtos, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return indexar(produtos, func(p entity.Produto) (int64, string) { return p.ID, p.Nome }), nil
}

func indexar[T any](itens []T, chave func(T) (int64, string)) map[int64]string {
	m := make(map[int64]string, len(itens))
	for _, item := range itens {
		id, nome := chave(item)
		m[id] = nome
	}
	return m
}
