package cadastro

import (
	"context"

	"github.com/seu-usuario/controle-estoque/internal/application/form"
	"github.com/seu-usuario/controle-estoque/internal/domain/entity"
	"github.com/seu-usuario/controle-estoque/internal/domain/repository"
	"github.com/seu-usuario/controle-estoque/pkg/logger"
)

// NewFornecedorCadastro fluxo de criação de fornecedor.
func NewFornecedorCadastro(store *form.Store, repo repository.FornecedorRepository, log *logger.Logger) *Cadastro[entity.Fornecedor] {
	return NewCadastro(form.KindFornecedor, &store.Fornecedor, repo.Create, log)
}

// NewProdutoCadastro fluxo de criação de produto.
func NewProdutoCadastro(store *form.Store, repo repository.ProdutoRepository, log *logger.Logger) *Cadastro[entity.Produto] {
	return NewCadastro(form.KindProduto, &store.Produto, repo.Create, log)
}

// NewRetiradaCadastro fluxo de criação de saída de estoque.
func NewRetiradaCadastro(store *form.Store, repo repository.RetiradaRepository, log *logger.Logger) *Cadastro[entity.Retirada] {
	return NewCadastro(form.KindRetirada, &store.Retirada, repo.Create, log)
}

// EntradaCadastro fluxo de criação de entrada de estoque. Além do fluxo
// comum, escolher o produto busca seu cadastro e preenche o fornecedor.
type EntradaCadastro struct {
	*Cadastro[entity.Entrada]
	draft    *form.Draft[entity.Entrada]
	produtos repository.ProdutoRepository
	log      *logger.Logger
}

// NewEntradaCadastro fluxo de criação de entrada de estoque.
func NewEntradaCadastro(store *form.Store, repo repository.EntradaRepository, produtos repository.ProdutoRepository, log *logger.Logger) *EntradaCadastro {
	return &EntradaCadastro{
		Cadastro: NewCadastro(form.KindEntrada, &store.Entrada, repo.Create, log),
		draft:    &store.Entrada,
		produtos: produtos,
		log:      log,
	}
}

// SelecionarProduto registra o produto escolhido e preenche o fornecedor
// com o cadastrado para ele, sobrescrevendo qualquer escolha anterior.
// Se a busca do produto falhar o fornecedor atual fica como está.
func (c *EntradaCadastro) SelecionarProduto(ctx context.Context, produtoID int64) error {
	c.draft.Update(func(e *entity.Entrada) { e.ProdutoID = produtoID })

	produto, err := c.produtos.GetByID(ctx, produtoID)
	if err != nil {
		c.log.Warn().Err(err).Int64("produto_id", produtoID).Msg("falha ao buscar produto para preencher fornecedor")
		return err
	}

	c.draft.Update(func(e *entity.Entrada) { e.FornecedorID = produto.FornecedorID })
	return nil
}
