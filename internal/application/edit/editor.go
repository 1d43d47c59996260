// Package edit liga o rascunho de um tipo de formulário ao fluxo de edição em
// modal: carrega as coleções de referência dos dropdowns, submete o PUT e
// sinaliza a conclusão para a tela de listagem recarregar.
package edit

import (
	"context"
	"sync"

	"github.com/seu-usuario/controle-estoque/internal/application/form"
	"github.com/seu-usuario/controle-estoque/pkg/logger"
)

// Opcao item de dropdown para um campo de referência (id + rótulo).
type Opcao struct {
	ID   int64
	Nome string
}

// Auxiliares coleções de referência que os dropdowns do modal precisam.
// Campos vazios significam dropdown sem opções (degradado, não bloqueante).
type Auxiliares struct {
	Produtos     []Opcao
	Fornecedores []Opcao
}

// Editor fluxo de edição de um registro de tipo T.
type Editor[T any] struct {
	draft     *form.Draft[T]
	atualizar func(ctx context.Context, registro *T) error
	opcoes    func(ctx context.Context) (Auxiliares, error)
	log       *logger.Logger

	mu         sync.Mutex
	submetendo bool
}

// NewEditor constrói o editor. opcoes pode ser nil para tipos sem dropdowns.
func NewEditor[T any](
	draft *form.Draft[T],
	atualizar func(ctx context.Context, registro *T) error,
	opcoes func(ctx context.Context) (Auxiliares, error),
	log *logger.Logger,
) *Editor[T] {
	return &Editor[T]{draft: draft, atualizar: atualizar, opcoes: opcoes, log: log}
}

// Open carrega as coleções auxiliares dos dropdowns. Falha aqui não impede a
// edição dos campos de texto: o dropdown fica sem opções e o erro vai para o
// log e para a notificação do chamador.
func (e *Editor[T]) Open(ctx context.Context) (Auxiliares, error) {
	if e.opcoes == nil {
		return Auxiliares{}, nil
	}
	aux, err := e.opcoes(ctx)
	if err != nil {
		e.log.Warn().Err(err).Msg("falha ao carregar opções do modal de edição")
		return Auxiliares{}, err
	}
	return aux, nil
}

// Rascunho devolve o registro em edição.
func (e *Editor[T]) Rascunho() T {
	return e.draft.Get()
}

// Atualizar aplica uma mutação de campo ao rascunho.
func (e *Editor[T]) Atualizar(fn func(*T)) {
	e.draft.Update(fn)
}

// validarCampos valida o formulário de edição. Hoje toda submissão passa:
// apenas o cadastro exige campos obrigatórios, a edição não.
// TODO: alinhar as regras de edição com as do cadastro.
func (e *Editor[T]) validarCampos() bool {
	return true
}

// Submit envia o registro do rascunho via PUT. Enquanto a submissão está em
// voo novas chamadas são recusadas (os controles ficam desabilitados na tela).
// Em caso de falha o modal permanece aberto e o submit é reabilitado.
func (e *Editor[T]) Submit(ctx context.Context) error {
	e.mu.Lock()
	if e.submetendo {
		e.mu.Unlock()
		return nil
	}
	e.submetendo = true
	e.mu.Unlock()
	defer func() {
		e.mu.Lock()
		e.submetendo = false
		e.mu.Unlock()
	}()

	if !e.validarCampos() {
		return nil
	}

	registro := e.draft.Get()
	if err := e.atualizar(ctx, &registro); err != nil {
		e.log.Error().Err(err).Msg("falha ao atualizar registro")
		return err
	}
	// o registro devolvido pelo servidor volta para o rascunho
	e.draft.Set(registro)
	return nil
}

// Submetendo informa se há submissão em voo (controles desabilitados).
func (e *Editor[T]) Submetendo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.submetendo
}
