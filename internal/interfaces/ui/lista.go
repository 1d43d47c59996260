package ui

import (
	"context"
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/seu-usuario/controle-estoque/internal/application/list"
	"github.com/seu-usuario/controle-estoque/internal/domain"
)

// telaLista listagem genérica com seleção múltipla por checkbox, seleção
// total, exclusão em lote e abertura do diálogo de edição.
type telaLista[T any] struct {
	w    fyne.Window
	ctrl *list.Controller[T]
	// linha formata um item para exibição, resolvendo nomes pelas referências.
	linha func(item T, refs *list.Referencias) string
	id    func(item T) int64
	// abrirEdicao abre o diálogo de edição do recurso; concluir deve ser
	// chamado ao fechar, com sucesso ou não.
	abrirEdicao func(concluir func())

	itens         []T
	refs          *list.Referencias
	lista         *widget.List
	marcarTodos   *widget.Check
	sincronizando bool
}

func novaTelaLista[T any](
	w fyne.Window,
	ctrl *list.Controller[T],
	id func(item T) int64,
	linha func(item T, refs *list.Referencias) string,
	abrirEdicao func(concluir func()),
) *telaLista[T] {
	return &telaLista[T]{w: w, ctrl: ctrl, id: id, linha: linha, abrirEdicao: abrirEdicao}
}

// Build monta a barra de ações e a lista, e dispara a primeira carga.
func (t *telaLista[T]) Build() fyne.CanvasObject {
	t.lista = widget.NewList(
		func() int { return len(t.itens) },
		func() fyne.CanvasObject {
			return container.NewHBox(widget.NewCheck("", nil), widget.NewLabel(""))
		},
		func(i widget.ListItemID, co fyne.CanvasObject) {
			if i >= len(t.itens) {
				return
			}
			item := t.itens[i]
			itemID := t.id(item)
			caixa := co.(*fyne.Container)
			check := caixa.Objects[0].(*widget.Check)
			rotulo := caixa.Objects[1].(*widget.Label)

			check.OnChanged = nil
			check.SetChecked(t.ctrl.Selecionado(itemID))
			check.OnChanged = func(bool) {
				t.ctrl.ToggleSelect(itemID)
				t.sincronizar(false)
			}
			rotulo.SetText(t.linha(item, t.refs))
		},
	)

	t.marcarTodos = widget.NewCheck("Selecionar todos", func(marcado bool) {
		if t.sincronizando {
			return
		}
		t.ctrl.ToggleSelectAll(marcado)
		t.sincronizar(false)
	})

	atualizarBtn := widget.NewButton("Atualizar", func() {
		t.recarregar()
		fyne.CurrentApp().SendNotification(fyne.NewNotification(
			"Listagem atualizada", fmt.Sprintf("%d item(ns) carregado(s)", len(t.itens)),
		))
	})
	excluirBtn := widget.NewButton("Excluir Selecionados", func() { t.excluir() })
	editarBtn := widget.NewButton("Editar Selecionado", func() { t.editar() })

	barra := container.NewHBox(t.marcarTodos, atualizarBtn, excluirBtn, editarBtn)

	t.recarregar()

	return container.NewBorder(barra, nil, nil, nil, t.lista)
}

// recarregar busca a coleção no servidor e redesenha. Numa falha os dados já
// exibidos permanecem na tela.
func (t *telaLista[T]) recarregar() {
	if err := t.ctrl.Load(context.Background()); err != nil {
		dialog.ShowError(fmt.Errorf("falha ao carregar a listagem: %w", err), t.w)
	}
	t.sincronizar(true)
}

// sincronizar realinha a tela com o estado do controlador.
func (t *telaLista[T]) sincronizar(redesenharItens bool) {
	if redesenharItens {
		t.itens = t.ctrl.Itens()
		t.refs = t.ctrl.Refs()
	}
	t.sincronizando = true
	t.marcarTodos.SetChecked(len(t.itens) > 0 && t.ctrl.TodosSelecionados())
	t.sincronizando = false
	t.lista.Refresh()
}

func (t *telaLista[T]) excluir() {
	if err := t.ctrl.RequestDelete(); err != nil {
		dialog.ShowError(errors.New("selecione ao menos um item para excluir"), t.w)
		return
	}
	total := len(t.ctrl.Selecionados())
	mensagem := fmt.Sprintf("Tem certeza que deseja excluir %d item(ns) selecionado(s)?", total)
	dialog.ShowConfirm("Confirmação", mensagem, func(confirmado bool) {
		if !confirmado {
			t.ctrl.CancelDelete()
			return
		}
		resultado, err := t.ctrl.ConfirmDelete(context.Background())
		if err != nil {
			dialog.ShowError(fmt.Errorf("falha na exclusão: %w", err), t.w)
			return
		}
		dialog.ShowInformation("Exclusão", resultado.Resumo(), t.w)
		t.sincronizar(true)
	}, t.w)
}

func (t *telaLista[T]) editar() {
	_, err := t.ctrl.RequestEdit()
	switch {
	case errors.Is(err, domain.ErrSelecaoVazia):
		dialog.ShowError(errors.New("selecione um item para editar"), t.w)
		return
	case errors.Is(err, domain.ErrSelecaoMultipla):
		dialog.ShowError(errors.New("selecione apenas um item para editar"), t.w)
		return
	case err != nil:
		dialog.ShowError(err, t.w)
		return
	}
	t.abrirEdicao(func() {
		if err := t.ctrl.CloseEdit(context.Background()); err != nil {
			dialog.ShowError(fmt.Errorf("falha ao atualizar a listagem: %w", err), t.w)
		}
		t.sincronizar(true)
	})
}
