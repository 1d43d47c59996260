package ui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/seu-usuario/controle-estoque/internal/domain/entity"
	"github.com/seu-usuario/controle-estoque/pkg/format"
)

// telaMovimentacoes relatório agregado somente leitura, com exportação em PDF.
func telaMovimentacoes(w fyne.Window, deps Deps) fyne.CanvasObject {
	rel := deps.Relatorio

	var itens []entity.Movimentacao
	lista := widget.NewList(
		func() int { return len(itens) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(i widget.ListItemID, co fyne.CanvasObject) {
			if i >= len(itens) {
				return
			}
			co.(*widget.Label).SetText(linhaMovimentacao(itens[i]))
		},
	)

	recarregar := func() {
		if err := rel.Load(context.Background()); err != nil {
			dialog.ShowError(fmt.Errorf("falha ao carregar as movimentações: %w", err), w)
		}
		itens = rel.Itens()
		lista.Refresh()
	}

	atualizarBtn := widget.NewButton("Atualizar", recarregar)
	exportarBtn := widget.NewButton("Exportar PDF", func() {
		caminho, err := rel.Exportar(context.Background())
		if err != nil {
			dialog.ShowError(fmt.Errorf("falha ao exportar o relatório: %w", err), w)
			return
		}
		dialog.ShowInformation("Relatório exportado", "Arquivo gravado em:\n"+caminho, w)
		fyne.CurrentApp().SendNotification(fyne.NewNotification(
			"Relatório de movimentações", "PDF gravado em "+caminho,
		))
	})

	recarregar()

	barra := container.NewHBox(atualizarBtn, exportarBtn)
	return container.NewBorder(barra, nil, nil, nil, lista)
}

func linhaMovimentacao(m entity.Movimentacao) string {
	entrada := format.DataISO(m.DataEntrada)
	if entrada == "" {
		entrada = "—"
	}
	saida := format.DataISO(m.DataRetirada)
	if saida == "" {
		saida = "—"
	}
	return fmt.Sprintf("%s | Últ. entrada %s | Últ. saída %s | Entradas %d | Saídas %d | Em estoque %d",
		m.Nome, entrada, saida, m.QuantidadeTotalEntrada, m.QuantidadeTotalSaida, m.QuantidadeEmEstoque)
}
