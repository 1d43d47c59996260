package ui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2/widget"

	"github.com/seu-usuario/controle-estoque/internal/application/edit"
	"github.com/seu-usuario/controle-estoque/internal/domain/repository"
)

// opcoes mapeia rótulos de um Select para IDs e vice-versa.
type opcoes struct {
	rotulos []string
	porID   map[int64]string
	ids     map[string]int64
}

func novasOpcoes(lista []edit.Opcao) opcoes {
	o := opcoes{
		rotulos: make([]string, 0, len(lista)),
		porID:   make(map[int64]string, len(lista)),
		ids:     make(map[string]int64, len(lista)),
	}
	for _, op := range lista {
		rotulo := fmt.Sprintf("%d: %s", op.ID, op.Nome)
		o.rotulos = append(o.rotulos, rotulo)
		o.porID[op.ID] = rotulo
		o.ids[rotulo] = op.ID
	}
	return o
}

func carregarOpcoesProdutos(ctx context.Context, repo repository.ProdutoRepository) (opcoes, error) {
	produtos, err := repo.List(ctx)
	if err != nil {
		return opcoes{}, err
	}
	lista := make([]edit.Opcao, 0, len(produtos))
	for _, p := range produtos {
		lista = append(lista, edit.Opcao{ID: p.ID, Nome: p.Nome})
	}
	return novasOpcoes(lista), nil
}

func carregarOpcoesFornecedores(ctx context.Context, repo repository.FornecedorRepository) (opcoes, error) {
	fornecedores, err := repo.List(ctx)
	if err != nil {
		return opcoes{}, err
	}
	lista := make([]edit.Opcao, 0, len(fornecedores))
	for _, f := range fornecedores {
		lista = append(lista, edit.Opcao{ID: f.ID, Nome: f.Nome})
	}
	return novasOpcoes(lista), nil
}

// seletor constrói um Select a partir das opções, pré-selecionando o ID atual.
func seletor(o opcoes, atual int64, aoEscolher func(id int64)) *widget.Select {
	sel := widget.NewSelect(o.rotulos, func(escolhido string) {
		if id, ok := o.ids[escolhido]; ok {
			aoEscolher(id)
		}
	})
	if rotulo, ok := o.porID[atual]; ok {
		sel.SetSelected(rotulo)
	}
	return sel
}

// entradaTexto constrói um Entry inicializado que propaga cada tecla para o
// rascunho, preservando o digitado ao navegar entre telas.
func entradaTexto(valor string, aplicar func(string)) *widget.Entry {
	e := widget.NewEntry()
	e.SetText(valor)
	e.OnChanged = aplicar
	return e
}
