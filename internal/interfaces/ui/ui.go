// Package ui monta as telas da aplicação de mesa: navegação lateral com
// grupos recolhíveis, telas de listagem com seleção múltipla, formulários de
// cadastro, diálogos de edição e o relatório de movimentações.
package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/seu-usuario/controle-estoque/internal/application/cadastro"
	"github.com/seu-usuario/controle-estoque/internal/application/edit"
	"github.com/seu-usuario/controle-estoque/internal/application/list"
	"github.com/seu-usuario/controle-estoque/internal/application/report"
	"github.com/seu-usuario/controle-estoque/internal/domain/entity"
	"github.com/seu-usuario/controle-estoque/internal/domain/repository"
	"github.com/seu-usuario/controle-estoque/pkg/logger"
)

// Nomes das telas, persistidos na preferência de última tela aberta.
const (
	TelaFornecedores  = "fornecedores"
	TelaProdutos      = "produtos"
	TelaEntradas      = "entradas"
	TelaRetiradas     = "retiradas"
	TelaMovimentacoes = "movimentacoes"
)

// Deps dependências das telas.
type Deps struct {
	Fornecedores *list.Controller[entity.Fornecedor]
	Produtos     *list.Controller[entity.Produto]
	Entradas     *list.Controller[entity.Entrada]
	Retiradas    *list.Controller[entity.Retirada]

	CadFornecedor *cadastro.Cadastro[entity.Fornecedor]
	CadProduto    *cadastro.Cadastro[entity.Produto]
	CadEntrada    *cadastro.EntradaCadastro
	CadRetirada   *cadastro.Cadastro[entity.Retirada]

	EdtFornecedor *edit.Editor[entity.Fornecedor]
	EdtProduto    *edit.Editor[entity.Produto]
	EdtEntrada    *edit.Editor[entity.Entrada]
	EdtRetirada   *edit.Editor[entity.Retirada]

	ProdutoRepo    repository.ProdutoRepository
	FornecedorRepo repository.FornecedorRepository

	Relatorio *report.Relatorio
	Prefs     *Preferencias
	Log       *logger.Logger
}

// Build monta o conteúdo da janela principal: menu lateral recolhível à
// esquerda e a tela ativa à direita. O estado do menu persiste entre sessões.
func Build(w fyne.Window, deps Deps) fyne.CanvasObject {
	conteudo := container.NewStack()

	var menu *menuLateral
	mostrar := func(tela string) {
		deps.Prefs.SetUltimaTela(tela)
		if menu != nil {
			menu.salvarEstado()
		}
		conteudo.Objects = []fyne.CanvasObject{construirTela(w, deps, tela)}
		conteudo.Refresh()
	}

	menu = novoMenuLateral(deps.Prefs, mostrar)
	mostrar(deps.Prefs.UltimaTela())

	split := container.NewHSplit(menu.raiz, conteudo)
	aplicarRecolhimento := func(recolhido bool) {
		if recolhido {
			split.SetOffset(0)
		} else {
			split.SetOffset(0.22)
		}
	}
	aplicarRecolhimento(deps.Prefs.MenuRecolhido())

	alternarMenu := widget.NewButton("☰ Menu", func() {
		recolhido := !deps.Prefs.MenuRecolhido()
		deps.Prefs.SetMenuRecolhido(recolhido)
		aplicarRecolhimento(recolhido)
	})

	return container.NewBorder(container.NewHBox(alternarMenu), nil, nil, nil, split)
}

func construirTela(w fyne.Window, deps Deps, tela string) fyne.CanvasObject {
	switch tela {
	case TelaProdutos:
		return telaProdutos(w, deps)
	case TelaEntradas:
		return telaEntradas(w, deps)
	case TelaRetiradas:
		return telaRetiradas(w, deps)
	case TelaMovimentacoes:
		return telaMovimentacoes(w, deps)
	default:
		return telaFornecedores(w, deps)
	}
}

// menuLateral acordeão de navegação com estado de abertura persistente.
type menuLateral struct {
	raiz     fyne.CanvasObject
	acordeao *widget.Accordion
	chaves   []string
	prefs    *Preferencias
}

func novoMenuLateral(prefs *Preferencias, mostrar func(tela string)) *menuLateral {
	item := func(rotulo, tela string) fyne.CanvasObject {
		return widget.NewButton(rotulo, func() { mostrar(tela) })
	}

	grupos := []struct {
		nome  string
		chave string
		itens fyne.CanvasObject
	}{
		{"Cadastro", SubmenuCadastro, container.NewVBox(
			item("Fornecedores", TelaFornecedores),
			item("Produtos", TelaProdutos),
		)},
		{"Estoque", SubmenuEstoque, container.NewVBox(
			item("Entradas", TelaEntradas),
			item("Saídas", TelaRetiradas),
		)},
		{"Relatórios", SubmenuRelatorios, container.NewVBox(
			item("Movimentações", TelaMovimentacoes),
		)},
	}

	acordeao := widget.NewAccordion()
	acordeao.MultiOpen = true
	chaves := make([]string, 0, len(grupos))
	for _, g := range grupos {
		ai := widget.NewAccordionItem(g.nome, g.itens)
		ai.Open = prefs.SubmenuAberto(g.chave)
		acordeao.Append(ai)
		chaves = append(chaves, g.chave)
	}

	return &menuLateral{
		raiz:     container.NewVScroll(acordeao),
		acordeao: acordeao,
		chaves:   chaves,
		prefs:    prefs,
	}
}

// salvarEstado grava quais grupos estão abertos. O Accordion não expõe
// callback de abertura, então o estado é colhido a cada troca de tela.
func (m *menuLateral) salvarEstado() {
	for i, ai := range m.acordeao.Items {
		m.prefs.SetSubmenuAberto(m.chaves[i], ai.Open)
	}
}
