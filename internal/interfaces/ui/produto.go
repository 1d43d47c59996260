package ui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/seu-usuario/controle-estoque/internal/application/cadastro"
	"github.com/seu-usuario/controle-estoque/internal/application/list"
	"github.com/seu-usuario/controle-estoque/internal/domain/entity"
)

func telaProdutos(w fyne.Window, deps Deps) fyne.CanvasObject {
	tela := novaTelaLista(w, deps.Produtos,
		func(p entity.Produto) int64 { return p.ID },
		linhaProduto,
		func(concluir func()) { abrirEdicaoProduto(w, deps, concluir) },
	)

	formulario := formProduto(w, deps, func() { tela.recarregar() })

	return container.NewAppTabs(
		container.NewTabItem("Listagem", tela.Build()),
		container.NewTabItem("Novo Produto", formulario),
	)
}

func linhaProduto(p entity.Produto, refs *list.Referencias) string {
	return fmt.Sprintf("%d: %s | %s | %s | Fornecedor: %s",
		p.ID, p.Nome, p.Categoria, p.Marca, refs.NomeFornecedor(p.FornecedorID))
}

func formProduto(w fyne.Window, deps Deps, aposCriar func()) fyne.CanvasObject {
	cad := deps.CadProduto
	r := cad.Rascunho()

	nome := entradaTexto(r.Nome, func(s string) { cad.Atualizar(func(p *entity.Produto) { p.Nome = s }) })
	marca := entradaTexto(r.Marca, func(s string) { cad.Atualizar(func(p *entity.Produto) { p.Marca = s }) })
	categoria := entradaTexto(r.Categoria, func(s string) { cad.Atualizar(func(p *entity.Produto) { p.Categoria = s }) })
	foto := entradaTexto(r.Picture, func(s string) { cad.Atualizar(func(p *entity.Produto) { p.Picture = s }) })
	foto.SetPlaceHolder("URL da foto (vazio usa a imagem padrão)")

	opcoesForn, err := carregarOpcoesFornecedores(context.Background(), deps.FornecedorRepo)
	if err != nil {
		deps.Log.Warn().Err(err).Msg("falha ao carregar fornecedores para o formulário de produto")
	}
	fornecedor := seletor(opcoesForn, r.FornecedorID, func(id int64) {
		cad.Atualizar(func(p *entity.Produto) { p.FornecedorID = id })
	})

	form := widget.NewForm(
		widget.NewFormItem("Nome", nome),
		widget.NewFormItem("Marca", marca),
		widget.NewFormItem("Categoria", categoria),
		widget.NewFormItem("Fornecedor", fornecedor),
		widget.NewFormItem("Foto", foto),
	)

	// A foto ainda não é enviada junto ao cadastro; a tela exibe o ícone
	// padrão enquanto o campo ficar vazio.
	placeholder := widget.NewIcon(theme.FileImageIcon())

	limpar := func() {
		nome.SetText("")
		marca.SetText("")
		categoria.SetText("")
		foto.SetText("")
		fornecedor.ClearSelected()
	}

	salvarBtn := widget.NewButton("Cadastrar Produto", func() {
		if submeterCadastro(w, func(ctx context.Context) (cadastro.Campos, error) { return cad.Submit(ctx) }) {
			limpar()
			aposCriar()
		}
	})
	cancelarBtn := widget.NewButton("Cancelar", func() {
		cad.Cancelar()
		limpar()
	})

	return container.NewVScroll(container.NewVBox(placeholder, form, salvarBtn, cancelarBtn))
}

func abrirEdicaoProduto(w fyne.Window, deps Deps, concluir func()) {
	edt := deps.EdtProduto
	aux, err := edt.Open(context.Background())
	if err != nil {
		dialog.ShowError(fmt.Errorf("falha ao preparar a edição: %w", err), w)
	}
	r := edt.Rascunho()

	nome := widget.NewEntry()
	nome.SetText(r.Nome)
	marca := widget.NewEntry()
	marca.SetText(r.Marca)
	categoria := widget.NewEntry()
	categoria.SetText(r.Categoria)

	opcoesForn := novasOpcoes(aux.Fornecedores)
	fornecedorID := r.FornecedorID
	fornecedor := seletor(opcoesForn, r.FornecedorID, func(id int64) { fornecedorID = id })

	itens := []*widget.FormItem{
		widget.NewFormItem("Nome", nome),
		widget.NewFormItem("Marca", marca),
		widget.NewFormItem("Categoria", categoria),
		widget.NewFormItem("Fornecedor", fornecedor),
	}
	dlg := dialog.NewForm("Editar Produto", "Salvar", "Cancelar", itens, func(ok bool) {
		if !ok {
			concluir()
			return
		}
		edt.Atualizar(func(p *entity.Produto) {
			p.Nome = nome.Text
			p.Marca = marca.Text
			p.Categoria = categoria.Text
			p.FornecedorID = fornecedorID
		})
		if err := edt.Submit(context.Background()); err != nil {
			dialog.ShowError(fmt.Errorf("falha ao salvar o produto: %w", err), w)
		} else {
			dialog.ShowInformation("Sucesso", "Produto atualizado!", w)
		}
		concluir()
	}, w)
	dlg.Resize(fyne.NewSize(440, 360))
	dlg.Show()
}
