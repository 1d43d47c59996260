package ui

import (
	"context"
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/shopspring/decimal"

	"github.com/seu-usuario/controle-estoque/internal/application/cadastro"
	"github.com/seu-usuario/controle-estoque/internal/application/list"
	"github.com/seu-usuario/controle-estoque/internal/domain/entity"
	"github.com/seu-usuario/controle-estoque/pkg/format"
)

// ── Entradas ──────────────────────────────────────────────────────────────────

func telaEntradas(w fyne.Window, deps Deps) fyne.CanvasObject {
	tela := novaTelaLista(w, deps.Entradas,
		func(e entity.Entrada) int64 { return e.ID },
		linhaEntrada,
		func(concluir func()) { abrirEdicaoEntrada(w, deps, concluir) },
	)

	formulario := formEntrada(w, deps, func() { tela.recarregar() })

	return container.NewAppTabs(
		container.NewTabItem("Listagem", tela.Build()),
		container.NewTabItem("Nova Entrada", formulario),
	)
}

func linhaEntrada(e entity.Entrada, refs *list.Referencias) string {
	return fmt.Sprintf("%d: %s | Qtd %d | Lote %s | %s | %s | Fornecedor: %s",
		e.ID, refs.NomeProduto(e.ProdutoID), e.Quantidade, e.NumeroLote,
		format.Data(e.DataEntrada), format.Moeda(e.PrecoCompra),
		refs.NomeFornecedor(e.FornecedorID))
}

// formEntrada formulário de nova entrada. Escolher o produto preenche o
// fornecedor automaticamente com o cadastrado para ele.
func formEntrada(w fyne.Window, deps Deps, aposCriar func()) fyne.CanvasObject {
	cad := deps.CadEntrada
	r := cad.Rascunho()

	opcoesProd, err := carregarOpcoesProdutos(context.Background(), deps.ProdutoRepo)
	if err != nil {
		deps.Log.Warn().Err(err).Msg("falha ao carregar produtos para o formulário de entrada")
	}
	opcoesForn, err := carregarOpcoesFornecedores(context.Background(), deps.FornecedorRepo)
	if err != nil {
		deps.Log.Warn().Err(err).Msg("falha ao carregar fornecedores para o formulário de entrada")
	}

	fornecedor := seletor(opcoesForn, r.FornecedorID, func(id int64) {
		cad.Atualizar(func(e *entity.Entrada) { e.FornecedorID = id })
	})

	produto := seletor(opcoesProd, r.ProdutoID, func(id int64) {
		if err := cad.SelecionarProduto(context.Background(), id); err != nil {
			dialog.ShowError(fmt.Errorf("falha ao buscar o produto escolhido: %w", err), w)
			return
		}
		if rotulo, ok := opcoesForn.porID[cad.Rascunho().FornecedorID]; ok {
			fornecedor.SetSelected(rotulo)
		}
	})

	quantidade := entradaTexto(textoInt(r.Quantidade), func(s string) {
		n, _ := strconv.Atoi(s)
		cad.Atualizar(func(e *entity.Entrada) { e.Quantidade = n })
	})
	data := entradaTexto(r.DataEntrada, func(s string) {
		cad.Atualizar(func(e *entity.Entrada) { e.DataEntrada = s })
	})
	data.SetPlaceHolder("YYYY-MM-DD")
	lote := entradaTexto(r.NumeroLote, func(s string) {
		cad.Atualizar(func(e *entity.Entrada) { e.NumeroLote = s })
	})
	preco := entradaTexto(textoDecimal(r.PrecoCompra), func(s string) {
		valor, err := decimal.NewFromString(s)
		if err != nil {
			valor = decimal.Zero
		}
		cad.Atualizar(func(e *entity.Entrada) { e.PrecoCompra = valor })
	})
	preco.SetPlaceHolder("0.00")

	form := widget.NewForm(
		widget.NewFormItem("Produto", produto),
		widget.NewFormItem("Fornecedor", fornecedor),
		widget.NewFormItem("Quantidade", quantidade),
		widget.NewFormItem("Data de Entrada", data),
		widget.NewFormItem("Número de Lote", lote),
		widget.NewFormItem("Preço de Compra", preco),
	)

	limpar := func() {
		produto.ClearSelected()
		fornecedor.ClearSelected()
		quantidade.SetText("")
		data.SetText("")
		lote.SetText("")
		preco.SetText("")
	}

	salvarBtn := widget.NewButton("Registrar Entrada", func() {
		if submeterCadastro(w, func(ctx context.Context) (cadastro.Campos, error) { return cad.Submit(ctx) }) {
			limpar()
			aposCriar()
		}
	})
	cancelarBtn := widget.NewButton("Cancelar", func() {
		cad.Cancelar()
		limpar()
	})

	return container.NewVScroll(container.NewVBox(form, salvarBtn, cancelarBtn))
}

func abrirEdicaoEntrada(w fyne.Window, deps Deps, concluir func()) {
	edt := deps.EdtEntrada
	aux, err := edt.Open(context.Background())
	if err != nil {
		dialog.ShowError(fmt.Errorf("falha ao preparar a edição: %w", err), w)
	}
	r := edt.Rascunho()

	opcoesProd := novasOpcoes(aux.Produtos)
	opcoesForn := novasOpcoes(aux.Fornecedores)

	produtoID := r.ProdutoID
	produto := seletor(opcoesProd, r.ProdutoID, func(id int64) { produtoID = id })
	fornecedorID := r.FornecedorID
	fornecedor := seletor(opcoesForn, r.FornecedorID, func(id int64) { fornecedorID = id })

	quantidade := widget.NewEntry()
	quantidade.SetText(textoInt(r.Quantidade))
	data := widget.NewEntry()
	data.SetText(r.DataEntrada)
	lote := widget.NewEntry()
	lote.SetText(r.NumeroLote)
	preco := widget.NewEntry()
	preco.SetText(textoDecimal(r.PrecoCompra))

	itens := []*widget.FormItem{
		widget.NewFormItem("Produto", produto),
		widget.NewFormItem("Fornecedor", fornecedor),
		widget.NewFormItem("Quantidade", quantidade),
		widget.NewFormItem("Data de Entrada", data),
		widget.NewFormItem("Número de Lote", lote),
		widget.NewFormItem("Preço de Compra", preco),
	}
	dlg := dialog.NewForm("Editar Entrada", "Salvar", "Cancelar", itens, func(ok bool) {
		if !ok {
			concluir()
			return
		}
		qtd, _ := strconv.Atoi(quantidade.Text)
		valor, err := decimal.NewFromString(preco.Text)
		if err != nil {
			valor = decimal.Zero
		}
		edt.Atualizar(func(e *entity.Entrada) {
			e.ProdutoID = produtoID
			e.FornecedorID = fornecedorID
			e.Quantidade = qtd
			e.DataEntrada = data.Text
			e.NumeroLote = lote.Text
			e.PrecoCompra = valor
		})
		if err := edt.Submit(context.Background()); err != nil {
			dialog.ShowError(fmt.Errorf("falha ao salvar a entrada: %w", err), w)
		} else {
			dialog.ShowInformation("Sucesso", "Entrada atualizada!", w)
		}
		concluir()
	}, w)
	dlg.Resize(fyne.NewSize(460, 400))
	dlg.Show()
}

// ── Saídas ────────────────────────────────────────────────────────────────────

func telaRetiradas(w fyne.Window, deps Deps) fyne.CanvasObject {
	tela := novaTelaLista(w, deps.Retiradas,
		func(r entity.Retirada) int64 { return r.ID },
		linhaRetirada,
		func(concluir func()) { abrirEdicaoRetirada(w, deps, concluir) },
	)

	formulario := formRetirada(w, deps, func() { tela.recarregar() })

	return container.NewAppTabs(
		container.NewTabItem("Listagem", tela.Build()),
		container.NewTabItem("Nova Saída", formulario),
	)
}

func linhaRetirada(r entity.Retirada, refs *list.Referencias) string {
	return fmt.Sprintf("%d: %s | Qtd %d | %s | %s | Lote %s",
		r.ID, refs.NomeProduto(r.ProdutoID), r.Quantidade, r.TipoRetirada,
		format.Data(r.DataRetirada), r.NumeroLote)
}

func formRetirada(w fyne.Window, deps Deps, aposCriar func()) fyne.CanvasObject {
	cad := deps.CadRetirada
	r := cad.Rascunho()

	opcoesProd, err := carregarOpcoesProdutos(context.Background(), deps.ProdutoRepo)
	if err != nil {
		deps.Log.Warn().Err(err).Msg("falha ao carregar produtos para o formulário de saída")
	}
	produto := seletor(opcoesProd, r.ProdutoID, func(id int64) {
		cad.Atualizar(func(ret *entity.Retirada) { ret.ProdutoID = id })
	})

	quantidade := entradaTexto(textoInt(r.Quantidade), func(s string) {
		n, _ := strconv.Atoi(s)
		cad.Atualizar(func(ret *entity.Retirada) { ret.Quantidade = n })
	})
	tipo := entradaTexto(r.TipoRetirada, func(s string) {
		cad.Atualizar(func(ret *entity.Retirada) { ret.TipoRetirada = s })
	})
	tipo.SetPlaceHolder("venda, perda, ajuste...")
	data := entradaTexto(r.DataRetirada, func(s string) {
		cad.Atualizar(func(ret *entity.Retirada) { ret.DataRetirada = s })
	})
	data.SetPlaceHolder("YYYY-MM-DD")
	lote := entradaTexto(r.NumeroLote, func(s string) {
		cad.Atualizar(func(ret *entity.Retirada) { ret.NumeroLote = s })
	})

	form := widget.NewForm(
		widget.NewFormItem("Produto", produto),
		widget.NewFormItem("Quantidade", quantidade),
		widget.NewFormItem("Tipo de Saída", tipo),
		widget.NewFormItem("Data de Saída", data),
		widget.NewFormItem("Número de Lote", lote),
	)

	limpar := func() {
		produto.ClearSelected()
		quantidade.SetText("")
		tipo.SetText("")
		data.SetText("")
		lote.SetText("")
	}

	salvarBtn := widget.NewButton("Registrar Saída", func() {
		if submeterCadastro(w, func(ctx context.Context) (cadastro.Campos, error) { return cad.Submit(ctx) }) {
			limpar()
			aposCriar()
		}
	})
	cancelarBtn := widget.NewButton("Cancelar", func() {
		cad.Cancelar()
		limpar()
	})

	return container.NewVScroll(container.NewVBox(form, salvarBtn, cancelarBtn))
}

func abrirEdicaoRetirada(w fyne.Window, deps Deps, concluir func()) {
	edt := deps.EdtRetirada
	aux, err := edt.Open(context.Background())
	if err != nil {
		dialog.ShowError(fmt.Errorf("falha ao preparar a edição: %w", err), w)
	}
	r := edt.Rascunho()

	opcoesProd := novasOpcoes(aux.Produtos)
	produtoID := r.ProdutoID
	produto := seletor(opcoesProd, r.ProdutoID, func(id int64) { produtoID = id })

	quantidade := widget.NewEntry()
	quantidade.SetText(textoInt(r.Quantidade))
	tipo := widget.NewEntry()
	tipo.SetText(r.TipoRetirada)
	data := widget.NewEntry()
	data.SetText(r.DataRetirada)
	lote := widget.NewEntry()
	lote.SetText(r.NumeroLote)

	itens := []*widget.FormItem{
		widget.NewFormItem("Produto", produto),
		widget.NewFormItem("Quantidade", quantidade),
		widget.NewFormItem("Tipo de Saída", tipo),
		widget.NewFormItem("Data de Saída", data),
		widget.NewFormItem("Número de Lote", lote),
	}
	dlg := dialog.NewForm("Editar Saída", "Salvar", "Cancelar", itens, func(ok bool) {
		if !ok {
			concluir()
			return
		}
		qtd, _ := strconv.Atoi(quantidade.Text)
		edt.Atualizar(func(ret *entity.Retirada) {
			ret.ProdutoID = produtoID
			ret.Quantidade = qtd
			ret.TipoRetirada = tipo.Text
			ret.DataRetirada = data.Text
			ret.NumeroLote = lote.Text
		})
		if err := edt.Submit(context.Background()); err != nil {
			dialog.ShowError(fmt.Errorf("falha ao salvar a saída: %w", err), w)
		} else {
			dialog.ShowInformation("Sucesso", "Saída atualizada!", w)
		}
		concluir()
	}, w)
	dlg.Resize(fyne.NewSize(440, 380))
	dlg.Show()
}

// ── helpers ───────────────────────────────────────────────────────────────────

func textoInt(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func textoDecimal(d decimal.Decimal) string {
	if d.IsZero() {
		return ""
	}
	return d.String()
}
