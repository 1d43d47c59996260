package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/seu-usuario/controle-estoque/internal/application/cadastro"
	"github.com/seu-usuario/controle-estoque/internal/application/list"
	"github.com/seu-usuario/controle-estoque/internal/domain"
	"github.com/seu-usuario/controle-estoque/internal/domain/entity"
)

func telaFornecedores(w fyne.Window, deps Deps) fyne.CanvasObject {
	tela := novaTelaLista(w, deps.Fornecedores,
		func(f entity.Fornecedor) int64 { return f.ID },
		linhaFornecedor,
		func(concluir func()) { abrirEdicaoFornecedor(w, deps, concluir) },
	)

	formulario := formFornecedor(w, deps, func() { tela.recarregar() })

	abas := container.NewAppTabs(
		container.NewTabItem("Listagem", tela.Build()),
		container.NewTabItem("Novo Fornecedor", formulario),
	)
	return abas
}

func linhaFornecedor(f entity.Fornecedor, _ *list.Referencias) string {
	return fmt.Sprintf("%d: %s | CNPJ %s | %s/%s | %s", f.ID, f.Nome, f.CNPJ, f.Cidade, f.Estado, f.Email)
}

// formFornecedor formulário de cadastro. Cada campo grava no rascunho a cada
// tecla, então trocar de tela não perde o preenchimento.
func formFornecedor(w fyne.Window, deps Deps, aposCriar func()) fyne.CanvasObject {
	cad := deps.CadFornecedor
	r := cad.Rascunho()

	campos := []struct {
		rotulo  string
		entrada *widget.Entry
	}{
		{"Nome", entradaTexto(r.Nome, func(s string) { cad.Atualizar(func(f *entity.Fornecedor) { f.Nome = s }) })},
		{"CNPJ", entradaTexto(r.CNPJ, func(s string) { cad.Atualizar(func(f *entity.Fornecedor) { f.CNPJ = s }) })},
		{"Telefone", entradaTexto(r.Telefone, func(s string) { cad.Atualizar(func(f *entity.Fornecedor) { f.Telefone = s }) })},
		{"Celular", entradaTexto(r.Celular, func(s string) { cad.Atualizar(func(f *entity.Fornecedor) { f.Celular = s }) })},
		{"E-mail", entradaTexto(r.Email, func(s string) { cad.Atualizar(func(f *entity.Fornecedor) { f.Email = s }) })},
		{"Site", entradaTexto(r.Site, func(s string) { cad.Atualizar(func(f *entity.Fornecedor) { f.Site = s }) })},
		{"CEP", entradaTexto(r.CEP, func(s string) { cad.Atualizar(func(f *entity.Fornecedor) { f.CEP = s }) })},
		{"Endereço", entradaTexto(r.Endereco, func(s string) { cad.Atualizar(func(f *entity.Fornecedor) { f.Endereco = s }) })},
		{"Número", entradaTexto(r.NumeroEndereco, func(s string) { cad.Atualizar(func(f *entity.Fornecedor) { f.NumeroEndereco = s }) })},
		{"Bairro", entradaTexto(r.Bairro, func(s string) { cad.Atualizar(func(f *entity.Fornecedor) { f.Bairro = s }) })},
		{"Cidade", entradaTexto(r.Cidade, func(s string) { cad.Atualizar(func(f *entity.Fornecedor) { f.Cidade = s }) })},
		{"Estado", entradaTexto(r.Estado, func(s string) { cad.Atualizar(func(f *entity.Fornecedor) { f.Estado = s }) })},
		{"Banco", entradaTexto(r.Banco, func(s string) { cad.Atualizar(func(f *entity.Fornecedor) { f.Banco = s }) })},
		{"Tipo de Conta", entradaTexto(r.TipoConta, func(s string) { cad.Atualizar(func(f *entity.Fornecedor) { f.TipoConta = s }) })},
		{"Conta", entradaTexto(r.Conta, func(s string) { cad.Atualizar(func(f *entity.Fornecedor) { f.Conta = s }) })},
		{"Agência", entradaTexto(r.AgenciaBancaria, func(s string) { cad.Atualizar(func(f *entity.Fornecedor) { f.AgenciaBancaria = s }) })},
	}

	itens := make([]*widget.FormItem, 0, len(campos))
	for _, c := range campos {
		itens = append(itens, widget.NewFormItem(c.rotulo, c.entrada))
	}
	form := widget.NewForm(itens...)

	limpar := func() {
		for _, c := range campos {
			c.entrada.SetText("")
		}
	}

	salvarBtn := widget.NewButton("Cadastrar Fornecedor", func() {
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

func abrirEdicaoFornecedor(w fyne.Window, deps Deps, concluir func()) {
	edt := deps.EdtFornecedor
	if _, err := edt.Open(context.Background()); err != nil {
		dialog.ShowError(fmt.Errorf("falha ao preparar a edição: %w", err), w)
	}
	r := edt.Rascunho()

	nome := widget.NewEntry()
	nome.SetText(r.Nome)
	cnpj := widget.NewEntry()
	cnpj.SetText(r.CNPJ)
	celular := widget.NewEntry()
	celular.SetText(r.Celular)
	email := widget.NewEntry()
	email.SetText(r.Email)
	cidade := widget.NewEntry()
	cidade.SetText(r.Cidade)
	estado := widget.NewEntry()
	estado.SetText(r.Estado)

	itens := []*widget.FormItem{
		widget.NewFormItem("Nome", nome),
		widget.NewFormItem("CNPJ", cnpj),
		widget.NewFormItem("Celular", celular),
		widget.NewFormItem("E-mail", email),
		widget.NewFormItem("Cidade", cidade),
		widget.NewFormItem("Estado", estado),
	}
	dlg := dialog.NewForm("Editar Fornecedor", "Salvar", "Cancelar", itens, func(ok bool) {
		if !ok {
			concluir()
			return
		}
		edt.Atualizar(func(f *entity.Fornecedor) {
			f.Nome = nome.Text
			f.CNPJ = cnpj.Text
			f.Celular = celular.Text
			f.Email = email.Text
			f.Cidade = cidade.Text
			f.Estado = estado.Text
		})
		if err := edt.Submit(context.Background()); err != nil {
			dialog.ShowError(fmt.Errorf("falha ao salvar o fornecedor: %w", err), w)
		} else {
			dialog.ShowInformation("Sucesso", "Fornecedor atualizado!", w)
		}
		concluir()
	}, w)
	dlg.Resize(fyne.NewSize(480, 420))
	dlg.Show()
}

// submeterCadastro roda o submit e traduz o resultado em diálogos; devolve
// true quando o registro foi criado.
func submeterCadastro(w fyne.Window, submit func(ctx context.Context) (cadastro.Campos, error)) bool {
	campos, err := submit(context.Background())
	switch {
	case errors.Is(err, domain.ErrValidacao):
		mensagens := make([]string, 0, len(campos))
		for _, msg := range campos {
			mensagens = append(mensagens, msg)
		}
		dialog.ShowError(errors.New(strings.Join(mensagens, "\n")), w)
		return false
	case err != nil:
		dialog.ShowError(fmt.Errorf("falha ao cadastrar: %w", err), w)
		return false
	}
	dialog.ShowInformation("Sucesso", "Registro cadastrado!", w)
	return true
}
