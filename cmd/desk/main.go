package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/seu-usuario/controle-estoque/internal/application/cadastro"
	"github.com/seu-usuario/controle-estoque/internal/application/edit"
	"github.com/seu-usuario/controle-estoque/internal/application/form"
	"github.com/seu-usuario/controle-estoque/internal/application/list"
	"github.com/seu-usuario/controle-estoque/internal/application/report"
	infraapi "github.com/seu-usuario/controle-estoque/internal/infrastructure/api"
	infrapdf "github.com/seu-usuario/controle-estoque/internal/infrastructure/pdf"
	"github.com/seu-usuario/controle-estoque/internal/interfaces/ui"
	"github.com/seu-usuario/controle-estoque/pkg/config"
	"github.com/seu-usuario/controle-estoque/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("api", cfg.API.BaseURL).
		Msg("iniciando aplicação")

	client := infraapi.NewClient(cfg.API.BaseURL, cfg.API.Timeout(), log)
	fornecedorRepo := infraapi.NewFornecedorRepository(client)
	produtoRepo := infraapi.NewProdutoRepository(client)
	entradaRepo := infraapi.NewEntradaRepository(client)
	retiradaRepo := infraapi.NewRetiradaRepository(client)
	movimentacaoRepo := infraapi.NewMovimentacaoRepository(client)

	store := form.NewStore(log)

	fornecedores := list.NewController(list.FornecedorAdapter(fornecedorRepo, store), log)
	produtos := list.NewController(list.ProdutoAdapter(produtoRepo, fornecedorRepo, store), log)
	entradas := list.NewController(list.EntradaAdapter(entradaRepo, produtoRepo, fornecedorRepo, store), log)
	retiradas := list.NewController(list.RetiradaAdapter(retiradaRepo, produtoRepo, store), log)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	relatorio := report.NewRelatorio(movimentacaoRepo, pdfGenerator, cfg.Relatorio.Dir, log)

	a := app.NewWithID("com.seu-usuario.controle-estoque")
	w := a.NewWindow(cfg.App.Name)

	deps := ui.Deps{
		Fornecedores: fornecedores,
		Produtos:     produtos,
		Entradas:     entradas,
		Retiradas:    retiradas,

		CadFornecedor: cadastro.NewFornecedorCadastro(store, fornecedorRepo, log),
		CadProduto:    cadastro.NewProdutoCadastro(store, produtoRepo, log),
		CadEntrada:    cadastro.NewEntradaCadastro(store, entradaRepo, produtoRepo, log),
		CadRetirada:   cadastro.NewRetiradaCadastro(store, retiradaRepo, log),

		EdtFornecedor: edit.FornecedorEditor(store, fornecedorRepo, log),
		EdtProduto:    edit.ProdutoEditor(store, produtoRepo, fornecedorRepo, log),
		EdtEntrada:    edit.EntradaEditor(store, entradaRepo, produtoRepo, fornecedorRepo, log),
		EdtRetirada:   edit.RetiradaEditor(store, retiradaRepo, produtoRepo, log),

		ProdutoRepo:    produtoRepo,
		FornecedorRepo: fornecedorRepo,

		Relatorio: relatorio,
		Prefs:     ui.NewPreferencias(a.Preferences()),
		Log:       log,
	}

	w.SetContent(ui.Build(w, deps))
	w.Resize(fyne.NewSize(1100, 700))
	w.ShowAndRun()

	log.Info().Msg("aplicação encerrada")
}
