package ui

import "fyne.io/fyne/v2"

// Chaves dos grupos do menu lateral.
const (
	SubmenuCadastro   = "cadastro"
	SubmenuEstoque    = "estoque"
	SubmenuRelatorios = "relatorios"
)

const (
	chaveUltimaTela    = "ui.ultima_tela"
	chaveMenuRecolhido = "ui.menu_recolhido"
	prefixoSubmenu     = "ui.submenu_aberto."
	padraoSubmenuAbrir = true
)

// Preferencias persiste o estado de navegação entre sessões usando as
// preferências da aplicação.
type Preferencias struct {
	prefs fyne.Preferences
}

// NewPreferencias constrói o acesso às preferências.
func NewPreferencias(prefs fyne.Preferences) *Preferencias {
	return &Preferencias{prefs: prefs}
}

// UltimaTela devolve a última tela aberta; fornecedores na primeira execução.
func (p *Preferencias) UltimaTela() string {
	return p.prefs.StringWithFallback(chaveUltimaTela, TelaFornecedores)
}

func (p *Preferencias) SetUltimaTela(tela string) {
	p.prefs.SetString(chaveUltimaTela, tela)
}

// MenuRecolhido informa se o menu lateral estava recolhido.
func (p *Preferencias) MenuRecolhido() bool {
	return p.prefs.Bool(chaveMenuRecolhido)
}

func (p *Preferencias) SetMenuRecolhido(recolhido bool) {
	p.prefs.SetBool(chaveMenuRecolhido, recolhido)
}

// SubmenuAberto informa se o grupo do menu estava aberto. Grupos começam
// abertos na primeira execução.
func (p *Preferencias) SubmenuAberto(chave string) bool {
	return p.prefs.BoolWithFallback(prefixoSubmenu+chave, padraoSubmenuAbrir)
}

func (p *Preferencias) SetSubmenuAberto(chave string, aberto bool) {
	p.prefs.SetBool(prefixoSubmenu+chave, aberto)
}
