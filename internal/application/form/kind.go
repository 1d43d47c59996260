package form

import "fmt"

// Kind identifica o tipo de formulário dono de um rascunho no store.
type Kind int

const (
	KindFornecedor Kind = iota
	KindProduto
	KindUsuario
	KindEntrada
	KindRetirada
)

// String devolve o nome do tipo como usado nas telas e nos logs.
func (k Kind) String() string {
	switch k {
	case KindFornecedor:
		return "fornecedor"
	case KindProduto:
		return "produto"
	case KindUsuario:
		return "usuario"
	case KindEntrada:
		return "entrada"
	case KindRetirada:
		return "retirada"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind converte o nome textual em Kind. Nomes desconhecidos devolvem erro
// para o chamador decidir (o store trata como no-op logado).
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "fornecedor":
		return KindFornecedor, true
	case "produto":
		return KindProduto, true
	case "usuario":
		return KindUsuario, true
	case "entrada":
		return KindEntrada, true
	case "retirada":
		return KindRetirada, true
	default:
		return 0, false
	}
}
