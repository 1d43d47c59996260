package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNaoEncontrado     = errors.New("recurso não encontrado")
	ErrEntradaInvalida   = errors.New("entrada inválida")
	ErrRemoto            = errors.New("falha na comunicação com a API")
	ErrSelecaoVazia      = errors.New("nenhum item selecionado")
	ErrSelecaoMultipla   = errors.New("mais de um item selecionado")
	ErrTipoDesconhecido  = errors.New("tipo de formulário desconhecido")
	ErrValidacao         = errors.New("campos obrigatórios não preenchidos")
)

// RotuloDesconhecido é o texto exibido quando uma referência (fornecedor_id,
// produto_id) não resolve contra a coleção auxiliar carregada. Nunca vira erro.
const RotuloDesconhecido = "Desconhecido"
