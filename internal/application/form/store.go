// Package form guarda o rascunho em edição de cada tipo de formulário.
// Um rascunho por tipo, mutação tipada por campo e reset global: cinco
// formulários quase idênticos compartilham uma única implementação.
package form

import (
	"sync"

	"github.com/seu-usuario/controle-estoque/internal/domain/entity"
	"github.com/seu-usuario/controle-estoque/pkg/logger"
)

// Draft rascunho tipado de um formulário. O template vazio é o zero value do
// tipo; Set substitui o registro inteiro (nunca merge), Update muta campos
// específicos com verificação de tipo em tempo de compilação.
type Draft[T any] struct {
	mu        sync.RWMutex
	value     T
	observers []func()
}

// Get devolve o rascunho atual. Nunca falha: sem edição ativa devolve o template vazio.
func (d *Draft[T]) Get() T {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.value
}

// Set substitui o rascunho por inteiro. Campos ausentes no novo registro não
// retêm valor antigo: a substituição é total, não um merge.
func (d *Draft[T]) Set(v T) {
	d.mu.Lock()
	d.value = v
	d.mu.Unlock()
	d.notify()
}

// Update aplica uma mutação de campo ao rascunho, preservando os demais campos.
func (d *Draft[T]) Update(fn func(*T)) {
	d.mu.Lock()
	fn(&d.value)
	d.mu.Unlock()
	d.notify()
}

// Reset restaura o template vazio do tipo.
func (d *Draft[T]) Reset() {
	var vazio T
	d.Set(vazio)
}

// Subscribe registra um observador chamado após cada mutação (re-render da tela).
func (d *Draft[T]) Subscribe(fn func()) {
	d.mu.Lock()
	d.observers = append(d.observers, fn)
	d.mu.Unlock()
}

func (d *Draft[T]) notify() {
	d.mu.RLock()
	obs := make([]func(), len(d.observers))
	copy(obs, d.observers)
	d.mu.RUnlock()
	for _, fn := range obs {
		fn()
	}
}

// Store agrega o rascunho de cada tipo de formulário. Editar um tipo jamais
// toca o rascunho de outro.
type Store struct {
	Fornecedor Draft[entity.Fornecedor]
	Produto    Draft[entity.Produto]
	Usuario    Draft[entity.Usuario]
	Entrada    Draft[entity.Entrada]
	Retirada   Draft[entity.Retirada]

	log *logger.Logger
}

// NewStore constrói o store com todos os rascunhos no template vazio.
func NewStore(log *logger.Logger) *Store {
	return &Store{log: log}
}

// Reset restaura o template vazio de um tipo. Tipo desconhecido é no-op logado,
// nunca derruba o chamador.
func (s *Store) Reset(kind Kind) {
	switch kind {
	case KindFornecedor:
		s.Fornecedor.Reset()
	case KindProduto:
		s.Produto.Reset()
	case KindUsuario:
		s.Usuario.Reset()
	case KindEntrada:
		s.Entrada.Reset()
	case KindRetirada:
		s.Retirada.Reset()
	default:
		s.log.Warn().Str("kind", kind.String()).Msg("tipo de formulário desconhecido no reset")
	}
}

// ResetAll restaura todos os rascunhos. Cancelar e concluir com sucesso passam
// pelo mesmo reset.
func (s *Store) ResetAll() {
	s.Fornecedor.Reset()
	s.Produto.Reset()
	s.Usuario.Reset()
	s.Entrada.Reset()
	s.Retirada.Reset()
}
