// Package list implementa o controlador genérico de telas de listagem:
// busca da coleção, seleção múltipla, exclusão em lote com resultado por item
// e o fluxo de edição de um único registro. As cinco telas do sistema são a
// mesma máquina de estados parametrizada por um Adapter.
package list

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/seu-usuario/controle-estoque/internal/domain"
	"github.com/seu-usuario/controle-estoque/pkg/logger"
)

// Estado da máquina de estados do controlador.
type Estado int

const (
	EstadoInicial    Estado = iota // montado, nada buscado ainda
	EstadoCarregando               // busca em andamento
	EstadoCarregado                // coleção disponível (estado de repouso)
)

// maxExclusoesSimultaneas limita as requisições DELETE concorrentes do lote.
const maxExclusoesSimultaneas = 4

// Adapter parametriza o controlador para um tipo de entidade: endpoints,
// acesso ao ID e as coleções auxiliares que a exibição precisa resolver.
type Adapter[T any] struct {
	// Recurso nome do recurso para logs ("produtos", "entradas"...).
	Recurso string
	// Fetch busca a coleção inteira (a API não pagina).
	Fetch func(ctx context.Context) ([]T, error)
	// Delete remove um registro pelo ID.
	Delete func(ctx context.Context, id int64) error
	// ID extrai o identificador de um registro.
	ID func(T) int64
	// CarregarRascunho empurra o registro selecionado para o form store
	// ao abrir a edição.
	CarregarRascunho func(T)
	// Referencias carrega as coleções auxiliares de exibição. Opcional; falha
	// aqui degrada a exibição para "Desconhecido" em vez de derrubar a listagem.
	Referencias func(ctx context.Context) (*Referencias, error)
}

// Controller máquina de estados de uma tela de listagem.
type Controller[T any] struct {
	adapter Adapter[T]
	log     *logger.Logger

	mu          sync.Mutex
	estado      Estado
	itens       []T
	selecao     map[int64]struct{}
	refs        *Referencias
	geracao     uint64 // token de geração: resposta de busca superada é descartada
	editando    bool
	confirmando bool

	observers []func()
}

// NewController constrói o controlador no estado inicial (nada carregado).
func NewController[T any](adapter Adapter[T], log *logger.Logger) *Controller[T] {
	return &Controller[T]{
		adapter: adapter,
		log:     log,
		selecao: make(map[int64]struct{}),
	}
}

// Subscribe registra um observador chamado após cada transição visível.
func (c *Controller[T]) Subscribe(fn func()) {
	c.mu.Lock()
	c.observers = append(c.observers, fn)
	c.mu.Unlock()
}

func (c *Controller[T]) notify() {
	c.mu.Lock()
	obs := make([]func(), len(c.observers))
	copy(obs, c.observers)
	c.mu.Unlock()
	for _, fn := range obs {
		fn()
	}
}

// Load busca a coleção (e as referências auxiliares) e substitui o estado por
// inteiro. Em caso de falha os dados anteriores permanecem na tela: uma falha
// transitória de refresh não destrói uma tabela visível. Uma resposta que
// chega depois de outro Load ter começado é descartada pelo token de geração.
func (c *Controller[T]) Load(ctx context.Context) error {
	c.mu.Lock()
	c.geracao++
	g := c.geracao
	c.estado = EstadoCarregando
	c.mu.Unlock()
	c.notify()

	itens, err := c.adapter.Fetch(ctx)

	var refs *Referencias
	if err == nil && c.adapter.Referencias != nil {
		var refErr error
		refs, refErr = c.adapter.Referencias(ctx)
		if refErr != nil {
			// a exibição degrada para "Desconhecido"; a listagem continua
			c.log.Warn().Err(refErr).Str("recurso", c.adapter.Recurso).
				Msg("falha ao carregar coleções auxiliares")
			refs = nil
		}
	}

	c.mu.Lock()
	if g != c.geracao {
		// outro Load começou enquanto este esperava a rede
		c.mu.Unlock()
		c.log.Debug().Str("recurso", c.adapter.Recurso).Msg("resposta superada descartada")
		return nil
	}

	if err != nil {
		if len(c.itens) > 0 {
			c.estado = EstadoCarregado
		} else {
			c.estado = EstadoInicial
		}
		c.mu.Unlock()
		c.notify()
		c.log.Error().Err(err).Str("recurso", c.adapter.Recurso).Msg("falha ao buscar listagem")
		return fmt.Errorf("buscar %s: %w", c.adapter.Recurso, err)
	}

	c.itens = itens
	c.refs = refs
	c.reconciliarSelecao()
	c.estado = EstadoCarregado
	c.mu.Unlock()
	c.notify()
	return nil
}

// reconciliarSelecao remove da seleção todo ID que não existe mais na coleção.
// Mantém o invariante: seleção é sempre subconjunto dos IDs carregados.
func (c *Controller[T]) reconciliarSelecao() {
	vivos := make(map[int64]struct{}, len(c.itens))
	for _, item := range c.itens {
		vivos[c.adapter.ID(item)] = struct{}{}
	}
	for id := range c.selecao {
		if _, ok := vivos[id]; !ok {
			delete(c.selecao, id)
		}
	}
}

// Estado devolve o estado atual da máquina.
func (c *Controller[T]) Estado() Estado {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.estado
}

// Itens devolve uma cópia da coleção carregada.
func (c *Controller[T]) Itens() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.itens))
	copy(out, c.itens)
	return out
}

// Refs devolve as coleções auxiliares da última busca (pode ser nil).
func (c *Controller[T]) Refs() *Referencias {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.refs
}

// ToggleSelect alterna a seleção de um ID. IDs fora da coleção são ignorados.
func (c *Controller[T]) ToggleSelect(id int64) {
	c.mu.Lock()
	existe := false
	for _, item := range c.itens {
		if c.adapter.ID(item) == id {
			existe = true
			break
		}
	}
	if !existe {
		c.mu.Unlock()
		return
	}
	if _, ok := c.selecao[id]; ok {
		delete(c.selecao, id)
	} else {
		c.selecao[id] = struct{}{}
	}
	c.mu.Unlock()
	c.notify()
}

// ToggleSelectAll seleciona todos os IDs carregados ou limpa a seleção.
func (c *Controller[T]) ToggleSelectAll(marcado bool) {
	c.mu.Lock()
	c.selecao = make(map[int64]struct{})
	if marcado {
		for _, item := range c.itens {
			c.selecao[c.adapter.ID(item)] = struct{}{}
		}
	}
	c.mu.Unlock()
	c.notify()
}

// Selecionados devolve os IDs selecionados em ordem crescente.
func (c *Controller[T]) Selecionados() []int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	ids := make([]int64, 0, len(c.selecao))
	for id := range c.selecao {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Selecionado informa se um ID está selecionado.
func (c *Controller[T]) Selecionado(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.selecao[id]
	return ok
}

// TodosSelecionados é o estado derivado do checkbox "selecionar tudo":
// igualdade entre seleção e coleção, nunca um booleano armazenado à parte.
func (c *Controller[T]) TodosSelecionados() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.selecao) == len(c.itens)
}

// RequestDelete abre a confirmação de exclusão. Seleção vazia é recusada.
func (c *Controller[T]) RequestDelete() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.selecao) == 0 {
		return domain.ErrSelecaoVazia
	}
	c.confirmando = true
	return nil
}

// CancelDelete fecha a confirmação sem excluir nada.
func (c *Controller[T]) CancelDelete() {
	c.mu.Lock()
	c.confirmando = false
	c.mu.Unlock()
	c.notify()
}

// ConfirmandoExclusao informa se o diálogo de confirmação está aberto.
func (c *Controller[T]) ConfirmandoExclusao() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.confirmando
}

// RequestEdit valida que exatamente um item está selecionado, empurra o
// registro para o form store e abre o fluxo de edição. Com seleção vazia ou
// múltipla nada é mutado.
func (c *Controller[T]) RequestEdit() (T, error) {
	var zero T
	c.mu.Lock()
	switch {
	case len(c.selecao) == 0:
		c.mu.Unlock()
		return zero, domain.ErrSelecaoVazia
	case len(c.selecao) > 1:
		c.mu.Unlock()
		return zero, domain.ErrSelecaoMultipla
	}
	var alvo int64
	for id := range c.selecao {
		alvo = id
	}
	var item T
	achou := false
	for _, it := range c.itens {
		if c.adapter.ID(it) == alvo {
			item = it
			achou = true
			break
		}
	}
	if !achou {
		c.mu.Unlock()
		return zero, domain.ErrNaoEncontrado
	}
	c.editando = true
	c.mu.Unlock()

	c.adapter.CarregarRascunho(item)
	c.notify()
	return item, nil
}

// Editando informa se o fluxo de edição está aberto.
func (c *Controller[T]) Editando() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.editando
}

// CloseEdit fecha a edição e recarrega incondicionalmente: o controlador não
// sabe se a edição mudou algo, então sempre busca de novo. Escolha deliberada
// de simplicidade sobre eficiência.
func (c *Controller[T]) CloseEdit(ctx context.Context) error {
	c.mu.Lock()
	c.editando = false
	c.mu.Unlock()
	return c.Load(ctx)
}
