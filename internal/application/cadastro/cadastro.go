// Package cadastro implementa os formulários de criação: validação de campos
// obrigatórios por tipo, POST no endpoint do tipo e reset do rascunho apenas
// em caso de sucesso, para o usuário não perder o que digitou numa falha.
package cadastro

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/seu-usuario/controle-estoque/internal/application/form"
	"github.com/seu-usuario/controle-estoque/internal/domain"
	"github.com/seu-usuario/controle-estoque/pkg/logger"
)

// Campos erros de validação por campo: nome json -> mensagem exibida inline.
type Campos map[string]string

// rotulos nomes de exibição dos campos nas mensagens de validação.
var rotulos = map[string]string{
	"nome":          "Nome",
	"cnpj":          "CNPJ",
	"celular":       "Celular",
	"email":         "E-mail",
	"cep":           "CEP",
	"endereco":      "Endereço",
	"bairro":        "Bairro",
	"cidade":        "Cidade",
	"estado":        "Estado",
	"categoria":     "Categoria",
	"fornecedor_id": "Fornecedor",
	"produto_id":    "Produto",
	"quantidade":    "Quantidade",
	"data_entrada":  "Data de Entrada",
	"data_retirada": "Data de Retirada",
	"numero_lote":   "Número de Lote",
	"preco_compra":  "Preço de Compra",
	"tipo_retirada": "Tipo de Saída",
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// validador instância compartilhada; reporta erros pelo nome json do campo.
func validador() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

func rotulo(campo string) string {
	if r, ok := rotulos[campo]; ok {
		return r
	}
	campo = strings.ReplaceAll(campo, "_", " ")
	if campo == "" {
		return campo
	}
	return strings.ToUpper(campo[:1]) + campo[1:]
}

// Cadastro fluxo de criação de um registro de tipo T.
type Cadastro[T any] struct {
	kind  form.Kind
	draft *form.Draft[T]
	criar func(ctx context.Context, registro *T) error
	log   *logger.Logger
}

// NewCadastro constrói o fluxo de criação para um tipo.
func NewCadastro[T any](kind form.Kind, draft *form.Draft[T], criar func(ctx context.Context, registro *T) error, log *logger.Logger) *Cadastro[T] {
	return &Cadastro[T]{kind: kind, draft: draft, criar: criar, log: log}
}

// Rascunho devolve o registro em preenchimento.
func (c *Cadastro[T]) Rascunho() T {
	return c.draft.Get()
}

// Atualizar aplica uma mutação de campo ao rascunho.
func (c *Cadastro[T]) Atualizar(fn func(*T)) {
	c.draft.Update(fn)
}

// Cancelar descarta o rascunho deste tipo.
func (c *Cadastro[T]) Cancelar() {
	c.draft.Reset()
}

// Validar valida os campos obrigatórios do rascunho sem submeter.
// Devolve um erro por campo faltante, vazio quando tudo preenchido.
func (c *Cadastro[T]) Validar() Campos {
	registro := c.draft.Get()
	err := validador().Struct(registro)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		c.log.Error().Err(err).Str("kind", c.kind.String()).Msg("falha inesperada na validação")
		return Campos{"": "erro interno de validação"}
	}
	campos := make(Campos, len(errs))
	for _, fe := range errs {
		campos[fe.Field()] = fmt.Sprintf("O campo %s é obrigatório.", rotulo(fe.Field()))
	}
	return campos
}

// Submit valida e envia o rascunho via POST. Com campos faltando nada é
// enviado: os erros voltam por campo e o agregado vira domain.ErrValidacao.
// Falha remota preserva os valores digitados; só o sucesso reseta o rascunho
// deste tipo (os demais tipos nunca são tocados).
func (c *Cadastro[T]) Submit(ctx context.Context) (Campos, error) {
	if campos := c.Validar(); len(campos) > 0 {
		return campos, domain.ErrValidacao
	}

	registro := c.draft.Get()
	if err := c.criar(ctx, &registro); err != nil {
		c.log.Error().Err(err).Str("kind", c.kind.String()).Msg("falha ao cadastrar registro")
		return nil, err
	}

	c.log.Info().Str("kind", c.kind.String()).Msg("registro cadastrado")
	c.draft.Reset()
	return nil, nil
}
