package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seu-usuario/controle-estoque/internal/domain/entity"
)

// EntradaHandler trata as requisições HTTP de entradas de estoque.
type EntradaHandler struct {
	armazem *Armazem
}

// NewEntradaHandler constrói o handler.
func NewEntradaHandler(armazem *Armazem) *EntradaHandler {
	return &EntradaHandler{armazem: armazem}
}

func (h *EntradaHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.armazem.ListarEntradas())
}

func (h *EntradaHandler) Create(c *fiber.Ctx) error {
	var in entity.Entrada
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(erroCorpoInvalido)
	}
	out := h.armazem.CriarEntrada(in)
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *EntradaHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(erroIDInvalido)
	}
	var in entity.Entrada
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(erroCorpoInvalido)
	}
	in.ID = int64(id)
	out, ok := h.armazem.AtualizarEntrada(in)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(erroNaoEncontrado("entrada"))
	}
	return c.JSON(out)
}

func (h *EntradaHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(erroIDInvalido)
	}
	if !h.armazem.ExcluirEntrada(int64(id)) {
		return c.Status(fiber.StatusNotFound).JSON(erroNaoEncontrado("entrada"))
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RetiradaHandler trata as requisições HTTP de saídas de estoque.
type RetiradaHandler struct {
	armazem *Armazem
}

// NewRetiradaHandler constrói o handler.
func NewRetiradaHandler(armazem *Armazem) *RetiradaHandler {
	return &RetiradaHandler{armazem: armazem}
}

func (h *RetiradaHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.armazem.ListarRetiradas())
}

func (h *RetiradaHandler) Create(c *fiber.Ctx) error {
	var in entity.Retirada
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(erroCorpoInvalido)
	}
	out := h.armazem.CriarRetirada(in)
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *RetiradaHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(erroIDInvalido)
	}
	var in entity.Retirada
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(erroCorpoInvalido)
	}
	in.ID = int64(id)
	out, ok := h.armazem.AtualizarRetirada(in)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(erroNaoEncontrado("retirada"))
	}
	return c.JSON(out)
}

func (h *RetiradaHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(erroIDInvalido)
	}
	if !h.armazem.ExcluirRetirada(int64(id)) {
		return c.Status(fiber.StatusNotFound).JSON(erroNaoEncontrado("retirada"))
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// MovimentacaoHandler entrega o relatório agregado somente leitura.
type MovimentacaoHandler struct {
	armazem *Armazem
}

// NewMovimentacaoHandler constrói o handler.
func NewMovimentacaoHandler(armazem *Armazem) *MovimentacaoHandler {
	return &MovimentacaoHandler{armazem: armazem}
}

func (h *MovimentacaoHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.armazem.Movimentacoes())
}
