package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seu-usuario/controle-estoque/internal/domain/entity"
)

// FornecedorHandler trata as requisições HTTP de fornecedores.
type FornecedorHandler struct {
	armazem *Armazem
}

// NewFornecedorHandler constrói o handler.
func NewFornecedorHandler(armazem *Armazem) *FornecedorHandler {
	return &FornecedorHandler{armazem: armazem}
}

func (h *FornecedorHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.armazem.ListarFornecedores())
}

func (h *FornecedorHandler) Create(c *fiber.Ctx) error {
	var in entity.Fornecedor
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(erroCorpoInvalido)
	}
	out := h.armazem.CriarFornecedor(in)
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *FornecedorHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(erroIDInvalido)
	}
	var in entity.Fornecedor
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(erroCorpoInvalido)
	}
	in.ID = int64(id)
	out, ok := h.armazem.AtualizarFornecedor(in)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(erroNaoEncontrado("fornecedor"))
	}
	return c.JSON(out)
}

func (h *FornecedorHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(erroIDInvalido)
	}
	if !h.armazem.ExcluirFornecedor(int64(id)) {
		return c.Status(fiber.StatusNotFound).JSON(erroNaoEncontrado("fornecedor"))
	}
	return c.SendStatus(fiber.StatusNoContent)
}
