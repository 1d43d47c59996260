package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seu-usuario/controle-estoque/internal/domain/entity"
)

// ProdutoHandler trata as requisições HTTP de produtos.
type ProdutoHandler struct {
	armazem *Armazem
}

// NewProdutoHandler constrói o handler.
func NewProdutoHandler(armazem *Armazem) *ProdutoHandler {
	return &ProdutoHandler{armazem: armazem}
}

func (h *ProdutoHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.armazem.ListarProdutos())
}

// GetByID atende a busca unitária usada para preencher o fornecedor de uma
// entrada a partir do produto escolhido.
func (h *ProdutoHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(erroIDInvalido)
	}
	out, ok := h.armazem.BuscarProduto(int64(id))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(erroNaoEncontrado("produto"))
	}
	return c.JSON(out)
}

func (h *ProdutoHandler) Create(c *fiber.Ctx) error {
	var in entity.Produto
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(erroCorpoInvalido)
	}
	out := h.armazem.CriarProduto(in)
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *ProdutoHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(erroIDInvalido)
	}
	var in entity.Produto
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(erroCorpoInvalido)
	}
	in.ID = int64(id)
	out, ok := h.armazem.AtualizarProduto(in)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(erroNaoEncontrado("produto"))
	}
	return c.JSON(out)
}

func (h *ProdutoHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(erroIDInvalido)
	}
	if !h.armazem.ExcluirProduto(int64(id)) {
		return c.Status(fiber.StatusNotFound).JSON(erroNaoEncontrado("produto"))
	}
	return c.SendStatus(fiber.StatusNoContent)
}
