package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/seu-usuario/controle-estoque/pkg/logger"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	Armazem *Armazem
	Log     *logger.Logger
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(requestIDMiddleware(deps.Log))

	fornecedores := app.Group("/fornecedores")
	fornecedorHandler := NewFornecedorHandler(deps.Armazem)
	fornecedores.Get("/", fornecedorHandler.List)
	fornecedores.Post("/", fornecedorHandler.Create)
	fornecedores.Put("/:id", fornecedorHandler.Update)
	fornecedores.Delete("/:id", fornecedorHandler.Delete)

	produtos := app.Group("/produtos")
	produtoHandler := NewProdutoHandler(deps.Armazem)
	produtos.Get("/", produtoHandler.List)
	produtos.Get("/:id", produtoHandler.GetByID)
	produtos.Post("/", produtoHandler.Create)
	produtos.Put("/:id", produtoHandler.Update)
	produtos.Delete("/:id", produtoHandler.Delete)

	entradas := app.Group("/entradas")
	entradaHandler := NewEntradaHandler(deps.Armazem)
	entradas.Get("/", entradaHandler.List)
	entradas.Post("/", entradaHandler.Create)
	entradas.Put("/:id", entradaHandler.Update)
	entradas.Delete("/:id", entradaHandler.Delete)

	retiradas := app.Group("/retiradas")
	retiradaHandler := NewRetiradaHandler(deps.Armazem)
	retiradas.Get("/", retiradaHandler.List)
	retiradas.Post("/", retiradaHandler.Create)
	retiradas.Put("/:id", retiradaHandler.Update)
	retiradas.Delete("/:id", retiradaHandler.Delete)

	movimentacaoHandler := NewMovimentacaoHandler(deps.Armazem)
	app.Get("/movimentacoes", movimentacaoHandler.List)
}

// requestIDMiddleware propaga o X-Request-ID do cliente (ou gera um) e
// registra cada requisição atendida.
func requestIDMiddleware(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(fiber.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(fiber.HeaderXRequestID, requestID)

		inicio := time.Now()
		err := c.Next()

		log.Info().
			Str("request_id", requestID).
			Str("metodo", c.Method()).
			Str("rota", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duracao", time.Since(inicio)).
			Msg("requisição atendida")
		return err
	}
}
