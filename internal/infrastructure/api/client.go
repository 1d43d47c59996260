// Package api implementa os portos de repositório sobre a API REST remota
// de estoque (JSON, métodos padrão). O servidor é a fonte de verdade; o
// cliente não guarda nada além do que acabou de buscar.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/seu-usuario/controle-estoque/internal/domain"
	"github.com/seu-usuario/controle-estoque/pkg/logger"
)

// Client cliente HTTP compartilhado pelos repositórios. Cada requisição recebe
// um X-Request-ID próprio para correlação nos logs do servidor.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient constrói o cliente da API remota.
func NewClient(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// do executa uma requisição JSON e decodifica a resposta em out (se não for nil).
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("serializar corpo: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("montar requisição: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error().Err(err).
			Str("method", method).
			Str("path", path).
			Str("request_id", requestID).
			Msg("requisição à API falhou")
		return fmt.Errorf("%w: %v", domain.ErrRemoto, err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(started)).
		Msg("requisição à API")

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrNaoEncontrado
	case resp.StatusCode >= 400:
		// corpo de erro é descartado após o log; a tela só mostra a notificação
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.log.Warn().
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Str("body", string(detail)).
			Msg("API devolveu erro")
		return fmt.Errorf("%w: status %d", domain.ErrRemoto, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decodificar resposta: %v", domain.ErrRemoto, err)
	}
	return nil
}

// getList busca a coleção inteira de um recurso (a API não pagina).
func getList[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var items []T
	if err := c.do(ctx, http.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}
