// Package upstream appelle le backend REST de la console avec le jeton de l'utilisateur.
package upstream

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"gestion-projets-core/internal/infrastructure/metrics"
	"gestion-projets-core/internal/shared/envelope"
)

// Taille maximale lue d'une réponse du backend
const maxBodySize = 8 << 20

type tokenKey struct{}

// WithToken attache le jeton bearer de la requête entrante
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func TokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// Error est un échec du backend: statut HTTP, success=false ou transport (Status 0)
type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("backend injoignable: %v", e.Err)
	}
	return fmt.Sprintf("backend (%d): %s", e.Status, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) UpstreamStatus() int { return e.Status }

func (e *Error) UpstreamMessage() string {
	if e.Message == "" {
		return "Le serveur distant est indisponible"
	}
	return e.Message
}

type ClientConfig struct {
	BaseURL  string
	APIToken string
	Timeout  time.Duration
}

// Client pas de retry ni de déduplication: chaque appel part tel quel
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiToken   string
	log        *zap.Logger
}

func NewClient(cfg ClientConfig, log *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiToken:   cfg.APIToken,
		log:        log.Named("upstream"),
	}
}

// Response réponse brute du backend
type Response struct {
	Status int
	Body   []byte
}

// Envelope normalise le corps. Un statut d'erreur sans success explicite devient un échec.
func (r *Response) Envelope() envelope.Envelope {
	if r.Status < http.StatusBadRequest && len(bytes.TrimSpace(r.Body)) == 0 {
		return envelope.Envelope{Success: true, Data: json.RawMessage("null")}
	}
	env := envelope.Normalize(r.Body)
	if r.Status >= http.StatusBadRequest {
		env.Success = false
		if env.Message == "" {
			env.Message = envelope.Message(r.Body)
		}
		if env.Message == "" {
			env.Message = http.StatusText(r.Status)
		}
	}
	return env
}

// Err renvoie une *Error si la réponse est un échec
func (r *Response) Err() error {
	env := r.Envelope()
	if env.Success {
		return nil
	}
	return &Error{Status: r.Status, Message: env.Message}
}

func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, http.MethodGet, path, query, nil)
}

func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, http.MethodPost, path, nil, body)
}

func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, http.MethodPut, path, nil, body)
}

func (c *Client) Del(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, http.MethodDelete, path, nil, nil)
}

// Do exécute la requête. Seuls les échecs de transport sont des erreurs: le statut est dans Response.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body interface{}) (*Response, error) {
	target := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("sérialisation corps de requête: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("construction requête %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.token(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ObserveUpstream(method, 0, time.Since(start))
		c.log.Warn("appel backend échoué", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return nil, &Error{Message: "Le serveur distant est indisponible", Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("lecture réponse %s %s: %w", method, path, err)
	}
	metrics.ObserveUpstream(method, resp.StatusCode, time.Since(start))

	c.log.Debug("appel backend",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)
	return &Response{Status: resp.StatusCode, Body: data}, nil
}

// Ping vérifie que le backend répond (tout statut HTTP convient)
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.Do(ctx, http.MethodGet, "/", nil, nil)
	return err
}

func (c *Client) token(ctx context.Context) string {
	if token := TokenFrom(ctx); token != "" {
		return token
	}
	return c.apiToken
}
