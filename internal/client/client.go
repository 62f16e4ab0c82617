package client

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// Ресурсы кэша запросов. Ключ запроса начинается с имени ресурса.
const (
	resourceRegions    = "regions"
	resourceCategories = "categories"
	resourceListings   = "listings"
	resourceRoutes     = "routes"
	resourceMedia      = "media"
	resourceStats      = "stats"
)

// ErrDeleteDeclined - удаление не подтверждено, запрос не отправлялся
var ErrDeleteDeclined = stderrors.New("delete declined")

// APIError - ошибка из конверта {error: {code, message, details}}
type APIError struct {
	Status  int                    `json:"-"`
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.Status, e.Code, e.Message)
}

// RecoveryPath - куда предлагается вернуться после 404
func (e *APIError) RecoveryPath() string {
	path, _ := e.Details["recovery_path"].(string)
	return path
}

// Config - настройки клиента
type Config struct {
	BaseURL  string
	Timeout  time.Duration
	QueryTTL time.Duration
}

// Client - типизированный клиент API портала с кэшем запросов.
// Успешные изменения через админские методы сбрасывают кэш затронутых ресурсов.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
	queries    *cache.Cache

	mu    sync.RWMutex
	token string
}

// New создает клиента
func New(cfg Config, logger *zap.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.QueryTTL <= 0 {
		cfg.QueryTTL = time.Minute
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/") + "/api/v1",
		logger:     logger,
		queries:    cache.New(cfg.QueryTTL, 2*cfg.QueryTTL),
	}
}

// SetToken задаёт bearer-токен для последующих запросов
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Invalidate удаляет из кэша все запросы указанных ресурсов
func (c *Client) Invalidate(resources ...string) {
	for key := range c.queries.Items() {
		for _, r := range resources {
			if strings.HasPrefix(key, r+":") {
				c.queries.Delete(key)
				break
			}
		}
	}
}

// query выполняет GET с кэшированием. В кэше хранится сырой JSON поля data,
// чтобы вызывающие не делили один экземпляр результата.
func (c *Client) query(ctx context.Context, resource, path string, params url.Values, out interface{}) error {
	key := resource + ":" + path
	if len(params) > 0 {
		key += "?" + params.Encode()
	}

	if raw, ok := c.queries.Get(key); ok {
		return json.Unmarshal(raw.(json.RawMessage), out)
	}

	var data json.RawMessage
	if err := c.do(ctx, http.MethodGet, path, params, nil, &data); err != nil {
		return err
	}
	c.queries.SetDefault(key, data)

	return json.Unmarshal(data, out)
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *APIError       `json:"error"`
}

// do отправляет запрос и разбирает конверт ответа. out может быть nil.
func (c *Client) do(ctx context.Context, method, path string, params url.Values, body, out interface{}) error {
	target := c.baseURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.bearer(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var env envelope
		if err := json.Unmarshal(raw, &env); err != nil || env.Error == nil {
			return &APIError{Status: resp.StatusCode, Code: "HTTP_ERROR", Message: strings.TrimSpace(string(raw))}
		}
		env.Error.Status = resp.StatusCode
		c.logger.Debug("API error",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("code", env.Error.Code))
		return env.Error
	}

	if out == nil || len(raw) == 0 {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if dst, ok := out.(*json.RawMessage); ok {
		*dst = env.Data
		return nil
	}
	return json.Unmarshal(env.Data, out)
}
