package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/iudanet/vcresolve/internal/models"
	"github.com/iudanet/vcresolve/pkg/api"
)

// ErrNotFound сервер ответил 404
var ErrNotFound = errors.New("not found")

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Option настраивает Client
type Option func(*Client)

// WithLogger включает логирование HTTP запросов
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.httpClient.Transport = newLoggingTransport(c.httpClient.Transport, logger)
	}
}

// NewClient создает новый API клиент
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Ограничиваем количество редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				return nil
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Conflicts получает конфликты рабочего пространства
func (c *Client) Conflicts(ctx context.Context) ([]*models.Conflict, error) {
	var resp api.ConflictsResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/conflicts", nil, &resp); err != nil {
		return nil, fmt.Errorf("conflicts request failed: %w", err)
	}
	return ConflictsFromAPI(resp.Conflicts)
}

// ItemProperties получает свойства элемента в указанной версии.
// Отсутствующий элемент дает пустой список.
func (c *Client) ItemProperties(ctx context.Context, serverItem string, version models.VersionSpec) ([]models.PropertyValue, error) {
	query := url.Values{}
	query.Set("path", serverItem)
	query.Set("version", version.String())

	return c.properties(ctx, "/api/v1/items/properties?"+query.Encode())
}

// ShelvedChangeProperties получает свойства элемента из shelveset'а
func (c *Client) ShelvedChangeProperties(ctx context.Context, shelveset, owner, serverItem string) ([]models.PropertyValue, error) {
	query := url.Values{}
	query.Set("owner", owner)
	query.Set("path", serverItem)

	path := fmt.Sprintf("/api/v1/shelvesets/%s/properties?%s", url.PathEscape(shelveset), query.Encode())
	return c.properties(ctx, path)
}

func (c *Client) properties(ctx context.Context, path string) ([]models.PropertyValue, error) {
	var resp api.PropertiesResponse
	err := c.doRequest(ctx, http.MethodGet, path, nil, &resp)
	if errors.Is(err, ErrNotFound) {
		return []models.PropertyValue{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("properties request failed: %w", err)
	}
	return propertiesFromAPI(resp.Properties), nil
}

// ServiceLevel получает уровень веб-сервисов сервера
func (c *Client) ServiceLevel(ctx context.Context) (models.ServiceLevel, error) {
	var resp api.ServiceLevelResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/service-level", nil, &resp); err != nil {
		return models.ServiceLevelUnknown, fmt.Errorf("service level request failed: %w", err)
	}
	return models.ServiceLevel(resp.Level), nil
}

// FileTypes получает реестр типов файлов сервера
func (c *Client) FileTypes(ctx context.Context) ([]models.FileType, error) {
	var resp api.FileTypesResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/filetypes", nil, &resp); err != nil {
		return nil, fmt.Errorf("file types request failed: %w", err)
	}

	out := make([]models.FileType, 0, len(resp.FileTypes))
	for _, ft := range resp.FileTypes {
		out = append(out, fileTypeFromAPI(ft))
	}
	return out, nil
}

// ResolveConflicts отправляет выбранные разрешения и помечает разрешенные конфликты.
// Для принятого AcceptMerge merged-файл заменяет локальный файл.
func (c *Client) ResolveConflicts(ctx context.Context, conflicts []*models.Conflict, silent bool) error {
	req := api.ResolveRequest{
		Resolutions: make([]api.ConflictResolution, 0, len(conflicts)),
		Silent:      silent,
	}
	for _, conflict := range conflicts {
		req.Resolutions = append(req.Resolutions, ResolutionToAPI(conflict))
	}

	var resp api.ResolveResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/conflicts/resolve", req, &resp); err != nil {
		return fmt.Errorf("resolve request failed: %w", err)
	}

	resolved := make(map[int]struct{}, len(resp.ResolvedIDs))
	for _, id := range resp.ResolvedIDs {
		resolved[id] = struct{}{}
	}
	// Ошибка переноса не отменяет разрешение: конфликт уже закрыт на сервере
	var errs *multierror.Error
	for _, conflict := range conflicts {
		if _, ok := resolved[conflict.ID]; !ok {
			continue
		}
		conflict.Resolved = true
		if err := applyMergedContent(conflict); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("conflict %d: failed to apply merged content: %w", conflict.ID, err))
		}
	}
	return errs.ErrorOrNil()
}

// DownloadFile скачивает содержимое по download URL в файл dest.
// Относительный URL считается от baseURL.
func (c *Client) DownloadFile(ctx context.Context, downloadURL, dest string) error {
	target := downloadURL
	if !strings.HasPrefix(target, "http://") && !strings.HasPrefix(target, "https://") {
		target = c.baseURL + "/" + strings.TrimPrefix(target, "/")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("download failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download failed with status %d", resp.StatusCode)
	}

	f, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if _, err := io.Copy(f, resp.Body); err != nil {
		_ = f.Close()
		_ = os.Remove(dest)
		return fmt.Errorf("failed to write file: %w", err)
	}
	return f.Close()
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	target := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Message)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
