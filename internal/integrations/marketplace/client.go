package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
)

const maxErrorBody = 4096

// Client клиент REST API маркетплейса
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента маркетплейса
func NewClient(baseURL, token string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// ListCategories получает справочник категорий
func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var list categoryList
	if err := c.do(ctx, http.MethodGet, "/categories/", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// GetProvider получает карточку провайдера с вариантом деталей и услугами
func (c *Client) GetProvider(ctx context.Context, providerID int64) (*domain.Provider, error) {
	var provider domain.Provider
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/providers/%d/", providerID), nil, &provider); err != nil {
		return nil, err
	}
	return &provider, nil
}

// CreateProvider создает провайдера
func (c *Client) CreateProvider(ctx context.Context, payload *domain.ProviderPayload) (*CreatedProvider, error) {
	var created CreatedProvider
	if err := c.do(ctx, http.MethodPost, "/providers/", payload, &created); err != nil {
		return nil, err
	}
	if created.ID <= 0 {
		return nil, fmt.Errorf("%w: created provider has no id", ErrInvalidResponse)
	}
	return &created, nil
}

// AttachMedia прикрепляет изображение к провайдеру
func (c *Client) AttachMedia(ctx context.Context, providerID int64, req MediaAttachRequest) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/providers/%d/media/", providerID), req, nil)
}

// GetAvailability получает доступное время провайдера на дату
func (c *Client) GetAvailability(ctx context.Context, providerID int64, date time.Time) (*Availability, error) {
	path := fmt.Sprintf("/providers/%d/availability/?%s", providerID, url.Values{
		"date": []string{date.Format(domain.DateFormat)},
	}.Encode())

	var availability Availability
	if err := c.do(ctx, http.MethodGet, path, nil, &availability); err != nil {
		return nil, err
	}
	return &availability, nil
}

// CreateBooking создает бронирование
// Повторных попыток нет: дубль запроса может создать второе бронирование
func (c *Client) CreateBooking(ctx context.Context, payload *domain.BookingPayload) (*CreatedBooking, error) {
	var created CreatedBooking
	if err := c.do(ctx, http.MethodPost, "/bookings/", payload, &created); err != nil {
		return nil, err
	}
	if created.ID <= 0 {
		return nil, fmt.Errorf("%w: created booking has no id", ErrInvalidResponse)
	}
	return &created, nil
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Token "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s %s", ErrNotFound, method, path)
	case resp.StatusCode == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrRejected, readErrorBody(resp.Body))
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: status %d", ErrUnauthorized, resp.StatusCode)
	default:
		c.log.Warn("Marketplace %s %s returned status %d", method, path, resp.StatusCode)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, readErrorBody(resp.Body))
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	// Парсим ответ
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

// readErrorBody достает detail из ошибки маркетплейса, иначе возвращает тело как есть
func readErrorBody(r io.Reader) string {
	body, _ := io.ReadAll(io.LimitReader(r, maxErrorBody))

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Detail != "" {
		return errResp.Detail
	}
	return strings.TrimSpace(string(body))
}
