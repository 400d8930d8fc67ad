package bookingapi

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

	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
)

// Client клиент API бронирований площадки
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	log        Logger
}

// NewClient создает новый экземпляр клиента API бронирований
// rps ограничивает число запросов в секунду ко внешнему API, 0 = без ограничения
func NewClient(baseURL string, timeout time.Duration, rps int, log Logger) *Client {
	limiter := rate.NewLimiter(rate.Inf, 0)
	if rps > 0 {
		limiter = rate.NewLimiter(rate.Limit(rps), rps)
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: limiter,
		log:     log,
	}
}

// do ждет своей очереди в лимитере и выполняет запрос
func (c *Client) do(req *http.Request) (*http.Response, error) {
	if err := c.limiter.Wait(req.Context()); err != nil {
		return nil, fmt.Errorf("%w: rate limiter: %v", ErrInternal, err)
	}
	return c.httpClient.Do(req)
}

// GetCourtSlots получает готовый список слотов корта на дату
func (c *Client) GetCourtSlots(ctx context.Context, courtID int64, date time.Time) ([]domain.SlotRecord, error) {
	q := url.Values{}
	q.Set("data", date.Format(domain.DateFormat))
	reqURL := fmt.Sprintf("%s/quadras/%d/slots?%s", c.baseURL, courtID, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, ErrCourtNotFound
	default:
		return nil, c.unexpected(resp)
	}

	// Разбираем записи по одной: битая запись не должна терять остальные
	var raw []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	records := make([]domain.SlotRecord, 0, len(raw))
	for i, item := range raw {
		var s Slot
		if err := json.Unmarshal(item, &s); err != nil {
			c.log.Warn("GetCourtSlots: court_id=%d, record #%d skipped: %v", courtID, i, err)
			continue
		}
		records = append(records, s.ToRecord())
	}

	c.log.Info("GetCourtSlots: court_id=%d, date=%s, slots=%d", courtID, date.Format(domain.DateFormat), len(records))
	return records, nil
}

// CreateBooking отправляет бронирование выбранных слотов
func (c *Client) CreateBooking(ctx context.Context, payload domain.BookingPayload) (*BookingCreated, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/agendamentos", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
	case http.StatusNotFound:
		return nil, ErrCourtNotFound
	case http.StatusConflict, http.StatusUnprocessableEntity:
		msg := readMessage(resp.Body)
		c.log.Warn("CreateBooking: rejected by booking API, court_id=%d, status=%d: %s", payload.QuadraID, resp.StatusCode, msg)
		return nil, fmt.Errorf("%w: %s", ErrSlotUnavailable, msg)
	default:
		return nil, c.unexpected(resp)
	}

	var created BookingCreated
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.log.Info("CreateBooking: booking_id=%s, court_id=%d, slots=%d, fixed=%t",
		created.ID, payload.QuadraID, len(payload.SlotHorarioIDs), payload.IsFixo)
	return &created, nil
}

func (c *Client) unexpected(resp *http.Response) error {
	msg := readMessage(resp.Body)
	c.log.Error("booking API returned unexpected status %d: %s", resp.StatusCode, msg)
	return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, msg)
}

// readMessage достает message из ErrorResponse, иначе возвращает тело как есть
func readMessage(r io.Reader) string {
	body, _ := io.ReadAll(io.LimitReader(r, 4096))
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		return errResp.Message
	}
	return string(body)
}
