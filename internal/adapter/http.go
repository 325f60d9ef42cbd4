package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/utils"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

type httpLedgerClient struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPLedgerClient builds a [LedgerClient] for the server at address. A
// bare host:port is treated as http. The password is attached to every
// request.
func NewHTTPLedgerClient(address, password string, timeout time.Duration, logger *logger.Logger) (LedgerClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	client := utils.NewHTTPClient(baseURL, timeout).SetPassword(password)

	return &httpLedgerClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpLedgerClient) Ping(ctx context.Context) error {
	var pong models.PingResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&pong).
		Get("/ping")
	if err != nil {
		return fmt.Errorf("ping request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}
	if !pong.Pong {
		return fmt.Errorf("%w: %s", ErrBadResponse, strings.TrimSpace(resp.String()))
	}

	return nil
}

func (h *httpLedgerClient) Pull(ctx context.Context) (models.LedgerDocument, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/data")
	if err != nil {
		return nil, fmt.Errorf("pull request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	body := resp.Body()
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: body is not JSON", ErrBadResponse)
	}

	h.logger.Debug().Int("bytes", len(body)).Msg("ledger pulled")
	return models.LedgerDocument(body), nil
}

func (h *httpLedgerClient) Push(ctx context.Context, doc models.LedgerDocument) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody([]byte(doc)).
		Put("/data")
	if err != nil {
		return fmt.Errorf("push request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.logger.Debug().Int("bytes", len(doc)).Msg("ledger pushed")
	return nil
}

// mapHTTPError turns a non-2xx response into one of the package sentinels,
// keeping the server's detail message when there is one.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	detail := responseDetail(resp)

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, detail)
	case http.StatusUnprocessableEntity, http.StatusRequestEntityTooLarge, http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrRejected, detail)
	case http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %s", ErrUnavailable, detail)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrServer, resp.StatusCode(), detail)
	}
}

func responseDetail(resp *resty.Response) string {
	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Detail != "" {
		return body.Detail
	}

	if text := strings.TrimSpace(string(resp.Body())); text != "" {
		return text
	}
	return http.StatusText(resp.StatusCode())
}
