package soap

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/oybekdev/crif-gateway/internal/criferr"
)

// Client — HTTP-транспорт до SOAP-эндпоинта бюро с ограничением частоты
// исходящих запросов.
type Client struct {
	endpointURL string
	httpClient  *http.Client
	limiter     *rate.Limiter
}

// NewClient создаёт транспорт до бюро.
func NewClient(endpointURL string, timeout time.Duration, rps float64, burst int) *Client {
	return &Client{
		endpointURL: endpointURL,
		httpClient:  &http.Client{Timeout: timeout},
		limiter:     rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// Send отправляет собранный конверт и возвращает сырое тело ответа.
// Операция используется как SOAPAction.
func (c *Client) Send(ctx context.Context, operation, envelope string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", criferr.Wrap(criferr.KindCommunication, "rate limiter wait", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL, strings.NewReader(envelope))
	if err != nil {
		return "", criferr.Wrap(criferr.KindCommunication, "build http request", err)
	}
	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	req.Header.Set("SOAPAction", operation)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", criferr.Wrap(criferr.KindCommunication, "call bureau endpoint", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", criferr.Wrap(criferr.KindCommunication, "read bureau response", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return "", criferr.Newf(criferr.KindAuthentication, "bureau rejected credentials: %s", resp.Status)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return "", criferr.Newf(criferr.KindCommunication, "unexpected status: %s", resp.Status)
	}

	return string(body), nil
}
