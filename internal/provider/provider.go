// Package provider talks to the payment provider: one-click debits of saved
// cards and refunds. The outcome of both arrives later on the payment webhook.
package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/coursemarket/pkg/clients"
	"github.com/GlebRadaev/coursemarket/pkg/signature"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1

	oneClickPath = "/api/payments/one-click"
	refundPath   = "/api/payments/refunds"
)

var (
	ErrUnavailable = errors.New("payment provider unavailable")
	ErrRejected    = errors.New("payment provider rejected the request")
)

type PaymentRequest struct {
	OrderID       uuid.UUID       `json:"order_id"`
	InstallmentID uuid.UUID       `json:"installment_id"`
	Amount        decimal.Decimal `json:"amount"`
	CardToken     string          `json:"credit_card_token"`
}

type RefundRequest struct {
	OrderID       uuid.UUID       `json:"order_id"`
	InstallmentID uuid.UUID       `json:"installment_id"`
	Amount        decimal.Decimal `json:"amount"`
}

type Payment struct {
	ID    string `json:"payment_id"`
	State string `json:"state"`
}

type Client struct {
	url           string
	secret        string
	client        clients.HTTPClientI
	retryInterval time.Duration
}

// New builds the client. Requests are signed with secret when it is set.
func New(url, secret string, client clients.HTTPClientI) *Client {
	return &Client{
		url:           url,
		secret:        secret,
		client:        client,
		retryInterval: retryInterval,
	}
}

func (c *Client) CreateOneClickPayment(ctx context.Context, req PaymentRequest) (*Payment, error) {
	return c.post(ctx, oneClickPath, req)
}

func (c *Client) Refund(ctx context.Context, req RefundRequest) (*Payment, error) {
	return c.post(ctx, refundPath, req)
}

func (c *Client) post(ctx context.Context, path string, payload any) (*Payment, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode provider request: %w", err)
	}
	headers := http.Header{}
	if c.secret != "" {
		headers.Set(signature.Header, signature.Sign(c.secret, body))
	}

	url := c.url + path
	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		resp, err := c.client.PostJSON(ctx, url, headers, body)
		switch {
		case err != nil:
			lastErr = err
			zap.L().Warn("payment provider request failed, retrying", zap.String("path", path), zap.Int("attempt", attempt), zap.Error(err))
		case resp.StatusCode == http.StatusTooManyRequests:
			lastErr = fmt.Errorf("rate limited with status %d", resp.StatusCode)
			if !c.wait(ctx, c.retryAfter(resp.Header, attempt)) {
				return nil, ctx.Err()
			}
			continue
		case resp.StatusCode >= http.StatusInternalServerError:
			lastErr = fmt.Errorf("unexpected status code %d", resp.StatusCode)
			zap.L().Warn("payment provider error, retrying", zap.String("path", path), zap.Int("status", resp.StatusCode), zap.Int("attempt", attempt))
		case resp.Success():
			var payment Payment
			if err := json.Unmarshal(resp.Body, &payment); err != nil {
				return nil, fmt.Errorf("failed to parse provider response: %w", err)
			}
			return &payment, nil
		default:
			zap.L().Error("payment provider rejected request", zap.String("path", path), zap.Int("status", resp.StatusCode), zap.ByteString("body", resp.Body))
			return nil, fmt.Errorf("%w: status %d", ErrRejected, resp.StatusCode)
		}
		if attempt < maxRetries && !c.wait(ctx, c.retryInterval*time.Duration(attempt)) {
			return nil, ctx.Err()
		}
	}
	return nil, fmt.Errorf("%w after %d attempts: %w", ErrUnavailable, maxRetries, lastErr)
}

func (c *Client) retryAfter(headers http.Header, attempt int) time.Duration {
	retryAfter := c.retryInterval * time.Duration(attempt)
	if seconds, err := strconv.Atoi(headers.Get("Retry-After")); err == nil {
		retryAfter = time.Duration(seconds) * time.Second
	}
	zap.L().Warn("payment provider rate limit, retrying", zap.Int("attempt", attempt), zap.Duration("retryAfter", retryAfter))
	return retryAfter
}

func (c *Client) wait(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
