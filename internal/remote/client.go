// Package remote is the transport half of the remote sync adapters: a
// small JSON client for the payroll persistence service plus the mapping
// of its failure surface onto the application error taxonomy.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go-payroll/internal/shared/apperror"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	client  *http.Client
	baseURL string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return apperror.Wrap(err, apperror.CodeInternalError, "Failed to encode request payload", http.StatusInternalServerError)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return apperror.Wrap(err, apperror.CodeInternalError, "Failed to build request", http.StatusInternalServerError)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return apperror.Wrap(err, apperror.CodeRemoteUnavailable, "The payroll service is unreachable", http.StatusBadGateway)
	}
	defer resp.Body.Close()

	if err := classifyStatus(resp); err != nil {
		return err
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperror.Wrap(err, apperror.CodeRemoteUnavailable, "The payroll service returned an unreadable response", http.StatusBadGateway)
	}
	return nil
}

// classifyStatus maps the remote failure surface onto the error taxonomy:
// 5xx is a transport failure, 404 is not-found, any other 4xx is a
// validation rejection carrying whatever detail the service included.
func classifyStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode < 400:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return apperror.ErrNotFound
	case resp.StatusCode >= 500:
		return apperror.New(
			apperror.CodeRemoteUnavailable,
			fmt.Sprintf("The payroll service failed with status %d", resp.StatusCode),
			http.StatusBadGateway,
		)
	default:
		return apperror.New(
			apperror.CodeInvalidInput,
			rejectionMessage(resp.Body),
			http.StatusBadRequest,
		)
	}
}

func rejectionMessage(body io.Reader) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err == nil && payload.Detail != "" {
		return payload.Detail
	}
	return "The payroll service rejected the request"
}
