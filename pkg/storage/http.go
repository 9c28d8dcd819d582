package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
)

type HTTPEngine struct {
	client *http.Client
}

var _ Engine = (*HTTPEngine)(nil)

func NewHTTP() *HTTPEngine {
	return &HTTPEngine{client: http.DefaultClient}
}

func NewHTTPWithClient(client *http.Client) *HTTPEngine {
	return &HTTPEngine{client: client}
}

func (h *HTTPEngine) Get(ctx context.Context, u *URI) (Reader, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		if resp.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%s: %w", u, fs.ErrNotExist)
		}
		return nil, fmt.Errorf("%s: %w", u, errors.New(resp.Status))
	}
	return resp.Body, nil
}
