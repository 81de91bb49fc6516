package brainsdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// CreateTranslation records a translation without an owner.
func (c *SDKClient) CreateTranslation(ctx context.Context, req CreateTranslationRequest) (*Translation, error) {
	return c.createTranslation(ctx, "", req)
}

// ListTranslations returns history newest first.
func (c *SDKClient) ListTranslations(ctx context.Context, opts ListOptions) ([]Translation, error) {
	q := url.Values{}
	switch {
	case opts.Unlimited:
		q.Set("limit", "0")
	case opts.Limit > 0:
		q.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Search != "" {
		q.Set("search", opts.Search)
	}
	path := "/translations"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	resp, err := c.doRequest(ctx, http.MethodGet, path, "", nil)
	if err != nil {
		return nil, err
	}

	var out []Translation
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *SDKClient) UpdateTranslation(ctx context.Context, id string, req UpdateTranslationRequest) (*Translation, error) {
	resp, err := c.doRequest(ctx, http.MethodPatch, "/translations/"+url.PathEscape(id), "", req)
	if err != nil {
		return nil, err
	}

	var tr Translation
	if err := decodeJSON(resp, &tr, http.StatusOK); err != nil {
		return nil, err
	}
	return &tr, nil
}

func (c *SDKClient) DeleteTranslation(ctx context.Context, id string) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/translations/"+url.PathEscape(id), "", nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// GetStats returns the total and per-type translation counts.
func (c *SDKClient) GetStats(ctx context.Context) (*StatsResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/translations/stats", "", nil)
	if err != nil {
		return nil, err
	}

	var stats StatsResponse
	if err := decodeJSON(resp, &stats, http.StatusOK); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *SDKClient) createTranslation(ctx context.Context, token string, req CreateTranslationRequest) (*Translation, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/translations", token, req)
	if err != nil {
		return nil, err
	}

	var tr Translation
	if err := decodeJSON(resp, &tr, http.StatusOK); err != nil {
		return nil, err
	}
	return &tr, nil
}
