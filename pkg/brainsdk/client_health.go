package brainsdk

import (
	"context"
	"net/http"
)

// GetRoot returns the API banner.
func (c *SDKClient) GetRoot(ctx context.Context) (*RootResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/", "", nil)
	if err != nil {
		return nil, err
	}

	var root RootResponse
	if err := decodeJSON(resp, &root, http.StatusOK); err != nil {
		return nil, err
	}

	return &root, nil
}

// GetHealth calls the simple /health check.
func (c *SDKClient) GetHealth(ctx context.Context) (*HealthResponse, error) {
	return c.getHealth(ctx, "/health")
}

// GetLiveness checks if the service is alive.
func (c *SDKClient) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	return c.getHealth(ctx, "/livez")
}

// GetReadiness checks if the service is ready.
func (c *SDKClient) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	return c.getHealth(ctx, "/readyz")
}

func (c *SDKClient) getHealth(ctx context.Context, path string) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, path, "", nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}

	return &health, nil
}
