package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// client wraps a resty client pointed at the service under seed.
type client struct {
	rc *resty.Client
}

func newClient(baseURL string, timeout time.Duration) *client {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")
	return &client{rc: rc}
}

// post submits a JSON body and treats any non-2xx answer as an error.
func (c *client) post(ctx context.Context, path string, body any) error {
	resp, err := c.rc.R().SetContext(ctx).SetBody(body).Post(path)
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	if resp.IsError() {
		return fmt.Errorf("post %s: status %d: %s", path, resp.StatusCode(), resp.String())
	}
	return nil
}

// get fetches a JSON resource into out when out is non-nil.
func (c *client) get(ctx context.Context, path string, out any) error {
	req := c.rc.R().SetContext(ctx)
	if out != nil {
		req = req.SetResult(out)
	}
	resp, err := req.Get(path)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	if resp.IsError() {
		return fmt.Errorf("get %s: status %d: %s", path, resp.StatusCode(), resp.String())
	}
	return nil
}

// health verifies the service answers its liveness scrape.
func (c *client) health(ctx context.Context) error {
	return c.get(ctx, "/healthz", nil)
}
