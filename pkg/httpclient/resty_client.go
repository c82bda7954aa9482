package httpclient

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
)

// RestyClient adapts resty.Client to the httpclient.Client interface.
type RestyClient struct {
	client *resty.Client
}

// NewRestyClient creates a RestyClient with the given timeout and User-Agent.
// A zero timeout leaves the request unbounded apart from ctx.
func NewRestyClient(timeout time.Duration, userAgent string) *RestyClient {
	c := resty.New()
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	if userAgent != "" {
		c.SetHeader("User-Agent", userAgent)
	}
	return &RestyClient{client: c}
}

// NewRestyClientFrom wraps an existing resty.Client, e.g. one with custom TLS
// or proxy settings.
func NewRestyClientFrom(c *resty.Client) *RestyClient {
	return &RestyClient{client: c}
}

// Do performs the request with the specified context.
func (r *RestyClient) Do(ctx context.Context, req *Request) (Response, error) {
	rr := r.client.R().SetContext(ctx)
	if len(req.Headers) > 0 {
		rr.SetHeaders(req.Headers)
	}
	if req.Body != nil {
		rr.SetBody(req.Body)
	}
	resp, err := rr.Execute(req.Method, req.URL)
	if err != nil {
		return nil, err
	}
	return &restyResponseAdapter{resp: resp}, nil
}

// restyResponseAdapter adapts resty.Response to the httpclient.Response interface.
type restyResponseAdapter struct {
	resp *resty.Response
}

func (r *restyResponseAdapter) Body() []byte    { return r.resp.Body() }
func (r *restyResponseAdapter) StatusCode() int { return r.resp.StatusCode() }

var _ Client = (*RestyClient)(nil)
