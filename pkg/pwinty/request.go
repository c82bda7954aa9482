package pwinty

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/tournevent/pwinty/pkg/httpclient"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Operation names used for spans, metrics and logs.
const (
	opCountries   = "countries"
	opCreateOrder = "create_order"
	opGetOrder    = "get_order"
	opAddImages   = "add_images"
)

const (
	headerMerchantID = "X-Pwinty-MerchantId"
	headerAPIKey     = "X-Pwinty-REST-API-Key"
	contentTypeJSON  = "application/json"
)

// url joins base URL, API version and endpoint path, e.g.
// "https://sandbox.pwinty.com/" + "v3.0" + "/orders".
func (c *Client) url(path string) string {
	return c.baseURL + c.version + path
}

func (c *Client) authHeaders() map[string]string {
	return map[string]string{
		headerMerchantID: c.merchantID,
		headerAPIKey:     c.apiKey,
		"Content-Type":   contentTypeJSON,
		"Accept":         contentTypeJSON,
	}
}

// encode serializes a request body before anything is sent.
func (c *Client) encode(ctx context.Context, op string, v any) ([]byte, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, c.fail(ctx, op, newInternalError("encoding request body").WithCause(err))
	}
	return body, nil
}

// do sends one request and decodes a 2xx JSON body into out.
func (c *Client) do(ctx context.Context, op, method, path string, auth bool, body []byte, out any) error {
	requestID := uuid.NewString()
	span := trace.SpanFromContext(ctx)
	span.SetAttributes(
		attribute.String("http.request.method", method),
		attribute.String("url.path", c.version+path),
		attribute.String("pwinty.request_id", requestID),
	)

	req := &httpclient.Request{
		Method: method,
		URL:    c.url(path),
		Body:   body,
	}
	if auth {
		req.Headers = c.authHeaders()
	}

	log := c.logger.Ctx(ctx)
	log.Debug("Sending Pwinty request",
		zap.String("request_id", requestID),
		zap.String("method", method),
		zap.String("path", c.version+path),
		zap.Int("body_bytes", len(body)),
	)

	start := time.Now()
	resp, err := c.transport.Do(ctx, req)
	elapsed := time.Since(start)
	if err != nil {
		return c.fail(ctx, op, newTransportError(err))
	}

	status := resp.StatusCode()
	c.metrics.RecordRequest(op, strconv.Itoa(status), elapsed.Seconds())
	span.SetAttributes(attribute.Int("http.response.status_code", status))
	log.Debug("Received Pwinty response",
		zap.String("request_id", requestID),
		zap.Int("status", status),
		zap.Duration("duration", elapsed),
	)

	if status < 200 || status > 299 {
		return c.fail(ctx, op, newResponseError(status))
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return c.fail(ctx, op, newInternalError("decoding response body").WithCause(err))
	}
	return nil
}

// fail records err on the current span, metrics and log, then returns it.
func (c *Client) fail(ctx context.Context, op string, err *APIError) error {
	span := trace.SpanFromContext(ctx)
	span.RecordError(err)
	span.SetStatus(codes.Error, string(err.Kind))

	c.metrics.RecordError(op, string(err.Kind))
	c.logger.Ctx(ctx).Warn("Pwinty request failed",
		zap.String("operation", op),
		zap.String("kind", string(err.Kind)),
		zap.Int("status", err.StatusCode),
		zap.Error(err),
	)
	return err
}

func (c *Client) startSpan(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return c.tracer.Start(ctx, "pwinty."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)
}

func orderAttr(id uint64) attribute.KeyValue {
	return attribute.Int64("pwinty.order_id", int64(id))
}

func imageCountAttr(n int) attribute.KeyValue {
	return attribute.Int("pwinty.image_count", n)
}
