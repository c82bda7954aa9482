package pwinty

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/tournevent/pwinty/internal/telemetry"
	"github.com/tournevent/pwinty/pkg/httpclient"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/net/http/httpguts"
)

// Vendor endpoints.
const (
	SandboxBaseURL = "https://sandbox.pwinty.com/"
	LiveBaseURL    = "https://api.pwinty.com/"
	APIVersion     = "v3.0"
)

const (
	defaultTimeout = 30 * time.Second
	serviceName    = "pwinty-client"
	tracerName     = "github.com/tournevent/pwinty"
)

var version = "0.1.0"

// Environment selects one of the two vendor deployments.
type Environment string

const (
	EnvSandbox Environment = "sandbox"
	EnvLive    Environment = "live"
)

// Config holds Pwinty client configuration.
type Config struct {
	MerchantID string
	APIKey     string

	Environment Environment // defaults to EnvSandbox
	BaseURL     string      // overrides Environment when set

	Timeout   time.Duration // transport timeout, default 30s
	UserAgent string

	// Transport replaces the default resty transport; Timeout and UserAgent
	// are then ignored.
	Transport httpclient.Client

	Logger   *otelzap.Logger // takes precedence over LogLevel
	LogLevel string          // builds a JSON stdout logger when set

	Tracer       trace.Tracer // defaults to the global tracer provider
	OTLPEndpoint string       // when set and Tracer is nil, the client exports its own spans

	Registerer prometheus.Registerer // nil keeps metrics unregistered
}

// Client is the Pwinty API client. It holds only read-only configuration
// after construction and is safe for concurrent use.
type Client struct {
	baseURL    string
	version    string
	merchantID string
	apiKey     string

	transport httpclient.Client
	logger    *otelzap.Logger
	tracer    trace.Tracer
	metrics   *telemetry.Metrics
	shutdown  func(context.Context) error
}

// NewSandbox creates a client for the sandbox deployment.
func NewSandbox(merchantID, apiKey string) (*Client, error) {
	return New(Config{MerchantID: merchantID, APIKey: apiKey, Environment: EnvSandbox})
}

// NewLive creates a client for the live deployment.
func NewLive(merchantID, apiKey string) (*Client, error) {
	return New(Config{MerchantID: merchantID, APIKey: apiKey, Environment: EnvLive})
}

// New creates a client from cfg. Credentials must be valid HTTP header
// values; otherwise an Internal APIError is returned.
func New(cfg Config) (*Client, error) {
	if err := validateHeaderValue("merchant id", cfg.MerchantID); err != nil {
		return nil, err
	}
	if err := validateHeaderValue("API key", cfg.APIKey); err != nil {
		return nil, err
	}

	baseURL, err := resolveBaseURL(cfg)
	if err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		if cfg.LogLevel != "" {
			logger, err = telemetry.NewLogger(cfg.LogLevel)
			if err != nil {
				return nil, newInternalError("building logger").WithCause(err)
			}
		} else {
			logger = telemetry.NopLogger()
		}
	}

	tracer := cfg.Tracer
	var shutdown func(context.Context) error
	if tracer == nil {
		if cfg.OTLPEndpoint != "" {
			tracer, shutdown, err = telemetry.InitTracer(context.Background(), cfg.OTLPEndpoint, serviceName, version)
			if err != nil {
				return nil, newInternalError("initializing tracer").WithCause(err)
			}
		} else {
			tracer = otel.GetTracerProvider().Tracer(tracerName)
		}
	}

	transport := cfg.Transport
	if transport == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = defaultTimeout
		}
		userAgent := cfg.UserAgent
		if userAgent == "" {
			userAgent = "tournevent-pwinty/" + version
		}
		transport = httpclient.NewRestyClient(timeout, userAgent)
	}

	logger.Debug("Pwinty client created",
		zap.String("base_url", baseURL),
		zap.String("api_version", APIVersion),
	)

	return &Client{
		baseURL:    baseURL,
		version:    APIVersion,
		merchantID: cfg.MerchantID,
		apiKey:     cfg.APIKey,
		transport:  transport,
		logger:     logger,
		tracer:     tracer,
		metrics:    telemetry.NewMetrics(cfg.Registerer),
		shutdown:   shutdown,
	}, nil
}

// BaseURL returns the deployment URL the client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Version returns the API version segment used in every path.
func (c *Client) Version() string {
	return c.version
}

// Close flushes and stops the tracer provider created for OTLPEndpoint.
// It is a no-op otherwise.
func (c *Client) Close(ctx context.Context) error {
	if c.shutdown == nil {
		return nil
	}
	return c.shutdown(ctx)
}

// Countries lists the countries the vendor ships to.
// GET /countries, unauthenticated.
func (c *Client) Countries(ctx context.Context) ([]Country, error) {
	ctx, span := c.startSpan(ctx, opCountries)
	defer span.End()

	c.logger.Ctx(ctx).Info("Listing Pwinty countries")

	var env countriesEnvelope
	if err := c.do(ctx, opCountries, http.MethodGet, "/countries", false, nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// CreateOrder creates an order.
// POST /orders
func (c *Client) CreateOrder(ctx context.Context, order *OrderCreate) (*Order, error) {
	ctx, span := c.startSpan(ctx, opCreateOrder)
	defer span.End()

	if order == nil {
		return nil, c.fail(ctx, opCreateOrder, newInternalError("order is nil"))
	}

	c.logger.Ctx(ctx).Info("Creating Pwinty order",
		zap.String("country_code", order.CountryCode),
		zap.String("shipping_method", string(order.PreferredShippingMethod)),
	)

	body, err := c.encode(ctx, opCreateOrder, order)
	if err != nil {
		return nil, err
	}

	var env orderEnvelope
	if err := c.do(ctx, opCreateOrder, http.MethodPost, "/orders", true, body, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// GetOrder fetches an order by id.
// GET /orders/{id}
func (c *Client) GetOrder(ctx context.Context, orderID uint64) (*Order, error) {
	ctx, span := c.startSpan(ctx, opGetOrder, orderAttr(orderID))
	defer span.End()

	c.logger.Ctx(ctx).Info("Fetching Pwinty order", zap.Uint64("order_id", orderID))

	var env orderEnvelope
	if err := c.do(ctx, opGetOrder, http.MethodGet, fmt.Sprintf("/orders/%d", orderID), true, nil, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// AddImages adds images to an order. A single image goes to the single-image
// endpoint and several go to the batch endpoint; both return a list.
func (c *Client) AddImages(ctx context.Context, orderID uint64, images []OrderImageAdd) ([]OrderImage, error) {
	ctx, span := c.startSpan(ctx, opAddImages, orderAttr(orderID), imageCountAttr(len(images)))
	defer span.End()

	c.logger.Ctx(ctx).Info("Adding images to Pwinty order",
		zap.Uint64("order_id", orderID),
		zap.Int("image_count", len(images)),
	)

	switch len(images) {
	case 0:
		return nil, c.fail(ctx, opAddImages, newInternalError("adding images").WithCause(ErrEmptyImageBatch))

	case 1:
		body, err := c.encode(ctx, opAddImages, images[0])
		if err != nil {
			return nil, err
		}
		var env imageEnvelope
		path := fmt.Sprintf("/orders/%d/images", orderID)
		if err := c.do(ctx, opAddImages, http.MethodPost, path, true, body, &env); err != nil {
			return nil, err
		}
		return []OrderImage{env.Data}, nil

	default:
		body, err := c.encode(ctx, opAddImages, images)
		if err != nil {
			return nil, err
		}
		var env imagesEnvelope
		path := fmt.Sprintf("/orders/%d/images/batch", orderID)
		if err := c.do(ctx, opAddImages, http.MethodPost, path, true, body, &env); err != nil {
			return nil, err
		}
		return env.Data.Items, nil
	}
}

func resolveBaseURL(cfg Config) (string, error) {
	if cfg.BaseURL != "" {
		if !strings.HasSuffix(cfg.BaseURL, "/") {
			return cfg.BaseURL + "/", nil
		}
		return cfg.BaseURL, nil
	}
	switch cfg.Environment {
	case "", EnvSandbox:
		return SandboxBaseURL, nil
	case EnvLive:
		return LiveBaseURL, nil
	default:
		return "", newInternalError(fmt.Sprintf("unknown environment %q", cfg.Environment))
	}
}

// validateHeaderValue rejects values that cannot be sent as an HTTP header.
// The value itself is left out of the error.
func validateHeaderValue(name, value string) error {
	if !httpguts.ValidHeaderFieldValue(value) {
		return newInternalError(fmt.Sprintf("%s is not a valid header value", name))
	}
	return nil
}

var _ API = (*Client)(nil)
