// Package httpclient is the real backend transport. Each Execute call passes
// through, in order:
//
//	circuit breaker → rate limiter → headers → client span → HTTP
//
// A call is made exactly once. Whether and when to try again is the
// caller's decision.
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/storesync/internal/domain"
	"github.com/jsamuelsen11/storesync/internal/network"
	"github.com/jsamuelsen11/storesync/internal/platform/config"
	"github.com/jsamuelsen11/storesync/internal/platform/telemetry"
)

const (
	// maxResponseBytes caps how much of a response body is read.
	maxResponseBytes = 16 << 20
	userAgent        = "storesync"
)

var _ network.Network = (*Client)(nil)

// errBackendDown marks a 5xx reply so the breaker counts it. Execute turns
// it back into a *network.StatusError.
var errBackendDown = errors.New("backend 5xx")

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// WithRequestID stores the inbound request ID for X-Request-ID on backend
// calls made with ctx.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// WithCorrelationID stores the correlation ID for X-Correlation-ID on
// backend calls made with ctx.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client. client.timeout is not
// applied to it.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// reply is what the breaker hands back from one round trip.
type reply struct {
	status int
	body   []byte
}

// Client talks to one store backend, directly or through the Jetpack proxy.
type Client struct {
	http      *http.Client
	baseURL   string
	mode      string
	authToken string
	backend   string
	breaker   *gobreaker.CircuitBreaker[reply]
	limiter   *rate.Limiter
	metrics   *telemetry.Metrics
	logger    *slog.Logger
}

// New builds a Client for cfg. backend names the peer in logs, spans,
// metrics and readiness output. metrics may be nil.
func New(cfg *config.ClientConfig, backend string, metrics *telemetry.Metrics, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		http:      &http.Client{Timeout: cfg.Timeout},
		baseURL:   cfg.BaseURL,
		mode:      cfg.Mode,
		authToken: cfg.AuthToken,
		backend:   backend,
		metrics:   metrics,
		logger:    logger,
	}
	if c.mode == "" {
		c.mode = config.ModeDirect
	}
	if rps := cfg.RateLimit.RequestsPerSecond; rps > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rps), cfg.RateLimit.BurstSize)
	}

	maxFailures := cfg.CircuitBreaker.MaxFailures
	c.breaker = gobreaker.NewCircuitBreaker[reply](gobreaker.Settings{
		Name:        backend,
		MaxRequests: clampUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= maxFailures
		},
		// Callers giving up say nothing about the backend.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("backend circuit changed state",
				slog.String("backend", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Execute sends req once and returns the 2xx body. Other statuses come back
// as *network.StatusError. An open breaker, an exhausted rate-limit wait or
// a connection failure wraps domain.ErrTransport; the latter two also wrap
// domain.ErrUnavailable unless ctx ended first.
func (c *Client) Execute(ctx context.Context, req network.Request) ([]byte, error) {
	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	rep, err := c.breaker.Execute(func() (reply, error) {
		return c.roundTrip(ctx, req, httpReq)
	})
	c.recordMetrics(ctx, req, start, rep.status, err)

	switch {
	case err == nil || errors.Is(err, errBackendDown):
	case ctx.Err() != nil:
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrTransport, req, ctx.Err())
	default:
		return nil, fmt.Errorf("%w: %w: %s: %w", domain.ErrTransport, domain.ErrUnavailable, req, err)
	}

	if rep.status < http.StatusOK || rep.status >= http.StatusMultipleChoices {
		c.logger.DebugContext(ctx, "backend rejected request",
			slog.String("request", req.String()),
			slog.Int("status", rep.status),
		)
		return nil, &network.StatusError{StatusCode: rep.status, Body: rep.body}
	}
	return rep.body, nil
}

func (c *Client) roundTrip(ctx context.Context, req network.Request, httpReq *http.Request) (reply, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return reply{}, err
		}
	}

	ctx, span := c.startSpan(ctx, req, httpReq)
	defer span.End()
	httpReq = httpReq.WithContext(ctx)
	c.setHeaders(ctx, httpReq)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return reply{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	span.SetAttributes(telemetry.AttrHTTPStatus.Int(resp.StatusCode))
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "reading response")
		return reply{status: resp.StatusCode}, fmt.Errorf("reading response: %w", err)
	}

	rep := reply{status: resp.StatusCode, body: body}
	if resp.StatusCode >= http.StatusInternalServerError {
		span.SetStatus(codes.Error, resp.Status)
		return rep, errBackendDown
	}
	return rep, nil
}

// Name implements ports.HealthChecker.
func (c *Client) Name() string { return c.backend }

// HealthCheck reads the breaker without calling the backend. A half-open
// breaker reports degraded; an open one reports failing.
func (c *Client) HealthCheck(context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit half-open)", c.backend)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit open)", c.backend)
	default:
		return fmt.Errorf("%s: circuit in unknown state %v", c.backend, state)
	}
}

// BaseURL is the configured backend root.
func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) setHeaders(ctx context.Context, httpReq *http.Request) {
	httpReq.Header.Set("User-Agent", userAgent)
	if c.authToken != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.authToken)
	}
	if id, _ := ctx.Value(requestIDKey{}).(string); id != "" {
		httpReq.Header.Set("X-Request-ID", id)
	}
	if id, _ := ctx.Value(correlationIDKey{}).(string); id != "" {
		httpReq.Header.Set("X-Correlation-ID", id)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(httpReq.Header))
}

// startSpan opens a client span named for the backend route, e.g.
// "woocommerce GET wc/v3/orders/963".
func (c *Client) startSpan(ctx context.Context, req network.Request, httpReq *http.Request) (context.Context, trace.Span) {
	return otel.GetTracerProvider().Tracer(telemetry.InstrumentationName).Start(ctx,
		fmt.Sprintf("%s %s %s", c.backend, req.Method, req.Route()),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			telemetry.AttrHTTPMethod.String(req.Method),
			telemetry.AttrPeerService.String(c.backend),
			telemetry.AttrSiteID.Int64(req.SiteID),
			attribute.String("storesync.transport", c.mode),
			attribute.String("url.full", httpReq.URL.Redacted()),
		),
	)
}

// recordMetrics runs outside the breaker so rejected calls are counted too.
func (c *Client) recordMetrics(ctx context.Context, req network.Request, start time.Time, status int, err error) {
	if c.metrics == nil {
		return
	}

	result := telemetry.ResultOf(status)
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		result = telemetry.ResultCircuitOpen
	}
	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(req.Method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrPeerService.String(c.backend),
		telemetry.AttrResult.String(result),
	)
	c.metrics.ClientRequestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}

func clampUint32(v int) uint32 {
	switch {
	case v <= 0:
		return 0
	case v > math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(v)
	}
}
