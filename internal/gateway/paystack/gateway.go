package paystack

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"restaurant/internal/entities"
	retrierconfig "restaurant/pkg/retrier"
	"restaurant/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "paystack"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

var ErrTransactionNotFound = errors.New("transaction not found")

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected paystack response status: %d", e.code)
}

type PaystackGateway struct {
	httpClient doer
	retrier    retrier
	baseURL    string
	secretKey  string
}

func New(httpClient doer, baseURL, secretKey string) *PaystackGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableError,
	}

	return &PaystackGateway{
		httpClient: httpClient,
		retrier:    backoff_adapter.New(retryConfig),
		baseURL:    baseURL,
		secretKey:  secretKey,
	}
}

// VerifyTransaction asks Paystack for the settled state of a reference.
// The caller decides whether the reported amount matches the order.
func (g *PaystackGateway) VerifyTransaction(ctx context.Context, reference string) (*entities.PaymentVerification, error) {
	endpoint := fmt.Sprintf("%s/transaction/verify/%s", g.baseURL, url.PathEscape(reference))

	var resp verifyResponse

	err := g.executeWithMetrics(ctx, "VerifyTransaction", func(ctx context.Context) error {
		return g.doVerify(ctx, endpoint, &resp)
	})
	if err != nil {
		var stErr *statusError
		if errors.As(err, &stErr) && stErr.code == http.StatusNotFound {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("gateway paystack, verify transaction: %s: %w", reference, err)
	}

	if !resp.Status {
		return nil, fmt.Errorf("gateway paystack, verify transaction: %s: %s", reference, resp.Message)
	}

	return toDomain(&resp.Data), nil
}

func (g *PaystackGateway) doVerify(ctx context.Context, endpoint string, out *verifyResponse) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+g.secretKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return &statusError{code: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	var stErr *statusError
	if errors.As(err, &stErr) {
		return stErr.code == http.StatusTooManyRequests || stErr.code >= http.StatusInternalServerError
	}

	// transport level failures are worth another attempt
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func (g *PaystackGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	statusCode := getStatusCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, statusCode).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, statusCode).Inc()
	}

	return err
}

func getStatusCode(err error) string {
	if err == nil {
		return "200"
	}
	var stErr *statusError
	if errors.As(err, &stErr) {
		return strconv.Itoa(stErr.code)
	}
	return "error"
}
