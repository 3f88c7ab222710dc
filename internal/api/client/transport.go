package client

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// loggingTransport implements http.RoundTripper and logs outgoing requests
// and their outcome.
type loggingTransport struct {
	next http.RoundTripper
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	next := t.next
	if next == nil {
		next = http.DefaultTransport
	}
	resp, err := next.RoundTrip(req)

	duration := time.Since(start)
	if err != nil {
		zap.L().Error("outgoing request failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.Duration("duration", duration),
			zap.Error(err))
		return nil, err
	}

	zap.L().Debug("outgoing request",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", duration))

	return resp, nil
}
