package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusCounters(t *testing.T) {
	p := NewPrometheus()

	p.WalletOperation("deposit", "success")
	p.WalletOperation("deposit", "success")
	p.LLMRequest("openai", "error", 300*time.Millisecond)
	p.ToolExecution("tap", "success")

	assert.Equal(t, 2.0, testutil.ToFloat64(p.walletOps.WithLabelValues("deposit", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.llmRequests.WithLabelValues("openai", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.toolExecution.WithLabelValues("tap", "success")))
}

func TestPrometheusHTTP(t *testing.T) {
	p := NewPrometheus()

	done := p.RequestStarted()
	assert.Equal(t, 1.0, testutil.ToFloat64(p.httpInFlight))
	done("GET", "/api/wallet", "200", 10*time.Millisecond)
	assert.Equal(t, 0.0, testutil.ToFloat64(p.httpInFlight))

	rec := httptest.NewRecorder()
	p.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `agent_console_http_requests_total{method="GET",path="/api/wallet",status="200"} 1`)
}
