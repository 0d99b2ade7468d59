package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"salescoach-api/internal/common/logger"
	"salescoach-api/internal/common/metrics"
	"salescoach-api/internal/handler"
	"salescoach-api/internal/middleware"
	"salescoach-api/internal/provider"
)

// Routes maps each provider onto its own proxy path; both expose the
// identical action set.
var Routes = map[string]string{
	provider.NameGemini:      "/api/coach/gemini",
	provider.NameAzureOpenAI: "/api/coach/azure-openai",
}

// SetupMux wires the proxy endpoints with the middleware chain.
func SetupMux(providers []provider.Provider, log logger.Logger) http.Handler {
	mux := http.NewServeMux()

	for _, p := range providers {
		path, ok := Routes[p.Name()]
		if !ok {
			continue
		}
		mux.HandleFunc(path, handler.Proxy(p, log))

		available := 0.0
		if p.Available() {
			available = 1.0
		}
		metrics.ProviderAvailable.WithLabelValues(p.Name()).Set(available)
	}

	mux.HandleFunc("/api/health", handler.Health(providers))
	mux.Handle("/metrics", promhttp.Handler())

	return middleware.Chain(mux, log)
}
