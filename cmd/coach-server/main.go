// cmd/coach-server/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"salescoach-api/internal/common/config"
	"salescoach-api/internal/common/logger"
	"salescoach-api/internal/provider"
	"salescoach-api/internal/server"
)

func main() {
	zapLog := logger.New("info", "console")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	zapLog = logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	providers := buildProviders(cfg, log)
	for _, p := range providers {
		if !p.Available() {
			// Still mounted: requests fail with CONFIG_MISSING through the
			// error envelope instead of the route not existing.
			log.Warn("provider has incomplete configuration", map[string]interface{}{
				"provider": p.Name(),
			})
		}
	}

	mux := server.SetupMux(providers, log)
	srv := &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: mux,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("coach proxy listening", map[string]interface{}{
			"addr": cfg.Server.Addr(),
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("server failed", zap.Error(err))
		}
	}()

	<-done
	log.Info("shutting down...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLog.Fatal("shutdown failed", zap.Error(err))
	}
	log.Info("server stopped", nil)
}

func buildProviders(cfg *config.Config, log logger.Logger) []provider.Provider {
	return []provider.Provider{
		provider.NewGeminiProvider(cfg.Providers.Gemini, cfg.Retry, log),
		provider.NewAzureOpenAIProvider(cfg.Providers.AzureOpenAI, cfg.Retry, log),
	}
}
