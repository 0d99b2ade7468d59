// Package handler exposes the stateless proxy endpoints. It is the last line
// of defense: every internal fault leaves as a structured HTTP error
// response, never an unhandled one.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	commonerrors "salescoach-api/internal/common/errors"
	"salescoach-api/internal/common/logger"
	"salescoach-api/internal/common/metrics"
	"salescoach-api/internal/middleware"
	"salescoach-api/internal/provider"
	"salescoach-api/pkg/coach"
)

// Proxy returns the POST handler for one provider. Both providers share this
// dispatch; the action set is identical.
func Proxy(p provider.Provider, log logger.Logger) http.HandlerFunc {
	log = log.With(map[string]interface{}{"provider": p.Name()})

	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
			return
		}

		// Malformed JSON falls through as an empty request so it exits on
		// the unknown-action path, same as an absent action.
		var req coach.ActionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			req = coach.ActionRequest{}
		}

		reqLog := log.With(map[string]interface{}{
			"action":    req.Action,
			"requestId": middleware.RequestIDFromContext(r.Context()),
		})

		start := time.Now()
		data, err := dispatch(r.Context(), p, req)
		elapsed := time.Since(start)

		if err != nil {
			status := commonerrors.HTTPStatus(err)
			recordFailure(p.Name(), req.Action, status, err)
			reqLog.WithError(err).Error("action failed", map[string]interface{}{
				"status":    status,
				"elapsedMs": elapsed.Milliseconds(),
			})
			writeError(w, status, commonerrors.PublicMessage(err))
			return
		}

		metrics.ProxyRequestsTotal.WithLabelValues(p.Name(), req.Action, strconv.Itoa(http.StatusOK)).Inc()
		metrics.ProviderCallDuration.WithLabelValues(p.Name(), req.Action).Observe(elapsed.Seconds())
		reqLog.Info("action completed", map[string]interface{}{
			"elapsedMs": elapsed.Milliseconds(),
		})
		writeData(w, data)
	}
}

// dispatch validates the payload shape for the named action and runs exactly
// one provider operation. Unknown actions never reach the provider.
func dispatch(ctx context.Context, p provider.Provider, req coach.ActionRequest) (interface{}, error) {
	switch req.Action {
	case coach.ActionGenerateCoachInsights:
		var payload coach.InsightsPayload
		if err := json.Unmarshal(req.Payload, &payload); err != nil {
			return nil, commonerrors.NewInvalidPayloadError(req.Action, err)
		}
		return p.GenerateCoachInsights(ctx, payload.SalesData)

	case coach.ActionContinueChat:
		var payload coach.ChatPayload
		if err := json.Unmarshal(req.Payload, &payload); err != nil {
			return nil, commonerrors.NewInvalidPayloadError(req.Action, err)
		}
		return p.ContinueChat(ctx, payload.Messages, payload.SalesData)

	case coach.ActionGenerateMeetingPrep:
		var payload coach.MeetingPrepPayload
		if err := json.Unmarshal(req.Payload, &payload); err != nil {
			return nil, commonerrors.NewInvalidPayloadError(req.Action, err)
		}
		return p.GenerateMeetingPrep(ctx, payload.Meeting, payload.SalesData)

	default:
		return nil, commonerrors.NewUnknownActionError(req.Action)
	}
}

func recordFailure(providerName, action string, status int, err error) {
	metrics.ProxyRequestsTotal.WithLabelValues(providerName, action, strconv.Itoa(status)).Inc()

	var stdErr *commonerrors.StandardError
	if errors.As(err, &stdErr) {
		metrics.ProviderCallsFailed.WithLabelValues(providerName, string(stdErr.Code)).Inc()
	}
}
