package handler

import (
	"encoding/json"
	"net/http"

	"salescoach-api/internal/provider"
)

type providerStatus struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

type healthResponse struct {
	Status    string                    `json:"status"`
	Providers map[string]providerStatus `json:"providers"`
}

// Health reports per-provider availability so the dashboard can grey out a
// provider whose credentials are not configured.
func Health(providers []provider.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		statuses := make(map[string]providerStatus, len(providers))
		for _, p := range providers {
			s := providerStatus{Available: p.Available()}
			if !s.Available {
				s.Reason = "incomplete configuration"
			}
			statuses[p.Name()] = s
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(healthResponse{
			Status:    "ok",
			Providers: statuses,
		})
	}
}
