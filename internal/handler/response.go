package handler

import (
	"encoding/json"
	"net/http"

	"salescoach-api/pkg/coach"
)

type dataResponse struct {
	Data interface{} `json:"data"`
}

func writeData(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dataResponse{Data: data})
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(coach.ErrorResponse{Error: msg})
}
