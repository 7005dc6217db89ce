package common

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope every HTTP endpoint answers with.
type Response struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func WriteJSON(w http.ResponseWriter, status int, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Response{Message: message, Data: data})
}
