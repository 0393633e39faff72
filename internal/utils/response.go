package utils

import (
	"encoding/json"
	"net/http"
)

// JSONResponse sends v as a JSON body with the given status.
func JSONResponse(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONMessage sends a {"message": ...} body, the shape the lookup and tag
// endpoints use for both confirmations and failures.
func JSONMessage(w http.ResponseWriter, status int, message string) {
	JSONResponse(w, status, map[string]string{"message": message})
}
