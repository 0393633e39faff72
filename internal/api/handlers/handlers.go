package handlers

import (
	"net/http"
	"strconv"
)

const maxUploadSize = 50 << 20 // 50 MB

// parseID reads a numeric path parameter. The second return is false for
// anything that is not an unsigned integer.
func parseID(r *http.Request, name string) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue(name), 10, 32)
	return uint(id), err == nil
}
