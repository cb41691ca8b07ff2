package request

import (
	"net/http"
	"strconv"
)

// ParseOffset reads the offset query parameter. Anything that is not a
// non-negative integer is treated as 0.
func ParseOffset(r *http.Request) int {
	raw := r.URL.Query().Get("offset")
	if raw == "" {
		return 0
	}
	offset, err := strconv.Atoi(raw)
	if err != nil || offset < 0 {
		return 0
	}
	return offset
}
