package supplier

import (
	"strings"

	"github.com/goccy/go-json"
)

// Decode unpacks a raw payload returned by Session.Call into T.
// The supplier API wraps most responses in a JSON-encoded string; a payload
// that fails to decode yields the zero value of T (an empty collection)
// rather than an error, matching the API's loose delivery contract.
func Decode[T any](raw string) T {
	var out T
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return out
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		var zero T
		return zero
	}
	return out
}
