package endpoint

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/thanzeeha/portfolio4/pkg/portal"
)

const MaxRequestSize = 1 << 20 // 1MB limit

// ParseRequestBody decodes the JSON request body into T, bounded by
// MaxRequestSize. An empty body yields the zero value of T.
func ParseRequestBody[T any](r *http.Request) (T, error) {
	var request T

	data, err := portal.ReadWithSizeLimit(r.Body, MaxRequestSize)
	if err != nil {
		return request, fmt.Errorf("failed to read the given request body: %w", err)
	}

	if len(data) == 0 {
		return request, nil
	}

	if err = json.Unmarshal(data, &request); err != nil {
		return request, fmt.Errorf("failed to unmarshal the given request body: %w", err)
	}

	return request, nil
}
