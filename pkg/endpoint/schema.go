package endpoint

import baseHttp "net/http"

type ErrorResponse struct {
	Error  string         `json:"error"`
	Status int            `json:"status"`
	Data   map[string]any `json:"data,omitempty"`
}

// ApiError is the failure value returned by API handlers. Data carries
// structured detail (e.g., validation violations) exposed to the caller;
// Err is the underlying cause and is never serialized.
type ApiError struct {
	Message string         `json:"message"`
	Status  int            `json:"status"`
	Data    map[string]any `json:"-"`
	Err     error          `json:"-"`
}

func (e *ApiError) Error() string {
	if e == nil {
		return "Internal Server Error"
	}

	return e.Message
}

func (e *ApiError) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.Err
}

type ApiHandler func(baseHttp.ResponseWriter, *baseHttp.Request) *ApiError

type Middleware func(ApiHandler) ApiHandler
