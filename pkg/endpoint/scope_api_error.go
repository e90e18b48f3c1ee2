package endpoint

import (
	"errors"
	"fmt"
	baseHttp "net/http"
	"strconv"
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/thanzeeha/portfolio4/pkg/portal"
)

// ScopeApiError enriches a Sentry scope with the request and API error
// context before the exception is captured.
type ScopeApiError struct {
	scope   *sentry.Scope
	request *baseHttp.Request
	apiErr  *ApiError
}

func NewScopeApiError(scope *sentry.Scope, r *baseHttp.Request, apiErr *ApiError) *ScopeApiError {
	return &ScopeApiError{scope: scope, request: r, apiErr: apiErr}
}

func (s *ScopeApiError) RequestID() string {
	if s == nil || s.request == nil {
		return ""
	}

	if v, ok := s.request.Context().Value(portal.RequestIDKey).(string); ok {
		if id := strings.TrimSpace(v); id != "" {
			return id
		}
	}

	return strings.TrimSpace(s.request.Header.Get(portal.RequestIDHeader))
}

func (s *ScopeApiError) Enrich() {
	if s == nil || s.scope == nil || s.request == nil || s.apiErr == nil {
		return
	}

	s.scope.SetRequest(s.request)
	s.scope.SetLevel(getSentryLevel(s.apiErr.Status))
	s.scope.SetTag("http.method", s.request.Method)
	s.scope.SetTag("http.status_code", strconv.Itoa(s.apiErr.Status))
	s.scope.SetExtra("api_error_status_text", baseHttp.StatusText(s.apiErr.Status))
	s.scope.SetExtra("api_error_message", s.apiErr.Message)

	if requestID := s.RequestID(); requestID != "" {
		s.scope.SetTag("http.request_id", requestID)
	}

	if s.apiErr.Data != nil {
		s.scope.SetExtra("api_error_data", s.apiErr.Data)
	}

	if s.apiErr.Err != nil {
		s.scope.SetExtra("api_error_cause", s.apiErr.Err.Error())
		s.scope.SetTag("api.error.cause_type", fmt.Sprintf("%T", s.apiErr.Err))
		s.scope.SetExtra("api_error_cause_chain", s.buildErrorChain(s.apiErr.Err))
	}
}

func (s *ScopeApiError) buildErrorChain(err error) []string {
	var chain []string

	for err != nil {
		chain = append(chain, err.Error())
		err = errors.Unwrap(err)
	}

	return chain
}
