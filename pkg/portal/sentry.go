package portal

import (
	sentryhttp "github.com/getsentry/sentry-go/http"

	"github.com/thanzeeha/portfolio4/metal/env"
)

// Sentry bundles the HTTP instrumentation handler together with the
// environment it was initialised for.
type Sentry struct {
	Handler *sentryhttp.Handler
	Options *sentryhttp.Options
	Env     *env.Environment
}
