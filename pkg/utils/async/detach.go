package async

import (
	"context"

	"github.com/doorap-lab/doorap/pkg/utils/logging"
)

// Detach returns a context that survives cancellation of the parent while
// preserving its logger. Used for work whose result must be applied even
// if the caller (e.g. a torn-down UI request) goes away.
func Detach(ctx context.Context) context.Context {
	return logging.With(context.WithoutCancel(ctx), logging.From(ctx))
}
