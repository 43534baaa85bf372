package safe_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/doorap-lab/doorap/pkg/utils/safe"
)

type recordingCloser struct {
	closed int
	err    error
}

func (c *recordingCloser) Close() error {
	c.closed++
	return c.err
}

func TestClose(t *testing.T) {
	ctx := context.Background()

	t.Run("closes the closer", func(t *testing.T) {
		closer := &recordingCloser{}
		safe.Close(ctx, closer)
		gt.Value(t, closer.closed).Equal(1)
	})

	t.Run("nil closer is a no-op", func(t *testing.T) {
		safe.Close(ctx, nil)
	})

	t.Run("close error does not panic", func(t *testing.T) {
		closer := &recordingCloser{err: goerr.New("close failed")}
		safe.Close(ctx, closer)
		gt.Value(t, closer.closed).Equal(1)
	})
}
