package zip

import (
	"context"

	"github.com/shpandrak/shpanzip/internal/util"
)

// Error returns a producer that fails every Emit with err.
func Error[T any](err error) Producer[T] {
	return ProducerFunc[T](func(_ context.Context) (T, error) {
		return util.DefaultValue[T](), err
	})
}
