package zip

import (
	"context"
	"fmt"
)

// openAll opens every owned producer that implements Lifecycle, in declaration order.
// If one fails, the ones opened before it are closed again.
func openAll(ctx context.Context, producers ...any) error {
	for idx, p := range producers {
		l, ok := p.(Lifecycle)
		if !ok {
			continue
		}
		err := l.Open(ctx)
		if err != nil {
			// Close only the successfully opened producers
			closeAll(producers[:idx]...)
			return fmt.Errorf("failed to open producer %d: %w", idx+1, err)
		}
	}
	return nil
}

func closeAll(producers ...any) {
	for _, p := range producers {
		if l, ok := p.(Lifecycle); ok {
			l.Close()
		}
	}
}
