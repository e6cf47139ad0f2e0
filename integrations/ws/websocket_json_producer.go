package ws

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/gorilla/websocket"
	"github.com/shpandrak/shpanzip/zip"
)

type wsJsonProducer[T any] struct {
	wsFactory func(ctx context.Context) (*websocket.Conn, error)
	ws        *websocket.Conn
	stopClose func() bool
}

// JsonFromWebSocket produces every JSON message read from the connection created by wsFactory.
// A normal closure by the peer is the end of the producer, any other read failure is an error.
func JsonFromWebSocket[T any](wsFactory func(ctx context.Context) (*websocket.Conn, error)) zip.Producer[T] {
	return &wsJsonProducer[T]{
		wsFactory: wsFactory,
	}
}

func (w *wsJsonProducer[T]) Open(ctx context.Context) error {
	ws, err := w.wsFactory(ctx)
	if err != nil {
		return fmt.Errorf("failed to connect websocket: %w", err)
	}
	w.ws = ws

	// Closing the connection is what unblocks a pending read when ctx is cancelled
	w.stopClose = context.AfterFunc(ctx, w.closeConn)
	return nil
}

func (w *wsJsonProducer[T]) Close() {
	if w.stopClose != nil && w.stopClose() {
		w.closeConn()
	}
}

func (w *wsJsonProducer[T]) closeConn() {
	if w.ws != nil {
		if closeErr := w.ws.Close(); closeErr != nil {
			slog.Warn(fmt.Sprintf("error closing websocket: %v", closeErr))
		}
	}
}

func (w *wsJsonProducer[T]) Emit(ctx context.Context) (T, error) {
	var ret T
	if ctx.Err() != nil {
		return ret, ctx.Err()
	}
	if w.ws == nil {
		return ret, websocket.ErrCloseSent
	}
	err := w.ws.ReadJSON(&ret)
	if err != nil {
		if ctx.Err() != nil {
			return ret, ctx.Err()
		}
		if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
			return ret, io.EOF
		}
		return ret, fmt.Errorf("error reading from websocket: %w", err)
	}
	return ret, nil
}

func (w *wsJsonProducer[T]) SizeHint() zip.SizeHint {
	return zip.UnknownSize()
}
