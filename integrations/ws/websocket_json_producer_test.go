package ws

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/shpandrak/shpanzip/zip"
	"github.com/stretchr/testify/require"
)

type quote struct {
	Symbol string  `json:"s"`
	Price  float64 `json:"p"`
}

// newQuoteServer sends the given quotes and then closes the connection with closeCode
func newQuoteServer(t *testing.T, quotes []quote, closeCode int) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for _, q := range quotes {
			if err := conn.WriteJSON(q); err != nil {
				return
			}
		}
		_ = conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(closeCode, "done"),
			time.Now().Add(time.Second),
		)
		// Wait for the client to go away
		_, _, _ = conn.ReadMessage()
	}))
	t.Cleanup(srv.Close)
	return srv
}

func dialer(srv *httptest.Server) func(ctx context.Context) (*websocket.Conn, error) {
	return func(ctx context.Context) (*websocket.Conn, error) {
		conn, _, err := websocket.DefaultDialer.DialContext(ctx, "ws"+strings.TrimPrefix(srv.URL, "http"), nil)
		return conn, err
	}
}

func TestJsonFromWebSocket(t *testing.T) {
	quotes := []quote{{Symbol: "AAPL", Price: 190.5}, {Symbol: "MSFT", Price: 410}, {Symbol: "AAPL", Price: 191}}
	srv := newQuoteServer(t, quotes, websocket.CloseNormalClosure)

	got, err := zip.Collect(context.Background(), JsonFromWebSocket[quote](dialer(srv)))
	require.NoError(t, err)
	require.Equal(t, quotes, got)
}

func TestJsonFromWebSocketAbnormalClose(t *testing.T) {
	srv := newQuoteServer(t, []quote{{Symbol: "AAPL", Price: 1}}, websocket.CloseInternalServerErr)

	_, err := zip.Collect(context.Background(), JsonFromWebSocket[quote](dialer(srv)))
	require.Error(t, err)
	require.Contains(t, err.Error(), "error reading from websocket")
}

func TestZipWebSocketWithSequence(t *testing.T) {
	srv := newQuoteServer(t, []quote{{Symbol: "A", Price: 1}, {Symbol: "B", Price: 2}}, websocket.CloseNormalClosure)

	tuples, err := zip.Collect[zip.Tuple2[int, quote]](
		context.Background(),
		zip.NewZip2(zip.Range(1, 10), JsonFromWebSocket[quote](dialer(srv))),
	)
	require.NoError(t, err)
	require.Equal(
		t,
		[]zip.Tuple2[int, quote]{
			zip.NewTuple2(1, quote{Symbol: "A", Price: 1}),
			zip.NewTuple2(2, quote{Symbol: "B", Price: 2}),
		},
		tuples,
	)
}

func TestJsonFromWebSocketConnectFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(srv.Close)

	_, err := zip.Collect(context.Background(), JsonFromWebSocket[quote](dialer(srv)))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to connect websocket")
}
