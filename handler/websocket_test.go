package handler_test

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"ticketing_admin/handler"
	"ticketing_admin/router"

	fws "github.com/fasthttp/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chanFeed struct {
	msgs chan string
}

func (f *chanFeed) Subscribe(context.Context) (<-chan string, func()) {
	return f.msgs, func() {}
}

func dialFeed(t *testing.T, feed *chanFeed) *fws.Conn {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	router.SetupRoutes(app, &handler.Handler{Feed: feed}, "")

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	conn, _, err := fws.DefaultDialer.Dial("ws://"+ln.Addr().String()+"/admin/ws/perubahan", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestPerubahanWebsocket_Relays(t *testing.T) {
	feed := &chanFeed{msgs: make(chan string)}
	conn := dialFeed(t, feed)

	payload := `{"entity":"lokasi","action":"created","id":1}`
	feed.msgs <- payload

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	kind, data, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, fws.TextMessage, kind)
	assert.Equal(t, payload, string(data))
}

func TestPerubahanWebsocket_ClosesWhenFeedEnds(t *testing.T) {
	feed := &chanFeed{msgs: make(chan string)}
	conn := dialFeed(t, feed)

	// client vẫn gửi liên tục trong lúc feed đóng
	stop := make(chan struct{})
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		for {
			select {
			case <-stop:
				return
			default:
			}
			if err := conn.WriteMessage(fws.TextMessage, []byte("ping")); err != nil {
				return
			}
			time.Sleep(time.Millisecond)
		}
	}()

	time.Sleep(20 * time.Millisecond)
	close(feed.msgs)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	close(stop)
	<-writerDone

	require.Error(t, err)
	var netErr net.Error
	if errors.As(err, &netErr) {
		assert.False(t, netErr.Timeout(), "server kept the connection open")
	}
}
