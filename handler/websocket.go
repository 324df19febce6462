package handler

import (
	"context"
	"time"

	"ticketing_admin/apperror"
	"ticketing_admin/utils"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// UpgradePerubahan chỉ cho handshake websocket đi qua, và chỉ khi có change feed.
func (h *Handler) UpgradePerubahan(c *fiber.Ctx) error {
	if h.Feed == nil {
		return utils.FailResponse(c, apperror.ErrUnavailable)
	}
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	return c.Next()
}

// PerubahanWebsocket đẩy message của change feed tới một client admin.
// Conn chỉ dùng được trong lúc handler chạy, nên handler đợi goroutine ghi
// kết thúc rồi mới return.
func (h *Handler) PerubahanWebsocket(c *websocket.Conn) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	msgs, closeSub := h.Feed.Subscribe(ctx)
	defer closeSub()

	done := make(chan struct{})
	go func() {
		defer close(done)
		// feed đóng hoặc ghi lỗi -> cắt ReadMessage bên dưới
		defer c.SetReadDeadline(time.Now())

		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				if err := c.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
					log.Debug().Err(err).Msg("websocket write")
					return
				}
			}
		}
	}()

	// client không gửi gì; lỗi đọc nghĩa là đã ngắt kết nối
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}

	cancel()
	<-done
}
