package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/yanqian/celestial/internal/domain/astronomy"
)

const liveWriteTimeout = 10 * time.Second

type liveFrame struct {
	Type   string            `json:"type"`
	Record *astronomy.Record `json:"record,omitempty"`
	Error  *liveError        `json:"error,omitempty"`
	SentAt time.Time         `json:"sentAt"`
}

type liveError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// AstronomyLive upgrades to a websocket and pushes a fresh record every refresh interval.
// A failed lookup is reported as an error frame and the feed keeps going.
func (h *Handler) AstronomyLive(c *gin.Context) {
	query, httpErr := astronomyQuery(c)
	if httpErr != nil {
		abortWithError(c, httpErr)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// the upgrader has already replied to the client
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	// Reading is required to observe close frames from the peer.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	logger := h.logger.With("request_id", c.GetString(requestIDKey), "mode", string(query.Mode))
	logger.Info("live feed opened")
	defer logger.Info("live feed closed")

	ticker := time.NewTicker(h.liveRefresh)
	defer ticker.Stop()

	for {
		if err := h.pushSnapshot(ctx, conn, query); err != nil {
			if ctx.Err() == nil {
				logger.Warn("live feed write failed", "error", err)
			}
			return
		}
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(time.Second))
			return
		case <-ticker.C:
		}
	}
}

func (h *Handler) pushSnapshot(ctx context.Context, conn *websocket.Conn, query astronomy.Query) error {
	frame := liveFrame{Type: "snapshot"}
	record, err := h.astronomySvc.Lookup(ctx, query)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		mapped := fromDomainError(err, "astronomy_failed")
		frame = liveFrame{Type: "error", Error: &liveError{Code: mapped.Code, Message: mapped.Message}}
	} else {
		frame.Record = &record
	}
	frame.SentAt = time.Now().UTC()

	if err := conn.SetWriteDeadline(time.Now().Add(liveWriteTimeout)); err != nil {
		return err
	}
	return conn.WriteJSON(frame)
}
