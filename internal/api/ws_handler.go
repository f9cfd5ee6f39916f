package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"cvstudio/internal/store"
)

// WsHandler pushes document revision events to connected clients so a
// preview pane can refresh as soon as the document changes.
type WsHandler struct {
	store          *store.Store
	logger         *slog.Logger
	upgrader       websocket.Upgrader
	allowedOrigins []string
}

// NewWsHandler constructs a WebSocket handler.
func NewWsHandler(st *store.Store, logger *slog.Logger, allowedOrigins []string) *WsHandler {
	h := &WsHandler{
		store:          st,
		logger:         logger,
		allowedOrigins: allowedOrigins,
	}
	h.upgrader = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" {
				return true
			}
			if len(h.allowedOrigins) == 0 {
				u, err := url.Parse(origin)
				if err != nil {
					return false
				}
				return strings.EqualFold(u.Host, r.Host)
			}
			for _, allowed := range h.allowedOrigins {
				if origin == allowed {
					return true
				}
			}
			return false
		},
	}
	return h
}

type wsRevisionEvent struct {
	Type     string `json:"type"`
	Revision uint64 `json:"revision"`
}

// HandleConnection upgrades the request and streams revision events
// until either side disconnects.
func (h *WsHandler) HandleConnection(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("upgrade websocket failed", slog.Any("error", err))
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	log := h.logger.With(
		slog.String("client_ip", c.ClientIP()),
	)

	// Register the watcher before the loops start so commits made
	// right after the upgrade are not missed.
	revisions := h.store.Watch(ctx)

	errCh := make(chan error, 2)

	go h.readLoop(ctx, conn, errCh, cancel)
	go h.notifyLoop(ctx, conn, revisions, errCh, cancel, log)

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			log.Info("websocket connection closed", slog.Any("error", err))
		} else {
			log.Info("websocket connection closed")
		}
	}
}

// readLoop drains client messages so the connection surfaces
// disconnects promptly. Incoming payloads are ignored.
func (h *WsHandler) readLoop(
	ctx context.Context,
	conn *websocket.Conn,
	errCh chan<- error,
	cancel context.CancelFunc,
) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if _, _, err := conn.ReadMessage(); err != nil {
			writeClose(conn, websocket.CloseAbnormalClosure, "read error")
			errCh <- fmt.Errorf("read message: %w", err)
			cancel()
			return
		}
	}
}

func writeClose(conn *websocket.Conn, code int, text string) {
	deadline := time.Now().Add(5 * time.Second)
	_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, text), deadline)
}

func (h *WsHandler) notifyLoop(
	ctx context.Context,
	conn *websocket.Conn,
	revisions <-chan uint64,
	errCh chan<- error,
	cancel context.CancelFunc,
	log *slog.Logger,
) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case rev, ok := <-revisions:
			if !ok {
				errCh <- fmt.Errorf("revision channel closed")
				cancel()
				return
			}

			payload, err := json.Marshal(wsRevisionEvent{Type: "revision", Revision: rev})
			if err != nil {
				errCh <- fmt.Errorf("encode revision event: %w", err)
				cancel()
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				errCh <- fmt.Errorf("write message: %w", err)
				cancel()
				return
			}
			log.Debug("pushed revision event", slog.Uint64("revision", rev))
		case <-ticker.C:
			deadline := time.Now().Add(5 * time.Second)
			if err := conn.WriteControl(websocket.PingMessage, []byte("ping"), deadline); err != nil {
				errCh <- fmt.Errorf("write ping: %w", err)
				cancel()
				return
			}
		}
	}
}
