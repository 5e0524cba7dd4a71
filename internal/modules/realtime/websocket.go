package realtime

import (
	"log"
	"net/http"
	"time"

	"pictgram/internal/pkg/jwt"
	"pictgram/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
	writeWait  = 10 * time.Second
)

// WSHandler streams feed events to authenticated clients.
type WSHandler struct {
	hub        *Hub
	jwtService *jwt.Service
	upgrader   websocket.Upgrader
}

// NewWSHandler accepts browser handshakes only from origins checkOrigin allows.
func NewWSHandler(hub *Hub, jwtService *jwt.Service, checkOrigin func(*http.Request) bool) *WSHandler {
	return &WSHandler{
		hub:        hub,
		jwtService: jwtService,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin,
		},
	}
}

func (h *WSHandler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/ws/topics", h.HandleWebSocket)
}

// HandleWebSocket serves GET /ws/topics?token=JWT. Browsers cannot set
// headers on a websocket handshake, so the token travels in the query.
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, http.StatusUnauthorized, "AUTH_HEADER_MISSING", "Token is required. Use ?token=YOUR_JWT_TOKEN")
		return
	}

	claims, err := h.jwtService.ValidateToken(token)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token")
		return
	}
	userID := claims.UserID

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket_upgrade_failed user_id=%d error=%q", userID, err.Error())
		return
	}

	h.hub.Register(userID, conn)
	log.Printf("websocket_connected user_id=%d online=%d", userID, h.hub.GetOnlineCount())

	done := make(chan struct{})
	defer func() {
		close(done)
		h.hub.Unregister(userID, conn)
		log.Printf("websocket_disconnected user_id=%d", userID)
	}()

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	go h.pingLoop(conn, done)
	h.readLoop(conn, userID)
}

func (h *WSHandler) pingLoop(conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}

// readLoop drains client frames; the feed stream is server-to-client only.
func (h *WSHandler) readLoop(conn *websocket.Conn, userID int64) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("websocket_error user_id=%d error=%q", userID, err.Error())
			}
			return
		}
	}
}
