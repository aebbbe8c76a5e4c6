package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/rhekacitra/InsideOR-Project/internal/models"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = 30 * time.Second
)

// SocketCommand управляющее сообщение от браузера
type SocketCommand struct {
	Action string  `json:"action"` // seek | play | pause
	Start  float64 `json:"start"`
}

// SocketMessage сообщение сервера: кадр, состояние или ошибка
type SocketMessage struct {
	Type  string        `json:"type"` // frame | state | error
	Frame *models.Frame `json:"frame,omitempty"`
	State *ViewerState  `json:"state,omitempty"`
	Error string        `json:"error,omitempty"`
}

// PlaybackSocket отдает кадры сессии по websocket и принимает команды управления
type PlaybackSocket struct {
	sessions *SessionManager
	upgrader websocket.Upgrader
}

// NewPlaybackSocket создает websocket обработчик поверх менеджера сессий
func NewPlaybackSocket(sessions *SessionManager) *PlaybackSocket {
	return &PlaybackSocket{
		sessions: sessions,
		upgrader: websocket.Upgrader{
			// Дашборд отдается статикой с другого origin
			CheckOrigin:     func(r *http.Request) bool { return true },
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
	}
}

// Handle подключает клиента к сессии
// @Summary Поток кадров сессии по websocket
// @Tags sessions
// @Param session_id path string true "UUID сессии" format(uuid)
// @Router /sessions/{session_id}/ws [get]
func (ps *PlaybackSocket) Handle(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("session_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Неверный ID сессии"})
		return
	}
	frame, err := ps.sessions.CurrentFrame(sessionID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Сессия не найдена", Details: err.Error()})
		return
	}

	conn, err := ps.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.Warn("WebSocket upgrade failed", "session_id", sessionID.String(), "error", err)
		return
	}
	defer conn.Close()

	clientID, frames, err := ps.sessions.Subscribe(sessionID)
	if err != nil {
		// Сессию удалили между проверкой и подключением
		conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
		conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session closed"))
		return
	}
	defer ps.sessions.Hub().Unsubscribe(sessionID, clientID)

	slog.Info("WebSocket client connected", "session_id", sessionID.String(), "client_id", clientID.String())

	conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(wsPongWait))
		return nil
	})

	// Все записи идут из этой горутины, читатель передает ответы через канал
	replies := make(chan SocketMessage, 4)
	readDone := make(chan struct{})
	stop := make(chan struct{})
	defer close(stop)
	go ps.readLoop(conn, sessionID, replies, readDone, stop)

	if err := writeMessage(conn, SocketMessage{Type: "frame", Frame: &frame}); err != nil {
		return
	}

	ticker := time.NewTicker(wsPingPeriod)
	defer ticker.Stop()

	for {
		select {
		case f, ok := <-frames:
			if !ok {
				// Сессия удалена
				conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
				conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session closed"))
				return
			}
			if err := writeMessage(conn, SocketMessage{Type: "frame", Frame: &f}); err != nil {
				return
			}
		case msg := <-replies:
			if err := writeMessage(conn, msg); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-readDone:
			slog.Info("WebSocket client disconnected", "session_id", sessionID.String(), "client_id", clientID.String())
			return
		}
	}
}

func (ps *PlaybackSocket) readLoop(conn *websocket.Conn, sessionID uuid.UUID,
	replies chan<- SocketMessage, done chan<- struct{}, stop <-chan struct{}) {
	defer close(done)

	send := func(msg SocketMessage) bool {
		select {
		case replies <- msg:
			return true
		case <-stop:
			return false
		}
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Warn("WebSocket read error", "session_id", sessionID.String(), "error", err)
			}
			return
		}

		var cmd SocketCommand
		if err := json.Unmarshal(data, &cmd); err != nil {
			if !send(SocketMessage{Type: "error", Error: "Неверный формат команды"}) {
				return
			}
			continue
		}
		if reply, ok := ps.apply(sessionID, cmd); ok && !send(reply) {
			return
		}
	}
}

// apply выполняет команду; кадры после seek приходят через хаб
func (ps *PlaybackSocket) apply(sessionID uuid.UUID, cmd SocketCommand) (SocketMessage, bool) {
	var (
		state ViewerState
		err   error
	)
	switch cmd.Action {
	case "seek":
		_, err = ps.sessions.Seek(sessionID, cmd.Start)
		if err == nil {
			return SocketMessage{}, false
		}
	case "play":
		state, err = ps.sessions.Play(sessionID)
	case "pause":
		state, err = ps.sessions.Pause(sessionID)
	default:
		return SocketMessage{Type: "error", Error: "Неизвестная команда: " + cmd.Action}, true
	}
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return SocketMessage{Type: "error", Error: "Сессия не найдена"}, true
		}
		return SocketMessage{Type: "error", Error: err.Error()}, true
	}
	return SocketMessage{Type: "state", State: &state}, true
}

func writeMessage(conn *websocket.Conn, msg SocketMessage) error {
	conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
	if err := conn.WriteJSON(msg); err != nil {
		slog.Warn("WebSocket write failed", "type", msg.Type, "error", err)
		return err
	}
	return nil
}
