package handlers

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/rhekacitra/InsideOR-Project/internal/models"
)

const subscriberBuffer = 16

// FrameHub рассылает кадры сессии всем подписанным клиентам (websocket, gRPC)
type FrameHub struct {
	mu          sync.RWMutex
	subscribers map[uuid.UUID]map[uuid.UUID]chan models.Frame
}

// NewFrameHub создает пустой хаб
func NewFrameHub() *FrameHub {
	return &FrameHub{
		subscribers: make(map[uuid.UUID]map[uuid.UUID]chan models.Frame),
	}
}

// Subscribe регистрирует клиента сессии. Канал закрывается при Unsubscribe или CloseSession.
func (h *FrameHub) Subscribe(sessionID uuid.UUID) (uuid.UUID, <-chan models.Frame) {
	clientID := uuid.New()
	ch := make(chan models.Frame, subscriberBuffer)

	h.mu.Lock()
	clients, ok := h.subscribers[sessionID]
	if !ok {
		clients = make(map[uuid.UUID]chan models.Frame)
		h.subscribers[sessionID] = clients
	}
	clients[clientID] = ch
	h.mu.Unlock()

	slog.Debug("Frame subscriber added", "session_id", sessionID.String(), "client_id", clientID.String())
	return clientID, ch
}

// Unsubscribe удаляет клиента и закрывает его канал
func (h *FrameHub) Unsubscribe(sessionID, clientID uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.subscribers[sessionID]
	if !ok {
		return
	}
	if ch, ok := clients[clientID]; ok {
		close(ch)
		delete(clients, clientID)
	}
	if len(clients) == 0 {
		delete(h.subscribers, sessionID)
	}
}

// Publish отправляет кадр всем клиентам сессии без блокировки.
// Медленный клиент теряет самый старый кадр.
func (h *FrameHub) Publish(sessionID uuid.UUID, frame models.Frame) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for clientID, ch := range h.subscribers[sessionID] {
		select {
		case ch <- frame:
			continue
		default:
		}
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- frame:
		default:
			slog.Warn("Frame subscriber is full, dropping frame",
				"session_id", sessionID.String(), "client_id", clientID.String())
		}
	}
}

// CloseSession закрывает каналы всех клиентов сессии
func (h *FrameHub) CloseSession(sessionID uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ch := range h.subscribers[sessionID] {
		close(ch)
	}
	delete(h.subscribers, sessionID)
}

// SubscriberCount возвращает число клиентов сессии
func (h *FrameHub) SubscriberCount(sessionID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[sessionID])
}
