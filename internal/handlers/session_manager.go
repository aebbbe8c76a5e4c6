package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rhekacitra/InsideOR-Project/internal/models"
	"github.com/rhekacitra/InsideOR-Project/internal/services"
)

// ErrSessionNotFound сессия просмотра не существует или уже удалена
var ErrSessionNotFound = errors.New("viewer session not found")

// PlaybackSettings параметры воспроизведения
type PlaybackSettings struct {
	Tick time.Duration
	Step float64
}

// ViewerState снимок состояния сессии просмотра
type ViewerState struct {
	ID        uuid.UUID     `json:"session_id"`
	CaseID    string        `json:"case_id"`
	Window    models.Window `json:"window"`
	Duration  float64       `json:"duration"`
	Playing   bool          `json:"playing"`
	Step      float64       `json:"step"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// viewerSession владеет выбором случая, окном и задачей воспроизведения.
// ctl сериализует управляющие операции, mu защищает состояние от тиков.
type viewerSession struct {
	id        uuid.UUID
	createdAt time.Time
	task      *PlaybackTask

	ctl sync.Mutex

	mu        sync.Mutex
	caseID    string
	builder   frameSource
	start     float64
	playing   bool
	updatedAt time.Time
}

// frameSource строит кадры одного случая
type frameSource interface {
	Duration() float64
	Window(start float64) models.Window
	Frame(start float64) models.Frame
}

// SessionManager управляет жизненным циклом сессий просмотра
type SessionManager struct {
	explorer *services.ExplorerService
	hub      *FrameHub
	settings PlaybackSettings

	sessions     map[uuid.UUID]*viewerSession
	sessionsLock sync.RWMutex
}

// NewSessionManager создает новый менеджер сессий
func NewSessionManager(explorer *services.ExplorerService, hub *FrameHub, settings PlaybackSettings) *SessionManager {
	if settings.Tick <= 0 {
		settings.Tick = time.Second
	}
	if settings.Step <= 0 {
		settings.Step = 100
	}
	slog.Info("Session manager initialized", "tick", settings.Tick.String(), "step", settings.Step)
	return &SessionManager{
		explorer: explorer,
		hub:      hub,
		settings: settings,
		sessions: make(map[uuid.UUID]*viewerSession),
	}
}

// Hub возвращает хаб рассылки кадров
func (sm *SessionManager) Hub() *FrameHub {
	return sm.hub
}

// CreateSession создает сессию на выбранном случае с окном в начале записи
func (sm *SessionManager) CreateSession(caseID string) (ViewerState, error) {
	builder, err := sm.explorer.FrameBuilder(caseID)
	if err != nil {
		return ViewerState{}, err
	}

	now := time.Now().UTC()
	s := &viewerSession{
		id:        uuid.New(),
		createdAt: now,
		task:      NewPlaybackTask(sm.settings.Tick),
		caseID:    caseID,
		builder:   builder,
		updatedAt: now,
	}

	sm.sessionsLock.Lock()
	sm.sessions[s.id] = s
	sm.sessionsLock.Unlock()

	slog.Info("Viewer session created", "session_id", s.id.String(), "case_id", caseID)

	s.mu.Lock()
	defer s.mu.Unlock()
	return sm.stateLocked(s), nil
}

func (sm *SessionManager) get(id uuid.UUID) (*viewerSession, error) {
	sm.sessionsLock.RLock()
	defer sm.sessionsLock.RUnlock()
	s, ok := sm.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return s, nil
}

// GetSession возвращает состояние сессии
func (sm *SessionManager) GetSession(id uuid.UUID) (ViewerState, error) {
	s, err := sm.get(id)
	if err != nil {
		return ViewerState{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return sm.stateLocked(s), nil
}

// CurrentFrame строит кадр для текущего окна сессии
func (sm *SessionManager) CurrentFrame(id uuid.UUID) (models.Frame, error) {
	s, err := sm.get(id)
	if err != nil {
		return models.Frame{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.builder.Frame(s.start), nil
}

// SelectCase переключает сессию на другой случай: воспроизведение останавливается, окно в начало
func (sm *SessionManager) SelectCase(id uuid.UUID, caseID string) (models.Frame, error) {
	s, err := sm.get(id)
	if err != nil {
		return models.Frame{}, err
	}
	builder, err := sm.explorer.FrameBuilder(caseID)
	if err != nil {
		return models.Frame{}, err
	}

	s.ctl.Lock()
	defer s.ctl.Unlock()

	sm.pauseLocked(s)

	s.mu.Lock()
	s.caseID = caseID
	s.builder = builder
	s.start = 0
	s.updatedAt = time.Now().UTC()
	frame := s.builder.Frame(s.start)
	s.mu.Unlock()

	sm.hub.Publish(s.id, frame)
	slog.Info("Viewer session case selected", "session_id", id.String(), "case_id", caseID)
	return frame, nil
}

// Seek перемещает окно, начало ограничивается длительностью случая
func (sm *SessionManager) Seek(id uuid.UUID, start float64) (models.Frame, error) {
	s, err := sm.get(id)
	if err != nil {
		return models.Frame{}, err
	}

	s.ctl.Lock()
	defer s.ctl.Unlock()

	s.mu.Lock()
	s.start = s.builder.Window(start).Start
	s.updatedAt = time.Now().UTC()
	frame := s.builder.Frame(s.start)
	s.mu.Unlock()

	sm.hub.Publish(s.id, frame)
	return frame, nil
}

// Play запускает воспроизведение. Повторный вызов ничего не меняет.
func (sm *SessionManager) Play(id uuid.UUID) (ViewerState, error) {
	s, err := sm.get(id)
	if err != nil {
		return ViewerState{}, err
	}

	s.ctl.Lock()
	defer s.ctl.Unlock()

	s.mu.Lock()
	if s.playing && s.task.Running() {
		state := sm.stateLocked(s)
		s.mu.Unlock()
		return state, nil
	}
	s.playing = true
	s.updatedAt = time.Now().UTC()
	state := sm.stateLocked(s)
	s.mu.Unlock()

	s.task.Start(func(ctx context.Context) bool {
		return sm.tick(ctx, s)
	})

	slog.Info("Playback started", "session_id", id.String(), "case_id", state.CaseID)
	return state, nil
}

// tick сдвигает окно на шаг; в конце записи окно прижимается к краю и воспроизведение останавливается
func (sm *SessionManager) tick(ctx context.Context, s *viewerSession) bool {
	s.mu.Lock()
	if !s.playing || ctx.Err() != nil {
		s.mu.Unlock()
		return false
	}

	limit := s.builder.Duration() - models.WindowSize
	next := s.start + sm.settings.Step
	keepGoing := true
	if next > limit {
		next = limit
		s.playing = false
		keepGoing = false
	}
	s.start = s.builder.Window(next).Start
	s.updatedAt = time.Now().UTC()
	frame := s.builder.Frame(s.start)
	s.mu.Unlock()

	sm.hub.Publish(s.id, frame)
	if !keepGoing {
		slog.Info("Playback reached the end of the case", "session_id", s.id.String())
	}
	return keepGoing
}

// Pause останавливает будущие тики; текущий тик дорабатывает до конца
func (sm *SessionManager) Pause(id uuid.UUID) (ViewerState, error) {
	s, err := sm.get(id)
	if err != nil {
		return ViewerState{}, err
	}

	s.ctl.Lock()
	defer s.ctl.Unlock()

	sm.pauseLocked(s)

	s.mu.Lock()
	defer s.mu.Unlock()
	return sm.stateLocked(s), nil
}

// pauseLocked требует удержания s.ctl
func (sm *SessionManager) pauseLocked(s *viewerSession) {
	s.mu.Lock()
	wasPlaying := s.playing
	s.playing = false
	s.updatedAt = time.Now().UTC()
	s.mu.Unlock()

	s.task.Stop()
	if wasPlaying {
		slog.Info("Playback paused", "session_id", s.id.String())
	}
}

// DeleteSession останавливает воспроизведение и отключает всех подписчиков
func (sm *SessionManager) DeleteSession(id uuid.UUID) error {
	sm.sessionsLock.Lock()
	s, ok := sm.sessions[id]
	if ok {
		delete(sm.sessions, id)
	}
	sm.sessionsLock.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	s.ctl.Lock()
	sm.pauseLocked(s)
	s.ctl.Unlock()

	sm.hub.CloseSession(id)
	slog.Info("Viewer session deleted", "session_id", id.String())
	return nil
}

// Subscribe подписывает клиента на кадры существующей сессии.
// Проверка и подписка идут под sessionsLock: DeleteSession либо уже убрал
// сессию и подписки не будет, либо закроет созданный канал через CloseSession.
func (sm *SessionManager) Subscribe(id uuid.UUID) (uuid.UUID, <-chan models.Frame, error) {
	sm.sessionsLock.RLock()
	defer sm.sessionsLock.RUnlock()
	if _, ok := sm.sessions[id]; !ok {
		return uuid.Nil, nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	clientID, frames := sm.hub.Subscribe(id)
	return clientID, frames, nil
}

// Rebind переводит сессии на построители кадров текущего снимка данных
// после перезагрузки. Окно прижимается к новой длительности, воспроизведение
// продолжается. Сессии, чей случай исчез из данных, удаляются.
func (sm *SessionManager) Rebind() {
	sm.sessionsLock.RLock()
	list := make([]*viewerSession, 0, len(sm.sessions))
	for _, s := range sm.sessions {
		list = append(list, s)
	}
	sm.sessionsLock.RUnlock()

	var rebound, dropped int
	for _, s := range list {
		s.ctl.Lock()
		s.mu.Lock()
		caseID := s.caseID
		s.mu.Unlock()

		builder, err := sm.explorer.FrameBuilder(caseID)
		if err != nil {
			s.ctl.Unlock()
			if !errors.Is(err, services.ErrCaseNotFound) {
				slog.Warn("Failed to rebind viewer session", "session_id", s.id.String(), "error", err)
				continue
			}
			if err := sm.DeleteSession(s.id); err == nil {
				slog.Info("Viewer session case removed by reload", "session_id", s.id.String(), "case_id", caseID)
				dropped++
			}
			continue
		}

		s.mu.Lock()
		s.builder = builder
		s.start = builder.Window(s.start).Start
		s.updatedAt = time.Now().UTC()
		frame := builder.Frame(s.start)
		s.mu.Unlock()
		s.ctl.Unlock()

		sm.hub.Publish(s.id, frame)
		rebound++
	}

	slog.Info("Viewer sessions rebound to reloaded dataset", "rebound", rebound, "dropped", dropped)
}

// GetActiveSessionCount возвращает количество сессий
func (sm *SessionManager) GetActiveSessionCount() int {
	sm.sessionsLock.RLock()
	defer sm.sessionsLock.RUnlock()
	return len(sm.sessions)
}

// CloseAll останавливает все сессии при завершении сервиса
func (sm *SessionManager) CloseAll() {
	sm.sessionsLock.RLock()
	ids := make([]uuid.UUID, 0, len(sm.sessions))
	for id := range sm.sessions {
		ids = append(ids, id)
	}
	sm.sessionsLock.RUnlock()

	for _, id := range ids {
		if err := sm.DeleteSession(id); err != nil && !errors.Is(err, ErrSessionNotFound) {
			slog.Warn("Failed to close viewer session", "session_id", id.String(), "error", err)
		}
	}
}

func (sm *SessionManager) stateLocked(s *viewerSession) ViewerState {
	return ViewerState{
		ID:        s.id,
		CaseID:    s.caseID,
		Window:    s.builder.Window(s.start),
		Duration:  s.builder.Duration(),
		Playing:   s.playing,
		Step:      sm.settings.Step,
		CreatedAt: s.createdAt,
		UpdatedAt: s.updatedAt,
	}
}
