package handlers

import (
	"bytes"
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/rhekacitra/InsideOR-Project/docs"
	"github.com/rhekacitra/InsideOR-Project/internal/models"
	"github.com/rhekacitra/InsideOR-Project/internal/services"
)

// @title InsideOR Case Explorer API
// @version 1.0
// @description API интраоперационного просмотрщика: окна рядов, корреляции, когорта
// @BasePath /api/v1

// @tag.name cases
// @tag.description Данные одного случая

// @tag.name analytics
// @tag.description Матрица корреляций и когорта

// @tag.name sessions
// @tag.description Сессии просмотра и воспроизведение

// @tag.name monitoring
// @tag.description Мониторинг состояния сервиса

// RESTAPIServer обрабатывает REST API запросы
type RESTAPIServer struct {
	explorer *services.ExplorerService
	sessions *SessionManager
	socket   *PlaybackSocket
	charts   *ChartRenderer
	health   func() error
}

// CasesResponse список случаев
type CasesResponse struct {
	Cases []string `json:"cases"`
	Count int      `json:"count" example:"12"`
}

// ParamsResponse ключи параметров
type ParamsResponse struct {
	Params []string `json:"params"`
	Count  int      `json:"count" example:"9"`
}

// CreateSessionRequest запрос создания сессии просмотра
type CreateSessionRequest struct {
	CaseID string `json:"case_id" binding:"required" example:"4481"`
}

// SelectCaseRequest смена случая в сессии
type SelectCaseRequest struct {
	CaseID string `json:"case_id" binding:"required" example:"4481"`
}

// SeekRequest перемещение ползунка
type SeekRequest struct {
	Start *float64 `json:"start" binding:"required" example:"1200"`
}

// HealthResponse состояние сервиса
type HealthResponse struct {
	Status         string     `json:"status" example:"healthy"`
	Service        string     `json:"service" example:"InsideOR Explorer"`
	Timestamp      time.Time  `json:"timestamp"`
	DatasetLoaded  bool       `json:"dataset_loaded"`
	LoadedAt       *time.Time `json:"loaded_at,omitempty"`
	ActiveSessions int        `json:"active_sessions" example:"1"`
	Database       string     `json:"database,omitempty" example:"ok"`
}

// SuccessResponse стандартный ответ об успехе
type SuccessResponse struct {
	Message string      `json:"message" example:"Операция выполнена успешно"`
	Data    interface{} `json:"data,omitempty"`
}

// NewRESTAPIServer создает новый REST API сервер.
// health может быть nil, если хранилище не используется.
func NewRESTAPIServer(
	explorer *services.ExplorerService,
	sessions *SessionManager,
	charts *ChartRenderer,
	health func() error,
) *RESTAPIServer {
	return &RESTAPIServer{
		explorer: explorer,
		sessions: sessions,
		socket:   NewPlaybackSocket(sessions),
		charts:   charts,
		health:   health,
	}
}

// SetupRoutes настраивает маршруты REST API
func (api *RESTAPIServer) SetupRoutes(ginMode string) *gin.Engine {
	if ginMode != "" {
		gin.SetMode(ginMode)
	}
	r := gin.New()

	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}))

	v1 := r.Group("/api/v1")

	cases := v1.Group("/cases")
	{
		cases.GET("", api.ListCases)
		cases.GET("/:case_id/card", api.GetCard)
		cases.GET("/:case_id/discharge", api.GetDischarge)
		cases.GET("/:case_id/frame", api.GetFrame)
		cases.GET("/:case_id/scatter", api.GetScatter)
		cases.GET("/:case_id/stats", api.GetStats)
		cases.GET("/:case_id/xcorr", api.GetXCorr)
		cases.GET("/:case_id/charts/window.png", api.GetWindowChart)
		cases.GET("/:case_id/charts/scatter.png", api.GetScatterChart)
	}

	v1.GET("/params", api.ListParams)
	v1.GET("/correlation", api.GetCorrelation)
	v1.POST("/cohort", api.PostCohort)

	sessions := v1.Group("/sessions")
	{
		sessions.POST("", api.CreateSession)
		sessions.GET("/:session_id", api.GetSession)
		sessions.POST("/:session_id/case", api.SelectCase)
		sessions.POST("/:session_id/seek", api.Seek)
		sessions.POST("/:session_id/play", api.Play)
		sessions.POST("/:session_id/pause", api.Pause)
		sessions.DELETE("/:session_id", api.DeleteSession)
		sessions.GET("/:session_id/ws", api.socket.Handle)
	}

	monitoring := v1.Group("/monitoring")
	{
		monitoring.GET("/health", api.HealthCheck)
	}

	// Swagger документация
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))

	return r
}

// writeError переводит ошибки сервисов в коды HTTP
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrCaseNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Случай не найден", Details: err.Error()})
	case errors.Is(err, ErrSessionNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Сессия не найдена", Details: err.Error()})
	case errors.Is(err, services.ErrUnknownParam):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Неизвестный параметр", Details: err.Error()})
	case errors.Is(err, services.ErrNotLoaded):
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "Данные еще не загружены"})
	case errors.Is(err, ErrNothingToPlot):
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{Error: "Нет данных для графика"})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Внутренняя ошибка сервера", Details: err.Error()})
	}
}

// queryFloat читает числовой query параметр, пустой означает значение по умолчанию
func queryFloat(c *gin.Context, name string, def float64) (float64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Неверное значение параметра " + name, Details: raw})
		return 0, false
	}
	return v, true
}

func queryPair(c *gin.Context) (string, string, bool) {
	x, y := c.Query("x"), c.Query("y")
	if x == "" || y == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Нужны параметры x и y"})
		return "", "", false
	}
	return x, y, true
}

func sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("session_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Неверный ID сессии"})
		return uuid.Nil, false
	}
	return id, true
}

// ListCases список случаев
// @Summary Список случаев
// @Tags cases
// @Produce json
// @Success 200 {object} CasesResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /cases [get]
func (api *RESTAPIServer) ListCases(c *gin.Context) {
	ids, err := api.explorer.CaseIDs()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, CasesResponse{Cases: ids, Count: len(ids)})
}

// GetCard карточка пациента
// @Summary Карточка пациента
// @Tags cases
// @Produce json
// @Param case_id path string true "ID случая"
// @Success 200 {object} models.PatientCard
// @Failure 404 {object} models.ErrorResponse
// @Router /cases/{case_id}/card [get]
func (api *RESTAPIServer) GetCard(c *gin.Context) {
	card, err := api.explorer.Card(c.Param("case_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

// GetDischarge выписной эпикриз
// @Summary Выписной эпикриз случая
// @Tags cases
// @Produce json
// @Param case_id path string true "ID случая"
// @Success 200 {object} models.DischargeSummary
// @Failure 404 {object} models.ErrorResponse
// @Router /cases/{case_id}/discharge [get]
func (api *RESTAPIServer) GetDischarge(c *gin.Context) {
	summary, err := api.explorer.Discharge(c.Param("case_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetFrame кадр окна
// @Summary Кадр просмотрщика для начала окна
// @Tags cases
// @Produce json
// @Param case_id path string true "ID случая"
// @Param start query number false "Начало окна, прижимается к длительности"
// @Success 200 {object} models.Frame
// @Failure 404 {object} models.ErrorResponse
// @Router /cases/{case_id}/frame [get]
func (api *RESTAPIServer) GetFrame(c *gin.Context) {
	start, ok := queryFloat(c, "start", 0)
	if !ok {
		return
	}
	frame, err := api.explorer.Frame(c.Param("case_id"), start)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, frame)
}

// GetScatter пары значений
// @Summary Точки пары параметров случая и коэффициент Пирсона
// @Tags cases
// @Produce json
// @Param case_id path string true "ID случая"
// @Param x query string true "Параметр X"
// @Param y query string true "Параметр Y"
// @Success 200 {object} models.ScatterResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /cases/{case_id}/scatter [get]
func (api *RESTAPIServer) GetScatter(c *gin.Context) {
	x, y, ok := queryPair(c)
	if !ok {
		return
	}
	resp, err := api.explorer.Scatter(c.Param("case_id"), x, y)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetStats статистика окна
// @Summary Статистика рядов случая в окне
// @Tags cases
// @Produce json
// @Param case_id path string true "ID случая"
// @Param start query number false "Начало окна"
// @Success 200 {object} models.WindowStatsResponse
// @Router /cases/{case_id}/stats [get]
func (api *RESTAPIServer) GetStats(c *gin.Context) {
	start, ok := queryFloat(c, "start", 0)
	if !ok {
		return
	}
	stats, err := api.explorer.WindowStats(c.Param("case_id"), start)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetXCorr кросс-корреляция
// @Summary Кросс-корреляция пары параметров с поиском лага
// @Tags cases
// @Produce json
// @Param case_id path string true "ID случая"
// @Param x query string true "Параметр X"
// @Param y query string true "Параметр Y"
// @Param max_lag query int false "Максимальный лаг в отсчетах"
// @Success 200 {object} models.XCorrResponse
// @Router /cases/{case_id}/xcorr [get]
func (api *RESTAPIServer) GetXCorr(c *gin.Context) {
	x, y, ok := queryPair(c)
	if !ok {
		return
	}
	maxLag := services.DefaultMaxLag
	if raw := c.Query("max_lag"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Неверное значение параметра max_lag", Details: raw})
			return
		}
		maxLag = v
	}
	resp, err := api.explorer.XCorr(c.Param("case_id"), x, y, maxLag)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetWindowChart PNG график окна
// @Summary PNG график витальных показателей окна
// @Tags cases
// @Produce png
// @Param case_id path string true "ID случая"
// @Param start query number false "Начало окна"
// @Router /cases/{case_id}/charts/window.png [get]
func (api *RESTAPIServer) GetWindowChart(c *gin.Context) {
	start, ok := queryFloat(c, "start", 0)
	if !ok {
		return
	}
	frame, err := api.explorer.Frame(c.Param("case_id"), start)
	if err != nil {
		writeError(c, err)
		return
	}
	var buf bytes.Buffer
	if err := api.charts.RenderWindow(&buf, frame); err != nil {
		writeError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

// GetScatterChart PNG диаграмма рассеяния
// @Summary PNG диаграмма рассеяния пары параметров
// @Tags cases
// @Produce png
// @Param case_id path string true "ID случая"
// @Param x query string true "Параметр X"
// @Param y query string true "Параметр Y"
// @Router /cases/{case_id}/charts/scatter.png [get]
func (api *RESTAPIServer) GetScatterChart(c *gin.Context) {
	x, y, ok := queryPair(c)
	if !ok {
		return
	}
	resp, err := api.explorer.Scatter(c.Param("case_id"), x, y)
	if err != nil {
		writeError(c, err)
		return
	}
	var buf bytes.Buffer
	if err := api.charts.RenderScatter(&buf, resp); err != nil {
		writeError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

// ListParams ключи параметров
// @Summary Отсортированные ключи параметров всех случаев
// @Tags analytics
// @Produce json
// @Success 200 {object} ParamsResponse
// @Router /params [get]
func (api *RESTAPIServer) ListParams(c *gin.Context) {
	keys, err := api.explorer.ParamKeys()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ParamsResponse{Params: keys, Count: len(keys)})
}

// GetCorrelation матрица корреляций
// @Summary Глобальная матрица корреляций
// @Tags analytics
// @Produce json
// @Success 200 {object} models.CorrelationMatrix
// @Router /correlation [get]
func (api *RESTAPIServer) GetCorrelation(c *gin.Context) {
	matrix, err := api.explorer.Matrix()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, matrix)
}

// PostCohort когортная диаграмма
// @Summary Точки когортной диаграммы с фильтрами
// @Tags analytics
// @Accept json
// @Produce json
// @Param request body models.CohortRequest true "Фильтры"
// @Success 200 {object} models.CohortResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /cohort [post]
func (api *RESTAPIServer) PostCohort(c *gin.Context) {
	var req models.CohortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Неверный формат данных", Details: err.Error()})
		return
	}
	resp, err := api.explorer.Cohort(req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateSession новая сессия просмотра
// @Summary Создание сессии просмотра
// @Tags sessions
// @Accept json
// @Produce json
// @Param request body CreateSessionRequest true "Случай"
// @Success 201 {object} SuccessResponse{data=ViewerState}
// @Failure 404 {object} models.ErrorResponse
// @Router /sessions [post]
func (api *RESTAPIServer) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Неверный формат данных", Details: err.Error()})
		return
	}
	state, err := api.sessions.CreateSession(req.CaseID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, SuccessResponse{Message: "Сессия создана", Data: state})
}

// GetSession состояние сессии
// @Summary Состояние сессии просмотра
// @Tags sessions
// @Produce json
// @Param session_id path string true "UUID сессии" format(uuid)
// @Success 200 {object} ViewerState
// @Failure 404 {object} models.ErrorResponse
// @Router /sessions/{session_id} [get]
func (api *RESTAPIServer) GetSession(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	state, err := api.sessions.GetSession(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// SelectCase смена случая
// @Summary Выбор другого случая в сессии
// @Tags sessions
// @Accept json
// @Produce json
// @Param session_id path string true "UUID сессии" format(uuid)
// @Param request body SelectCaseRequest true "Случай"
// @Success 200 {object} models.Frame
// @Router /sessions/{session_id}/case [post]
func (api *RESTAPIServer) SelectCase(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var req SelectCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Неверный формат данных", Details: err.Error()})
		return
	}
	frame, err := api.sessions.SelectCase(id, req.CaseID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, frame)
}

// Seek перемещение окна
// @Summary Перемещение ползунка
// @Tags sessions
// @Accept json
// @Produce json
// @Param session_id path string true "UUID сессии" format(uuid)
// @Param request body SeekRequest true "Начало окна"
// @Success 200 {object} models.Frame
// @Router /sessions/{session_id}/seek [post]
func (api *RESTAPIServer) Seek(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var req SeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Неверный формат данных", Details: err.Error()})
		return
	}
	frame, err := api.sessions.Seek(id, *req.Start)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, frame)
}

// Play запуск воспроизведения
// @Summary Запуск воспроизведения
// @Tags sessions
// @Produce json
// @Param session_id path string true "UUID сессии" format(uuid)
// @Success 200 {object} ViewerState
// @Router /sessions/{session_id}/play [post]
func (api *RESTAPIServer) Play(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	state, err := api.sessions.Play(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// Pause остановка воспроизведения
// @Summary Пауза воспроизведения
// @Tags sessions
// @Produce json
// @Param session_id path string true "UUID сессии" format(uuid)
// @Success 200 {object} ViewerState
// @Router /sessions/{session_id}/pause [post]
func (api *RESTAPIServer) Pause(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	state, err := api.sessions.Pause(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// DeleteSession удаление сессии
// @Summary Удаление сессии просмотра
// @Tags sessions
// @Produce json
// @Param session_id path string true "UUID сессии" format(uuid)
// @Success 200 {object} SuccessResponse
// @Router /sessions/{session_id} [delete]
func (api *RESTAPIServer) DeleteSession(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	if err := api.sessions.DeleteSession(id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Сессия удалена"})
}

// HealthCheck проверка здоровья сервиса
// @Summary Проверка состояния сервиса
// @Tags monitoring
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /monitoring/health [get]
func (api *RESTAPIServer) HealthCheck(c *gin.Context) {
	resp := HealthResponse{
		Status:         "healthy",
		Service:        "InsideOR Explorer",
		Timestamp:      time.Now().UTC(),
		DatasetLoaded:  api.explorer.Loaded(),
		ActiveSessions: api.sessions.GetActiveSessionCount(),
	}
	if loadedAt, err := api.explorer.LoadedAt(); err == nil {
		resp.LoadedAt = &loadedAt
	}

	code := http.StatusOK
	if api.health != nil {
		resp.Database = "ok"
		if err := api.health(); err != nil {
			resp.Database = err.Error()
			resp.Status = "degraded"
			code = http.StatusServiceUnavailable
		}
	}
	if !resp.DatasetLoaded {
		resp.Status = "loading"
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, resp)
}
