package models

// ErrorResponse стандартная структура ошибки
type ErrorResponse struct {
	Error   string `json:"error" example:"case not found"`                       // Сообщение об ошибке
	Details string `json:"details,omitempty" example:"case 4481 is not loaded"` // Дополнительные детали
}

// LiveValue последнее значение ряда не позже конца окна
type LiveValue struct {
	Param string   `json:"param"`
	Value *float64 `json:"value"` // null, если точек еще нет
}

// Frame один кадр просмотрщика: срез всех рядов случая по окну
type Frame struct {
	CaseID            string                 `json:"case_id"`
	Window            Window                 `json:"window"`
	Duration          float64                `json:"duration"`
	TimeLabel         string                 `json:"time_label" example:"00:10:00"`
	Vitals            map[string][]TimePoint `json:"vitals"`
	Interventions     map[string][]TimePoint `json:"interventions"`
	LiveVitals        []LiveValue            `json:"live_vitals"`
	LiveInterventions []LiveValue            `json:"live_interventions"`
	VitalRange        [2]float64             `json:"vital_range"`
}

// ScatterResponse точки пары параметров одного случая
type ScatterResponse struct {
	CaseID  string        `json:"case_id"`
	ParamX  string        `json:"param_x"`
	ParamY  string        `json:"param_y"`
	Points  []PairedPoint `json:"points"`
	Pearson *float64      `json:"pearson"` // null при недостатке данных
}

// CohortRequest фильтры когортной диаграммы
type CohortRequest struct {
	X             string `json:"x" binding:"required" example:"age"`
	Y             string `json:"y" binding:"required" example:"surgery_time"`
	EmergencyOnly bool   `json:"emergency_only"`
	ShowMale      *bool  `json:"show_male"`
	ShowFemale    *bool  `json:"show_female"`
	OpType        string `json:"optype" example:"All"`
}

// CohortPoint одна точка когортной диаграммы
type CohortPoint struct {
	CaseID string  `json:"caseid"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// CohortResponse результат фильтрации когорты
type CohortResponse struct {
	X       string        `json:"x"`
	Y       string        `json:"y"`
	Count   int           `json:"count"`
	MeanY   *float64      `json:"mean_y"`
	Summary string        `json:"summary"`
	Points  []CohortPoint `json:"points"`
}

// SeriesStats статистика ряда внутри окна
type SeriesStats struct {
	Param string  `json:"param"`
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
	Std   float64 `json:"std"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	IQR   float64 `json:"iqr"`
	RMSSD float64 `json:"rmssd"`
}

// WindowStatsResponse статистика всех рядов случая в окне
type WindowStatsResponse struct {
	CaseID        string        `json:"case_id"`
	Window        Window        `json:"window"`
	Vitals        []SeriesStats `json:"vitals"`
	Interventions []SeriesStats `json:"interventions"`
}

// XCorrResponse кросс-корреляция пары параметров с поиском лага
type XCorrResponse struct {
	CaseID string  `json:"case_id"`
	ParamX string  `json:"param_x"`
	ParamY string  `json:"param_y"`
	Pairs  int     `json:"pairs"`
	MaxAbs float64 `json:"maxabs"`
	Lag    int     `json:"lag"` // в отсчетах выровненного ряда
	Valid  bool    `json:"valid"`
}
