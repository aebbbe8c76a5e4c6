package features

import (
	"fmt"
	"strings"

	"github.com/rhekacitra/InsideOR-Project/internal/models"
	"github.com/rhekacitra/InsideOR-Project/pkg/utils"
)

// MaxICUDays выбросы по дням в реанимации скрываются с диаграммы
const MaxICUDays = 50

// FilterCohort отбирает пациентов для когортной диаграммы и считает сводку по Y
func FilterCohort(records []models.PatientRecord, req models.CohortRequest) models.CohortResponse {
	showMale := req.ShowMale == nil || *req.ShowMale
	showFemale := req.ShowFemale == nil || *req.ShowFemale

	resp := models.CohortResponse{
		X:      req.X,
		Y:      req.Y,
		Points: make([]models.CohortPoint, 0),
	}

	ys := make([]float64, 0, len(records))
	for _, rec := range records {
		if rec.RawValue(req.Y) == "" || rec.RawValue(req.X) == "" {
			continue
		}
		y := rec.Number(req.Y)
		if !utils.IsNumber(y) {
			continue
		}
		if req.Y == "icu_days" && y > MaxICUDays {
			continue
		}
		if req.EmergencyOnly && rec.Number("emop") != 1 {
			continue
		}
		if (rec.Sex == "M" && !showMale) || (rec.Sex == "F" && !showFemale) {
			continue
		}
		if req.OpType != "" && req.OpType != "All" && rec.OpType != req.OpType {
			continue
		}

		ys = append(ys, y)
		if x := rec.Number(req.X); utils.IsNumber(x) {
			resp.Points = append(resp.Points, models.CohortPoint{CaseID: rec.CaseID, X: x, Y: y})
		}
	}

	resp.Count = len(ys)
	if len(ys) == 0 {
		resp.Summary = "No matching data."
		return resp
	}

	mean := utils.Mean(ys)
	resp.MeanY = &mean
	resp.Summary = fmt.Sprintf("%d patients | Avg %s: %.1f",
		len(ys), strings.Replace(req.Y, "_", " ", 1), mean)
	return resp
}
