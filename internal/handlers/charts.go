package handlers

import (
	"errors"
	"fmt"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/rhekacitra/InsideOR-Project/internal/models"
	"github.com/rhekacitra/InsideOR-Project/pkg/utils"
)

// ErrNothingToPlot в окне нет ни одного ряда, который можно нарисовать
var ErrNothingToPlot = errors.New("nothing to plot")

// ChartRenderer рисует PNG версии графиков дашборда
type ChartRenderer struct {
	Width  int
	Height int
}

// NewChartRenderer создает рендерер с размерами графика просмотрщика
func NewChartRenderer() *ChartRenderer {
	return &ChartRenderer{Width: 1150, Height: 420}
}

// seriesPalette цвета рядов в порядке ключей
var seriesPalette = []string{
	"1f77b4", "ff7f0e", "2ca02c", "d62728", "9467bd",
	"8c564b", "e377c2", "7f7f7f", "bcbd22", "17becf",
}

func seriesColor(i int) drawing.Color {
	return drawing.ColorFromHex(seriesPalette[i%len(seriesPalette)])
}

// lineStyle линия без точек
func lineStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 2,
		StrokeColor: col,
	}
}

// pointStyle только точки без соединительной линии
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeColor: drawing.ColorTransparent,
		DotWidth:    3,
		DotColor:    col,
	}
}

// padSingle go-chart не рисует ряд из одной точки, дублируем ее со сдвигом
func padSingle(xs, ys []float64) ([]float64, []float64) {
	if len(xs) == 1 {
		return []float64{xs[0], xs[0] + 1}, []float64{ys[0], ys[0]}
	}
	return xs, ys
}

// flatRange go-chart отказывается рисовать ось с нулевым размахом
func flatRange(values []float64) *chart.ContinuousRange {
	lo, hi := utils.Min(values), utils.Max(values)
	if lo < hi {
		return nil
	}
	return &chart.ContinuousRange{Min: lo - 1, Max: hi + 1}
}

// RenderWindow рисует витальные показатели окна кадра
func (cr *ChartRenderer) RenderWindow(w io.Writer, frame models.Frame) error {
	keys := make([]string, 0, len(frame.Vitals))
	for _, lv := range frame.LiveVitals {
		keys = append(keys, lv.Param)
	}

	series := make([]chart.Series, 0, len(keys))
	allYs := make([]float64, 0)
	for i, param := range keys {
		points := frame.Vitals[param]
		if len(points) == 0 {
			continue
		}
		xs := make([]float64, len(points))
		ys := make([]float64, len(points))
		for j, p := range points {
			xs[j] = p.Time
			ys[j] = p.Value
		}
		xs, ys = padSingle(xs, ys)
		allYs = append(allYs, ys...)
		series = append(series, chart.ContinuousSeries{
			Name:    param,
			XValues: xs,
			YValues: ys,
			Style:   lineStyle(seriesColor(i)),
		})
	}
	if len(series) == 0 {
		return ErrNothingToPlot
	}

	ch := chart.Chart{
		Title:      fmt.Sprintf("Case %s, %s", frame.CaseID, frame.TimeLabel),
		Width:      cr.Width,
		Height:     cr.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20}},
		XAxis: chart.XAxis{
			Name:  "Time",
			Range: &chart.ContinuousRange{Min: frame.Window.Start, Max: frame.Window.End},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return utils.FormatHMS(f)
				}
				return ""
			},
		},
		YAxis:  chart.YAxis{Name: "Value"},
		Series: series,
	}
	if lo, hi := frame.VitalRange[0], frame.VitalRange[1]; lo < hi {
		ch.YAxis.Range = &chart.ContinuousRange{Min: lo, Max: hi}
	} else if r := flatRange(allYs); r != nil {
		ch.YAxis.Range = r
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("ошибка рендеринга графика окна: %w", err)
	}
	return nil
}

// RenderScatter рисует диаграмму рассеяния пары параметров
func (cr *ChartRenderer) RenderScatter(w io.Writer, resp models.ScatterResponse) error {
	if len(resp.Points) == 0 {
		return ErrNothingToPlot
	}

	xs := make([]float64, len(resp.Points))
	ys := make([]float64, len(resp.Points))
	for i, p := range resp.Points {
		xs[i] = p.ValueA
		ys[i] = p.ValueB
	}
	xs, ys = padSingle(xs, ys)

	title := fmt.Sprintf("%s vs %s", resp.ParamX, resp.ParamY)
	if resp.Pearson != nil {
		title = fmt.Sprintf("%s (r = %.2f)", title, *resp.Pearson)
	}

	ch := chart.Chart{
		Title:      title,
		Width:      cr.Height + 180,
		Height:     cr.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20}},
		XAxis:      chart.XAxis{Name: resp.ParamX},
		YAxis:      chart.YAxis{Name: resp.ParamY},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    resp.CaseID,
				XValues: xs,
				YValues: ys,
				Style:   pointStyle(seriesColor(0)),
			},
		},
	}

	if r := flatRange(xs); r != nil {
		ch.XAxis.Range = r
	}
	if r := flatRange(ys); r != nil {
		ch.YAxis.Range = r
	}

	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("ошибка рендеринга диаграммы рассеяния: %w", err)
	}
	return nil
}
