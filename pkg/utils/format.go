package utils

import (
	"fmt"
	"math"
)

// FormatHMS форматирует секунды как ЧЧ:ММ:СС
func FormatHMS(sec float64) string {
	if !IsNumber(sec) || sec < 0 {
		sec = 0
	}
	total := int(math.Floor(sec))
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

// FormatMMSS форматирует секунды как ММ:СС
func FormatMMSS(sec float64) string {
	if !IsNumber(sec) || sec < 0 {
		sec = 0
	}
	total := int(math.Floor(sec))
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
