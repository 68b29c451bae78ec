package weather

import "github.com/Nazarious-ucu/weather-cli/internal/models"

// Translate maps a WMO weather code to a coarse condition label.
// Codes outside the listed ranges (4-50, 68-70, 78-79, 100+) are Unknown.
func Translate(code uint) models.Condition {
	switch {
	case code == 0:
		return models.ConditionClear
	case code <= 3:
		return models.ConditionCloudy
	case (code >= 51 && code <= 67) || (code >= 80 && code <= 99):
		return models.ConditionRain
	case code >= 71 && code <= 77:
		return models.ConditionSnow
	default:
		return models.ConditionUnknown
	}
}
