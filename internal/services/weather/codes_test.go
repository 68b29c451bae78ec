package weather_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Nazarious-ucu/weather-cli/internal/models"
	"github.com/Nazarious-ucu/weather-cli/internal/services/weather"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		code uint
		want models.Condition
	}{
		{0, models.ConditionClear},
		{1, models.ConditionCloudy},
		{2, models.ConditionCloudy},
		{3, models.ConditionCloudy},
		{45, models.ConditionUnknown},
		{51, models.ConditionRain},
		{61, models.ConditionRain},
		{67, models.ConditionRain},
		{68, models.ConditionUnknown},
		{71, models.ConditionSnow},
		{73, models.ConditionSnow},
		{77, models.ConditionSnow},
		{79, models.ConditionUnknown},
		{80, models.ConditionRain},
		{95, models.ConditionRain},
		{99, models.ConditionRain},
		{100, models.ConditionUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, weather.Translate(tt.code), "code %d", tt.code)
	}
}

func TestTranslate_AlwaysLabelled(t *testing.T) {
	known := map[models.Condition]bool{
		models.ConditionClear:   true,
		models.ConditionCloudy:  true,
		models.ConditionRain:    true,
		models.ConditionSnow:    true,
		models.ConditionUnknown: true,
	}

	for code := uint(0); code <= 255; code++ {
		got := weather.Translate(code)
		assert.True(t, known[got], "code %d mapped to %q", code, got)
	}
}
