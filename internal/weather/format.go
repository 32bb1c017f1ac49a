package weather

import (
	"errors"
	"fmt"

	"github.com/namefreezers/weather-console/internal/weather/types"
)

// Format renders a record as the multi-line console report. A record that
// lacks a display field yields a one-line error message naming the field.
func Format(rec types.Record) string {
	s, err := rec.Summarize()
	if err != nil {
		var mf *types.MissingFieldError
		if errors.As(err, &mf) {
			return fmt.Sprintf("❌ 날씨 정보를 파싱하는 중 오류 발생: '%s'", mf.Field)
		}
		return fmt.Sprintf("❌ 날씨 정보를 파싱하는 중 오류 발생: %v", err)
	}

	return fmt.Sprintf(`
🌍 도시: %s, %s
🌡️  온도: %s°C (체감 온도: %s°C)
☁️  날씨: %s
💧 습도: %s%%
🌪️  기압: %s hPa
💨 풍속: %s m/s
`,
		s.City, s.Country,
		s.Temp, s.FeelsLike,
		s.Description,
		s.Humidity,
		s.Pressure,
		s.WindSpeed,
	)
}
