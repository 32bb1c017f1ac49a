package weather

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/namefreezers/weather-console/internal/weather/types"
)

const seoulJSON = `{
	"name": "Seoul",
	"sys": {"country": "KR"},
	"main": {"temp": 15.2, "feels_like": 14.8, "humidity": 65, "pressure": 1015},
	"weather": [{"description": "맑음"}],
	"wind": {"speed": 2.1}
}`

func mustRecord(t *testing.T, raw string) types.Record {
	t.Helper()
	var rec types.Record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		t.Fatalf("unmarshal record: %v", err)
	}
	return rec
}

func TestFormat_Success(t *testing.T) {
	out := Format(mustRecord(t, seoulJSON))

	for _, want := range []string{
		"🌍 도시: Seoul, KR",
		"15.2°C",
		"체감 온도: 14.8°C",
		"☁️  날씨: 맑음",
		"💧 습도: 65%",
		"🌪️  기압: 1015 hPa",
		"💨 풍속: 2.1 m/s",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q in:\n%s", want, out)
		}
	}
}

func TestFormat_MissingMain(t *testing.T) {
	out := Format(mustRecord(t, `{"name":"Seoul","sys":{"country":"KR"},"weather":[{"description":"맑음"}],"wind":{"speed":2.1}}`))

	want := "❌ 날씨 정보를 파싱하는 중 오류 발생: 'main'"
	if out != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestFormat_OnlyName(t *testing.T) {
	out := Format(mustRecord(t, `{"name":"Seoul"}`))
	if !strings.Contains(out, "오류 발생") {
		t.Errorf("Format() = %q, want missing-field error", out)
	}
}
