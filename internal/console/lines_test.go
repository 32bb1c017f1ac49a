package console

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestLineReader_Lines(t *testing.T) {
	long := strings.Repeat("서울", 100_000)
	lr := newLineReader(strings.NewReader("a\r\n\n" + long + "\nlast"))

	for _, want := range []string{"a", "", long, "last"} {
		got, err := lr.ReadLine(context.Background())
		if err != nil {
			t.Fatalf("ReadLine() unexpected error: %v", err)
		}
		if got != want {
			t.Fatalf("ReadLine() = %.20q (len %d), want %.20q (len %d)", got, len(got), want, len(want))
		}
	}
	if _, err := lr.ReadLine(context.Background()); !errors.Is(err, io.EOF) {
		t.Errorf("ReadLine() at end error = %v, want io.EOF", err)
	}
}

func TestWeatherLoop_LongCityLine(t *testing.T) {
	city := strings.Repeat("x", 128<<10)
	f := &fakeFetcher{err: errors.New("boom")}
	runWeather(t, context.Background(), f, strings.NewReader(city+"\nquit\n"))

	if len(f.cities) != 1 || f.cities[0] != city {
		t.Errorf("fetched %d cities, want the single long city", len(f.cities))
	}
}
