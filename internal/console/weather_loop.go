package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/namefreezers/weather-console/internal/weather"
	"github.com/namefreezers/weather-console/internal/weather/types"

	"go.uber.org/zap"
)

// WeatherLoop is the interactive city prompt.
type WeatherLoop struct {
	fetcher weather.Fetcher
	in      *lineReader
	out     io.Writer
	logger  *zap.Logger
}

func NewWeatherLoop(fetcher weather.Fetcher, in io.Reader, out io.Writer, logger *zap.Logger) *WeatherLoop {
	return &WeatherLoop{
		fetcher: fetcher,
		in:      newLineReader(in),
		out:     out,
		logger:  logger,
	}
}

// Run prompts until an exit keyword, end of input, or ctx cancellation.
// A lookup already in flight is allowed to finish; cancellation is
// observed at the next prompt.
func (l *WeatherLoop) Run(ctx context.Context) {
	fmt.Fprintln(l.out, weatherWelcome)
	fmt.Fprintln(l.out, strings.Repeat("=", 40))

	for {
		fmt.Fprint(l.out, weatherPrompt)
		line, err := l.in.ReadLine(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				fmt.Fprintln(l.out, interruptFarewell)
				return
			}
			l.logger.Warn("reading city failed", zap.Error(err))
			fmt.Fprintf(l.out, "❌ 예상치 못한 오류가 발생했습니다: %v\n", err)
			continue
		}

		city := strings.TrimSpace(line)
		if isExitKeyword(city) {
			fmt.Fprintln(l.out, weatherFarewell)
			return
		}
		if city == "" {
			fmt.Fprintln(l.out, msgEmptyCity)
			continue
		}

		fmt.Fprintf(l.out, "🔍 %s의 날씨 정보를 조회 중...\n", city)

		rec, err := l.fetcher.FetchCurrent(context.WithoutCancel(ctx), city)
		if err != nil {
			l.logger.Info("weather lookup failed",
				zap.String("city", city),
				zap.Stringer("outcome", types.KindOf(err)),
				zap.Error(err),
			)
			fmt.Fprintln(l.out, DescribeFailure(err, city))
			fmt.Fprintln(l.out, msgFetchFailed)
			continue
		}

		fmt.Fprintln(l.out, weather.Format(rec))
	}
}
