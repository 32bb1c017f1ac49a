package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/namefreezers/weather-console/internal/config"
	"github.com/namefreezers/weather-console/internal/console"
	"github.com/namefreezers/weather-console/internal/weather/openweathermap"
)

const setupGuide = `❌ OpenWeatherMap API 키를 찾을 수 없습니다.
다음 중 하나의 방법으로 API 키를 설정해주세요:
1. 환경변수: export OPENWEATHER_API_KEY='your_api_key'
2. .env 파일에 OPENWEATHER_API_KEY=your_api_key 추가

🔗 API 키는 https://openweathermap.org/api 에서 무료로 발급받을 수 있습니다.`

func main() {
	// 1) Logger on stderr, quiet by default so it never interleaves with prompts
	logger, err := config.NewLogger(os.Getenv("LOG_LEVEL"), "warn")
	if err != nil {
		log.Fatalf("cannot initialize logger: %v", err)
	}

	// 2) Ctrl+C ends the prompt loop with a farewell instead of killing the process
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, config.DefaultSources(), os.Stdin, os.Stdout, logger)
	stop()
	logger.Sync()
	os.Exit(code)
}

// run resolves the API key from sources (environment, then ./.env) and
// drives the prompt loop. It returns the process exit status.
func run(ctx context.Context, sources []config.Source, in io.Reader, out io.Writer, logger *zap.Logger) int {
	cfg, err := config.LoadWeather(sources...)
	if errors.Is(err, config.ErrAPIKeyNotFound) {
		logger.Debug("api key not found", zap.Error(err))
		fmt.Fprintln(out, setupGuide)
		return 1
	}
	if err != nil {
		logger.Error("configuration error", zap.Error(err))
		return 1
	}

	client, err := openweathermap.NewClient(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize weather client", zap.Error(err))
		return 1
	}

	console.NewWeatherLoop(client, in, out, logger).Run(ctx)
	return 0
}
