package console

import (
	"errors"
	"fmt"
	"strings"

	"github.com/namefreezers/weather-console/internal/weather/types"
)

const (
	weatherWelcome    = "🌤️  날씨 앱에 오신 것을 환영합니다!"
	weatherPrompt     = "\n🏙️  도시 이름을 입력하세요 (종료: 'quit' 또는 'exit'): "
	weatherFarewell   = "👋 앱을 종료합니다. 안녕히 가세요!"
	interruptFarewell = "\n\n👋 앱을 종료합니다. 안녕히 가세요!"
	msgEmptyCity      = "❌ 도시 이름을 입력해주세요."
	msgFetchFailed    = "날씨 정보를 가져올 수 없습니다."

	msgTimeout      = "❌ 요청 시간이 초과되었습니다."
	msgConnection   = "❌ 네트워크 연결 오류가 발생했습니다."
	msgUnauthorized = "❌ API 키가 유효하지 않습니다."
	msgParse        = "❌ 응답 데이터를 파싱할 수 없습니다."

	calcMenu = "\n=== 간단한 계산기 ===\n" +
		"1. 더하기\n" +
		"2. 빼기\n" +
		"3. 곱하기\n" +
		"4. 나누기\n" +
		"5. 종료\n"
	calcPrompt        = "선택하세요 (1-5): "
	calcFirstOperand  = "첫 번째 숫자를 입력하세요: "
	calcSecondOperand = "두 번째 숫자를 입력하세요: "
	calcFarewell      = "계산기를 종료합니다."
	msgBadNumber      = "오류: 유효한 숫자를 입력하세요."
	msgBadChoice      = "오류: 1-5 사이의 번호를 선택하세요."
	msgDivByZero      = "오류: 0으로 나눌 수 없습니다."
)

var exitKeywords = map[string]bool{"quit": true, "exit": true, "종료": true}

func isExitKeyword(s string) bool {
	return exitKeywords[strings.ToLower(s)]
}

// DescribeFailure maps a fetch error to its console message.
func DescribeFailure(err error, city string) string {
	var fe *types.FetchError
	if !errors.As(err, &fe) {
		return fmt.Sprintf("❌ 예상치 못한 오류가 발생했습니다: %v", err)
	}
	switch fe.Kind {
	case types.KindTimeout:
		return msgTimeout
	case types.KindConnection:
		return msgConnection
	case types.KindNotFound:
		return fmt.Sprintf("❌ 도시를 찾을 수 없습니다: %s", city)
	case types.KindUnauthorized:
		return msgUnauthorized
	case types.KindHTTP:
		return fmt.Sprintf("❌ HTTP 오류 발생: %d %s", fe.StatusCode, fe.Message)
	case types.KindParse:
		return msgParse
	default:
		return fmt.Sprintf("❌ 요청 오류 발생: %s", fe.Message)
	}
}
