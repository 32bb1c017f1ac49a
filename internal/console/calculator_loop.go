package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/namefreezers/weather-console/internal/calculator"

	"go.uber.org/zap"
)

var errInvalidNumber = errors.New("invalid number")

var menuOps = map[string]calculator.Op{
	"1": calculator.OpAdd,
	"2": calculator.OpSubtract,
	"3": calculator.OpMultiply,
	"4": calculator.OpDivide,
}

// CalculatorLoop is the interactive arithmetic menu.
type CalculatorLoop struct {
	in     *lineReader
	out    io.Writer
	logger *zap.Logger
}

func NewCalculatorLoop(in io.Reader, out io.Writer, logger *zap.Logger) *CalculatorLoop {
	return &CalculatorLoop{in: newLineReader(in), out: out, logger: logger}
}

// Run shows the menu until "5", end of input, or ctx cancellation.
func (l *CalculatorLoop) Run(ctx context.Context) {
	for {
		fmt.Fprint(l.out, calcMenu)
		fmt.Fprint(l.out, calcPrompt)

		choice, err := l.in.ReadLine(ctx)
		if err != nil {
			l.quit(err)
			return
		}
		choice = strings.TrimSpace(choice)
		if choice == "5" {
			fmt.Fprintln(l.out, calcFarewell)
			return
		}

		op, ok := menuOps[choice]
		if !ok {
			fmt.Fprintln(l.out, msgBadChoice)
			continue
		}

		x, err := l.readOperand(ctx, calcFirstOperand)
		if err == nil {
			var y float64
			y, err = l.readOperand(ctx, calcSecondOperand)
			if err == nil {
				l.printResult(op, x, y)
				continue
			}
		}
		if errors.Is(err, errInvalidNumber) {
			fmt.Fprintln(l.out, msgBadNumber)
			continue
		}
		l.quit(err)
		return
	}
}

func (l *CalculatorLoop) quit(err error) {
	if !errors.Is(err, io.EOF) && !errors.Is(err, context.Canceled) {
		l.logger.Warn("reading calculator input failed", zap.Error(err))
	}
	fmt.Fprintln(l.out)
	fmt.Fprintln(l.out, calcFarewell)
}

func (l *CalculatorLoop) readOperand(ctx context.Context, prompt string) (float64, error) {
	fmt.Fprint(l.out, prompt)
	line, err := l.in.ReadLine(ctx)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, errInvalidNumber
	}
	return f, nil
}

func (l *CalculatorLoop) printResult(op calculator.Op, x, y float64) {
	res, err := calculator.Apply(op, x, y)
	if errors.Is(err, calculator.ErrDivisionByZero) {
		fmt.Fprintln(l.out, msgDivByZero)
		return
	}
	if err != nil {
		fmt.Fprintf(l.out, "❌ 예상치 못한 오류가 발생했습니다: %v\n", err)
		return
	}
	fmt.Fprintf(l.out, "결과: %s %s %s = %s\n",
		formatNumber(x), op.Symbol(), formatNumber(y), formatNumber(res))
}

// formatNumber prints floats the way the calculator always has:
// integral values keep a trailing ".0", very large or small magnitudes
// switch to exponent form.
func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	if abs := math.Abs(f); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
