package console

import (
	"bufio"
	"context"
	"io"
	"strings"
)

type lineResult struct {
	text string
	err  error
}

// lineReader reads lines on a background goroutine so a prompt can be
// abandoned when ctx is cancelled. The goroutine stays blocked on the
// underlying reader after cancellation; the loops exit right after.
type lineReader struct {
	lines <-chan lineResult
}

func newLineReader(r io.Reader) *lineReader {
	ch := make(chan lineResult)
	go func() {
		defer close(ch)
		br := bufio.NewReader(r)
		for {
			line, err := br.ReadString('\n')
			if line != "" || err == nil {
				line = strings.TrimSuffix(line, "\n")
				ch <- lineResult{text: strings.TrimSuffix(line, "\r")}
			}
			if err == io.EOF {
				return
			}
			if err != nil {
				ch <- lineResult{err: err}
				return
			}
		}
	}()
	return &lineReader{lines: ch}
}

// ReadLine returns the next line without its terminator, io.EOF at end of
// input, or ctx.Err() once ctx is done.
func (lr *lineReader) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-lr.lines:
		if !ok {
			return "", io.EOF
		}
		return res.text, res.err
	}
}
