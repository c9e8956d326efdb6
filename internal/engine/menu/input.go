package menu

import (
	"bufio"
	"context"
	"io"
	"strings"

	"go.trai.ch/todo/internal/core/domain"
	"go.trai.ch/zerr"
)

// lineReader delivers input lines from a pump goroutine so that a blocked read
// never keeps the menu from observing context cancellation.
type lineReader struct {
	lines chan string
	err   error // set before lines is closed
}

func newLineReader(ctx context.Context, in io.Reader) *lineReader {
	r := &lineReader{lines: make(chan string)}

	go func() {
		defer close(r.lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case r.lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			r.err = zerr.Wrap(err, domain.ErrInputReadFailed.Error())
		}
	}()

	return r
}

// next returns the next line without its line ending. ok is false once the input is exhausted.
func (r *lineReader) next(ctx context.Context) (string, bool, error) {
	select {
	case <-ctx.Done():
		return "", false, ctx.Err()
	case line, ok := <-r.lines:
		if !ok {
			return "", false, r.err
		}
		return strings.TrimSuffix(line, "\r"), true, nil
	}
}
