package cli

import (
	"context"
	"fmt"
	"log/slog"
)

const (
	sourceArgs  = "args"
	sourceStdin = "stdin"
)

type positionKey struct{}

type position struct {
	source string
	line   int
}

func withPosition(ctx context.Context, source string, line int) context.Context {
	return context.WithValue(ctx, positionKey{}, position{source: source, line: line})
}

// positionExtractor adds the current input source and line to log records.
func positionExtractor(ctx context.Context) (slog.Attr, bool) {
	pos, ok := positionFrom(ctx)
	if !ok {
		return slog.Attr{}, false
	}
	return slog.Group("input", slog.String("source", pos.source), slog.Int("line", pos.line)), true
}

func positionFrom(ctx context.Context) (position, bool) {
	pos, ok := ctx.Value(positionKey{}).(position)
	return pos, ok
}

func (p position) String() string {
	return fmt.Sprintf("%s:%d", p.source, p.line)
}
