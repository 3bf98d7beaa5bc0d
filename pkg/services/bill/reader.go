package bill

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/de-tools/billsplit/pkg/models/domain"
	"github.com/rs/zerolog"
)

const DefaultCommentPrefix = "#"

type ReaderOptions struct {
	// CommentPrefix marks lines to skip. Empty disables comments.
	CommentPrefix string
}

// Parse reads a bill line by line and stops at the first invalid line.
func Parse(ctx context.Context, r io.Reader, opts ReaderOptions) (domain.Bill, error) {
	logger := zerolog.Ctx(ctx)

	var b Builder
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || (opts.CommentPrefix != "" && strings.HasPrefix(text, opts.CommentPrefix)) {
			continue
		}

		line, err := Classify(text)
		if err == nil {
			b, err = b.Accept(line)
		}
		if err != nil {
			return domain.Bill{}, &domain.LineError{Line: lineNo, Text: text, Err: err}
		}

		logger.Debug().
			Int("line", lineNo).
			Str("kind", line.Kind.String()).
			Msg("accepted line")
	}
	if err := scanner.Err(); err != nil {
		return domain.Bill{}, fmt.Errorf("failed to read bill: %w", err)
	}

	return b.Finalize()
}

// ParseFile opens path and parses it as a bill.
func ParseFile(ctx context.Context, path string, opts ReaderOptions) (domain.Bill, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Bill{}, fmt.Errorf("failed to open bill file: %w", err)
	}
	defer f.Close()

	return Parse(ctx, f, opts)
}
