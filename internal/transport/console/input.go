package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/rocketscienceinc/connectn/internal/apperror"
	"github.com/rocketscienceinc/connectn/internal/entity"
)

// maxLineLength bounds a single input line. Longer lines are discarded up to
// their newline and reported as malformed.
const maxLineLength = 4096

type inputLine struct {
	text    string
	tooLong bool
	err     error
}

// Reader reads one "row col" move per line.
type Reader struct {
	src   io.Reader
	size  int
	lines chan inputLine
	start sync.Once
}

func NewReader(r io.Reader, size int) *Reader {
	return &Reader{
		src:   r,
		size:  size,
		lines: make(chan inputLine),
	}
}

// NextMove waits for the next line and parses it. It returns io.EOF once the
// input is exhausted and the context error as soon as ctx is done, even while
// a read is pending. A line read after cancellation is kept for the next call.
func (that *Reader) NextMove(ctx context.Context) (entity.Coordinate, error) {
	if err := ctx.Err(); err != nil {
		return entity.Coordinate{}, err
	}

	that.start.Do(func() {
		go that.readLines()
	})

	select {
	case <-ctx.Done():
		return entity.Coordinate{}, ctx.Err()
	case line, ok := <-that.lines:
		switch {
		case !ok, errors.Is(line.err, io.EOF):
			return entity.Coordinate{}, io.EOF
		case line.err != nil:
			return entity.Coordinate{}, fmt.Errorf("failed to read input: %w", line.err)
		case line.tooLong:
			return entity.Coordinate{}, fmt.Errorf("%w: line longer than %d bytes", apperror.ErrMalformedInput, maxLineLength)
		}

		return ParseCoordinate(line.text, that.size)
	}
}

// readLines feeds lines to NextMove until the source fails or ends.
func (that *Reader) readLines() {
	defer close(that.lines)

	buf := bufio.NewReaderSize(that.src, maxLineLength)

	for {
		text, tooLong, err := readLine(buf)
		if err == nil || text != "" || tooLong {
			that.lines <- inputLine{text: text, tooLong: tooLong}
		}

		if err != nil {
			that.lines <- inputLine{err: err}
			return
		}
	}
}

func readLine(buf *bufio.Reader) (string, bool, error) {
	var (
		text    []byte
		tooLong bool
	)

	for {
		chunk, err := buf.ReadSlice('\n')

		if !tooLong {
			if len(text)+len(chunk) > maxLineLength {
				tooLong = true
				text = nil
			} else {
				text = append(text, chunk...)
			}
		}

		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}

		return string(text), tooLong, err
	}
}

// ParseCoordinate parses two whitespace separated integers, each in
// [0, size).
func ParseCoordinate(line string, size int) (entity.Coordinate, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return entity.Coordinate{}, fmt.Errorf("%w: expected 2 numbers, got %d", apperror.ErrMalformedInput, len(parts))
	}

	row, err := parsePart(parts[0], size)
	if err != nil {
		return entity.Coordinate{}, err
	}

	col, err := parsePart(parts[1], size)
	if err != nil {
		return entity.Coordinate{}, err
	}

	return entity.Coordinate{Row: row, Col: col}, nil
}

func parsePart(s string, size int) (int, error) {
	pos, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", apperror.ErrMalformedInput, s)
	}

	if pos < 0 || pos >= size {
		return 0, fmt.Errorf("%w: %d is not in [0, %d)", apperror.ErrOutOfBounds, pos, size)
	}

	return pos, nil
}
