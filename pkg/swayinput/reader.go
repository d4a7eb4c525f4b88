package swayinput

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// LineReader reads newline separated events from r.
type LineReader struct {
	reader *bufio.Reader
}

func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{reader: bufio.NewReader(r)}
}

func (l *LineReader) ReadLine() (string, error) {
	str, err := l.reader.ReadString('\n')
	if err != nil && (err != io.EOF || str == "") {
		return "", fmt.Errorf("read event: %w", err)
	}
	return strings.TrimSuffix(str, "\n"), nil
}
