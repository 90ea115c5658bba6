package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Input reads one answer per line after writing a prompt.
type Input struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewInput(in io.Reader, out io.Writer) *Input {
	return &Input{reader: bufio.NewReader(in), out: out}
}

// Ask returns io.EOF once the input is exhausted.
func (i *Input) Ask(prompt string) (string, error) {
	if _, err := fmt.Fprint(i.out, prompt); err != nil {
		return "", err
	}

	line, err := i.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (i *Input) printOptions(labels ...string) {
	for n, label := range labels {
		_, _ = fmt.Fprintf(i.out, "%d)\t%s\n", n+1, label)
	}
}
