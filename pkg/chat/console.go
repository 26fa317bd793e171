package chat

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxLineBytes bounds a single console line.
const maxLineBytes = 1 << 20

// Console is the line-oriented prompt/response surface of a session.
type Console struct {
	in      *bufio.Scanner
	out     io.Writer
	botName string
}

// NewConsole reads lines from r and writes replies to w, prefixed with botName.
func NewConsole(r io.Reader, w io.Writer, botName string) *Console {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)
	return &Console{in: scanner, out: w, botName: botName}
}

// Prompt writes prompt and reads the next line without its line terminator.
// It returns io.EOF once input is exhausted.
func (c *Console) Prompt(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSuffix(c.in.Text(), "\r"), nil
}

// Say writes one bot reply line.
func (c *Console) Say(msg string) {
	fmt.Fprintf(c.out, "%s: %s\n", c.botName, msg)
}
