// Package prompt reads interactive credentials for bootstrap.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// Line prints label to w and reads a single line from reader, trimmed.
// If EOF occurs after some input was read, the partial line is returned.
func Line(reader *bufio.Reader, label string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, label); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Password prints label to w and reads a password from the terminal
// without echo. A newline is printed after the read to keep the UI tidy.
func Password(label string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, label); err != nil {
		return "", err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}
