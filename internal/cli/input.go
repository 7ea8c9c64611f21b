package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
// In tests, replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// getLine prints a prompt to w and reads a single line from reader, trimming
// surrounding whitespace. If EOF occurs after some input was read, the
// partial line is returned.
func getLine(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
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

// getPassword prints a prompt to w and reads a password from the terminal
// without echo. The returned byte slice should be wiped by the caller when
// no longer needed.
func getPassword(prompt string, w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// getFloat reads a float with a default used on empty input.
func getFloat(reader *bufio.Reader, prompt string, def float64, w io.Writer) (float64, error) {
	line, err := getLine(reader, fmt.Sprintf("%s [%v]: ", prompt, def), w)
	if err != nil {
		return 0, err
	}
	if line == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return def, nil
	}
	return v, nil
}
