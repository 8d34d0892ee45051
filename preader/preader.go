// Package preader reads candidate passwords for interactive checking.
package preader

import (
	"bufio"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"golang.org/x/crypto/ssh/terminal"
)

// PasswordReader produces one candidate password.
type PasswordReader interface {
	ReadPassword() (string, error)
}

// NewTerminal returns a reader that prompts on stderr and reads the password
// from the terminal without echo. When stdin is not a terminal it falls back
// to reading all of stdin, which keeps piped invocations working.
func NewTerminal() PasswordReader {
	return &terminalPasswordReader{}
}

// NewReader returns a reader that consumes all of r, trimming all trailing
// CR and LF bytes.
func NewReader(r io.Reader) PasswordReader {
	return &readerPasswordReader{upstream: r}
}

// NewConstant returns a reader that always produces password.
func NewConstant(password string) PasswordReader {
	return &constantPasswordReader{password: password}
}

type terminalPasswordReader struct{}

func (r *terminalPasswordReader) ReadPassword() (string, error) {
	if terminal.IsTerminal(0) {
		_, err := fmt.Fprint(os.Stderr, "Password to check: ")
		if err != nil {
			return "", err
		}
		password, err := terminal.ReadPassword(0)
		if err != nil {
			return "", fmt.Errorf("failure reading password: %s", err)
		}

		return string(password), nil
	}

	return NewReader(os.Stdin).ReadPassword()
}

type readerPasswordReader struct {
	upstream io.Reader
}

func (r *readerPasswordReader) ReadPassword() (string, error) {
	data, err := ioutil.ReadAll(bufio.NewReader(r.upstream))
	if err != nil {
		return "", fmt.Errorf("failure reading password: %s", err)
	}

	return strings.TrimRight(string(data), "\r\n"), nil
}

type constantPasswordReader struct {
	password string
}

func (r *constantPasswordReader) ReadPassword() (string, error) {
	return r.password, nil
}
