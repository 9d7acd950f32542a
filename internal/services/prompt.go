package services

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	harnessErrs "github.com/openstratos/probe-ci/pkg/errors"
)

// Prompter runs the interactive parts of a harness session: operator key
// entry and the SMS cost confirmation. Both streams are injected so tests
// can script them.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// ReadKey prompts for the operator authentication key and re-prompts until
// the trimmed input is exactly keyLength characters long. There is no retry
// limit; only a broken stream ends the loop.
func (p *Prompter) ReadKey(keyLength int) (string, error) {
	if err := p.say("Please, insert your authentication key:\n"); err != nil {
		return "", err
	}
	for {
		line, err := p.readLine()
		if err != nil {
			return "", err
		}

		key := strings.TrimSpace(line)
		if len(key) == keyLength {
			return key, nil
		}

		if err := p.say("Invalid key, please, insert the correct key:\n"); err != nil {
			return "", err
		}
	}
}

// ConfirmSMS asks the operator to accept the cost of sending real SMS
// messages during the test. Anything but exactly "y" or "n" repeats the
// question. It returns true on "y" and false on "n".
func (p *Prompter) ConfirmSMS() (bool, error) {
	if err := p.say("You decided to test by sending SMSs but this can cost you money, are you sure? (y/n) "); err != nil {
		return false, err
	}
	for {
		line, err := p.readLine()
		if err != nil {
			return false, err
		}

		switch strings.TrimSpace(line) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}

		if err := p.say("Please, select 'y' (yes) or 'n' (no) "); err != nil {
			return false, err
		}
	}
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		// A final line without a trailing newline is still a valid answer.
		if err == io.EOF && line != "" {
			return line, nil
		}
		return "", harnessErrs.NewInputError(err)
	}
	return line, nil
}

func (p *Prompter) say(msg string) error {
	if _, err := fmt.Fprint(p.out, msg); err != nil {
		return harnessErrs.NewInputError(err)
	}
	return nil
}
