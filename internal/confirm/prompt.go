// Package confirm asks the operator to type "yes" before a run proceeds.
package confirm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// Answer is the reply that lets a run proceed. Case is ignored.
const Answer = "yes"

// ExitMessage is printed when the operator declines.
const ExitMessage = "Exiting."

// Prompter reads a single line of confirmation.
type Prompter struct {
	in          io.Reader
	out         io.Writer
	interactive bool
	accessible  bool
}

// New returns a Prompter reading from in and writing to out. When in is a
// terminal the answer is collected with a form field, otherwise a plain line
// is read.
func New(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{in: in, out: out, accessible: os.Getenv("ACCESSIBLE") != ""}
	if f, ok := in.(*os.File); ok {
		p.interactive = term.IsTerminal(int(f.Fd()))
	}
	return p
}

// Confirm shows summary and reports whether the operator typed "yes".
// Any other answer, including an empty line or end of input, prints
// ExitMessage and returns false.
func (p *Prompter) Confirm(summary string) (bool, error) {
	var (
		answer string
		err    error
	)
	if p.interactive {
		answer, err = p.askForm(summary)
	} else {
		answer, err = p.askLine(summary)
	}
	if err != nil {
		return false, err
	}

	if Accepted(answer) {
		return true, nil
	}
	fmt.Fprintln(p.out, ExitMessage)
	return false, nil
}

// Accepted reports whether answer is an affirmative reply.
func Accepted(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), Answer)
}

func (p *Prompter) askLine(summary string) (string, error) {
	fmt.Fprintf(p.out, "%s Type '%s' to proceed: ", summary, Answer)

	line, err := bufio.NewReader(p.in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read confirmation: %w", err)
	}
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(p.out)
	}
	return line, nil
}

func (p *Prompter) askForm(summary string) (string, error) {
	var answer string
	field := huh.NewInput().
		Title(summary).
		Description(fmt.Sprintf("Type '%s' to proceed.", Answer)).
		Value(&answer)

	err := huh.NewForm(huh.NewGroup(field)).
		WithAccessible(p.accessible).
		WithOutput(p.out).
		Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read confirmation: %w", err)
	}
	return answer, nil
}
