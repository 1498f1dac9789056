package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

const DEFAULT_PROMPT = "Press any key to continue . . . "

// Pauser blocks until the user acknowledges a message.
type Pauser interface {
	Pause(prompt string) error
}

// Console writes notices to Output and reads keypresses from Input. When
// Input is a terminal it is switched to raw mode so a single key is enough.
type Console struct {
	Input  io.Reader
	Output io.Writer

	failureStyle lipgloss.Style
}

func NewConsole(input io.Reader, output io.Writer) *Console {
	renderer := lipgloss.NewRenderer(output)
	return &Console{
		Input:        input,
		Output:       output,
		failureStyle: renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	}
}

// Stdio returns the console bound to the process standard streams.
func Stdio() *Console {
	return NewConsole(os.Stdin, os.Stdout)
}

func (console *Console) Notice(format string, arguments ...interface{}) {
	fmt.Fprintf(console.Output, format+"\n", arguments...)
}

// Failure prints a message highlighted when the output supports colors.
func (console *Console) Failure(format string, arguments ...interface{}) {
	fmt.Fprintln(console.Output, console.failureStyle.Render(fmt.Sprintf(format, arguments...)))
}

func (console *Console) Blank() {
	fmt.Fprintln(console.Output)
}

func (console *Console) Pause(prompt string) (err error) {
	fmt.Fprint(console.Output, prompt)
	defer fmt.Fprintln(console.Output)

	if file, ok := console.Input.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		var state *term.State
		if state, err = term.MakeRaw(int(file.Fd())); err != nil {
			return
		}
		defer term.Restore(int(file.Fd()), state)
	}

	key := make([]byte, 1)
	if _, err = console.Input.Read(key); errors.Is(err, io.EOF) {
		// Nobody to wait for
		err = nil
	}
	return
}
