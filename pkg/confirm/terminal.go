// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package confirm

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/term"
)

var (
	filenameColor = color.New(color.FgYellow, color.Bold).SprintFunc()
	lineColor     = color.New(color.FgCyan).SprintFunc()
	usageColor    = color.New(color.FgRed).SprintFunc()
)

// 🖥️ TerminalConfirmer reads single keystrokes. When in is a terminal it is switched to raw
// mode for each read; otherwise bytes are read as they come and line breaks are skipped.
type TerminalConfirmer struct {
	in  io.Reader
	fd  int
	tty bool
	r   *bufio.Reader
	out io.Writer
}

// NewTerminalConfirmer reads from in and writes prompts to out
func NewTerminalConfirmer(in io.Reader, out io.Writer) *TerminalConfirmer {
	c := &TerminalConfirmer{in: in, r: bufio.NewReader(in), out: out}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		c.fd = int(f.Fd())
		c.tty = true
	}
	return c
}

func (c *TerminalConfirmer) getch() (byte, error) {
	if c.tty {
		state, err := term.MakeRaw(c.fd)
		if err != nil {
			return 0, errors.Errorf("entering raw mode: %w", err)
		}
		defer func() { _ = term.Restore(c.fd, state) }()

		var b [1]byte
		if _, err := io.ReadFull(c.in, b[:]); err != nil {
			return 0, errors.Errorf("reading keystroke: %w", err)
		}
		return b[0], nil
	}

	for {
		b, err := c.r.ReadByte()
		if err != nil {
			return 0, errors.Errorf("reading keystroke: %w", err)
		}
		if b != '\n' && b != '\r' {
			return b, nil
		}
	}
}

func (c *TerminalConfirmer) PromptMatch(ctx context.Context, p Prompt) (Decision, error) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, p.Diff)
	if p.EndLine > p.Line {
		fmt.Fprintf(c.out, "Line numbers: %s\n", lineColor(fmt.Sprintf("%d-%d", p.Line, p.EndLine)))
	} else {
		fmt.Fprintf(c.out, "Line number: %s\n", lineColor(p.Line))
	}
	if p.FirstInFile {
		fmt.Fprintf(c.out, "Filename: %s\n", filenameColor(p.Filename))
	} else {
		fmt.Fprintf(c.out, "Filename: %s\n", p.Filename)
	}

	for {
		if err := ctx.Err(); err != nil {
			return Quit, errors.WithStack(err)
		}
		fmt.Fprint(c.out, "Replace? [y,n,Y,N,A,Q] ")
		b, err := c.getch()
		if err != nil {
			return Quit, err
		}
		fmt.Fprintf(c.out, "%c\n", b)
		if d, ok := ParseKey(b); ok {
			return d, nil
		}
		fmt.Fprintln(c.out, usageColor(Usage))
	}
}

func (c *TerminalConfirmer) PromptFinal(ctx context.Context) (bool, error) {
	for {
		if err := ctx.Err(); err != nil {
			return false, errors.WithStack(err)
		}
		fmt.Fprint(c.out, "Proceed (y/n)? ")
		b, err := c.getch()
		if err != nil {
			return false, err
		}
		fmt.Fprintf(c.out, "%c\n", b)
		switch b {
		case 'y', 'Y':
			return true, nil
		case 'n', 'N':
			return false, nil
		}
		fmt.Fprintln(c.out, usageColor("y: proceed, n: abort without writing"))
	}
}

// AutoConfirmer accepts everything. It never prompts.
type AutoConfirmer struct{}

func (AutoConfirmer) PromptMatch(context.Context, Prompt) (Decision, error) {
	return YesAllRest, nil
}

func (AutoConfirmer) PromptFinal(context.Context) (bool, error) {
	return true, nil
}
