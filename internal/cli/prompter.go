package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/spendwise/spendwise/internal/dateutil"
	"github.com/spendwise/spendwise/internal/model"
)

// Prompter drives the sequential prompt/response flows of the menus.
type Prompter struct {
	input  io.Reader
	reader *Reader
	writer io.Writer
}

// NewPrompter creates a prompter over the given streams. Nil arguments
// default to stdin/stdout.
func NewPrompter(input io.Reader, writer io.Writer) *Prompter {
	if input == nil {
		input = os.Stdin
	}
	if writer == nil {
		writer = os.Stdout
	}
	return &Prompter{
		input:  input,
		reader: NewReader(input),
		writer: writer,
	}
}

// Writer exposes the output stream for callers that render their own output.
func (p *Prompter) Writer() io.Writer {
	return p.writer
}

// Line prompts for one line of free text.
func (p *Prompter) Line(ctx context.Context, label string) (string, error) {
	fmt.Fprint(p.writer, FormatPrompt(label))
	return p.reader.ReadLine(ctx)
}

// Int prompts until an integer is entered.
func (p *Prompter) Int(ctx context.Context, label string) (int, error) {
	for {
		line, err := p.Line(ctx, label)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err == nil {
			return n, nil
		}
		fmt.Fprintln(p.writer, FormatError("Please enter a whole number."))
	}
}

// Float prompts until a number is entered.
func (p *Prompter) Float(ctx context.Context, label string) (float64, error) {
	for {
		line, err := p.Line(ctx, label)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(line, 64)
		if err == nil {
			return v, nil
		}
		fmt.Fprintln(p.writer, FormatError("Please enter a number."))
	}
}

// Date prompts for a D/M/Y date. A blank entry means today.
func (p *Prompter) Date(ctx context.Context, label string) (model.Date, error) {
	line, err := p.Line(ctx, label)
	if err != nil {
		return model.Date{}, err
	}
	if line == "" {
		return dateutil.Today(), nil
	}
	return dateutil.ParseValid(line)
}

// Confirm prompts for a yes/no answer, defaulting to no.
func (p *Prompter) Confirm(ctx context.Context, label string) (bool, error) {
	line, err := p.Line(ctx, label+" [y/N]")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Choice prompts until one of the valid options is entered. Matching is
// case-insensitive; the canonical (lowercased) option is returned.
func (p *Prompter) Choice(ctx context.Context, label string, valid []string) (string, error) {
	for {
		line, err := p.Line(ctx, label)
		if err != nil {
			return "", err
		}
		entered := strings.ToLower(line)
		for _, option := range valid {
			if entered == strings.ToLower(option) {
				return entered, nil
			}
		}
		fmt.Fprintln(p.writer, FormatError(fmt.Sprintf("Please choose one of: %s", strings.Join(valid, ", "))))
	}
}

// Password prompts without echoing when the input is a real terminal, and
// falls back to a plain line read otherwise (tests, pipes).
func (p *Prompter) Password(ctx context.Context, label string) (string, error) {
	if f, ok := p.input.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(p.writer, FormatPrompt(label))
		secret, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(p.writer)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(secret), nil
	}
	return p.Line(ctx, label)
}
