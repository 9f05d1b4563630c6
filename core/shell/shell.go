// Package shell - Interactive menu shell
// Renders the main/category menus, collects and validates calculator
// inputs, and displays results. The same prompt cycle serves interactive
// terminals and redirected stdin; the only difference is that redirected
// input aborts on the first invalid value instead of re-prompting.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"mme-calc/core/calc"
	"mme-calc/core/output"
	"mme-calc/core/validate"
	"mme-calc/internal/errors"
	"mme-calc/internal/logging"
)

// Shell drives the menu-navigation state loop
type Shell struct {
	in          *bufio.Scanner
	out         io.Writer
	reg         *calc.Registry
	fmtr        *output.Formatter
	styles      Styles
	interactive bool
}

// New creates a shell. interactive controls re-prompt behavior on
// invalid input.
func New(in io.Reader, out io.Writer, reg *calc.Registry, fmtr *output.Formatter, styles Styles, interactive bool) *Shell {
	return &Shell{
		in:          bufio.NewScanner(in),
		out:         out,
		reg:         reg,
		fmtr:        fmtr,
		styles:      styles,
		interactive: interactive,
	}
}

// Run executes the main menu loop until the user quits. It returns nil
// on a normal quit (including end of input at a menu prompt) and an
// error when the input stream is exhausted mid-calculation or a batch
// validation failure occurs.
func (s *Shell) Run() error {
	s.banner()
	cats := s.reg.Categories()

	for {
		options := make([]string, len(cats))
		for i, c := range cats {
			options[i] = c.Name()
		}
		s.menu("MAIN MENU — Select a Category", options)

		choice, err := s.menuChoice(len(cats))
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if choice == 0 {
			fmt.Fprintln(s.out, s.styles.Muted.Render("Goodbye."))
			return nil
		}

		if err := s.categoryLoop(cats[choice-1]); err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
}

// categoryLoop runs one category's sub-menu until the back sentinel
func (s *Shell) categoryLoop(cat calc.Category) error {
	for {
		specs := s.reg.ByCategory(cat)
		options := make([]string, len(specs))
		for i, spec := range specs {
			options[i] = spec.Name
		}
		s.menu(strings.ToUpper(cat.Name()), options)

		choice, err := s.menuChoice(len(specs))
		if err != nil {
			return err
		}

		// 0 is the navigation sentinel; the registry rejects it so it
		// can never select a calculator
		spec, err := s.reg.Lookup(cat, choice)
		if errors.IsType(err, errors.TypeNavigation) {
			return nil
		}
		if err != nil {
			if s.interactive {
				s.printError(err)
				continue
			}
			return err
		}

		if err := s.runCalculator(spec); err != nil {
			return err
		}
	}
}

// runCalculator collects inputs, dispatches, and displays the result
func (s *Shell) runCalculator(spec calc.Spec) error {
	in, err := s.collectInputs(spec)
	if err != nil {
		return err
	}

	result, err := s.reg.Run(spec, in)
	if err != nil {
		// Domain failures from the formula itself (e.g. lever rule
		// composition outside the tie line) are recoverable
		// interactively: report and return to the category menu
		if s.interactive && errors.Recoverable(err) {
			s.printError(err)
			return nil
		}
		return err
	}

	logging.Debug("calculation complete",
		zap.String("category", spec.Category.Slug()),
		zap.String("calculator", spec.Slug),
	)
	s.printResult(result)
	return nil
}

// collectInputs prompts for every declared field in order, then for the
// repeated group if the spec has one
func (s *Shell) collectInputs(spec calc.Spec) (calc.Inputs, error) {
	values := make(map[string]calc.Value)
	for _, f := range spec.Fields {
		v, err := s.promptField(f)
		if err != nil {
			return calc.Inputs{}, err
		}
		values[f.Key] = v
	}

	var rows []map[string]calc.Value
	if spec.Repeat != nil {
		count, err := s.promptField(spec.Repeat.CountField)
		if err != nil {
			return calc.Inputs{}, err
		}
		n := int(count.Num)
		for i := 0; i < n; i++ {
			fmt.Fprintln(s.out, s.styles.Muted.Render(fmt.Sprintf("--- %s %d ---", spec.Repeat.RowLabel, i+1)))
			row := make(map[string]calc.Value)
			for _, f := range spec.Repeat.Fields {
				v, err := s.promptField(f)
				if err != nil {
					return calc.Inputs{}, err
				}
				row[f.Key] = v
			}
			rows = append(rows, row)
		}
	}

	return calc.NewInputs(values, rows), nil
}

// promptField reads and validates one field, re-prompting while
// interactive
func (s *Shell) promptField(f calc.Field) (calc.Value, error) {
	for {
		raw, err := s.readLine(s.fieldPrompt(f))
		if err != nil {
			return calc.Value{}, errors.Wrap(errors.TypeParse,
				"input stream exhausted", err).WithField(f.Label)
		}

		v, verr := validate.Parse(raw, f)
		if verr == nil {
			return v, nil
		}
		if s.interactive && errors.Recoverable(verr) {
			s.printError(verr)
			continue
		}
		return calc.Value{}, verr
	}
}

// fieldPrompt renders "Label (unit): " with choices for choice fields
func (s *Shell) fieldPrompt(f calc.Field) string {
	label := f.Label
	if f.Unit != "" {
		label += " (" + f.Unit + ")"
	}
	if f.Kind == calc.FieldChoice {
		label += " [" + strings.Join(f.Choices, ", ") + "]"
	}
	return s.styles.Prompt.Render(label+":") + " "
}

// menuChoice reads a selection in [0, max], re-prompting while
// interactive. io.EOF propagates so menus treat end of input as quit.
func (s *Shell) menuChoice(max int) (int, error) {
	for {
		raw, err := s.readLine(s.styles.Prompt.Render("Enter choice:") + " ")
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(strings.TrimSpace(raw))
		if convErr != nil || n < 0 || n > max {
			navErr := errors.Navigation(fmt.Sprintf("choice must be between 0 and %d", max))
			if s.interactive {
				s.printError(navErr)
				continue
			}
			return 0, navErr
		}
		return n, nil
	}
}

// readLine prints a prompt and reads one line; io.EOF when the stream
// is exhausted
func (s *Shell) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.in.Text(), nil
}

func (s *Shell) banner() {
	fmt.Fprintln(s.out, s.styles.Divider)
	fmt.Fprintln(s.out, s.styles.Title.Render("MME CALCULATOR — Metallurgical & Materials Engineering"))
	fmt.Fprintln(s.out, s.styles.Divider)
}

func (s *Shell) menu(title string, options []string) {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, s.styles.Header.Render(title))
	fmt.Fprintln(s.out, s.styles.Divider)
	for i, opt := range options {
		fmt.Fprintf(s.out, "  %s %s\n", s.styles.Index.Render(fmt.Sprintf("[%d]", i+1)), opt)
	}
	fmt.Fprintf(s.out, "  %s %s\n", s.styles.Index.Render("[0]"), "Back")
	fmt.Fprintln(s.out, s.styles.Divider)
}

func (s *Shell) printResult(res calc.Result) {
	fmt.Fprintln(s.out)
	for _, rv := range res.Values {
		fmt.Fprintln(s.out, s.styles.Result.Render(s.fmtr.Value(rv)))
	}
	if res.Verdict != "" {
		fmt.Fprintln(s.out, s.styles.verdictStyle(res.Verdict).Render("Verdict: "+res.Verdict))
	}
	for _, d := range res.Details {
		fmt.Fprintln(s.out, s.styles.Muted.Render(d))
	}
	fmt.Fprintln(s.out)
}

func (s *Shell) printError(err error) {
	msg := err.Error()
	if e, ok := err.(*errors.Error); ok {
		msg = e.Message
		if f := e.Field(); f != "" {
			msg = f + ": " + msg
		}
	}
	fmt.Fprintln(s.out, s.styles.Error.Render("! "+msg))
}
