package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/garagebook/internal/common"
	"github.com/dmitrijs2005/garagebook/internal/datex"
)

// clearToken erases an optional field when typed at an edit prompt.
const clearToken = "-"

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
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

// withDefault appends the current value to a prompt, e.g. "Km [12000]".
func withDefault(prompt, current string) string {
	if current == "" {
		return prompt
	}
	return fmt.Sprintf("%s [%s]", prompt, current)
}

// parseInt reads a non-negative-looking integer typed by a user. Italian
// thousands separators ("15.000") and spaces are ignored.
func parseInt(field, s string) (int, error) {
	clean := strings.NewReplacer(".", "", " ", "", "'", "").Replace(s)
	n, err := strconv.Atoi(clean)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %q is not a number", common.ErrValidation, field, s)
	}
	return n, nil
}

// parseAmount reads a money amount, accepting "," as decimal separator.
// With a comma present, dots are taken as thousands separators.
func parseAmount(field, s string) (float64, error) {
	clean := strings.ReplaceAll(s, " ", "")
	if strings.Contains(clean, ",") {
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	}
	f, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %q is not an amount", common.ErrValidation, field, s)
	}
	return f, nil
}

// parseDate accepts both stored shapes and returns the ISO form.
func parseDate(field, s string) (string, error) {
	t, ok := datex.Parse(s)
	if !ok {
		return "", fmt.Errorf("%w: %s: %q is not a date (yyyy-mm-dd or dd/mm/yyyy)", common.ErrValidation, field, s)
	}
	return datex.ISO(t), nil
}

// prompter asks for fields one at a time. An empty answer keeps the value
// shown in brackets.
type prompter struct {
	reader *bufio.Reader
	w      io.Writer
}

func (p prompter) text(prompt, current string) (string, bool, error) {
	s, err := GetSimpleText(p.reader, withDefault(prompt, current), p.w)
	if err != nil {
		return "", false, err
	}
	if s == "" {
		return current, false, nil
	}
	return s, true, nil
}

// required asks until a non-empty answer or a default is available.
func (p prompter) required(prompt, current string) (string, bool, error) {
	for {
		s, changed, err := p.text(prompt, current)
		if err != nil {
			return "", false, err
		}
		if s != "" {
			return s, changed, nil
		}
	}
}

// optional is like text, but clearToken erases the value.
func (p prompter) optional(prompt, current string) (string, bool, error) {
	s, changed, err := p.text(prompt+" ("+clearToken+" to clear)", current)
	if err != nil || !changed {
		return s, changed, err
	}
	if s == clearToken {
		return "", true, nil
	}
	return s, true, nil
}

func (p prompter) date(prompt, current string) (string, bool, error) {
	s, changed, err := p.required(prompt, datex.Display(current))
	if err != nil || !changed {
		return current, false, err
	}
	iso, err := parseDate(prompt, s)
	return iso, err == nil, err
}

func (p prompter) optionalDate(prompt, current string) (string, bool, error) {
	s, changed, err := p.optional(prompt, datex.Display(current))
	if err != nil || !changed {
		return current, false, err
	}
	if s == "" {
		return "", true, nil
	}
	iso, err := parseDate(prompt, s)
	return iso, err == nil, err
}

func (p prompter) integer(prompt string, current int, hasCurrent bool) (int, bool, error) {
	cur := ""
	if hasCurrent {
		cur = strconv.Itoa(current)
	}
	s, changed, err := p.required(prompt, cur)
	if err != nil || !changed {
		return current, false, err
	}
	n, err := parseInt(prompt, s)
	return n, err == nil, err
}

func (p prompter) optionalInt(prompt string, current *int) (*int, bool, error) {
	cur := ""
	if current != nil {
		cur = strconv.Itoa(*current)
	}
	s, changed, err := p.optional(prompt, cur)
	if err != nil || !changed {
		return current, false, err
	}
	if s == "" {
		return nil, true, nil
	}
	n, err := parseInt(prompt, s)
	if err != nil {
		return current, false, err
	}
	return &n, true, nil
}

func (p prompter) optionalAmount(prompt string, current *float64) (*float64, bool, error) {
	cur := ""
	if current != nil {
		cur = strconv.FormatFloat(*current, 'f', -1, 64)
	}
	s, changed, err := p.optional(prompt, cur)
	if err != nil || !changed {
		return current, false, err
	}
	if s == "" {
		return nil, true, nil
	}
	f, err := parseAmount(prompt, s)
	if err != nil {
		return current, false, err
	}
	return &f, true, nil
}

// confirm asks a yes/no question; only "s", "si", "y" and "yes" agree.
func (p prompter) confirm(prompt string) (bool, error) {
	s, err := GetSimpleText(p.reader, prompt+" (s/n)", p.w)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(s) {
	case "s", "si", "sì", "y", "yes":
		return true, nil
	}
	return false, nil
}
