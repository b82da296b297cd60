package calibration

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects which digits a line scan recognizes.
type Mode int

const (
	// DigitsOnly recognizes the characters 0-9.
	DigitsOnly Mode = iota
	// SpelledDigits also recognizes "one" through "nine", which may overlap
	// ("eightwo" yields 8 then 2).
	SpelledDigits
)

// String returns the mode name used in flags and logs.
func (m Mode) String() string {
	switch m {
	case DigitsOnly:
		return "digits"
	case SpelledDigits:
		return "spelled"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ErrNoDigit is returned for a line that contains no recognizable digit.
var ErrNoDigit = errors.New("line contains no digit")

// LineError reports which line failed.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

var spelled = []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// LineValue returns the two-digit value formed by the first and last digit
// on the line. A single digit is used twice ("treb7uchet" is 77).
func LineValue(line string, mode Mode) (int, error) {
	first, last := -1, -1
	for i := 0; i < len(line); i++ {
		d, ok := digitAt(line, i, mode)
		if !ok {
			continue
		}
		if first < 0 {
			first = d
		}
		last = d
	}

	if first < 0 {
		return 0, ErrNoDigit
	}
	return first*10 + last, nil
}

// Sum adds up LineValue over every line of text. Empty lines are skipped;
// any other line without a digit fails the whole sum.
func Sum(text string, mode Mode) (int, error) {
	total := 0
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		v, err := LineValue(line, mode)
		if err != nil {
			return 0, &LineError{Line: i + 1, Text: line, Err: err}
		}
		total += v
	}
	return total, nil
}

// digitAt reports the digit that starts at offset i, if any.
func digitAt(s string, i int, mode Mode) (int, bool) {
	if c := s[i]; c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	if mode != SpelledDigits {
		return 0, false
	}
	for n, word := range spelled {
		if strings.HasPrefix(s[i:], word) {
			return n + 1, true
		}
	}
	return 0, false
}
