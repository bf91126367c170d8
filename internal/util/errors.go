package util

import (
	"fmt"
	"io"
	"strconv"
)

const pkgName = "cors"

// NewError is similar to [errors.New],
// but the message of the resulting error is prefixed with "cors: ".
func NewError(text string) error {
	return &prefixedError{msg: text}
}

// Errorf is similar to [fmt.Errorf],
// but the message of the resulting error is prefixed with "cors: ".
func Errorf(format string, a ...any) error {
	return &prefixedError{msg: fmt.Sprintf(format, a...)}
}

type prefixedError struct {
	msg string
}

func (e *prefixedError) Error() string {
	return pkgName + ": " + e.msg
}

// InvalidOriginErr returns an error about invalid origin str.
func InvalidOriginErr(str string) error {
	return Errorf("invalid origin %q", str)
}

// Join joins the elements of strs in a human-friendly way
// and writes the result to w.
func Join(w io.StringWriter, strs []string) {
	// Errors are deliberately ignored.
	switch len(strs) {
	case 0:
	case 1:
		w.WriteString(strconv.Quote(strs[0]))
	case 2:
		w.WriteString(strconv.Quote(strs[0]))
		w.WriteString(" and ")
		w.WriteString(strconv.Quote(strs[1]))
	default:
		w.WriteString(strconv.Quote(strs[0]))
		for i := 1; i < len(strs)-1; i++ {
			w.WriteString(", ")
			w.WriteString(strconv.Quote(strs[i]))
		}
		w.WriteString(", and ")
		w.WriteString(strconv.Quote(strs[len(strs)-1]))
	}
}
