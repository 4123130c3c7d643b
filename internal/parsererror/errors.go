package parsererror

import "fmt"

// UnknownFormatError indicates that the input file name matched none of the
// known provider naming conventions. It is the one error kind the CLI
// recovers from: the message is printed and no output file is written.
type UnknownFormatError struct {
	FilePath string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unrecognized format: %s", e.FilePath)
}

// ParseError represents a malformed row within a recognized dialect. There is
// no per-row recovery; a ParseError aborts the whole run.
type ParseError struct {
	Dialect string
	Line    int
	Field   string
	Value   string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: line %d: failed to parse %s='%s': %v",
		e.Dialect, e.Line, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
