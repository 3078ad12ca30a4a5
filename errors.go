package sax

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrWriteAfterClose is raised when Write or End is called on a
	// parser that has already seen End.
	ErrWriteAfterClose = errors.New("Cannot write after close")
)

// ParseError decorates a diagnostic with the position of the offending
// character. It is only produced when position tracking is enabled.
type ParseError struct {
	Err    error
	Line   int
	Column int
	Char   int
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%s at line %d, column %d", e.Err, e.Line, e.Column)
}

func (e ParseError) Unwrap() error {
	return e.Err
}

// fail reports a diagnostic: buffered text is flushed, the error is
// latched so the next Write raises it, and the error handler is
// invoked. The state machine keeps going afterwards.
func (p *Parser) fail(err error) {
	p.closeText()
	if p.trackPosition {
		err = ParseError{
			Err:    err,
			Line:   p.line,
			Column: p.column,
			Char:   p.position,
		}
	}
	p.err = err
	p.trace().Debug("parse error", "error", err)
	p.sax.Error(p.userData, err)
}

func (p *Parser) failMsg(msg string) {
	p.fail(errors.New(msg))
}

// strictFail reports a diagnostic that only counts as an error under
// strict parsing. Lenient parsing recovers silently.
func (p *Parser) strictFail(msg string) {
	if p.strict {
		p.failMsg(msg)
	}
}
