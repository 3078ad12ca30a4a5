// Package sax is a streaming, event-driven XML/HTML parser. The
// application feeds consecutive chunks of UTF-8 input to Write, and
// the parser delivers semantic events (tags, attributes, text, CDATA,
// comments, processing instructions, doctypes, errors) to a handler
// table without ever building a document tree. Feeding the input in
// one Write or many produces the same event stream.
package sax

import (
	"log/slog"
	"unicode/utf8"

	"github.com/lestrrat-go/pdebug/v3"
	"github.com/lestrrat-go/sax/internal/pool"
	"github.com/lestrrat-go/sax/internal/stack"
	"github.com/pkg/errors"
)

type Parser struct {
	// configuration
	strict                  bool
	caseTransform           CaseTransform
	trim                    bool
	normalize               bool
	namespaces              bool
	trackPosition           bool
	strictEntities          bool
	unquotedAttributeValues bool
	unparsedEntities        bool
	allowScript             bool
	maxBufferLength         int
	sax                     *SAX
	userData                Context
	tlog                    *slog.Logger

	// machine state
	state            parseState
	quote            rune
	tag              *Tag
	tags             stack.Stack[*Tag]
	attribList       []deferredAttribute
	ns               *Scope
	sawRoot          bool
	closedRoot       bool
	sawDoctype       bool
	inScript         bool
	startTagPosition int
	entityDepth      int
	closed           bool
	err              error

	// region buffers
	attributeName   []byte
	attributeValue  []byte
	cdata           []byte
	comment         []byte
	doctype         []byte
	entity          []byte
	procInstName    []byte
	procInstBody    []byte
	sgmlDeclaration []byte
	tagName         []byte
	textNode        []byte
	bufrefs         []bufferRef

	// position tracking
	position            int
	line                int
	column              int
	bufferCheckPosition int

	// partial trailing UTF-8 sequence from the previous chunk
	pending []byte
}

// New creates a Parser and emits the ready event. The zero
// configuration is lenient parsing with position tracking on, case
// preserved, and the default buffer bound.
func New(options ...Option) (*Parser, error) {
	p := &Parser{
		caseTransform:   CasePreserve,
		trackPosition:   true,
		maxBufferLength: DefaultMaxBufferLength,
	}

	var unquotedSet bool
	for _, o := range options {
		switch o.Ident() {
		case identStrict{}:
			p.strict = o.Value().(bool)
		case identCaseTransform{}:
			p.caseTransform = o.Value().(CaseTransform)
		case identTrim{}:
			p.trim = o.Value().(bool)
		case identNormalize{}:
			p.normalize = o.Value().(bool)
		case identNamespaces{}:
			p.namespaces = o.Value().(bool)
		case identTrackPosition{}:
			p.trackPosition = o.Value().(bool)
		case identStrictEntities{}:
			p.strictEntities = o.Value().(bool)
		case identUnquotedAttributeValues{}:
			p.unquotedAttributeValues = o.Value().(bool)
			unquotedSet = true
		case identUnparsedEntities{}:
			p.unparsedEntities = o.Value().(bool)
		case identAllowScript{}:
			p.allowScript = o.Value().(bool)
		case identMaxBufferLength{}:
			v := o.Value().(int)
			if v < 0 {
				return nil, errors.New("maxBufferLength must not be negative")
			}
			p.maxBufferLength = v
		case identSAX{}:
			p.sax = o.Value().(*SAX)
		case identUserData{}:
			p.userData = o.Value()
		case identTraceLogger{}:
			p.tlog = o.Value().(*slog.Logger)
		default:
			return nil, errors.Errorf("unknown option %T", o.Ident())
		}
	}

	if !unquotedSet {
		p.unquotedAttributeValues = !p.strict
	}
	if p.userData == nil {
		p.userData = p
	}
	p.bufrefs = p.makeBufferRefs()
	p.initialize()
	p.sax.Ready(p.userData)
	return p, nil
}

// Parse runs a parser over a complete document.
func Parse(data []byte, options ...Option) error {
	p, err := New(options...)
	if err != nil {
		return err
	}
	if err := p.Write(data); err != nil {
		return errors.Wrap(err, "failed to parse document")
	}
	return p.End()
}

func (p *Parser) initialize() {
	p.state = sBegin
	p.position = 0
	p.line = 1
	p.column = 0
	p.bufferCheckPosition = p.maxBufferLength
	p.ns = nil
	if p.namespaces {
		p.ns = newRootScope()
	}
	bs := pool.ByteSlice()
	for _, ref := range p.bufrefs {
		if *ref.b == nil {
			*ref.b = bs.Get()
		} else {
			*ref.b = (*ref.b)[:0]
		}
	}
}

// Write feeds a chunk of UTF-8 input. The whole chunk is processed
// before Write returns; handlers run inline. A trailing partial
// multi-byte sequence is retained for the next chunk. If a previous
// diagnostic is still latched, Write raises it without consuming
// input.
func (p *Parser) Write(b []byte) error {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}

	if p.err != nil {
		return p.err
	}
	if p.closed {
		p.fail(ErrWriteAfterClose)
		return p.err
	}

	data := b
	if len(p.pending) > 0 {
		data = append(p.pending, b...)
		p.pending = nil
	}

	for i := 0; i < len(data); {
		c, size := utf8.DecodeRune(data[i:])
		if c == utf8.RuneError && size == 1 {
			rest := data[i:]
			if len(rest) < utf8.UTFMax && !utf8.FullRune(rest) {
				// keep the partial sequence for the next chunk
				p.pending = append([]byte(nil), rest...)
				break
			}
		}
		i += size
		p.advance(c)
		if err := p.step(c); err != nil {
			return err
		}
	}

	if p.maxBufferLength > 0 && p.position >= p.bufferCheckPosition {
		p.checkBufferLength()
	}
	return nil
}

// WriteString feeds a chunk of text.
func (p *Parser) WriteString(s string) error {
	return p.Write([]byte(s))
}

// Flush forces emission of buffered text and CDATA without waiting
// for a markup boundary.
func (p *Parser) Flush() {
	p.flushBuffers()
}

// End asserts the input is complete: remaining text is flushed, an
// unclosed root or a truncated construct is diagnosed, and the end
// event fires. Writing after End fails.
func (p *Parser) End() error {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}

	if p.closed {
		p.fail(ErrWriteAfterClose)
		return p.err
	}

	if len(p.pending) > 0 {
		// a partial sequence can no longer be completed
		p.pending = nil
		p.advance(utf8.RuneError)
		if err := p.step(utf8.RuneError); err != nil {
			return err
		}
	}

	if p.sawRoot && !p.closedRoot {
		p.strictFail("Unclosed root tag")
	}
	if p.state != sBegin && p.state != sBeginWhitespace && p.state != sText {
		p.failMsg("Unexpected end")
	}
	p.closeText()
	p.closed = true
	p.sax.End(p.userData)
	return p.err
}

// Reset returns the parser to its initial state, keeping options and
// handlers, and re-emits the ready event.
func (p *Parser) Reset() {
	p.err = nil
	p.closed = false
	p.sawRoot = false
	p.closedRoot = false
	p.sawDoctype = false
	p.inScript = false
	p.tag = nil
	p.tags.Reset()
	p.attribList = p.attribList[:0]
	p.entityDepth = 0
	p.quote = 0
	p.startTagPosition = 0
	p.pending = nil
	p.initialize()
	p.sax.Ready(p.userData)
}

// Resume clears a latched diagnostic so feeding can continue.
func (p *Parser) Resume() {
	p.err = nil
}

// Err returns the currently latched diagnostic, if any.
func (p *Parser) Err() error {
	return p.err
}

// Release returns the internal buffers to the shared pool. The parser
// must not be used afterwards except through Reset.
func (p *Parser) Release() {
	bs := pool.ByteSlice()
	for _, ref := range p.bufrefs {
		if *ref.b != nil {
			bs.Put(*ref.b)
			*ref.b = nil
		}
	}
}

// SetUserData replaces the opaque value handed to handlers.
func (p *Parser) SetUserData(v Context) {
	p.userData = v
}

// Position returns the absolute codepoint offset consumed so far.
func (p *Parser) Position() int {
	return p.position
}

// Line returns the 1-based line of the most recent codepoint. Only
// meaningful when position tracking is on.
func (p *Parser) Line() int {
	return p.line
}

// Column returns the 1-based column of the most recent codepoint.
// Only meaningful when position tracking is on.
func (p *Parser) Column() int {
	return p.column
}
