package sax

import (
	"strings"

	"github.com/pkg/errors"
)

// DefaultMaxBufferLength is the per-buffer bound applied unless
// WithMaxBufferLength overrides it.
const DefaultMaxBufferLength = 64 * 1024

// A buffer never counts as overflowing at or below this length, however
// small the configured limit.
const minBufferLength = 10

type bufferRef struct {
	name string
	b    *[]byte
}

func (p *Parser) makeBufferRefs() []bufferRef {
	return []bufferRef{
		{"attributeName", &p.attributeName},
		{"attributeValue", &p.attributeValue},
		{"cdata", &p.cdata},
		{"comment", &p.comment},
		{"doctype", &p.doctype},
		{"entity", &p.entity},
		{"procInstName", &p.procInstName},
		{"procInstBody", &p.procInstBody},
		{"sgmlDeclaration", &p.sgmlDeclaration},
		{"tagName", &p.tagName},
		{"textNode", &p.textNode},
	}
}

// checkBufferLength enforces the buffer bound after a write crosses
// bufferCheckPosition. Text and CDATA can be emitted partially and
// cleared; any other buffer over the limit is a diagnostic. The next
// check is scheduled at the earliest position a buffer could overrun
// again.
func (p *Parser) checkBufferLength() {
	maxAllowed := p.maxBufferLength
	if maxAllowed < minBufferLength {
		maxAllowed = minBufferLength
	}
	var maxActual int
	for _, ref := range p.bufrefs {
		l := len(*ref.b)
		if l > maxAllowed {
			switch ref.name {
			case "textNode":
				p.closeText()
			case "cdata":
				p.sax.CDATA(p.userData, string(p.cdata))
				p.cdata = p.cdata[:0]
			default:
				p.fail(errors.New("Max buffer length exceeded: " + ref.name))
			}
		}
		if l > maxActual {
			maxActual = l
		}
	}
	p.bufferCheckPosition = p.maxBufferLength - maxActual + p.position
}

// flushBuffers forces out buffered text and CDATA without consuming
// more input.
func (p *Parser) flushBuffers() {
	p.closeText()
	if len(p.cdata) > 0 {
		p.sax.CDATA(p.userData, string(p.cdata))
		p.cdata = p.cdata[:0]
	}
}

// closeText ends the current text region: trim/normalize are applied,
// the event fires iff the result is non-empty, and the buffer resets.
func (p *Parser) closeText() {
	if len(p.textNode) == 0 {
		return
	}
	s := p.textopts(string(p.textNode))
	p.textNode = p.textNode[:0]
	if s != "" {
		p.sax.Text(p.userData, s)
	}
}

// emit flushes any pending text region, then delivers an event, so a
// text run always precedes the next non-text event.
func (p *Parser) emit(f func()) {
	p.closeText()
	f()
}

func (p *Parser) textopts(s string) string {
	if p.trim {
		s = strings.Trim(s, " \t\r\n")
	}
	if p.normalize {
		s = collapseWhitespace(s)
	}
	return s
}

// collapseWhitespace folds runs of ASCII whitespace into single
// spaces.
func collapseWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inRun := false
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\r', '\n':
			if !inRun {
				b.WriteByte(' ')
				inRun = true
			}
		default:
			b.WriteByte(s[i])
			inRun = false
		}
	}
	return b.String()
}
