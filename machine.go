package sax

import (
	"strings"
	"unicode/utf8"

	"github.com/lestrrat-go/sax/internal/chartab"
	"github.com/pkg/errors"
)

type parseState int

const (
	sBegin parseState = iota
	sBeginWhitespace
	sText
	sTextEntity
	sOpenWaka
	sSGMLDecl
	sSGMLDeclQuoted
	sDoctype
	sDoctypeQuoted
	sDoctypeDTD
	sDoctypeDTDQuoted
	sComment
	sCommentEnding
	sCommentEnded
	sCDATA
	sCDATAEnding
	sCDATAEnding2
	sProcInst
	sProcInstBody
	sProcInstEnding
	sOpenTag
	sOpenTagSlash
	sAttrib
	sAttribName
	sAttribNameSawWhite
	sAttribValue
	sAttribValueQuoted
	sAttribValueClosed
	sAttribValueUnquoted
	sAttribValueEntityQ
	sAttribValueEntityU
	sCloseTag
	sCloseTagSawWhite
	sScript
	sScriptEnding
)

// advance updates the position counters for one codepoint. The
// absolute position always advances (the buffer check schedule relies
// on it); line and column only when tracking is on.
func (p *Parser) advance(c rune) {
	p.position++
	if !p.trackPosition {
		return
	}
	if c == '\n' {
		p.line++
		p.column = 0
	} else {
		p.column++
	}
}

func (p *Parser) beginWhitespace(c rune) {
	if c == '<' {
		p.state = sOpenWaka
		p.startTagPosition = p.position
		return
	}
	if !chartab.IsWhitespace(c) {
		// in lenient mode deal with the dropped-prolog case
		p.strictFail("Non-whitespace before first tag")
		p.textNode = utf8.AppendRune(p.textNode[:0], c)
		p.state = sText
	}
}

// step feeds one codepoint to the state machine. The returned error is
// reserved for structural failures; syntax diagnostics go through the
// soft error path.
func (p *Parser) step(c rune) error {
	switch p.state {
	case sBegin:
		p.state = sBeginWhitespace
		if c == 0xFEFF {
			return nil
		}
		p.beginWhitespace(c)

	case sBeginWhitespace:
		p.beginWhitespace(c)

	case sText:
		if c == '<' && !(p.sawRoot && p.closedRoot && !p.strict) {
			p.state = sOpenWaka
			p.startTagPosition = p.position
			return nil
		}
		if !chartab.IsWhitespace(c) && (!p.sawRoot || p.closedRoot) {
			p.strictFail("Text data outside of root node")
		}
		if c == '&' {
			p.entity = p.entity[:0]
			p.state = sTextEntity
		} else {
			p.textNode = utf8.AppendRune(p.textNode, c)
		}

	case sScript:
		if c == '<' {
			p.state = sScriptEnding
		} else {
			p.textNode = utf8.AppendRune(p.textNode, c)
		}

	case sScriptEnding:
		if c == '/' {
			p.tagName = p.tagName[:0]
			p.state = sCloseTag
		} else {
			p.textNode = append(p.textNode, '<')
			p.textNode = utf8.AppendRune(p.textNode, c)
			p.state = sScript
		}

	case sOpenWaka:
		switch {
		case c == '!':
			p.state = sSGMLDecl
			p.sgmlDeclaration = p.sgmlDeclaration[:0]
		case chartab.IsWhitespace(c):
			// wait for the dispatch character
		case chartab.IsNameStart(c):
			p.state = sOpenTag
			p.tagName = utf8.AppendRune(p.tagName[:0], c)
		case c == '/':
			p.state = sCloseTag
			p.tagName = p.tagName[:0]
		case c == '?':
			p.state = sProcInst
			p.procInstName = p.procInstName[:0]
			p.procInstBody = p.procInstBody[:0]
		default:
			p.strictFail("Unencoded <")
			p.textNode = append(p.textNode, '<')
			// restore any whitespace swallowed since the <
			if pad := p.position - p.startTagPosition; pad > 1 {
				for i := 0; i < pad-1; i++ {
					p.textNode = append(p.textNode, ' ')
				}
			}
			p.textNode = utf8.AppendRune(p.textNode, c)
			p.state = sText
		}

	case sSGMLDecl:
		acc := string(p.sgmlDeclaration)
		switch {
		case acc+string(c) == "--":
			p.state = sComment
			p.comment = p.comment[:0]
			p.sgmlDeclaration = p.sgmlDeclaration[:0]
		case p.doctypeInProgress() && len(p.sgmlDeclaration) > 0:
			// markup declarations inside the internal subset stay part
			// of the doctype body
			p.state = sDoctypeDTD
			p.doctype = append(p.doctype, "<!"...)
			p.doctype = append(p.doctype, p.sgmlDeclaration...)
			p.doctype = utf8.AppendRune(p.doctype, c)
			p.sgmlDeclaration = p.sgmlDeclaration[:0]
		case strings.EqualFold(acc+string(c), "[CDATA["):
			p.emit(func() { p.sax.OpenCDATA(p.userData) })
			p.state = sCDATA
			p.sgmlDeclaration = p.sgmlDeclaration[:0]
			p.cdata = p.cdata[:0]
		case strings.EqualFold(acc+string(c), "DOCTYPE"):
			if p.sawDoctype || len(p.doctype) > 0 || p.sawRoot {
				p.strictFail("Inappropriately located doctype declaration")
			}
			p.state = sDoctype
			p.sgmlDeclaration = p.sgmlDeclaration[:0]
		case c == '>':
			decl := string(p.sgmlDeclaration)
			p.emit(func() { p.sax.SGMLDeclaration(p.userData, decl) })
			p.sgmlDeclaration = p.sgmlDeclaration[:0]
			p.state = sText
		case chartab.IsQuote(c):
			p.state = sSGMLDeclQuoted
			p.quote = c
			p.sgmlDeclaration = utf8.AppendRune(p.sgmlDeclaration, c)
		default:
			p.sgmlDeclaration = utf8.AppendRune(p.sgmlDeclaration, c)
		}

	case sSGMLDeclQuoted:
		if c == p.quote {
			p.state = sSGMLDecl
			p.quote = 0
		}
		p.sgmlDeclaration = utf8.AppendRune(p.sgmlDeclaration, c)

	case sDoctype:
		if c == '>' {
			doctype := string(p.doctype)
			p.emit(func() { p.sax.Doctype(p.userData, doctype) })
			p.sawDoctype = true
			p.doctype = p.doctype[:0]
			p.state = sText
			return nil
		}
		p.doctype = utf8.AppendRune(p.doctype, c)
		if c == '[' {
			p.state = sDoctypeDTD
		} else if chartab.IsQuote(c) {
			p.state = sDoctypeQuoted
			p.quote = c
		}

	case sDoctypeQuoted:
		p.doctype = utf8.AppendRune(p.doctype, c)
		if c == p.quote {
			p.quote = 0
			p.state = sDoctype
		}

	case sDoctypeDTD:
		switch {
		case c == ']':
			p.doctype = append(p.doctype, ']')
			p.state = sDoctype
		case c == '<':
			p.state = sOpenWaka
			p.startTagPosition = p.position
		case chartab.IsQuote(c):
			p.doctype = utf8.AppendRune(p.doctype, c)
			p.state = sDoctypeDTDQuoted
			p.quote = c
		default:
			p.doctype = utf8.AppendRune(p.doctype, c)
		}

	case sDoctypeDTDQuoted:
		p.doctype = utf8.AppendRune(p.doctype, c)
		if c == p.quote {
			p.state = sDoctypeDTD
			p.quote = 0
		}

	case sComment:
		if c == '-' {
			p.state = sCommentEnding
		} else {
			p.comment = utf8.AppendRune(p.comment, c)
		}

	case sCommentEnding:
		if c == '-' {
			p.state = sCommentEnded
			if s := p.textopts(string(p.comment)); s != "" {
				p.emit(func() { p.sax.Comment(p.userData, s) })
			}
			p.comment = p.comment[:0]
		} else {
			p.comment = append(p.comment, '-')
			p.comment = utf8.AppendRune(p.comment, c)
			p.state = sComment
		}

	case sCommentEnded:
		if c != '>' {
			p.strictFail("Malformed comment")
			// -- was not the end of this comment after all
			p.comment = append(p.comment, "--"...)
			p.comment = utf8.AppendRune(p.comment, c)
			p.state = sComment
		} else if p.doctypeInProgress() {
			p.state = sDoctypeDTD
		} else {
			p.state = sText
		}

	case sCDATA:
		if c == ']' {
			p.state = sCDATAEnding
		} else {
			p.cdata = utf8.AppendRune(p.cdata, c)
		}

	case sCDATAEnding:
		if c == ']' {
			p.state = sCDATAEnding2
		} else {
			p.cdata = append(p.cdata, ']')
			p.cdata = utf8.AppendRune(p.cdata, c)
			p.state = sCDATA
		}

	case sCDATAEnding2:
		switch {
		case c == '>':
			if len(p.cdata) > 0 {
				data := string(p.cdata)
				p.emit(func() { p.sax.CDATA(p.userData, data) })
			}
			p.emit(func() { p.sax.CloseCDATA(p.userData) })
			p.cdata = p.cdata[:0]
			p.state = sText
		case c == ']':
			// still looking at a run of ], emit one and keep waiting
			p.cdata = append(p.cdata, ']')
		default:
			p.cdata = append(p.cdata, "]]"...)
			p.cdata = utf8.AppendRune(p.cdata, c)
			p.state = sCDATA
		}

	case sProcInst:
		switch {
		case c == '?':
			p.state = sProcInstEnding
		case chartab.IsWhitespace(c):
			p.state = sProcInstBody
		default:
			p.procInstName = utf8.AppendRune(p.procInstName, c)
		}

	case sProcInstBody:
		if len(p.procInstBody) == 0 && chartab.IsWhitespace(c) {
			return nil
		}
		if c == '?' {
			p.state = sProcInstEnding
		} else {
			p.procInstBody = utf8.AppendRune(p.procInstBody, c)
		}

	case sProcInstEnding:
		if c == '>' {
			pi := ProcInst{Name: string(p.procInstName), Body: string(p.procInstBody)}
			p.emit(func() { p.sax.ProcessingInstruction(p.userData, pi) })
			p.procInstName = p.procInstName[:0]
			p.procInstBody = p.procInstBody[:0]
			p.state = sText
		} else {
			p.procInstBody = append(p.procInstBody, '?')
			p.procInstBody = utf8.AppendRune(p.procInstBody, c)
			p.state = sProcInstBody
		}

	case sOpenTag:
		if chartab.IsNameBody(c) {
			p.tagName = utf8.AppendRune(p.tagName, c)
			return nil
		}
		p.newTag()
		switch {
		case c == '>':
			p.openTag(false)
		case c == '/':
			p.state = sOpenTagSlash
		default:
			if !chartab.IsWhitespace(c) {
				p.strictFail("Invalid character in tag name")
			}
			p.state = sAttrib
		}

	case sOpenTagSlash:
		if c == '>' {
			p.openTag(true)
			p.closeTag()
		} else {
			p.strictFail("Forward-slash in opening tag not followed by >")
			p.state = sAttrib
		}

	case sAttrib:
		switch {
		case chartab.IsWhitespace(c):
		case c == '>':
			p.openTag(false)
		case c == '/':
			p.state = sOpenTagSlash
		case chartab.IsNameStart(c):
			p.attributeName = utf8.AppendRune(p.attributeName[:0], c)
			p.attributeValue = p.attributeValue[:0]
			p.state = sAttribName
		default:
			p.strictFail("Invalid attribute name")
		}

	case sAttribName:
		switch {
		case c == '=':
			p.state = sAttribValue
		case c == '>':
			p.strictFail("Attribute without value")
			p.attributeValue = append(p.attributeValue[:0], p.attributeName...)
			p.processAttribute()
			p.openTag(false)
		case chartab.IsWhitespace(c):
			p.state = sAttribNameSawWhite
		case chartab.IsNameBody(c):
			p.attributeName = utf8.AppendRune(p.attributeName, c)
		default:
			p.strictFail("Invalid attribute name")
		}

	case sAttribNameSawWhite:
		switch {
		case c == '=':
			p.state = sAttribValue
		case chartab.IsWhitespace(c):
		default:
			p.strictFail("Attribute without value")
			p.attributeValue = p.attributeValue[:0]
			p.processAttribute()
			switch {
			case c == '>':
				p.openTag(false)
			case chartab.IsNameStart(c):
				p.attributeName = utf8.AppendRune(p.attributeName[:0], c)
				p.state = sAttribName
			default:
				p.strictFail("Invalid attribute name")
				p.state = sAttrib
			}
		}

	case sAttribValue:
		switch {
		case chartab.IsWhitespace(c):
		case chartab.IsQuote(c):
			p.quote = c
			p.state = sAttribValueQuoted
		default:
			if !p.unquotedAttributeValues {
				p.failMsg("Unquoted attribute value")
			}
			p.state = sAttribValueUnquoted
			p.attributeValue = utf8.AppendRune(p.attributeValue[:0], c)
		}

	case sAttribValueQuoted:
		if c != p.quote {
			if c == '&' {
				p.entity = p.entity[:0]
				p.state = sAttribValueEntityQ
			} else {
				p.attributeValue = utf8.AppendRune(p.attributeValue, c)
			}
			return nil
		}
		p.processAttribute()
		p.quote = 0
		p.state = sAttribValueClosed

	case sAttribValueClosed:
		switch {
		case chartab.IsWhitespace(c):
			p.state = sAttrib
		case c == '>':
			p.openTag(false)
		case c == '/':
			p.state = sOpenTagSlash
		case chartab.IsNameStart(c):
			p.strictFail("No whitespace between attributes")
			p.attributeName = utf8.AppendRune(p.attributeName[:0], c)
			p.attributeValue = p.attributeValue[:0]
			p.state = sAttribName
		default:
			p.strictFail("Invalid attribute name")
		}

	case sAttribValueUnquoted:
		switch {
		case c == '&':
			p.entity = p.entity[:0]
			p.state = sAttribValueEntityU
		case c != '>' && !chartab.IsWhitespace(c):
			p.attributeValue = utf8.AppendRune(p.attributeValue, c)
		default:
			p.processAttribute()
			if c == '>' {
				p.openTag(false)
			} else {
				p.state = sAttrib
			}
		}

	case sCloseTag:
		switch {
		case len(p.tagName) == 0:
			switch {
			case chartab.IsWhitespace(c):
			case !chartab.IsNameStart(c):
				if p.inScript {
					p.textNode = append(p.textNode, "</"...)
					p.textNode = utf8.AppendRune(p.textNode, c)
					p.state = sScript
				} else if c == '>' {
					p.closeTag()
				} else {
					p.strictFail("Invalid tagname in closing tag")
				}
			default:
				p.tagName = utf8.AppendRune(p.tagName, c)
			}
		case c == '>':
			p.closeTag()
		case chartab.IsNameBody(c):
			p.tagName = utf8.AppendRune(p.tagName, c)
		case p.inScript:
			p.textNode = append(p.textNode, "</"...)
			p.textNode = append(p.textNode, p.tagName...)
			p.textNode = utf8.AppendRune(p.textNode, c)
			p.tagName = p.tagName[:0]
			p.state = sScript
		default:
			if !chartab.IsWhitespace(c) {
				p.strictFail("Invalid tagname in closing tag")
			}
			p.state = sCloseTagSawWhite
		}

	case sCloseTagSawWhite:
		switch {
		case chartab.IsWhitespace(c):
		case c == '>':
			p.closeTag()
		default:
			p.strictFail("Invalid characters in closing tag")
		}

	case sTextEntity, sAttribValueEntityQ, sAttribValueEntityU:
		var returnState parseState
		var buf *[]byte
		switch p.state {
		case sTextEntity:
			returnState = sText
			buf = &p.textNode
		case sAttribValueEntityQ:
			returnState = sAttribValueQuoted
			buf = &p.attributeValue
		case sAttribValueEntityU:
			returnState = sAttribValueUnquoted
			buf = &p.attributeValue
		}

		switch {
		case c == ';':
			parsed, ok := p.resolveEntity()
			if !ok {
				p.strictFail("Invalid character entity")
				*buf = append(*buf, '&')
				*buf = append(*buf, p.entity...)
				*buf = append(*buf, ';')
				p.entity = p.entity[:0]
				p.state = returnState
				return nil
			}
			p.entity = p.entity[:0]
			p.state = returnState
			if p.unparsedEntities && !isPredefinedText(parsed) {
				p.refeed(parsed, buf)
			} else {
				*buf = append(*buf, parsed...)
			}
		case entityNameOK(len(p.entity) > 0, c):
			p.entity = utf8.AppendRune(p.entity, c)
		default:
			p.strictFail("Invalid character in entity name")
			*buf = append(*buf, '&')
			*buf = append(*buf, p.entity...)
			*buf = utf8.AppendRune(*buf, c)
			p.entity = p.entity[:0]
			p.state = returnState
		}

	default:
		p.err = errors.Errorf("Unknown state: %d", p.state)
		return p.err
	}
	return nil
}

func entityNameOK(started bool, c rune) bool {
	if started {
		return chartab.IsEntityBody(c)
	}
	return chartab.IsEntityStart(c)
}

// doctypeInProgress reports whether a doctype body is being
// accumulated but has not been emitted yet.
func (p *Parser) doctypeInProgress() bool {
	return len(p.doctype) > 0 && !p.sawDoctype
}
