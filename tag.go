package sax

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/lestrrat-go/pdebug/v3"
	"github.com/lestrrat-go/sax/internal/orderedmap"
)

// Attribute is a single parsed attribute. Prefix, Local and URI are
// only populated when namespace resolution is enabled.
type Attribute struct {
	Name   string
	Value  string
	Prefix string
	Local  string
	URI    string
}

// Tag is an open element. Attributes preserves document order. Prefix,
// Local and URI are only populated when namespace resolution is
// enabled.
type Tag struct {
	Name          string
	Attributes    *orderedmap.Map[string, *Attribute]
	IsSelfClosing bool
	Prefix        string
	Local         string
	URI           string

	ns *Scope
}

// Attr returns the named attribute, if present.
func (t *Tag) Attr(name string) (*Attribute, bool) {
	return t.Attributes.Get(name)
}

type deferredAttribute struct {
	name  string
	value string
}

func (p *Parser) transformName(name string) string {
	if p.strict {
		return name
	}
	switch p.caseTransform {
	case CaseLower:
		return strings.ToLower(name)
	case CaseUpper:
		return strings.ToUpper(name)
	}
	return name
}

// currentScope is the namespace scope in effect outside the tag being
// built: the innermost open element's, or the root scope.
func (p *Parser) currentScope() *Scope {
	if t, ok := p.tags.Peek(); ok {
		return t.ns
	}
	return p.ns
}

// newTag commits the accumulated tag name to a pending Tag and
// announces it. Attributes follow before the tag is opened.
func (p *Parser) newTag() {
	name := p.transformName(string(p.tagName))
	tag := &Tag{
		Name:       name,
		Attributes: orderedmap.New[string, *Attribute](),
	}
	if p.namespaces {
		tag.ns = p.currentScope()
	}
	p.tag = tag
	p.attribList = p.attribList[:0]
	p.emit(func() { p.sax.OpenTagStart(p.userData, tag) })
}

func (p *Parser) haveAttribute(name string) bool {
	for i := range p.attribList {
		if p.attribList[i].name == name {
			return true
		}
	}
	return p.tag.Attributes.Has(name)
}

// processAttribute commits the accumulated attribute name/value pair.
// Duplicates of an earlier attribute on the same element are dropped
// silently. With namespaces on, the pair is deferred until openTag so
// that xmlns bindings on this element are in scope when it is
// resolved.
func (p *Parser) processAttribute() {
	name := p.transformName(string(p.attributeName))
	value := string(p.attributeValue)
	p.attributeName = p.attributeName[:0]
	p.attributeValue = p.attributeValue[:0]

	if p.haveAttribute(name) {
		return
	}

	if !p.namespaces {
		attr := &Attribute{Name: name, Value: value}
		_ = p.tag.Attributes.Set(name, attr)
		p.emit(func() { p.sax.Attribute(p.userData, attr) })
		return
	}

	prefix, local := qname(name, true)
	if prefix == "xmlns" {
		switch {
		case local == "xml" && value != XMLNamespace:
			p.strictFail("xml: prefix must be bound to " + XMLNamespace)
		case local == "xmlns" && value != XMLNSNamespace:
			p.strictFail("xmlns: prefix must be bound to " + XMLNSNamespace)
		default:
			// this element introduces a binding; give it its own child
			// scope if it is still sharing the parent's
			if parent := p.currentScope(); p.tag.ns == parent {
				p.tag.ns = parent.child()
			}
			p.tag.ns.bind(local, value)
		}
	}
	p.attribList = append(p.attribList, deferredAttribute{name: name, value: value})
}

// openTag resolves namespaces, flushes deferred attributes, pushes the
// tag and emits it.
func (p *Parser) openTag(selfClosing bool) {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}

	tag := p.tag
	if p.namespaces {
		prefix, local := qname(tag.Name, false)
		tag.Prefix = prefix
		tag.Local = local
		if uri, ok := tag.ns.Lookup(prefix); ok {
			tag.URI = uri
		} else if prefix != "" {
			p.strictFail("Unbound namespace prefix: " + strconv.Quote(tag.Name))
			tag.URI = prefix
		}

		if tag.ns != p.currentScope() {
			for prefix, uri := range tag.ns.bindings.Range() {
				p.emit(func() { p.sax.OpenNamespace(p.userData, Namespace{Prefix: prefix, URI: uri}) })
			}
		}

		for i := range p.attribList {
			da := p.attribList[i]
			aprefix, alocal := qname(da.name, true)
			var auri string
			if aprefix != "" {
				// attributes never inherit the default namespace
				if uri, ok := tag.ns.Lookup(aprefix); ok {
					auri = uri
				} else if aprefix != "xmlns" {
					p.strictFail("Unbound namespace prefix: " + strconv.Quote(da.name))
					auri = aprefix
				}
			}
			attr := &Attribute{
				Name:   da.name,
				Value:  da.value,
				Prefix: aprefix,
				Local:  alocal,
				URI:    auri,
			}
			_ = tag.Attributes.Set(da.name, attr)
			p.emit(func() { p.sax.Attribute(p.userData, attr) })
		}
		p.attribList = p.attribList[:0]
	}

	tag.IsSelfClosing = selfClosing
	p.sawRoot = true
	p.tags.Push(tag)
	p.trace().Debug("open tag", slog.String("name", tag.Name))
	p.emit(func() { p.sax.OpenTag(p.userData, tag) })
	if !selfClosing {
		if p.allowScript && !p.strict && strings.EqualFold(string(p.tagName), "script") {
			p.state = sScript
			p.inScript = true
		} else {
			p.state = sText
		}
		p.tag = nil
		p.tagName = p.tagName[:0]
	}
	p.attributeName = p.attributeName[:0]
	p.attributeValue = p.attributeValue[:0]
	p.attribList = p.attribList[:0]
}

// closeTag pops the stack down to the named element. Mismatched
// intervening tags are closed on the way; an unmatched name degrades
// to literal text.
func (p *Parser) closeTag() {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}

	if len(p.tagName) == 0 {
		p.strictFail("Weird empty close tag")
		p.textNode = append(p.textNode, "</>"...)
		p.state = sText
		return
	}

	if p.inScript {
		if !strings.EqualFold(string(p.tagName), "script") {
			p.textNode = append(p.textNode, "</"...)
			p.textNode = append(p.textNode, p.tagName...)
			p.textNode = append(p.textNode, '>')
			p.tagName = p.tagName[:0]
			p.state = sScript
			return
		}
		p.inScript = false
	}

	name := p.transformName(string(p.tagName))
	idx := -1
	for i := p.tags.Len() - 1; i >= 0; i-- {
		if p.tags.At(i).Name == name {
			idx = i
			break
		}
		p.strictFail("Unexpected close tag")
	}

	if idx < 0 {
		p.strictFail("Unmatched closing tag: " + name)
		p.textNode = append(p.textNode, "</"...)
		p.textNode = append(p.textNode, name...)
		p.textNode = append(p.textNode, '>')
		p.tagName = p.tagName[:0]
		p.state = sText
		return
	}

	for p.tags.Len() > idx {
		tag, _ := p.tags.Pop()
		p.tag = tag
		p.trace().Debug("close tag", slog.String("name", tag.Name))
		p.emit(func() { p.sax.CloseTag(p.userData, tag.Name) })
		if p.namespaces && tag.ns != p.currentScope() {
			for prefix, uri := range tag.ns.bindings.Range() {
				p.emit(func() { p.sax.CloseNamespace(p.userData, Namespace{Prefix: prefix, URI: uri}) })
			}
		}
	}
	if idx == 0 {
		p.closedRoot = true
	}

	p.tag = nil
	p.tagName = p.tagName[:0]
	p.attributeName = p.attributeName[:0]
	p.attributeValue = p.attributeValue[:0]
	p.attribList = p.attribList[:0]
	p.state = sText
}
