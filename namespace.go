package sax

import (
	"strings"

	"github.com/lestrrat-go/sax/internal/orderedmap"
)

const (
	// XMLNamespace is the URI the xml prefix is permanently bound to.
	XMLNamespace = "http://www.w3.org/XML/1998/namespace"
	// XMLNSNamespace is the URI the xmlns prefix is permanently bound to.
	XMLNSNamespace = "http://www.w3.org/2000/xmlns/"
)

// Scope is a prefix to namespace URI binding set. Scopes chain to
// their parent; lookup walks from the innermost element outward. The
// root scope carries the reserved xml and xmlns bindings.
type Scope struct {
	parent   *Scope
	bindings *orderedmap.Map[string, string]
}

func newRootScope() *Scope {
	s := &Scope{bindings: orderedmap.New[string, string]()}
	_ = s.bindings.Set("xml", XMLNamespace)
	_ = s.bindings.Set("xmlns", XMLNSNamespace)
	return s
}

func (s *Scope) child() *Scope {
	return &Scope{parent: s, bindings: orderedmap.New[string, string]()}
}

// Lookup resolves prefix to a URI, consulting enclosing scopes. The
// empty prefix resolves to the default namespace, if one is declared.
func (s *Scope) Lookup(prefix string) (string, bool) {
	for c := s; c != nil; c = c.parent {
		if uri, ok := c.bindings.Get(prefix); ok {
			return uri, true
		}
	}
	return "", false
}

func (s *Scope) bind(prefix, uri string) {
	// a duplicate binding on the same element was already dropped as a
	// duplicate attribute
	_ = s.bindings.Set(prefix, uri)
}

// qname splits a qualified name into prefix and local part. The bare
// name "xmlns" declares the default namespace, so as an attribute it
// is treated as prefix "xmlns" with an empty local part.
func qname(name string, attribute bool) (string, string) {
	if attribute && name == "xmlns" {
		return "xmlns", ""
	}
	if i := strings.IndexByte(name, ':'); i >= 0 {
		return name[:i], name[i+1:]
	}
	return "", name
}
