package sax

// Context is an opaque value passed as the first argument of every
// handler invocation. It is whatever the application registered via
// WithUserData or SetUserData, or the *Parser itself by default.
type Context interface{}

// ProcInst is the payload of a processing instruction event.
type ProcInst struct {
	Name string
	Body string
}

// Namespace is the payload of namespace scope events.
type Namespace struct {
	Prefix string
	URI    string
}

type ReadyFunc func(Context)
type TextFunc func(Context, string)
type OpenTagStartFunc func(Context, *Tag)
type AttributeFunc func(Context, *Attribute)
type OpenTagFunc func(Context, *Tag)
type CloseTagFunc func(Context, string)
type OpenCDATAFunc func(Context)
type CDATAFunc func(Context, string)
type CloseCDATAFunc func(Context)
type CommentFunc func(Context, string)
type DoctypeFunc func(Context, string)
type ProcInstFunc func(Context, ProcInst)
type SGMLDeclarationFunc func(Context, string)
type OpenNamespaceFunc func(Context, Namespace)
type CloseNamespaceFunc func(Context, Namespace)
type ErrorFunc func(Context, error)
type EndFunc func(Context)

// SAX is the handler table the parser delivers events to. Any handler
// may be nil; missing handlers are no-ops. Handlers are invoked
// synchronously during Write/End/Flush, in source order of the
// corresponding constructs.
type SAX struct {
	ReadyHandler           ReadyFunc
	TextHandler            TextFunc
	OpenTagStartHandler    OpenTagStartFunc
	AttributeHandler       AttributeFunc
	OpenTagHandler         OpenTagFunc
	CloseTagHandler        CloseTagFunc
	OpenCDATAHandler       OpenCDATAFunc
	CDATAHandler           CDATAFunc
	CloseCDATAHandler      CloseCDATAFunc
	CommentHandler         CommentFunc
	DoctypeHandler         DoctypeFunc
	ProcInstHandler        ProcInstFunc
	SGMLDeclarationHandler SGMLDeclarationFunc
	OpenNamespaceHandler   OpenNamespaceFunc
	CloseNamespaceHandler  CloseNamespaceFunc
	ErrorHandler           ErrorFunc
	EndHandler             EndFunc
}

func (s *SAX) Ready(ctx Context) {
	if s == nil {
		return
	}
	if h := s.ReadyHandler; h != nil {
		h(ctx)
	}
}

func (s *SAX) Text(ctx Context, data string) {
	if s == nil {
		return
	}
	if h := s.TextHandler; h != nil {
		h(ctx, data)
	}
}

func (s *SAX) OpenTagStart(ctx Context, tag *Tag) {
	if s == nil {
		return
	}
	if h := s.OpenTagStartHandler; h != nil {
		h(ctx, tag)
	}
}

func (s *SAX) Attribute(ctx Context, attr *Attribute) {
	if s == nil {
		return
	}
	if h := s.AttributeHandler; h != nil {
		h(ctx, attr)
	}
}

func (s *SAX) OpenTag(ctx Context, tag *Tag) {
	if s == nil {
		return
	}
	if h := s.OpenTagHandler; h != nil {
		h(ctx, tag)
	}
}

func (s *SAX) CloseTag(ctx Context, name string) {
	if s == nil {
		return
	}
	if h := s.CloseTagHandler; h != nil {
		h(ctx, name)
	}
}

func (s *SAX) OpenCDATA(ctx Context) {
	if s == nil {
		return
	}
	if h := s.OpenCDATAHandler; h != nil {
		h(ctx)
	}
}

func (s *SAX) CDATA(ctx Context, data string) {
	if s == nil {
		return
	}
	if h := s.CDATAHandler; h != nil {
		h(ctx, data)
	}
}

func (s *SAX) CloseCDATA(ctx Context) {
	if s == nil {
		return
	}
	if h := s.CloseCDATAHandler; h != nil {
		h(ctx)
	}
}

func (s *SAX) Comment(ctx Context, data string) {
	if s == nil {
		return
	}
	if h := s.CommentHandler; h != nil {
		h(ctx, data)
	}
}

func (s *SAX) Doctype(ctx Context, data string) {
	if s == nil {
		return
	}
	if h := s.DoctypeHandler; h != nil {
		h(ctx, data)
	}
}

func (s *SAX) ProcessingInstruction(ctx Context, pi ProcInst) {
	if s == nil {
		return
	}
	if h := s.ProcInstHandler; h != nil {
		h(ctx, pi)
	}
}

func (s *SAX) SGMLDeclaration(ctx Context, data string) {
	if s == nil {
		return
	}
	if h := s.SGMLDeclarationHandler; h != nil {
		h(ctx, data)
	}
}

func (s *SAX) OpenNamespace(ctx Context, ns Namespace) {
	if s == nil {
		return
	}
	if h := s.OpenNamespaceHandler; h != nil {
		h(ctx, ns)
	}
}

func (s *SAX) CloseNamespace(ctx Context, ns Namespace) {
	if s == nil {
		return
	}
	if h := s.CloseNamespaceHandler; h != nil {
		h(ctx, ns)
	}
}

func (s *SAX) Error(ctx Context, err error) {
	if s == nil {
		return
	}
	if h := s.ErrorHandler; h != nil {
		h(ctx, err)
	}
}

func (s *SAX) End(ctx Context) {
	if s == nil {
		return
	}
	if h := s.EndHandler; h != nil {
		h(ctx)
	}
}
