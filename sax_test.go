package sax_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lestrrat-go/sax"
	"github.com/stretchr/testify/require"
)

// recorder collects events as printable strings so whole streams can
// be compared at once.
type recorder struct {
	events []string
	errors []error
	tags   []*sax.Tag
}

func (r *recorder) add(format string, args ...interface{}) {
	r.events = append(r.events, fmt.Sprintf(format, args...))
}

// baseMessage strips the positional decoration off a diagnostic.
func baseMessage(err error) string {
	var pe sax.ParseError
	if errors.As(err, &pe) {
		return pe.Err.Error()
	}
	return err.Error()
}

func (r *recorder) handler() *sax.SAX {
	return &sax.SAX{
		TextHandler: func(_ sax.Context, s string) {
			r.add("text(%s)", s)
		},
		OpenTagStartHandler: func(_ sax.Context, t *sax.Tag) {
			r.add("openTagStart(%s)", t.Name)
		},
		AttributeHandler: func(_ sax.Context, a *sax.Attribute) {
			if a.Prefix != "" || a.URI != "" {
				r.add("attribute(%s=%s;prefix=%s;local=%s;uri=%s)", a.Name, a.Value, a.Prefix, a.Local, a.URI)
				return
			}
			r.add("attribute(%s=%s)", a.Name, a.Value)
		},
		OpenTagHandler: func(_ sax.Context, t *sax.Tag) {
			r.tags = append(r.tags, t)
			r.add("openTag(%s,self=%t)", t.Name, t.IsSelfClosing)
		},
		CloseTagHandler: func(_ sax.Context, name string) {
			r.add("closeTag(%s)", name)
		},
		OpenCDATAHandler: func(_ sax.Context) {
			r.add("openCdata")
		},
		CDATAHandler: func(_ sax.Context, s string) {
			r.add("cdata(%s)", s)
		},
		CloseCDATAHandler: func(_ sax.Context) {
			r.add("closeCdata")
		},
		CommentHandler: func(_ sax.Context, s string) {
			r.add("comment(%s)", s)
		},
		DoctypeHandler: func(_ sax.Context, s string) {
			r.add("doctype(%s)", s)
		},
		ProcInstHandler: func(_ sax.Context, pi sax.ProcInst) {
			r.add("pi(%s=%s)", pi.Name, pi.Body)
		},
		SGMLDeclarationHandler: func(_ sax.Context, s string) {
			r.add("sgmlDecl(%s)", s)
		},
		OpenNamespaceHandler: func(_ sax.Context, ns sax.Namespace) {
			r.add("openNamespace(%s=%s)", ns.Prefix, ns.URI)
		},
		CloseNamespaceHandler: func(_ sax.Context, ns sax.Namespace) {
			r.add("closeNamespace(%s=%s)", ns.Prefix, ns.URI)
		},
		ErrorHandler: func(_ sax.Context, err error) {
			r.errors = append(r.errors, err)
			r.add("error(%s)", baseMessage(err))
		},
		EndHandler: func(_ sax.Context) {
			r.add("end")
		},
	}
}

// collect parses the input in the given chunks, one write per chunk,
// and returns the event stream. A latched diagnostic is cleared after
// each chunk so the rest of the input is still parsed.
func collect(t *testing.T, chunks []string, options ...sax.Option) *recorder {
	t.Helper()
	rec := &recorder{}
	p, err := sax.New(append(options, sax.WithSAX(rec.handler()))...)
	require.NoError(t, err, "sax.New should succeed")
	for _, chunk := range chunks {
		p.WriteString(chunk)
		p.Resume()
	}
	p.End()
	return rec
}

func TestSimpleStrictDocument(t *testing.T) {
	rec := collect(t, []string{`<x>y</x>`}, sax.WithStrict(true))
	require.Equal(t, []string{
		"openTagStart(x)",
		"openTag(x,self=false)",
		"text(y)",
		"closeTag(x)",
		"end",
	}, rec.events)
	require.Empty(t, rec.errors)
}

func TestUppercaseAttributes(t *testing.T) {
	rec := collect(t,
		[]string{`<span class="test" hello="world"></span>`},
		sax.WithCaseTransform(sax.CaseUpper),
	)
	require.Equal(t, []string{
		"openTagStart(SPAN)",
		"attribute(CLASS=test)",
		"attribute(HELLO=world)",
		"openTag(SPAN,self=false)",
		"closeTag(SPAN)",
		"end",
	}, rec.events)

	require.Len(t, rec.tags, 1)
	tag := rec.tags[0]
	require.Equal(t, 2, tag.Attributes.Len())
	a, ok := tag.Attr("CLASS")
	require.True(t, ok)
	require.Equal(t, "test", a.Value)
	a, ok = tag.Attr("HELLO")
	require.True(t, ok)
	require.Equal(t, "world", a.Value)
}

func TestChunkedCDATA(t *testing.T) {
	rec := collect(t, []string{
		`<r><![CDATA[ this is `,
		`character data  `,
		`]]></r>`,
	})
	require.Equal(t, []string{
		"openTagStart(r)",
		"openTag(r,self=false)",
		"openCdata",
		"cdata( this is character data  )",
		"closeCdata",
		"closeTag(r)",
		"end",
	}, rec.events)
}

func TestCDATAFakeEnd(t *testing.T) {
	const input = `<r><![CDATA[[[[[[[[[]]]]]]]]]]></r>`
	const body = `[[[[[[[[]]]]]]]]`

	expected := []string{
		"openTagStart(r)",
		"openTag(r,self=false)",
		"openCdata",
		"cdata(" + body + ")",
		"closeCdata",
		"closeTag(r)",
		"end",
	}

	t.Run("single write", func(t *testing.T) {
		rec := collect(t, []string{input})
		require.Equal(t, expected, rec.events)
	})
	t.Run("one char at a time", func(t *testing.T) {
		var chunks []string
		for _, c := range input {
			chunks = append(chunks, string(c))
		}
		rec := collect(t, chunks)
		require.Equal(t, expected, rec.events)
	})
}

func TestEntityMerge(t *testing.T) {
	const input = `<r>&rfloor; &spades; &copy; &rarr; &amp; &lt; < <  <   < &gt; &real; &weierp; &euro;</r>`
	rec := collect(t, []string{input})
	require.Equal(t, []string{
		"openTagStart(r)",
		"openTag(r,self=false)",
		"text(⌋ ♠ © → & < < <  <   < > ℜ ℘ €)",
		"closeTag(r)",
		"end",
	}, rec.events)
}

func TestNamespaceDeferral(t *testing.T) {
	rec := collect(t,
		[]string{`<a xmlns:p="http://ex/" p:x="1"/>`},
		sax.WithNamespaces(true),
	)
	require.Equal(t, []string{
		"openTagStart(a)",
		"openNamespace(p=http://ex/)",
		"attribute(xmlns:p=http://ex/;prefix=xmlns;local=p;uri=" + sax.XMLNSNamespace + ")",
		"attribute(p:x=1;prefix=p;local=x;uri=http://ex/)",
		"openTag(a,self=true)",
		"closeTag(a)",
		"closeNamespace(p=http://ex/)",
		"end",
	}, rec.events)
}

func TestNumericEntityEdgeCases(t *testing.T) {
	inputs := map[string]string{
		`<r>&#1114112;</r>`: `&#1114112;`,
		`<r>&#-1;</r>`:      `&#-1;`,
		`<r>&#NaN;</r>`:     `&#NaN;`,
	}

	for input, text := range inputs {
		t.Run(input, func(t *testing.T) {
			rec := collect(t, []string{input})
			require.Equal(t, []string{
				"openTagStart(r)",
				"openTag(r,self=false)",
				"text(" + text + ")",
				"closeTag(r)",
				"end",
			}, rec.events, "lenient mode keeps the literal reference")
			require.Empty(t, rec.errors)

			rec = collect(t, []string{input}, sax.WithStrict(true))
			require.Contains(t, rec.events, "error(Invalid character entity)")
			require.Contains(t, rec.events, "text("+text+")")
		})
	}
}

func TestFlushMidText(t *testing.T) {
	rec := &recorder{}
	p, err := sax.New(sax.WithSAX(rec.handler()))
	require.NoError(t, err)

	require.NoError(t, p.WriteString(`<T>flush`))
	p.Flush()
	require.NoError(t, p.WriteString(`rest</T>`))
	require.NoError(t, p.End())

	require.Equal(t, []string{
		"openTagStart(T)",
		"openTag(T,self=false)",
		"text(flush)",
		"text(rest)",
		"closeTag(T)",
		"end",
	}, rec.events)
}

func TestChunkInvariance(t *testing.T) {
	inputs := []string{
		`<x>y</x>`,
		`<r><![CDATA[a]]b]]></r>`,
		`<a href="x&amp;y">t</a>`,
		`<!-- comment --><r/>`,
		`<?pi body?><r>&copy;</r>`,
		`<r xmlns:q="u"><q:a q:b="1"/></r>`,
		`<!DOCTYPE html [<!ENTITY x "y">]><r/>`,
		"\xef\xbb\xbf<r>bom</r>",
	}

	options := []sax.Option{sax.WithNamespaces(true)}
	for _, input := range inputs {
		whole := collect(t, []string{input}, options...)
		runes := []rune(input)
		for split := 1; split < len(runes); split++ {
			chunked := collect(t, []string{string(runes[:split]), string(runes[split:])}, options...)
			require.Equal(t, whole.events, chunked.events,
				"event stream should not depend on the chunking (input %q, split %d)", input, split)
		}
	}
}

func TestSplitUTF8Sequence(t *testing.T) {
	input := []byte(`<r>héllo — ⌘</r>`)
	whole := &recorder{}
	p, err := sax.New(sax.WithSAX(whole.handler()))
	require.NoError(t, err)
	require.NoError(t, p.Write(input))
	require.NoError(t, p.End())

	for split := 1; split < len(input); split++ {
		rec := &recorder{}
		p, err := sax.New(sax.WithSAX(rec.handler()))
		require.NoError(t, err)
		require.NoError(t, p.Write(input[:split]))
		require.NoError(t, p.Write(input[split:]))
		require.NoError(t, p.End())
		require.Equal(t, whole.events, rec.events,
			"multi-byte sequences may be split at any byte (split %d)", split)
	}
}

func TestLifecycle(t *testing.T) {
	var ready int
	rec := &recorder{}
	h := rec.handler()
	h.ReadyHandler = func(_ sax.Context) { ready++ }

	p, err := sax.New(sax.WithSAX(h), sax.WithStrict(true))
	require.NoError(t, err)
	require.Equal(t, 1, ready, "ready should fire on construction")

	require.NoError(t, p.WriteString(`<a/>`))
	require.NoError(t, p.End())

	err = p.WriteString(`<b/>`)
	require.Error(t, err, "writing after End should fail")
	require.Contains(t, err.Error(), "Cannot write after close")

	p.Reset()
	require.Equal(t, 2, ready, "ready should fire again on Reset")
	require.NoError(t, p.WriteString(`<c>text</c>`))
	require.NoError(t, p.End())
	require.Contains(t, rec.events, "closeTag(c)")
}

func TestResumeClearsLatchedError(t *testing.T) {
	rec := &recorder{}
	p, err := sax.New(sax.WithSAX(rec.handler()), sax.WithStrict(true))
	require.NoError(t, err)

	require.NoError(t, p.WriteString(`text-before-root`))
	require.Error(t, p.Err(), "strict mode should latch the diagnostic")

	err = p.WriteString(`<r/>`)
	require.Error(t, err, "a latched error raises on the next write")

	p.Resume()
	require.NoError(t, p.WriteString(`<r/>`))
}

func TestParseConvenience(t *testing.T) {
	rec := &recorder{}
	require.NoError(t, sax.Parse([]byte(`<a><b/></a>`), sax.WithSAX(rec.handler())))
	require.Equal(t, []string{
		"openTagStart(a)",
		"openTag(a,self=false)",
		"openTagStart(b)",
		"openTag(b,self=true)",
		"closeTag(b)",
		"closeTag(a)",
		"end",
	}, rec.events)
}

func TestCaseTransformIdempotence(t *testing.T) {
	const input = `<MiXeD Attr="v"/>`
	once := collect(t, []string{input}, sax.WithCaseTransform(sax.CaseLower))
	lowered := collect(t, []string{`<mixed attr="v"/>`}, sax.WithCaseTransform(sax.CaseLower))
	require.Equal(t, once.events, lowered.events)
}
