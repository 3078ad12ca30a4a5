package sax_test

import (
	"testing"

	"github.com/lestrrat-go/sax"
	"github.com/stretchr/testify/require"
)

func TestComments(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		rec := collect(t, []string{`<!-- hello --><r/>`})
		require.Equal(t, "comment( hello )", rec.events[0])
	})
	t.Run("trim and normalize", func(t *testing.T) {
		rec := collect(t, []string{"<!--  a \t b  --><r/>"},
			sax.WithTrim(true), sax.WithNormalize(true))
		require.Equal(t, "comment(a b)", rec.events[0])
	})
	t.Run("embedded dashes lenient", func(t *testing.T) {
		rec := collect(t, []string{`<!-- a --x --><r/>`})
		// the first -- emits what was buffered, the remainder becomes a
		// second comment
		require.Equal(t, "comment( a )", rec.events[0])
		require.Equal(t, "comment(--x )", rec.events[1])
		require.Empty(t, rec.errors)
	})
	t.Run("embedded dashes strict", func(t *testing.T) {
		rec := collect(t, []string{`<!-- a --x --><r/>`}, sax.WithStrict(true))
		require.Contains(t, rec.events, "error(Malformed comment)")
	})
	t.Run("single dash kept", func(t *testing.T) {
		rec := collect(t, []string{`<!-- a-b --><r/>`})
		require.Equal(t, "comment( a-b )", rec.events[0])
	})
}

func TestDoctype(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		rec := collect(t, []string{`<!DOCTYPE html><r/>`})
		require.Equal(t, "doctype( html)", rec.events[0])
	})
	t.Run("case insensitive introducer", func(t *testing.T) {
		rec := collect(t, []string{`<!doctype html><r/>`})
		require.Equal(t, "doctype( html)", rec.events[0])
	})
	t.Run("internal subset", func(t *testing.T) {
		rec := collect(t, []string{`<!DOCTYPE r [<!ENTITY a "1">]><r/>`})
		require.Equal(t, `doctype( r [<!ENTITY a "1">])`, rec.events[0])
	})
	t.Run("comment inside internal subset", func(t *testing.T) {
		rec := collect(t, []string{`<!DOCTYPE r [ <!-- note --> ]><r/>`})
		require.Equal(t, []string{
			"comment( note )",
			"doctype( r [ ])",
			"openTagStart(r)",
			"openTag(r,self=true)",
			"closeTag(r)",
			"end",
		}, rec.events, "parsing should return to the internal subset after the comment")
	})
	t.Run("quoted literal", func(t *testing.T) {
		rec := collect(t, []string{`<!DOCTYPE r SYSTEM "a>b"><r/>`})
		require.Equal(t, `doctype( r SYSTEM "a>b")`, rec.events[0])
	})
	t.Run("misplaced", func(t *testing.T) {
		rec := collect(t, []string{`<r/><!DOCTYPE r>`}, sax.WithStrict(true))
		require.Contains(t, rec.events, "error(Inappropriately located doctype declaration)")
	})
}

func TestProcessingInstruction(t *testing.T) {
	rec := collect(t, []string{`<?xml version="1.0"?><r/>`})
	require.Equal(t, `pi(xml=version="1.0")`, rec.events[0])

	rec = collect(t, []string{`<?target body with ? inside?><r/>`})
	require.Equal(t, `pi(target=body with ? inside)`, rec.events[0])
}

func TestSGMLDeclaration(t *testing.T) {
	rec := collect(t, []string{`<!ENTITY nbsp "&#160;"><r/>`})
	require.Equal(t, `sgmlDecl(ENTITY nbsp "&#160;")`, rec.events[0])
}

func TestUnencodedLt(t *testing.T) {
	rec := collect(t, []string{`<r>a < 5</r>`})
	require.Equal(t, []string{
		"openTagStart(r)",
		"openTag(r,self=false)",
		"text(a < 5)",
		"closeTag(r)",
		"end",
	}, rec.events)

	rec = collect(t, []string{`<r>a < 5</r>`}, sax.WithStrict(true))
	require.Contains(t, rec.events, "error(Unencoded <)")
}

func TestAttributeForms(t *testing.T) {
	t.Run("single quotes", func(t *testing.T) {
		rec := collect(t, []string{`<r a='1'/>`})
		require.Contains(t, rec.events, "attribute(a=1)")
	})
	t.Run("unquoted lenient", func(t *testing.T) {
		rec := collect(t, []string{`<r a=1 b=2>x</r>`})
		require.Contains(t, rec.events, "attribute(a=1)")
		require.Contains(t, rec.events, "attribute(b=2)")
		require.Empty(t, rec.errors)
	})
	t.Run("unquoted disabled", func(t *testing.T) {
		rec := collect(t, []string{`<r a=1/>`}, sax.WithUnquotedAttributeValues(false))
		require.Contains(t, rec.events, "error(Unquoted attribute value)")
	})
	t.Run("without value lenient", func(t *testing.T) {
		rec := collect(t, []string{`<r compact>x</r>`})
		require.Contains(t, rec.events, "attribute(compact=compact)")
	})
	t.Run("without value then another", func(t *testing.T) {
		rec := collect(t, []string{`<r compact b="2">x</r>`})
		require.Contains(t, rec.events, "attribute(compact=)")
		require.Contains(t, rec.events, "attribute(b=2)")
	})
	t.Run("no whitespace between attributes", func(t *testing.T) {
		rec := collect(t, []string{`<r a="1"b="2"/>`}, sax.WithStrict(true))
		require.Contains(t, rec.events, "error(No whitespace between attributes)")
	})
	t.Run("duplicates dropped", func(t *testing.T) {
		rec := collect(t, []string{`<r a="1" a="2"/>`})
		require.Contains(t, rec.events, "attribute(a=1)")
		require.NotContains(t, rec.events, "attribute(a=2)")
		require.Len(t, rec.tags, 1)
		attr, ok := rec.tags[0].Attr("a")
		require.True(t, ok)
		require.Equal(t, "1", attr.Value)
	})
	t.Run("entity in attribute value", func(t *testing.T) {
		rec := collect(t, []string{`<a href="x&amp;y=1"/>`})
		require.Contains(t, rec.events, "attribute(href=x&y=1)")
	})
}

func TestCloseTagRecovery(t *testing.T) {
	t.Run("unexpected close lenient", func(t *testing.T) {
		rec := collect(t, []string{`<a><b></a>`})
		require.Equal(t, []string{
			"openTagStart(a)",
			"openTag(a,self=false)",
			"openTagStart(b)",
			"openTag(b,self=false)",
			"closeTag(b)",
			"closeTag(a)",
			"end",
		}, rec.events)
		require.Empty(t, rec.errors)
	})
	t.Run("unexpected close strict", func(t *testing.T) {
		rec := collect(t, []string{`<a><b></a>`}, sax.WithStrict(true))
		require.Contains(t, rec.events, "error(Unexpected close tag)")
	})
	t.Run("unmatched close lenient", func(t *testing.T) {
		rec := collect(t, []string{`<a></b></a>`})
		require.Equal(t, []string{
			"openTagStart(a)",
			"openTag(a,self=false)",
			"text(</b>)",
			"closeTag(a)",
			"end",
		}, rec.events)
	})
	t.Run("weird empty close", func(t *testing.T) {
		rec := collect(t, []string{`<a></></a>`})
		require.Contains(t, rec.events, "text(</>)")
	})
	t.Run("whitespace before gt", func(t *testing.T) {
		rec := collect(t, []string{"<a></a  >"})
		require.Contains(t, rec.events, "closeTag(a)")
		require.Empty(t, rec.errors)
	})
	t.Run("close tag case transform", func(t *testing.T) {
		rec := collect(t, []string{`<DIV></div>`}, sax.WithCaseTransform(sax.CaseLower))
		require.Contains(t, rec.events, "closeTag(div)")
		require.Empty(t, rec.errors)
	})
}

func TestTextOutsideRoot(t *testing.T) {
	rec := collect(t, []string{`<r/>tail`}, sax.WithStrict(true))
	require.Contains(t, rec.events, "error(Text data outside of root node)")

	rec = collect(t, []string{`<r/> `}, sax.WithStrict(true))
	require.Empty(t, rec.errors, "whitespace after the root is fine")
}

func TestUnclosedRoot(t *testing.T) {
	rec := collect(t, []string{`<a><b>`}, sax.WithStrict(true))
	require.Contains(t, rec.events, "error(Unclosed root tag)")

	rec = collect(t, []string{`<a><b>`})
	require.NotContains(t, rec.events, "error(Unclosed root tag)")
}

func TestUnexpectedEnd(t *testing.T) {
	rec := collect(t, []string{`<a href="x`})
	require.Contains(t, rec.events, "error(Unexpected end)")
}

func TestScriptHandling(t *testing.T) {
	const input = `<html><script>if (1 < 2) { x = "</div>"; }</script></html>`

	t.Run("allowed", func(t *testing.T) {
		rec := collect(t, []string{input}, sax.WithAllowScript(true))
		require.Equal(t, []string{
			"openTagStart(html)",
			"openTag(html,self=false)",
			"openTagStart(script)",
			"openTag(script,self=false)",
			`text(if (1 < 2) { x = "</div>"; })`,
			"closeTag(script)",
			"closeTag(html)",
			"end",
		}, rec.events)
	})
	t.Run("default off", func(t *testing.T) {
		rec := collect(t, []string{`<script>a</script>`})
		require.Equal(t, []string{
			"openTagStart(script)",
			"openTag(script,self=false)",
			"text(a)",
			"closeTag(script)",
			"end",
		}, rec.events)
	})
}

func TestSelfClosingNested(t *testing.T) {
	rec := collect(t, []string{`<a><b/><c x="1"/></a>`})
	require.Equal(t, []string{
		"openTagStart(a)",
		"openTag(a,self=false)",
		"openTagStart(b)",
		"openTag(b,self=true)",
		"closeTag(b)",
		"openTagStart(c)",
		"attribute(x=1)",
		"openTag(c,self=true)",
		"closeTag(c)",
		"closeTag(a)",
		"end",
	}, rec.events)
}

func TestTextCoalescence(t *testing.T) {
	// one text event per contiguous region, however the input is
	// chunked
	rec := collect(t, []string{`<r>a`, `b`, `c`, `</r>`})
	require.Equal(t, []string{
		"openTagStart(r)",
		"openTag(r,self=false)",
		"text(abc)",
		"closeTag(r)",
		"end",
	}, rec.events)
}
