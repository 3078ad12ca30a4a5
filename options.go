package sax

import (
	"log/slog"

	"github.com/lestrrat-go/option"
)

type Option = option.Interface

// CaseTransform controls how tag and attribute names are normalized
// when the parser is not strict.
type CaseTransform int

const (
	CasePreserve CaseTransform = iota
	CaseLower
	CaseUpper
)

type identAllowScript struct{}
type identCaseTransform struct{}
type identMaxBufferLength struct{}
type identNamespaces struct{}
type identNormalize struct{}
type identSAX struct{}
type identStrict struct{}
type identStrictEntities struct{}
type identTraceLogger struct{}
type identTrackPosition struct{}
type identTrim struct{}
type identUnparsedEntities struct{}
type identUnquotedAttributeValues struct{}
type identUserData struct{}

// WithStrict makes the parser reject constructs that the lenient mode
// accepts. Strict parsing preserves name case and disables unquoted
// attribute values unless they are explicitly re-enabled.
func WithStrict(v bool) Option {
	return option.New(identStrict{}, v)
}

// WithCaseTransform normalizes tag and attribute names as they are
// committed. It has no effect under WithStrict.
func WithCaseTransform(v CaseTransform) Option {
	return option.New(identCaseTransform{}, v)
}

// WithLowercase is the legacy spelling of
// WithCaseTransform(CaseLower).
//
// Deprecated: use WithCaseTransform.
func WithLowercase(v bool) Option {
	if v {
		return option.New(identCaseTransform{}, CaseLower)
	}
	return option.New(identCaseTransform{}, CasePreserve)
}

// WithLowercaseTags is the oldest spelling of
// WithCaseTransform(CaseLower).
//
// Deprecated: use WithCaseTransform.
func WithLowercaseTags(v bool) Option {
	return WithLowercase(v)
}

// WithTrim strips leading and trailing ASCII whitespace from text and
// comment payloads.
func WithTrim(v bool) Option {
	return option.New(identTrim{}, v)
}

// WithNormalize collapses runs of ASCII whitespace in text and comment
// payloads into a single space.
func WithNormalize(v bool) Option {
	return option.New(identNormalize{}, v)
}

// WithNamespaces enables xmlns resolution. Attribute events for an
// element are deferred until its namespace bindings are known.
func WithNamespaces(v bool) Option {
	return option.New(identNamespaces{}, v)
}

// WithPositionTracking controls line/column bookkeeping for error
// payloads. It is on unless disabled.
func WithPositionTracking(v bool) Option {
	return option.New(identTrackPosition{}, v)
}

// WithStrictEntities restricts the built-in named entities to the five
// XML predefined ones. Entities added with RegisterEntity still
// resolve.
func WithStrictEntities(v bool) Option {
	return option.New(identStrictEntities{}, v)
}

// WithUnquotedAttributeValues tolerates attribute values without
// quotes. The default follows the parsing mode: on when lenient, off
// when strict.
func WithUnquotedAttributeValues(v bool) Option {
	return option.New(identUnquotedAttributeValues{}, v)
}

// WithUnparsedEntities re-feeds the replacement text of non-predefined
// entities into the parser, so replacement text containing markup is
// parsed rather than delivered as text.
func WithUnparsedEntities(v bool) Option {
	return option.New(identUnparsedEntities{}, v)
}

// WithMaxBufferLength bounds each internal buffer. Zero disables the
// check.
func WithMaxBufferLength(v int) Option {
	return option.New(identMaxBufferLength{}, v)
}

// WithAllowScript treats the content of a <script> element as opaque
// character data until the matching close tag. Lenient mode only.
func WithAllowScript(v bool) Option {
	return option.New(identAllowScript{}, v)
}

// WithSAX registers the handler table events are delivered to.
func WithSAX(v *SAX) Option {
	return option.New(identSAX{}, v)
}

// WithUserData sets the opaque value passed as the first argument of
// every handler invocation. Defaults to the parser itself.
func WithUserData(v Context) Option {
	return option.New(identUserData{}, v)
}

// WithTraceLogger attaches an slog logger that receives scanner trace
// records. Tracing is off by default.
func WithTraceLogger(v *slog.Logger) Option {
	return option.New(identTraceLogger{}, v)
}
