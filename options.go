package jyaml

import "strings"

// Options controls parser behavior beyond the format's fixed grammar:
// resource limits and a couple of relaxations the strict default doesn't
// take. The zero Options is not valid; construct via newOptions with zero or
// more Option values, or start from one of the named presets below.
type Options struct {
	// MaxDepth caps combined block/flow nesting. Exceeding it produces
	// DepthExceeded rather than an unbounded recursion. Spec recommends
	// >= 128; that's the default.
	MaxDepth int

	// ParseLimit caps the number of tokens consumed during a parse. Zero
	// means unlimited. Exceeding it produces ParseLimitExceeded.
	ParseLimit int

	// AllowDuplicateKeys, when true, makes a repeated object key overwrite
	// the prior value (last-wins) instead of failing with DuplicateKey.
	// In document mode the overwrite is still recorded as an Issue.
	AllowDuplicateKeys bool

	// NormalizeLineEndings pre-passes the input before the Source Reader
	// sees it: "none" (default, bytes pass through unchanged - the reader
	// already folds CRLF/CR to a logical '\n' internally), "lf" (rewrite
	// every CRLF/CR to LF first), or "crlf" (rewrite every LF not already
	// preceded by CR to CRLF first). Only meaningful if a caller cares
	// about the literal bytes of strings that embed raw line breaks.
	NormalizeLineEndings string

	// CaptureComments enables the lexer's comment side channel. Set
	// automatically by ParseDocument; parse_value callers never need it.
	CaptureComments bool

	// CaptureTokens retains the full token stream for diagnostics. Set by
	// DebugOptions; discarded by default since it pins the whole input's
	// tokenization in memory for the life of the Document.
	CaptureTokens bool
}

// Option mutates an Options during construction.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		MaxDepth:             128,
		ParseLimit:           0,
		AllowDuplicateKeys:   false,
		NormalizeLineEndings: "none",
		CaptureComments:      false,
		CaptureTokens:        false,
	}
}

func newOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

// WithMaxDepth overrides the nesting cap.
func WithMaxDepth(n int) Option { return func(o *Options) { o.MaxDepth = n } }

// WithParseLimit overrides the token ceiling (0 disables it).
func WithParseLimit(n int) Option { return func(o *Options) { o.ParseLimit = n } }

// WithAllowDuplicateKeys toggles last-wins duplicate key handling.
func WithAllowDuplicateKeys(b bool) Option { return func(o *Options) { o.AllowDuplicateKeys = b } }

// WithNormalizeLineEndings selects a line-ending pre-pass: "none", "lf", or
// "crlf".
func WithNormalizeLineEndings(mode string) Option {
	return func(o *Options) { o.NormalizeLineEndings = mode }
}

// WithCaptureComments toggles the comment side channel directly; most
// callers want ParseDocument instead of setting this themselves.
func WithCaptureComments(b bool) Option { return func(o *Options) { o.CaptureComments = b } }

// WithCaptureTokens toggles raw token retention; most callers want
// DebugOptions instead of setting this themselves.
func WithCaptureTokens(b bool) Option { return func(o *Options) { o.CaptureTokens = b } }

// StrictOptions is the format's default posture: duplicate keys rejected,
// a 128-deep nesting cap, no token ceiling. Passing no options at all is
// equivalent to this preset.
func StrictOptions() []Option {
	return nil
}

// PermissiveOptions relaxes duplicate-key handling to last-wins, matching
// the non-strict mode of the reference implementations this format was
// distilled from. Indentation, number, and escape rules are unaffected -
// "permissive" here is scoped to the one rule with a documented relaxation,
// not a general recovery mode.
func PermissiveOptions() []Option {
	return []Option{WithAllowDuplicateKeys(true)}
}

// FastOptions favors throughput on large, trusted input: no comment or
// token capture, no parse limit. ParseDocument still turns comment capture
// on regardless.
func FastOptions() []Option {
	return []Option{WithCaptureComments(false), WithCaptureTokens(false), WithParseLimit(0)}
}

// DebugOptions captures everything ParseDocument can surface, plus the raw
// token stream, at the cost of pinning it all in memory.
func DebugOptions() []Option {
	return []Option{WithCaptureComments(true), WithCaptureTokens(true)}
}

// normalizeLineEndings applies the NormalizeLineEndings pre-pass, if any,
// before the Source Reader sees the bytes.
func normalizeLineEndings(data []byte, mode string) []byte {
	switch mode {
	case "lf":
		s := strings.ReplaceAll(string(data), "\r\n", "\n")
		s = strings.ReplaceAll(s, "\r", "\n")
		return []byte(s)
	case "crlf":
		s := strings.ReplaceAll(string(data), "\r\n", "\n")
		s = strings.ReplaceAll(s, "\r", "\n")
		s = strings.ReplaceAll(s, "\n", "\r\n")
		return []byte(s)
	default:
		return data
	}
}
