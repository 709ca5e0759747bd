// Package jyaml implements a strict reader for JYAML (JSON-YAML Adaptive
// Markup Language): a text format that is a strict superset of JSON and a
// strict subset of YAML, adding line comments, optional indentation-driven
// block style, and literal/folded multi-line string scalars on top of
// JSON's grammar.
//
// Parsing never recovers from an error: the first malformed construct stops
// the parse and returns a single, precisely positioned *Error. There is no
// partial result.
package jyaml

// ParseValue parses text and returns its root Value. Comments are
// discarded; use ParseDocument to keep them. Neither entry point records
// source positions for the values themselves.
func ParseValue(text string, opts ...Option) (Value, error) {
	v, _, err := parse(text, newOptions(opts...))
	if err != nil {
		return Value{}, err
	}
	return v, nil
}

// Validate reports only whether text is a well-formed document.
func Validate(text string, opts ...Option) error {
	_, err := ParseValue(text, opts...)
	return err
}

// Comment is a single line comment captured by ParseDocument, with its
// marker (# or //) and at most one following space already stripped.
type Comment struct {
	Text string
	Pos  Position
}

// Document is the result of ParseDocument: the parsed value plus the
// metadata ParseValue discards.
type Document struct {
	Root     Value
	Comments []Comment

	// Issues holds non-fatal diagnostics recorded under a relaxed option
	// such as PermissiveOptions (e.g. a duplicate key that was allowed to
	// overwrite rather than rejected). Empty under StrictOptions.
	Issues []Issue

	// Tokens holds the full token stream, only populated under
	// DebugOptions (or WithCaptureTokens directly).
	Tokens []Token
}

// ParseDocument parses text and returns the root value together with every
// comment encountered and any non-fatal issues recorded under the given
// options.
func ParseDocument(text string, opts ...Option) (*Document, error) {
	o := newOptions(opts...)
	o.CaptureComments = true
	v, pr, err := parse(text, o)
	if err != nil {
		return nil, err
	}
	doc := &Document{Root: v, Issues: pr.issues, Tokens: pr.tokens}
	for _, c := range pr.comments {
		doc.Comments = append(doc.Comments, Comment{Text: c.Text, Pos: c.Pos})
	}
	return doc, nil
}

// parseResult carries the side channels a parse accumulated, for
// ParseDocument to surface; ParseValue just discards it.
type parseResult struct {
	comments []comment
	issues   []Issue
	tokens   []Token
}

func parse(text string, o Options) (Value, parseResult, *Error) {
	p, err := newParser([]byte(text), o)
	if err != nil {
		return Value{}, parseResult{}, err
	}
	v, err := p.parseDocument()
	if err != nil {
		return Value{}, parseResult{}, err
	}
	return v, parseResult{comments: p.lex.comments, issues: p.issues, tokens: p.tokens}, nil
}
