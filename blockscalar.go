package jyaml

import "strings"

// buildBlockScalarContent turns the raw, already-dedented content lines of a
// block scalar into its final string value per the folding and chomping
// rules in spec.md §4.3.4. base == -1 means no content line was found at
// all (the scalar is empty; chomping is irrelevant in that case).
func buildBlockScalarContent(lines []string, base int, kind BlockKind, chomp Chomping) string {
	if base == -1 || len(lines) == 0 {
		return ""
	}
	var joined string
	if kind == BlockLiteral {
		joined = strings.Join(lines, "\n") + "\n"
	} else {
		joined = foldLines(lines)
	}
	return applyChomping(joined, chomp)
}

// foldLines implements folded-scalar joining: a run of consecutive non-empty
// lines is joined with single spaces; each blank line becomes its own empty
// part, which the final "\n"-join turns into a line break. Exactly how many
// trailing breaks this leaves is immaterial - applyChomping normalizes the
// tail regardless.
func foldLines(lines []string) string {
	var parts []string
	var run []string
	flush := func() {
		if len(run) > 0 {
			parts = append(parts, strings.Join(run, " "))
			run = nil
		}
	}
	for _, ln := range lines {
		if ln == "" {
			flush()
			parts = append(parts, "")
			continue
		}
		run = append(run, ln)
	}
	flush()
	return strings.Join(parts, "\n") + "\n"
}

// applyChomping normalizes the trailing newlines of an already-joined block
// scalar body: clip keeps exactly one, strip keeps none. Working from a
// normalized "however many trailing \n the joiner happened to produce" input
// means foldLines/literal-join never need to track exact blank-line counts.
func applyChomping(s string, chomp Chomping) string {
	trimmed := strings.TrimRight(s, "\n")
	if chomp == ChompStrip {
		return trimmed
	}
	if trimmed == "" {
		return ""
	}
	return trimmed + "\n"
}

// readBlockScalarBody reads the raw body of a block scalar directly from the
// reader, bypassing normal tokenization (content lines are literal text, not
// JYAML tokens). headerIndent is the indentation of the line the header
// itself appeared on; the first non-blank body line must be indented deeper
// than that to establish the scalar's own indent base. The reader is left
// positioned exactly at the start of the first line that does not belong to
// the scalar, on the line break just before it (or at EOF), so that normal
// lexing resumes by emitting that line's NEWLINE.
func (l *lexer) readBlockScalarBody(headerIndent int) ([]string, int, *Error) {
	var lines []string
	base := -1
	for {
		c, _, ok := l.r.peek()
		if !ok || c != '\n' {
			break
		}
		mark := l.r.mark()
		l.r.advance() // the newline ending the previous line
		indent := l.rawIndentCount()

		c2, _, ok2 := l.r.peek()
		if !ok2 {
			if base == -1 {
				l.r.reset(mark)
			} else {
				lines = append(lines, "")
			}
			break
		}
		if c2 == '\n' {
			// Blank line: always part of the body once we're inside it, and
			// otherwise just absorbed while hunting for the first real line.
			if base != -1 {
				lines = append(lines, "")
			}
			continue
		}

		if base == -1 {
			if indent <= headerIndent {
				l.r.reset(mark)
				break
			}
			base = indent
		}
		if indent < base {
			l.r.reset(mark)
			break
		}

		text := l.readRawLine()
		if indent > base {
			text = strings.Repeat(" ", indent-base) + text
		}
		lines = append(lines, text)
	}
	return lines, base, nil
}

// rawIndentCount consumes and counts leading space characters, stopping at
// the first non-space (content, tab, or newline). Unlike countIndent, it
// does not reject tabs: block scalar content is literal text, not
// structural indentation.
func (l *lexer) rawIndentCount() int {
	n := 0
	for {
		c, _, ok := l.r.peek()
		if !ok || c != ' ' {
			break
		}
		n++
		l.r.advance()
	}
	return n
}

// readRawLine consumes and returns everything up to (not including) the next
// newline or EOF, unmodified.
func (l *lexer) readRawLine() string {
	var sb strings.Builder
	for {
		c, _, ok := l.r.peek()
		if !ok || c == '\n' {
			break
		}
		sb.WriteRune(c)
		l.r.advance()
	}
	return sb.String()
}
