package jyaml

import "strconv"

// decodeNumber converts an already-validated number lexeme (see
// lexer.readNumber) into a Number. The lexeme is guaranteed to match the
// grammar in spec.md §4.2, so both conversions below are infallible except
// for int64 overflow, which falls back to float64 (see DESIGN.md for the
// Open Question this resolves: no arbitrary precision, host's widest
// native integer and double float instead).
func decodeNumber(lexeme string) Number {
	isInt := true
	for _, c := range lexeme {
		if c == '.' || c == 'e' || c == 'E' {
			isInt = false
			break
		}
	}
	if isInt {
		if i, err := strconv.ParseInt(lexeme, 10, 64); err == nil {
			return Number{IsInt: true, Int: i, Lexeme: lexeme}
		}
		// Overflows int64: represent as float64, losing exactness for
		// values outside the safe range. Documented, not silently wrong.
		f, _ := strconv.ParseFloat(lexeme, 64)
		return Number{IsInt: false, Float: f, Lexeme: lexeme}
	}
	f, _ := strconv.ParseFloat(lexeme, 64)
	return Number{IsInt: false, Float: f, Lexeme: lexeme}
}

func isDigit(c rune) bool { return c >= '0' && c <= '9' }

func isAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlnumOrUnderscore(c rune) bool {
	return isDigit(c) || isAlpha(c) || c == '_'
}
