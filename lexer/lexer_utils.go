/*
File    : sol25/lexer/lexer_utils.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"strings"

	"github.com/akashmaji946/sol25/status"
)

// isDigitASCII reports whether c is an ASCII decimal digit ('0'..'9').
// This is used in the hot path for number scanning.
func isDigitASCII(c byte) bool {
	return c >= '0' && c <= '9'
}

// isLowerASCII reports whether c is an ASCII lowercase letter.
func isLowerASCII(c byte) bool {
	return c >= 'a' && c <= 'z'
}

// isUpperASCII reports whether c is an ASCII uppercase letter.
func isUpperASCII(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

// isAlphanumericASCII reports whether c is an ASCII letter or digit.
func isAlphanumericASCII(c byte) bool {
	return isLowerASCII(c) || isUpperASCII(c) || isDigitASCII(c)
}

// isWhitespace checks if the given byte is a whitespace character.
func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

// readIdentifier reads an identifier-shaped word starting with a
// lowercase letter or underscore, then classifies it:
//
//   - word directly followed by ':' (no intervening character) fuses
//     into a single SELECTOR_PART token whose lexeme keeps the colon
//   - otherwise a reserved word yields its keyword token
//   - otherwise the word is a plain IDENTIFIER
//
// The fusion rule is what makes 'value:' a selector part while
// 'value :' stays two tokens, and what turns 'class:' into the
// selector part 'class:' instead of the keyword 'class'.
func readIdentifier(lex *Lexer) (Token, error) {
	line, column := lex.Line, lex.Column
	start := lex.Position

	// First char is a lowercase letter or underscore (caller checked)
	lex.Advance()

	// Remaining chars are alphanumeric or underscore
	for isAlphanumericASCII(lex.Current) || lex.Current == '_' {
		lex.Advance()
	}

	word := lex.Src[start:lex.Position]

	if lex.Current == ':' {
		// Fuse the directly following colon into a selector part.
		// The fusion also wins over ':=': an assignment needs
		// whitespace (or another token) before the ':='.
		lex.Advance()
		return NewTokenWithMetadata(SELECTOR_PART, word+":", line, column), nil
	}

	if keyword, ok := KEYWORDS_MAP[word]; ok {
		return NewTokenWithMetadata(keyword, word, line, column), nil
	}

	return NewTokenWithMetadata(IDENTIFIER_ID, word, line, column), nil
}

// readClassIdentifier reads a class identifier: an uppercase letter
// followed by alphanumerics (underscores are not allowed in class
// identifiers).
func readClassIdentifier(lex *Lexer) (Token, error) {
	line, column := lex.Line, lex.Column
	start := lex.Position

	// First char is an uppercase letter (caller checked)
	lex.Advance()

	for isAlphanumericASCII(lex.Current) {
		lex.Advance()
	}

	return NewTokenWithMetadata(CLASS_ID, lex.Src[start:lex.Position], line, column), nil
}

// readIntegerLiteral reads an integer literal: an optional '+' or '-'
// sign (only reached when a digit follows directly) and one or more
// digits. The sign is part of the lexeme.
func readIntegerLiteral(lex *Lexer) (Token, error) {
	line, column := lex.Line, lex.Column
	start := lex.Position

	if lex.Current == '+' || lex.Current == '-' {
		lex.Advance()
	}

	for isDigitASCII(lex.Current) {
		lex.Advance()
	}

	return NewTokenWithMetadata(INT_LIT, lex.Src[start:lex.Position], line, column), nil
}

// readStringLiteral reads a single-quoted string literal.
//
// The only recognized escape sequences are \', \n, and \\. They are
// stored in the lexeme as their two-character source form - the
// backslash is preserved so the XML output can carry the sequence
// verbatim. Any other backslash sequence, a raw newline inside the
// literal, or end of input before the closing quote is a lexical
// error.
func readStringLiteral(lex *Lexer) (Token, error) {
	line, column := lex.Line, lex.Column
	lex.Advance() // Consume opening quote

	var builder strings.Builder

	for {
		switch lex.Current {
		case '\'':
			lex.Advance() // Consume closing quote
			return NewTokenWithMetadata(STRING_LIT, builder.String(), line, column), nil

		case '\\':
			lex.Advance() // Consume the backslash
			switch lex.Current {
			case '\'', 'n', '\\':
				// Keep the escape in its two-character source form
				builder.WriteByte('\\')
				builder.WriteByte(lex.Current)
				lex.Advance()
			case 0:
				return Token{}, status.Newf(status.ERR_LEXICAL,
					"[%d:%d] LEXER ERROR: unterminated string literal", line, column)
			default:
				return Token{}, status.Newf(status.ERR_LEXICAL,
					"[%d:%d] LEXER ERROR: invalid escape sequence \\%c",
					lex.Line, lex.Column, lex.Current)
			}

		case '\n':
			return Token{}, status.Newf(status.ERR_LEXICAL,
				"[%d:%d] LEXER ERROR: newline in string literal", lex.Line, lex.Column)

		case 0:
			return Token{}, status.Newf(status.ERR_LEXICAL,
				"[%d:%d] LEXER ERROR: unterminated string literal", line, column)

		default:
			builder.WriteByte(lex.Current)
			lex.Advance()
		}
	}
}
