package types

import (
	"fmt"
	"strings"
)

// TokenKind is the lexical class of a token. The set of kinds is closed.
type TokenKind string

const (
	StringLiteral   TokenKind = "StringLiteral"
	TemplateLiteral TokenKind = "TemplateLiteral"
	TemplateHead    TokenKind = "TemplateHead"
	TemplateMiddle  TokenKind = "TemplateMiddle"
	TemplateTail    TokenKind = "TemplateTail"
	NumericLiteral  TokenKind = "NumericLiteral"
	RegexLiteral    TokenKind = "RegexLiteral"
	Identifier      TokenKind = "Identifier"
	OpenParen       TokenKind = "OpenParen"
	CloseParen      TokenKind = "CloseParen"
	OpenBrace       TokenKind = "OpenBrace"
	CloseBrace      TokenKind = "CloseBrace"
	OpenBracket     TokenKind = "OpenBracket"
	CloseBracket    TokenKind = "CloseBracket"
	Semicolon       TokenKind = "Semicolon"
	Comma           TokenKind = "Comma"
	Dot             TokenKind = "Dot"
	Colon           TokenKind = "Colon"
	QuestionMark    TokenKind = "QuestionMark"
	Arrow           TokenKind = "Arrow"
	Spread          TokenKind = "Spread"
	Operator        TokenKind = "Operator"
	Assignment      TokenKind = "Assignment"
	LineComment     TokenKind = "LineComment"
	BlockComment    TokenKind = "BlockComment"
	Whitespace      TokenKind = "Whitespace"
	Newline         TokenKind = "Newline"
	Eof             TokenKind = "Eof"
)

var tokenKinds = []TokenKind{
	StringLiteral,
	TemplateLiteral,
	TemplateHead,
	TemplateMiddle,
	TemplateTail,
	NumericLiteral,
	RegexLiteral,
	Identifier,
	OpenParen,
	CloseParen,
	OpenBrace,
	CloseBrace,
	OpenBracket,
	CloseBracket,
	Semicolon,
	Comma,
	Dot,
	Colon,
	QuestionMark,
	Arrow,
	Spread,
	Operator,
	Assignment,
	LineComment,
	BlockComment,
	Whitespace,
	Newline,
	Eof,
}

var knownKinds = func() map[TokenKind]struct{} {
	m := make(map[TokenKind]struct{}, len(tokenKinds))
	for _, k := range tokenKinds {
		m[k] = struct{}{}
	}
	return m
}()

// TokenKinds returns every valid token kind in declaration order.
func TokenKinds() []TokenKind {
	out := make([]TokenKind, len(tokenKinds))
	copy(out, tokenKinds)
	return out
}

// Valid reports whether k is one of the known token kinds.
func (k TokenKind) Valid() bool {
	_, ok := knownKinds[k]
	return ok
}

// Token is a single lexical unit of the formatted source.
type Token struct {
	// Kind is the lexical class of the token.
	Kind TokenKind `json:"kind"`
	// Text is the exact source text of the token. Joining the Text of all
	// tokens in order reproduces the tokenized source.
	Text string `json:"text"`
	// Line and Col are the 0-based position of the token. They are advisory;
	// synthesized tokens use (0,0).
	Line int `json:"line"`
	Col  int `json:"col"`
}

// Synthetic creates a token that has no position in the original source.
func Synthetic(kind TokenKind, text string) Token {
	return Token{Kind: kind, Text: text}
}

// Source joins the text of tokens back into source form.
func Source(tokens []Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		sb.WriteString(t.Text)
	}
	return sb.String()
}

// ValidateTokens returns an error for the first token whose kind is not known.
func ValidateTokens(tokens []Token) error {
	for i, t := range tokens {
		if !t.Kind.Valid() {
			return fmt.Errorf("token %d: unknown kind %q", i, t.Kind)
		}
	}
	return nil
}
