package vex

import (
	"io"
	"regexp"
)

type TokenType uint64

const (
	TokenEOF TokenType = iota
	TokenOther

	TokenIdentifier
	TokenInteger
	TokenFloat

	TokenVar
	TokenTypeTag

	TokenColon
	TokenSemicolon
	TokenOperator
	TokenArrow
	TokenOpenCurly
	TokenCloseCurly
)

var tokenTypeNames = [...]string{
	TokenEOF:        "EOF",
	TokenOther:      "Other",
	TokenIdentifier: "Identifier",
	TokenInteger:    "Integer",
	TokenFloat:      "Float",
	TokenVar:        "Var",
	TokenTypeTag:    "TypeTag",
	TokenColon:      "Colon",
	TokenSemicolon:  "Semicolon",
	TokenOperator:   "Operator",
	TokenArrow:      "Arrow",
	TokenOpenCurly:  "OpenCurly",
	TokenCloseCurly: "CloseCurly",
}

func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}

	return "TokenType(?)"
}

var keywordTable = map[string]TokenType{
	"var":   TokenVar,
	"int":   TokenTypeTag,
	"float": TokenTypeTag,
}

var operatorTable = map[string]TokenType{
	":":  TokenColon,
	";":  TokenSemicolon,
	"=>": TokenArrow,
	"{":  TokenOpenCurly,
	"}":  TokenCloseCurly,
	"=":  TokenOperator,
	"+":  TokenOperator,
	"-":  TokenOperator,
	"*":  TokenOperator,
	"/":  TokenOperator,
}

var (
	integerPattern    = regexp.MustCompile(`^\d+$`)
	floatPattern      = regexp.MustCompile(`^\d+\.\d+$`)
	identifierPattern = regexp.MustCompile(`^[a-zA-Z]\w*$`)
)

// whitespace covers the same runes as the ECMAScript \s class, which is wider
// than RE2's ASCII-only \s.
const whitespace = `\s\v\p{Z}\x{FEFF}`

// tokenPattern matches one token with its surrounding whitespace. It runs in
// leftmost-longest mode, so a word run beats a keyword prefix ("variable")
// and a float beats its integer part ("3.14").
var tokenPattern = func() *regexp.Regexp {
	re := regexp.MustCompile(`\A[` + whitespace + `]*` +
		`(=>|\{|\}|var|:|int|float|[-+/*=]|\w+|\d+\.\d+|\d+|[^` + whitespace + `])` +
		`[` + whitespace + `]*`)
	re.Longest()
	return re
}()

// Token is a single lexeme. Typ is derived from Value alone.
type Token struct {
	Typ   TokenType
	Value string
}

func NewToken(value string) Token {
	return Token{Typ: classify(value), Value: value}
}

func (t Token) isValid() bool {
	return t.Typ != TokenEOF
}

func classify(value string) TokenType {
	if t, ok := keywordTable[value]; ok {
		return t
	}

	if t, ok := operatorTable[value]; ok {
		return t
	}

	switch {
	case integerPattern.MatchString(value):
		return TokenInteger
	case floatPattern.MatchString(value):
		return TokenFloat
	case identifierPattern.MatchString(value):
		return TokenIdentifier
	default:
		return TokenOther
	}
}

// Lexer scans source text one token at a time. It never fails: characters
// it does not recognise come out as single TokenOther tokens.
type Lexer struct {
	src string
	pos int
}

func NewLexer(src string) *Lexer {
	return &Lexer{src: src}
}

func NewLexerFromReader(reader io.Reader) (*Lexer, error) {
	b, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	return NewLexer(string(b)), nil
}

// Next returns the next token, or a TokenEOF token once the input is exhausted.
func (l *Lexer) Next() Token {
	loc := tokenPattern.FindStringSubmatchIndex(l.src[l.pos:])
	if loc == nil {
		l.pos = len(l.src)
		return Token{Typ: TokenEOF}
	}

	value := l.src[l.pos+loc[2] : l.pos+loc[3]]
	l.pos += loc[1]

	return NewToken(value)
}

// All drains the lexer. The result is never nil.
func (l *Lexer) All() []Token {
	toks := []Token{}
	for tok := l.Next(); tok.isValid(); tok = l.Next() {
		toks = append(toks, tok)
	}

	return toks
}

func (l *Lexer) Reset() {
	l.pos = 0
}

func Lex(src string) []Token {
	return NewLexer(src).All()
}

// Values returns the literal text of each token.
func Values(toks []Token) []string {
	vals := make([]string, 0, len(toks))
	for _, t := range toks {
		vals = append(vals, t.Value)
	}

	return vals
}
