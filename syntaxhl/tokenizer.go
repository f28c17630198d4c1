// Package syntaxhl tokenizes patch operation text for syntax-highlighted
// rendering, using chroma to lex whatever language a file's extension
// suggests.
package syntaxhl

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Style is a minimal rendering style, independent of any particular
// terminal color library.
type Style struct {
	Foreground string
	Bold       bool
}

// Token is one lexed span of source text.
type Token struct {
	Text  string
	Style Style
}

// Tokenizer extracts syntax tokens using chroma.
type Tokenizer struct{}

// NewTokenizer creates a new chroma-based tokenizer.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// LanguageForPath guesses a chroma lexer name from a file's extension,
// falling back to "" (plain text) when nothing matches.
func LanguageForPath(path string) string {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return ""
	}
	if lexer := lexers.Get(ext); lexer != nil {
		return lexer.Config().Name
	}
	return ""
}

// Tokenize splits source code into syntax-highlighted tokens for the given
// language. It returns nil if the language is not supported or an error
// occurs, and an empty slice for empty source (valid input, no tokens).
func (t *Tokenizer) Tokenize(language, source string) []Token {
	if source == "" {
		return []Token{}
	}

	lexer := lexers.Get(language)
	if lexer == nil {
		return nil
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return nil
	}

	var tokens []Token
	for tok := iterator(); tok != chroma.EOF; tok = iterator() {
		tokens = append(tokens, Token{Text: tok.Value, Style: tokenStyle(tok.Type)})
	}
	return tokens
}

// tokenStyle returns the visual style for a chroma token type, loosely
// based on the One Dark theme.
func tokenStyle(tt chroma.TokenType) Style {
	switch tt {
	case chroma.Keyword, chroma.KeywordConstant, chroma.KeywordDeclaration,
		chroma.KeywordNamespace, chroma.KeywordPseudo, chroma.KeywordReserved,
		chroma.KeywordType:
		return Style{Foreground: "#c678dd", Bold: true}

	case chroma.Comment, chroma.CommentHashbang, chroma.CommentMultiline,
		chroma.CommentPreproc, chroma.CommentPreprocFile, chroma.CommentSingle,
		chroma.CommentSpecial:
		return Style{Foreground: "#5c6370"}

	case chroma.String, chroma.StringAffix, chroma.StringBacktick, chroma.StringChar,
		chroma.StringDelimiter, chroma.StringDoc, chroma.StringDouble,
		chroma.StringEscape, chroma.StringHeredoc, chroma.StringInterpol,
		chroma.StringOther, chroma.StringRegex, chroma.StringSingle,
		chroma.StringSymbol:
		return Style{Foreground: "#98c379"}

	case chroma.Number, chroma.NumberBin, chroma.NumberFloat, chroma.NumberHex,
		chroma.NumberInteger, chroma.NumberIntegerLong, chroma.NumberOct:
		return Style{Foreground: "#d19a66"}

	case chroma.Operator, chroma.OperatorWord:
		return Style{Foreground: "#56b6c2"}

	case chroma.NameBuiltin, chroma.NameBuiltinPseudo:
		return Style{Foreground: "#e5c07b"}

	case chroma.NameFunction, chroma.NameFunctionMagic:
		return Style{Foreground: "#61afef"}

	case chroma.Name, chroma.NameAttribute, chroma.NameClass, chroma.NameConstant,
		chroma.NameDecorator, chroma.NameEntity, chroma.NameException,
		chroma.NameLabel, chroma.NameNamespace, chroma.NameOther,
		chroma.NameProperty, chroma.NameTag, chroma.NameVariable,
		chroma.NameVariableAnonymous, chroma.NameVariableClass,
		chroma.NameVariableGlobal, chroma.NameVariableInstance,
		chroma.NameVariableMagic:
		return Style{Foreground: "#e06c75"}

	default:
		return Style{}
	}
}
