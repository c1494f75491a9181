// Package lexer turns source bytes into a precomputed, indentation-bracketed
// token stream. The scanner itself follows the teacher's rune-at-a-time
// next/peek/backup idiom (frontend/lexer.go), but runs synchronously
// to completion up front instead of behind a goroutine and channel pair:
// this compiler has no suspension points (see common.Counter's doc and the
// design notes in DESIGN.md).
package lexer

import "fmt"

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Type differentiates the tokens scanned by the lexer.
type Type int

// The full token set: structural markers, punctuation, literals, keywords
// and type names, plus identifiers and EOF.
const (
	EOF Type = iota
	Newline
	Indent
	Dedent

	Arrow       // ->
	DoubleEqual // ==
	NotEqual    // !=
	Colon       // :
	Comma       // ,
	Dash        // -
	Dot         // .
	Equal       // =
	LeftParen   // (
	Plus        // +
	RightParen  // )
	Semicolon   // ;
	Star        // *

	Integer // unsigned 32-bit integer literal
	String  // string literal
	Char    // single-character literal

	KwElse
	KwExtern
	KwFalse
	KwFn
	KwIf
	KwLet
	KwReturn
	KwStruct
	KwTrue
	KwWhile

	TyBool
	TyChar
	TyInt
	TyString

	Identifier
)

// Token is one lexeme with its source span and decoded payload.
type Token struct {
	Type  Type
	Start int // byte offset of the first rune of the token
	End   int // byte offset one past the last rune of the token
	Text  string
	Int   uint32 // valid when Type == Integer
}

// keywords maps reserved words to their token type, the same reserved-word
// table frontend/lang.go's rw array serves for vslc, rebuilt here for this
// language's much smaller keyword set.
var keywords = map[string]Type{
	"else":   KwElse,
	"extern": KwExtern,
	"false":  KwFalse,
	"fn":     KwFn,
	"if":     KwIf,
	"let":    KwLet,
	"return": KwReturn,
	"struct": KwStruct,
	"true":   KwTrue,
	"while":  KwWhile,

	"bool":   TyBool,
	"char":   TyChar,
	"int":    TyInt,
	"string": TyString,
}

// String renders t for diagnostics.
func (t Type) String() string {
	switch t {
	case EOF:
		return "EOF"
	case Newline:
		return "NEWLINE"
	case Indent:
		return "INDENT"
	case Dedent:
		return "DEDENT"
	case Arrow:
		return "->"
	case DoubleEqual:
		return "=="
	case NotEqual:
		return "!="
	case Colon:
		return ":"
	case Comma:
		return ","
	case Dash:
		return "-"
	case Dot:
		return "."
	case Equal:
		return "="
	case LeftParen:
		return "("
	case Plus:
		return "+"
	case RightParen:
		return ")"
	case Semicolon:
		return ";"
	case Star:
		return "*"
	case Integer:
		return "INTEGER"
	case String:
		return "STRING"
	case Char:
		return "CHAR"
	case Identifier:
		return "IDENTIFIER"
	default:
		for k, v := range keywords {
			if v == t {
				return k
			}
		}
		return fmt.Sprintf("TOKEN(%d)", int(t))
	}
}
