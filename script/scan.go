package script

import (
	"fmt"
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// TokType is the category of a token.
type TokType int

// Token categories.
const (
	EOF TokType = iota
	Ident
	String
	LParen
	RParen
	Assign
	Semicolon
)

func (tt TokType) String() string {
	switch tt {
	case EOF:
		return "end of input"
	case Ident:
		return "identifier"
	case String:
		return "string"
	case LParen:
		return "'('"
	case RParen:
		return "')'"
	case Assign:
		return "'='"
	case Semicolon:
		return "';'"
	}
	return fmt.Sprintf("<illegal token type %d>", int(tt))
}

// Token is a lexeme of the command language. For strings, Text holds the
// content without the quotes.
type Token struct {
	Type TokType
	Text string
	Col  int // 1-based column of the first byte
}

var initOnce sync.Once // monitors one-time creation of the lexer

var lexer *lexmachine.Lexer
var lexerErr error

func initLexer() {
	initOnce.Do(func() {
		lx := lexmachine.NewLexer()
		lx.Add([]byte(`#[^\n]*`), skip)       // comments
		lx.Add([]byte(`( |\t|\n|\r)+`), skip) // whitespace
		lx.Add([]byte(`\"[^"]*\"`), makeToken(String))
		lx.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*`), makeToken(Ident))
		lx.Add([]byte(`\(`), makeToken(LParen))
		lx.Add([]byte(`\)`), makeToken(RParen))
		lx.Add([]byte(`=`), makeToken(Assign))
		lx.Add([]byte(`;`), makeToken(Semicolon))
		if lexerErr = lx.Compile(); lexerErr != nil {
			tracer().Errorf("cannot compile lexer: %v", lexerErr)
			return
		}
		lexer = lx
	})
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func makeToken(tt TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		text := string(m.Bytes)
		if tt == String {
			text = text[1 : len(text)-1]
		}
		return s.Token(int(tt), text, m), nil
	}
}

// Scan splits a line of input into tokens. The returned slice never contains
// the EOF token.
func Scan(line string) ([]Token, error) {
	initLexer()
	if lexerErr != nil {
		return nil, lexerErr
	}
	scanner, err := lexer.Scanner([]byte(line))
	if err != nil {
		return nil, err
	}
	var toks []Token
	for tok, err, eof := scanner.Next(); !eof; tok, err, eof = scanner.Next() {
		if ui, is := err.(*machines.UnconsumedInput); is {
			return nil, fmt.Errorf("%w: unexpected input at column %d", ErrSyntax, ui.FailColumn)
		} else if err != nil {
			return nil, err
		}
		t := tok.(*lexmachine.Token)
		toks = append(toks, Token{
			Type: TokType(t.Type),
			Text: t.Value.(string),
			Col:  t.StartColumn,
		})
	}
	tracer().Debugf("scanned %d tokens", len(toks))
	return toks, nil
}
