package script

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/npillmayer/derivre"
	"github.com/npillmayer/gorgo/terex"
)

// Interpreter executes statements against a pool. Names bound with let live
// in the interpreter's environment and refer to pool-interned expressions.
//
// An Interpreter is not safe for concurrent use; its pool may be shared.
type Interpreter struct {
	pool *derivre.Pool
	env  *terex.Environment
}

// NewInterpreter creates an interpreter for pool. If pool is nil, a fresh
// pool is created.
func NewInterpreter(pool *derivre.Pool) *Interpreter {
	if pool == nil {
		pool = derivre.NewPool()
	}
	return &Interpreter{
		pool: pool,
		env:  terex.NewEnvironment("#derivre", nil),
	}
}

// Pool returns the pool all terms are interned in.
func (intp *Interpreter) Pool() *derivre.Pool {
	return intp.pool
}

// Result is the outcome of one statement. Which fields are set depends on
// the command:
//
//	let, show, derive   Expr
//	match, nullable     Expr, Bool
//	trace               Expr, Bool, Steps
//	pool                Stats
type Result struct {
	Cmd   string
	Name  string
	Expr  *derivre.Expr
	Bool  bool
	Steps []derivre.Step
	Stats derivre.PoolStats
}

func (r Result) String() string {
	switch r.Cmd {
	case "let":
		return r.Name + " = " + derivre.Render(r.Expr)
	case "match", "trace", "nullable":
		return strconv.FormatBool(r.Bool)
	case "pool":
		return fmt.Sprintf("%d shapes (%d symbols, %d stars, %d sequences, %d alternations)",
			r.Stats.Total(), r.Stats.Symbols, r.Stats.Stars, r.Stats.Sequences, r.Stats.Alternations)
	}
	return derivre.Render(r.Expr)
}

// Exec parses and executes a line of input. Statements are executed in
// order; execution stops at the first failing statement, returning the
// results of the statements before it.
func (intp *Interpreter) Exec(line string) ([]Result, error) {
	stmts, err := Parse(line)
	if err != nil {
		return nil, err
	}
	results := make([]Result, 0, len(stmts))
	for _, stmt := range stmts {
		r, err := intp.execute(stmt)
		if err != nil {
			return results, err
		}
		results = append(results, r)
	}
	return results, nil
}

// Lookup returns the expression bound to name.
func (intp *Interpreter) Lookup(name string) (*derivre.Expr, error) {
	sym := intp.env.FindSymbol(name, true)
	if sym == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnbound, name)
	}
	e, ok := sym.Value.AsAtom().Data.(*derivre.Expr)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnbound, name)
	}
	return e, nil
}

// Bind binds name to e. The expression has to belong to the
// interpreter's pool.
func (intp *Interpreter) Bind(name string, e *derivre.Expr) {
	intp.env.Def(name, terex.Elem(e))
	tracer().P("name", name).Debugf("bound to %s", derivre.Render(e))
}

func (intp *Interpreter) execute(stmt Statement) (r Result, err error) {
	r.Cmd = stmt.Cmd
	if stmt.Term != nil {
		if r.Expr, err = intp.Eval(stmt.Term); err != nil {
			return
		}
	}
	p := intp.pool
	switch stmt.Cmd {
	case "let":
		r.Name = stmt.Name
		intp.Bind(stmt.Name, r.Expr)
	case "match":
		r.Bool = p.Matches(r.Expr, stmt.Input)
	case "trace":
		r.Steps, r.Bool = p.Trace(r.Expr, stmt.Input)
	case "derive":
		c, err := singleRune(stmt.Input)
		if err != nil {
			return r, err
		}
		r.Expr = p.Derive(r.Expr, c)
	case "nullable":
		r.Bool = derivre.Nullable(r.Expr)
	case "pool":
		r.Stats = p.Stats()
	}
	return r, nil
}

// Eval builds the expression for a term.
func (intp *Interpreter) Eval(t *Term) (*derivre.Expr, error) {
	p := intp.pool
	switch t.Op {
	case "lit":
		return p.Literal(t.Text), nil
	case "sym":
		c, err := singleRune(t.Text)
		if err != nil {
			return nil, err
		}
		return p.Symbol(c), nil
	case "empty":
		return p.EmptySet(), nil
	case "eps":
		return p.EmptyString(), nil
	case "ref":
		return intp.Lookup(t.Text)
	}
	args := make([]*derivre.Expr, len(t.Args))
	for i, a := range t.Args {
		e, err := intp.Eval(a)
		if err != nil {
			return nil, err
		}
		args[i] = e
	}
	switch t.Op {
	case "star":
		return p.Star(args[0]), nil
	case "seq":
		return p.Concat(args...), nil
	case "alt":
		return p.Union(args...), nil
	}
	return nil, fmt.Errorf("%w: unknown term %q", ErrSyntax, t.Op)
}

func singleRune(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: expected a single character, have %q", ErrArity, s)
	}
	c, _ := utf8.DecodeRuneInString(s)
	return c, nil
}
