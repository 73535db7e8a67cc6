/*
Package script implements a small command language for building and
querying derivre expressions interactively.

The language has no regex syntax. Terms are written as s-expressions over
the constructors of a derivre.Pool:

	"text"            literal string
	empty  eps        ∅ and ε
	(lit "text")      literal string
	(sym "c")         single symbol
	(star t)          repetition
	(seq t1 t2 …)     right-nested sequence
	(alt t1 t2 …)     right-nested alternation
	name              a term bound with let

Statements:

	let name = t
	match t "input"
	trace t "input"
	derive t "c"
	nullable t
	show t
	pool

Several statements on one line are separated by ';', '#' starts a comment.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package script

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'derivre.script'.
func tracer() tracing.Trace {
	return tracing.Select("derivre.script")
}

// Errors returned by the scanner, parser and interpreter. They are wrapped
// with position or name information; test with errors.Is.
var (
	ErrSyntax  = errors.New("syntax error")
	ErrUnbound = errors.New("unbound name")
	ErrArity   = errors.New("wrong number of arguments")
)
