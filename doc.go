/*
Package derivre matches regular expressions with Brzozowski derivatives.

Expressions are hash-consed: a Pool hands out exactly one instance per
expression shape, so two expressions are equal if and only if they are the
same pointer. Matching derives the expression by every rune of the input and
finally asks whether the remaining term accepts the empty string. No
automaton is ever built; its states are implicit in the space of derivative
terms.

	p := derivre.NewPool()
	pets := p.Alternation(p.Literal("cat"), p.Literal("dog"))
	p.Matches(pets, "dog")  // true
	p.Matches(pets, "cats") // false

Derivative terms are not simplified: ∅·r and ∅|r stay in the term as they
are. Matching a literal of length n therefore visits O(n²) nodes in total.

There is no pattern syntax. Expressions are built from the constructors of a
Pool, with Literal, Concat and Union as shortcuts.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package derivre

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'derivre.core'.
func tracer() tracing.Trace {
	return tracing.Select("derivre.core")
}
