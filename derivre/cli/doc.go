// Package cli implements the derivre command line interface: an interactive
// REPL for the statement language of package script, and the batch commands
// match and grep.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package cli

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'derivre.cli'
func tracer() tracing.Trace {
	return tracing.Select("derivre.cli")
}
