// Package termui provides objects and methods for interactive UI in terminal windows.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package termui

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/npillmayer/schuko/tracing"
)

// trace traces with key 'derivre.cli'.
func trace() tracing.Trace {
	return tracing.Select("derivre.cli")
}

// Formatter writes an item to w. It returns false if it does not know how to
// format the item.
type Formatter interface {
	Format(interface{}, io.Writer) (bool, error)
}

// DefaultFormatter formats strings, errors, tables and Stringers.
type DefaultFormatter struct{}

// Format writes item to w, prefixed by a marker.
func (df DefaultFormatter) Format(item interface{}, w io.Writer) (bool, error) {
	var err error
	switch t := item.(type) {
	case string:
		_, err = fmt.Fprintf(w, "▶ %s\n", t)
	case error:
		_, err = fmt.Fprintf(w, "▶ error: %s\n", t.Error())
	case table.Writer:
		if t == nil {
			_, err = io.WriteString(w, "▶ (empty table)\n")
		} else {
			_, err = fmt.Fprintf(w, "%s\n", t.Render())
		}
	case fmt.Stringer:
		_, err = fmt.Fprintf(w, "▶ %s\n", t.String())
	default:
		_, err = fmt.Fprintf(w, "▶ object of type %T\n", t)
	}
	return err == nil, err
}

// NewTable creates a table writer in the style used throughout the UI.
func NewTable(title string, header ...interface{}) table.Writer {
	tw := table.NewWriter()
	if title != "" {
		tw.SetTitle(title)
	}
	if len(header) > 0 {
		tw.AppendHeader(table.Row(header))
	}
	tw.SetStyle(table.StyleLight)
	return tw
}
