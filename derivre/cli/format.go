package cli

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/npillmayer/derivre"
	"github.com/npillmayer/derivre/derivre/ui/termui"
	"github.com/npillmayer/derivre/script"
)

// Formatter formats script results, falling back to the default formatter.
type Formatter struct {
	termui.DefaultFormatter
}

var _ termui.Formatter = Formatter{}

// Format writes item to w. Traces and pool statistics are rendered as tables.
func (f Formatter) Format(item interface{}, w io.Writer) (bool, error) {
	tracer().Debugf("format called for item %T", item)
	if r, ok := item.(script.Result); ok {
		switch r.Cmd {
		case "trace":
			item = stepsTable(r.Expr, r.Steps, r.Bool)
		case "pool":
			item = statsTable(r.Stats)
		}
	}
	return f.DefaultFormatter.Format(item, w)
}

// --- Tables ----------------------------------------------------------------

func stepsTable(e *derivre.Expr, steps []derivre.Step, ok bool) table.Writer {
	tw := termui.NewTable("derivatives of "+derivre.Render(e), "#", "rune", "term", "nullable")
	for _, s := range steps {
		tw.AppendRow(table.Row{
			s.Index + 1,
			fmt.Sprintf("%q", s.Symbol),
			derivre.Render(s.Expr),
			derivre.Nullable(s.Expr),
		})
	}
	tw.AppendFooter(table.Row{"", "", "match", ok})
	return tw
}

func statsTable(st derivre.PoolStats) table.Writer {
	tw := termui.NewTable("interning pool", "kind", "shapes")
	tw.AppendRows([]table.Row{
		{derivre.SymbolKind, st.Symbols},
		{derivre.StarKind, st.Stars},
		{derivre.SequenceKind, st.Sequences},
		{derivre.AlternationKind, st.Alternations},
	})
	tw.AppendFooter(table.Row{"total", st.Total()})
	return tw
}
