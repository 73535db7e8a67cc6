package cli

import (
	"fmt"

	"github.com/npillmayer/derivre"
	"github.com/spf13/cobra"
)

func newMatchCmd() *cobra.Command {
	var pf patternFlags
	var trace bool
	cmd := &cobra.Command{
		Use:   "match [flags] <literal> <input>...",
		Short: "Match inputs as a whole against a pattern",
		Long: `Match builds a pattern from a literal (plus alternatives given with --alt,
optionally repeated with --star) and reports for every input whether the
pattern matches it as a whole.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := derivre.NewPool()
			e := pf.build(p, args[0])
			out := cmd.OutOrStdout()
			fmtr := Formatter{}
			matched := false
			for _, input := range args[1:] {
				var ok bool
				if trace {
					var steps []derivre.Step
					steps, ok = p.Trace(e, input)
					if _, err := fmtr.Format(stepsTable(e, steps, ok), out); err != nil {
						return err
					}
				} else {
					ok = p.Matches(e, input)
				}
				fmt.Fprintf(out, "%s\t%v\n", input, ok)
				matched = matched || ok
			}
			if !matched {
				return ErrNoMatch
			}
			return nil
		},
	}
	pf.register(cmd)
	cmd.Flags().BoolVarP(&trace, "trace", "t", false, "print every derivative step")
	return cmd
}
