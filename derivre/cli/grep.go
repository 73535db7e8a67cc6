package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/derivre"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newGrepCmd() *cobra.Command {
	var pf patternFlags
	var jobs int
	cmd := &cobra.Command{
		Use:   "grep [flags] <literal> [file...]",
		Short: "Print lines matching a pattern as a whole",
		Long: `Grep prints all lines of the given files (or standard input) which match
the pattern as a whole. Files are scanned concurrently, sharing one
interning pool.

Derivative terms are not simplified, so the cost of matching grows with the
square of the line length: lines of some thousand characters which keep a
match alive are slow. Lines may be up to 16 MiB long.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("jobs") && Configuration != nil {
				jobs = Configuration.Int("grep.jobs")
			}
			p := derivre.NewPool()
			e := pf.build(p, args[0])
			files := args[1:]
			out := cmd.OutOrStdout()
			var results [][]string
			var err error
			if len(files) == 0 {
				var lines []string
				lines, err = grepLines(cmd.Context(), p, e, cmd.InOrStdin())
				results = [][]string{lines}
			} else {
				results, err = grepFiles(cmd.Context(), p, e, files, jobs)
			}
			if err != nil {
				return err
			}
			found := false
			for i, lines := range results {
				for _, line := range lines {
					if len(files) > 1 {
						fmt.Fprintf(out, "%s:%s\n", files[i], line)
					} else {
						fmt.Fprintln(out, line)
					}
					found = true
				}
			}
			tracer().Debugf("pool after grep: %d shapes", p.Stats().Total())
			if !found {
				return ErrNoMatch
			}
			return nil
		},
	}
	pf.register(cmd)
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 4, "number of files to scan concurrently")
	return cmd
}

// grepFiles scans files concurrently, at most jobs at a time. All workers
// intern into the same pool. Results are in the order of files.
func grepFiles(ctx context.Context, p *derivre.Pool, e *derivre.Expr, files []string, jobs int) ([][]string, error) {
	if jobs < 1 {
		jobs = 1
	}
	results := make([][]string, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, name := range files {
		i, name := i, name
		g.Go(func() error {
			f, err := os.Open(name)
			if err != nil {
				return fmt.Errorf("cannot scan: %w", err)
			}
			defer f.Close()
			results[i], err = grepLines(ctx, p, e, f)
			if err != nil {
				return fmt.Errorf("error reading %s: %w", name, err)
			}
			return nil
		})
	}
	return results, g.Wait()
}

// maxLineLength is the longest line grep accepts.
const maxLineLength = 16 * 1024 * 1024

// grepLines returns the lines of r which e matches as a whole. It stops
// early if ctx is cancelled.
func grepLines(ctx context.Context, p *derivre.Pool, e *derivre.Expr, r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return lines, err
		}
		if line := scanner.Text(); p.Matches(e, line) {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}
