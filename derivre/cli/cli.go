package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/derivre/derivre/ui/termui"
	"github.com/npillmayer/derivre/script"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

// Version is the version of the derivre tool.
const Version = "0.1 experimental"

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "derivre",
		Short: "Regular expression matching with derivatives",
		Long: `Welcome to derivre V` + Version + `

derivre matches strings against regular expressions by repeatedly taking
Brzozowski derivatives of hash-consed expression terms.

Run without a sub-command, derivre prompts for statements in an interactive
REPL. Sub-commands match and grep apply a pattern in batch-mode.

`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd)
		},
		RunE: runREPL,
	}
	root.PersistentFlags().String("config", "", "configuration file (YAML)")
	root.PersistentFlags().String("log-level", "", "tracing level: error, info or debug")
	root.PersistentFlags().String("log-file", "", "trace output: stderr, stdout, a file or a file URL")
	root.AddCommand(newMatchCmd(), newGrepCmd())
	return root
}

// Execute runs the command given on the command line and exits with the
// appropriate exit code. This is called exactly once by main().
func Execute() {
	err := rootCmd.ExecuteContext(SignalContext)
	if err != nil && exitCode(err) != 1 {
		fmt.Fprintf(os.Stderr, "derivre: %v\n", err)
	}
	Exit(exitCode(err))
}

// --- REPL ------------------------------------------------------------------

var statementWords = []string{"let", "match", "trace", "derive", "nullable", "show", "pool"}

func runREPL(cmd *cobra.Command, args []string) error {
	tracing.Infof("derivre interpreter called")
	repl, err := termui.NewBaseREPL(termui.Config{
		Toolname:    "derivre",
		Version:     Version,
		Prompt:      Configuration.String("repl.prompt"),
		HistoryFile: Configuration.String("repl.history"),
		Completions: statementWords,
		ViMode:      Configuration.Bool("repl.vi"),
	})
	if err != nil {
		return err
	}
	intp := &replIntpr{
		BaseREPL: repl,
		intp:     script.NewInterpreter(nil),
	}
	intp.Interpreter = intp
	intp.Helper = printStatementHelp
	intp.Prompt()
	return nil
}

// replIntpr runs statements of the command language for a REPL.
type replIntpr struct {
	*termui.BaseREPL
	intp *script.Interpreter
}

// InterpretCommand executes a line of statements and prints their results.
func (r *replIntpr) InterpretCommand(command string) {
	command = strings.Trim(command, "\x00")
	stdout, stderr := r.Outputs()
	interpretLine(r.intp, command, stdout, stderr)
}

// interpretLine executes line and prints every result, even if a later
// statement of the line fails.
func interpretLine(intp *script.Interpreter, line string, stdout, stderr io.Writer) {
	tracer().Debugf("interpret %q", line)
	results, err := intp.Exec(line)
	fmtr := Formatter{}
	for _, r := range results {
		if _, ferr := fmtr.Format(r, stdout); ferr != nil {
			fmt.Fprintf(stderr, "output error: %v\n", ferr)
		}
	}
	if err != nil {
		fmt.Fprintf(stderr, "interpreter error: %v\n", err)
	}
}

func printStatementHelp(w io.Writer) {
	io.WriteString(w, `
derivre will interpret the following statements, separated by ';':

  let <name> = <term>          : bind a name to a term
  match <term> "<input>"       : does the term match the input as a whole?
  trace <term> "<input>"       : match and list every derivative step
  derive <term> "<c>"          : derivative of the term by a single character
  nullable <term>              : does the term match the empty string?
  show <term>                  : print the term
  pool                         : statistics of the interning pool

Terms are written as
  "abc"  (lit "abc")  (sym "a")  (star t)  (seq t...)  (alt t...)  empty  eps  <name>

`)
}
