package termui

// Utilities for interactive command line interfaces.

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	prtxt "github.com/jedib0t/go-pretty/v6/text"
)

// Some global defaults
var welcomeMessage = "Welcome to %s [V%s]"

// defaultPrompt is the prompt used unless one is configured.
func defaultPrompt(toolname string) string {
	return prtxt.FgGreen.Sprintf("%s> ", toolname)
}

// Config holds the settings for a REPL.
type Config struct {
	Toolname    string
	Version     string
	Prompt      string   // empty for the default prompt
	HistoryFile string   // empty for no history
	Completions []string // first words offered for completion
	ViMode      bool
}

// BaseREPL is a base type to instantiate a REPL interpreter.
// Concrete REPL implementations will usually use this as a base type.
type BaseREPL struct {
	Interpreter REPLCommandInterpreter // the interpreter this REPL runs for
	Helper      func(io.Writer)        // print out help information
	readline    *readline.Instance
	conf        Config
	editmode    string
}

// REPLCommandInterpreter is an interface all interpreters have to implement.
// It is the workhorse doing interpretation of interactive
// commands.
//
// The REPL will delegate interpreting command strings (i.e. those which do not represent
// internal administrative commands) to the interpreter.
type REPLCommandInterpreter interface {
	InterpretCommand(string)
}

// NewBaseREPL creates a new REPL base object for an interpreter tool.
func NewBaseREPL(conf Config) (*BaseREPL, error) {
	rl, err := newReadline(conf)
	if err != nil {
		return nil, fmt.Errorf("cannot create REPL: %w", err)
	}
	repl := &BaseREPL{
		readline: rl,
		conf:     conf,
		editmode: "emacs",
	}
	if conf.ViMode {
		rl.SetVimMode(true)
		repl.editmode = "vi"
	}
	return repl, nil
}

// Create a readline instance.
func newReadline(conf Config) (*readline.Instance, error) {
	prompt := conf.Prompt
	if prompt == "" {
		prompt = defaultPrompt(conf.Toolname)
	}
	items := []readline.PrefixCompleterInterface{
		readline.PcItem("help"),
		readline.PcItem("bye"),
		readline.PcItem("mode",
			readline.PcItem("vi"),
			readline.PcItem("emacs"),
		),
		readline.PcItem("setprompt"),
	}
	for _, c := range conf.Completions {
		items = append(items, readline.PcItem(c))
	}
	return readline.NewEx(&readline.Config{
		Prompt:              prompt,
		HistoryFile:         conf.HistoryFile,
		AutoComplete:        readline.NewPrefixCompleter(items...),
		InterruptPrompt:     "^C",
		EOFPrompt:           "exit",
		HistorySearchFold:   true,
		FuncFilterInputRune: filterReplInput,
	})
}

// displayCommands prints a help message with available commands
// We support some internal interactive sub-commands (not part of the interpreter).
func (repl *BaseREPL) displayCommands(out io.Writer) {
	io.WriteString(out, fmt.Sprintf(welcomeMessage, repl.conf.Toolname, repl.conf.Version))
	io.WriteString(out, "\n\nThe following commands are available:\n\n")
	io.WriteString(out, "  help               : print this message\n")
	io.WriteString(out, "  bye                : quit application\n")
	io.WriteString(out, "  mode [mode]        : display or set current editing mode\n")
	io.WriteString(out, "  setprompt [prompt] : set current prompt [to default]\n")
}

// Outputs returns stdout and stderr of this REPL.
func (repl *BaseREPL) Outputs() (io.Writer, io.Writer) {
	return repl.readline.Stdout(), repl.readline.Stderr()
}

// Prompt enters a REPL and executes commands until the user says bye or
// input ends. Commands are either internal administrative (setprompt, help,
// etc.) or interpreted statements.
func (repl *BaseREPL) Prompt() {
	defer repl.readline.Close()
	fmt.Fprintf(repl.readline.Stderr(), welcomeMessage+"\n", repl.conf.Toolname, repl.conf.Version)
	for {
		line, err := repl.readline.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		line = strings.TrimSpace(line)
		words := strings.Fields(line)
		command := ""
		if len(words) > 0 {
			command = words[0]
		}
		if doExit := repl.executeCommand(command, words, line); doExit {
			break
		}
	}
}

// Central dispatcher function to execute internal REPL commands or interpreter
// statements. It receives the command (i.e. the first word of the line),
// a list of words (args) including the command, and the complete line of text.
// If it returns true, the REPL should terminate.
func (repl *BaseREPL) executeCommand(cmd string, args []string, line string) bool {
	switch {
	case cmd == "":
		// do nothing
	case cmd == "help":
		repl.displayCommands(repl.readline.Stderr())
		if repl.Helper != nil {
			repl.Helper(repl.readline.Stderr())
		}
	case cmd == "bye":
		io.WriteString(repl.readline.Stderr(), "> goodbye!\n")
		return true
	case cmd == "mode":
		if len(args) > 1 {
			switch args[1] {
			case "vi":
				repl.readline.SetVimMode(true)
				repl.editmode = "vi"
				return false
			case "emacs":
				repl.readline.SetVimMode(false)
				repl.editmode = "emacs"
				return false
			}
		}
		io.WriteString(repl.readline.Stderr(),
			fmt.Sprintf("> current input mode: %s\n", repl.editmode))
	case cmd == "setprompt":
		var prmpt string
		if len(line) <= 10 {
			prmpt = defaultPrompt(repl.conf.Toolname)
		} else {
			prmpt = line[10:] + " "
		}
		repl.readline.SetPrompt(prmpt)
	default:
		trace().Debugf("call interpreter on: '%s'", line)
		repl.interpret(line)
	}
	return false // do not exit
}

// interpret calls the interpreter, sending a statement.
func (repl *BaseREPL) interpret(line string) {
	if repl.Interpreter == nil {
		return
	}
	repl.Interpreter.InterpretCommand(line)
}

// Input filter for REPL. Blocks ctrl-z.
func filterReplInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}
