package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"

	"github.com/npillmayer/unger/cfg"
	"github.com/npillmayer/unger/engine"
	"github.com/npillmayer/unger/scanner"
)

// Tracers of the packages of this module.
var tracerKeys = []string{"unger.cli", "unger.parse", "unger.scanner"}

// Exit codes
const (
	accepted = 0
	noParse  = 1
	failure  = 2
)

func main() {
	initDisplay()
	tlevel := flag.String("trace", "", "Trace level [Debug|Info|Error]")
	tree := flag.Bool("tree", false, "Display first derivation as a tree")
	budget := flag.Int("budget", -1, "Max number of derivation steps, 0 = unlimited")
	depth := flag.Int("depth", -1, "Max nesting of derivation steps, 0 = unlimited")
	ebnf := flag.Bool("ebnf", false, "Print grammar in EBNF and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: unger [flags] grammar-file [input-file]\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	initConfig(*tlevel)
	if flag.NArg() < 1 || flag.NArg() > 2 {
		flag.Usage()
		os.Exit(failure)
	}
	//
	g, err := loadGrammar(flag.Arg(0))
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(failure)
	}
	if *ebnf {
		fmt.Print(cfg.EBNF(g))
		os.Exit(accepted)
	}
	var opts []engine.Option
	if *budget >= 0 {
		opts = append(opts, engine.Budget(*budget))
	}
	if *depth >= 0 {
		opts = append(opts, engine.MaxDepth(*depth))
	}
	u := &cli{
		g:        g,
		parser:   engine.NewParser(g, opts...),
		showTree: *tree,
	}
	if flag.NArg() == 2 {
		input, err := ioutil.ReadFile(flag.Arg(1))
		if err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(failure)
		}
		os.Exit(u.run(string(input)))
	}
	if err := u.repl(); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(failure)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// initConfig sets up the global configuration from NestedText files and
// wires tracing to Go's log package. A trace level given on the command line
// overrides configured trace levels.
func initConfig(tlevel string) {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := koanfadapter.New(nil, "unger", []string{"nt"})
	gconf.Initialize(conf)
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		pterm.Error.Println(err.Error())
	}
	tracing.SetTraceSelector(trace2go.Selector())
	if tlevel != "" {
		for _, key := range tracerKeys {
			tracing.Select(key).SetTraceLevel(tracing.TraceLevelFromString(tlevel))
		}
	}
	tracer().Debugf("budget = %d, max depth = %d", gconf.GetInt("unger.budget"), gconf.GetInt("unger.maxdepth"))
}

// loadGrammar reads and precomputes a grammar. Problems of the grammar which
// do not prevent parsing are reported, but are not errors.
func loadGrammar(filename string) (*cfg.Grammar, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := cfg.ReadGrammar(filename, f)
	if err != nil {
		return nil, err
	}
	g.Precompute()
	g.Dump() // only visible in debug mode
	if err := cfg.Verify(g); err != nil {
		pterm.Error.Println(err.Error())
	}
	if u := g.Unproductive(); len(u) > 0 {
		pterm.Error.Println(fmt.Sprintf("non-terminals without finite derivation: %v", u))
	}
	return g, nil
}

type cli struct {
	g        *cfg.Grammar
	parser   *engine.Parser
	showTree bool
}

// run parses an input text and prints the result. It returns an exit code.
func (u *cli) run(input string) int {
	tokens, err := scanner.Tokenize(u.g, strings.NewReader(input))
	if err != nil {
		pterm.Error.Println(err.Error())
		return failure
	}
	res, err := u.parser.ParseTokens(tokens)
	if err != nil {
		pterm.Error.Println(err.Error())
		return failure
	}
	if !res.Accepted {
		pterm.Error.Println(fmt.Sprintf("input does not parse: no derivation for %s", res.Root))
		tracer().Infof("%v", res.Stats)
		return noParse
	}
	res.Forest.WriteTo(os.Stdout)
	pterm.Info.Println(fmt.Sprintf("input accepted, %d rules (%v)", res.Forest.Size(), res.Stats))
	if u.showTree {
		if err := printTree(res.Forest, res.Root); err != nil {
			pterm.Error.Println(err.Error())
		}
	}
	return accepted
}

// repl starts interactive mode.
func (u *cli) repl() error {
	rl, err := readline.New("unger> ")
	if err != nil {
		return err
	}
	defer rl.Close()
	pterm.Info.Println("Welcome to Unger")
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		u.run(line)
	}
	println("Good bye!")
	return nil
}
