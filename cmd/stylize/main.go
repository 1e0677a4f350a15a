package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/stylize/core"
	"github.com/npillmayer/stylize/engine/history"
	"github.com/npillmayer/stylize/engine/style"
	"github.com/pterm/pterm"
	"golang.org/x/text/transform"
)

// tracer traces with key 'stylize.cli'
func tracer() tracing.Trace {
	return tracing.Select("stylize.cli")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":       "go",
		"trace.stylize.cli":     "Info",
		"trace.stylize.style":   "Error",
		"trace.stylize.history": "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	appkey := flag.String("appkey", "", "Application key, names the configuration folder")
	histfile := flag.String("history", "", "History file (default in user configuration folder)")
	limit := flag.Int("limit", history.DefaultLimit, "Maximum number of history entries")
	styleID := flag.String("style", "", "Convert stdin with this style and exit")
	flag.Parse()
	tracer().SetTraceLevel(traceLevel(*tlevel))
	tracing.Select("stylize.history").SetTraceLevel(traceLevel(*tlevel))
	tracing.Select("stylize.style").SetTraceLevel(traceLevel(*tlevel))

	if *appkey != "" {
		conf["app-key"] = *appkey
	}
	if *histfile != "" {
		conf["history-file"] = *histfile
	}
	conf["history-limit"] = *limit

	reg := style.NewRegistry()
	if *styleID != "" { // non-interactive mode
		if err := streamStyle(reg, *styleID, os.Stdin, os.Stdout); err != nil {
			core.UserError(err)
			os.Exit(2)
		}
		return
	}

	pterm.Info.Println("Welcome to the Unicode text styler") // colored welcome message
	cfg, err := history.ConfigFrom(conf)
	if err != nil {
		pterm.Warning.Println("history will not be saved: " + core.UserMessage(err))
	}
	store := history.Open(cfg)
	if err := store.LastError(); err != nil {
		pterm.Warning.Println(core.UserMessage(err))
	}
	//
	// set up REPL
	intp := NewIntp(reg, store)
	repl, err := readline.NewEx(&readline.Config{
		Prompt:       "stylize > ",
		AutoComplete: intp.completer(),
		HistoryLimit: cfg.Limit,
	})
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp.repl = repl
	//
	// start receiving commands
	pterm.Info.Println("Type 'help' for a list of commands, quit with <ctrl>D")
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func traceLevel(l string) tracing.TraceLevel {
	switch strings.ToLower(l) {
	case "debug":
		return tracing.LevelDebug
	case "info":
		return tracing.LevelInfo
	}
	return tracing.LevelError
}

// streamStyle copies r to w, converting with a style. Styles which operate
// on single characters are streamed, all others convert the whole input.
func streamStyle(reg *style.Registry, id string, r io.Reader, w io.Writer) error {
	s, err := reg.Lookup(id)
	if err != nil {
		return err
	}
	if tr, ok := style.Transformer(s); ok {
		if _, err = io.Copy(w, transform.NewReader(r, tr)); err != nil {
			return core.WrapError(err, core.EIO, "conversion with %s failed", id)
		}
		return nil
	}
	tracer().Debugf("style %s needs the complete input", id)
	text, err := io.ReadAll(r)
	if err != nil {
		return core.WrapError(err, core.EIO, "cannot read input")
	}
	_, err = io.WriteString(w, s.Convert(string(text)))
	return err
}
