package main

import (
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/derekparker/trie"
	"github.com/npillmayer/stylize/core"
	"github.com/npillmayer/stylize/engine/history"
	"github.com/npillmayer/stylize/engine/style"
	"github.com/pterm/pterm"
)

// Intp is our interpreter object
type Intp struct {
	reg   *style.Registry
	store *history.Store
	repl  *readline.Instance
	names *trie.Trie // style ids and category keys, for completion
}

// NewIntp creates an interpreter working on a style registry and a
// history store.
func NewIntp(reg *style.Registry, store *history.Store) *Intp {
	intp := &Intp{reg: reg, store: store, names: trie.New()}
	for _, id := range reg.IDs() {
		intp.names.Add(id, "style")
	}
	for _, cat := range reg.Categories() {
		intp.names.Add(cat, "category")
	}
	store.AddListener(func() {
		tracer().Debugf("history now holds %d entries", store.Size())
	})
	return intp
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd := parseCommand(line)
		quit, err := intp.execute(cmd)
		if err != nil {
			pterm.Error.Println(core.UserMessage(err))
			tracer().Debugf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Op codes of commands.
const (
	QUIT int = iota
	HELP
	STYLES
	CATEGORIES
	CONVERT
	APPLY
	HISTORY
	EXPORT
	CLEAR
)

// Command is a parsed input line.
type Command struct {
	code int
	name string // first word of the line
	arg  string // remainder of the line
}

func parseCommand(line string) Command {
	line = strings.TrimSpace(line)
	name, arg := line, ""
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		name, arg = line[:i], strings.TrimSpace(line[i+1:])
	}
	cmd := Command{name: name, arg: arg}
	switch strings.ToLower(name) {
	case "quit", "exit":
		cmd.code = QUIT
	case "styles":
		cmd.code = STYLES
	case "categories":
		cmd.code = CATEGORIES
	case "convert":
		cmd.code = CONVERT
	case "history":
		cmd.code = HISTORY
	case "export":
		cmd.code = EXPORT
	case "clear":
		cmd.code = CLEAR
	case "help", "?":
		cmd.code = HELP
	default:
		cmd.code = APPLY // <style-id> <text>
	}
	tracer().Debugf("parse command = %v", cmd)
	return cmd
}

func (intp *Intp) execute(cmd Command) (bool, error) {
	switch cmd.code {
	case QUIT:
		return true, nil
	case HELP:
		help()
	case STYLES:
		return false, intp.listStyles(cmd.arg)
	case CATEGORIES:
		return false, intp.listCategories()
	case CONVERT:
		return false, intp.convertAll(cmd.arg)
	case APPLY:
		return false, intp.apply(cmd.name, cmd.arg)
	case HISTORY:
		return false, intp.listHistory()
	case EXPORT:
		return false, intp.export(cmd.arg)
	case CLEAR:
		intp.store.Clear()
		pterm.Success.Println("History cleared")
	}
	return false, nil
}

func (intp *Intp) listStyles(category string) error {
	styles := intp.reg.All()
	if category != "" {
		if styles = intp.reg.ByCategory(category); styles == nil {
			return core.Error(core.EMISSING, "no category %q", category)
		}
	}
	data := pterm.TableData{{"Style", "Category", "Icon", "Sample"}}
	for _, s := range styles {
		data = append(data, []string{s.ID, s.Category, s.Icon, s.Convert("Sample")})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func (intp *Intp) listCategories() error {
	data := pterm.TableData{{"Category", "Styles"}}
	for _, cat := range intp.reg.Categories() {
		data = append(data, []string{cat, strconv.Itoa(len(intp.reg.ByCategory(cat)))})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func (intp *Intp) convertAll(text string) error {
	results, err := intp.reg.ConvertAll(text)
	if err != nil {
		return err
	}
	data := pterm.TableData{{"Style", "Result", "Chars", "Width"}}
	for _, r := range results {
		data = append(data, []string{
			r.Style.ID,
			r.Text,
			strconv.Itoa(style.GraphemeCount(r.Text)),
			strconv.Itoa(style.DisplayWidth(r.Text)),
		})
	}
	intp.store.AddEntry(text)
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func (intp *Intp) apply(id, text string) error {
	s, err := intp.reg.Lookup(id)
	if err != nil {
		if similar := intp.names.PrefixSearch(id); len(similar) > 0 {
			sort.Strings(similar)
			pterm.Info.Println("did you mean one of " + strings.Join(similar, ", "))
		}
		return err
	}
	if strings.TrimSpace(text) == "" {
		return core.WrapError(style.ErrEmptyInput, core.EINVALID, "nothing to convert")
	}
	pterm.Println(s.Convert(text))
	intp.store.AddEntry(text)
	return nil
}

func (intp *Intp) listHistory() error {
	entries := intp.store.Entries()
	if len(entries) == 0 {
		pterm.Info.Println("History is empty")
		return nil
	}
	for i, e := range entries {
		pterm.Printfln("%3d %s", i+1, e)
	}
	if err := intp.store.LastError(); err != nil {
		pterm.Warning.Println("history is not saved: " + core.UserMessage(err))
	}
	return nil
}

func (intp *Intp) export(filename string) error {
	report := intp.store.Export()
	if filename == "" {
		pterm.Println(report)
		return nil
	}
	if err := os.WriteFile(filename, []byte(report), 0644); err != nil {
		return core.WrapError(err, core.EIO, "cannot write export to %s", filename)
	}
	pterm.Success.Printfln("Exported %d entries to %s", intp.store.Size(), filename)
	return nil
}

// completer completes command names, style ids and category keys.
func (intp *Intp) completer() readline.AutoCompleter {
	names := func(line string) []string {
		fields := strings.Fields(line)
		prefix := ""
		if len(fields) > 0 && !strings.HasSuffix(line, " ") {
			prefix = fields[len(fields)-1]
		}
		return intp.names.PrefixSearch(prefix)
	}
	return readline.NewPrefixCompleter(
		readline.PcItem("styles", readline.PcItemDynamic(names)),
		readline.PcItem("categories"),
		readline.PcItem("convert"),
		readline.PcItem("history"),
		readline.PcItem("export"),
		readline.PcItem("clear"),
		readline.PcItem("help"),
		readline.PcItem("quit"),
		readline.PcItemDynamic(names),
	)
}

func help() {
	pterm.Info.Println("Commands")
	pterm.Println(`
	styles [category]     list styles, optionally of one category
	categories            list style categories
	convert <text>        convert text with every style
	<style-id> <text>     convert text with a single style
	history               list converted texts, newest first
	export [file]         print or save a report of the history
	clear                 delete the history
	quit                  leave (or <ctrl>D)
	`)
}
