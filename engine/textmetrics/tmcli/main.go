/*
Command tmcli measures styled runs of text.

Usage:

	tmcli [-trace Level] [-style classes] [-set key=value …] [text …]

Without text arguments, tmcli enters interactive mode. Every line entered is
measured with the current style. Lines starting with a colon are commands:

	:style strong,em,h2   set the style for subsequent lines
	:fonts                list the loaded fonts
	:config               show the configuration
	:help                 show help
	quit                  leave

Configuration keys (font.default, size.h1, …) may be overridden with -set.
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/mdpdf/core"
	"github.com/npillmayer/mdpdf/core/font/fontregistry"
	"github.com/npillmayer/mdpdf/engine/style"
	"github.com/npillmayer/mdpdf/engine/textmetrics"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'mdpdf.text'
func tracer() tracing.Trace {
	return tracing.Select("mdpdf.text")
}

// settings collects -set flags.
type settings testconfig.Conf

func (s settings) String() string {
	return fmt.Sprintf("%v", testconfig.Conf(s))
}

func (s settings) Set(kv string) error {
	k, v, ok := strings.Cut(kv, "=")
	if !ok || strings.TrimSpace(k) == "" {
		return fmt.Errorf("expected key=value, got %q", kv)
	}
	s[strings.TrimSpace(k)] = strings.TrimSpace(v)
	return nil
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":   "go",
		"trace.mdpdf.text":  "Info",
		"trace.mdpdf.fonts": "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	overrides := settings{}
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	stylespec := flag.String("style", "", "Style classes, e.g. 'strong,em,h2'")
	flag.Var(overrides, "set", "Override a configuration key: key=value (repeatable)")
	flag.Parse()
	tracer().SetTraceLevel(traceLevel(*tlevel))
	tracer().Infof("Trace level is %s", *tlevel)
	//
	intp, err := newIntp(overrides)
	if err != nil {
		core.UserError(err)
		os.Exit(2)
	}
	if err := intp.setStyle(*stylespec); err != nil {
		core.UserError(err)
		os.Exit(2)
	}
	if flag.NArg() > 0 {
		intp.measure(flag.Args()...)
		return
	}
	//
	// set up REPL
	repl, err := readline.New("tm > ")
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	defer repl.Close()
	intp.repl = repl
	pterm.Info.Println("Welcome to the text metrics CLI") // colored welcome message
	pterm.Info.Println("Quit with <ctrl>D")               // inform user how to stop the CLI
	intp.REPL()                                           // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
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
	case "error":
		return tracing.LevelError
	}
	return tracing.LevelInfo
}

// Intp is our interpreter object
type Intp struct {
	env   *textmetrics.Environment
	style style.Style
	repl  *readline.Instance
}

func newIntp(overrides settings) (*Intp, error) {
	conf := defaultSettings()
	for k, v := range overrides {
		conf[k] = v
	}
	tmconf, err := textmetrics.ConfigFromSettings(conf)
	if err != nil {
		return nil, err
	}
	env, err := textmetrics.NewEnvironment(context.Background(), fontregistry.GlobalRegistry(), tmconf)
	if err != nil {
		return nil, err
	}
	return &Intp{env: env}, nil
}

func defaultSettings() testconfig.Conf {
	d := textmetrics.DefaultConfig()
	size := func(s fmt.Stringer) string {
		return strings.TrimSuffix(s.String(), "bp")
	}
	return testconfig.Conf{
		textmetrics.KeyDefaultFont:    d.DefaultFont,
		textmetrics.KeyBoldFont:       d.BoldFont,
		textmetrics.KeyItalicFont:     d.ItalicFont,
		textmetrics.KeyBoldItalicFont: d.BoldItalicFont,
		textmetrics.KeyMonoFont:       d.MonoFont,
		textmetrics.KeyH1Size:         size(d.H1Size),
		textmetrics.KeyH2Size:         size(d.H2Size),
		textmetrics.KeyH3Size:         size(d.H3Size),
		textmetrics.KeyH4Size:         size(d.H4Size),
		textmetrics.KeyDefaultSize:    size(d.DefaultSize),
	}
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
		if quit := intp.execute(line); quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

func (intp *Intp) execute(line string) bool {
	if !strings.HasPrefix(line, ":") {
		if line == "quit" {
			return true
		}
		intp.measure(line)
		return false
	}
	cmd, arg, _ := strings.Cut(line[1:], " ")
	tracer().Debugf("command %q, argument %q", cmd, arg)
	switch strings.ToLower(cmd) {
	case "quit", "q":
		return true
	case "style", "s":
		if err := intp.setStyle(arg); err != nil {
			pterm.Error.Println(core.UserMessage(err))
		}
	case "fonts":
		intp.listFonts()
	case "config":
		intp.showConfig()
	default:
		help()
	}
	return false
}

func (intp *Intp) setStyle(spec string) error {
	s, err := style.Parse(spec)
	if err != nil {
		return err
	}
	intp.style = s
	pterm.Printfln("style is now %s", s)
	return nil
}

func (intp *Intp) measure(texts ...string) {
	f := textmetrics.FontFromStyle(intp.env, intp.style)
	scale := textmetrics.ScaleFromStyle(intp.env.Config(), intp.style)
	height := textmetrics.FontHeight(f, scale)
	data := pterm.TableData{{"Text", "Style", "Font", "Size", "Width", "Height"}}
	for _, text := range texts {
		width := textmetrics.WidthOfText(f, scale, text)
		data = append(data, []string{
			text, intp.style.String(), f.Fontname, scale.String(), width.String(), height.String(),
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		tracer().Errorf("%v", err)
	}
}

func (intp *Intp) listFonts() {
	data := pterm.TableData{{"Key", "Font", "Path", "Units/em"}}
	reg := intp.env.Registry()
	for _, k := range reg.Names() {
		f, _ := reg.Font(k)
		data = append(data, []string{k, f.Fontname, f.Filepath, fmt.Sprintf("%d", f.UnitsPerEm())})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		tracer().Errorf("%v", err)
	}
}

func (intp *Intp) showConfig() {
	c := intp.env.Config()
	data := pterm.TableData{{"Role", "Font"}}
	for r := textmetrics.RoleRegular; r <= textmetrics.RoleMono; r++ {
		data = append(data, []string{r.String(), c.FontName(r)})
	}
	data = append(data,
		[]string{"h1", c.H1Size.String()},
		[]string{"h2", c.H2Size.String()},
		[]string{"h3", c.H3Size.String()},
		[]string{"h4", c.H4Size.String()},
		[]string{"default", c.DefaultSize.String()},
	)
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		tracer().Errorf("%v", err)
	}
}

func help() {
	pterm.Info.Println("Commands")
	pterm.Println(`
	<text>             measure text with the current style
	:style <classes>   set style, e.g. ':style strong,em,h2' (classes strong, em, code, h1…h4)
	:fonts             list loaded fonts
	:config            show configuration
	quit               leave
	`)
}
