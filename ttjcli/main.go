package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/fontdiff/dfont"
	"github.com/npillmayer/fontdiff/internal/fontload"
	"github.com/npillmayer/fontdiff/ttj"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'fontdiff'
func tracer() tracing.Trace {
	return tracing.Select("fontdiff")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":     "go",
		"trace.fontdiff":      "Info",
		"trace.fontdiff.ttj":  "Error",
		"trace.font.opentype": "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	maxChanges := flag.Int("max-changes", 128, "Maximum number of changes to report on a level")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError)           // will set the correct level later
	pterm.Info.Println("Welcome to the font JSON explorer") // colored welcome message
	//
	// set up REPL
	repl, err := readline.New("ttj > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := NewIntp(*maxChanges)
	intp.repl = repl
	//
	// load fonts to use
	for slot, name := range flag.Args() {
		if slot > 1 {
			pterm.Error.Printf("ignoring font %s, at most two fonts are supported\n", name)
			break
		}
		if err := intp.loadFont(name, slot); err != nil { // font names provided as arguments
			tracer().Errorf(err.Error())
			os.Exit(4)
		}
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
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

// fontSlot holds a loaded font together with its serialization.
type fontSlot struct {
	name string
	font *dfont.DFont
	doc  ttj.Document
}

// Intp is our interpreter object. It explores the serialization of font A,
// and of font B if one is loaded, along a common path of keys.
type Intp struct {
	repl       *readline.Instance
	fonts      [2]*fontSlot
	path       []string
	maxChanges int
}

// NewIntp creates an interpreter without fonts.
func NewIntp(maxChanges int) *Intp {
	return &Intp{path: make([]string, 0, 32), maxChanges: maxChanges}
}

func (intp *Intp) String() string {
	if intp == nil || intp.fonts[0] == nil {
		return "()"
	}
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("( A=%s", intp.fonts[0].name))
	if intp.fonts[1] != nil {
		sb.WriteString(fmt.Sprintf(" B=%s", intp.fonts[1].name))
	}
	sb.WriteString(" ) /")
	sb.WriteString(strings.Join(intp.path, "/"))
	return sb.String()
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := intp.parseCommand(line)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		err, quit := intp.execute(cmd)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

type Op struct {
	code   int
	arg    string
	format string
}

type Command struct {
	count int
	op    [32]Op
}

const NOOP = -1
const (
	// op-code QUIT will not have arguments
	QUIT int = iota
	// op-codes below may have arguments
	HELP
	LOAD
	TABLES
	CD
	UP
	LS
	PRINT
	DIFF
	KERNS
)

var opMap = map[string]int{
	"quit":   QUIT,
	"help":   HELP,
	"load":   LOAD,
	"tables": TABLES,
	"cd":     CD,
	"up":     UP,
	"ls":     LS,
	"print":  PRINT,
	"diff":   DIFF,
	"kerns":  KERNS,
}

var opNames = []string{
	"quit",
	"help",
	"load",
	"tables",
	"cd",
	"up",
	"ls",
	"print",
	"diff",
	"kerns",
}

// parseCommand splits a line into steps separated by blanks. Each step is
// an op-code with optional argument and format, separated by colons, e.g.
// "cd:GPOS/lookup_list" or "load:new.ttf:b" or "print:compact".
func (intp *Intp) parseCommand(line string) (*Command, error) {
	command := &Command{}
	for i := range command.op {
		command.op[i].code = NOOP
	}
	steps := strings.Fields(line)
	if len(steps) > len(command.op) {
		return nil, fmt.Errorf("too many steps in command: %d", len(steps))
	}
	command.count = len(steps)
	for i, step := range steps {
		c := strings.SplitN(step, ":", 3)
		code, ok := opMap[strings.ToLower(c[0])]
		if !ok {
			code = HELP
		}
		command.op[i].code = code
		if code == QUIT {
			return command, nil
		}
		command.op[i].arg = getOptArg(c, 1)
		command.op[i].format = getOptArg(c, 2)
		if command.op[i].arg == "" {
			tracer().Debugf("%s", opNames[code])
		} else {
			tracer().Debugf("%s: looking for '%s'", opNames[code], command.op[i].arg)
		}
	}
	return command, nil
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:   quitOp,
	HELP:   helpOp,
	LOAD:   loadOp,
	TABLES: tablesOp,
	CD:     cdOp,
	UP:     upOp,
	LS:     lsOp,
	PRINT:  printOp,
	DIFF:   diffOp,
	KERNS:  kernsOp,
}

func (intp *Intp) execute(cmd *Command) (err error, stop bool) {
	tracer().Debugf("cmd = %v", cmd.op[:cmd.count])
	for _, c := range cmd.op {
		if c.code == NOOP {
			break
		}
		f, ok := commandFn[c.code]
		if !ok {
			pterm.Error.Printf("unknown command code: %d\n", c.code)
			return nil, false
		}
		err, stop = f(intp, &c)
		if err != nil {
			pterm.Error.Println(err)
			return
		}
		if stop {
			return
		}
	}
	return
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	pterm.Println("Goodbye!")
	return nil, true
}

// --- Font Loading -----------------------------------------------------

// loadFont loads a font into slot 0 (font A) or slot 1 (font B) and
// serializes the fonts loaded. Without font A, the font is loaded as font A.
func (intp *Intp) loadFont(fontname string, slot int) error {
	f, err := fontload.Load(fontname)
	if err != nil {
		tracer().Errorf("cannot load font %s: %s", fontname, err)
		return err
	}
	tracer().Infof("loaded SFNT font = %s", f.Fontname)
	df, err := dfont.New(f.Binary)
	if err != nil {
		tracer().Errorf("cannot decode font %s: %s", fontname, err)
		return err
	}
	if slot == 1 && intp.fonts[0] == nil {
		slot = 0
	}
	intp.fonts[slot] = &fontSlot{name: f.Fontname, font: df}
	intp.serialize()
	pterm.Printf("font tables: %v\n", intp.fonts[slot].doc.Keys())
	return nil
}

// serialize serializes the fonts loaded. If glyph names of font B are not
// compatible with those of font A, font B is serialized with the names of
// font A.
func (intp *Intp) serialize() {
	a, b := intp.fonts[0], intp.fonts[1]
	if a == nil {
		return
	}
	namesA := ttj.NewNameMap(a.font.Font)
	a.doc = ttj.FontToJSON(a.font.Font, namesA)
	if b == nil {
		return
	}
	namesB := ttj.NewNameMap(b.font.Font)
	if !namesA.Compatible(namesB) {
		tracer().Infof("Glyph names differ dramatically between fonts, using font names from font A")
		namesB = namesA
	}
	b.doc = ttj.FontToJSON(b.font.Font, namesB)
}

// ----------------------------------------------------------------------

var ERR_NO_FONT = errors.New("no font loaded")
var ERR_NO_SECOND_FONT = errors.New("no second font loaded")

func (intp *Intp) checkFont() error {
	if intp.fonts[0] == nil {
		return ERR_NO_FONT
	}
	return nil
}

// node returns the document at the current path in the font of a slot.
func (intp *Intp) node(slot int) (ttj.Document, bool) {
	if intp.fonts[slot] == nil {
		return ttj.Null(), false
	}
	d := intp.fonts[slot].doc
	for _, key := range intp.path {
		var ok bool
		if d, ok = step(d, key); !ok {
			return ttj.Null(), false
		}
	}
	return d, true
}

// step descends into a map by key or into an array by index.
func step(d ttj.Document, key string) (ttj.Document, bool) {
	switch d.Kind() {
	case ttj.KindMap:
		return d.Get(key)
	case ttj.KindArray:
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 || i >= d.Len() {
			return ttj.Null(), false
		}
		return d.Index(i), true
	}
	return ttj.Null(), false
}

func getOptArg(s []string, inx int) string {
	if len(s) > inx {
		return s[inx]
	}
	return ""
}

func (op *Op) noArg() bool {
	return op.arg == ""
}

func (op *Op) hasArg() (string, bool) {
	if op.arg == "" {
		return "", false
	}
	return op.arg, true
}
