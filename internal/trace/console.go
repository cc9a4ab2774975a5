package trace

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/ib-77/ropenv/pkg/rop"
)

// Printer renders recorded steps and run outcomes for humans.
type Printer struct {
	w      io.Writer
	header lipgloss.Style
	stage  lipgloss.Style
	ok     lipgloss.Style
	fail   lipgloss.Style
	muted  lipgloss.Style
}

// NewPrinter colors its output only when w is a terminal.
func NewPrinter(w io.Writer) *Printer {
	color := false
	if f, ok := w.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return newPrinter(w, color)
}

func newPrinter(w io.Writer, color bool) *Printer {
	p := &Printer{
		w:      w,
		header: lipgloss.NewStyle(),
		stage:  lipgloss.NewStyle(),
		ok:     lipgloss.NewStyle(),
		fail:   lipgloss.NewStyle(),
		muted:  lipgloss.NewStyle(),
	}
	if color {
		p.header = p.header.Bold(true).Foreground(lipgloss.Color("6"))
		p.stage = p.stage.Foreground(lipgloss.Color("4"))
		p.ok = p.ok.Foreground(lipgloss.Color("2"))
		p.fail = p.fail.Bold(true).Foreground(lipgloss.Color("1"))
		p.muted = p.muted.Foreground(lipgloss.Color("8"))
	}
	return p
}

func (p *Printer) Header(format string, args ...any) {
	fmt.Fprintln(p.w, p.header.Render(fmt.Sprintf(format, args...)))
}

// Steps prints one line per recorded step, indented by scope depth.
func (p *Printer) Steps(steps []Step) {
	for i, s := range steps {
		indent := strings.Repeat("  ", s.Depth+1)
		label := p.stage.Render(fmt.Sprintf("%d. %s", i+1, s.Stage))

		var value string
		switch {
		case s.Cancelled:
			value = p.fail.Render("cancelled: " + s.Err.Error())
		case s.Err != nil:
			value = p.fail.Render("failed: " + s.Err.Error())
		default:
			value = FormatValue(s.Output)
		}
		fmt.Fprintf(p.w, "%s%s: %s %s\n", indent, label, value, p.muted.Render("("+s.Elapsed.String()+")"))
	}
}

// Outcome prints the terminal result of a run.
func Outcome[T any](p *Printer, name string, r rop.WithCancel[T]) {
	switch {
	case r.IsSuccess():
		fmt.Fprintf(p.w, "%s %s\n", p.ok.Render("ok    "+name+":"), FormatValue(r.Result()))
	case r.IsCancel():
		fmt.Fprintf(p.w, "%s %v\n", p.fail.Render("cancel "+name+":"), r.Err())
	default:
		fmt.Fprintf(p.w, "%s %v\n", p.fail.Render("error "+name+":"), r.Err())
	}
}

// FormatValue prints floats without trailing zeros and everything else with %+v.
func FormatValue(v any) string {
	switch x := v.(type) {
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case string:
		return strconv.Quote(x)
	default:
		return fmt.Sprintf("%+v", v)
	}
}
