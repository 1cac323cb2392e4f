package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/bricktsre/Airline-graph/config"
	"github.com/bricktsre/Airline-graph/core"
	"github.com/bricktsre/Airline-graph/network"
)

var (
	colorTitle = lipgloss.Color("#2CD7C7")
	colorCity  = lipgloss.Color("#20B9B4")
	colorPrice = lipgloss.Color("#F4D03F")
	colorMuted = lipgloss.Color("#2C4A54")
)

var styles = struct {
	Title lipgloss.Style
	City  lipgloss.Style
	Price lipgloss.Style
	Muted lipgloss.Style
}{
	Title: lipgloss.NewStyle().Bold(true).Foreground(colorTitle),
	City:  lipgloss.NewStyle().Foreground(colorCity),
	Price: lipgloss.NewStyle().Foreground(colorPrice),
	Muted: lipgloss.NewStyle().Foreground(colorMuted),
}

// printer writes human-readable results, styled only when color is enabled.
type printer struct {
	w     io.Writer
	color bool
}

// newPrinter resolves the color mode against w. In auto mode only a terminal gets color.
func newPrinter(w io.Writer, mode string) *printer {
	p := &printer{w: w}
	switch mode {
	case config.ColorAlways:
		p.color = true
	case config.ColorNever:
		p.color = false
	default:
		if f, ok := w.(*os.File); ok {
			p.color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
	}

	return p
}

func (p *printer) style(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}

	return s.Render(text)
}

func (p *printer) title(format string, args ...any) {
	fmt.Fprintln(p.w, p.style(styles.Title, fmt.Sprintf(format, args...)))
}

func (p *printer) muted(format string, args ...any) {
	fmt.Fprintln(p.w, p.style(styles.Muted, fmt.Sprintf(format, args...)))
}

func (p *printer) city(name string) string { return p.style(styles.City, name) }

func miles(d int64) string { return humanize.Comma(d) + " miles" }

func dollars(v float64) string { return "$" + humanize.FormatFloat("#,###.##", v) }

// route prints "A to B is N miles for $P".
func (p *printer) route(r network.Route) {
	fmt.Fprintf(p.w, "%s to %s is %s for %s\n",
		p.city(r.From), p.city(r.To), miles(r.Distance), p.style(styles.Price, dollars(r.Price)))
}

// path prints the city chain followed by its totals.
func (p *printer) path(n *network.Network, path *core.Path) {
	names := n.PathNames(path)
	for i := range names {
		names[i] = p.city(names[i])
	}
	fmt.Fprintf(p.w, "%s  (%d hops, %s, %s)\n",
		strings.Join(names, " -> "), path.Hops(), miles(path.Distance()),
		p.style(styles.Price, dollars(path.Price())))
}
