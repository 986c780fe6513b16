package driver

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles used for the per-branch progress
// lines printed during a run.
type Styles struct {
	Target  lipgloss.Style
	Success lipgloss.Style
	Skipped lipgloss.Style
	Blocked lipgloss.Style
}

// DefaultStyles returns the styles used on a color-capable terminal.
func DefaultStyles() Styles {
	return Styles{
		Target:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Success: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		Skipped: lipgloss.NewStyle().Bold(true),
		Blocked: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
	}
}

// PlainStyles returns styles that render with no ANSI codes, used
// when stdout is not a terminal.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{Target: plain, Success: plain, Skipped: plain, Blocked: plain}
}

// Printer writes the one-line-per-branch progress summary.
type Printer struct {
	out    io.Writer
	styles Styles
}

func NewPrinter(out io.Writer, styles Styles) *Printer {
	return &Printer{out: out, styles: styles}
}

func (p *Printer) Target(name string) {
	fmt.Fprintf(p.out, "%s %s\n", p.styles.Target.Render("target"), name)
}

func (p *Printer) SkippedNoUpstream(name string) {
	fmt.Fprintf(p.out, "%s %s (has upstream)\n", p.styles.Skipped.Render("skipped"), name)
}

func (p *Printer) SkippedDirty(name string) {
	fmt.Fprintf(p.out, "%s %s (checked out, dirty)\n", p.styles.Skipped.Render("skipped"), name)
}

func (p *Printer) SkippedLedger(name string) {
	fmt.Fprintf(p.out, "%s %s (blocked, unchanged since last run)\n", p.styles.Skipped.Render("skipped"), name)
}

func (p *Printer) Filtered(name string) {
	fmt.Fprintf(p.out, "%s %s (does not match filter)\n", p.styles.Skipped.Render("skipped"), name)
}

func (p *Printer) UpToDate(name string) {
	fmt.Fprintf(p.out, "%s %s (already up to date)\n", p.styles.Success.Render("ok"), name)
}

func (p *Printer) Rebased(name string) {
	fmt.Fprintf(p.out, "%s %s\n", p.styles.Success.Render("rebased"), name)
}

func (p *Printer) Blocked(name string) {
	fmt.Fprintf(p.out, "%s %s (manual rebase required)\n", p.styles.Blocked.Render("blocked"), name)
}

func (p *Printer) IntegrationNotPulled(name, reason string) {
	fmt.Fprintf(p.out, "%s %s: %s\n", p.styles.Skipped.Render("not pulling"), name, reason)
}
