package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/moodjournal/internal/client/models"
)

const (
	defaultWidth  = 80
	markdownWidth = 100
	shortIDLen    = 8
	timeLayout    = "Mon Jan 2 2006 15:04"
)

// printer writes user-facing output. Styles are bound to the writer, so
// output to a non-terminal carries no escape codes. Writes are serialized
// because the online watcher prints from its own goroutine.
type printer struct {
	mu    sync.Mutex
	w     io.Writer
	r     *lipgloss.Renderer
	md    mdRenderer
	width int
}

func newPrinter(w io.Writer) *printer {
	return &printer{w: w, r: lipgloss.NewRenderer(w), width: terminalWidth(defaultWidth)}
}

func (p *printer) println(a ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.w, a...)
}

func (p *printer) printf(format string, a ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.w, format, a...)
}

func (p *printer) fg(c lipgloss.TerminalColor) lipgloss.Style {
	return p.r.NewStyle().Foreground(c)
}

func (p *printer) heading(s string) string { return p.fg(ColorAccent).Bold(true).Render(s) }
func (p *printer) dim(s string) string     { return p.fg(ColorTextDim).Render(s) }
func (p *printer) errText(s string) string { return p.fg(ColorError).Render(s) }
func (p *printer) success(s string) string { return p.fg(ColorSuccess).Render(s) }
func (p *printer) warn(s string) string    { return p.fg(ColorWarn).Render(s) }

func moodText(m models.Mood) string {
	d := models.DescribeOrFallback(m)
	if d.Emoji == "" {
		return d.Label
	}
	return d.Emoji + " " + d.Label
}

// moodLabel returns the emoji and label of m, optionally padded to width
// cells, in the mood's color.
func (p *printer) moodLabel(m models.Mood, width int) string {
	d := models.DescribeOrFallback(m)
	label := moodText(m)
	if pad := width - lipgloss.Width(label); pad > 0 {
		label += strings.Repeat(" ", pad)
	}
	return p.fg(lipgloss.Color(d.Color)).Bold(true).Render(label)
}

// blocks returns n bar glyphs in color.
func (p *printer) blocks(n int, color string) string {
	if n <= 0 {
		return ""
	}
	return p.fg(lipgloss.Color(color)).Render(strings.Repeat(barGlyph, n))
}

func (p *printer) markdown(s string) string {
	return p.md.render(s, min(p.width, markdownWidth))
}

func shortID(id string) string {
	if len(id) > shortIDLen {
		return id[:shortIDLen]
	}
	return id
}

// entryTime formats the creation time in loc, or returns the raw value when
// it cannot be parsed.
func entryTime(e models.Entry, loc *time.Location) string {
	t, ok := e.Created()
	if !ok {
		return e.CreatedAt
	}
	return t.In(loc).Format(timeLayout)
}

// printEntry writes one entry card:
//
//	[1a2b3c4d] 😊 Happy  Mon Oct 12 2026 09:30
//	  #Work #Sleep
//	  note text
//	  vibe check reply
func (p *printer) printEntry(e models.Entry, loc *time.Location) {
	p.println(fmt.Sprintf("%s %s  %s",
		p.dim("["+shortID(e.ID)+"]"), p.moodLabel(e.Mood, 0), p.dim(entryTime(e, loc))))
	if len(e.Tags) > 0 {
		tags := make([]string, len(e.Tags))
		for i, t := range e.Tags {
			tags[i] = "#" + t
		}
		p.println("  " + p.fg(ColorAccent).Render(strings.Join(tags, " ")))
	}
	for _, line := range strings.Split(e.Note, "\n") {
		p.println("  " + line)
	}
	if e.AIResponse != "" {
		p.println("  " + p.dim("✨ "+firstLine(e.AIResponse)))
	}
	if e.Disclaimer != "" {
		p.println("  " + p.dim(e.Disclaimer))
	}
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " …"
	}
	return s
}
