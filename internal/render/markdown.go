// Package render turns a résumé snapshot into Markdown and, through glamour,
// into styled terminal text.
package render

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"

	"github.com/muurk/civi/internal/cv"
)

// Title is the heading used when the snapshot has no name.
const Title = "New Flash CiVi"

// Markdown builds the Markdown document for s. Empty fields are left out of
// the output; a section with no entries says so.
func Markdown(s cv.Snapshot) string {
	var b strings.Builder

	title := strings.TrimSpace(s.General.Name)
	if title == "" {
		title = Title
	}
	b.WriteString("# " + escape(title) + "\n\n")

	var contact []string
	for _, f := range []cv.GeneralField{cv.GeneralEmail, cv.GeneralPhone} {
		if v := strings.TrimSpace(s.General.Get(f)); v != "" {
			contact = append(contact, "**"+f.Label()+":** "+escape(v))
		}
	}
	if len(contact) > 0 {
		b.WriteString(strings.Join(contact, "  \n"))
		b.WriteString("\n\n")
	}

	b.WriteString("## Academic Background\n\n")
	if len(s.Academic) == 0 {
		b.WriteString("_No entries._\n\n")
	}
	for _, a := range s.Academic {
		writeEntry(&b, heading(a.School, a.Title), a.Year, nil)
	}

	b.WriteString("## Professional Experience\n\n")
	if len(s.Professional) == 0 {
		b.WriteString("_No entries._\n\n")
	}
	for _, p := range s.Professional {
		var extra []string
		if v := strings.TrimSpace(p.Role); v != "" {
			extra = append(extra, escape(v))
		}
		writeEntry(&b, heading(p.Company, p.Title), period(p.DateFrom, p.DateTo), extra)
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func heading(primary, secondary string) string {
	primary, secondary = strings.TrimSpace(primary), strings.TrimSpace(secondary)
	switch {
	case primary != "" && secondary != "":
		return escape(primary) + " · " + escape(secondary)
	case primary != "":
		return escape(primary)
	case secondary != "":
		return escape(secondary)
	default:
		return "(untitled)"
	}
}

func period(from, to string) string {
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	switch {
	case from != "" && to != "":
		return from + " - " + to
	case from != "":
		return from + " - present"
	default:
		return to
	}
}

func writeEntry(b *strings.Builder, head, when string, lines []string) {
	b.WriteString("### " + head + "\n\n")
	if when != "" {
		b.WriteString("_" + escape(when) + "_\n\n")
	}
	for _, l := range lines {
		b.WriteString(l + "\n\n")
	}
}

var mdEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"#", `\#`,
	"[", `\[`,
	"]", `\]`,
)

func escape(s string) string {
	return mdEscaper.Replace(s)
}

var (
	renderersMu sync.Mutex
	// Keyed by style and wrap width. Fixed styles avoid the terminal
	// background query WithAutoStyle performs.
	renderers = map[rendererKey]*glamour.TermRenderer{}
)

type rendererKey struct {
	style string
	width int
}

// Terminal renders md with the glamour standard style and word wrap width.
// On any renderer error the raw Markdown is returned.
func Terminal(md, style string, width int) string {
	if width < 20 {
		width = 20
	}
	if style == "" {
		style = "dark"
	}
	key := rendererKey{style: style, width: width}

	renderersMu.Lock()
	r := renderers[key]
	if r == nil {
		var err error
		r, err = glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			renderersMu.Unlock()
			return md
		}
		renderers[key] = r
	}
	renderersMu.Unlock()

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}
