package analysis

import (
	"fmt"
	"strings"
)

const notAvailable = "Non disponible"

// RenderMarkdown formats an analysis result as a human-readable Markdown
// report. Absent fields render as "Non disponible" or are omitted per field;
// rendering never fails.
func RenderMarkdown(r Result, displayName string) string {
	var b strings.Builder

	name := strings.TrimSpace(displayName)
	if name == "" {
		name = notAvailable
	}
	fmt.Fprintf(&b, "# Analyse du CV de %s\n\n", name)

	b.WriteString("## Résumé\n\n")
	if r.Summary != "" {
		b.WriteString(r.Summary)
	} else {
		b.WriteString(notAvailable)
	}
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "## Missions (%d)\n\n", len(r.Missions))
	for i, m := range r.Missions {
		title := m.Title
		if title == "" {
			title = "Mission"
		}
		fmt.Fprintf(&b, "### %d. %s\n\n", i+1, title)
		fmt.Fprintf(&b, "- Client : %s\n", orNotAvailable(m.Client))
		fmt.Fprintf(&b, "- Période : %s\n", orNotAvailable(m.Period))
		if m.Description != "" {
			fmt.Fprintf(&b, "\n%s\n", m.Description)
		}
		b.WriteString("\n")
	}
	if len(r.Missions) == 0 {
		b.WriteString(notAvailable + "\n\n")
	}

	fmt.Fprintf(&b, "## Compétences (%d)\n\n", len(r.Skills))
	for _, skill := range r.Skills {
		fmt.Fprintf(&b, "- %s\n", skill)
	}
	if len(r.Skills) == 0 {
		b.WriteString(notAvailable + "\n")
	}
	b.WriteString("\n")

	b.WriteString("## Contact\n\n")
	fmt.Fprintf(&b, "- Email : %s\n", orNotAvailable(r.Contact.Email))
	fmt.Fprintf(&b, "- Téléphone : %s\n", orNotAvailable(r.Contact.Phone))

	return b.String()
}

func orNotAvailable(v string) string {
	if strings.TrimSpace(v) == "" {
		return notAvailable
	}
	return v
}
