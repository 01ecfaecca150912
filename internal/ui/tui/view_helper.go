package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/vilain/internal/domain"
)

const maxPreviewItems = 12

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func renderDomainSummary(d domain.Domain) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Domain: %s\n\n", d.Name)

	fmt.Fprintf(&b, "Predicates (%d):\n", len(d.Predicates))
	writeCapped(&b, len(d.Predicates), func(i int) string {
		p := d.Predicates[i]
		if p.Comment != "" {
			return p.Raw + "  ; " + clampString(p.Comment, 48)
		}
		return p.Raw
	})

	fmt.Fprintf(&b, "\nActions (%d):\n", len(d.Actions))
	writeCapped(&b, len(d.Actions), func(i int) string {
		a := d.Actions[i]
		return fmt.Sprintf("%s %s  pre=%d eff=%d", a.Name, a.Parameters, len(a.Precondition), len(a.Effect))
	})

	return b.String()
}

func renderProblemSummary(p domain.Problem) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Problem: %s", p.Name)
	if p.DomainName != "" {
		fmt.Fprintf(&b, " (domain %s)", p.DomainName)
	}
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Objects (%d):\n", len(p.Objects))
	writeCapped(&b, len(p.Objects), func(i int) string {
		return p.Objects[i].Symbol + " - " + p.Objects[i].Type
	})

	fmt.Fprintf(&b, "\nInit (%d):\n", len(p.Init))
	writeCapped(&b, len(p.Init), func(i int) string { return p.Init[i].Raw })

	fmt.Fprintf(&b, "\nGoal (%d):\n", len(p.Goal))
	writeCapped(&b, len(p.Goal), func(i int) string { return p.Goal[i].Raw })

	return b.String()
}

func renderVocabularySummary(v domain.Vocabulary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Vocabulary: %s\n\n", v.Name)
	fmt.Fprintf(&b, "Detect: %s\n\n", strings.Join(v.Detect, ", "))

	b.WriteString("Categories:\n")
	for _, c := range v.Categories {
		fmt.Fprintf(&b, "  - %s: %s\n", c.Type, strings.Join(c.Labels, ", "))
	}
	return b.String()
}

func writeCapped(b *strings.Builder, n int, line func(i int) string) {
	if n == 0 {
		b.WriteString("  (none)\n")
		return
	}
	for i := 0; i < n && i < maxPreviewItems; i++ {
		b.WriteString("  - ")
		b.WriteString(line(i))
		b.WriteString("\n")
	}
	if n > maxPreviewItems {
		fmt.Fprintf(b, "  … %d more\n", n-maxPreviewItems)
	}
}
