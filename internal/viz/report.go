package viz

import (
	"strings"

	"github.com/san-kum/gpuhint/internal/gpupref"
)

// RenderCapability describes a resolution result. It reports what could be
// resolved, not whether the driver would honor the preference.
func RenderCapability(c gpupref.Capability, t Theme) string {
	s := newStyles(t)
	var b strings.Builder

	b.WriteString(s.title.Render("gpu preference hint"))
	b.WriteString("\n")

	row := func(label, value string) {
		b.WriteString(s.label.Render(label))
		b.WriteString(value)
		b.WriteString("\n")
	}

	if c.Status == gpupref.NotApplicable {
		row("status", s.warn.Render(c.Status.String()))
		row("", s.value.Render("this platform has no GPU preference entry point"))
		return b.String()
	}

	row("module", s.value.Render(c.Module))
	row("symbol", s.value.Render(c.Symbol))
	row("reached", s.value.Render(c.State().String()))

	switch c.Status {
	case gpupref.Available:
		row("status", s.ok.Render(c.Status.String()))
		row("value", s.value.Render(gpupref.HighPerformance.String()))
	default:
		row("status", s.bad.Render(c.Status.String()))
	}
	if c.Err != nil {
		row("error", s.value.Render(c.Err.Error()))
	}
	return b.String()
}
