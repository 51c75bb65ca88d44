// Package report renders the sprint review as markdown and as styled
// terminal output.
package report

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/thenoetrevino/sprintsim/internal/models"
	"github.com/thenoetrevino/sprintsim/internal/simulation"
)

// AutoStyle selects a glamour style based on the terminal background
const AutoStyle = "auto"

// Markdown builds the review document for s. generated is printed in the
// header; pass the zero time to omit it.
func Markdown(s simulation.State, facilitator string, generated time.Time) string {
	summary := simulation.Review(s)

	var b strings.Builder
	b.WriteString("# Sprint Review\n\n")
	if facilitator != "" {
		fmt.Fprintf(&b, "Facilitator: **%s**", facilitator)
		if !generated.IsZero() {
			fmt.Fprintf(&b, " · %s", generated.Format("2006-01-02 15:04"))
		}
		b.WriteString("\n\n")
	}

	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Features in sprint | %d |\n", summary.Items)
	fmt.Fprintf(&b, "| Total effort | %d |\n", summary.TotalEffort)
	fmt.Fprintf(&b, "| Completed effort | %d |\n", summary.CompletedEffort)
	fmt.Fprintf(&b, "| Completion | %.0f%% |\n", summary.CompletionPercent)
	for _, status := range models.Statuses {
		fmt.Fprintf(&b, "| %s | %d |\n", status.Title(), summary.Counts[status])
	}

	for _, status := range models.Statuses {
		items := simulation.Column(s, status)
		fmt.Fprintf(&b, "\n## %s\n\n", status.Title())
		if len(items) == 0 {
			b.WriteString("_Nothing here._\n")
			continue
		}
		for _, item := range items {
			fmt.Fprintf(&b, "- **%s** (effort %d, score %.1f)\n",
				escape(item.Feature.Name), item.Effort, item.Score())
		}
	}

	return b.String()
}

// escape neutralizes markdown emphasis characters in feature names
func escape(s string) string {
	return strings.NewReplacer("*", `\*`, "_", `\_`, "`", "\\`", "|", `\|`).Replace(s)
}

type rendererKey struct {
	style string
	width int
}

// Cache glamour renderers by style and width to avoid expensive re-creation
var rendererCache sync.Map // map[rendererKey]*glamour.TermRenderer

func getRenderer(style string, width int) (*glamour.TermRenderer, error) {
	key := rendererKey{style: style, width: width}
	if cached, ok := rendererCache.Load(key); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	styleOpt := glamour.WithStandardStyle(style)
	if style == "" || style == AutoStyle {
		styleOpt = glamour.WithAutoStyle()
	}

	renderer, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return nil, err
	}

	rendererCache.Store(key, renderer)
	return renderer, nil
}

// Render styles markdown for the terminal with the named glamour style
// ("dark", "light", "notty", "auto", ...)
func Render(markdown, style string, width int) (string, error) {
	renderer, err := getRenderer(style, width)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := renderer.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}
