package simulation

import "github.com/thenoetrevino/sprintsim/internal/models"

// TotalEffort sums the effort of every sprint entry regardless of status
func TotalEffort(s State) int {
	total := 0
	for _, entry := range s.Sprint {
		total += entry.Effort
	}
	return total
}

// Summary is the sprint review read model
type Summary struct {
	Items             int
	TotalEffort       int
	CompletedEffort   int
	Counts            map[models.Status]int
	CompletionPercent float64
}

// Review computes the review summary from the current sprint state
func Review(s State) Summary {
	summary := Summary{
		Items:       len(s.Sprint),
		TotalEffort: TotalEffort(s),
		Counts:      make(map[models.Status]int, models.ColumnCount),
	}
	for _, status := range models.Statuses {
		summary.Counts[status] = 0
	}

	for _, entry := range s.Sprint {
		summary.Counts[entry.Status]++
		if entry.Status == models.StatusDone {
			summary.CompletedEffort += entry.Effort
		}
	}
	if summary.TotalEffort > 0 {
		summary.CompletionPercent = float64(summary.CompletedEffort) * 100 / float64(summary.TotalEffort)
	}
	return summary
}
