package simulation

import (
	"slices"

	"github.com/thenoetrevino/sprintsim/internal/models"
)

// ScoreTenths returns ten times the priority score:
//
//	score = (userNeed + businessValue) / 2 - effort * 0.2
//
// Integer arithmetic keeps equal scores exactly equal for ranking.
func ScoreTenths(f models.Feature) int {
	return (f.UserNeed+f.BusinessValue)*5 - f.Effort*2
}

// Score returns the priority score of a feature
func Score(f models.Feature) float64 {
	return float64(ScoreTenths(f)) / 10
}

// RankedFeature pairs a feature with its score
type RankedFeature struct {
	models.Feature
	Score float64
}

// Ranked returns the backlog sorted by score, highest first. Features with
// equal scores keep their creation order. Scores are computed on every call.
func Ranked(s State) []RankedFeature {
	features := BacklogFeatures(s)
	slices.SortStableFunc(features, func(a, b models.Feature) int {
		return ScoreTenths(b) - ScoreTenths(a)
	})

	ranked := make([]RankedFeature, len(features))
	for i, f := range features {
		ranked[i] = RankedFeature{Feature: f, Score: Score(f)}
	}
	return ranked
}
