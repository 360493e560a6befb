package engine

import (
	"strings"

	"github.com/tatianab/citydrift/internal/models"
)

// Collapse reasons, one per critical threshold.
const (
	ReasonHealth   = "body gave out"
	ReasonMental   = "mental breakdown"
	ReasonMorality = "social death"
	ReasonDebt     = "crushing debt"
)

// ApplyConsequence returns stats after c. Cash is not bounded; the other
// three stats are clamped to [StatMin, StatMax].
func ApplyConsequence(stats models.PlayerStats, c models.ChoiceConsequence) models.PlayerStats {
	return models.PlayerStats{
		Cash:     stats.Cash + c.CashChange,
		Health:   clampStat(stats.Health + c.HealthChange),
		Mental:   clampStat(stats.Mental + c.MentalChange),
		Morality: clampStat(stats.Morality + c.MoralityChange),
	}
}

func clampStat(v int) int {
	return max(models.StatMin, min(models.StatMax, v))
}

// CheckCriticalFailure reports whether stats end the run early. A single
// breached threshold is survivable; CollapsesForFailure simultaneous
// breaches are not, and the returned reason names all of them.
func CheckCriticalFailure(stats models.PlayerStats) (string, bool) {
	var reasons []string
	if stats.Health < models.HealthThreshold {
		reasons = append(reasons, ReasonHealth)
	}
	if stats.Mental < models.MentalThreshold {
		reasons = append(reasons, ReasonMental)
	}
	if stats.Morality < models.MoralityThreshold {
		reasons = append(reasons, ReasonMorality)
	}
	if stats.Cash < models.DebtThreshold {
		reasons = append(reasons, ReasonDebt)
	}
	if len(reasons) < models.CollapsesForFailure {
		return "", false
	}
	return "Multiple collapse: " + strings.Join(reasons, " + "), true
}
