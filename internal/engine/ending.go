package engine

import "github.com/tatianab/citydrift/internal/models"

// Ending classifies how a run finished.
type Ending string

const (
	EndingCollapse     Ending = "COLLAPSE"
	EndingUnderclass   Ending = "UNDERCLASS"
	EndingMiddleClass  Ending = "MIDDLE_CLASS"
	EndingBreakthrough Ending = "BREAKTHROUGH"
)

// ClassifyEnding picks the ending for final stats. Any death reason means
// the run collapsed; otherwise the tier follows final cash.
func ClassifyEnding(stats models.PlayerStats, deathReason string) Ending {
	switch {
	case deathReason != "":
		return EndingCollapse
	case stats.Cash < models.MiddleClassCash:
		return EndingUnderclass
	case stats.Cash < models.BreakthroughCash:
		return EndingMiddleClass
	default:
		return EndingBreakthrough
	}
}

// Title is the headline shown for the ending.
func (e Ending) Title() string {
	switch e {
	case EndingCollapse:
		return "Swallowed by the City"
	case EndingUnderclass:
		return "Sinking to the Bottom"
	case EndingMiddleClass:
		return "The Middle-Class Trap"
	case EndingBreakthrough:
		return "Crossing the Line"
	}
	return "Unknown Ending"
}

// Description is the static epilogue for the ending.
func (e Ending) Description() string {
	switch e {
	case EndingCollapse:
		return "Too many things broke at once. The city moved on without you."
	case EndingUnderclass:
		return "Three years gone. No savings, maybe debt. The city does not believe in tears, " +
			"and you became one more failed case in it. You went home, or kept scraping by on the fringes."
	case EndingMiddleClass:
		return "You stayed. A little money in the bank, maybe a down payment, but you can't afford to stop. " +
			"A reliable bolt in a giant machine: ordinary, tired and safe."
	case EndingBreakthrough:
		return "Against the odds, through luck, strategy or a price you won't name, you built real capital. " +
			"You stand at the window looking down at the city, and for once it looks back up at you."
	}
	return ""
}
