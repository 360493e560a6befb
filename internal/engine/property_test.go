package engine

import (
	"testing"

	"github.com/tatianab/citydrift/internal/models"
	"pgregory.net/rapid"
)

func drawAssets(t *rapid.T, label string) models.Assets {
	return models.Assets{
		RentChoice:   rapid.SampledFrom([]models.RentChoice{models.RentShared, models.RentSolo}).Draw(t, label+"_rent"),
		CarType:      rapid.SampledFrom([]models.CarType{models.CarNone, models.CarGas, models.CarEV}).Draw(t, label+"_car"),
		FixedDeposit: rapid.IntRange(0, models.FixedDepositMax/models.FixedDepositStep).Draw(t, label+"_deposit") * models.FixedDepositStep,
		Investments: models.Investments{
			Stocks:    rapid.IntRange(0, models.StocksMax/models.StocksStep).Draw(t, label+"_stocks") * models.StocksStep,
			Funds:     rapid.IntRange(0, models.FundsMax/models.FundsStep).Draw(t, label+"_funds") * models.FundsStep,
			Insurance: rapid.Bool().Draw(t, label+"_insurance"),
		},
	}
}

func TestStatsStayInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		stats := models.PlayerStats{
			Cash:     rapid.Int().Draw(t, "cash") / 4,
			Health:   rapid.IntRange(models.StatMin, models.StatMax).Draw(t, "health"),
			Mental:   rapid.IntRange(models.StatMin, models.StatMax).Draw(t, "mental"),
			Morality: rapid.IntRange(models.StatMin, models.StatMax).Draw(t, "morality"),
		}
		c := models.ChoiceConsequence{
			CashChange:     rapid.IntRange(-1000000, 1000000).Draw(t, "dcash"),
			HealthChange:   rapid.IntRange(-300, 300).Draw(t, "dhealth"),
			MentalChange:   rapid.IntRange(-300, 300).Draw(t, "dmental"),
			MoralityChange: rapid.IntRange(-300, 300).Draw(t, "dmorality"),
		}
		got := ApplyConsequence(stats, c)
		for _, v := range []int{got.Health, got.Mental, got.Morality} {
			if v < models.StatMin || v > models.StatMax {
				t.Fatalf("stat %d out of range after %+v", v, c)
			}
		}
		if got.Cash != stats.Cash+c.CashChange {
			t.Fatalf("cash %d, want %d", got.Cash, stats.Cash+c.CashChange)
		}
	})
}

func TestUnchangedConfigurationCostsNothing(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := drawAssets(t, "assets")
		cash := rapid.IntRange(-1000000, 1000000).Draw(t, "cash")
		if got := ComputeBalance(cash, a, a); got != cash {
			t.Fatalf("ComputeBalance(%d, a, a) = %d for %+v", cash, got, a)
		}
	})
}

func TestFinancialAssetsRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		from := drawAssets(t, "from")
		to := drawAssets(t, "to")
		// Same car and insurance both ways isolates the 1:1 assets.
		to.CarType = from.CarType
		to.Investments.Insurance = from.Investments.Insurance

		there := ComputeBalance(100000, from, to)
		back := ComputeBalance(there, to, from)
		if back != 100000 {
			t.Fatalf("round trip left %d, want 100000", back)
		}
	})
}

func TestSelectorNeverRepeatsWithinCycle(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		stage := rapid.IntRange(1, models.TotalStages).Draw(t, "stage")
		assets := drawAssets(t, "assets")
		s := NewSelector(flatCatalogFor(t), NewRand(rapid.Uint64Min(1).Draw(t, "seed")), quietLogger())

		seen := map[string]bool{}
		for sub := 1; sub <= models.EventsPerStage; sub++ {
			ev := s.Select(stage, sub, assets)
			if seen[ev.ID] {
				t.Fatalf("%s drawn twice in stage %d", ev.ID, stage)
			}
			seen[ev.ID] = true
		}
	})
}
