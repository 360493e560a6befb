package engine

import (
	"math"
	"strings"

	"github.com/tatianab/citydrift/internal/models"
)

// ComputeSettlement previews the end-of-stage cash movement for assets.
// stageHistory holds the log lines of the stage just played, oldest first.
// Nothing is applied here; the controller books NetChange on continue.
func ComputeSettlement(assets models.Assets, stageHistory []string, r Rand) models.StageSummaryData {
	fixed := (models.RentMonthlyCost(assets.RentChoice) + models.FixedLivingCostPerMonth) * models.MonthsPerStage

	ret := 0
	if stocks := assets.Investments.Stocks; stocks > 0 {
		ret += floor(float64(stocks) * uniform(r, models.StockReturnMin, models.StockReturnMax))
	}
	if funds := assets.Investments.Funds; funds > 0 {
		ret += floor(float64(funds) * uniform(r, models.FundReturnMin, models.FundReturnMax))
	}
	if assets.FixedDeposit > 0 {
		ret += floor(float64(assets.FixedDeposit) * models.DepositRate)
	}
	switch assets.CarType {
	case models.CarGas:
		ret -= floor(uniform(r, 0, models.GasMaintenanceMax))
	case models.CarEV:
		ret -= floor(uniform(r, 0, models.EVMaintenanceMax))
	}

	return models.StageSummaryData{
		FixedExpenses:    fixed,
		InvestmentReturn: ret,
		NetChange:        ret - fixed,
		EventsSummary:    strings.Join(stageHistory, " | "),
	}
}

func floor(v float64) int {
	return int(math.Floor(v))
}
