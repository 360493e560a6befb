package engine

import (
	"math"

	"github.com/tatianab/citydrift/internal/models"
)

// ComputeBalance returns the cash left after moving from previous to
// proposed. Vehicles resell at VehicleResaleRate of their listed price;
// deposits, stocks and funds move 1:1; insurance is charged once when
// first bought and never refunded.
func ComputeBalance(currentCash int, previous, proposed models.Assets) int {
	balance := currentCash

	if proposed.CarType != previous.CarType {
		if previous.CarType != models.CarNone {
			balance += resaleValue(previous.CarType)
		}
		if proposed.CarType != models.CarNone {
			balance -= models.VehicleCost(proposed.CarType)
		}
	}

	balance -= proposed.FixedDeposit - previous.FixedDeposit
	balance -= proposed.Investments.Stocks - previous.Investments.Stocks
	balance -= proposed.Investments.Funds - previous.Investments.Funds

	if proposed.Investments.Insurance && !previous.Investments.Insurance {
		balance -= models.InsuranceCost
	}
	return balance
}

func resaleValue(car models.CarType) int {
	return int(math.Floor(float64(models.VehicleCost(car)) * models.VehicleResaleRate))
}

// CanConfirm reports whether a configuration leaving projected cash may be
// confirmed at stage. Only the final stage accepts a negative balance.
func CanConfirm(projected, stage int) bool {
	return projected >= 0 || stage >= models.TotalStages
}

func validAssets(a models.Assets) bool {
	switch a.RentChoice {
	case models.RentShared, models.RentSolo:
	default:
		return false
	}
	switch a.CarType {
	case models.CarNone, models.CarGas, models.CarEV:
	default:
		return false
	}
	return a.FixedDeposit >= 0 && a.Investments.Stocks >= 0 && a.Investments.Funds >= 0
}
