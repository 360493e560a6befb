package engine

import "github.com/tatianab/citydrift/internal/models"

// Matches reports whether cond holds for assets at stage. Every set field
// must pass; unset fields and a nil condition always pass.
func Matches(cond *models.EventCondition, assets models.Assets, stage int) bool {
	if cond == nil {
		return true
	}
	if cond.MinStage != nil && stage < *cond.MinStage {
		return false
	}
	if cond.MaxStage != nil && stage > *cond.MaxStage {
		return false
	}
	if cond.RentChoice != "" && cond.RentChoice != models.RentAny && cond.RentChoice != assets.RentChoice {
		return false
	}
	if cond.CarType != "" && cond.CarType != models.CarAny && cond.CarType != assets.CarType {
		return false
	}
	if cond.HasStocks != nil && (assets.Investments.Stocks > 0) != *cond.HasStocks {
		return false
	}
	if cond.HasFunds != nil && (assets.Investments.Funds > 0) != *cond.HasFunds {
		return false
	}
	if cond.HasInsurance != nil && assets.Investments.Insurance != *cond.HasInsurance {
		return false
	}
	if cond.HasFixedDeposit != nil && (assets.FixedDeposit > 0) != *cond.HasFixedDeposit {
		return false
	}
	return true
}
