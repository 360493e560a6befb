package models

// Balance constants. They are fixed at build time; nothing in the game
// mutates or overrides them.
const (
	StartingCash     = 200000
	StartingHealth   = 80
	StartingMental   = 80
	StartingMorality = 60

	TotalStages        = 6
	EventsPerStage     = 5 // CoreEventsPerStage CORE + the rest RANDOM
	CoreEventsPerStage = 3
	MonthsPerStage     = 6

	FixedLivingCostPerMonth = 3000
	InsuranceCost           = 8000

	StatMin = 0
	StatMax = 100

	// StatWarning is the level under which a stat is shown as in danger.
	StatWarning = 20
)

// Ledger and settlement rates.
const (
	VehicleResaleRate = 0.6
	DepositRate       = 0.015 // per stage

	StockReturnMin = -0.3
	StockReturnMax = 0.4
	FundReturnMin  = -0.1
	FundReturnMax  = 0.15

	GasMaintenanceMax = 3000
	EVMaintenanceMax  = 500
)

// Critical failure thresholds. A stat strictly below its threshold counts
// as one collapse.
const (
	HealthThreshold   = 10
	MentalThreshold   = 10
	MoralityThreshold = 10
	DebtThreshold     = -500000

	// CollapsesForFailure is how many simultaneous collapses end a run.
	CollapsesForFailure = 2
)

// Natural ending tiers by final cash.
const (
	MiddleClassCash  = 50000
	BreakthroughCash = 1000000
)

// Slider bounds used when reconfiguring assets.
const (
	FixedDepositMax  = 200000
	FixedDepositStep = 10000
	StocksMax        = 100000
	StocksStep       = 5000
	FundsMax         = 100000
	FundsStep        = 5000
)

// RentOption is a priced housing option.
type RentOption struct {
	ID          RentChoice
	Label       string
	MonthlyCost int
	Description string
}

// CarOption is a priced transport option.
type CarOption struct {
	ID          CarType
	Label       string
	Cost        int
	Description string
}

// RentOptions lists the housing choices in display order.
var RentOptions = []RentOption{
	{ID: RentShared, Label: "Shared flat / suburbs", MonthlyCost: 2000, Description: "Long commute and noisy neighbours, but cheap."},
	{ID: RentSolo, Label: "Solo downtown", MonthlyCost: 5500, Description: "Private and close to work, at a steep rent."},
}

// CarOptions lists the transport choices in display order.
var CarOptions = []CarOption{
	{ID: CarNone, Label: "Public transport", Cost: 0, Description: "Saves money, but the metro drains you."},
	{ID: CarGas, Label: "Gas car (used)", Cost: 50000, Description: "Expensive upkeep, volatile fuel bills."},
	{ID: CarEV, Label: "Electric car (new)", Cost: 120000, Description: "Painful up front, cheap day to day."},
}

// RentMonthlyCost returns the monthly rent for choice, 0 if unknown.
func RentMonthlyCost(choice RentChoice) int {
	for _, o := range RentOptions {
		if o.ID == choice {
			return o.MonthlyCost
		}
	}
	return 0
}

// VehicleCost returns the listed price of car, 0 if unknown.
func VehicleCost(car CarType) int {
	for _, o := range CarOptions {
		if o.ID == car {
			return o.Cost
		}
	}
	return 0
}
