package models

import "slices"

// RentChoice is the housing option picked during configuration.
type RentChoice string

const (
	RentShared RentChoice = "SHARED"
	RentSolo   RentChoice = "SOLO"
	RentAny    RentChoice = "ANY" // condition wildcard only
)

// CarType is the transport option picked during configuration.
type CarType string

const (
	CarNone CarType = "NONE"
	CarGas  CarType = "GAS"
	CarEV   CarType = "EV"
	CarAny  CarType = "ANY" // condition wildcard only
)

// EventType decides which sub-stage slots an event can fill.
type EventType string

const (
	EventCore   EventType = "CORE"
	EventRandom EventType = "RANDOM"
)

// ChoiceLabel identifies one of the two answers to an event.
type ChoiceLabel string

const (
	ChoiceA ChoiceLabel = "A"
	ChoiceB ChoiceLabel = "B"
)

// PlayerStats are the four running statistics of a run.
// Health, Mental and Morality live in [0,100]; Cash may go negative.
type PlayerStats struct {
	Cash     int `yaml:"cash"`
	Health   int `yaml:"health"`
	Mental   int `yaml:"mental"`
	Morality int `yaml:"morality"`
}

// Investments are the financial instruments held next to the fixed deposit.
type Investments struct {
	Stocks    int  `yaml:"stocks"`
	Funds     int  `yaml:"funds"`
	Insurance bool `yaml:"insurance"`
}

// Assets is the full asset configuration chosen at the start of a stage.
type Assets struct {
	RentChoice   RentChoice  `yaml:"rent_choice"`
	CarType      CarType     `yaml:"car_type"`
	FixedDeposit int         `yaml:"fixed_deposit"`
	Investments  Investments `yaml:"investments"`
}

// DefaultAssets is the configuration a new run starts from.
func DefaultAssets() Assets {
	return Assets{
		RentChoice: RentShared,
		CarType:    CarNone,
	}
}

// EventCondition restricts when a CORE event may be drawn.
// A nil field means "don't care".
type EventCondition struct {
	RentChoice      RentChoice `yaml:"rent_choice,omitempty"`
	CarType         CarType    `yaml:"car_type,omitempty"`
	HasStocks       *bool      `yaml:"has_stocks,omitempty"`
	HasFunds        *bool      `yaml:"has_funds,omitempty"`
	HasInsurance    *bool      `yaml:"has_insurance,omitempty"`
	HasFixedDeposit *bool      `yaml:"has_fixed_deposit,omitempty"`
	MinStage        *int       `yaml:"min_stage,omitempty"`
	MaxStage        *int       `yaml:"max_stage,omitempty"`
}

// ChoiceConsequence is what picking a choice does to the player.
type ChoiceConsequence struct {
	CashChange      int    `yaml:"cash"`
	HealthChange    int    `yaml:"health"`
	MentalChange    int    `yaml:"mental"`
	MoralityChange  int    `yaml:"morality"`
	NarrativeResult string `yaml:"result"`
}

// Choice is one answer to an event.
type Choice struct {
	Label       ChoiceLabel       `yaml:"label"`
	Text        string            `yaml:"text"`
	Consequence ChoiceConsequence `yaml:"consequences"`
}

// EventDefinition is a catalog entry. Condition is nil when the event has
// no condition at all; an empty non-nil condition matches everything.
type EventDefinition struct {
	ID          string          `yaml:"id"`
	Title       string          `yaml:"title"`
	Description string          `yaml:"description"`
	Type        EventType       `yaml:"type"`
	Condition   *EventCondition `yaml:"condition,omitempty"`
	Choices     []Choice        `yaml:"choices"`
}

// Choice returns the choice carrying label.
func (e EventDefinition) Choice(label ChoiceLabel) (Choice, bool) {
	for _, c := range e.Choices {
		if c.Label == label {
			return c, true
		}
	}
	return Choice{}, false
}

// Clone returns a copy of e that shares no memory with it.
func (e EventDefinition) Clone() EventDefinition {
	e.Choices = slices.Clone(e.Choices)
	if e.Condition != nil {
		c := *e.Condition
		c.HasStocks = clonePtr(c.HasStocks)
		c.HasFunds = clonePtr(c.HasFunds)
		c.HasInsurance = clonePtr(c.HasInsurance)
		c.HasFixedDeposit = clonePtr(c.HasFixedDeposit)
		c.MinStage = clonePtr(c.MinStage)
		c.MaxStage = clonePtr(c.MaxStage)
		e.Condition = &c
	}
	return e
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// StageSummaryData is the end-of-stage settlement preview.
type StageSummaryData struct {
	FixedExpenses    int    `yaml:"fixed_expenses"`
	InvestmentReturn int    `yaml:"investment_return"`
	NetChange        int    `yaml:"net_change"`
	EventsSummary    string `yaml:"events_summary"`
}

// Half is the half of a simulated year covered by a stage.
type Half int

const (
	FirstHalf Half = iota + 1
	SecondHalf
)

func (h Half) String() string {
	if h == SecondHalf {
		return "second half"
	}
	return "first half"
}

// CalendarPosition maps a stage onto the three simulated years.
type CalendarPosition struct {
	Year int
	Half Half
}

// Calendar returns the year and half covered by stage.
func Calendar(stage int) CalendarPosition {
	pos := CalendarPosition{Year: (stage + 1) / 2, Half: FirstHalf}
	if stage%2 == 0 {
		pos.Half = SecondHalf
	}
	return pos
}
