package models

import (
	_ "embed"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed data/events.yaml
var defaultCatalogYAML []byte

type catalogFile struct {
	Stages map[int][]EventDefinition `yaml:"stages"`
}

// Catalog is the read-only table of stage-scoped events.
// It is loaded once and never modified afterwards.
type Catalog struct {
	stages map[int][]EventDefinition
	byID   map[string]EventDefinition
}

// DefaultCatalog parses the catalog compiled into the binary.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalogYAML)
}

// LoadCatalog reads a catalog from a YAML file on disk.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// ParseCatalog decodes and validates a YAML catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return NewCatalog(f.Stages)
}

// NewCatalog validates stages and builds a Catalog from them.
func NewCatalog(stages map[int][]EventDefinition) (*Catalog, error) {
	c := &Catalog{
		stages: make(map[int][]EventDefinition, len(stages)),
		byID:   make(map[string]EventDefinition),
	}
	for stage, events := range stages {
		if stage < 1 {
			return nil, fmt.Errorf("stage %d: stages start at 1", stage)
		}
		for _, ev := range events {
			if err := validateEvent(ev); err != nil {
				return nil, fmt.Errorf("stage %d: %w", stage, err)
			}
			if _, dup := c.byID[ev.ID]; dup {
				return nil, fmt.Errorf("stage %d: duplicate event id %q", stage, ev.ID)
			}
			c.byID[ev.ID] = ev.Clone()
		}
		c.stages[stage] = make([]EventDefinition, len(events))
		for i, ev := range events {
			c.stages[stage][i] = ev.Clone()
		}
	}
	return c, nil
}

func validateEvent(ev EventDefinition) error {
	if ev.ID == "" {
		return fmt.Errorf("event %q: missing id", ev.Title)
	}
	if ev.Type != EventCore && ev.Type != EventRandom {
		return fmt.Errorf("event %s: unknown type %q", ev.ID, ev.Type)
	}
	if len(ev.Choices) != 2 {
		return fmt.Errorf("event %s: want 2 choices, got %d", ev.ID, len(ev.Choices))
	}
	if _, ok := ev.Choice(ChoiceA); !ok {
		return fmt.Errorf("event %s: missing choice A", ev.ID)
	}
	if _, ok := ev.Choice(ChoiceB); !ok {
		return fmt.Errorf("event %s: missing choice B", ev.ID)
	}
	if cond := ev.Condition; cond != nil {
		switch cond.RentChoice {
		case "", RentShared, RentSolo, RentAny:
		default:
			return fmt.Errorf("event %s: unknown rent_choice %q", ev.ID, cond.RentChoice)
		}
		switch cond.CarType {
		case "", CarNone, CarGas, CarEV, CarAny:
		default:
			return fmt.Errorf("event %s: unknown car_type %q", ev.ID, cond.CarType)
		}
		if cond.MinStage != nil && cond.MaxStage != nil && *cond.MinStage > *cond.MaxStage {
			return fmt.Errorf("event %s: min_stage %d above max_stage %d", ev.ID, *cond.MinStage, *cond.MaxStage)
		}
	}
	return nil
}

// Stage returns a copy of the events of stage and whether the stage has
// a pool.
func (c *Catalog) Stage(stage int) ([]EventDefinition, bool) {
	events, ok := c.stages[stage]
	if !ok {
		return nil, false
	}
	out := make([]EventDefinition, len(events))
	for i, ev := range events {
		out[i] = ev.Clone()
	}
	return out, true
}

// Stages returns the stage numbers present, ascending.
func (c *Catalog) Stages() []int {
	out := make([]int, 0, len(c.stages))
	for s := range c.stages {
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}

// Event looks an event up by id.
func (c *Catalog) Event(id string) (EventDefinition, bool) {
	ev, ok := c.byID[id]
	return ev.Clone(), ok
}

// Len is the total number of events.
func (c *Catalog) Len() int {
	return len(c.byID)
}
