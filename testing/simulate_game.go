package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"os"

	"github.com/tatianab/citydrift/internal/config"
	"github.com/tatianab/citydrift/internal/engine"
	"github.com/tatianab/citydrift/internal/models"
	"github.com/tatianab/citydrift/internal/narrator"
)

const numGames = 5

func main() {
	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger := cfg.NewLogger(os.Stderr)

	catalog, err := models.DefaultCatalog()
	if cfg.EventsFile != "" {
		catalog, err = models.LoadCatalog(cfg.EventsFile)
	}
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	var narr narrator.Narrator = narrator.Static{}
	if cfg.GeminiAPIKey != "" {
		g, err := narrator.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatalf("Failed to create narrator: %v", err)
		}
		defer g.Close()
		narr = g
	}

	outcomes := map[engine.Ending]int{}
	stuck := 0
	for game := 1; game <= numGames; game++ {
		seed := cfg.Seed + uint64(game)
		eng := engine.New(catalog, engine.WithRand(engine.NewRand(seed)), engine.WithLogger(logger))
		policy := rand.New(rand.NewPCG(seed, 7))

		fmt.Printf("=== Game %d (seed %d) ===\n", game, seed)
		final, err := play(eng, policy)
		if errors.Is(err, engine.ErrInsufficientCash) {
			fmt.Printf("Stuck in debt at stage %d with cash %d\n\n", final.Stage, final.Stats.Cash)
			stuck++
			continue
		}
		if err != nil {
			log.Fatalf("Game %d failed: %v", game, err)
		}

		report, _ := narrator.NewReport(final)
		outcomes[report.Ending]++
		fmt.Printf("Ending: %s\n", report.Ending)
		if report.DeathReason != "" {
			fmt.Printf("Reason: %s\n", report.DeathReason)
		}
		fmt.Printf("Final stats: cash=%d health=%d mental=%d morality=%d\n",
			final.Stats.Cash, final.Stats.Health, final.Stats.Mental, final.Stats.Morality)

		ep, err := narr.Epilogue(ctx, report)
		if err != nil {
			fmt.Printf("Narrator failed: %v\n", err)
			ep, _ = narrator.Static{}.Epilogue(ctx, report)
		}
		fmt.Printf("%s\n%s\n\n", ep.Title, ep.Text)
	}

	fmt.Println("=== Outcomes ===")
	endings := []engine.Ending{engine.EndingCollapse, engine.EndingUnderclass, engine.EndingMiddleClass, engine.EndingBreakthrough}
	for _, e := range endings {
		fmt.Printf("%-13s %d\n", e, outcomes[e])
	}
	fmt.Printf("%-13s %d\n", "STUCK", stuck)
}

// play runs one game to its ending, keeping the current configuration and
// answering every event at random. When the configuration is no longer
// affordable everything sellable is sold; if that is not enough either,
// play stops with ErrInsufficientCash.
func play(eng *engine.Engine, policy *rand.Rand) (engine.GameState, error) {
	s, err := eng.Start()
	if err != nil {
		return s, err
	}
	for {
		switch p := s.Phase.(type) {
		case engine.ConfigPhase:
			next, err := eng.ConfirmConfig(s.Assets)
			if errors.Is(err, engine.ErrInsufficientCash) {
				next, err = eng.ConfirmConfig(liquidated(s.Assets))
			}
			if err != nil {
				return s, err
			}
			s = next
			cal := models.Calendar(s.Stage)
			fmt.Printf("--- Stage %d (year %d, %s), cash %d ---\n", s.Stage, cal.Year, cal.Half, s.Stats.Cash)

		case engine.PlayEventPhase:
			label := []models.ChoiceLabel{models.ChoiceA, models.ChoiceB}[policy.IntN(2)]
			res, err := eng.SubmitChoice(label)
			if err != nil {
				return s, err
			}
			fmt.Printf("[%d-%d] %s -> %s\n", s.Stage, s.SubStage, p.Event.Title, res.Choice.Text)
			if r := res.Choice.Consequence.NarrativeResult; r != "" {
				fmt.Printf("        %s\n", r)
			}
			s = res.State

		case engine.StageSummaryPhase:
			fmt.Printf("Settlement: expenses %d, returns %d, net %d\n",
				p.Summary.FixedExpenses, p.Summary.InvestmentReturn, p.Summary.NetChange)
			s, err = eng.ContinueFromSummary()
			if err != nil {
				return s, err
			}

		case engine.EndingPhase:
			return s, nil

		default:
			return s, fmt.Errorf("unexpected phase %s", s.Phase.Kind())
		}
	}
}

func liquidated(a models.Assets) models.Assets {
	return models.Assets{
		RentChoice:  models.RentShared,
		CarType:     models.CarNone,
		Investments: models.Investments{Insurance: a.Investments.Insurance},
	}
}
