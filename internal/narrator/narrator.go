// Package narrator writes the closing text of a finished run.
package narrator

import (
	"context"

	"github.com/tatianab/citydrift/internal/engine"
	"github.com/tatianab/citydrift/internal/models"
)

//go:generate go tool mockgen -destination=./mocks/narrator_mock.go -package=mocks . Narrator

// Report is everything a narrator knows about a finished run.
type Report struct {
	Stats       models.PlayerStats
	Assets      models.Assets
	History     []string
	Ending      engine.Ending
	DeathReason string
}

// Epilogue is the closing headline and text.
type Epilogue struct {
	Title string `yaml:"title"`
	Text  string `yaml:"epilogue"`
}

// Narrator turns a finished run into an epilogue.
type Narrator interface {
	Epilogue(ctx context.Context, r Report) (Epilogue, error)
}

// NewReport builds a Report from a state in the ENDING phase. ok is false
// for any other phase.
func NewReport(s engine.GameState) (Report, bool) {
	end, ok := s.Phase.(engine.EndingPhase)
	if !ok {
		return Report{}, false
	}
	return Report{
		Stats:       s.Stats,
		Assets:      s.Assets,
		History:     s.History,
		Ending:      end.Ending,
		DeathReason: end.DeathReason,
	}, true
}

// Static narrates from the fixed ending texts. It never fails.
type Static struct{}

// Epilogue returns the ending's fixed title and text, prefixed by the death
// reason when there is one.
func (Static) Epilogue(_ context.Context, r Report) (Epilogue, error) {
	text := r.Ending.Description()
	if r.DeathReason != "" {
		text = r.DeathReason + ". " + text
	}
	return Epilogue{Title: r.Ending.Title(), Text: text}, nil
}
