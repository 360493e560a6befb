package narrator

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
	"gopkg.in/yaml.v3"
)

//go:embed prompts/epilogue.txt
var epiloguePrompt string

// maxPromptHistory caps how many history lines are sent to the model.
const maxPromptHistory = 8

type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// Gemini narrates epilogues with a Gemini model.
type Gemini struct {
	client *genai.Client
	model  contentGenerator
	tmpl   *template.Template
}

// NewGemini connects to Gemini with apiKey and uses modelName.
func NewGemini(ctx context.Context, apiKey, modelName string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	g, err := newGemini(client.GenerativeModel(modelName))
	if err != nil {
		client.Close()
		return nil, err
	}
	g.client = client
	return g, nil
}

func newGemini(model contentGenerator) (*Gemini, error) {
	tmpl, err := template.New("epilogue").Parse(epiloguePrompt)
	if err != nil {
		return nil, err
	}
	return &Gemini{model: model, tmpl: tmpl}, nil
}

// Close releases the Gemini client.
func (g *Gemini) Close() {
	if g.client != nil {
		g.client.Close()
	}
}

// Epilogue prompts the model with the last maxPromptHistory history lines
// and parses its YAML answer.
func (g *Gemini) Epilogue(ctx context.Context, r Report) (Epilogue, error) {
	history := r.History
	earlier := 0
	if len(history) > maxPromptHistory {
		earlier = len(history) - maxPromptHistory
		history = history[earlier:]
	}

	var buf bytes.Buffer
	data := struct {
		Report
		Title   string
		Earlier int
	}{
		Report:  r,
		Title:   r.Ending.Title(),
		Earlier: earlier,
	}
	data.History = history
	if err := g.tmpl.Execute(&buf, data); err != nil {
		return Epilogue{}, err
	}

	resp, err := g.model.GenerateContent(ctx, genai.Text(buf.String()))
	if err != nil {
		return Epilogue{}, err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return Epilogue{}, fmt.Errorf("no content returned from Gemini")
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return Epilogue{}, fmt.Errorf("unexpected response type from Gemini")
	}

	return parseEpilogue(string(text))
}

func parseEpilogue(text string) (Epilogue, error) {
	cleanYAML := strings.TrimSpace(text)
	cleanYAML = strings.TrimPrefix(cleanYAML, "```yaml")
	cleanYAML = strings.TrimPrefix(cleanYAML, "```")
	cleanYAML = strings.TrimSuffix(cleanYAML, "```")

	var ep Epilogue
	if err := yaml.Unmarshal([]byte(cleanYAML), &ep); err != nil {
		return Epilogue{}, fmt.Errorf("failed to parse epilogue YAML: %w\nOutput was: %s", err, cleanYAML)
	}
	if strings.TrimSpace(ep.Text) == "" {
		return Epilogue{}, fmt.Errorf("epilogue YAML has no text\nOutput was: %s", cleanYAML)
	}
	ep.Title = strings.TrimSpace(ep.Title)
	ep.Text = strings.TrimSpace(ep.Text)
	return ep, nil
}
