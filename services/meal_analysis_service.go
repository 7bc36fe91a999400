package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jiyuan880304-cmd/fitfocus/config"

	"github.com/tmc/langchaingo/chains"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/prompts"
)

// MealAnalysis is the populated collaborator response. An analysis
// failure is an explicit error, never a half-filled value; callers must
// not create a FoodItem from a failed analysis.
type MealAnalysis struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// MealAnalyzer turns a free-text meal description into estimated macros.
type MealAnalyzer interface {
	Analyze(ctx context.Context, description string) (*MealAnalysis, error)
}

type LLMMealAnalyzer struct {
	chain *chains.LLMChain
}

const mealPrompt = `Analyze the nutrition of this meal: "{{.Description}}".
Estimate total calories, protein, carbohydrates and fat.

Respond with exactly this JSON and nothing else:

{
	"name": string,    // short meal name
	"calories": number, // total kcal
	"protein": number,  // grams
	"carbs": number,    // grams
	"fat": number       // grams
}`

func NewLLMMealAnalyzer() (*LLMMealAnalyzer, error) {
	llm, err := openai.New(
		openai.WithBaseURL(config.C.LLMBaseURL),
		openai.WithToken(config.C.LLMAPIKey),
		openai.WithModel(config.C.LLMModel),
	)
	if err != nil {
		return nil, err
	}

	chain := chains.NewLLMChain(
		llm,
		prompts.NewPromptTemplate(mealPrompt, []string{"Description"}),
	)
	return &LLMMealAnalyzer{chain: chain}, nil
}

func (a *LLMMealAnalyzer) Analyze(ctx context.Context, description string) (*MealAnalysis, error) {
	result, err := chains.Call(ctx, a.chain, map[string]any{
		"Description": description,
	})
	if err != nil {
		return nil, fmt.Errorf("calling chain: %w", err)
	}

	text, _ := result["text"].(string)
	text = stripJSONMarkup(text)

	var analysis MealAnalysis
	if err := json.Unmarshal([]byte(text), &analysis); err != nil {
		return nil, fmt.Errorf("unmarshalling response: %w", err)
	}

	// The reward/log core is a total function over well-typed numbers;
	// anything malformed is filtered here, before it gets near the engine.
	if analysis.Name == "" ||
		analysis.Calories < 0 || analysis.Protein < 0 ||
		analysis.Carbs < 0 || analysis.Fat < 0 {
		return nil, fmt.Errorf("implausible analysis result")
	}

	return &analysis, nil
}

func stripJSONMarkup(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
