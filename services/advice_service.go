package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jiyuan880304-cmd/fitfocus/config"
	"github.com/jiyuan880304-cmd/fitfocus/models"

	log "github.com/sirupsen/logrus"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Canned replies used whenever the model is unreachable. The advice
// endpoints always resolve to some string; they never surface an error.
const (
	fallbackAdvice     = "Stay motivated and keep going!"
	fallbackMotivation = "Look at the person in that photo. That is your truest wish. Every act of restraint is a reunion with your future self. Keep going; the brighter you is waiting at the finish line."
)

// AdviceService generates the motivational texts. All three methods
// degrade to canned messages on any failure.
type AdviceService struct {
	llm *openai.LLM
}

func NewAdviceService() (*AdviceService, error) {
	llm, err := openai.New(
		openai.WithBaseURL(config.C.LLMBaseURL),
		openai.WithToken(config.C.LLMAPIKey),
		openai.WithModel(config.C.LLMModel),
	)
	if err != nil {
		return nil, err
	}
	return &AdviceService{llm: llm}, nil
}

func (s *AdviceService) generate(ctx context.Context, prompt, fallback string) string {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	text, err := llms.GenerateFromSinglePrompt(ctx, s.llm, prompt)
	if err != nil {
		log.WithError(err).Warn("advice generation failed, using fallback")
		return fallback
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return fallback
	}
	return text
}

// DailyAdvice builds a short weight-loss tip from today's numbers.
func (s *AdviceService) DailyAdvice(ctx context.Context, profile models.UserProfile, todayLog models.DailyLog) string {
	prompt := fmt.Sprintf(`Give a short weight-loss tip for today based on this user:
User: %s, gender: %s, weight: %.1fkg, target: %.1fkg.
Consumed today: %.0f kcal. Water today: %d ml.
Answer in a warm, professional tone, 2-3 sentences.`,
		profile.Name, profile.Gender, profile.Weight, profile.TargetWeight,
		todayLog.TotalCalories(), todayLog.WaterIntake,
	)
	return s.generate(ctx, prompt, fallbackAdvice)
}

// MotivationMessage writes the mentor-style text shown next to the
// user's uploaded aspiration photo.
func (s *AdviceService) MotivationMessage(ctx context.Context, profile models.UserProfile) string {
	prompt := fmt.Sprintf(`This user, %s, wants to lose weight.
Current weight: %.1fkg, target weight: %.1fkg.
They uploaded a photo of the self they aspire to be.
As an empathetic mentor, write a poetic, powerful, deeply motivating short
passage (about 100 words) built on that visual contrast. The tone: looking
at this photo, you deserve to find that shining self again.`,
		profile.Name, profile.Weight, profile.TargetWeight,
	)
	return s.generate(ctx, prompt, fallbackMotivation)
}

// QuickCheer is the one-liner pep talk on the dashboard.
func (s *AdviceService) QuickCheer(ctx context.Context, profile models.UserProfile) string {
	diff := profile.Weight - profile.TargetWeight
	fallback := fmt.Sprintf("You look amazing! Only %.1f kg to go, I believe in you!", diff)
	prompt := fmt.Sprintf(`User: %s. %.1f kg left to reach their target weight.
Give a very short, affectionate compliment and encouragement, like a close
friend would. Must include a compliment and mention the %.1f kg remaining.
At most 30 words.`,
		profile.Name, diff, diff,
	)
	return s.generate(ctx, prompt, fallback)
}
