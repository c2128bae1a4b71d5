package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/th3akash/taste-haven-backend/entity"
)

// Fallback strings returned when a recommendation cannot be generated.
// Recommendations are non-critical, so callers never see an error.
const (
	fallbackEmptyMenu  = "Today's chef specials look delicious!"
	fallbackNoNames    = "Try our signature dishes today!"
	fallbackGeneration = "Our chef's specials are perfect for any weather!"
)

// TextGenerator turns a prompt into model output.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// MenuRepo reads the category -> item tree from the external store.
type MenuRepo interface {
	Menu(ctx context.Context) (map[string]map[string]entity.MenuItem, error)
}

type AIService struct {
	Generator TextGenerator
	Menu      MenuRepo
}

func NewAIService(generator TextGenerator, menu MenuRepo) *AIService {
	return &AIService{Generator: generator, Menu: menu}
}

// TodaysSpecial asks the model for a special based on recent sales data.
// Errors propagate; the caller decides how to present them.
func (s *AIService) TodaysSpecial(ctx context.Context, recentDishes, salesStats string) (string, error) {
	prompt := fmt.Sprintf(`Analyze the following data and recommend a creative and appealing 'Today's Special' for our restaurant.

Recent Popular Dishes: %s
Current Sales Stats: %s

Suggest 1-2 dish names and a short description in a friendly, catchy tone.`, recentDishes, salesStats)
	return s.Generator.Generate(ctx, prompt)
}

// WeatherRecommendation suggests menu items for the current weather. Every
// failure path degrades to a static string instead of an error.
func (s *AIService) WeatherRecommendation(ctx context.Context, weather string, temp float64) string {
	menu, err := s.Menu.Menu(ctx)
	if err != nil {
		log.Printf("menu read error: %v", err)
		return fallbackGeneration
	}
	if len(menu) == 0 {
		return fallbackEmptyMenu
	}

	var names []string
	for _, category := range menu {
		for _, item := range category {
			if item.Name != "" {
				names = append(names, item.Name)
			}
		}
	}
	if len(names) == 0 {
		return fallbackNoNames
	}

	prompt := fmt.Sprintf(`The weather today is '%s' with temperature around %.0f°C.
Here is the full menu: %s

Suggest 2 food or drink items from this menu that would be ideal for this weather.
Give the response in a short, casual restaurant tone.`, weather, temp, strings.Join(names, ", "))

	text, err := s.Generator.Generate(ctx, prompt)
	if err != nil {
		log.Printf("AI recommendation error: %v", err)
		return fallbackGeneration
	}
	return strings.TrimSpace(text)
}
