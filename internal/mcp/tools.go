package mcp

import (
	"context"
	"fmt"
	"time"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"mixlab/internal/consumable"
	"mixlab/internal/progression"
)

type ItemInput struct {
	Name        string `json:"name" jsonschema:"consumable name"`
	Category    string `json:"category,omitempty" jsonschema:"category such as food, beverage, medication, alcohol"`
	SafetyLevel string `json:"safety_level,omitempty" jsonschema:"declared safety level from safe to lethal"`
}

type EvaluateInput struct {
	Items []ItemInput `json:"items" jsonschema:"consumables to evaluate together"`
}

type EvaluateOutput struct {
	Safety          int      `json:"safety"`
	Effectiveness   int      `json:"effectiveness"`
	Novelty         int      `json:"novelty"`
	Overall         int      `json:"overall"`
	Level           string   `json:"level"`
	Description     string   `json:"description"`
	Warnings        []string `json:"warnings"`
	Recommendations []string `json:"recommendations"`
}

type CheckInteractionInput struct {
	First  ItemInput `json:"first" jsonschema:"first consumable"`
	Second ItemInput `json:"second" jsonschema:"second consumable"`
}

type CheckInteractionOutput struct {
	Dangerous      bool   `json:"dangerous"`
	Severity       string `json:"severity,omitempty"`
	Effect         string `json:"effect,omitempty"`
	Recommendation string `json:"recommendation,omitempty"`
}

type GetProfileInput struct{}

type GetProfileOutput struct {
	Name               string   `json:"name"`
	Level              int      `json:"level"`
	Experience         int      `json:"experience"`
	Experiments        int      `json:"experiments"`
	Discoveries        int      `json:"discoveries"`
	Streak             int      `json:"streak"`
	FavoriteCategories []string `json:"favorite_categories"`
	ProgressPercent    int      `json:"progress_percent"`
	XPToNextLevel      int      `json:"xp_to_next_level"`
	NextMilestone      string   `json:"next_milestone"`
}

type ListAchievementsInput struct{}

type AchievementOutput struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Rarity      string `json:"rarity"`
	Progress    int    `json:"progress"`
	MaxProgress int    `json:"max_progress"`
	Unlocked    bool   `json:"unlocked"`
	UnlockedAt  string `json:"unlocked_at,omitempty"`
}

type ListAchievementsOutput struct {
	Achievements []AchievementOutput `json:"achievements"`
}

func (s *Server) registerTools() {
	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "evaluate_combination",
		Description: "Score a set of consumables for safety, effectiveness, and novelty",
	}, s.handleEvaluate)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "check_interaction",
		Description: "Check two consumables against the dangerous-interaction knowledge base",
	}, s.handleCheckInteraction)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_profile",
		Description: "Return the current profile with level progress and next milestone",
	}, s.handleGetProfile)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_achievements",
		Description: "List achievements with progress and unlock state",
	}, s.handleListAchievements)
}

func (s *Server) handleEvaluate(ctx context.Context, req *sdk.CallToolRequest, input EvaluateInput) (*sdk.CallToolResult, EvaluateOutput, error) {
	if len(input.Items) == 0 {
		return nil, EvaluateOutput{}, fmt.Errorf("at least one item is required")
	}

	items := make([]consumable.Consumable, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, consumableFromInput(item))
	}

	result := s.engine.Evaluate(items)
	return nil, EvaluateOutput{
		Safety:          result.Safety,
		Effectiveness:   result.Effectiveness,
		Novelty:         result.Novelty,
		Overall:         result.Overall,
		Level:           result.Level,
		Description:     result.Description,
		Warnings:        result.Warnings,
		Recommendations: result.Recommendations,
	}, nil
}

func (s *Server) handleCheckInteraction(ctx context.Context, req *sdk.CallToolRequest, input CheckInteractionInput) (*sdk.CallToolResult, CheckInteractionOutput, error) {
	if input.First.Name == "" || input.Second.Name == "" {
		return nil, CheckInteractionOutput{}, fmt.Errorf("both items are required")
	}

	rule, found := s.base.Interaction(consumableFromInput(input.First), consumableFromInput(input.Second))
	if !found {
		return nil, CheckInteractionOutput{}, nil
	}
	return nil, CheckInteractionOutput{
		Dangerous:      true,
		Severity:       rule.Severity,
		Effect:         rule.Effect,
		Recommendation: rule.Recommendation,
	}, nil
}

func (s *Server) handleGetProfile(ctx context.Context, req *sdk.CallToolRequest, input GetProfileInput) (*sdk.CallToolResult, GetProfileOutput, error) {
	profile, err := s.db.GetProfile(ctx, s.profile)
	if err != nil {
		return nil, GetProfileOutput{}, err
	}
	if profile == nil {
		fresh := progression.NewProfile(s.profile)
		profile = &fresh
	}

	history, err := s.db.ListExperiments(ctx, s.profile, 0)
	if err != nil {
		return nil, GetProfileOutput{}, err
	}

	progress := progression.ProgressToNext(profile.Experience, profile.Level)
	milestone := progression.NextMilestone(*profile, history)

	favorites := make([]string, 0, len(profile.FavoriteCategories))
	for _, category := range profile.FavoriteCategories {
		favorites = append(favorites, string(category))
	}

	return nil, GetProfileOutput{
		Name:               profile.Name,
		Level:              profile.Level,
		Experience:         profile.Experience,
		Experiments:        profile.Experiments,
		Discoveries:        profile.Discoveries,
		Streak:             profile.Streak,
		FavoriteCategories: favorites,
		ProgressPercent:    progress.Percent,
		XPToNextLevel:      progress.XPNeeded,
		NextMilestone:      milestone.Description,
	}, nil
}

func (s *Server) handleListAchievements(ctx context.Context, req *sdk.CallToolRequest, input ListAchievementsInput) (*sdk.CallToolResult, ListAchievementsOutput, error) {
	profile, err := s.db.GetProfile(ctx, s.profile)
	if err != nil {
		return nil, ListAchievementsOutput{}, err
	}
	if profile == nil {
		fresh := progression.NewProfile(s.profile)
		profile = &fresh
	}

	history, err := s.db.ListExperiments(ctx, s.profile, 0)
	if err != nil {
		return nil, ListAchievementsOutput{}, err
	}

	output := make([]AchievementOutput, 0)
	for _, def := range s.tracker.Definitions() {
		entry := AchievementOutput{
			ID:          def.ID,
			Name:        def.Name,
			Description: def.Description,
			Rarity:      string(def.Rarity),
			MaxProgress: def.MaxProgress,
		}
		if unlocked, ok := unlockedAchievement(*profile, def.ID); ok {
			entry.Progress = unlocked.Progress
			entry.Unlocked = true
			if unlocked.UnlockedAt != nil {
				entry.UnlockedAt = unlocked.UnlockedAt.Format(time.RFC3339)
			}
		} else {
			progress := s.tracker.Progress(def, *profile, history)
			if progress > def.MaxProgress {
				progress = def.MaxProgress
			}
			entry.Progress = progress
		}
		output = append(output, entry)
	}

	return nil, ListAchievementsOutput{Achievements: output}, nil
}

func consumableFromInput(item ItemInput) consumable.Consumable {
	c := consumable.Consumable{
		Name:   item.Name,
		Source: consumable.SourceManual,
	}
	if item.Category != "" {
		c.Category = consumable.ParseCategory(item.Category)
	}
	if item.SafetyLevel != "" {
		c.SafetyLevel = consumable.ParseSafetyLevel(item.SafetyLevel)
	}
	return c
}

func unlockedAchievement(profile progression.Profile, id string) (progression.Achievement, bool) {
	for _, achievement := range profile.Achievements {
		if achievement.ID == id {
			return achievement, true
		}
	}
	return progression.Achievement{}, false
}
