package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"mixlab/internal/consumable"
	"mixlab/internal/progression"
)

func (c *Client) GetProfile(ctx context.Context, name string) (*progression.Profile, error) {
	query := `
	SELECT name, level, experience, experiments, discoveries, streak, play_time_seconds, favorite_categories, achievements
	FROM profiles
	WHERE name = ?
	`

	row := c.db.QueryRowContext(ctx, query, name)

	var profile progression.Profile
	var playSeconds int64
	var favoritesJSON, achievementsJSON []byte
	err := row.Scan(
		&profile.Name,
		&profile.Level,
		&profile.Experience,
		&profile.Experiments,
		&profile.Discoveries,
		&profile.Streak,
		&playSeconds,
		&favoritesJSON,
		&achievementsJSON,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting profile: %w", err)
	}

	profile.PlayTime = time.Duration(playSeconds) * time.Second
	if len(favoritesJSON) > 0 {
		if err := json.Unmarshal(favoritesJSON, &profile.FavoriteCategories); err != nil {
			return nil, fmt.Errorf("unmarshaling favorite categories: %w", err)
		}
	}
	if len(achievementsJSON) > 0 {
		if err := json.Unmarshal(achievementsJSON, &profile.Achievements); err != nil {
			return nil, fmt.Errorf("unmarshaling achievements: %w", err)
		}
	}

	return &profile, nil
}

func (c *Client) SaveProfile(ctx context.Context, profile progression.Profile) error {
	favoritesJSON, err := json.Marshal(emptyIfNilCategories(profile.FavoriteCategories))
	if err != nil {
		return fmt.Errorf("marshaling favorite categories: %w", err)
	}

	achievementsJSON, err := json.Marshal(emptyIfNilAchievements(profile.Achievements))
	if err != nil {
		return fmt.Errorf("marshaling achievements: %w", err)
	}

	query := `
	INSERT INTO profiles (name, level, experience, experiments, discoveries, streak, play_time_seconds, favorite_categories, achievements, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, datetime('now'))
	ON CONFLICT (name) DO UPDATE SET
		level = excluded.level,
		experience = excluded.experience,
		experiments = excluded.experiments,
		discoveries = excluded.discoveries,
		streak = excluded.streak,
		play_time_seconds = excluded.play_time_seconds,
		favorite_categories = excluded.favorite_categories,
		achievements = excluded.achievements,
		updated_at = datetime('now')
	`

	_, err = c.db.ExecContext(ctx, query,
		profile.Name,
		profile.Level,
		profile.Experience,
		profile.Experiments,
		profile.Discoveries,
		profile.Streak,
		int64(profile.PlayTime/time.Second),
		favoritesJSON,
		achievementsJSON,
	)
	if err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}
	return nil
}

func emptyIfNilCategories(categories []consumable.Category) []consumable.Category {
	if categories == nil {
		return []consumable.Category{}
	}
	return categories
}

func emptyIfNilAchievements(achievements []progression.Achievement) []progression.Achievement {
	if achievements == nil {
		return []progression.Achievement{}
	}
	return achievements
}
