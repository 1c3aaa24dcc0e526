package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"mixlab/internal/progression"
)

func (c *Client) GetProfile(ctx context.Context, name string) (*progression.Profile, error) {
	query := `
	SELECT name, level, experience, experiments, discoveries, streak, play_time_seconds, favorite_categories, achievements
	FROM profiles
	WHERE name = $1
	`

	row := c.pool.QueryRow(ctx, query, name)

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
	if errors.Is(err, pgx.ErrNoRows) {
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
	favoritesJSON, err := json.Marshal(profile.FavoriteCategories)
	if err != nil {
		return fmt.Errorf("marshaling favorite categories: %w", err)
	}
	if profile.FavoriteCategories == nil {
		favoritesJSON = []byte("[]")
	}

	achievementsJSON, err := json.Marshal(profile.Achievements)
	if err != nil {
		return fmt.Errorf("marshaling achievements: %w", err)
	}
	if profile.Achievements == nil {
		achievementsJSON = []byte("[]")
	}

	query := `
	INSERT INTO profiles (name, level, experience, experiments, discoveries, streak, play_time_seconds, favorite_categories, achievements, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())
	ON CONFLICT (name) DO UPDATE SET
		level = EXCLUDED.level,
		experience = EXCLUDED.experience,
		experiments = EXCLUDED.experiments,
		discoveries = EXCLUDED.discoveries,
		streak = EXCLUDED.streak,
		play_time_seconds = EXCLUDED.play_time_seconds,
		favorite_categories = EXCLUDED.favorite_categories,
		achievements = EXCLUDED.achievements,
		updated_at = now()
	`

	_, err = c.pool.Exec(ctx, query,
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
