package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"mixlab/internal/progression"
)

func (c *Client) AppendExperiment(ctx context.Context, profileName string, experiment progression.Experiment) error {
	consumablesJSON, err := json.Marshal(experiment.Consumables)
	if err != nil {
		return fmt.Errorf("marshaling consumables: %w", err)
	}

	resultsJSON, err := json.Marshal(experiment.Results)
	if err != nil {
		return fmt.Errorf("marshaling results: %w", err)
	}

	query := `
	INSERT INTO experiments (id, profile_name, description, consumables, results, score, success, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err = c.pool.Exec(ctx, query,
		experiment.ID,
		profileName,
		experiment.Description,
		consumablesJSON,
		resultsJSON,
		experiment.Score,
		experiment.Success,
		experiment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("appending experiment: %w", err)
	}
	return nil
}

func (c *Client) ListExperiments(ctx context.Context, profileName string, limit int) ([]progression.Experiment, error) {
	query := `
	SELECT id, description, consumables, results, score, success, created_at
	FROM experiments
	WHERE profile_name = $1
	ORDER BY created_at DESC
	`
	args := []any{profileName}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}

	rows, err := c.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing experiments: %w", err)
	}
	defer rows.Close()

	var experiments []progression.Experiment
	for rows.Next() {
		var experiment progression.Experiment
		var consumablesJSON, resultsJSON []byte
		err := rows.Scan(
			&experiment.ID,
			&experiment.Description,
			&consumablesJSON,
			&resultsJSON,
			&experiment.Score,
			&experiment.Success,
			&experiment.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning experiment: %w", err)
		}

		if len(consumablesJSON) > 0 {
			if err := json.Unmarshal(consumablesJSON, &experiment.Consumables); err != nil {
				return nil, fmt.Errorf("unmarshaling consumables: %w", err)
			}
		}
		if len(resultsJSON) > 0 {
			if err := json.Unmarshal(resultsJSON, &experiment.Results); err != nil {
				return nil, fmt.Errorf("unmarshaling results: %w", err)
			}
		}

		experiments = append(experiments, experiment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating experiments: %w", err)
	}

	return experiments, nil
}
