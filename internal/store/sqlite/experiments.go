package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mixlab/internal/progression"
)

// createdAtLayout is fixed-width so that the text column sorts in time
// order; RFC3339Nano trims trailing zeros and breaks same-second ordering.
const createdAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

func (c *Client) AppendExperiment(ctx context.Context, profileName string, experiment progression.Experiment) error {
	consumablesJSON, err := json.Marshal(experiment.Consumables)
	if err != nil {
		return fmt.Errorf("marshaling consumables: %w", err)
	}

	resultsJSON, err := json.Marshal(experiment.Results)
	if err != nil {
		return fmt.Errorf("marshaling results: %w", err)
	}

	success := 0
	if experiment.Success {
		success = 1
	}

	query := `
	INSERT INTO experiments (id, profile_name, description, consumables, results, score, success, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = c.db.ExecContext(ctx, query,
		experiment.ID,
		profileName,
		experiment.Description,
		consumablesJSON,
		resultsJSON,
		experiment.Score,
		success,
		experiment.CreatedAt.UTC().Format(createdAtLayout),
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
	WHERE profile_name = ?
	ORDER BY created_at DESC
	`
	args := []any{profileName}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing experiments: %w", err)
	}
	defer rows.Close()

	var experiments []progression.Experiment
	for rows.Next() {
		var experiment progression.Experiment
		var consumablesJSON, resultsJSON []byte
		var success int
		var createdAt string
		err := rows.Scan(
			&experiment.ID,
			&experiment.Description,
			&consumablesJSON,
			&resultsJSON,
			&experiment.Score,
			&success,
			&createdAt,
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
		experiment.Success = success == 1
		experiment.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing experiment timestamp: %w", err)
		}

		experiments = append(experiments, experiment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating experiments: %w", err)
	}

	return experiments, nil
}
