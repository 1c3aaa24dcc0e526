// Package store persists profiles and experiment history between runs.
// The evaluation core itself never touches storage; only the CLI and MCP
// surfaces go through a Store.
package store

import (
	"context"

	"mixlab/internal/progression"
)

type Store interface {
	Close(ctx context.Context) error
	EnsureSchema(ctx context.Context) error

	// GetProfile returns nil without error when no profile exists yet.
	GetProfile(ctx context.Context, name string) (*progression.Profile, error)
	SaveProfile(ctx context.Context, profile progression.Profile) error

	AppendExperiment(ctx context.Context, profileName string, experiment progression.Experiment) error
	// ListExperiments returns history newest-first. A non-positive limit
	// means no limit.
	ListExperiments(ctx context.Context, profileName string, limit int) ([]progression.Experiment, error)
}
