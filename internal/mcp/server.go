package mcp

import (
	"context"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"mixlab/internal/knowledge"
	"mixlab/internal/progression"
	"mixlab/internal/scoring"
)

// ProfileStore is the slice of the storage layer the MCP tools read from.
type ProfileStore interface {
	GetProfile(ctx context.Context, name string) (*progression.Profile, error)
	ListExperiments(ctx context.Context, profileName string, limit int) ([]progression.Experiment, error)
}

type Server struct {
	base    *knowledge.Base
	engine  *scoring.Engine
	tracker *progression.Tracker
	db      ProfileStore
	profile string
	mcp     *sdk.Server
}

func NewServer(base *knowledge.Base, db ProfileStore, profile, version string) *Server {
	if base == nil {
		base = knowledge.Default()
	}
	s := &Server{
		base:    base,
		engine:  scoring.NewEngine(base),
		tracker: progression.NewTracker(nil),
		db:      db,
		profile: profile,
		mcp: sdk.NewServer(&sdk.Implementation{
			Name:    "mixlab",
			Version: version,
		}, nil),
	}
	s.registerTools()
	return s
}

func (s *Server) Run(ctx context.Context, transport sdk.Transport) error {
	return s.mcp.Run(ctx, transport)
}
