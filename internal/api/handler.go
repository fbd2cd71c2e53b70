package api

import (
	"github.com/Mastaba/FantasySquadTactics/internal/service"
	"github.com/Mastaba/FantasySquadTactics/internal/storage"
)

// Handler wires HTTP requests to the faction catalog and the match service.
type Handler struct {
	repo    storage.Repository
	matches *service.MatchService
}

func NewHandler(repo storage.Repository, matches *service.MatchService) *Handler {
	return &Handler{repo: repo, matches: matches}
}
