// Package summoner resolves a searched name into a player identity and
// fetches the identity's profile and ranked entries.
package summoner

import (
	"context"
	"errors"
	"fmt"

	"lolstats/internal/riot"
)

// ErrNotFound means no player with the searched name exists in the region.
// It is kept distinct from upstream failures.
var ErrNotFound = errors.New("summoner not found")

// Identity is resolved once per search and never mutated
type Identity struct {
	DisplayName string      `json:"displayName"`
	Region      riot.Region `json:"region"`
	PUUID       string      `json:"puuid"`
	SummonerID  string      `json:"summonerId"`
}

// API is the subset of the Riot client the service needs
type API interface {
	GetSummonerByName(ctx context.Context, region riot.Region, name string) (*riot.Summoner, error)
	GetSummoner(ctx context.Context, region riot.Region, summonerID string) (*riot.Summoner, error)
	GetLeagueEntries(ctx context.Context, region riot.Region, summonerID string) ([]riot.LeagueEntry, error)
}

// Service wraps identity resolution and the rank/profile lookups
type Service struct {
	api API
}

// NewService creates a new summoner service
func NewService(api API) *Service {
	return &Service{api: api}
}

// ResolveIdentity looks a player up by display name. Upstream 404s, bodies
// without ids, and names that do not match the search text all yield
// ErrNotFound; every other failure is returned as the upstream error.
func (s *Service) ResolveIdentity(ctx context.Context, name string, region riot.Region) (Identity, error) {
	if riot.NormalizeName(name) == "" {
		return Identity{}, fmt.Errorf("%w: empty name", ErrNotFound)
	}

	found, err := s.api.GetSummonerByName(ctx, region, name)
	if err != nil {
		if errors.Is(err, riot.ErrNotFound) {
			return Identity{}, fmt.Errorf("%w: %s in %s", ErrNotFound, name, region)
		}
		return Identity{}, fmt.Errorf("resolve %s in %s: %w", name, region, err)
	}

	if found == nil || found.PUUID == "" || found.ID == "" {
		return Identity{}, fmt.Errorf("%w: %s in %s (incomplete document)", ErrNotFound, name, region)
	}
	if !riot.SameName(found.Name, name) {
		return Identity{}, fmt.Errorf("%w: %s in %s (got %q)", ErrNotFound, name, region, found.Name)
	}

	return Identity{
		DisplayName: found.Name,
		Region:      region,
		PUUID:       found.PUUID,
		SummonerID:  found.ID,
	}, nil
}

// FetchRank returns one entry per ranked queue. An empty slice means the
// player is unranked everywhere.
func (s *Service) FetchRank(ctx context.Context, id Identity) ([]riot.LeagueEntry, error) {
	entries, err := s.api.GetLeagueEntries(ctx, id.Region, id.SummonerID)
	if err != nil {
		return nil, fmt.Errorf("fetch rank for %s: %w", id.DisplayName, err)
	}
	return entries, nil
}

// FetchProfile returns the profile summary (icon, level, name)
func (s *Service) FetchProfile(ctx context.Context, id Identity) (*riot.Summoner, error) {
	profile, err := s.api.GetSummoner(ctx, id.Region, id.SummonerID)
	if err != nil {
		return nil, fmt.Errorf("fetch profile for %s: %w", id.DisplayName, err)
	}
	return profile, nil
}
