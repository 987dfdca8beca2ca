package models

import (
	"fmt"
	"hash/fnv"
	"sort"
	"time"

	"github.com/google/uuid"
)

// MatchContext is the request-scoped input to the engine: one matchup's
// identity, feature vector, and optionally the market odds to analyse
// against. It is assembled by the data-aggregation collaborator and never
// persisted by the engine.
type MatchContext struct {
	MatchupID  uuid.UUID          `json:"matchup_id" validate:"required"`
	League     string             `json:"league" validate:"required"`
	HomeTeam   string             `json:"home_team" validate:"required"`
	AwayTeam   string             `json:"away_team" validate:"required"`
	KickoffAt  *time.Time         `json:"kickoff_at,omitempty"`
	Features   map[string]float64 `json:"features" validate:"required"`
	MarketOdds map[string]float64 `json:"market_odds,omitempty"`
	Bankroll   *float64           `json:"bankroll,omitempty" validate:"omitempty,gt=0"`
}

// HasOdds reports whether any market odds were supplied.
func (mc *MatchContext) HasOdds() bool {
	return len(mc.MarketOdds) > 0
}

// Feature returns the named feature value and whether it is present.
func (mc *MatchContext) Feature(name string) (float64, bool) {
	v, ok := mc.Features[name]
	return v, ok
}

// OddsFingerprint returns a short stable digest of the odds map, used in
// cache keys so a bundle computed against stale odds is never reused.
func (mc *MatchContext) OddsFingerprint() string {
	if len(mc.MarketOdds) == 0 {
		return "no-odds"
	}

	keys := make([]string, 0, len(mc.MarketOdds))
	for k := range mc.MarketOdds {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	h := fnv.New64a()
	for _, k := range keys {
		fmt.Fprintf(h, "%s=%.4f;", k, mc.MarketOdds[k])
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
