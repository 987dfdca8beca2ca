package models

// Canonical feature keys understood by the in-repo estimators and the xG
// derivation. Externally trained models may use any schema their loader
// defines; these names only bind the bundled default pipeline.
//
// Strength features are relative to league average (1.0): attack above 1
// scores more than average, defence above 1 concedes less.
const (
	FeatureHomeAttack     = "home_attack_strength"
	FeatureHomeDefense    = "home_defense_strength"
	FeatureAwayAttack     = "away_attack_strength"
	FeatureAwayDefense    = "away_defense_strength"
	FeatureHomeForm       = "home_form"
	FeatureAwayForm       = "away_form"
	FeatureEloDiff        = "elo_diff"
	FeatureHomeXG         = "home_xg"
	FeatureAwayXG         = "away_xg"
	FeatureLeagueAvgGoals = "league_avg_goals"
)
