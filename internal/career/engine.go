package career

import (
	"math"
	"sort"

	"go.uber.org/zap"
)

// Engine scores trait ratings against the role catalogue. It holds no
// mutable state and is safe for concurrent use.
type Engine struct {
	catalog Catalog
	cfg     Config
	log     *zap.Logger
}

// NewEngine creates an Engine. log may be nil.
func NewEngine(catalog Catalog, cfg Config, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{catalog: catalog, cfg: cfg, log: log}
}

// Score ranks every catalogue role against the submitted ratings, highest
// match first. Roles at or below the cutoff are dropped; an empty result
// is a valid outcome, not an error. An empty ratings map short-circuits
// to an empty list.
//
// Scoring is fully deterministic: identical ratings against an identical
// catalogue always produce the same ordered list, with catalogue order
// breaking percentage ties.
func (e *Engine) Score(ratings map[string]int) []Match {
	if len(ratings) == 0 {
		return []Match{}
	}

	// One global denominator across all roles, so percentages compare.
	totalTraits := len(ratings)

	roles := e.catalog.Roles()
	matches := make([]Match, 0, len(roles))

	for _, role := range roles {
		score, reasons := e.scoreRole(role, ratings)

		pct := int(math.Round(score / (float64(totalTraits) * e.cfg.TraitWeight) * 100))
		if pct < 0 {
			pct = 0
		}
		if pct > 100 {
			pct = 100
		}
		if pct <= e.cfg.CutoffPercent {
			continue
		}

		m := Match{
			RoleProfile:  role,
			MatchScore:   pct,
			MatchReasons: reasons,
		}
		m.LearningPath = buildLearningPath(role)
		m.MarketInsights = buildMarketInsights(role, demandTier(pct))
		matches = append(matches, m)
	}

	// Stable sort keeps catalogue order for equal percentages.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})

	e.log.Debug("scored trait ratings",
		zap.Int("traits", totalTraits),
		zap.Int("roles", len(roles)),
		zap.Int("matches", len(matches)))

	return matches
}

// scoreRole accumulates the weighted similarity over traits present in
// both the ratings and the role's criteria.
func (e *Engine) scoreRole(role RoleProfile, ratings map[string]int) (float64, []string) {
	var score float64
	var reasons []string

	for _, trait := range sortedTraits(role.Criteria) {
		expected := role.Criteria[trait]
		rating, ok := ratings[trait]
		if !ok {
			continue
		}

		diff := rating - expected
		if diff < 0 {
			diff = -diff
		}
		sim := similarity(diff)
		score += sim * (float64(expected) / float64(e.cfg.RatingScaleMax)) * e.cfg.TraitWeight

		if sim >= 0.6 && len(reasons) < e.cfg.MaxReasons {
			reasons = append(reasons, reasonFor(diff, trait))
		}
	}

	return score, reasons
}

// similarity maps a rating difference to a coarse tolerance band.
func similarity(diff int) float64 {
	switch diff {
	case 0:
		return 1.0
	case 1:
		return 0.8
	case 2:
		return 0.6
	case 3:
		return 0.4
	default:
		return 0
	}
}

func reasonFor(diff int, trait string) string {
	name := traitDisplayName(trait)
	switch diff {
	case 0:
		return "Perfect match for " + name
	case 1:
		return "Strong match for " + name
	default:
		return "Good match for " + name
	}
}

// sortedTraits returns criteria keys in lexical order. Criteria live in a
// map, so a fixed iteration order is what makes reason selection and
// scoring reproducible.
func sortedTraits(criteria map[string]int) []string {
	traits := make([]string, 0, len(criteria))
	for t := range criteria {
		traits = append(traits, t)
	}
	sort.Strings(traits)
	return traits
}
