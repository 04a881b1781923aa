package root

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/JohanGylseth/SAMI/internal/engine"
)

// suggest returns up to three candidates close to input, nearest first.
func suggest(input string, candidates []string) []string {
	in := strings.ToLower(strings.TrimSpace(input))
	if in == "" {
		return nil
	}
	type scored struct {
		name string
		dist int
	}
	var hits []scored
	for _, c := range candidates {
		cand := strings.ToLower(c)
		if strings.HasPrefix(cand, in) {
			hits = append(hits, scored{c, 0})
			continue
		}
		dist := levenshtein.ComputeDistance(in, cand)
		if dist > levenshteinLimit(len(cand)) {
			continue
		}
		hits = append(hits, scored{c, dist})
	}
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].dist == hits[j].dist {
			return hits[i].name < hits[j].name
		}
		return hits[i].dist < hits[j].dist
	})
	out := make([]string, 0, 3)
	for _, h := range hits {
		out = append(out, h.name)
		if len(out) == 3 {
			break
		}
	}
	return out
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

func didYouMean(err error, input string, candidates []string) error {
	s := suggest(input, candidates)
	if len(s) == 0 {
		return err
	}
	return fmt.Errorf("%w (did you mean %s?)", err, strings.Join(s, ", "))
}

// withObjectiveHint adds suggestions to an unknown objective error.
func withObjectiveHint(err error, g *game) error {
	var unknown engine.UnknownObjectiveError
	if !errors.As(err, &unknown) {
		return err
	}
	var ids []string
	for _, o := range g.eng.Objectives() {
		ids = append(ids, o.ID)
	}
	return didYouMean(err, unknown.ID, ids)
}
