package match

import "sort"

// DefaultThreshold is the minimal similarity for a candidate to be
// suggested.
const DefaultThreshold = 0.5

// Candidate is a ranked suggestion.
type Candidate struct {
	Name  string
	Score float64
}

// CandidateList is sorted by descending score.
type CandidateList []Candidate

// Names returns the candidate names in rank order.
func (l CandidateList) Names() []string {
	names := make([]string, len(l))
	for i, c := range l {
		names[i] = c.Name
	}

	return names
}

// Rank scores every candidate against query and returns those at or above
// threshold, best first, at most limit entries (limit <= 0 means all).
// Ties keep the input order. Duplicate names are reported once.
func Rank(query string, candidates []string, threshold float64, limit int) CandidateList {
	normQuery := Normalize(query)
	seen := make(map[string]bool, len(candidates))

	var out CandidateList

	for _, name := range candidates {
		if seen[name] {
			continue
		}

		seen[name] = true

		score := Similarity(normQuery, Normalize(name))
		if score < threshold {
			continue
		}

		out = append(out, Candidate{Name: name, Score: score})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out
}
