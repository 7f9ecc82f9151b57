// Package recommend scores job postings against a user's skill set.
package recommend

import (
	"math"
	"sort"

	"github.com/placewise/placewise/internal/adapters/docstore"
)

// underExperiencePenalty discounts a job's score when the user's recorded
// experience falls strictly below the posting's minimum. The penalty never
// applies when either value is missing: absence of data is not
// disqualification.
const underExperiencePenalty = 0.8

// Candidate is a scored job posting.
type Candidate struct {
	JobID string  `json:"job_id"`
	Title string  `json:"title"`
	Score float64 `json:"score"`
}

// Jaccard computes |intersection| / |union| over two string sets. Order and
// duplicates are irrelevant. Two empty sets score 0.0, not 1.0, so
// skill-less users never match requirement-less jobs perfectly.
func Jaccard(a, b []string) float64 {
	sa := toSet(a)
	sb := toSet(b)
	if len(sa) == 0 && len(sb) == 0 {
		return 0.0
	}
	inter := 0
	for s := range sa {
		if _, ok := sb[s]; ok {
			inter++
		}
	}
	union := len(sa) + len(sb) - inter
	if union == 0 {
		return 0.0
	}
	return float64(inter) / float64(union)
}

// Rank scores every candidate job against the user's skills and returns the
// top topK entries, sorted descending. Ties keep the relative order of the
// scan (stable sort, no secondary key). experience is nil when the user has
// no numeric experience on record.
func Rank(skills []string, experience *float64, jobs []docstore.Document, topK int) []Candidate {
	if topK < 0 {
		topK = 0
	}
	scored := make([]Candidate, 0, len(jobs))
	for _, job := range jobs {
		requirements, _ := docstore.Strings(job, "requirements")
		score := Jaccard(skills, requirements)
		if minExp, ok := docstore.Float(job, "min_experience"); ok && experience != nil && *experience < minExp {
			score *= underExperiencePenalty
		}
		jobID, _ := docstore.String(job, "job_id")
		title, _ := docstore.String(job, "title")
		scored = append(scored, Candidate{
			JobID: jobID,
			Title: title,
			Score: round3(score),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if topK < len(scored) {
		scored = scored[:topK]
	}
	return scored
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, s := range items {
		set[s] = struct{}{}
	}
	return set
}

// round3 rounds to 3 decimal places.
func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}
