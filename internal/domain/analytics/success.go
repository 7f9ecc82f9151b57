package analytics

import (
	"math"
	"strings"

	"github.com/placewise/placewise/internal/adapters/docstore"
)

// successLabel is the outcome value counted as a success, compared
// case-insensitively.
const successLabel = "success"

// Report is the per-user application success summary.
type Report struct {
	UserID  string  `json:"user_id"`
	Total   int     `json:"total"`
	Success int     `json:"success"`
	Rate    float64 `json:"rate"`
}

// SuccessRate counts successful outcomes among all of a user's application
// outcomes. A user with zero outcomes yields zeros, never an error; the
// rate is rounded to 3 decimals.
func SuccessRate(userID string, outcomes []docstore.Document) Report {
	r := Report{UserID: userID, Total: len(outcomes)}
	for _, o := range outcomes {
		if label, ok := docstore.String(o, "outcome"); ok && strings.EqualFold(label, successLabel) {
			r.Success++
		}
	}
	if r.Total > 0 {
		r.Rate = round3(float64(r.Success) / float64(r.Total))
	}
	return r
}

// round3 rounds to 3 decimal places.
func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}
