// Package analytics computes aggregate breakdowns over bounded record sets.
package analytics

import (
	"github.com/placewise/placewise/internal/adapters/docstore"
)

// Age bucket labels. Boundaries are half-open and lower-inclusive:
// [18,25) -> "18-24", [25,35) -> "25-34", and so on.
const (
	bucketUnder18 = "<18"
	bucket18to24  = "18-24"
	bucket25to34  = "25-34"
	bucket35to44  = "35-44"
	bucket45up    = "45+"
)

// Demographics holds independent frequency tables over user profiles.
type Demographics struct {
	Gender     map[string]int `json:"gender"`
	Education  map[string]int `json:"education"`
	Location   map[string]int `json:"location"`
	AgeBuckets map[string]int `json:"age_buckets"`
}

// Samples reports how many records were actually examined, which may be
// fewer than the population because reads are bounded.
type Samples struct {
	Events int `json:"events"`
	Users  int `json:"users"`
}

// Overview is the aggregate result over events and user profiles.
type Overview struct {
	Channels     map[string]int `json:"channels"`
	Pages        map[string]int `json:"pages"`
	Demographics Demographics   `json:"demographics"`
	Samples      Samples        `json:"samples"`
}

// Summarize tallies channel, page, and demographic frequencies over the
// given record sets. It is a pure function of its inputs: no randomness, no
// hidden state, and records lacking a field are excluded from that tally
// rather than counted under an "unknown" bucket.
func Summarize(events, users []docstore.Document) Overview {
	out := Overview{
		Channels: make(map[string]int),
		Pages:    make(map[string]int),
		Demographics: Demographics{
			Gender:    make(map[string]int),
			Education: make(map[string]int),
			Location:  make(map[string]int),
			AgeBuckets: map[string]int{
				bucketUnder18: 0,
				bucket18to24:  0,
				bucket25to34:  0,
				bucket35to44:  0,
				bucket45up:    0,
			},
		},
		Samples: Samples{Events: len(events), Users: len(users)},
	}

	for _, e := range events {
		if ch, ok := eventChannel(e); ok {
			out.Channels[ch]++
		}
		if pg, ok := docstore.String(e, "page"); ok {
			out.Pages[pg]++
		}
	}

	for _, u := range users {
		if g, ok := docstore.String(u, "gender"); ok {
			out.Demographics.Gender[g]++
		}
		if ed, ok := docstore.String(u, "education"); ok {
			out.Demographics.Education[ed]++
		}
		if loc, ok := docstore.String(u, "location"); ok {
			out.Demographics.Location[loc]++
		}
		if age, ok := docstore.Int(u, "age"); ok {
			out.Demographics.AgeBuckets[ageBucket(age)]++
		}
	}

	return out
}

// eventChannel resolves an event's acquisition channel. The nested
// properties.channel field wins; a top-level channel field is the fallback.
// Events carrying neither are skipped.
func eventChannel(e docstore.Document) (string, bool) {
	if props, ok := docstore.Map(e, "properties"); ok {
		if ch, ok := docstore.String(props, "channel"); ok {
			return ch, true
		}
	}
	return docstore.String(e, "channel")
}

// ageBucket classifies an age into exactly one of the five fixed buckets.
func ageBucket(age int) string {
	switch {
	case age < 18:
		return bucketUnder18
	case age < 25:
		return bucket18to24
	case age < 35:
		return bucket25to34
	case age < 45:
		return bucket35to44
	default:
		return bucket45up
	}
}
