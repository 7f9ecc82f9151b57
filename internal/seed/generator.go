package seed

import (
	"crypto/rand"
	"math/big"
	"strconv"

	"github.com/google/uuid"
)

// Pools the generator draws from. Weights are expressed by repetition so a
// plain index pick yields the intended skew.
var (
	channels = []string{
		"organic", "organic", "organic",
		"ads", "ads",
		"referral", "referral",
		"social", "social",
		"email",
	}
	pages      = []string{"/", "/jobs", "/jobs", "/jobs", "/profile", "/courses", "/pricing"}
	devices    = []string{"mobile", "mobile", "desktop", "desktop", "tablet"}
	services   = []string{"placement", "placement", "training", "coaching"}
	eventTypes = []string{"page_view", "page_view", "page_view", "click", "search", "apply"}
	genders    = []string{"female", "male", "other"}
	locations  = []string{"Berlin", "Hamburg", "Munich", "Cologne", "Leipzig", "Remote"}
	educations = []string{"high_school", "bachelor", "bachelor", "master", "phd"}
	outcomes   = []string{"success", "success", "rejected", "rejected", "rejected", "pending"}

	skillPool = []string{
		"go", "python", "sql", "javascript", "react", "docker",
		"kubernetes", "aws", "linux", "communication", "project_management",
	}

	jobTitles = []string{
		"Backend Engineer", "Frontend Engineer", "Data Engineer",
		"DevOps Engineer", "QA Engineer", "Product Manager",
		"Support Specialist", "Sales Representative",
	}
)

// Age and experience generation bounds.
const (
	minSeedAge     = 16
	ageSpread      = 44
	maxExperience  = 20
	minSkills      = 1
	skillSpread    = 4
	minJobSkills   = 1
	jobSkillSpread = 3
)

// randIndex returns a uniform index in [0, n) using crypto/rand.
func randIndex(n int) int {
	v, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(v.Int64())
}

func pick(pool []string) string {
	return pool[randIndex(len(pool))]
}

// pickSkills draws a small distinct skill set.
func pickSkills(minCount, spread int) []string {
	count := minCount + randIndex(spread)
	seen := make(map[string]bool, count)
	skills := make([]string, 0, count)
	for len(skills) < count {
		s := pick(skillPool)
		if seen[s] {
			continue
		}
		seen[s] = true
		skills = append(skills, s)
	}
	return skills
}

// Wire payloads matching the service request shapes.
type profilePayload struct {
	UserID          string   `json:"user_id"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Age             int      `json:"age"`
	Gender          string   `json:"gender"`
	Location        string   `json:"location"`
	Education       string   `json:"education"`
	ExperienceYears float64  `json:"experience_years"`
	Skills          []string `json:"skills"`
	Channel         string   `json:"channel"`
}

type jobPayload struct {
	JobID         string   `json:"job_id"`
	Title         string   `json:"title"`
	Requirements  []string `json:"requirements"`
	MinExperience float64  `json:"min_experience"`
}

type eventPayload struct {
	UserID     string         `json:"user_id,omitempty"`
	EventType  string         `json:"event_type"`
	Page       string         `json:"page"`
	Service    string         `json:"service"`
	Device     string         `json:"device"`
	Properties map[string]any `json:"properties"`
}

type outcomePayload struct {
	UserID  string `json:"user_id"`
	JobID   string `json:"job_id"`
	Outcome string `json:"outcome"`
}

// generateProfiles creates n user profiles with unique IDs.
func generateProfiles(n int) []profilePayload {
	profiles := make([]profilePayload, n)
	for i := range profiles {
		userID := uuid.New().String()
		profiles[i] = profilePayload{
			UserID:          userID,
			Name:            "Seed User " + strconv.Itoa(i),
			Email:           "user" + strconv.Itoa(i) + "@example.com",
			Age:             minSeedAge + randIndex(ageSpread),
			Gender:          pick(genders),
			Location:        pick(locations),
			Education:       pick(educations),
			ExperienceYears: float64(randIndex(maxExperience)),
			Skills:          pickSkills(minSkills, skillSpread),
			Channel:         pick(channels),
		}
	}
	return profiles
}

// generateJobs creates n job postings.
func generateJobs(n int) []jobPayload {
	jobs := make([]jobPayload, n)
	for i := range jobs {
		jobs[i] = jobPayload{
			JobID:         "job-" + strconv.Itoa(i) + "-" + uuid.New().String()[:8],
			Title:         pick(jobTitles),
			Requirements:  pickSkills(minJobSkills, jobSkillSpread),
			MinExperience: float64(randIndex(8)),
		}
	}
	return jobs
}

// generateEvents creates n events. Most are attributed to a seeded user; a
// share stays anonymous the way untracked visitors do.
func generateEvents(profiles []profilePayload, n int) []eventPayload {
	events := make([]eventPayload, n)
	for i := range events {
		e := eventPayload{
			EventType: pick(eventTypes),
			Page:      pick(pages),
			Service:   pick(services),
			Device:    pick(devices),
			Properties: map[string]any{
				"channel": pick(channels),
			},
		}
		// Roughly one in five events is anonymous
		if len(profiles) > 0 && randIndex(5) != 0 {
			e.UserID = profiles[randIndex(len(profiles))].UserID
		}
		events[i] = e
	}
	return events
}

// generateOutcomes records one application outcome per profile against a
// random job.
func generateOutcomes(profiles []profilePayload, jobs []jobPayload) []outcomePayload {
	if len(jobs) == 0 {
		return nil
	}
	out := make([]outcomePayload, len(profiles))
	for i, p := range profiles {
		out[i] = outcomePayload{
			UserID:  p.UserID,
			JobID:   jobs[randIndex(len(jobs))].JobID,
			Outcome: pick(outcomes),
		}
	}
	return out
}
