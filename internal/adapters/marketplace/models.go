package marketplace

import (
	"encoding/json"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Records are immutable values decoded once at this boundary. A record
// that fails to decode becomes a placeholder (zero fields, ID preserved
// when readable) so one bad item can never blank a whole page; the
// failure is logged and otherwise absorbed

// Fundi is one tradesperson listing
type Fundi struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Location      string   `json:"location"`
	Category      string   `json:"category"`
	Skills        []string `json:"skills"`
	Rating        float64  `json:"rating"`
	JobsCompleted int      `json:"jobs_completed"`
	Verified      bool     `json:"verified"`
	Bio           string   `json:"bio"`
}

// RecordID implements feed.Record
func (f Fundi) RecordID() string { return f.ID }

// Budget is a job's budget breakdown
type Budget struct {
	Min      int64  `json:"min"`
	Max      int64  `json:"max"`
	Currency string `json:"currency"`
}

var budgetPrinter = message.NewPrinter(language.English)

// Formatted renders the budget for display, e.g. "KES 5,000 - 12,000"
func (b Budget) Formatted() string {
	cur := b.Currency
	if cur == "" {
		cur = "KES"
	}
	switch {
	case b.Min > 0 && b.Max > 0 && b.Min != b.Max:
		return budgetPrinter.Sprintf("%s %d - %d", cur, b.Min, b.Max)
	case b.Max > 0:
		return budgetPrinter.Sprintf("%s %d", cur, b.Max)
	case b.Min > 0:
		return budgetPrinter.Sprintf("%s %d", cur, b.Min)
	default:
		return "Budget not set"
	}
}

// Job is one posted job
type Job struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Location    string    `json:"location"`
	Budget      Budget    `json:"budget"`
	Status      string    `json:"status"`
	Deadline    time.Time `json:"deadline"`
	CreatedAt   time.Time `json:"created_at"`
}

// RecordID implements feed.Record
func (j Job) RecordID() string { return j.ID }

// Expired reports whether the job's deadline has passed
func (j Job) Expired(now time.Time) bool {
	return !j.Deadline.IsZero() && now.After(j.Deadline)
}

// Payment is one payment record for the authenticated user
type Payment struct {
	ID        string    `json:"id"`
	JobID     string    `json:"job_id"`
	Amount    int64     `json:"amount"`
	Currency  string    `json:"currency"`
	Method    string    `json:"method"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// RecordID implements feed.Record
func (p Payment) RecordID() string { return p.ID }

// Formatted renders the amount for display
func (p Payment) Formatted() string {
	return Budget{Min: p.Amount, Currency: p.Currency}.Formatted()
}

// idOnly recovers just the identifier from a malformed record so the
// placeholder still deduplicates and links correctly
type idOnly struct {
	ID string `json:"id"`
}

// decodeAll decodes every raw item, substituting placeholders for items
// that fail. Always returns exactly len(raw) records
func decodeAll[T any](c *Client, entity string, raw []json.RawMessage) []T {
	out := make([]T, 0, len(raw))
	for i, r := range raw {
		var rec T
		if err := json.Unmarshal(r, &rec); err != nil {
			c.log.Warn().Err(err).Str("entity", entity).Int("index", i).Msg("record decode failed, using placeholder")
			var ph T
			var id idOnly
			if json.Unmarshal(r, &id) == nil && id.ID != "" {
				setRecordID(&ph, id.ID)
			}
			out = append(out, ph)
			continue
		}
		out = append(out, rec)
	}
	return out
}

// setRecordID pokes the recovered ID into a placeholder
func setRecordID(ph any, id string) {
	switch p := ph.(type) {
	case *Fundi:
		p.ID = id
	case *Job:
		p.ID = id
	case *Payment:
		p.ID = id
	}
}
