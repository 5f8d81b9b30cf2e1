package db

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"time"
)

// Render represents one historical generation attempt. Rating and tags stay
// null until user feedback arrives; the record is then mutated exactly once
// and never deleted.
type Render struct {
	ID        int64         `db:"id"`
	GUID      string        `db:"guid"`
	Category  string        `db:"category"`
	Style     string        `db:"style"`
	Prompt    string        `db:"prompt"`
	Rating    sql.NullInt64 `db:"rating"`
	Tags      Tags          `db:"tags"`
	CreatedAt time.Time     `db:"created_at"`
}

// Tags is a JSON array of feedback tag strings stored in a TEXT column
type Tags []string

// Value implements driver.Valuer for database storage
func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		return nil, nil
	}
	return json.Marshal(t)
}

// Scan implements sql.Scanner for database retrieval
func (t *Tags) Scan(value interface{}) error {
	if value == nil {
		*t = nil
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		*t = Tags{}
		return nil
	}

	return json.Unmarshal(data, t)
}

// FeedbackStats aggregates feedback across all render records
type FeedbackStats struct {
	Total    int64            `json:"total"`
	Rated    int64            `json:"rated"`
	Average  float64          `json:"average"`
	ByRating map[string]int64 `json:"by_rating"`
}
