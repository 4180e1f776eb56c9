package hh

import (
	"encoding/json"
	"fmt"
	"time"
)

// Vacancy is a search item as returned by api.hh.ru. Nested objects are pointers
// because the API sends null for them (most often for salary).
type Vacancy struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Salary      *Salary    `json:"salary"`
	Area        *Area      `json:"area"`
	Snippet     *Snippet   `json:"snippet"`
	Url         string     `json:"alternate_url"`
	PublishedAt CustomTime `json:"published_at"`
}

type Salary struct {
	From     *int   `json:"from"`
	To       *int   `json:"to"`
	Currency string `json:"currency"`
}

type Area struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Snippet struct {
	Requirement    *string `json:"requirement"`
	Responsibility *string `json:"responsibility"`
}

type CustomTime struct {
	time.Time
}

func (dt *CustomTime) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	if str == "" {
		return nil
	}

	t, err := time.Parse("2006-01-02T15:04:05-0700", str)
	if err != nil {
		return fmt.Errorf("parsing time %s: %v", str, err)
	}
	dt.Time = t
	return nil
}
