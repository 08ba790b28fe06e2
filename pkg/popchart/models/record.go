// Package models defines data structures for population chart rendering.
package models

// Record represents a single dataset row.
type Record struct {
	// Category is the raw category tag (e.g. "estimate", "medium variant").
	Category string `json:"type"`
	// Year is the calendar year of the observation.
	Year int `json:"year"`
	// Population is the population count in thousands of persons.
	Population float64 `json:"population"`
}
