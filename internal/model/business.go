// Package model defines the data types shared across the brandkit pipeline.
package model

// Status represents the checkpoint state of a business slug.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// BusinessRecord is one row of the lead list. The pipeline treats it as
// read-only; CSV-sourced facts always win over anything scraped.
type BusinessRecord struct {
	Name        string `json:"name"`
	City        string `json:"city,omitempty"`
	Website     string `json:"website,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	Address     string `json:"address,omitempty"`
	Facebook    string `json:"facebook,omitempty"`
	LinkedIn    string `json:"linkedin,omitempty"`
	Instagram   string `json:"instagram,omitempty"`
	Rating      string `json:"rating,omitempty"`
	ReviewCount int    `json:"review_count,omitempty"`
}

// HasWebsite reports whether the record carries a non-empty website value.
func (b BusinessRecord) HasWebsite() bool {
	return b.Website != ""
}
