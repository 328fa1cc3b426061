package domain

import (
	"encoding/json"
	"fmt"
)

// ID is an email identifier. Inbox sources mix numeric and string ids, so
// every id is normalized to its string form on decode and compared as a
// string everywhere.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("email id must be a string or a number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// Email represents one inbound message record. The core treats it as
// read-only input.
type Email struct {
	ID        ID     `json:"id"`
	From      string `json:"from"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	Timestamp string `json:"timestamp"`
}

// FindEmail returns the first email whose id matches the given id under
// string normalization, or nil if none matches.
func FindEmail(emails []Email, id string) *Email {
	for i := range emails {
		if string(emails[i].ID) == id {
			return &emails[i]
		}
	}
	return nil
}
