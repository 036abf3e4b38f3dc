package models

import (
	"time"
)

// VerdictRecord is one rendered ruling as kept in the ledger.
type VerdictRecord struct {
	ID         int       `json:"id" db:"id"`
	SessionID  string    `json:"session_id" db:"session_id"`
	CaseID     string    `json:"case_id" db:"case_id"`
	Accused    string    `json:"accused" db:"accused"`
	ClueCount  int       `json:"clue_count" db:"clue_count"`   // clues pointing at the accused
	CluesFound int       `json:"clues_found" db:"clues_found"` // all distinct clues collected
	Verdict    string    `json:"verdict" db:"verdict"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// AccusedSummary aggregates rulings per accused name.
type AccusedSummary struct {
	Accused    string `json:"accused" db:"accused"`
	Accusation int    `json:"accusations" db:"accusations"`
	Guilty     int    `json:"guilty" db:"guilty"`
}
