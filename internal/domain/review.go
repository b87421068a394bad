package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReviewSession is the stored form of a review in progress.
type ReviewSession struct {
	ID           string
	UserID       uuid.UUID
	GenerationID int64
	Status       ReviewStatus
	Proposals    []Proposal
	EditingID    string
	CreatedAt    time.Time
	// SavingSince is set while Status is saving.
	SavingSince time.Time
}
