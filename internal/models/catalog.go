package models

import (
	"time"

	"github.com/terra-clan/codehunt/pkg/datarelease"
)

// Level is the JSON view of a data release level
type Level struct {
	Name          string `json:"name"`          // "Sector1-Level3"
	Sector        int    `json:"sector"`
	LevelInSector int    `json:"levelInSector"`
	ChallengeID   string `json:"challengeId,omitempty"`
}

// User is the JSON view of a data release user
type User struct {
	ID         string `json:"id"`                   // "User001"
	Experience string `json:"experience,omitempty"` // 1 | 2 | 3
}

// Attempt is the JSON view of one submission
type Attempt struct {
	Filename  string    `json:"filename"`
	Number    int       `json:"number"`
	Timestamp time.Time `json:"timestamp"`
	Won       bool      `json:"won"`
	Rating    *int      `json:"rating"` // 1-3, null unless won
	Language  string    `json:"language"`
	UserID    string    `json:"userId"`
	Level     string    `json:"level"`
}

// NewLevel builds the summary view; ChallengeID is filled in by callers
// that have read it.
func NewLevel(l *datarelease.Level) *Level {
	return &Level{
		Name:          l.Name,
		Sector:        l.Sector,
		LevelInSector: l.LevelInSector,
	}
}

func NewUser(u *datarelease.User) *User {
	return &User{ID: u.ID}
}

func NewAttempt(a *datarelease.Attempt) *Attempt {
	return &Attempt{
		Filename:  a.Filename(),
		Number:    a.Number,
		Timestamp: a.Timestamp,
		Won:       a.Won,
		Rating:    a.Rating,
		Language:  a.Language,
		UserID:    a.User.ID,
		Level:     a.Level.Name,
	}
}
