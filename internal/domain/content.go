package domain

import "time"

// Update is a news post shown on the lounge's landing page
type Update struct {
	ID        int64
	Title     string
	Body      string
	Published bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Promotion is a time-bounded offer
type Promotion struct {
	ID        int64
	Title     string
	Body      string
	StartsOn  time.Time
	EndsOn    time.Time
	Published bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActiveOn reports whether the promotion runs on the given date
func (p *Promotion) IsActiveOn(date time.Time) bool {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return !d.Before(p.StartsOn) && !d.After(p.EndsOn)
}

// LeaderboardEntry is one scored result on the public leaderboard
type LeaderboardEntry struct {
	ID         int64
	PlayerName string
	Game       string
	Score      int
	RecordedOn time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
