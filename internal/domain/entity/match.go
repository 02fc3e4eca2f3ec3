package entity

import (
	"time"

	"github.com/paulmach/orb"
)

// Match is a scheduled game between two teams within a competition.
type Match struct {
	ID            int64     `json:"id"`
	TeamHomeID    int64     `json:"teamHomeId"`
	TeamAwayID    int64     `json:"teamAwayId"`
	CompetitionID int64     `json:"competitionId"`
	KickOff       time.Time `json:"kickOff"`
	HomeTeam      *Team     `json:"homeTeam,omitempty"`
	AwayTeam      *Team     `json:"awayTeam,omitempty"`
}

// Location is a public venue where matches are shown.
type Location struct {
	ID       int64     `json:"id"`
	Position orb.Point `json:"position"` // lon/lat
	Address  string    `json:"address"`
	PostCode string    `json:"postCode"`
	City     string    `json:"city"`
	Country  string    `json:"country"`
}

// Viewing is a public screening of a match at a location.
type Viewing struct {
	ID         int64     `json:"id"`
	MatchID    int64     `json:"matchId"`
	LocationID int64     `json:"locationId"`
	StartTime  time.Time `json:"startTime"`
	Location   *Location `json:"location,omitempty"`
}
