package entity

import "time"

// Country groups competitions by the national association running them.
type Country struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CompetitionSeries is the season-independent identity of a competition,
// e.g. "Bundesliga". Filters link against series, not single seasons.
type CompetitionSeries struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Competition is one season of a competition series in a country.
type Competition struct {
	ID                  int64              `json:"id"`
	CompetitionSeriesID int64              `json:"competitionSeriesId"`
	CountryID           int64              `json:"countryId"`
	SeasonStart         time.Time          `json:"seasonStart"`
	SeasonEnd           time.Time          `json:"seasonEnd"`
	CompetitionSeries   *CompetitionSeries `json:"competitionSeries,omitempty"`
}

// Team is a club taking part in competitions.
type Team struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
