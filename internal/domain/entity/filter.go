package entity

// Filter is a named saved query owned by exactly one user, linking that user
// to a set of teams and/or competition series. At least one of the two link
// sets must be non-empty when the filter is created.
type Filter struct {
	ID                   int64   `json:"id"`
	Name                 string  `json:"name"`
	TeamIDs              []int64 `json:"teamIds,omitempty"`
	CompetitionSeriesIDs []int64 `json:"competitionSeriesIds,omitempty"`
}

// HasLinks reports whether the filter references at least one team or
// competition series.
func (f *Filter) HasLinks() bool {
	return len(f.TeamIDs) > 0 || len(f.CompetitionSeriesIDs) > 0
}
