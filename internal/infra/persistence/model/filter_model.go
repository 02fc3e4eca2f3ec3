package model

// FilterModel mirrors the 'filters' table.
type FilterModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(255);not null"`

	FilterTeams             []FilterTeamModel              `gorm:"foreignKey:FilterID"`
	FilterCompetitionSeries []FilterCompetitionSeriesModel `gorm:"foreignKey:FilterID"`
}

// TableName explicitly sets the table name for GORM.
func (FilterModel) TableName() string {
	return "filters"
}

// FilterTeamModel mirrors the 'filter_teams' link table.
type FilterTeamModel struct {
	FilterID int64 `gorm:"primaryKey"`
	TeamID   int64 `gorm:"primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (FilterTeamModel) TableName() string {
	return "filter_teams"
}

// FilterCompetitionSeriesModel mirrors the 'filter_competition_series' link table.
type FilterCompetitionSeriesModel struct {
	FilterID            int64 `gorm:"primaryKey"`
	CompetitionSeriesID int64 `gorm:"primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (FilterCompetitionSeriesModel) TableName() string {
	return "filter_competition_series"
}
