package model

import "time"

// CountryModel mirrors the 'countries' table.
type CountryModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(255);not null"`
}

// TableName explicitly sets the table name for GORM.
func (CountryModel) TableName() string {
	return "countries"
}

// CompetitionSeriesModel mirrors the 'competition_series' table.
type CompetitionSeriesModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(255);not null"`
}

// TableName explicitly sets the table name for GORM.
func (CompetitionSeriesModel) TableName() string {
	return "competition_series"
}

// CompetitionModel mirrors the 'competitions' table.
type CompetitionModel struct {
	ID                  int64 `gorm:"primaryKey;autoIncrement"`
	CompetitionSeriesID int64 `gorm:"not null"`
	CountryID           int64 `gorm:"not null"`
	SeasonStart         time.Time
	SeasonEnd           time.Time

	CompetitionSeries *CompetitionSeriesModel `gorm:"foreignKey:CompetitionSeriesID"`
	Teams             []TeamModel             `gorm:"many2many:competition_teams;joinForeignKey:CompetitionID;joinReferences:TeamID"`
}

// TableName explicitly sets the table name for GORM.
func (CompetitionModel) TableName() string {
	return "competitions"
}

// CompetitionTeamModel mirrors the 'competition_teams' link table.
type CompetitionTeamModel struct {
	CompetitionID int64 `gorm:"primaryKey"`
	TeamID        int64 `gorm:"primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (CompetitionTeamModel) TableName() string {
	return "competition_teams"
}

// TeamModel mirrors the 'teams' table.
type TeamModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(255);not null"`
}

// TableName explicitly sets the table name for GORM.
func (TeamModel) TableName() string {
	return "teams"
}
