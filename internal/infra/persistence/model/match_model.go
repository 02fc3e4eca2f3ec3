package model

import "time"

// MatchModel mirrors the 'matches' table.
type MatchModel struct {
	ID            int64 `gorm:"primaryKey;autoIncrement"`
	TeamHomeID    int64 `gorm:"not null"`
	TeamAwayID    int64 `gorm:"not null"`
	CompetitionID int64 `gorm:"not null"`
	KickOff       time.Time

	HomeTeam *TeamModel `gorm:"foreignKey:TeamHomeID"`
	AwayTeam *TeamModel `gorm:"foreignKey:TeamAwayID"`
}

// TableName explicitly sets the table name for GORM.
func (MatchModel) TableName() string {
	return "matches"
}

// LocationModel mirrors the 'locations' table. The coordinate pair is stored
// as plain columns and mapped to a geometry point at the repository boundary.
type LocationModel struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	Longitude float64 `gorm:"not null"`
	Latitude  float64 `gorm:"not null"`
	Address   string  `gorm:"type:varchar(255)"`
	PostCode  string  `gorm:"type:varchar(32)"`
	City      string  `gorm:"type:varchar(255)"`
	Country   string  `gorm:"type:varchar(255)"`
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}

// ViewingModel mirrors the 'viewings' table.
type ViewingModel struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	MatchID    int64 `gorm:"not null"`
	LocationID int64 `gorm:"not null"`
	StartTime  time.Time

	Location *LocationModel `gorm:"foreignKey:LocationID"`
}

// TableName explicitly sets the table name for GORM.
func (ViewingModel) TableName() string {
	return "viewings"
}
