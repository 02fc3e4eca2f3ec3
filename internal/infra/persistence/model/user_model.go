package model

import "time"

// UserModel mirrors the 'users' table. The name column carries the uniqueness
// constraint that arbitrates concurrent registrations.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID               int64   `gorm:"primaryKey;autoIncrement"`
	Name             string  `gorm:"type:varchar(255);unique;not null"`
	PasswordHash     *string `gorm:"type:varchar(100)"`
	IsAutoGenerated  bool    `gorm:"not null"`
	IsAdmin          bool    `gorm:"not null;default:false"`
	RegistrationDate time.Time

	Filters []FilterModel `gorm:"many2many:user_filters;joinForeignKey:UserID;joinReferences:FilterID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// UserFilterModel mirrors the 'user_filters' join table linking users to
// their saved filters.
type UserFilterModel struct {
	UserID   int64 `gorm:"primaryKey"`
	FilterID int64 `gorm:"primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (UserFilterModel) TableName() string {
	return "user_filters"
}
