package db_models

import "github.com/google/uuid"

// User holds identity only; capabilities live in the optional sub-identity
// rows below. A user without any of them can log in but can't do much else.
type User struct {
	BaseModel
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `gorm:"unique" json:"email"`
	PasswordHash string `json:"-"`

	Client     *Client     `gorm:"foreignKey:UserID" json:"client,omitempty"`
	Instructor *Instructor `gorm:"foreignKey:UserID" json:"instructor,omitempty"`
	Admin      *Admin      `gorm:"foreignKey:UserID" json:"admin,omitempty"`
}

func (u *User) IsClient() bool     { return u.Client != nil }
func (u *User) IsInstructor() bool { return u.Instructor != nil }
func (u *User) IsAdmin() bool      { return u.Admin != nil }

type Client struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"userId"`
}

type Instructor struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"userId"`

	WeekSchedules []WeekSchedule `gorm:"foreignKey:InstructorID" json:"-"`
}

type Admin struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"userId"`
}
