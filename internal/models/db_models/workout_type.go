package db_models

// WorkoutType is a named class category. Name is the natural key; the emoji
// icon must be unique too.
type WorkoutType struct {
	Name  string `gorm:"primaryKey" json:"name"`
	Emoji string `gorm:"unique" json:"emoji"`
}
