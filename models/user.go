package models

// A diary owner. The user's id doubles as the session credential
// carried in the sessionId cookie.
type User struct {
	ID   string `gorm:"type:uuid;primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`
}
