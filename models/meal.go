package models

// One recorded eating event.
//
// Day and Hour are opaque text tokens (e.g. "21/04/2023", "20:00");
// grouping and comparison work on exact text equality, never on
// parsed calendar dates.
type Meal struct {
	ID          string `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      string `gorm:"type:uuid;index;not null" json:"-"` // owner, set once at creation
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"not null" json:"description"`
	Day         string `gorm:"not null" json:"day"`
	Hour        string `gorm:"not null" json:"hour"`
	InsideDiet  bool   `gorm:"not null" json:"insideDiet"`
}
