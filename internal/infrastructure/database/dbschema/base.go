package dbschema

import "time"

// BaseModel is the common column set shared by all schema structs.
type BaseModel struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
