package models

import "time"

// User is the minimal identity row attempts and results reference. Profile
// management lives outside this service.
type User struct {
	ID        string  `json:"id" gorm:"primaryKey;size:36"`
	Name      string  `json:"name" gorm:"not null;size:100"`
	Email     *string `json:"email" gorm:"uniqueIndex;size:255"`
	Pesantren *string `json:"pesantren" gorm:"size:200"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
