package models

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey"              json:"id"`
	Username  string    `gorm:"uniqueIndex;size:120"    json:"username"`
	FullName  string    `gorm:"size:180"                json:"full_name"`
	Role      string    `gorm:"size:60;default:operator" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
