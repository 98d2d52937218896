package models

import (
	"time"
)

type Reservation struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Phone     string    `gorm:"not null" json:"phone"`
	Guests    int       `gorm:"not null;check:guests >= 1 AND guests <= 20" json:"guests"`
	Date      string    `gorm:"size:10;not null" json:"date"`
	Time      string    `gorm:"size:5;not null" json:"time"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
