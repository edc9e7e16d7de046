package model

import "time"

type Customer struct {
	ID        uint64    `gorm:"primaryKey"`
	Name      string    `gorm:"type:varchar(128);not null"`
	Status    int       `gorm:"type:tinyint;not null;default:1"`
	CreatedAt time.Time
}

func (Customer) TableName() string {
	return "customers"
}
