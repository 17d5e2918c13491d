package domain

import "time"

type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100)" json:"name"`
	Title     string    `gorm:"type:varchar(200)" json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type Amenity struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	Location  string   `gorm:"type:varchar(200);uniqueIndex;not null" json:"location"`
	Amenities []string `gorm:"serializer:json" json:"amenities"`
}
