package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Painting is a single catalog entry.
type Painting struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Title     string    `json:"title" gorm:"size:255;not null"`
	Artist    string    `json:"artist" gorm:"size:255;not null"`
	Price     string    `json:"price" gorm:"size:64;not null"`
	Image     string    `json:"image" gorm:"size:1024;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Painting) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// DefaultPaintings is the collection loaded into an empty catalog.
func DefaultPaintings() []Painting {
	return []Painting{
		{Title: "Sunset Dreams", Artist: "Emma Wilson", Price: "299", Image: "https://picsum.photos/seed/painting1/800/600.jpg"},
		{Title: "Ocean Waves", Artist: "Michael Chen", Price: "349", Image: "https://picsum.photos/seed/painting2/800/600.jpg"},
		{Title: "City Lights", Artist: "Sophia Martinez", Price: "275", Image: "https://picsum.photos/seed/painting3/800/600.jpg"},
		{Title: "Forest Serenity", Artist: "James Rodriguez", Price: "315", Image: "https://picsum.photos/seed/painting4/800/600.jpg"},
		{Title: "Abstract Emotions", Artist: "Olivia Taylor", Price: "265", Image: "https://picsum.photos/seed/painting5/800/600.jpg"},
		{Title: "Mountain Majesty", Artist: "David Kim", Price: "385", Image: "https://picsum.photos/seed/painting6/800/600.jpg"},
		{Title: "Golden Hour", Artist: "Ava Garcia", Price: "320", Image: "https://picsum.photos/seed/painting7/800/600.jpg"},
		{Title: "Urban Jungle", Artist: "Noah Brown", Price: "290", Image: "https://picsum.photos/seed/painting8/800/600.jpg"},
		{Title: "Coastal Calm", Artist: "Isabella Lee", Price: "355", Image: "https://picsum.photos/seed/painting9/800/600.jpg"},
	}
}
