package models

import "gorm.io/gorm"

type RecyclingPoint struct {
	gorm.Model

	OwnerID   uint   `gorm:"not null;index"`
	Name      string `gorm:"not null"`
	WasteType string `gorm:"not null"` // "Vidrio", "Papel", "Plástico", etc.
	Address   string
	Latitude  float64
	Longitude float64

	// Relationships
	Owner    User      `gorm:"foreignKey:OwnerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Comments []Comment `gorm:"foreignKey:PointID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
