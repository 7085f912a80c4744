package models

import "gorm.io/gorm"

type Comment struct {
	gorm.Model

	UserID  uint `gorm:"not null;index"`
	PointID uint `gorm:"not null;index"`
	Body    string
	Rating  int `gorm:"not null"` // 1..5

	// Relationships
	User  User           `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Point RecyclingPoint `gorm:"foreignKey:PointID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
