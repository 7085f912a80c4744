package types

import (
	"time"

	"github.com/ecomap-dev/ecomap/internal/ratings"
)

type UserResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type OwnerResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type PointResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	WasteType string    `json:"waste_type"`
	Address   string    `json:"address"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`

	Owner OwnerResponse `json:"owner"`

	ratings.Summary
}

type CommentResponse struct {
	ID        uint      `json:"id"`
	PointID   uint      `json:"point_id"`
	Body      string    `json:"body"`
	Rating    int       `json:"rating"`
	Author    string    `json:"author"`
	PointName string    `json:"point_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
