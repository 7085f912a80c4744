package handlers

import (
	"github.com/ecomap-dev/ecomap/db"
	"github.com/ecomap-dev/ecomap/internal/models"
	"github.com/ecomap-dev/ecomap/internal/ratings"
	"github.com/ecomap-dev/ecomap/internal/types"
)

// pointSummary recomputes the rating aggregate for a single point from a
// fresh read of its comments.
func pointSummary(pointID uint) (ratings.Summary, error) {
	var values []int

	err := db.DB.Model(&models.Comment{}).
		Where("point_id = ?", pointID).
		Pluck("rating", &values).Error

	if err != nil {
		return ratings.Summary{}, err
	}

	return ratings.Summarize(values), nil
}

// pointSummaries loads the ratings of every comment in one query and
// groups them per point, so listing N points does not issue N queries.
func pointSummaries() (map[uint][]int, error) {
	var rows []struct {
		PointID uint
		Rating  int
	}

	err := db.DB.Model(&models.Comment{}).
		Select("point_id", "rating").
		Find(&rows).Error

	if err != nil {
		return nil, err
	}

	grouped := make(map[uint][]int)

	for _, row := range rows {
		grouped[row.PointID] = append(grouped[row.PointID], row.Rating)
	}

	return grouped, nil
}

func toPointResponse(point models.RecyclingPoint, summary ratings.Summary) types.PointResponse {
	return types.PointResponse{
		ID:        point.ID,
		Name:      point.Name,
		WasteType: point.WasteType,
		Address:   point.Address,
		Latitude:  point.Latitude,
		Longitude: point.Longitude,
		CreatedAt: point.CreatedAt,
		Owner: types.OwnerResponse{
			ID:    point.Owner.ID,
			Name:  point.Owner.Name,
			Email: point.Owner.Email,
		},
		Summary: summary,
	}
}

func buildPointResponses(points []models.RecyclingPoint) ([]types.PointResponse, error) {
	grouped, err := pointSummaries()

	if err != nil {
		return nil, err
	}

	response := make([]types.PointResponse, 0, len(points))

	for _, point := range points {
		response = append(response, toPointResponse(point, ratings.Summarize(grouped[point.ID])))
	}

	return response, nil
}
