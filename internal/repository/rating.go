package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shenikar/geo_safety_system/internal/geo"
	"github.com/shenikar/geo_safety_system/internal/models"
	"github.com/shenikar/geo_safety_system/internal/service"
)

type RatingRepository struct {
	db *pgxpool.Pool
}

func NewRatingRepository(db *pgxpool.Pool) service.RatingStore {
	return &RatingRepository{db: db}
}

func (r *RatingRepository) Create(ctx context.Context, rating *models.Rating) error {
	query := `
		INSERT INTO ratings (user_id, location, safety_score, comment, time_of_day, day_of_week, route_type)
		VALUES ($1, ST_SetSRID(ST_MakePoint($2, $3), 4326), $4, $5, $6, $7, $8)
		RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		rating.UserID,
		rating.Longitude,
		rating.Latitude,
		rating.SafetyScore,
		rating.Comment,
		rating.TimeOfDay,
		rating.DayOfWeek,
		rating.RouteType,
	).Scan(&rating.ID, &rating.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create rating: %w", err)
	}
	return nil
}

// Find оценки внутри прямоугольника, созданные не раньше since
func (r *RatingRepository) Find(ctx context.Context, box geo.BoundingBox, since time.Time) ([]models.Rating, error) {
	query := `
		SELECT
			id,
			user_id,
			ST_Y(location::geometry) AS latitude,
			ST_X(location::geometry) AS longitude,
			safety_score,
			comment,
			time_of_day,
			day_of_week,
			route_type,
			created_at
		FROM ratings
		WHERE
			location::geometry && ST_MakeEnvelope($1, $2, $3, $4, 4326)
			AND created_at >= $5
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, box.LngMin, box.LatMin, box.LngMax, box.LatMax, since)
	if err != nil {
		return nil, fmt.Errorf("failed to find ratings: %w", err)
	}
	defer rows.Close()

	ratings := make([]models.Rating, 0)
	for rows.Next() {
		var rt models.Rating
		err := rows.Scan(
			&rt.ID,
			&rt.UserID,
			&rt.Latitude,
			&rt.Longitude,
			&rt.SafetyScore,
			&rt.Comment,
			&rt.TimeOfDay,
			&rt.DayOfWeek,
			&rt.RouteType,
			&rt.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rating row: %w", err)
		}
		ratings = append(ratings, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return ratings, nil
}
