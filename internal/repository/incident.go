package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shenikar/geo_safety_system/internal/models"
	"github.com/shenikar/geo_safety_system/internal/service"
)

type IncidentRepository struct {
	db *pgxpool.Pool
}

func NewIncidentRepository(db *pgxpool.Pool) service.IncidentStore {
	return &IncidentRepository{db: db}
}

// Create сохраняет инцидент, id и created_at заполняет база
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	query := `
		INSERT INTO incidents (external_id, location, category, description, severity, occurred_at, source, reported_by)
		VALUES (NULLIF($1, ''), ST_SetSRID(ST_MakePoint($2, $3), 4326), $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		incident.ExternalID,
		incident.Longitude,
		incident.Latitude,
		incident.Category,
		incident.Description,
		incident.Severity,
		incident.OccurredAt,
		incident.Source,
		incident.ReportedBy,
	).Scan(&incident.ID, &incident.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

// Find возвращает инциденты внутри ограничивающего прямоугольника, новые первыми
func (r *IncidentRepository) Find(ctx context.Context, q models.IncidentQuery) ([]models.Incident, error) {
	query := `
		SELECT
			id,
			COALESCE(external_id, ''),
			ST_Y(location::geometry) AS latitude,
			ST_X(location::geometry) AS longitude,
			category,
			description,
			severity,
			occurred_at,
			source,
			reported_by,
			created_at
		FROM incidents
		WHERE
			location::geometry && ST_MakeEnvelope($1, $2, $3, $4, 4326)
			AND occurred_at >= $5
		ORDER BY occurred_at DESC
		LIMIT $6;
	`
	rows, err := r.db.Query(ctx, query,
		q.Box.LngMin, q.Box.LatMin, q.Box.LngMax, q.Box.LatMax,
		q.Since,
		q.Limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to find incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]models.Incident, 0)
	for rows.Next() {
		inc, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, inc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}

func scanIncident(row pgx.Row) (models.Incident, error) {
	var inc models.Incident
	err := row.Scan(
		&inc.ID,
		&inc.ExternalID,
		&inc.Latitude,
		&inc.Longitude,
		&inc.Category,
		&inc.Description,
		&inc.Severity,
		&inc.OccurredAt,
		&inc.Source,
		&inc.ReportedBy,
		&inc.CreatedAt,
	)
	return inc, err
}
