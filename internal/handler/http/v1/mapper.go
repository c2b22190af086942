package v1

import (
	"github.com/shenikar/geo_safety_system/internal/geo"
	"github.com/shenikar/geo_safety_system/internal/models"
)

// DTOToIncidentModel преобразует DTO в доменную модель. Источник и время
// по умолчанию выставляет сервис.
func DTOToIncidentModel(dto CreateIncidentRequest) *models.Incident {
	incident := &models.Incident{
		Latitude:    *dto.Latitude,
		Longitude:   *dto.Longitude,
		Category:    models.Category(dto.Category),
		Description: dto.Description,
		Severity:    models.Severity(dto.Severity),
	}
	if dto.OccurredAt != nil {
		incident.OccurredAt = *dto.OccurredAt
	}
	if dto.ReportedBy != "" {
		reporter := dto.ReportedBy
		incident.ReportedBy = &reporter
	}
	return incident
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) IncidentResponse {
	return IncidentResponse{
		ID:          model.ID,
		Latitude:    model.Latitude,
		Longitude:   model.Longitude,
		Category:    string(model.Category),
		Description: model.Description,
		Severity:    string(model.Severity),
		OccurredAt:  model.OccurredAt,
		Source:      model.Source,
		CreatedAt:   model.CreatedAt,
	}
}

// ModelToCrimeNearResponse преобразует отчет сервиса в DTO, сохраняя порядок ранжирования
func ModelToCrimeNearResponse(report models.CrimeReport) CrimeNearResponse {
	incidents := make([]ScoredIncidentResponse, len(report.Incidents))
	for i, inc := range report.Incidents {
		incidents[i] = ScoredIncidentResponse{
			IncidentResponse: ModelToIncidentResponse(&inc.Incident),
			DistanceMeters:   inc.DistanceMeters,
			DangerScore:      inc.DangerScore,
			RecencyScore:     inc.RecencyScore,
		}
	}
	return CrimeNearResponse{
		Location:  report.Location,
		Incidents: incidents,
		Stats:     report.Stats,
	}
}

// WaypointsToPoints DTO точек маршрута -> geo.Point
func WaypointsToPoints(waypoints []WaypointDTO) []geo.Point {
	points := make([]geo.Point, len(waypoints))
	for i, w := range waypoints {
		points[i] = geo.Point{Lat: *w.Latitude, Lng: *w.Longitude}
	}
	return points
}

func DTOToRatingModel(dto CreateRatingRequest) *models.Rating {
	return &models.Rating{
		UserID:      dto.UserID,
		Latitude:    *dto.Latitude,
		Longitude:   *dto.Longitude,
		SafetyScore: dto.SafetyScore,
		Comment:     dto.Comment,
		RouteType:   models.RouteType(dto.RouteType),
	}
}

func DTOToSOSRequest(dto SOSRequest) models.SOSRequest {
	return models.SOSRequest{
		UserID:    dto.UserID,
		Latitude:  *dto.Latitude,
		Longitude: *dto.Longitude,
		Message:   dto.Message,
	}
}

func DTOToLocationShare(dto ShareLocationRequest) models.LocationShare {
	return models.LocationShare{
		ID:        dto.ID,
		UserID:    dto.UserID,
		Latitude:  *dto.Latitude,
		Longitude: *dto.Longitude,
	}
}

// BoxQueryToBoundingBox DTO области -> geo.BoundingBox
func BoxQueryToBoundingBox(q BoxQuery) geo.BoundingBox {
	return geo.BoundingBox{
		LatMin: *q.LatMin,
		LatMax: *q.LatMax,
		LngMin: *q.LngMin,
		LngMax: *q.LngMax,
	}
}
