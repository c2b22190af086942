package scoring

import (
	"strings"

	"github.com/shenikar/geo_safety_system/internal/models"
)

var severityWeights = map[models.Severity]float64{
	models.SeverityLow:      0.25,
	models.SeverityMedium:   0.5,
	models.SeverityHigh:     0.75,
	models.SeverityCritical: 1.0,
}

const defaultSeverityWeight = 0.25

// externalCategories таксономия полиции Великобритании -> собственные категории
var externalCategories = map[string]models.Category{
	"anti-social-behaviour": models.CategoryHarassment,
	"bicycle-theft":         models.CategoryTheft,
	"burglary":              models.CategoryTheft,
	"criminal-damage-arson": models.CategoryVandalism,
	"drugs":                 models.CategoryOther,
	"other-theft":           models.CategoryTheft,
	"possession-of-weapons": models.CategoryViolence,
	"public-order":          models.CategoryHarassment,
	"robbery":               models.CategoryRobbery,
	"shoplifting":           models.CategoryTheft,
	"theft-from-the-person": models.CategoryTheft,
	"vehicle-crime":         models.CategoryTheft,
	"violent-crime":         models.CategoryAssault,
	"other-crime":           models.CategoryOther,
}

var externalSeverities = map[string]models.Severity{
	"anti-social-behaviour": models.SeverityLow,
	"bicycle-theft":         models.SeverityLow,
	"burglary":              models.SeverityMedium,
	"criminal-damage-arson": models.SeverityMedium,
	"drugs":                 models.SeverityLow,
	"other-theft":           models.SeverityLow,
	"possession-of-weapons": models.SeverityHigh,
	"public-order":          models.SeverityMedium,
	"robbery":               models.SeverityHigh,
	"shoplifting":           models.SeverityLow,
	"theft-from-the-person": models.SeverityMedium,
	"vehicle-crime":         models.SeverityMedium,
	"violent-crime":         models.SeverityHigh,
	"other-crime":           models.SeverityLow,
}

// SeverityWeight числовой вес уровня тяжести; неизвестный уровень весит как low
func SeverityWeight(s models.Severity) float64 {
	if w, ok := severityWeights[s]; ok {
		return w
	}
	return defaultSeverityWeight
}

// MapExternalCategory переводит ключ внешней таксономии в категорию системы
func MapExternalCategory(key string) models.Category {
	if c, ok := externalCategories[normalizeKey(key)]; ok {
		return c
	}
	return models.CategoryOther
}

// MapExternalSeverity уровень тяжести для ключа внешней таксономии
func MapExternalSeverity(key string) models.Severity {
	if s, ok := externalSeverities[normalizeKey(key)]; ok {
		return s
	}
	return models.SeverityLow
}

// ExternalCategoryKeys ключи таблицы внешних категорий
func ExternalCategoryKeys() []string {
	keys := make([]string, 0, len(externalCategories))
	for k := range externalCategories {
		keys = append(keys, k)
	}
	return keys
}

// ParseSeverity пустое значение -> medium, неизвестное -> false
func ParseSeverity(raw string) (models.Severity, bool) {
	if raw == "" {
		return models.SeverityMedium, true
	}
	s := models.Severity(strings.ToLower(raw))
	return s, s.IsValid()
}

func ParseCategory(raw string) (models.Category, bool) {
	c := models.Category(strings.ToLower(raw))
	return c, c.IsValid()
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
