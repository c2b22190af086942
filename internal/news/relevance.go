package news

import (
	"math"
	"regexp"
	"strings"

	"github.com/shenikar/geo_safety_system/internal/models"
)

// RelevanceThreshold статьи ниже порога отбрасываются
const RelevanceThreshold = 0.3

var safetyKeywords = []string{
	"crime", "criminal", "police", "robbery", "robbed", "theft", "stolen", "burglary",
	"assault", "attack", "attacked", "violence", "violent", "fight", "stabbing", "stabbed",
	"shooting", "shot", "gun", "knife", "arrest", "arrested", "harassment", "accident",
	"murder", "kidnapping", "terrorism", "riot", "bomb", "explosion", "fire", "injured",
	"killed", "dead", "emergency", "danger", "dangerous", "unsafe", "protest", "mugging",
}

var highImpactKeywords = map[string]bool{
	"murder":     true,
	"kidnapping": true,
	"terrorism":  true,
	"riot":       true,
	"shooting":   true,
	"bomb":       true,
}

var keywordPattern = regexp.MustCompile(`(?i)\b(` + strings.Join(safetyKeywords, "|") + `)\b`)

// Severity classes are checked in priority order; the first match wins.
var severityClasses = []struct {
	severity models.Severity
	pattern  *regexp.Regexp
}{
	{models.SeverityCritical, regexp.MustCompile(`(?i)\b(murder\w*|kill\w*|death\w*|dead|fatal\w*|terror\w*|bomb\w*)\b`)},
	{models.SeverityHigh, regexp.MustCompile(`(?i)\b(rape\w*|kidnap\w*|assault\w*|robber\w*|robbed|violen\w*|shoot\w*|stab\w*)\b`)},
	{models.SeverityMedium, regexp.MustCompile(`(?i)\b(theft\w*|thie\w*|harass\w*|fight\w*|accident\w*|burglar\w*|mugg\w*)\b`)},
}

func articleText(a models.Article) string {
	return a.Title + " " + a.Description + " " + a.Content
}

// Relevance оценка 0..1: 0.1 за каждое вхождение ключевого слова (не более 1)
// плюс 0.3 за каждое отличное высокоимпактное слово
func Relevance(a models.Article) float64 {
	matches := keywordPattern.FindAllString(articleText(a), -1)
	base := math.Min(1, 0.1*float64(len(matches)))

	distinct := make(map[string]bool)
	for _, m := range matches {
		w := strings.ToLower(m)
		if highImpactKeywords[w] {
			distinct[w] = true
		}
	}
	return math.Min(1, base+0.3*float64(len(distinct)))
}

// IsRelevant статья проходит порог релевантности
func IsRelevant(a models.Article) bool {
	return Relevance(a) >= RelevanceThreshold
}

// FilterRelevant оставляет только релевантные статьи, порядок сохраняется
func FilterRelevant(articles []models.Article) []models.Article {
	out := make([]models.Article, 0, len(articles))
	for _, a := range articles {
		if IsRelevant(a) {
			out = append(out, a)
		}
	}
	return out
}

// SeverityOf уровень тяжести по классам ключевых слов
func SeverityOf(a models.Article) models.Severity {
	text := articleText(a)
	for _, class := range severityClasses {
		if class.pattern.MatchString(text) {
			return class.severity
		}
	}
	return models.SeverityLow
}
