// Package education serves the static reading list on stress, mood and
// self-care.
package education

import (
	"slices"
	"strings"

	"mindguard/internal/models"
)

func All() []models.Topic {
	return slices.Clone(library)
}

// ByID finds a topic by id, ignoring case.
func ByID(id string) (models.Topic, bool) {
	for _, t := range library {
		if strings.EqualFold(t.ID, id) {
			return t, true
		}
	}
	return models.Topic{}, false
}

// Search returns the articles that mention query anywhere in their text or
// technique names, in library order.
func Search(query string) []models.Article {
	q := strings.ToLower(strings.TrimSpace(query))
	out := []models.Article{}
	if q == "" {
		return out
	}
	for _, t := range library {
		for _, a := range t.Articles {
			if matches(a, q) {
				out = append(out, a)
			}
		}
	}
	return out
}

func matches(a models.Article, q string) bool {
	has := func(s string) bool { return strings.Contains(strings.ToLower(s), q) }
	if has(a.Title) || has(a.Content) {
		return true
	}
	if slices.ContainsFunc(a.KeyPoints, has) || slices.ContainsFunc(a.Practices, has) {
		return true
	}
	return slices.ContainsFunc(a.Techniques, func(tc models.Technique) bool {
		return has(tc.Name) || has(tc.Description)
	})
}
