package usecases

import (
	"strings"

	"mindguard/internal/education"
	"mindguard/internal/models"
)

// EducationTopics returns the whole reading list, or the single topic named.
func EducationTopics(topic string) ([]models.Topic, error) {
	if topic == "" {
		return education.All(), nil
	}
	t, ok := education.ByID(topic)
	if !ok {
		return nil, invalid("topic", "must be one of %s", strings.Join(models.Topics, ", "))
	}
	return []models.Topic{t}, nil
}

func SearchEducation(query string) ([]models.Article, error) {
	if strings.TrimSpace(query) == "" {
		return nil, invalid("q", "must not be empty")
	}
	return education.Search(query), nil
}
