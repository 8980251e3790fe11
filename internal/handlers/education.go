package handlers

import (
	"net/http"

	"mindguard/internal/usecases"
)

// HandleEducation lists the reading material. ?topic= narrows to one topic,
// ?q= searches every article instead.
func HandleEducation(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/education.go HandleEducation"

	query := r.URL.Query()
	if query.Has("q") {
		articles, err := usecases.SearchEducation(query.Get("q"))
		if err != nil {
			writeError(w, op, err)
			return
		}
		writeJSON(w, op, http.StatusOK, articles)
		return
	}

	topics, err := usecases.EducationTopics(query.Get("topic"))
	if err != nil {
		writeError(w, op, err)
		return
	}
	writeJSON(w, op, http.StatusOK, topics)
}
