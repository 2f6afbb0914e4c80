package http

import (
	"net/http"

	"github.com/Slava47/barkocobarka/internal/quiz"
)

// GET /quiz — the active quiz definition.
func GetQuizHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := store.GetQuiz(r.Context(), quiz.DefaultID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		writeJSON(w, q)
	}
}
