package http

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Slava47/barkocobarka/internal/menu"
	"github.com/Slava47/barkocobarka/internal/quiz"
	syncx "github.com/Slava47/barkocobarka/internal/sync"

	"github.com/go-chi/chi/v5/middleware"
)

// PUT /admin/menu — replace the catalog. Items missing id or name are
// dropped, not rejected; one bad record must not block an update.
func PutMenuHandler(store menu.Store, events *syncx.EventRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var c menu.Catalog
		if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if len(c.Categories) == 0 {
			http.Error(w, "categories required", http.StatusBadRequest)
			return
		}
		if err := store.PutCatalog(r.Context(), c); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if err := events.Append(r.Context(), syncx.Event{
			Type: syncx.EventCatalogUpdated,
			Key:  middleware.GetReqID(r.Context()),
		}); err != nil {
			log.Printf("event log append failed: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// PUT /admin/quiz — replace the active quiz.
func PutQuizHandler(store quiz.Store, events *syncx.EventRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var q quiz.Quiz
		if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if len(q.Questions) == 0 {
			http.Error(w, "questions required", http.StatusBadRequest)
			return
		}
		for _, question := range q.Questions {
			if len(question.Options) == 0 {
				http.Error(w, "every question needs options", http.StatusBadRequest)
				return
			}
		}
		if err := store.PutQuiz(r.Context(), q); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if err := events.Append(r.Context(), syncx.Event{
			Type: syncx.EventQuizUpdated,
			Key:  middleware.GetReqID(r.Context()),
		}); err != nil {
			log.Printf("event log append failed: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
