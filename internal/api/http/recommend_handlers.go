package http

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Slava47/barkocobarka/internal/menu"
	"github.com/Slava47/barkocobarka/internal/recommend"
	syncx "github.com/Slava47/barkocobarka/internal/sync"

	"github.com/go-chi/chi/v5/middleware"
)

// EngineFactory builds a Recommender for the requested result count.
// Policies are pinned by server config; only top_n is caller-controlled.
type EngineFactory func(topN int) recommend.Recommender

// POST /recommendations  { "answers": ["сладкий", ...], "top_n": 3 }
func RecommendHandler(store menu.Store, engineFor EngineFactory, events *syncx.EventRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Answers []string `json:"answers"`
			TopN    int      `json:"top_n"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if req.Answers == nil {
			http.Error(w, "answers required", http.StatusBadRequest)
			return
		}

		items, err := store.ListItems(r.Context(), menu.ListOpts{})
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		results := engineFor(req.TopN).Recommend(req.Answers, items)

		// Best-effort completion record; a full event log is not worth a
		// failed recommendation.
		ids := make([]string, 0, len(results))
		for _, res := range results {
			ids = append(ids, res.ID)
		}
		if err := events.QuizCompleted(r.Context(), middleware.GetReqID(r.Context()), req.Answers, ids); err != nil {
			log.Printf("event log append failed: %v", err)
		}

		writeJSON(w, map[string]interface{}{"results": results})
	}
}
