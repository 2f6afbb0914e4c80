package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Slava47/barkocobarka/internal/menu"

	"github.com/go-chi/chi/v5"
)

// GET /menu — the full catalog (categories + items), the shape the client
// app renders from.
func GetMenuHandler(store menu.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := store.GetCatalog(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, c)
	}
}

// GET /menu/items?category=&limit=&offset=
func ListMenuItemsHandler(store menu.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts := menu.ListOpts{
			Category: r.URL.Query().Get("category"),
			Limit:    queryInt(r, "limit"),
			Offset:   queryInt(r, "offset"),
		}
		items, err := store.ListItems(r.Context(), opts)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, items)
	}
}

// GET /menu/items/{itemID}
func GetMenuItemHandler(store menu.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		it, err := store.GetItem(r.Context(), chi.URLParam(r, "itemID"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		writeJSON(w, it)
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(v)
}

func queryInt(r *http.Request, key string) int {
	n, _ := strconv.Atoi(r.URL.Query().Get(key))
	if n < 0 {
		return 0
	}
	return n
}
