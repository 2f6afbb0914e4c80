package http

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/Slava47/barkocobarka/internal/storage"

	"github.com/go-chi/chi/v5"
)

// MountAssetUpload adds the admin-only image upload route.
// POST /admin/assets/{itemID} with a multipart "file" field.
func MountAssetUpload(r chi.Router, bs storage.BlobStore) {
	r.Post("/{itemID}", func(w http.ResponseWriter, r *http.Request) {
		itemID := chi.URLParam(r, "itemID")
		f, hdr, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "file required", http.StatusBadRequest)
			return
		}
		defer f.Close()

		ext := path.Ext(hdr.Filename)
		if ext == "" {
			ext = ".jpg"
		}
		key := "img/items/" + itemID + ext
		if _, err := bs.Put(key, f); err != nil {
			http.Error(w, "store error: "+err.Error(), http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"key": key})
	})
}

// MountAssets serves stored images publicly.
// GET /assets/* -> the blob at whatever follows /assets/
func MountAssets(r chi.Router, bs storage.BlobStore) {
	r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		key := strings.TrimPrefix(chi.URLParam(r, "*"), "/")
		rc, err := bs.Get(key)
		if err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		defer rc.Close()

		ct := mime.TypeByExtension(path.Ext(key))
		if ct == "" {
			ct = "application/octet-stream"
		}
		w.Header().Set("Content-Type", ct)
		_, _ = io.Copy(w, rc)
	})
}
