package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	api "github.com/Slava47/barkocobarka/internal/api/http"
	auth "github.com/Slava47/barkocobarka/internal/auth/middleware"
	"github.com/Slava47/barkocobarka/internal/config"
	"github.com/Slava47/barkocobarka/internal/db"
	"github.com/Slava47/barkocobarka/internal/menu"
	"github.com/Slava47/barkocobarka/internal/quiz"
	"github.com/Slava47/barkocobarka/internal/rbac"
	"github.com/Slava47/barkocobarka/internal/recommend"
	storage "github.com/Slava47/barkocobarka/internal/storage"
	syncx "github.com/Slava47/barkocobarka/internal/sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// --- Stores ---
	var (
		dbh       *sql.DB
		menuStore menu.Store
		quizStore quiz.Store
		err       error
	)
	if cfg.DBDriver == "memory" {
		menuStore = menu.NewInMemoryStore()
		quizStore = quiz.NewInMemoryStore()
	} else {
		dbh, err = db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
		if err != nil {
			log.Fatalf("db open failed: %v", err)
		}
		menuStore = menu.NewSQLStore(dbh, cfg.DBDriver)
		quizStore = quiz.NewSQLStore(dbh, cfg.DBDriver)
	}
	if err := menu.SeedIfEmpty(ctx, menuStore); err != nil {
		log.Fatalf("seed catalog: %v", err)
	}
	if err := quiz.SeedIfEmpty(ctx, quizStore); err != nil {
		log.Fatalf("seed quiz: %v", err)
	}
	events := syncx.NewEventRepo(dbh) // nil-safe when running in memory

	// --- Recommendation engine (policies pinned per deployment) ---
	baseOpts := []recommend.Option{
		recommend.WithAlcoholPolicy(recommend.AlcoholPolicy(cfg.AlcoholPolicy)),
		recommend.WithMatchPolicy(recommend.MatchPolicy(cfg.MatchPolicy)),
	}
	engineFor := func(topN int) recommend.Recommender {
		if topN <= 0 {
			topN = cfg.RecommendTopN
		}
		return recommend.New(append([]recommend.Option{recommend.WithTopN(topN)}, baseOpts...)...)
	}

	authSvc := auth.NewAuthService(cfg.AuthSecret)

	bs, err := storage.NewFSStore(cfg.BlobBasePath)
	if err != nil {
		log.Fatalf("blob store: %v", err)
	}

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		ExposedHeaders: []string{"Content-Length"},
		MaxAge:         300,
	}))

	// Public surface: what the PWA consumes.
	r.Get("/menu", api.GetMenuHandler(menuStore))
	r.Route("/menu/items", func(mr chi.Router) {
		mr.Get("/", api.ListMenuItemsHandler(menuStore))
		mr.Get("/{itemID}", api.GetMenuItemHandler(menuStore))
	})
	r.Get("/quiz", api.GetQuizHandler(quizStore))
	r.Post("/recommendations", api.RecommendHandler(menuStore, engineFor, events))
	r.Route("/assets", func(ar chi.Router) {
		api.MountAssets(ar, bs)
	})

	// Admin surface (JWT → role in context → RBAC).
	r.Post("/auth/login", auth.LoginHandler(authSvc, auth.Credentials{
		User:     cfg.AdminUser,
		PassHash: cfg.AdminPassHash,
	}))
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))

		pr.With(rbac.Require("menu:update")).
			Put("/admin/menu", api.PutMenuHandler(menuStore, events))
		pr.With(rbac.Require("quiz:update")).
			Put("/admin/quiz", api.PutQuizHandler(quizStore, events))
		pr.With(rbac.Require("assets:upload")).
			Route("/admin/assets", func(ar chi.Router) {
				api.MountAssetUpload(ar, bs)
			})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (db=%s, alcohol=%s, match=%s)",
		cfg.HTTPAddr, cfg.DBDriver, cfg.AlcoholPolicy, cfg.MatchPolicy)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
