package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	api "github.com/Slava47/barkocobarka/internal/api/http"
	auth "github.com/Slava47/barkocobarka/internal/auth/middleware"
	"github.com/Slava47/barkocobarka/internal/menu"
	"github.com/Slava47/barkocobarka/internal/quiz"
	"github.com/Slava47/barkocobarka/internal/rbac"
	"github.com/Slava47/barkocobarka/internal/recommend"
	syncx "github.com/Slava47/barkocobarka/internal/sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testAdminPass = "letmein"

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ctx := context.Background()

	menuStore := menu.NewInMemoryStore()
	require.NoError(t, menu.SeedIfEmpty(ctx, menuStore))
	quizStore := quiz.NewInMemoryStore()
	require.NoError(t, quiz.SeedIfEmpty(ctx, quizStore))
	events := syncx.NewEventRepo(nil)

	engineFor := func(topN int) recommend.Recommender {
		if topN <= 0 {
			topN = recommend.DefaultTopN
		}
		return recommend.New(recommend.WithTopN(topN))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPass), bcrypt.MinCost)
	require.NoError(t, err)
	authSvc := auth.NewAuthService("test-secret")

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Get("/menu", api.GetMenuHandler(menuStore))
	r.Get("/menu/items", api.ListMenuItemsHandler(menuStore))
	r.Get("/quiz", api.GetQuizHandler(quizStore))
	r.Post("/recommendations", api.RecommendHandler(menuStore, engineFor, events))
	r.Post("/auth/login", auth.LoginHandler(authSvc, auth.Credentials{
		User:     "admin",
		PassHash: string(hash),
	}))
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))
		pr.With(rbac.Require("menu:update")).
			Put("/admin/menu", api.PutMenuHandler(menuStore, events))
		pr.With(rbac.Require("quiz:update")).
			Put("/admin/quiz", api.PutQuizHandler(quizStore, events))
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body interface{}, token string) *http.Response {
	t.Helper()
	buf, err := json.Marshal(body)
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(buf))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func TestGetQuiz(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/quiz")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var q quiz.Quiz
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&q))
	assert.Len(t, q.Questions, 5)
	assert.Equal(t, "Какой вкус Вам ближе?", q.Questions[0].Text)
}

func TestGetMenu(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/menu")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var c menu.Catalog
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&c))
	assert.NotEmpty(t, c.Categories)
	assert.NotEmpty(t, c.Items)
}

func TestRecommendations(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/recommendations", map[string]interface{}{
		"answers": []string{"сладкий", "фруктовый", "освежающий", "лёгкий", "алко_нет"},
	}, "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Results []recommend.ScoredItem `json:"results"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Results, 3)
	for _, res := range out.Results {
		assert.NotEqual(t, menu.CategoryAlcohol, res.Category)
		assert.NotEqual(t, menu.CategoryTincture, res.Category)
		assert.NotEmpty(t, res.Reason)
	}
	assert.GreaterOrEqual(t, out.Results[0].Score, out.Results[1].Score)
}

func TestRecommendationsTopN(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/recommendations", map[string]interface{}{
		"answers": []string{"_", "_", "_", "_", "алко_любой"},
		"top_n":   1,
	}, "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Results []recommend.ScoredItem `json:"results"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Len(t, out.Results, 1)
}

func TestRecommendationsRequireAnswers(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/recommendations", map[string]interface{}{}, "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func login(t *testing.T, srv *httptest.Server, user, pass string) (string, int) {
	t.Helper()
	resp := postJSON(t, srv.URL+"/auth/login", map[string]string{
		"username": user,
		"password": pass,
	}, "")
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", resp.StatusCode
	}
	var out map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out["access_token"], resp.StatusCode
}

func TestAdminLoginRejectsBadPassword(t *testing.T) {
	srv := newTestServer(t)
	_, code := login(t, srv, "admin", "wrong")
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestAdminMenuUpdate(t *testing.T) {
	srv := newTestServer(t)

	newCatalog := menu.Catalog{
		Categories: []menu.Category{{ID: "tea", Name: "Чай"}},
		Items: []menu.MenuItem{
			{ID: "only", Name: "Единственный чай", Price: 100, Category: "tea", Tags: []string{"сладкий"}},
		},
	}

	// without a token
	buf, _ := json.Marshal(newCatalog)
	req, _ := http.NewRequest(http.MethodPut, srv.URL+"/admin/menu", bytes.NewReader(buf))
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	token, code := login(t, srv, "admin", testAdminPass)
	require.Equal(t, http.StatusOK, code)

	req, _ = http.NewRequest(http.MethodPut, srv.URL+"/admin/menu", bytes.NewReader(buf))
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	getResp, err := http.Get(srv.URL + "/menu")
	require.NoError(t, err)
	defer getResp.Body.Close()
	var c menu.Catalog
	require.NoError(t, json.NewDecoder(getResp.Body).Decode(&c))
	require.Len(t, c.Items, 1)
	assert.Equal(t, "only", c.Items[0].ID)
}

func TestAdminQuizUpdateValidation(t *testing.T) {
	srv := newTestServer(t)
	token, code := login(t, srv, "admin", testAdminPass)
	require.Equal(t, http.StatusOK, code)

	resp := putJSON(t, srv.URL+"/admin/quiz", quiz.Quiz{}, token)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = putJSON(t, srv.URL+"/admin/quiz", quiz.DefaultQuiz(), token)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func putJSON(t *testing.T, url string, body interface{}, token string) *http.Response {
	t.Helper()
	buf, err := json.Marshal(body)
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPut, url, bytes.NewReader(buf))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}
