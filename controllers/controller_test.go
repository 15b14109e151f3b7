package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"blog-restful/config"
	"blog-restful/database"
	"blog-restful/repositories"
	"blog-restful/services"
	"blog-restful/storage"

	restful "github.com/emicklei/go-restful/v3"
	"github.com/stretchr/testify/require"
)

// setupAPI wires the full route surface against a fresh in-memory database,
// the same way main does it.
func setupAPI(t *testing.T) *restful.Container {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := database.New(config.Config{
		DatabaseDriver: "sqlite",
		DatabaseURL:    fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name),
	})
	require.NoError(t, err)

	store, err := storage.NewDisk(t.TempDir())
	require.NoError(t, err)

	userRepo := repositories.NewUserRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	commentRepo := repositories.NewCommentRepository(db)

	container := restful.NewContainer()
	routed := []interface {
		RegisterRoutes(ws *restful.WebService)
	}{
		NewAuthController(services.NewAuthService(userRepo)),
		NewUserController(services.NewUserService(userRepo)),
		NewArticleController(services.NewArticleService(articleRepo, userRepo), store),
		NewCommentController(services.NewCommentService(commentRepo, userRepo, articleRepo)),
		NewImageController(store),
	}
	for _, ctl := range routed {
		ws := new(restful.WebService)
		ctl.RegisterRoutes(ws)
		container.Add(ws)
	}
	return container
}

// doJSON performs one request with an optional JSON body and bearer token.
func doJSON(t *testing.T, container *restful.Container, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = strings.NewReader(string(raw))
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", restful.MIME_JSON)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	container.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), "body: %s", w.Body.String())
}

// registerAndLogin creates a user via the API and returns its id and a
// valid token.
func registerAndLogin(t *testing.T, container *restful.Container, email, password, name string) (uint, string) {
	t.Helper()

	w := doJSON(t, container, http.MethodPost, "/users/register", "", map[string]string{
		"email": email, "password": password, "name": name,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var user UserResponse
	decodeBody(t, w, &user)

	w = doJSON(t, container, http.MethodPost, "/auth/login", "", map[string]string{
		"email": email, "password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var tok TokenResponse
	decodeBody(t, w, &tok)
	require.NotEmpty(t, tok.AccessToken)

	return user.ID, tok.AccessToken
}
