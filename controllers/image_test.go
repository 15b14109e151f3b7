package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageUploadEndpoint(t *testing.T) {
	api := setupAPI(t)
	_, token := registerAndLogin(t, api, "alice@example.com", "secret", "Alice")

	t.Run("Multiple files", func(t *testing.T) {
		w := doMultipart(t, api, "/images/upload", token, nil, map[string][]string{
			"files": {"a.png", "b.jpg"},
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var body UploadResponse
		decodeBody(t, w, &body)
		require.Len(t, body.ImageURLs, 2)
		for _, url := range body.ImageURLs {
			assert.True(t, strings.HasPrefix(url, "/uploads/"), "got %q", url)
		}
		assert.True(t, strings.HasSuffix(body.ImageURLs[0], ".png"), "got %q", body.ImageURLs[0])
		assert.True(t, strings.HasSuffix(body.ImageURLs[1], ".jpg"), "got %q", body.ImageURLs[1])
	})

	t.Run("No files", func(t *testing.T) {
		w := doMultipart(t, api, "/images/upload", token, map[string]string{"unrelated": "x"}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	t.Run("Too many files", func(t *testing.T) {
		names := make([]string, 11)
		for i := range names {
			names[i] = fmt.Sprintf("img%d.png", i)
		}
		w := doMultipart(t, api, "/images/upload", token, nil, map[string][]string{"files": names})
		assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	t.Run("No token", func(t *testing.T) {
		w := doMultipart(t, api, "/images/upload", "", nil, map[string][]string{"files": {"a.png"}})
		assert.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}
