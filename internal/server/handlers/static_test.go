package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticHandler(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>board</html>"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o600))

	handler := NewStaticHandler(dir)

	t.Run("index", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Files(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "board")
	})

	t.Run("asset", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Files(w, httptest.NewRequest(http.MethodGet, "/app.js", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "console.log")
	})

	t.Run("room page", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.RoomPage(w, httptest.NewRequest(http.MethodGet, "/r/team", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "board")
	})
}
