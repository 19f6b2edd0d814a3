package saveig

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Conte777/MediaGrab/config"
	"github.com/Conte777/MediaGrab/internal/domain/media/entities"
	mediaerrors "github.com/Conte777/MediaGrab/internal/domain/media/errors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.SaveIGConfig{APIURL: srv.URL, Timeout: 5 * time.Second}
	return NewClient(cfg, zerolog.Nop()).(*Client)
}

func TestClient_Fetch_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, contentType, r.Header.Get("Content-Type"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "https://www.instagram.com/p/abc/", r.PostForm.Get("q"))
		assert.Equal(t, "home", r.PostForm.Get("vt"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok","medias":[{"url":"https://x/y.mp4","type":"video"},{"url":"https://x/z.jpg","type":"photo"}]}`))
	})

	medias, err := client.Fetch(context.Background(), "https://www.instagram.com/p/abc/")
	require.NoError(t, err)
	require.Len(t, medias, 2)
	assert.Equal(t, entities.RemoteMedia{URL: "https://x/y.mp4", Kind: entities.MediaKindVideo}, medias[0])
	assert.Equal(t, entities.MediaKindPhoto, medias[1].Kind)
}

func TestClient_Fetch_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "status fail", status: http.StatusOK, body: `{"status":"fail"}`},
		{name: "empty medias", status: http.StatusOK, body: `{"status":"ok","medias":[]}`},
		{name: "broken json", status: http.StatusOK, body: `{"status":`},
		{name: "server error", status: http.StatusInternalServerError, body: `oops`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			medias, err := client.Fetch(context.Background(), "https://instagram.com/p/x")
			require.Error(t, err)
			assert.Nil(t, medias)
			assert.True(t, errors.Is(err, mediaerrors.ErrRemoteMediaUnavailable))
		})
	}
}

func TestClient_Fetch_TransportError(t *testing.T) {
	cfg := &config.SaveIGConfig{APIURL: "http://127.0.0.1:1", Timeout: time.Second}
	client := NewClient(cfg, zerolog.Nop())

	_, err := client.Fetch(context.Background(), "https://instagram.com/p/x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, mediaerrors.ErrRemoteMediaUnavailable))
}
