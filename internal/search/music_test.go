package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fete/internal/party"
)

func TestMusicProvider_Search(t *testing.T) {
	t.Run("maps records to video items with derived thumbnails", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "techno", r.Form.Get("q"))
			assert.Equal(t, "5", r.Form.Get("maxResults"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"video":[
				{"id":"abc","title":"Boiler Room"},
				{"id":"def","title":"Essential Mix"}
			]}`))
		}))
		defer srv.Close()

		p := NewMusicProvider(srv.URL, srv.Client())
		items, err := p.Search(context.Background(), "techno", 5)
		require.NoError(t, err)
		require.Len(t, items, 2)

		assert.Equal(t, "abc", items[0].ID())
		assert.Equal(t, "Boiler Room", items[0].Name())
		assert.Equal(t, "http://i3.ytimg.com/vi/abc/hqdefault.jpg", items[0].ImageURL())
		assert.Equal(t, party.KindVideo, items[0].Kind())
	})

	t.Run("truncates to max results", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"video":[{"id":"a","title":"1"},{"id":"b","title":"2"},{"id":"c","title":"3"}]}`))
		}))
		defer srv.Close()

		p := NewMusicProvider(srv.URL, srv.Client())
		items, err := p.Search(context.Background(), "techno", 2)
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("non-OK status fails explicitly", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "nope", http.StatusBadGateway)
		}))
		defer srv.Close()

		_, err := NewMusicProvider(srv.URL, srv.Client()).Search(context.Background(), "techno", 5)
		assert.Error(t, err)
	})

	t.Run("malformed body fails explicitly", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`<html>not json</html>`))
		}))
		defer srv.Close()

		_, err := NewMusicProvider(srv.URL, srv.Client()).Search(context.Background(), "techno", 5)
		assert.Error(t, err)
	})

	t.Run("record without id fails explicitly", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"video":[{"title":"no id"}]}`))
		}))
		defer srv.Close()

		_, err := NewMusicProvider(srv.URL, srv.Client()).Search(context.Background(), "techno", 5)
		assert.Error(t, err)
	})

	t.Run("transport error fails explicitly", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		srv.Close() // refuse connections

		_, err := NewMusicProvider(srv.URL, nil).Search(context.Background(), "techno", 5)
		assert.Error(t, err)
	})
}
