package server

import (
	"encoding/json"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/geonym"
	"github.com/gogpu/geonym/internal/config"
	"github.com/gogpu/geonym/internal/imagecache"
	"github.com/gogpu/geonym/internal/metrics"
	"github.com/gogpu/geonym/internal/playground"
	"github.com/gogpu/geonym/spaces"
)

func newServer(t *testing.T) (*httptest.Server, *playground.Playground) {
	t.Helper()
	reg := geonym.NewRegistry()
	require.NoError(t, spaces.RegisterAll(reg))
	cfg := config.Default()
	cfg.Canvas.Size = 64

	prom := prometheus.NewRegistry()
	pg := playground.New(reg, playground.WithConfig(cfg), playground.WithMetrics(metrics.New(prom)))
	srv := httptest.NewServer(NewHandler(pg, WithMetrics(promhttp.HandlerFor(prom, promhttp.HandlerOpts{}))))
	t.Cleanup(srv.Close)
	return srv, pg
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	client := &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}}
	resp, err := client.Get(url)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestIndexRedirectsToFirstSpace(t *testing.T) {
	srv, _ := newServer(t)
	resp, _ := get(t, srv.URL+"/")
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/spaces/burrito", resp.Header.Get("Location"))
}

func TestListSpaces(t *testing.T) {
	srv, pg := newServer(t)
	_, err := pg.Show("mandala", 1, nil)
	require.NoError(t, err)

	resp, body := get(t, srv.URL+"/spaces")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var views []struct {
		ID     string `json:"id"`
		Title  string `json:"title"`
		Active bool   `json:"active"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &views))
	require.Len(t, views, 3)
	assert.Equal(t, "burrito", views[0].ID)
	assert.False(t, views[0].Active)
	assert.True(t, views[1].Active)
}

func TestPageActivatesSpace(t *testing.T) {
	srv, pg := newServer(t)
	resp, body := get(t, srv.URL+"/spaces/zen?seed=42")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, pg.Registry().IsActive("zen"))

	assert.Contains(t, body, "the absence of attachment")
	assert.Contains(t, body, `id="zen" href="/spaces/zen" class="active"`)
	assert.Contains(t, body, `/spaces/zen/image.png?seed=42`)
	assert.Contains(t, body, "[]")
}

func TestStructure(t *testing.T) {
	srv, _ := newServer(t)
	resp, body := get(t, srv.URL+"/spaces/burrito/structure.json?seed=8&depth=1")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var tree geonym.Tree
	require.NoError(t, json.Unmarshal([]byte(body), &tree))
	assert.Equal(t, geonym.TreeStats{Nodes: 1, Leaves: 4, Depth: 1}, tree.Stats())

	_, again := get(t, srv.URL+"/spaces/burrito/structure.json?seed=8&depth=1")
	assert.Equal(t, body, again, "the same seed yields the same structure")
}

func TestImages(t *testing.T) {
	srv, _ := newServer(t)

	resp, body := get(t, srv.URL+"/spaces/burrito/image.png?seed=3&depth=2")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	img, err := png.Decode(strings.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())

	resp, body = get(t, srv.URL+"/spaces/mandala/image.svg")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/svg+xml", resp.Header.Get("Content-Type"))
	assert.Contains(t, body, "<path ")
}

func TestErrors(t *testing.T) {
	srv, _ := newServer(t)
	tests := []struct {
		path string
		want int
	}{
		{"/spaces/nowhere", http.StatusNotFound},
		{"/spaces/nowhere/image.png", http.StatusNotFound},
		{"/spaces/burrito?seed=abc", http.StatusBadRequest},
		{"/spaces/burrito/structure.json?depth=-1", http.StatusBadRequest},
		{"/spaces/burrito/structure.json?depth=99", http.StatusBadRequest},
		{"/spaces/burrito/structure.json?depth=deep", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, _ := get(t, srv.URL+tt.path)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv, _ := newServer(t)
	get(t, srv.URL+"/spaces/zen/image.png?seed=1")

	resp, body := get(t, srv.URL+"/metrics")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `geonym_scenes_total{space="zen"} 1`)
	assert.Contains(t, body, "geonym_render_duration_seconds")
}

func TestImageCache(t *testing.T) {
	reg := geonym.NewRegistry()
	require.NoError(t, spaces.RegisterAll(reg))
	cfg := config.Default()
	cfg.Canvas.Size = 64
	images := imagecache.New(4)
	srv := httptest.NewServer(NewHandler(playground.New(reg, playground.WithConfig(cfg)), WithCache(images)))
	t.Cleanup(srv.Close)

	resp, first := get(t, srv.URL+"/spaces/burrito/image.svg?seed=5&depth=2")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "miss", resp.Header.Get("X-Cache"))

	resp, second := get(t, srv.URL+"/spaces/burrito/image.svg?depth=2&seed=5")
	assert.Equal(t, "hit", resp.Header.Get("X-Cache"))
	assert.Equal(t, "image/svg+xml", resp.Header.Get("Content-Type"))
	assert.Equal(t, first, second)

	resp, _ = get(t, srv.URL+"/spaces/burrito/image.svg?depth=2")
	assert.Empty(t, resp.Header.Get("X-Cache"), "unseeded requests bypass the cache")
	assert.Equal(t, 1, images.Len())
	assert.True(t, reg.IsActive("burrito"))
}
