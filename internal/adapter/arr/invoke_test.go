package arr

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arr-mcp/internal/domain"
)

func findOp(t *testing.T, service, name string) (domain.Service, domain.Operation) {
	t.Helper()
	svc, err := Lookup(service)
	require.NoError(t, err)
	for _, op := range svc.Operations {
		if op.Name == name {
			return svc, op
		}
	}
	t.Fatalf("operation %s/%s not found", service, name)
	return svc, domain.Operation{}
}

func TestBuildRequestPathQueryPayload(t *testing.T) {
	_, op := findOp(t, "prowlarr", "put_applications_id")
	req, err := BuildRequest(op, map[string]any{
		"id":        float64(7),
		"forceSave": true,
		"data":      map[string]any{"name": "sonarr"},
	})
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/applications/7", req.Path)
	assert.Equal(t, url.Values{"forceSave": {"true"}}, req.Query)
	assert.Equal(t, map[string]any{"name": "sonarr"}, req.Body)
}

func TestBuildRequestWireNamesAndDefaults(t *testing.T) {
	_, op := findOp(t, "bazarr", "get_series")
	req, err := BuildRequest(op, map[string]any{"page_size": float64(50)})
	require.NoError(t, err)
	assert.Equal(t, "/api/series", req.Path)
	assert.Equal(t, url.Values{"page": {"1"}, "pageSize": {"50"}}, req.Query)
	assert.Nil(t, req.Body)
}

func TestBuildRequestBodyFields(t *testing.T) {
	_, op := findOp(t, "seerr", "post_request")
	req, err := BuildRequest(op, map[string]any{
		"media_type": "tv",
		"media_id":   float64(1399),
		"seasons":    []any{float64(1), float64(2)},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"mediaType": "tv",
		"mediaId":   float64(1399),
		"seasons":   []any{float64(1), float64(2)},
		"is4k":      false,
	}, req.Body)
}

func TestBuildRequestMissingPathParam(t *testing.T) {
	_, op := findOp(t, "seerr", "get_request_id")
	_, err := BuildRequest(op, map[string]any{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

type recorded struct {
	Method string
	Path   string
	Query  string
	Body   map[string]any
}

func recordingBackend(t *testing.T, respond func(r *http.Request) string) (*httptest.Server, func() []recorded) {
	t.Helper()
	var (
		mu   sync.Mutex
		reqs []recorded
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recorded{Method: r.Method, Path: r.URL.Path, Query: r.URL.RawQuery}
		if data, _ := io.ReadAll(r.Body); len(data) > 0 {
			_ = json.Unmarshal(data, &rec.Body)
		}
		mu.Lock()
		reqs = append(reqs, rec)
		mu.Unlock()
		_, _ = io.WriteString(w, respond(r))
	}))
	t.Cleanup(srv.Close)
	return srv, func() []recorded {
		mu.Lock()
		defer mu.Unlock()
		return append([]recorded(nil), reqs...)
	}
}

func TestInvokeAddSeries(t *testing.T) {
	srv, got := recordingBackend(t, func(r *http.Request) string {
		if r.Method == http.MethodGet {
			return `[{"title":"The Wire","tvdbId":79126,"year":2002,"titleSlug":"the-wire"}]`
		}
		return `{"id":1}`
	})
	svc, op := findOp(t, "sonarr", "add_series")
	inv := NewInvoker(NewPool(nil), nil)

	out, err := inv.Invoke(context.Background(), svc, op, Conn{BaseURL: srv.URL}, map[string]any{
		"term":               "the wire",
		"root_folder_path":   "/tv",
		"quality_profile_id": float64(4),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1}`, string(out))

	reqs := got()
	require.Len(t, reqs, 2)
	assert.Equal(t, "/api/v3/series/lookup", reqs[0].Path)
	assert.Equal(t, "term=the+wire", reqs[0].Query)
	assert.Equal(t, http.MethodPost, reqs[1].Method)
	assert.Equal(t, "/api/v3/series", reqs[1].Path)
	assert.Equal(t, map[string]any{
		"title":            "The Wire",
		"qualityProfileId": float64(4),
		"rootFolderPath":   "/tv",
		"monitored":        true,
		"tvdbId":           float64(79126),
		"year":             float64(2002),
		"titleSlug":        "the-wire",
		"images":           []any{},
		"addOptions":       map[string]any{"searchForMissingEpisodes": true},
	}, reqs[1].Body)
}

func TestInvokeAddMovieNoMatch(t *testing.T) {
	srv, got := recordingBackend(t, func(r *http.Request) string { return `[]` })
	svc, op := findOp(t, "radarr", "add_movie")
	inv := NewInvoker(NewPool(nil), nil)

	out, err := inv.Invoke(context.Background(), svc, op, Conn{BaseURL: srv.URL}, map[string]any{
		"term": "nothing", "root_folder_path": "/movies", "quality_profile_id": float64(1),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"No movie found for term: nothing"}`, string(out))
	assert.Len(t, got(), 1)
}

func TestInvokeBazarrSearchSeriesSubtitles(t *testing.T) {
	srv, got := recordingBackend(t, func(r *http.Request) string { return "" })
	svc, op := findOp(t, "bazarr", "search_series_subtitles")
	inv := NewInvoker(NewPool(nil), nil)
	conn := Conn{BaseURL: srv.URL}

	_, err := inv.Invoke(context.Background(), svc, op, conn, map[string]any{"series_id": float64(3)})
	require.NoError(t, err)
	_, err = inv.Invoke(context.Background(), svc, op, conn, map[string]any{"series_id": float64(3), "episode_id": float64(12)})
	require.NoError(t, err)

	reqs := got()
	require.Len(t, reqs, 2)
	assert.Equal(t, "/api/series/search", reqs[0].Path)
	assert.Equal(t, map[string]any{"seriesId": float64(3)}, reqs[0].Body)
	assert.Equal(t, "/api/episodes/search", reqs[1].Path)
	assert.Equal(t, map[string]any{"episodeId": float64(12)}, reqs[1].Body)
}
