package arr

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"arr-mcp/internal/domain"
)

// composite runs an operation that needs more than one backend request.
type composite func(ctx context.Context, c *Client, args map[string]any) (json.RawMessage, error)

var composites = map[string]composite{
	"sonarr/add_series":              addFromLookup("/api/v3/series/lookup", "/api/v3/series", "series", "tvdbId", "searchForMissingEpisodes", "search_for_missing_episodes"),
	"radarr/add_movie":               addFromLookup("/api/v3/movie/lookup", "/api/v3/movie", "movie", "tmdbId", "searchForMovie", "search_for_movie"),
	"bazarr/search_series_subtitles": searchSeriesSubtitles,
}

// Invoker executes catalog operations against pooled backend clients.
type Invoker struct {
	pool   *Pool
	logger *slog.Logger
}

// NewInvoker creates an invoker drawing clients from pool.
func NewInvoker(pool *Pool, logger *slog.Logger) *Invoker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Invoker{pool: pool, logger: logger}
}

// Invoke maps args onto op's request and sends it to the instance at conn.
// Args must already be validated against the operation schema.
func (inv *Invoker) Invoke(ctx context.Context, svc domain.Service, op domain.Operation, conn Conn, args map[string]any) (json.RawMessage, error) {
	c, err := inv.pool.Get(svc.Name, conn)
	if err != nil {
		return nil, err
	}
	if fn, ok := composites[svc.Name+"/"+op.Name]; ok {
		return fn(ctx, c, withDefaults(op, args))
	}
	req, err := BuildRequest(op, args)
	if err != nil {
		return nil, err
	}
	return c.Do(ctx, op.Method, req.Path, req.Query, req.Body)
}

// Request is an operation call mapped onto HTTP.
type Request struct {
	Path  string
	Query url.Values
	Body  any
}

// BuildRequest fills op's path template, query string and body from args.
// Absent optional params fall back to their declared default and are
// omitted when there is none.
func BuildRequest(op domain.Operation, args map[string]any) (Request, error) {
	req := Request{Path: op.Path}
	var body map[string]any
	for _, p := range op.Params {
		if p.Hidden {
			continue
		}
		v, ok := args[p.Name]
		if !ok || v == nil {
			v, ok = p.Default, p.Default != nil
		}
		if !ok {
			if p.Required {
				return Request{}, fmt.Errorf("%w: %s: missing required parameter %q", domain.ErrInvalidInput, op.Name, p.Name)
			}
			continue
		}
		switch p.In {
		case domain.InPath:
			req.Path = strings.ReplaceAll(req.Path, "{"+p.Name+"}", url.PathEscape(formatValue(v)))
		case domain.InQuery:
			if req.Query == nil {
				req.Query = url.Values{}
			}
			if list, isList := v.([]any); isList {
				for _, item := range list {
					req.Query.Add(p.WireName(), formatValue(item))
				}
				continue
			}
			req.Query.Set(p.WireName(), formatValue(v))
		case domain.InBody:
			if body == nil {
				body = map[string]any{}
			}
			body[p.WireName()] = v
		case domain.InPayload:
			req.Body = v
		}
	}
	if body != nil && req.Body == nil {
		req.Body = body
	}
	return req, nil
}

func withDefaults(op domain.Operation, args map[string]any) map[string]any {
	out := make(map[string]any, len(op.Params))
	for _, p := range op.Params {
		if p.Default != nil {
			out[p.Name] = p.Default
		}
	}
	for k, v := range args {
		if v != nil {
			out[k] = v
		}
	}
	return out
}

// formatValue renders a decoded JSON value for a path segment or query string.
func formatValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case json.Number:
		return x.String()
	default:
		data, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprint(x)
		}
		return string(data)
	}
}

// addFromLookup looks up term, takes the first match and adds it with the
// caller's profile, root folder and search option.
func addFromLookup(lookupPath, addPath, kind, idKey, searchOption, searchArg string) composite {
	return func(ctx context.Context, c *Client, args map[string]any) (json.RawMessage, error) {
		term := formatValue(args["term"])
		raw, err := c.Do(ctx, "GET", lookupPath, url.Values{"term": {term}}, nil)
		if err != nil {
			return nil, err
		}
		var results []map[string]any
		if err := json.Unmarshal(raw, &results); err != nil || len(results) == 0 {
			return json.Marshal(map[string]string{"error": fmt.Sprintf("No %s found for term: %s", kind, term)})
		}
		first := results[0]
		images, ok := first["images"]
		if !ok || images == nil {
			images = []any{}
		}
		payload := map[string]any{
			"title":            first["title"],
			"qualityProfileId": args["quality_profile_id"],
			"rootFolderPath":   args["root_folder_path"],
			"monitored":        args["monitored"],
			idKey:              first[idKey],
			"year":             first["year"],
			"titleSlug":        first["titleSlug"],
			"images":           images,
			"addOptions":       map[string]any{searchOption: args[searchArg]},
		}
		return c.Do(ctx, "POST", addPath, nil, payload)
	}
}

// searchSeriesSubtitles searches one episode when episode_id is set and the
// whole series otherwise.
func searchSeriesSubtitles(ctx context.Context, c *Client, args map[string]any) (json.RawMessage, error) {
	if ep, ok := args["episode_id"]; ok && !isZero(ep) {
		return c.Do(ctx, "POST", "/api/episodes/search", nil, map[string]any{"episodeId": ep})
	}
	return c.Do(ctx, "POST", "/api/series/search", nil, map[string]any{"seriesId": args["series_id"]})
}

func isZero(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case float64:
		return x == 0
	case int:
		return x == 0
	case int64:
		return x == 0
	case string:
		return x == "" || x == "0"
	case json.Number:
		return x.String() == "0"
	}
	return false
}
