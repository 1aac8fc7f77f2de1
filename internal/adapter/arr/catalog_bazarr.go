package arr

import "arr-mcp/internal/domain"

var bazarrOperations = []domain.Operation{
	op("get_series", TagCatalog, "GET", "/api/series", "Get all series managed by Bazarr.", describe(withDefault(inQuery("page", tInt), 1), "Page number"), describe(withDefault(inQueryAs("page_size", "pageSize", tInt), 20), "Page size")),
	op("get_series_subtitles", TagCatalog, "GET", "/api/series/{series_id}", "Get subtitle information for a specific series.", describe(inPath("series_id", tInt), "Series ID")),
	op("get_episode_subtitles", TagCatalog, "GET", "/api/episodes/{episode_id}", "Get subtitle information for a specific episode.", describe(inPath("episode_id", tInt), "Episode ID")),
	op("search_series_subtitles", TagCatalog, "POST", "/api/series/search", "Search for subtitles for a series or episode. Note: This triggers a search, it doesn't just list them.", describe(required(arg("series_id", tInt)), "Series ID"), describe(arg("episode_id", tInt), "Episode ID (optional)")),
	op("download_series_subtitle", TagCatalog, "POST", "/api/episodes/subtitles", "Download a subtitle for an episode.", describe(required(inBodyAs("episode_id", "episodeId", tInt)), "Episode ID"), describe(required(inBody("language", tStr)), "Language code (e.g., 'en')"), describe(withDefault(inBody("forced", tBool), false), "Is forced subtitle"), describe(withDefault(inBody("hi", tBool), false), "Is hearing impaired subtitle")),
	op("get_movies", TagCatalog, "GET", "/api/movies", "Get all movies managed by Bazarr.", describe(withDefault(inQuery("page", tInt), 1), "Page number"), describe(withDefault(inQueryAs("page_size", "pageSize", tInt), 20), "Page size")),
	op("get_movie_subtitles", TagCatalog, "GET", "/api/movies/{movie_id}", "Get subtitle information for a specific movie.", describe(inPath("movie_id", tInt), "Movie ID")),
	op("search_movie_subtitles", TagCatalog, "POST", "/api/movies/search", "Search for subtitles for a movie. Note: This triggers a search, it doesn't just list them.", describe(required(inBodyAs("movie_id", "movieId", tInt)), "Movie ID")),
	op("download_movie_subtitle", TagCatalog, "POST", "/api/movies/subtitles", "Download a subtitle for a movie.", describe(required(inBodyAs("movie_id", "movieId", tInt)), "Movie ID"), describe(required(inBody("language", tStr)), "Language code (e.g., 'en')"), describe(withDefault(inBody("forced", tBool), false), "Is forced subtitle"), describe(withDefault(inBody("hi", tBool), false), "Is hearing impaired subtitle")),
	op("get_history", TagHistory, "GET", "/api/history", "Get subtitle download history.", describe(withDefault(inQuery("page", tInt), 1), "Page number"), describe(withDefault(inQueryAs("page_size", "pageSize", tInt), 20), "Page size")),
	op("get_system_status", TagSystem, "GET", "/api/system/status", "Get Bazarr system status."),
	op("get_system_health", TagSystem, "GET", "/api/system/health", "Get system health issues."),
	op("get_wanted_series", TagCatalog, "GET", "/api/episodes/wanted", "Get series episodes with wanted/missing subtitles.", describe(withDefault(inQuery("page", tInt), 1), "Page number"), describe(withDefault(inQueryAs("page_size", "pageSize", tInt), 20), "Page size")),
	op("get_wanted_movies", TagCatalog, "GET", "/api/movies/wanted", "Get movies with wanted/missing subtitles.", describe(withDefault(inQuery("page", tInt), 1), "Page number"), describe(withDefault(inQueryAs("page_size", "pageSize", tInt), 20), "Page size")),
}
