package arr

import "arr-mcp/internal/domain"

var seerrOperations = []domain.Operation{
	op("get_status", TagSystem, "GET", "/api/v1/status", "Get Seerr status"),
	op("get_status_appdata", TagSystem, "GET", "/api/v1/status/appdata", "Get information about the application data volumes."),
	op("get_auth_me", TagSystem, "GET", "/api/v1/auth/me", "Get logged-in user"),
	op("post_request", TagSearch, "POST", "/api/v1/request", "Create a new request", describe(required(inBodyAs("media_type", "mediaType", tStr)), "mediaType (movie or tv)"), describe(required(inBodyAs("media_id", "mediaId", tInt)), "mediaId (TMDB ID)"), describe(inBody("seasons", tArr), "seasons (for TV)"), withDefault(inBody("is4k", tBool), false), describe(inBodyAs("server_id", "serverId", tInt), "serverId"), describe(inBodyAs("profile_id", "profileId", tInt), "profileId"), describe(inBodyAs("root_folder", "rootFolder", tStr), "rootFolder")),
	op("get_request", TagSearch, "GET", "/api/v1/request", "Get all requests", withDefault(inQuery("take", tInt), 20), withDefault(inQuery("skip", tInt), 0), describe(inQuery("filter", tStr), "filter (available, approved, processing, pending, unavailable, failed)"), describe(withDefault(inQuery("sort", tStr), "added"), "sort (added, modified)")),
	op("get_request_id", TagSearch, "GET", "/api/v1/request/{request_id}", "Get a specific request", inPath("request_id", tInt)),
	op("put_request_id", TagSearch, "PUT", "/api/v1/request/{request_id}", "Update a request", inPath("request_id", tInt), describe(required(inBodyAs("media_type", "mediaType", tStr)), "mediaType"), inBody("seasons", tArr), describe(inBodyAs("server_id", "serverId", tInt), "serverId"), describe(inBodyAs("profile_id", "profileId", tInt), "profileId"), describe(inBodyAs("root_folder", "rootFolder", tStr), "rootFolder")),
	op("delete_request_id", TagSearch, "DELETE", "/api/v1/request/{request_id}", "Delete a request", inPath("request_id", tInt)),
	op("approve_request", TagSearch, "POST", "/api/v1/request/{request_id}/approve", "Approve a request", inPath("request_id", tInt)),
	op("decline_request", TagSearch, "POST", "/api/v1/request/{request_id}/decline", "Decline a request", inPath("request_id", tInt)),
	op("get_movie", TagCatalog, "GET", "/api/v1/movie/{movie_id}", "Get movie details", describe(inPath("movie_id", tInt), "movie_id (TMDB ID)")),
	op("get_tv", TagCatalog, "GET", "/api/v1/tv/{tv_id}", "Get TV details", describe(inPath("tv_id", tInt), "tv_id (TMDB ID)")),
	op("search", TagSearch, "GET", "/api/v1/search", "Search for content", required(inQuery("query", tStr)), withDefault(inQuery("page", tInt), 1), withDefault(inQuery("language", tStr), "en")),
	op("get_users", TagSystem, "GET", "/api/v1/user", "Get all users", withDefault(inQuery("take", tInt), 20), withDefault(inQuery("skip", tInt), 0), withDefault(inQuery("sort", tStr), "created")),
	op("get_user_id", TagSystem, "GET", "/api/v1/user/{user_id}", "Get user details", inPath("user_id", tInt)),
}
