package arr

import "arr-mcp/internal/domain"

var prowlarrOperations = []domain.Operation{
	op("search", TagSearch, "GET", "/api/v1/search", "Search for indexers using the search endpoint.", describe(required(inQuery("query", tStr)), "Search query")),
	op("get_api", TagSystem, "GET", "/api", "Get the base API information for Prowlarr."),
	op("get_applications_id", TagSystem, "GET", "/api/v1/applications/{id}", "Get information for a specific application by ID.", inPath("id", tInt)),
	op("put_applications_id", TagSystem, "PUT", "/api/v1/applications/{id}", "Update an application configuration by ID.", inPath("id", tStr), required(inPayload("data")), inQuery("forceSave", tBool)),
	op("delete_applications_id", TagSystem, "DELETE", "/api/v1/applications/{id}", "Delete an application configuration by ID.", inPath("id", tInt)),
	op("get_applications", TagSystem, "GET", "/api/v1/applications", "Get all applications managed by Prowlarr."),
	op("post_applications", TagSystem, "POST", "/api/v1/applications", "Add a new application to Prowlarr.", required(inPayload("data")), inQuery("forceSave", tBool)),
	op("put_applications_bulk", TagSystem, "PUT", "/api/v1/applications/bulk", "Bulk update application configurations.", required(inPayload("data"))),
	op("delete_applications_bulk", TagSystem, "DELETE", "/api/v1/applications/bulk", "Bulk delete application configurations.", required(inPayload("data"))),
	op("get_applications_schema", TagSystem, "GET", "/api/v1/applications/schema", "Get the configuration schema for applications."),
	op("post_applications_test", TagSystem, "POST", "/api/v1/applications/test", "Update an existing custom filter by its ID.", required(inPayload("data")), inQuery("forceTest", tBool)),
	op("post_applications_testall", TagSystem, "POST", "/api/v1/applications/testall", "Retrieve details for a specific custom filter by its ID."),
	op("post_applications_action_name", TagSystem, "POST", "/api/v1/applications/action/{name}", "Add a new download client to Prowlarr.", inPath("name", tStr), required(inPayload("data"))),
	op("post_appprofile", TagSystem, "POST", "/api/v1/appprofile", "Update an existing download client configuration.", required(inPayload("data"))),
	op("get_appprofile", TagSystem, "GET", "/api/v1/appprofile", "Delete a download client from Prowlarr."),
	op("delete_appprofile_id", TagSystem, "DELETE", "/api/v1/appprofile/{id}", "Retrieve all configured download clients.", inPath("id", tInt)),
	op("put_appprofile_id", TagSystem, "PUT", "/api/v1/appprofile/{id}", "Bulk update multiple download clients.", inPath("id", tStr), required(inPayload("data"))),
	op("get_appprofile_id", TagSystem, "GET", "/api/v1/appprofile/{id}", "Bulk delete multiple download clients.", inPath("id", tInt)),
	op("get_appprofile_schema", TagSystem, "GET", "/api/v1/appprofile/schema", "Retrieve the configuration schema for download clients."),
	op("post_login", TagSystem, "POST", "/login", "Test a download client configuration.", inQuery("returnUrl", tStr)),
	op("get_login", TagSystem, "GET", "/login", "Test all configured download clients."),
	op("get_logout", TagSystem, "GET", "/logout", "Perform an action on a download client."),
	op("get_system_backup", TagSystem, "GET", "/api/v1/system/backup", "Retrieve download client configuration by ID."),
	op("delete_system_backup_id", TagSystem, "DELETE", "/api/v1/system/backup/{id}", "Update download client configuration by ID.", inPath("id", tInt)),
	op("post_system_backup_restore_id", TagSystem, "POST", "/api/v1/system/backup/restore/{id}", "Retrieve all download client configurations.", inPath("id", tInt)),
	op("post_system_backup_restore_upload", TagSystem, "POST", "/api/v1/system/backup/restore/upload", "Browse the local filesystem."),
	op("get_command_id", TagOperations, "GET", "/api/v1/command/{id}", "Get information about a specific filesystem path.", inPath("id", tInt)),
	op("delete_command_id", TagOperations, "DELETE", "/api/v1/command/{id}", "Retrieve the current health status of Prowlarr.", inPath("id", tInt)),
	op("post_command", TagOperations, "POST", "/api/v1/command", "Retrieve Prowlarr activity history.", required(inPayload("data"))),
	op("get_command", TagOperations, "GET", "/api/v1/command", "Retrieve activity history since a specific date."),
	op("get_customfilter_id", TagProfiles, "GET", "/api/v1/customfilter/{id}", "Retrieve details for a specific custom filter by its ID.", inPath("id", tInt)),
	op("put_customfilter_id", TagProfiles, "PUT", "/api/v1/customfilter/{id}", "Update a custom filter by its ID.", inPath("id", tStr), required(inPayload("data"))),
	op("delete_customfilter_id", TagProfiles, "DELETE", "/api/v1/customfilter/{id}", "Get application info.", inPath("id", tInt)),
	op("get_customfilter", TagProfiles, "GET", "/api/v1/customfilter", "Get custom filters."),
	op("post_customfilter", TagProfiles, "POST", "/api/v1/customfilter", "Delete an application.", required(inPayload("data"))),
	op("put_config_development_id", TagSystem, "PUT", "/api/v1/config/development/{id}", "Get specific application.", inPath("id", tStr), required(inPayload("data"))),
	op("get_config_development_id", TagSystem, "GET", "/api/v1/config/development/{id}", "Get application schema.", inPath("id", tInt)),
	op("get_config_development", TagSystem, "GET", "/api/v1/config/development", "Get system backups."),
	op("get_downloadclient_id", TagDownloads, "GET", "/api/v1/downloadclient/{id}", "Delete a system backup.", inPath("id", tInt)),
	op("put_downloadclient_id", TagDownloads, "PUT", "/api/v1/downloadclient/{id}", "Update download client.", inPath("id", tStr), required(inPayload("data")), inQuery("forceSave", tBool)),
	op("delete_downloadclient_id", TagDownloads, "DELETE", "/api/v1/downloadclient/{id}", "Delete download client.", inPath("id", tInt)),
	op("get_downloadclient", TagDownloads, "GET", "/api/v1/downloadclient", "Get downloadclient."),
	op("post_downloadclient", TagDownloads, "POST", "/api/v1/downloadclient", "Add a new downloadclient.", required(inPayload("data")), inQuery("forceSave", tBool)),
	op("put_downloadclient_bulk", TagDownloads, "PUT", "/api/v1/downloadclient/bulk", "Update downloadclient bulk.", required(inPayload("data"))),
	op("delete_downloadclient_bulk", TagDownloads, "DELETE", "/api/v1/downloadclient/bulk", "Delete downloadclient bulk.", required(inPayload("data"))),
	op("get_downloadclient_schema", TagDownloads, "GET", "/api/v1/downloadclient/schema", "Update general configuration."),
	op("post_downloadclient_test", TagDownloads, "POST", "/api/v1/downloadclient/test", "Test downloadclient.", required(inPayload("data")), inQuery("forceTest", tBool)),
	op("post_downloadclient_testall", TagDownloads, "POST", "/api/v1/downloadclient/testall", "Add a new downloadclient testall."),
	op("post_downloadclient_action_name", TagDownloads, "POST", "/api/v1/downloadclient/action/{name}", "Add a new download client.", inPath("name", tStr), required(inPayload("data"))),
	op("get_config_downloadclient_id", TagDownloads, "GET", "/api/v1/config/downloadclient/{id}", "Get specific config downloadclient.", inPath("id", tInt)),
	op("put_config_downloadclient_id", TagDownloads, "PUT", "/api/v1/config/downloadclient/{id}", "Delete a download client.", inPath("id", tStr), required(inPayload("data"))),
	op("get_config_downloadclient", TagDownloads, "GET", "/api/v1/config/downloadclient", "Get config downloadclient."),
	op("get_filesystem", TagSystem, "GET", "/api/v1/filesystem", "Get filesystem.", inQuery("path", tStr), inQuery("includeFiles", tBool), inQuery("allowFoldersWithoutTrailingSlashes", tBool)),
	op("get_filesystem_type", TagSystem, "GET", "/api/v1/filesystem/type", "Get filesystem type.", inQuery("path", tStr)),
	op("get_health", TagSystem, "GET", "/api/v1/health", "Get system health."),
	op("get_history", TagHistory, "GET", "/api/v1/history", "Get history.", inQuery("page", tInt), inQuery("pageSize", tInt), inQuery("sortKey", tStr), inQuery("sortDirection", tStr), inQuery("eventType", tArr), inQuery("successful", tBool), inQuery("downloadId", tStr), inQuery("indexerIds", tArr)),
	op("get_history_since", TagHistory, "GET", "/api/v1/history/since", "Get history since date.", inQuery("date", tStr), inQuery("eventType", tStr)),
	op("get_history_indexer", TagHistory, "GET", "/api/v1/history/indexer", "Get indexer history.", inQuery("indexerId", tInt), inQuery("eventType", tStr), inQuery("limit", tInt)),
	op("get_config_host_id", TagSystem, "GET", "/api/v1/config/host/{id}", "Get specific host config.", inPath("id", tInt)),
	op("put_config_host_id", TagSystem, "PUT", "/api/v1/config/host/{id}", "Update host config.", inPath("id", tStr), required(inPayload("data"))),
	op("get_config_host", TagSystem, "GET", "/api/v1/config/host", "Get host config."),
	op("get_indexer_id", TagIndexer, "GET", "/api/v1/indexer/{id}", "Get specific indexer.", inPath("id", tInt)),
	op("put_indexer_id", TagIndexer, "PUT", "/api/v1/indexer/{id}", "Update an indexer.", inPath("id", tStr), required(inPayload("data")), inQuery("forceSave", tBool)),
	op("delete_indexer_id", TagIndexer, "DELETE", "/api/v1/indexer/{id}", "Delete an indexer.", inPath("id", tInt)),
	op("get_indexer", TagIndexer, "GET", "/api/v1/indexer", "Get indexers."),
	op("post_indexer", TagIndexer, "POST", "/api/v1/indexer", "Add a new indexer.", required(inPayload("data")), inQuery("forceSave", tBool)),
	op("put_indexer_bulk", TagIndexer, "PUT", "/api/v1/indexer/bulk", "Bulk update indexers.", required(inPayload("data"))),
	op("delete_indexer_bulk", TagIndexer, "DELETE", "/api/v1/indexer/bulk", "Bulk delete indexers.", required(inPayload("data"))),
	op("get_indexer_schema", TagIndexer, "GET", "/api/v1/indexer/schema", "Get indexer schema."),
	op("post_indexer_test", TagIndexer, "POST", "/api/v1/indexer/test", "Test an indexer.", required(inPayload("data")), inQuery("forceTest", tBool)),
	op("post_indexer_testall", TagIndexer, "POST", "/api/v1/indexer/testall", "Test all indexers."),
	op("post_indexer_action_name", TagIndexer, "POST", "/api/v1/indexer/action/{name}", "Add a new indexer action name.", inPath("name", tStr), required(inPayload("data"))),
	op("get_indexer_categories", TagIndexer, "GET", "/api/v1/indexer/categories", "Get indexer categories."),
	op("get_indexerproxy_id", TagIndexer, "GET", "/api/v1/indexerproxy/{id}", "Get specific indexerproxy.", inPath("id", tInt)),
	op("put_indexerproxy_id", TagIndexer, "PUT", "/api/v1/indexerproxy/{id}", "Update indexerproxy id.", inPath("id", tStr), required(inPayload("data")), inQuery("forceSave", tBool)),
	op("delete_indexerproxy_id", TagIndexer, "DELETE", "/api/v1/indexerproxy/{id}", "Delete indexerproxy id.", inPath("id", tInt)),
	op("get_indexerproxy", TagIndexer, "GET", "/api/v1/indexerproxy", "Get indexerproxy."),
	op("post_indexerproxy", TagIndexer, "POST", "/api/v1/indexerproxy", "Add a new indexerproxy.", required(inPayload("data")), inQuery("forceSave", tBool)),
	op("get_indexerproxy_schema", TagIndexer, "GET", "/api/v1/indexerproxy/schema", "Get indexerproxy schema."),
	op("post_indexerproxy_test", TagIndexer, "POST", "/api/v1/indexerproxy/test", "Test indexerproxy.", required(inPayload("data")), inQuery("forceTest", tBool)),
	op("post_indexerproxy_testall", TagIndexer, "POST", "/api/v1/indexerproxy/testall", "Add a new indexerproxy testall."),
	op("post_indexerproxy_action_name", TagIndexer, "POST", "/api/v1/indexerproxy/action/{name}", "Add a new indexerproxy action name.", inPath("name", tStr), required(inPayload("data"))),
	op("get_indexerstats", TagIndexer, "GET", "/api/v1/indexerstats", "Get indexerstats.", inQuery("startDate", tStr), inQuery("endDate", tStr), inQuery("indexers", tStr), inQuery("protocols", tStr), inQuery("tags", tStr)),
	op("get_indexerstatus", TagIndexer, "GET", "/api/v1/indexerstatus", "Get indexerstatus."),
	op("get_localization", TagSystem, "GET", "/api/v1/localization", "Get localization."),
	op("get_localization_options", TagSystem, "GET", "/api/v1/localization/options", "Get localization options."),
	op("get_log", TagSystem, "GET", "/api/v1/log", "Get log.", inQuery("page", tInt), inQuery("pageSize", tInt), inQuery("sortKey", tStr), inQuery("sortDirection", tStr), inQuery("level", tStr)),
	op("get_log_file", TagSystem, "GET", "/api/v1/log/file", "Get log file."),
	op("get_log_file_filename", TagSystem, "GET", "/api/v1/log/file/{filename}", "Get log file filename.", inPath("filename", tStr)),
	op("get_indexer_id_newznab", TagIndexer, "GET", "/api/v1/indexer/{id}/newznab", "Get specific indexer newznab.", inPath("id", tInt), inQuery("t", tStr), inQuery("q", tStr), inQuery("cat", tStr), inQuery("imdbid", tStr), inQuery("tmdbid", tInt), inQuery("extended", tStr), inQuery("limit", tInt), inQuery("offset", tInt), inQuery("minage", tInt), inQuery("maxage", tInt), inQuery("minsize", tInt), inQuery("maxsize", tInt), inQuery("rid", tInt), inQuery("tvmazeid", tInt), inQuery("traktid", tInt), inQuery("tvdbid", tInt), inQuery("doubanid", tInt), inQuery("season", tInt), inQuery("ep", tStr), inQuery("album", tStr), inQuery("artist", tStr), inQuery("label", tStr), inQuery("track", tStr), inQuery("year", tInt), inQuery("genre", tStr), inQuery("author", tStr), inQuery("title", tStr), inQuery("publisher", tStr), inQuery("configured", tStr), inQuery("source", tStr), inQuery("host", tStr), inQuery("server", tStr)),
	op("get_id_api", TagIndexer, "GET", "/{id}/api", "Get specific id api.", inPath("id", tInt), inQuery("t", tStr), inQuery("q", tStr), inQuery("cat", tStr), inQuery("imdbid", tStr), inQuery("tmdbid", tInt), inQuery("extended", tStr), inQuery("limit", tInt), inQuery("offset", tInt), inQuery("minage", tInt), inQuery("maxage", tInt), inQuery("minsize", tInt), inQuery("maxsize", tInt), inQuery("rid", tInt), inQuery("tvmazeid", tInt), inQuery("traktid", tInt), inQuery("tvdbid", tInt), inQuery("doubanid", tInt), inQuery("season", tInt), inQuery("ep", tStr), inQuery("album", tStr), inQuery("artist", tStr), inQuery("label", tStr), inQuery("track", tStr), inQuery("year", tInt), inQuery("genre", tStr), inQuery("author", tStr), inQuery("title", tStr), inQuery("publisher", tStr), inQuery("configured", tStr), inQuery("source", tStr), inQuery("host", tStr), inQuery("server", tStr)),
	op("get_indexer_id_download", TagIndexer, "GET", "/api/v1/indexer/{id}/download", "Get specific indexer download.", inPath("id", tInt), inQuery("link", tStr), inQuery("file", tStr)),
	op("get_id_download", TagIndexer, "GET", "/{id}/download", "Get specific id download.", inPath("id", tInt), inQuery("link", tStr), inQuery("file", tStr)),
	op("get_notification_id", TagConfig, "GET", "/api/v1/notification/{id}", "Get specific notification.", inPath("id", tInt)),
	op("put_notification_id", TagConfig, "PUT", "/api/v1/notification/{id}", "Update notification id.", inPath("id", tStr), required(inPayload("data")), inQuery("forceSave", tBool)),
	op("delete_notification_id", TagConfig, "DELETE", "/api/v1/notification/{id}", "Delete notification id.", inPath("id", tInt)),
	op("get_notification", TagConfig, "GET", "/api/v1/notification", "Get notification."),
	op("post_notification", TagConfig, "POST", "/api/v1/notification", "Add a new notification.", required(inPayload("data")), inQuery("forceSave", tBool)),
	op("get_notification_schema", TagConfig, "GET", "/api/v1/notification/schema", "Get notification schema."),
	op("post_notification_test", TagConfig, "POST", "/api/v1/notification/test", "Test notification.", required(inPayload("data")), inQuery("forceTest", tBool)),
	op("post_notification_testall", TagConfig, "POST", "/api/v1/notification/testall", "Add a new notification testall."),
	op("post_notification_action_name", TagConfig, "POST", "/api/v1/notification/action/{name}", "Add a new notification action name.", inPath("name", tStr), required(inPayload("data"))),
	op("get_ping", TagSystem, "GET", "/ping", "Get ping."),
	op("post_search", TagSearch, "POST", "/api/v1/search", "Add a new search.", required(inPayload("data"))),
	op("get_search", TagSearch, "GET", "/api/v1/search", "Get search.", inQuery("query", tStr), inQuery("type", tStr), inQuery("indexerIds", tArr), inQuery("categories", tArr), inQuery("limit", tInt), inQuery("offset", tInt)),
	op("post_search_bulk", TagSearch, "POST", "/api/v1/search/bulk", "Add a new search bulk.", required(inPayload("data"))),
	op("get_content_path", TagSystem, "GET", "/content/{path}", "Get content path.", inPath("path", tStr)),
	op("get_", TagSystem, "GET", "/{path}", "Get .", inPath("path", tStr)),
	op("get_path", TagSystem, "GET", "/{path}", "Get path.", inPath("path", tStr)),
	op("get_system_status", TagSystem, "GET", "/api/v1/system/status", "Get system status."),
	op("get_system_routes", TagSystem, "GET", "/api/v1/system/routes", "Get system routes."),
	op("get_system_routes_duplicate", TagSystem, "GET", "/api/v1/system/routes/duplicate", "Get system routes duplicate."),
	op("post_system_shutdown", TagSystem, "POST", "/api/v1/system/shutdown", "Add a new system shutdown."),
	op("post_system_restart", TagSystem, "POST", "/api/v1/system/restart", "Add a new system restart."),
	op("get_tag_id", TagSystem, "GET", "/api/v1/tag/{id}", "Get specific tag.", inPath("id", tInt)),
	op("put_tag_id", TagSystem, "PUT", "/api/v1/tag/{id}", "Update tag id.", inPath("id", tStr), required(inPayload("data"))),
	op("delete_tag_id", TagSystem, "DELETE", "/api/v1/tag/{id}", "Delete tag id.", inPath("id", tInt)),
	op("get_tag", TagSystem, "GET", "/api/v1/tag", "Get tag."),
	op("post_tag", TagSystem, "POST", "/api/v1/tag", "Add a new tag.", required(inPayload("data"))),
	op("get_tag_detail_id", TagSystem, "GET", "/api/v1/tag/detail/{id}", "Get specific tag detail.", inPath("id", tInt)),
	op("get_tag_detail", TagSystem, "GET", "/api/v1/tag/detail", "Get tag detail."),
	op("get_system_task", TagSystem, "GET", "/api/v1/system/task", "Get system task."),
	op("get_system_task_id", TagSystem, "GET", "/api/v1/system/task/{id}", "Get specific system task.", inPath("id", tInt)),
	op("put_config_ui_id", TagSystem, "PUT", "/api/v1/config/ui/{id}", "Update config ui id.", inPath("id", tStr), required(inPayload("data"))),
	op("get_config_ui_id", TagSystem, "GET", "/api/v1/config/ui/{id}", "Get specific config ui.", inPath("id", tInt)),
	op("get_config_ui", TagSystem, "GET", "/api/v1/config/ui", "Get config ui."),
	op("get_update", TagSystem, "GET", "/api/v1/update", "Get update."),
	op("get_log_file_update", TagSystem, "GET", "/api/v1/log/file/update", "Get log file update."),
	op("get_log_file_update_filename", TagSystem, "GET", "/api/v1/log/file/update/{filename}", "Get log file update filename.", inPath("filename", tStr)),
}
