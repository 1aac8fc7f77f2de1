package arr

import "arr-mcp/internal/domain"

var radarrOperations = []domain.Operation{
	op("lookup_movie", TagCatalog, "GET", "/api/v3/movie/lookup", "Search for a movie using the lookup endpoint.", describe(required(inQuery("term", tStr)), "Search term for the movie")),
	op("add_movie", TagCatalog, "POST", "/api/v3/movie", "Lookup a movie by term, pick the first result, and add it to Radarr.", describe(required(arg("term", tStr)), "Search term for the movie"), describe(required(arg("root_folder_path", tStr)), "Root folder path for the movie"), describe(required(arg("quality_profile_id", tInt)), "Quality profile ID for the movie"), describe(withDefault(arg("monitored", tBool), true), "Monitor the movie"), describe(withDefault(arg("search_for_movie", tBool), true), "Search for movie immediately")),
	op("get_alttitle", TagCatalog, "GET", "/api/v3/alttitle", "Get alternative titles for a movie.", inQuery("movieId", tInt), inQuery("movieMetadataId", tInt)),
	op("get_alttitle_id", TagCatalog, "GET", "/api/v3/alttitle/{id}", "Get details for a specific alternative title by ID.", inPath("id", tInt)),
	op("get_api", TagSystem, "GET", "/api", "Get the base API information for Radarr."),
	op("post_login", TagSystem, "POST", "/login", "Perform a login operation.", inQuery("returnUrl", tStr)),
	op("get_login", TagSystem, "GET", "/login", "Check the current login status."),
	op("get_logout", TagSystem, "GET", "/logout", "Perform a logout operation."),
	op("post_autotagging", TagOperations, "POST", "/api/v3/autotagging", "Add a new auto-tagging configuration.", required(inPayload("data"))),
	op("get_autotagging", TagOperations, "GET", "/api/v3/autotagging", "Retrieve all auto-tagging configurations."),
	op("put_autotagging_id", TagOperations, "PUT", "/api/v3/autotagging/{id}", "Update an existing auto-tagging configuration by its ID.", inPath("id", tStr), required(inPayload("data"))),
	op("delete_autotagging_id", TagOperations, "DELETE", "/api/v3/autotagging/{id}", "Get details for an auto-tagging configuration by ID.", inPath("id", tInt)),
	op("get_autotagging_id", TagOperations, "GET", "/api/v3/autotagging/{id}", "Get the schema for auto-tagging configurations.", inPath("id", tInt)),
	op("get_autotagging_schema", TagOperations, "GET", "/api/v3/autotagging/schema", "Get the current system backup information."),
	op("get_system_backup", TagSystem, "GET", "/api/v3/system/backup", "Delete a system backup by its ID."),
	op("delete_system_backup_id", TagSystem, "DELETE", "/api/v3/system/backup/{id}", "Restore Radarr from a specific backup ID.", inPath("id", tInt)),
	op("post_system_backup_restore_id", TagSystem, "POST", "/api/v3/system/backup/restore/{id}", "Upload and restore a Radarr backup archive.", inPath("id", tInt)),
	op("post_system_backup_restore_upload", TagSystem, "POST", "/api/v3/system/backup/restore/upload", "Retrieve a paginated list of items in the blocklist."),
	op("get_blocklist", TagQueue, "GET", "/api/v3/blocklist", "Remove an item from the blocklist by its ID.", inQuery("page", tInt), inQuery("pageSize", tInt), inQuery("sortKey", tStr), inQuery("sortDirection", tStr), inQuery("movieIds", tArr), inQuery("protocols", tArr)),
	op("get_blocklist_movie", TagQueue, "GET", "/api/v3/blocklist/movie", "Bulk removal of items from the blocklist.", inQuery("movieId", tInt)),
	op("delete_blocklist_id", TagQueue, "DELETE", "/api/v3/blocklist/{id}", "Retrieve calendar events for a given time range.", inPath("id", tInt)),
	op("delete_blocklist_bulk", TagQueue, "DELETE", "/api/v3/blocklist/bulk", "Retrieve a specific calendar event by its ID.", required(inPayload("data"))),
	op("get_calendar", TagOperations, "GET", "/api/v3/calendar", "Retrieve the calendar feed in iCal format.", inQuery("start", tStr), inQuery("end", tStr), inQuery("unmonitored", tBool), inQuery("tags", tStr)),
	op("get_feed_v3_calendar_radarrics", TagOperations, "GET", "/feed/v3/calendar/radarr.ics", "Get the status of a specific command by its ID.", inQuery("pastDays", tInt), inQuery("futureDays", tInt), inQuery("tags", tStr), inQuery("unmonitored", tBool), inQuery("releaseTypes", tArr)),
	op("get_collection", TagCatalog, "GET", "/api/v3/collection", "Get information for a movie collection.", inQuery("tmdbId", tInt)),
	op("put_collection", TagCatalog, "PUT", "/api/v3/collection", "Cancel a specific command by its ID.", required(inPayload("data"))),
	op("put_collection_id", TagCatalog, "PUT", "/api/v3/collection/{id}", "Execute a command in Radarr.", inPath("id", tStr), required(inPayload("data"))),
	op("get_collection_id", TagCatalog, "GET", "/api/v3/collection/{id}", "Retrieve all currently running or recently finished commands.", inPath("id", tInt)),
	op("post_command", TagOperations, "POST", "/api/v3/command", "Retrieve details for a specific custom filter by its ID.", required(inPayload("data"))),
	op("get_command", TagOperations, "GET", "/api/v3/command", "Update an existing custom filter by its ID."),
	op("delete_command_id", TagOperations, "DELETE", "/api/v3/command/{id}", "Delete a custom filter by its ID.", inPath("id", tInt)),
	op("get_command_id", TagOperations, "GET", "/api/v3/command/{id}", "Retrieve all defined custom filters.", inPath("id", tInt)),
	op("get_credit", TagCatalog, "GET", "/api/v3/credit", "Get credit.", inQuery("movieId", tInt), inQuery("movieMetadataId", tInt)),
	op("get_credit_id", TagCatalog, "GET", "/api/v3/credit/{id}", "Get specific credit.", inPath("id", tInt)),
	op("get_customfilter", TagProfiles, "GET", "/api/v3/customfilter", "Get customfilter."),
	op("post_customfilter", TagProfiles, "POST", "/api/v3/customfilter", "Add a new customfilter.", required(inPayload("data"))),
	op("put_customfilter_id", TagProfiles, "PUT", "/api/v3/customfilter/{id}", "Update customfilter id.", inPath("id", tStr), required(inPayload("data"))),
	op("delete_customfilter_id", TagProfiles, "DELETE", "/api/v3/customfilter/{id}", "Delete customfilter id.", inPath("id", tInt)),
	op("get_customfilter_id", TagProfiles, "GET", "/api/v3/customfilter/{id}", "Get specific customfilter.", inPath("id", tInt)),
	op("get_customformat", TagProfiles, "GET", "/api/v3/customformat", "Get customformat."),
	op("post_customformat", TagProfiles, "POST", "/api/v3/customformat", "Add a new customformat.", required(inPayload("data"))),
	op("put_customformat_id", TagProfiles, "PUT", "/api/v3/customformat/{id}", "Update customformat id.", inPath("id", tStr), required(inPayload("data"))),
	op("delete_customformat_id", TagProfiles, "DELETE", "/api/v3/customformat/{id}", "Delete customformat id.", inPath("id", tInt)),
	op("get_customformat_id", TagProfiles, "GET", "/api/v3/customformat/{id}", "Get specific customformat.", inPath("id", tInt)),
	op("put_customformat_bulk", TagProfiles, "PUT", "/api/v3/customformat/bulk", "Update customformat bulk.", required(inPayload("data"))),
	op("delete_customformat_bulk", TagProfiles, "DELETE", "/api/v3/customformat/bulk", "Delete customformat bulk.", required(inPayload("data"))),
	op("get_customformat_schema", TagProfiles, "GET", "/api/v3/customformat/schema", "Get customformat schema."),
	op("get_wanted_cutoff", TagProfiles, "GET", "/api/v3/wanted/cutoff", "Get wanted cutoff.", inQuery("page", tInt), inQuery("pageSize", tInt), inQuery("sortKey", tStr), inQuery("sortDirection", tStr), inQuery("monitored", tBool)),
	op("post_delayprofile", TagProfiles, "POST", "/api/v3/delayprofile", "Add a new delayprofile.", required(inPayload("data"))),
	op("get_delayprofile", TagProfiles, "GET", "/api/v3/delayprofile", "Get delayprofile."),
	op("delete_delayprofile_id", TagProfiles, "DELETE", "/api/v3/delayprofile/{id}", "Delete delayprofile id.", inPath("id", tInt)),
	op("put_delayprofile_id", TagProfiles, "PUT", "/api/v3/delayprofile/{id}", "Update delayprofile id.", inPath("id", tStr), required(inPayload("data"))),
	op("get_delayprofile_id", TagProfiles, "GET", "/api/v3/delayprofile/{id}", "Get specific delayprofile.", inPath("id", tInt)),
	op("put_delayprofile_reorder_id", TagProfiles, "PUT", "/api/v3/delayprofile/reorder/{id}", "Update delayprofile reorder id.", inPath("id", tInt), inQuery("after", tInt)),
	op("get_diskspace", TagSystem, "GET", "/api/v3/diskspace", "Get diskspace."),
	op("get_downloadclient", TagDownloads, "GET", "/api/v3/downloadclient", "Get downloadclient."),
	op("post_downloadclient", TagDownloads, "POST", "/api/v3/downloadclient", "Add a new downloadclient.", required(inPayload("data")), inQuery("forceSave", tBool)),
	op("put_downloadclient_id", TagDownloads, "PUT", "/api/v3/downloadclient/{id}", "Update downloadclient id.", inPath("id", tInt), required(inPayload("data")), inQuery("forceSave", tBool)),
	op("delete_downloadclient_id", TagDownloads, "DELETE", "/api/v3/downloadclient/{id}", "Delete downloadclient id.", inPath("id", tInt)),
	op("get_downloadclient_id", TagDownloads, "GET", "/api/v3/downloadclient/{id}", "Get specific downloadclient.", inPath("id", tInt)),
	op("put_downloadclient_bulk", TagDownloads, "PUT", "/api/v3/downloadclient/bulk", "Update downloadclient bulk.", required(inPayload("data"))),
	op("delete_downloadclient_bulk", TagDownloads, "DELETE", "/api/v3/downloadclient/bulk", "Delete downloadclient bulk.", required(inPayload("data"))),
	op("get_downloadclient_schema", TagDownloads, "GET", "/api/v3/downloadclient/schema", "Get downloadclient schema."),
	op("post_downloadclient_test", TagDownloads, "POST", "/api/v3/downloadclient/test", "Test downloadclient.", required(inPayload("data")), inQuery("forceTest", tBool)),
	op("post_downloadclient_testall", TagDownloads, "POST", "/api/v3/downloadclient/testall", "Add a new downloadclient testall."),
	op("post_downloadclient_action_name", TagDownloads, "POST", "/api/v3/downloadclient/action/{name}", "Add a new downloadclient action name.", inPath("name", tStr), required(inPayload("data"))),
	op("get_config_downloadclient", TagDownloads, "GET", "/api/v3/config/downloadclient", "Get config downloadclient."),
	op("put_config_downloadclient_id", TagDownloads, "PUT", "/api/v3/config/downloadclient/{id}", "Update config downloadclient id.", inPath("id", tStr), required(inPayload("data"))),
	op("get_config_downloadclient_id", TagDownloads, "GET", "/api/v3/config/downloadclient/{id}", "Get specific config downloadclient.", inPath("id", tInt)),
	op("get_extrafile", TagCatalog, "GET", "/api/v3/extrafile", "Get extrafile.", inQuery("movieId", tInt)),
	op("get_filesystem", TagSystem, "GET", "/api/v3/filesystem", "Get filesystem.", inQuery("path", tStr), inQuery("includeFiles", tBool), inQuery("allowFoldersWithoutTrailingSlashes", tBool)),
	op("get_filesystem_type", TagSystem, "GET", "/api/v3/filesystem/type", "Get filesystem type.", inQuery("path", tStr)),
	op("get_filesystem_mediafiles", TagSystem, "GET", "/api/v3/filesystem/mediafiles", "Get filesystem mediafiles.", inQuery("path", tStr)),
	op("get_health", TagSystem, "GET", "/api/v3/health", "Get health."),
	op("get_history", TagHistory, "GET", "/api/v3/history", "Get history.", inQuery("page", tInt), inQuery("pageSize", tInt), inQuery("sortKey", tStr), inQuery("sortDirection", tStr), inQuery("includeMovie", tBool), inQuery("eventType", tArr), inQuery("downloadId", tStr), inQuery("movieIds", tArr), inQuery("languages", tArr), inQuery("quality", tArr)),
	op("get_history_since", TagHistory, "GET", "/api/v3/history/since", "Get history since.", inQuery("date", tStr), inQuery("eventType", tStr), inQuery("includeMovie", tBool)),
	op("get_history_movie", TagHistory, "GET", "/api/v3/history/movie", "Get history movie.", inQuery("movieId", tInt), inQuery("eventType", tStr), inQuery("includeMovie", tBool)),
	op("post_history_failed_id", TagHistory, "POST", "/api/v3/history/failed/{id}", "Add a new history failed id.", inPath("id", tInt)),
	op("get_config_host", TagSystem, "GET", "/api/v3/config/host", "Get config host."),
	op("put_config_host_id", TagSystem, "PUT", "/api/v3/config/host/{id}", "Update config host id.", inPath("id", tStr), required(inPayload("data"))),
	op("get_config_host_id", TagSystem, "GET", "/api/v3/config/host/{id}", "Get specific config host.", inPath("id", tInt)),
	op("get_importlist", TagDownloads, "GET", "/api/v3/importlist", "Get importlist."),
	op("post_importlist", TagDownloads, "POST", "/api/v3/importlist", "Add a new importlist.", required(inPayload("data")), inQuery("forceSave", tBool)),
	op("put_importlist_id", TagDownloads, "PUT", "/api/v3/importlist/{id}", "Update importlist id.", inPath("id", tInt), required(inPayload("data")), inQuery("forceSave", tBool)),
	op("delete_importlist_id", TagDownloads, "DELETE", "/api/v3/importlist/{id}", "Delete importlist id.", inPath("id", tInt)),
	op("get_importlist_id", TagDownloads, "GET", "/api/v3/importlist/{id}", "Get specific importlist.", inPath("id", tInt)),
	op("put_importlist_bulk", TagDownloads, "PUT", "/api/v3/importlist/bulk", "Update importlist bulk.", required(inPayload("data"))),
	op("delete_importlist_bulk", TagDownloads, "DELETE", "/api/v3/importlist/bulk", "Delete importlist bulk.", required(inPayload("data"))),
	op("get_importlist_schema", TagDownloads, "GET", "/api/v3/importlist/schema", "Get importlist schema."),
	op("post_importlist_test", TagDownloads, "POST", "/api/v3/importlist/test", "Test importlist.", required(inPayload("data")), inQuery("forceTest", tBool)),
	op("post_importlist_testall", TagDownloads, "POST", "/api/v3/importlist/testall", "Add a new importlist testall."),
	op("post_importlist_action_name", TagDownloads, "POST", "/api/v3/importlist/action/{name}", "Add a new importlist action name.", inPath("name", tStr), required(inPayload("data"))),
	op("get_config_importlist", TagDownloads, "GET", "/api/v3/config/importlist", "Get config importlist."),
	op("put_config_importlist_id", TagDownloads, "PUT", "/api/v3/config/importlist/{id}", "Update config importlist id.", inPath("id", tStr), required(inPayload("data"))),
	op("get_config_importlist_id", TagDownloads, "GET", "/api/v3/config/importlist/{id}", "Get specific config importlist.", inPath("id", tInt)),
	op("get_exclusions", TagDownloads, "GET", "/api/v3/exclusions", "Get exclusions."),
	op("post_exclusions", TagDownloads, "POST", "/api/v3/exclusions", "Add a new exclusions.", required(inPayload("data"))),
	op("get_exclusions_paged", TagDownloads, "GET", "/api/v3/exclusions/paged", "Get exclusions paged.", inQuery("page", tInt), inQuery("pageSize", tInt), inQuery("sortKey", tStr), inQuery("sortDirection", tStr)),
	op("put_exclusions_id", TagDownloads, "PUT", "/api/v3/exclusions/{id}", "Update exclusions id.", inPath("id", tStr), required(inPayload("data"))),
	op("delete_exclusions_id", TagDownloads, "DELETE", "/api/v3/exclusions/{id}", "Delete exclusions id.", inPath("id", tInt)),
	op("get_exclusions_id", TagDownloads, "GET", "/api/v3/exclusions/{id}", "Get specific exclusions.", inPath("id", tInt)),
	op("post_exclusions_bulk", TagDownloads, "POST", "/api/v3/exclusions/bulk", "Add a new exclusions bulk.", required(inPayload("data"))),
	op("delete_exclusions_bulk", TagDownloads, "DELETE", "/api/v3/exclusions/bulk", "Delete exclusions bulk.", required(inPayload("data"))),
	op("get_importlist_movie", TagCatalog, "GET", "/api/v3/importlist/movie", "Get importlist movie.", inQuery("includeRecommendations", tBool), inQuery("includeTrending", tBool), inQuery("includePopular", tBool)),
	op("post_importlist_movie", TagCatalog, "POST", "/api/v3/importlist/movie", "Add a new importlist movie.", required(inPayload("data"))),
	op("get_indexer", TagIndexer, "GET", "/api/v3/indexer", "Get indexer."),
	op("post_indexer", TagIndexer, "POST", "/api/v3/indexer", "Add a new indexer.", required(inPayload("data")), inQuery("forceSave", tBool)),
	op("put_indexer_id", TagIndexer, "PUT", "/api/v3/indexer/{id}", "Update indexer id.", inPath("id", tInt), required(inPayload("data")), inQuery("forceSave", tBool)),
	op("delete_indexer_id", TagIndexer, "DELETE", "/api/v3/indexer/{id}", "Delete indexer id.", inPath("id", tInt)),
	op("get_indexer_id", TagIndexer, "GET", "/api/v3/indexer/{id}", "Get specific indexer.", inPath("id", tInt)),
	op("put_indexer_bulk", TagIndexer, "PUT", "/api/v3/indexer/bulk", "Update indexer bulk.", required(inPayload("data"))),
	op("delete_indexer_bulk", TagIndexer, "DELETE", "/api/v3/indexer/bulk", "Delete indexer bulk.", required(inPayload("data"))),
	op("get_indexer_schema", TagIndexer, "GET", "/api/v3/indexer/schema", "Get indexer schema."),
	op("post_indexer_test", TagIndexer, "POST", "/api/v3/indexer/test", "Test indexer.", required(inPayload("data")), inQuery("forceTest", tBool)),
	op("post_indexer_testall", TagIndexer, "POST", "/api/v3/indexer/testall", "Add a new indexer testall."),
	op("post_indexer_action_name", TagIndexer, "POST", "/api/v3/indexer/action/{name}", "Add a new indexer action name.", inPath("name", tStr), required(inPayload("data"))),
	op("get_config_indexer", TagIndexer, "GET", "/api/v3/config/indexer", "Get config indexer."),
	op("put_config_indexer_id", TagIndexer, "PUT", "/api/v3/config/indexer/{id}", "Update config indexer id.", inPath("id", tStr), required(inPayload("data"))),
	op("get_config_indexer_id", TagIndexer, "GET", "/api/v3/config/indexer/{id}", "Get specific config indexer.", inPath("id", tInt)),
	op("get_indexerflag", TagIndexer, "GET", "/api/v3/indexerflag", "Get indexerflag."),
	op("get_language", TagProfiles, "GET", "/api/v3/language", "Get language."),
	op("get_language_id", TagProfiles, "GET", "/api/v3/language/{id}", "Get specific language.", inPath("id", tInt)),
	op("get_localization", TagSystem, "GET", "/api/v3/localization", "Get localization."),
	op("get_localization_language", TagSystem, "GET", "/api/v3/localization/language", "Get localization language."),
	op("get_log", TagSystem, "GET", "/api/v3/log", "Get log.", inQuery("page", tInt), inQuery("pageSize", tInt), inQuery("sortKey", tStr), inQuery("sortDirection", tStr), inQuery("level", tStr)),
	op("get_log_file", TagSystem, "GET", "/api/v3/log/file", "Get log file."),
	op("get_log_file_filename", TagSystem, "GET", "/api/v3/log/file/{filename}", "Get log file filename.", inPath("filename", tStr)),
	op("get_manualimport", TagDownloads, "GET", "/api/v3/manualimport", "Get manualimport.", inQuery("folder", tStr), inQuery("downloadId", tStr), inQuery("movieId", tInt), inQuery("filterExistingFiles", tBool)),
	op("post_manualimport", TagDownloads, "POST", "/api/v3/manualimport", "Add a new manualimport.", required(inPayload("data"))),
	op("get_mediacover_movie_id_filename", TagCatalog, "GET", "/api/v3/mediacover/{movieId}/{filename}", "Get specific mediacover movie filename.", inPath("movieId", tInt), inPath("filename", tStr)),
	op("get_config_mediamanagement", TagProfiles, "GET", "/api/v3/config/mediamanagement", "Get config mediamanagement."),
	op("put_config_mediamanagement_id", TagProfiles, "PUT", "/api/v3/config/mediamanagement/{id}", "Update config mediamanagement id.", inPath("id", tStr), required(inPayload("data"))),
	op("get_config_mediamanagement_id", TagProfiles, "GET", "/api/v3/config/mediamanagement/{id}", "Get specific config mediamanagement.", inPath("id", tInt)),
	op("get_metadata", TagCatalog, "GET", "/api/v3/metadata", "Get metadata."),
	op("post_metadata", TagCatalog, "POST", "/api/v3/metadata", "Add a new metadata.", required(inPayload("data")), inQuery("forceSave", tBool)),
	op("put_metadata_id", TagCatalog, "PUT", "/api/v3/metadata/{id}", "Update metadata id.", inPath("id", tInt), required(inPayload("data")), inQuery("forceSave", tBool)),
	op("delete_metadata_id", TagCatalog, "DELETE", "/api/v3/metadata/{id}", "Delete metadata id.", inPath("id", tInt)),
	op("get_metadata_id", TagCatalog, "GET", "/api/v3/metadata/{id}", "Get specific metadata.", inPath("id", tInt)),
	op("get_metadata_schema", TagCatalog, "GET", "/api/v3/metadata/schema", "Get metadata schema."),
	op("post_metadata_test", TagCatalog, "POST", "/api/v3/metadata/test", "Test metadata.", required(inPayload("data")), inQuery("forceTest", tBool)),
	op("post_metadata_testall", TagCatalog, "POST", "/api/v3/metadata/testall", "Add a new metadata testall."),
	op("post_metadata_action_name", TagCatalog, "POST", "/api/v3/metadata/action/{name}", "Add a new metadata action name.", inPath("name", tStr), required(inPayload("data"))),
	op("get_config_metadata", TagProfiles, "GET", "/api/v3/config/metadata", "Get config metadata."),
	op("put_config_metadata_id", TagProfiles, "PUT", "/api/v3/config/metadata/{id}", "Update config metadata id.", inPath("id", tStr), required(inPayload("data"))),
	op("get_config_metadata_id", TagProfiles, "GET", "/api/v3/config/metadata/{id}", "Get specific config metadata.", inPath("id", tInt)),
	op("get_wanted_missing", TagCatalog, "GET", "/api/v3/wanted/missing", "Get wanted missing.", inQuery("page", tInt), inQuery("pageSize", tInt), inQuery("sortKey", tStr), inQuery("sortDirection", tStr), inQuery("monitored", tBool)),
	op("get_movie", TagCatalog, "GET", "/api/v3/movie", "Get movie.", inQuery("tmdbId", tInt), inQuery("excludeLocalCovers", tBool), inQuery("languageId", tInt)),
	op("post_movie", TagCatalog, "POST", "/api/v3/movie", "Add a new movie.", required(inPayload("data"))),
	op("put_movie_id", TagCatalog, "PUT", "/api/v3/movie/{id}", "Update movie id.", inPath("id", tStr), required(inPayload("data")), inQuery("moveFiles", tBool)),
	op("delete_movie_id", TagCatalog, "DELETE", "/api/v3/movie/{id}", "Delete movie id.", inPath("id", tInt), inQuery("deleteFiles", tBool), inQuery("addImportExclusion", tBool)),
	op("get_movie_id", TagCatalog, "GET", "/api/v3/movie/{id}", "Get specific movie.", inPath("id", tInt)),
	op("put_movie_editor", TagCatalog, "PUT", "/api/v3/movie/editor", "Update movie editor.", required(inPayload("data"))),
	op("delete_movie_editor", TagCatalog, "DELETE", "/api/v3/movie/editor", "Delete movie editor.", required(inPayload("data"))),
	op("get_moviefile", TagCatalog, "GET", "/api/v3/moviefile", "Get moviefile.", inQuery("movieId", tArr), inQuery("movieFileIds", tArr)),
	op("put_moviefile_id", TagCatalog, "PUT", "/api/v3/moviefile/{id}", "Update moviefile id.", inPath("id", tStr), required(inPayload("data"))),
	op("delete_moviefile_id", TagCatalog, "DELETE", "/api/v3/moviefile/{id}", "Delete moviefile id.", inPath("id", tInt)),
	op("get_moviefile_id", TagCatalog, "GET", "/api/v3/moviefile/{id}", "Get specific moviefile.", inPath("id", tInt)),
	op("put_moviefile_editor", TagCatalog, "PUT", "/api/v3/moviefile/editor", "Update moviefile editor.", required(inPayload("data"))),
	op("delete_moviefile_bulk", TagCatalog, "DELETE", "/api/v3/moviefile/bulk", "Delete moviefile bulk.", required(inPayload("data"))),
	op("put_moviefile_bulk", TagCatalog, "PUT", "/api/v3/moviefile/bulk", "Update moviefile bulk.", required(inPayload("data"))),
	op("get_movie_id_folder", TagCatalog, "GET", "/api/v3/movie/{id}/folder", "Get specific movie folder.", inPath("id", tInt)),
	op("post_movie_import", TagCatalog, "POST", "/api/v3/movie/import", "Add a new movie import.", required(inPayload("data"))),
	op("get_movie_lookup_tmdb", TagCatalog, "GET", "/api/v3/movie/lookup/tmdb", "Get movie lookup tmdb.", inQuery("tmdbId", tInt)),
	op("get_movie_lookup_imdb", TagCatalog, "GET", "/api/v3/movie/lookup/imdb", "Get movie lookup imdb.", inQuery("imdbId", tStr)),
	op("get_movie_lookup", TagCatalog, "GET", "/api/v3/movie/lookup", "Get movie lookup.", inQuery("term", tStr)),
	op("get_config_naming", TagProfiles, "GET", "/api/v3/config/naming", "Get config naming."),
	op("put_config_naming_id", TagProfiles, "PUT", "/api/v3/config/naming/{id}", "Update config naming id.", inPath("id", tStr), required(inPayload("data"))),
	op("get_config_naming_id", TagProfiles, "GET", "/api/v3/config/naming/{id}", "Get specific config naming.", inPath("id", tInt)),
	op("get_config_naming_examples", TagProfiles, "GET", "/api/v3/config/naming/examples", "Get config naming examples.", inQuery("renameMovies", tBool), inQuery("replaceIllegalCharacters", tBool), inQuery("colonReplacementFormat", tStr), inQuery("standardMovieFormat", tStr), inQuery("movieFolderFormat", tStr), inQuery("id", tInt), inQuery("resourceName", tStr)),
	op("get_notification", TagConfig, "GET", "/api/v3/notification", "Get notification."),
	op("post_notification", TagConfig, "POST", "/api/v3/notification", "Add a new notification.", required(inPayload("data")), inQuery("forceSave", tBool)),
	op("put_notification_id", TagConfig, "PUT", "/api/v3/notification/{id}", "Update notification id.", inPath("id", tInt), required(inPayload("data")), inQuery("forceSave", tBool)),
	op("delete_notification_id", TagConfig, "DELETE", "/api/v3/notification/{id}", "Delete notification id.", inPath("id", tInt)),
	op("get_notification_id", TagConfig, "GET", "/api/v3/notification/{id}", "Get specific notification.", inPath("id", tInt)),
	op("get_notification_schema", TagConfig, "GET", "/api/v3/notification/schema", "Get notification schema."),
	op("post_notification_test", TagConfig, "POST", "/api/v3/notification/test", "Test notification.", required(inPayload("data")), inQuery("forceTest", tBool)),
	op("post_notification_testall", TagConfig, "POST", "/api/v3/notification/testall", "Add a new notification testall."),
	op("post_notification_action_name", TagConfig, "POST", "/api/v3/notification/action/{name}", "Add a new notification action name.", inPath("name", tStr), required(inPayload("data"))),
	op("get_parse", TagOperations, "GET", "/api/v3/parse", "Get parse.", inQuery("title", tStr)),
	op("get_ping", TagSystem, "GET", "/ping", "Get ping."),
	op("put_qualitydefinition_id", TagProfiles, "PUT", "/api/v3/qualitydefinition/{id}", "Update qualitydefinition id.", inPath("id", tStr), required(inPayload("data"))),
	op("get_qualitydefinition_id", TagProfiles, "GET", "/api/v3/qualitydefinition/{id}", "Get specific qualitydefinition.", inPath("id", tInt)),
	op("get_qualitydefinition", TagProfiles, "GET", "/api/v3/qualitydefinition", "Get qualitydefinition."),
	op("put_qualitydefinition_update", TagProfiles, "PUT", "/api/v3/qualitydefinition/update", "Update qualitydefinition update.", required(inPayload("data"))),
	op("get_qualitydefinition_limits", TagProfiles, "GET", "/api/v3/qualitydefinition/limits", "Get qualitydefinition limits."),
	op("post_qualityprofile", TagProfiles, "POST", "/api/v3/qualityprofile", "Add a new qualityprofile.", required(inPayload("data"))),
	op("get_qualityprofile", TagProfiles, "GET", "/api/v3/qualityprofile", "Get qualityprofile."),
	op("delete_qualityprofile_id", TagProfiles, "DELETE", "/api/v3/qualityprofile/{id}", "Delete qualityprofile id.", inPath("id", tInt)),
	op("put_qualityprofile_id", TagProfiles, "PUT", "/api/v3/qualityprofile/{id}", "Update qualityprofile id.", inPath("id", tStr), required(inPayload("data"))),
	op("get_qualityprofile_id", TagProfiles, "GET", "/api/v3/qualityprofile/{id}", "Get specific qualityprofile.", inPath("id", tInt)),
	op("get_qualityprofile_schema", TagProfiles, "GET", "/api/v3/qualityprofile/schema", "Get qualityprofile schema."),
	op("delete_queue_id", TagQueue, "DELETE", "/api/v3/queue/{id}", "Delete queue id.", inPath("id", tInt), inQuery("removeFromClient", tBool), inQuery("blocklist", tBool), inQuery("skipRedownload", tBool), inQuery("changeCategory", tBool)),
	op("delete_queue_bulk", TagQueue, "DELETE", "/api/v3/queue/bulk", "Delete queue bulk.", required(inPayload("data")), inQuery("removeFromClient", tBool), inQuery("blocklist", tBool), inQuery("skipRedownload", tBool), inQuery("changeCategory", tBool)),
	op("get_queue", TagQueue, "GET", "/api/v3/queue", "Get queue.", inQuery("page", tInt), inQuery("pageSize", tInt), inQuery("sortKey", tStr), inQuery("sortDirection", tStr), inQuery("includeUnknownMovieItems", tBool), inQuery("includeMovie", tBool), inQuery("movieIds", tArr), inQuery("protocol", tStr), inQuery("languages", tArr), inQuery("quality", tArr), inQuery("status", tArr)),
	op("post_queue_grab_id", TagQueue, "POST", "/api/v3/queue/grab/{id}", "Get queue.", inPath("id", tInt)),
	op("post_queue_grab_bulk", TagQueue, "POST", "/api/v3/queue/grab/bulk", "Grab queue item.", required(inPayload("data"))),
	op("get_queue_details", TagQueue, "GET", "/api/v3/queue/details", "Bulk grab queue items.", inQuery("movieId", tInt), inQuery("includeMovie", tBool)),
	op("get_queue_status", TagQueue, "GET", "/api/v3/queue/status", "Get queue details."),
	op("post_release", TagDownloads, "POST", "/api/v3/release", "Get queue status.", required(inPayload("data"))),
	op("get_release", TagDownloads, "GET", "/api/v3/release", "Add a release.", inQuery("movieId", tInt)),
	op("post_releaseprofile", TagProfiles, "POST", "/api/v3/releaseprofile", "Get releases.", required(inPayload("data"))),
	op("get_releaseprofile", TagProfiles, "GET", "/api/v3/releaseprofile", "Add a release profile."),
	op("delete_releaseprofile_id", TagProfiles, "DELETE", "/api/v3/releaseprofile/{id}", "Get release profiles.", inPath("id", tInt)),
	op("put_releaseprofile_id", TagProfiles, "PUT", "/api/v3/releaseprofile/{id}", "Delete a release profile.", inPath("id", tStr), required(inPayload("data"))),
	op("get_releaseprofile_id", TagProfiles, "GET", "/api/v3/releaseprofile/{id}", "Update a release profile.", inPath("id", tInt)),
	op("post_release_push", TagDownloads, "POST", "/api/v3/release/push", "Get specific release profile.", required(inPayload("data"))),
	op("post_remotepathmapping", TagConfig, "POST", "/api/v3/remotepathmapping", "Push release.", required(inPayload("data"))),
	op("get_remotepathmapping", TagConfig, "GET", "/api/v3/remotepathmapping", "Add remote path mapping."),
	op("delete_remotepathmapping_id", TagConfig, "DELETE", "/api/v3/remotepathmapping/{id}", "Get remote path mappings.", inPath("id", tInt)),
	op("put_remotepathmapping_id", TagConfig, "PUT", "/api/v3/remotepathmapping/{id}", "Delete remote path mapping.", inPath("id", tStr), required(inPayload("data"))),
	op("get_remotepathmapping_id", TagConfig, "GET", "/api/v3/remotepathmapping/{id}", "Update remote path mapping.", inPath("id", tInt)),
	op("get_rename", TagCatalog, "GET", "/api/v3/rename", "Get specific remote path mapping.", inQuery("movieId", tArr)),
	op("post_rootfolder", TagConfig, "POST", "/api/v3/rootfolder", "Get rename suggestions.", required(inPayload("data"))),
	op("get_rootfolder", TagConfig, "GET", "/api/v3/rootfolder", "Add a new root folder."),
	op("delete_rootfolder_id", TagConfig, "DELETE", "/api/v3/rootfolder/{id}", "Get root folders.", inPath("id", tInt)),
	op("get_rootfolder_id", TagConfig, "GET", "/api/v3/rootfolder/{id}", "Delete a root folder.", inPath("id", tInt)),
	op("get_content_path", TagSystem, "GET", "/content/{path}", "Get specific root folder.", inPath("path", tStr)),
	op("get_", TagSystem, "GET", "/{path}", "Get content path.", inPath("path", tStr)),
	op("get_path", TagSystem, "GET", "/{path}", "Get resource by path.", inPath("path", tStr)),
	op("get_system_status", TagSystem, "GET", "/api/v3/system/status", "Get system paths."),
	op("get_system_routes", TagSystem, "GET", "/api/v3/system/routes", "Get system routes."),
	op("get_system_routes_duplicate", TagSystem, "GET", "/api/v3/system/routes/duplicate", "Get duplicate system routes."),
	op("post_system_shutdown", TagSystem, "POST", "/api/v3/system/shutdown", "Trigger system shutdown."),
	op("post_system_restart", TagSystem, "POST", "/api/v3/system/restart", "Trigger system restart."),
	op("get_tag", TagSystem, "GET", "/api/v3/tag", "Retrieve details for a specific system task."),
	op("post_tag", TagSystem, "POST", "/api/v3/tag", "Retrieve logs for system tasks.", required(inPayload("data"))),
	op("put_tag_id", TagSystem, "PUT", "/api/v3/tag/{id}", "Retrieve logs for a specific system task.", inPath("id", tStr), required(inPayload("data"))),
	op("delete_tag_id", TagSystem, "DELETE", "/api/v3/tag/{id}", "Retrieve detail logs for a specific system task.", inPath("id", tInt)),
	op("get_tag_id", TagSystem, "GET", "/api/v3/tag/{id}", "Retrieve all movies in the collection.", inPath("id", tInt)),
	op("get_tag_detail", TagSystem, "GET", "/api/v3/tag/detail", "Check if a movie exists in the collection."),
	op("get_tag_detail_id", TagSystem, "GET", "/api/v3/tag/detail/{id}", "Retrieve information about a movie file.", inPath("id", tInt)),
	op("get_system_task", TagSystem, "GET", "/api/v3/system/task", "Retrieve all movie files for a specific movie."),
	op("get_system_task_id", TagSystem, "GET", "/api/v3/system/task/{id}", "Delete a movie file from Radarr.", inPath("id", tInt)),
	op("put_config_ui_id", TagSystem, "PUT", "/api/v3/config/ui/{id}", "Bulk update metadata for multiple movie files.", inPath("id", tStr), required(inPayload("data"))),
	op("get_config_ui_id", TagSystem, "GET", "/api/v3/config/ui/{id}", "Bulk delete multiple movie files.", inPath("id", tInt)),
	op("get_config_ui", TagSystem, "GET", "/api/v3/config/ui", "Retrieve information about movie import lists."),
	op("get_update", TagSystem, "GET", "/api/v3/update", "Retrieve details for a specific import list."),
	op("get_log_file_update", TagSystem, "GET", "/api/v3/log/file/update", "Retrieve all defined import lists."),
	op("get_log_file_update_filename", TagSystem, "GET", "/api/v3/log/file/update/{filename}", "Create a new import list.", inPath("filename", tStr)),
}
