package arr

import "arr-mcp/internal/domain"

var sonarrOperations = []domain.Operation{
	op("lookup_series", TagCatalog, "GET", "/api/v3/series/lookup", "Search for a series using the lookup endpoint.", describe(required(inQuery("term", tStr)), "Search term for the series")),
	op("add_series", TagCatalog, "POST", "/api/v3/series", "Lookup a series by term, pick the first result, and add it to Sonarr.", describe(required(arg("term", tStr)), "Search term for the series"), describe(required(arg("root_folder_path", tStr)), "Root folder path for the series"), describe(required(arg("quality_profile_id", tInt)), "Quality profile ID for the series"), describe(withDefault(arg("monitored", tBool), true), "Monitor the series"), describe(withDefault(arg("search_for_missing_episodes", tBool), true), "Search for missing episodes immediately")),
	op("get_api", TagSystem, "GET", "/api", "Get the base API information for Sonarr."),
	op("post_login", TagSystem, "POST", "/login", "Perform a login operation.", inQuery("returnUrl", tStr)),
	op("get_login", TagSystem, "GET", "/login", "Check the current login status."),
	op("get_logout", TagSystem, "GET", "/logout", "Perform a logout operation."),
	op("post_autotagging", TagOperations, "POST", "/api/v3/autotagging", "Perform a logout operation.", required(inPayload("data"))),
	op("get_autotagging", TagOperations, "GET", "/api/v3/autotagging", "Add a new auto-tagging configuration."),
	op("put_autotagging_id", TagOperations, "PUT", "/api/v3/autotagging/{id}", "Retrieve all auto-tagging configurations.", inPath("id", tStr), required(inPayload("data"))),
	op("delete_autotagging_id", TagOperations, "DELETE", "/api/v3/autotagging/{id}", "Update an existing auto-tagging configuration by its ID.", inPath("id", tInt)),
	op("get_autotagging_id", TagOperations, "GET", "/api/v3/autotagging/{id}", "Delete an auto-tagging configuration.", inPath("id", tInt)),
	op("get_autotagging_schema", TagOperations, "GET", "/api/v3/autotagging/schema", "Get details for an auto-tagging configuration by ID."),
	op("get_system_backup", TagSystem, "GET", "/api/v3/system/backup", "Get the schema for auto-tagging configurations."),
	op("delete_system_backup_id", TagSystem, "DELETE", "/api/v3/system/backup/{id}", "Get the current system backup information.", inPath("id", tInt)),
	op("post_system_backup_restore_id", TagSystem, "POST", "/api/v3/system/backup/restore/{id}", "Delete a system backup by its ID.", inPath("id", tInt)),
	op("post_system_backup_restore_upload", TagSystem, "POST", "/api/v3/system/backup/restore/upload", "Restore Sonarr from a specific backup ID."),
	op("get_blocklist", TagQueue, "GET", "/api/v3/blocklist", "Upload and restore a Sonarr backup archive.", inQuery("page", tInt), inQuery("pageSize", tInt), inQuery("sortKey", tStr), inQuery("sortDirection", tStr), inQuery("seriesIds", tArr), inQuery("protocols", tArr)),
	op("delete_blocklist_id", TagQueue, "DELETE", "/api/v3/blocklist/{id}", "Retrieve a paginated list of items in the blocklist.", inPath("id", tInt)),
	op("delete_blocklist_bulk", TagQueue, "DELETE", "/api/v3/blocklist/bulk", "Remove an item from the blocklist by its ID.", required(inPayload("data"))),
	op("get_calendar", TagOperations, "GET", "/api/v3/calendar", "Bulk removal of items from the blocklist.", inQuery("start", tStr), inQuery("end", tStr), inQuery("unmonitored", tBool), inQuery("includeSeries", tBool), inQuery("includeEpisodeFile", tBool), inQuery("includeEpisodeImages", tBool), inQuery("tags", tStr)),
	op("get_calendar_id", TagOperations, "GET", "/api/v3/calendar/{id}", "Retrieve calendar events for a given time range.", inPath("id", tInt)),
	op("get_feed_v3_calendar_sonarrics", TagOperations, "GET", "/feed/v3/calendar/sonarr.ics", "Retrieve a specific calendar event by its ID.", inQuery("pastDays", tInt), inQuery("futureDays", tInt), inQuery("tags", tStr), inQuery("unmonitored", tBool), inQuery("premieresOnly", tBool), inQuery("asAllDay", tBool)),
	op("post_command", TagOperations, "POST", "/api/v3/command", "Retrieve the calendar feed in iCal format.", required(inPayload("data"))),
	op("get_command", TagOperations, "GET", "/api/v3/command", "Check the current health status of Sonarr."),
	op("delete_command_id", TagOperations, "DELETE", "/api/v3/command/{id}", "Retrieve the schema for health status information.", inPath("id", tInt)),
	op("get_command_id", TagOperations, "GET", "/api/v3/command/{id}", "Retrieve Sonarr activity history.", inPath("id", tInt)),
	op("get_customfilter", TagProfiles, "GET", "/api/v3/customfilter", "Retrieve activity history for a specific series."),
	op("post_customfilter", TagProfiles, "POST", "/api/v3/customfilter", "Delete a history item by its ID.", required(inPayload("data"))),
	op("put_customfilter_id", TagProfiles, "PUT", "/api/v3/customfilter/{id}", "Mark a history item as failed.", inPath("id", tStr), required(inPayload("data"))),
	op("delete_customfilter_id", TagProfiles, "DELETE", "/api/v3/customfilter/{id}", "Delete a custom filter by its ID.", inPath("id", tInt)),
	op("get_customfilter_id", TagProfiles, "GET", "/api/v3/customfilter/{id}", "Retrieve details for a specific custom filter by its ID.", inPath("id", tInt)),
	op("get_customformat", TagProfiles, "GET", "/api/v3/customformat", "Retrieve all defined custom formats."),
	op("post_customformat", TagProfiles, "POST", "/api/v3/customformat", "Create a new custom format.", required(inPayload("data"))),
	op("put_customformat_id", TagProfiles, "PUT", "/api/v3/customformat/{id}", "Update an existing custom format by its ID.", inPath("id", tStr), required(inPayload("data"))),
	op("delete_customformat_id", TagProfiles, "DELETE", "/api/v3/customformat/{id}", "Delete a custom format by its ID.", inPath("id", tInt)),
	op("get_customformat_id", TagProfiles, "GET", "/api/v3/customformat/{id}", "Retrieve a specific custom format by its ID.", inPath("id", tInt)),
	op("put_customformat_bulk", TagProfiles, "PUT", "/api/v3/customformat/bulk", "Bulk update multiple custom formats.", required(inPayload("data"))),
	op("delete_customformat_bulk", TagProfiles, "DELETE", "/api/v3/customformat/bulk", "Bulk delete multiple custom formats.", required(inPayload("data"))),
	op("get_customformat_schema", TagProfiles, "GET", "/api/v3/customformat/schema", "Retrieve the configuration schema for custom formats."),
	op("get_wanted_cutoff", TagProfiles, "GET", "/api/v3/wanted/cutoff", "Retrieve episodes that have not reached their quality cutoff.", inQuery("page", tInt), inQuery("pageSize", tInt), inQuery("sortKey", tStr), inQuery("sortDirection", tStr), inQuery("includeSeries", tBool), inQuery("includeEpisodeFile", tBool), inQuery("includeImages", tBool), inQuery("monitored", tBool)),
	op("get_wanted_cutoff_id", TagProfiles, "GET", "/api/v3/wanted/cutoff/{id}", "Retrieve a specific wanted cutoff detailed info.", inPath("id", tInt)),
	op("post_delayprofile", TagProfiles, "POST", "/api/v3/delayprofile", "Add a new delay profile.", required(inPayload("data"))),
	op("get_delayprofile", TagProfiles, "GET", "/api/v3/delayprofile", "Retrieve all delay profiles."),
	op("delete_delayprofile_id", TagProfiles, "DELETE", "/api/v3/delayprofile/{id}", "Retrieve details for a specific delay profile by ID.", inPath("id", tInt)),
	op("put_delayprofile_id", TagProfiles, "PUT", "/api/v3/delayprofile/{id}", "Update an existing delay profile configuration.", inPath("id", tStr), required(inPayload("data"))),
	op("get_delayprofile_id", TagProfiles, "GET", "/api/v3/delayprofile/{id}", "Delete a delay profile from Sonarr.", inPath("id", tInt)),
	op("put_delayprofile_reorder_id", TagProfiles, "PUT", "/api/v3/delayprofile/reorder/{id}", "Add a new delay profile.", inPath("id", tInt), inQuery("after", tInt)),
	op("get_diskspace", TagSystem, "GET", "/api/v3/diskspace", "Retrieve all configured delay profiles."),
	op("get_downloadclient", TagDownloads, "GET", "/api/v3/downloadclient", "Retrieve information about available disk space."),
	op("post_downloadclient", TagDownloads, "POST", "/api/v3/downloadclient", "Retrieve details for a specific download client by ID.", required(inPayload("data")), inQuery("forceSave", tBool)),
	op("put_downloadclient_id", TagDownloads, "PUT", "/api/v3/downloadclient/{id}", "Update an existing download client configuration.", inPath("id", tInt), required(inPayload("data")), inQuery("forceSave", tBool)),
	op("delete_downloadclient_id", TagDownloads, "DELETE", "/api/v3/downloadclient/{id}", "Delete a download client from Sonarr.", inPath("id", tInt)),
	op("get_downloadclient_id", TagDownloads, "GET", "/api/v3/downloadclient/{id}", "Retrieve all configured download clients.", inPath("id", tInt)),
	op("put_downloadclient_bulk", TagDownloads, "PUT", "/api/v3/downloadclient/bulk", "Add a new download client to Sonarr.", required(inPayload("data"))),
	op("delete_downloadclient_bulk", TagDownloads, "DELETE", "/api/v3/downloadclient/bulk", "Bulk update multiple download clients.", required(inPayload("data"))),
	op("get_downloadclient_schema", TagDownloads, "GET", "/api/v3/downloadclient/schema", "Bulk delete multiple download clients."),
	op("post_downloadclient_test", TagDownloads, "POST", "/api/v3/downloadclient/test", "Retrieve the configuration schema for download clients.", required(inPayload("data")), inQuery("forceTest", tBool)),
	op("post_downloadclient_testall", TagDownloads, "POST", "/api/v3/downloadclient/testall", "Test a download client configuration."),
	op("post_downloadclient_action_name", TagDownloads, "POST", "/api/v3/downloadclient/action/{name}", "Test all configured download clients.", inPath("name", tStr), required(inPayload("data"))),
	op("get_config_downloadclient", TagDownloads, "GET", "/api/v3/config/downloadclient", "Perform an action on a download client."),
	op("put_config_downloadclient_id", TagDownloads, "PUT", "/api/v3/config/downloadclient/{id}", "Retrieve download client configuration by ID.", inPath("id", tStr), required(inPayload("data"))),
	op("get_config_downloadclient_id", TagDownloads, "GET", "/api/v3/config/downloadclient/{id}", "Update download client configuration by ID.", inPath("id", tInt)),
	op("get_episode", TagCatalog, "GET", "/api/v3/episode", "Retrieve all download client configurations.", inQuery("seriesId", tInt), inQuery("seasonNumber", tInt), inQuery("episodeIds", tArr), inQuery("episodeFileId", tInt), inQuery("includeSeries", tBool), inQuery("includeEpisodeFile", tBool), inQuery("includeImages", tBool)),
	op("put_episode_id", TagCatalog, "PUT", "/api/v3/episode/{id}", "Retrieve details for a specific episode by ID.", inPath("id", tInt), required(inPayload("data"))),
	op("get_episode_id", TagCatalog, "GET", "/api/v3/episode/{id}", "Update an existing episode by its ID.", inPath("id", tInt)),
	op("put_episode_monitor", TagCatalog, "PUT", "/api/v3/episode/monitor", "Retrieve all episodes for a specific series.", required(inPayload("data")), inQuery("includeImages", tBool)),
	op("get_episodefile", TagCatalog, "GET", "/api/v3/episodefile", "Update the monitoring status of multiple episodes.", inQuery("seriesId", tInt), inQuery("episodeFileIds", tArr)),
	op("put_episodefile_id", TagCatalog, "PUT", "/api/v3/episodefile/{id}", "Monitor multiple episodes.", inPath("id", tStr), required(inPayload("data"))),
	op("delete_episodefile_id", TagCatalog, "DELETE", "/api/v3/episodefile/{id}", "Retrieve details for a specific episode file by ID.", inPath("id", tInt)),
	op("get_episodefile_id", TagCatalog, "GET", "/api/v3/episodefile/{id}", "Delete an episode file from Sonarr.", inPath("id", tInt)),
	op("put_episodefile_editor", TagCatalog, "PUT", "/api/v3/episodefile/editor", "Update metadata for a specific episode file.", required(inPayload("data"))),
	op("delete_episodefile_bulk", TagCatalog, "DELETE", "/api/v3/episodefile/bulk", "Retrieve all episode files for a specific series.", required(inPayload("data"))),
	op("put_episodefile_bulk", TagCatalog, "PUT", "/api/v3/episodefile/bulk", "Bulk update multiple episode files.", required(inPayload("data"))),
	op("get_filesystem", TagSystem, "GET", "/api/v3/filesystem", "Bulk delete multiple episode files.", inQuery("path", tStr), inQuery("includeFiles", tBool), inQuery("allowFoldersWithoutTrailingSlashes", tBool)),
	op("get_filesystem_type", TagSystem, "GET", "/api/v3/filesystem/type", "Browse the local filesystem.", inQuery("path", tStr)),
	op("get_filesystem_mediafiles", TagSystem, "GET", "/api/v3/filesystem/mediafiles", "Get information about a specific filesystem path.", inQuery("path", tStr)),
	op("get_health", TagSystem, "GET", "/api/v3/health", "Retrieve media information for a specific file path."),
	op("get_history", TagHistory, "GET", "/api/v3/history", "Retrieve details for a specific import list by ID.", inQuery("page", tInt), inQuery("pageSize", tInt), inQuery("sortKey", tStr), inQuery("sortDirection", tStr), inQuery("includeSeries", tBool), inQuery("includeEpisode", tBool), inQuery("eventType", tArr), inQuery("episodeId", tInt), inQuery("downloadId", tStr), inQuery("seriesIds", tArr), inQuery("languages", tArr), inQuery("quality", tArr)),
	op("get_history_since", TagHistory, "GET", "/api/v3/history/since", "Update an existing import list configuration.", inQuery("date", tStr), inQuery("eventType", tStr), inQuery("includeSeries", tBool), inQuery("includeEpisode", tBool)),
	op("get_history_series", TagHistory, "GET", "/api/v3/history/series", "Delete an import list from Sonarr.", inQuery("seriesId", tInt), inQuery("seasonNumber", tInt), inQuery("eventType", tStr), inQuery("includeSeries", tBool), inQuery("includeEpisode", tBool)),
	op("post_history_failed_id", TagHistory, "POST", "/api/v3/history/failed/{id}", "Retrieve all configured import lists.", inPath("id", tInt)),
	op("get_config_host", TagSystem, "GET", "/api/v3/config/host", "Add a new import list to Sonarr."),
	op("put_config_host_id", TagSystem, "PUT", "/api/v3/config/host/{id}", "Retrieve the configuration schema for import lists.", inPath("id", tStr), required(inPayload("data"))),
	op("get_config_host_id", TagSystem, "GET", "/api/v3/config/host/{id}", "Test an import list configuration.", inPath("id", tInt)),
	op("get_importlist", TagDownloads, "GET", "/api/v3/importlist", "Test all configured import lists."),
	op("post_importlist", TagDownloads, "POST", "/api/v3/importlist", "Perform an action on an import list.", required(inPayload("data")), inQuery("forceSave", tBool)),
	op("put_importlist_id", TagDownloads, "PUT", "/api/v3/importlist/{id}", "Retrieve host configuration settings by ID.", inPath("id", tInt), required(inPayload("data")), inQuery("forceSave", tBool)),
	op("delete_importlist_id", TagDownloads, "DELETE", "/api/v3/importlist/{id}", "Update host configuration settings by ID.", inPath("id", tInt)),
	op("get_importlist_id", TagDownloads, "GET", "/api/v3/importlist/{id}", "Retrieve all host configuration settings.", inPath("id", tInt)),
	op("put_importlist_bulk", TagDownloads, "PUT", "/api/v3/importlist/bulk", "Retrieve details for a specific indexer by ID.", required(inPayload("data"))),
	op("delete_importlist_bulk", TagDownloads, "DELETE", "/api/v3/importlist/bulk", "Update an existing indexer configuration by ID.", required(inPayload("data"))),
	op("get_importlist_schema", TagDownloads, "GET", "/api/v3/importlist/schema", "Delete an indexer from Sonarr."),
	op("post_importlist_test", TagDownloads, "POST", "/api/v3/importlist/test", "Retrieve all configured indexers.", required(inPayload("data")), inQuery("forceTest", tBool)),
	op("post_importlist_testall", TagDownloads, "POST", "/api/v3/importlist/testall", "Add a new indexer to Sonarr."),
	op("post_importlist_action_name", TagDownloads, "POST", "/api/v3/importlist/action/{name}", "Bulk update multiple indexer configurations.", inPath("name", tStr), required(inPayload("data"))),
	op("get_config_importlist", TagDownloads, "GET", "/api/v3/config/importlist", "Bulk delete multiple indexers."),
	op("put_config_importlist_id", TagDownloads, "PUT", "/api/v3/config/importlist/{id}", "Retrieve the configuration schema for indexers.", inPath("id", tStr), required(inPayload("data"))),
	op("get_config_importlist_id", TagDownloads, "GET", "/api/v3/config/importlist/{id}", "Test an indexer configuration.", inPath("id", tInt)),
	op("get_importlistexclusion", TagDownloads, "GET", "/api/v3/importlistexclusion", "Test all configured indexers."),
	op("post_importlistexclusion", TagDownloads, "POST", "/api/v3/importlistexclusion", "Perform an action on an indexer.", required(inPayload("data"))),
	op("get_importlistexclusion_paged", TagDownloads, "GET", "/api/v3/importlistexclusion/paged", "Retrieve indexer configuration details by ID.", inQuery("page", tInt), inQuery("pageSize", tInt), inQuery("sortKey", tStr), inQuery("sortDirection", tStr)),
	op("put_importlistexclusion_id", TagDownloads, "PUT", "/api/v3/importlistexclusion/{id}", "Update indexer configuration details by ID.", inPath("id", tStr), required(inPayload("data"))),
	op("delete_importlistexclusion_id", TagDownloads, "DELETE", "/api/v3/importlistexclusion/{id}", "Retrieve all indexer configuration settings.", inPath("id", tInt)),
	op("get_importlistexclusion_id", TagDownloads, "GET", "/api/v3/importlistexclusion/{id}", "Retrieve details for a specific metadata profile by ID.", inPath("id", tInt)),
	op("delete_importlistexclusion_bulk", TagDownloads, "DELETE", "/api/v3/importlistexclusion/bulk", "Update an existing metadata profile configuration.", required(inPayload("data"))),
	op("get_indexer", TagIndexer, "GET", "/api/v3/indexer", "Delete a metadata profile from Sonarr."),
	op("post_indexer", TagIndexer, "POST", "/api/v3/indexer", "Retrieve all defined metadata profiles.", required(inPayload("data")), inQuery("forceSave", tBool)),
	op("put_indexer_id", TagIndexer, "PUT", "/api/v3/indexer/{id}", "Create a new metadata profile.", inPath("id", tInt), required(inPayload("data")), inQuery("forceSave", tBool)),
	op("delete_indexer_id", TagIndexer, "DELETE", "/api/v3/indexer/{id}", "Retrieve the configuration schema for metadata profiles.", inPath("id", tInt)),
	op("get_indexer_id", TagIndexer, "GET", "/api/v3/indexer/{id}", "Retrieve naming configuration by ID.", inPath("id", tInt)),
	op("put_indexer_bulk", TagIndexer, "PUT", "/api/v3/indexer/bulk", "Update naming configuration by ID.", required(inPayload("data"))),
	op("delete_indexer_bulk", TagIndexer, "DELETE", "/api/v3/indexer/bulk", "Retrieve all naming configurations.", required(inPayload("data"))),
	op("get_indexer_schema", TagIndexer, "GET", "/api/v3/indexer/schema", "Retrieve details for a specific notification by ID."),
	op("post_indexer_test", TagIndexer, "POST", "/api/v3/indexer/test", "Update an existing notification configuration.", required(inPayload("data")), inQuery("forceTest", tBool)),
	op("post_indexer_testall", TagIndexer, "POST", "/api/v3/indexer/testall", "Delete a notification from Sonarr."),
	op("post_indexer_action_name", TagIndexer, "POST", "/api/v3/indexer/action/{name}", "Retrieve all configured notifications.", inPath("name", tStr), required(inPayload("data"))),
	op("get_config_indexer", TagIndexer, "GET", "/api/v3/config/indexer", "Test a notification configuration."),
	op("put_config_indexer_id", TagIndexer, "PUT", "/api/v3/config/indexer/{id}", "Test all configured notifications.", inPath("id", tStr), required(inPayload("data"))),
	op("get_config_indexer_id", TagIndexer, "GET", "/api/v3/config/indexer/{id}", "Perform an action on a notification.", inPath("id", tInt)),
	op("get_indexerflag", TagIndexer, "GET", "/api/v3/indexerflag", "Parse series information from a string."),
	op("get_language", TagProfiles, "GET", "/api/v3/language", "Parse episode information from a string."),
	op("get_language_id", TagProfiles, "GET", "/api/v3/language/{id}", "Retrieve details for a specific quality definition by ID.", inPath("id", tInt)),
	op("post_languageprofile", TagProfiles, "POST", "/api/v3/languageprofile", "Update an existing quality definition configuration.", required(inPayload("data"))),
	op("get_languageprofile", TagProfiles, "GET", "/api/v3/languageprofile", "Retrieve all defined quality definitions."),
	op("delete_languageprofile_id", TagProfiles, "DELETE", "/api/v3/languageprofile/{id}", "Bulk update multiple quality definitions.", inPath("id", tInt)),
	op("put_languageprofile_id", TagProfiles, "PUT", "/api/v3/languageprofile/{id}", "Retrieve the configuration schema for quality definitions.", inPath("id", tStr), required(inPayload("data"))),
	op("get_languageprofile_id", TagProfiles, "GET", "/api/v3/languageprofile/{id}", "Retrieve details for a specific quality profile by ID.", inPath("id", tInt)),
	op("get_languageprofile_schema", TagProfiles, "GET", "/api/v3/languageprofile/schema", "Update an existing quality profile configuration."),
	op("get_localization", TagSystem, "GET", "/api/v3/localization", "Delete a quality profile from Sonarr."),
	op("get_localization_language", TagSystem, "GET", "/api/v3/localization/language", "Retrieve all defined quality profiles."),
	op("get_localization_id", TagSystem, "GET", "/api/v3/localization/{id}", "Create a new quality profile.", inPath("id", tInt)),
	op("get_log", TagSystem, "GET", "/api/v3/log", "Retrieve the configuration schema for quality profiles.", inQuery("page", tInt), inQuery("pageSize", tInt), inQuery("sortKey", tStr), inQuery("sortDirection", tStr), inQuery("level", tStr)),
	op("get_log_file", TagSystem, "GET", "/api/v3/log/file", "Retrieve the current download queue."),
	op("get_log_file_filename", TagSystem, "GET", "/api/v3/log/file/{filename}", "Retrieve detailed information about the download queue.", inPath("filename", tStr)),
	op("get_manualimport", TagDownloads, "GET", "/api/v3/manualimport", "Retrieve the status of the download queue.", inQuery("folder", tStr), inQuery("downloadId", tStr), inQuery("seriesId", tInt), inQuery("seasonNumber", tInt), inQuery("filterExistingFiles", tBool)),
	op("post_manualimport", TagDownloads, "POST", "/api/v3/manualimport", "Retrieve the schema for the download queue.", required(inPayload("data"))),
	op("get_mediacover_series_id_filename", TagCatalog, "GET", "/api/v3/mediacover/{seriesId}/{filename}", "Manually grab an item from the queue by its ID.", inPath("seriesId", tInt), inPath("filename", tStr)),
	op("get_config_mediamanagement", TagProfiles, "GET", "/api/v3/config/mediamanagement", "Remove an item from the download queue."),
	op("put_config_mediamanagement_id", TagProfiles, "PUT", "/api/v3/config/mediamanagement/{id}", "Bulk removal of items from the download queue.", inPath("id", tStr), required(inPayload("data"))),
	op("get_config_mediamanagement_id", TagProfiles, "GET", "/api/v3/config/mediamanagement/{id}", "Perform an action on the download queue.", inPath("id", tInt)),
	op("get_metadata", TagCatalog, "GET", "/api/v3/metadata", "Retrieve available releases."),
	op("post_metadata", TagCatalog, "POST", "/api/v3/metadata", "Manually grab a specific release.", required(inPayload("data")), inQuery("forceSave", tBool)),
	op("put_metadata_id", TagCatalog, "PUT", "/api/v3/metadata/{id}", "Retrieve details for pushed releases.", inPath("id", tInt), required(inPayload("data")), inQuery("forceSave", tBool)),
	op("delete_metadata_id", TagCatalog, "DELETE", "/api/v3/metadata/{id}", "Push a new release for processing.", inPath("id", tInt)),
	op("get_metadata_id", TagCatalog, "GET", "/api/v3/metadata/{id}", "Retrieve remote path mapping configurations.", inPath("id", tInt)),
	op("get_metadata_schema", TagCatalog, "GET", "/api/v3/metadata/schema", "Retrieve file rename information."),
	op("post_metadata_test", TagCatalog, "POST", "/api/v3/metadata/test", "Execute a file rename operation.", required(inPayload("data")), inQuery("forceTest", tBool)),
	op("post_metadata_testall", TagCatalog, "POST", "/api/v3/metadata/testall", "Retrieve rename information for a specific series."),
	op("post_metadata_action_name", TagCatalog, "POST", "/api/v3/metadata/action/{name}", "Retrieve details for a specific restriction by ID.", inPath("name", tStr), required(inPayload("data"))),
	op("get_wanted_missing", TagCatalog, "GET", "/api/v3/wanted/missing", "Update an existing restriction configuration.", inQuery("page", tInt), inQuery("pageSize", tInt), inQuery("sortKey", tStr), inQuery("sortDirection", tStr), inQuery("includeSeries", tBool), inQuery("includeImages", tBool), inQuery("monitored", tBool)),
	op("get_wanted_missing_id", TagCatalog, "GET", "/api/v3/wanted/missing/{id}", "Delete a restriction from Sonarr.", inPath("id", tInt)),
	op("get_config_naming", TagProfiles, "GET", "/api/v3/config/naming", "Retrieve all defined restrictions."),
	op("put_config_naming_id", TagProfiles, "PUT", "/api/v3/config/naming/{id}", "Add a new restriction configuration.", inPath("id", tStr), required(inPayload("data"))),
	op("get_config_naming_id", TagProfiles, "GET", "/api/v3/config/naming/{id}", "Retrieve details for a specific root folder by ID.", inPath("id", tInt)),
	op("get_config_naming_examples", TagProfiles, "GET", "/api/v3/config/naming/examples", "Delete a root folder from Sonarr.", inQuery("renameEpisodes", tBool), inQuery("replaceIllegalCharacters", tBool), inQuery("colonReplacementFormat", tInt), inQuery("customColonReplacementFormat", tStr), inQuery("multiEpisodeStyle", tInt), inQuery("standardEpisodeFormat", tStr), inQuery("dailyEpisodeFormat", tStr), inQuery("animeEpisodeFormat", tStr), inQuery("seriesFolderFormat", tStr), inQuery("seasonFolderFormat", tStr), inQuery("specialsFolderFormat", tStr), inQuery("id", tInt), inQuery("resourceName", tStr)),
	op("get_notification", TagConfig, "GET", "/api/v3/notification", "Retrieve all configured root folders."),
	op("post_notification", TagConfig, "POST", "/api/v3/notification", "Retrieve details for a specific tag by ID.", required(inPayload("data")), inQuery("forceSave", tBool)),
	op("put_notification_id", TagConfig, "PUT", "/api/v3/notification/{id}", "Update an existing tag.", inPath("id", tInt), required(inPayload("data")), inQuery("forceSave", tBool)),
	op("delete_notification_id", TagConfig, "DELETE", "/api/v3/notification/{id}", "Delete a tag from Sonarr.", inPath("id", tInt)),
	op("get_notification_id", TagConfig, "GET", "/api/v3/notification/{id}", "Retrieve all defined tags.", inPath("id", tInt)),
	op("get_notification_schema", TagConfig, "GET", "/api/v3/notification/schema", "Add a new tag to Sonarr."),
	op("post_notification_test", TagConfig, "POST", "/api/v3/notification/test", "Retrieve details for a specific tag by ID, including its usage.", required(inPayload("data")), inQuery("forceTest", tBool)),
	op("post_notification_testall", TagConfig, "POST", "/api/v3/notification/testall", "Retrieve details for all tags, including their usage."),
	op("post_notification_action_name", TagConfig, "POST", "/api/v3/notification/action/{name}", "Retrieve episodes that are missing from the collection.", inPath("name", tStr), required(inPayload("data"))),
	op("get_parse", TagOperations, "GET", "/api/v3/parse", "Retrieve episodes that have not reached their quality cutoff.", inQuery("title", tStr), inQuery("path", tStr)),
	op("get_ping", TagSystem, "GET", "/ping", "Search for series matching a specific term."),
	op("put_qualitydefinition_id", TagProfiles, "PUT", "/api/v3/qualitydefinition/{id}", "Import a series into Sonarr.", inPath("id", tStr), required(inPayload("data"))),
	op("get_qualitydefinition_id", TagProfiles, "GET", "/api/v3/qualitydefinition/{id}", "Retrieve detailed info for a missing episode by ID.", inPath("id", tInt)),
	op("get_qualitydefinition", TagProfiles, "GET", "/api/v3/qualitydefinition", "Retrieve detailed info for a wanted cutoff episode by ID."),
	op("put_qualitydefinition_update", TagProfiles, "PUT", "/api/v3/qualitydefinition/update", "Retrieve information about available manual imports.", required(inPayload("data"))),
	op("get_qualitydefinition_limits", TagProfiles, "GET", "/api/v3/qualitydefinition/limits", "Retrieve manual import details by ID."),
	op("post_qualityprofile", TagProfiles, "POST", "/api/v3/qualityprofile", "Retrieve detailed information about a specific manual import.", required(inPayload("data"))),
	op("get_qualityprofile", TagProfiles, "GET", "/api/v3/qualityprofile", "Execute a manual import operation."),
	op("delete_qualityprofile_id", TagProfiles, "DELETE", "/api/v3/qualityprofile/{id}", "Retrieve developer configuration settings by ID.", inPath("id", tInt)),
	op("put_qualityprofile_id", TagProfiles, "PUT", "/api/v3/qualityprofile/{id}", "Update developer configuration settings by ID.", inPath("id", tStr), required(inPayload("data"))),
	op("get_qualityprofile_id", TagProfiles, "GET", "/api/v3/qualityprofile/{id}", "Retrieve all developer configuration settings.", inPath("id", tInt)),
	op("get_qualityprofile_schema", TagProfiles, "GET", "/api/v3/qualityprofile/schema", "Retrieve available releases."),
	op("delete_queue_id", TagQueue, "DELETE", "/api/v3/queue/{id}", "Retrieve information about the system.", inPath("id", tInt), inQuery("removeFromClient", tBool), inQuery("blocklist", tBool), inQuery("skipRedownload", tBool), inQuery("changeCategory", tBool)),
	op("delete_queue_bulk", TagQueue, "DELETE", "/api/v3/queue/bulk", "Retrieve system status information.", required(inPayload("data")), inQuery("removeFromClient", tBool), inQuery("blocklist", tBool), inQuery("skipRedownload", tBool), inQuery("changeCategory", tBool)),
	op("get_queue", TagQueue, "GET", "/api/v3/queue", "Retrieve details for a specific update by ID.", inQuery("page", tInt), inQuery("pageSize", tInt), inQuery("sortKey", tStr), inQuery("sortDirection", tStr), inQuery("includeUnknownSeriesItems", tBool), inQuery("includeSeries", tBool), inQuery("includeEpisode", tBool), inQuery("seriesIds", tArr), inQuery("protocol", tStr), inQuery("languages", tArr), inQuery("quality", tArr), inQuery("status", tArr)),
	op("post_queue_grab_id", TagQueue, "POST", "/api/v3/queue/grab/{id}", "Retrieve all available system updates.", inPath("id", tInt)),
	op("post_queue_grab_bulk", TagQueue, "POST", "/api/v3/queue/grab/bulk", "Execute a system update.", required(inPayload("data"))),
	op("get_queue_details", TagQueue, "GET", "/api/v3/queue/details", "Retrieve system logs.", inQuery("seriesId", tInt), inQuery("episodeIds", tArr), inQuery("includeSeries", tBool), inQuery("includeEpisode", tBool)),
	op("get_queue_status", TagQueue, "GET", "/api/v3/queue/status", "Retrieve list of log files."),
	op("post_release", TagDownloads, "POST", "/api/v3/release", "Retrieve details for a specific log file by ID.", required(inPayload("data"))),
	op("get_release", TagDownloads, "GET", "/api/v3/release", "Retrieve contents of a specific log file.", inQuery("seriesId", tInt), inQuery("episodeId", tInt), inQuery("seasonNumber", tInt)),
	op("post_releaseprofile", TagProfiles, "POST", "/api/v3/releaseprofile", "Add a new releaseprofile.", required(inPayload("data"))),
	op("get_releaseprofile", TagProfiles, "GET", "/api/v3/releaseprofile", "Get releaseprofile."),
	op("delete_releaseprofile_id", TagProfiles, "DELETE", "/api/v3/releaseprofile/{id}", "Delete releaseprofile id.", inPath("id", tInt)),
	op("put_releaseprofile_id", TagProfiles, "PUT", "/api/v3/releaseprofile/{id}", "Update releaseprofile id.", inPath("id", tStr), required(inPayload("data"))),
	op("get_releaseprofile_id", TagProfiles, "GET", "/api/v3/releaseprofile/{id}", "Get specific releaseprofile.", inPath("id", tInt)),
	op("post_release_push", TagDownloads, "POST", "/api/v3/release/push", "Add a new release push.", required(inPayload("data"))),
	op("post_remotepathmapping", TagConfig, "POST", "/api/v3/remotepathmapping", "Add a new remotepathmapping.", required(inPayload("data"))),
	op("get_remotepathmapping", TagConfig, "GET", "/api/v3/remotepathmapping", "Retrieve detailed queue status."),
	op("delete_remotepathmapping_id", TagConfig, "DELETE", "/api/v3/remotepathmapping/{id}", "Delete remotepathmapping id.", inPath("id", tInt)),
	op("put_remotepathmapping_id", TagConfig, "PUT", "/api/v3/remotepathmapping/{id}", "Retrieve queue configuration schema.", inPath("id", tStr), required(inPayload("data"))),
	op("get_remotepathmapping_id", TagConfig, "GET", "/api/v3/remotepathmapping/{id}", "Retrieve the current download queue.", inPath("id", tInt)),
	op("get_rename", TagCatalog, "GET", "/api/v3/rename", "Get rename.", inQuery("seriesId", tInt), inQuery("seasonNumber", tInt)),
	op("post_rootfolder", TagConfig, "POST", "/api/v3/rootfolder", "Add a new root folder.", required(inPayload("data"))),
	op("get_rootfolder", TagConfig, "GET", "/api/v3/rootfolder", "Get root folders."),
	op("delete_rootfolder_id", TagConfig, "DELETE", "/api/v3/rootfolder/{id}", "Delete a root folder.", inPath("id", tInt)),
	op("get_rootfolder_id", TagConfig, "GET", "/api/v3/rootfolder/{id}", "Get specific root folder.", inPath("id", tInt)),
	op("post_seasonpass", TagCatalog, "POST", "/api/v3/seasonpass", "Season Pass.", required(inPayload("data"))),
	op("get_series", TagCatalog, "GET", "/api/v3/series", "Get series info.", inQuery("tvdbId", tInt), inQuery("includeSeasonImages", tBool)),
	op("post_series", TagCatalog, "POST", "/api/v3/series", "Add a new series.", required(inPayload("data"))),
	op("get_series_id", TagCatalog, "GET", "/api/v3/series/{id}", "Get series by ID.", inPath("id", tInt), inQuery("includeSeasonImages", tBool)),
	op("put_series_id", TagCatalog, "PUT", "/api/v3/series/{id}", "Update series.", inPath("id", tStr), required(inPayload("data")), inQuery("moveFiles", tBool)),
	op("delete_series_id", TagCatalog, "DELETE", "/api/v3/series/{id}", "Delete series.", inPath("id", tInt), inQuery("deleteFiles", tBool), inQuery("addImportListExclusion", tBool)),
	op("put_series_editor", TagCatalog, "PUT", "/api/v3/series/editor", "Update series editor.", required(inPayload("data"))),
	op("delete_series_editor", TagCatalog, "DELETE", "/api/v3/series/editor", "Delete series editor.", required(inPayload("data"))),
	op("get_series_id_folder", TagCatalog, "GET", "/api/v3/series/{id}/folder", "Get series folder.", inPath("id", tInt)),
	op("post_series_import", TagCatalog, "POST", "/api/v3/series/import", "Import series.", required(inPayload("data"))),
	op("get_series_lookup", TagCatalog, "GET", "/api/v3/series/lookup", "Lookup series.", inQuery("term", tStr)),
	op("get_content_path", TagSystem, "GET", "/content/{path}", "Get content path.", inPath("path", tStr)),
	op("get_", TagSystem, "GET", "/{path}", "Get resource by path.", inPath("path", tStr)),
	op("get_path", TagSystem, "GET", "/{path}", "Get system paths.", inPath("path", tStr)),
	op("get_system_status", TagSystem, "GET", "/api/v3/system/status", "Get system status."),
	op("get_system_routes", TagSystem, "GET", "/api/v3/system/routes", "Get system routes."),
	op("get_system_routes_duplicate", TagSystem, "GET", "/api/v3/system/routes/duplicate", "Get duplicate system routes."),
	op("post_system_shutdown", TagSystem, "POST", "/api/v3/system/shutdown", "Trigger system shutdown."),
	op("post_system_restart", TagSystem, "POST", "/api/v3/system/restart", "Trigger system restart."),
	op("get_tag", TagSystem, "GET", "/api/v3/tag", "Get tags."),
	op("post_tag", TagSystem, "POST", "/api/v3/tag", "Add a new tag.", required(inPayload("data"))),
	op("put_tag_id", TagSystem, "PUT", "/api/v3/tag/{id}", "Update a tag.", inPath("id", tStr), required(inPayload("data"))),
	op("delete_tag_id", TagSystem, "DELETE", "/api/v3/tag/{id}", "Delete a tag.", inPath("id", tInt)),
	op("get_tag_id", TagSystem, "GET", "/api/v3/tag/{id}", "Get specific tag.", inPath("id", tInt)),
	op("get_tag_detail", TagSystem, "GET", "/api/v3/tag/detail", "Get tag usage details."),
	op("get_tag_detail_id", TagSystem, "GET", "/api/v3/tag/detail/{id}", "Get specific tag usage details.", inPath("id", tInt)),
	op("get_system_task", TagSystem, "GET", "/api/v3/system/task", "Get system tasks."),
	op("get_system_task_id", TagSystem, "GET", "/api/v3/system/task/{id}", "Get specific system task.", inPath("id", tInt)),
	op("put_config_ui_id", TagSystem, "PUT", "/api/v3/config/ui/{id}", "Update UI configuration.", inPath("id", tStr), required(inPayload("data"))),
	op("get_config_ui_id", TagSystem, "GET", "/api/v3/config/ui/{id}", "Get specific UI configuration.", inPath("id", tInt)),
	op("get_config_ui", TagSystem, "GET", "/api/v3/config/ui", "Get UI configuration."),
	op("get_update", TagSystem, "GET", "/api/v3/update", "Get available updates."),
	op("get_log_file_update", TagSystem, "GET", "/api/v3/log/file/update", "Get log file update."),
	op("get_log_file_update_filename", TagSystem, "GET", "/api/v3/log/file/update/{filename}", "Get log file update content.", inPath("filename", tStr)),
}
