package arr

import "arr-mcp/internal/domain"

var lidarrOperations = []domain.Operation{
	op("get_album", TagCatalog, "GET", "/api/v1/album", "Get albums managed by Lidarr, with optional filters for artist, IDs, and path.", inQuery("artistId", tInt), inQuery("albumIds", tArr), inQuery("foreignAlbumId", tStr), inQuery("includeAllArtistAlbums", tBool)),
	op("post_album", TagCatalog, "POST", "/api/v1/album", "Add a new album to Lidarr.", required(inPayload("data"))),
	op("put_album_id", TagCatalog, "PUT", "/api/v1/album/{id}", "Update an existing album by ID.", inPath("id", tStr), required(inPayload("data"))),
	op("delete_album_id", TagCatalog, "DELETE", "/api/v1/album/{id}", "Delete an album by ID.", inPath("id", tInt), inQuery("deleteFiles", tBool), inQuery("addImportListExclusion", tBool)),
	op("get_album_id", TagCatalog, "GET", "/api/v1/album/{id}", "Get information for a specific album by ID.", inPath("id", tInt)),
	op("put_album_monitor", TagCatalog, "PUT", "/api/v1/album/monitor", "Update monitor status for albums.", required(inPayload("data"))),
	op("get_album_lookup", TagCatalog, "GET", "/api/v1/album/lookup", "Search for albums matching a term.", inQuery("term", tStr)),
	op("post_albumstudio", TagCatalog, "POST", "/api/v1/albumstudio", "Add a new album studio configuration.", required(inPayload("data"))),
	op("get_api", TagSystem, "GET", "/api", "Get the Lidarr API status and core configuration."),
	op("get_artist_id", TagCatalog, "GET", "/api/v1/artist/{id}", "Get details for a specific artist by ID.", inPath("id", tInt)),
	op("put_artist_id", TagCatalog, "PUT", "/api/v1/artist/{id}", "Update an existing artist configuration by ID.", inPath("id", tStr), required(inPayload("data")), inQuery("moveFiles", tBool)),
	op("delete_artist_id", TagCatalog, "DELETE", "/api/v1/artist/{id}", "Delete an artist from Lidarr.", inPath("id", tInt), inQuery("deleteFiles", tBool), inQuery("addImportListExclusion", tBool)),
	op("get_artist", TagCatalog, "GET", "/api/v1/artist", "Get all managed artists, or filter by MusicBrainz ID.", inQuery("mbId", tStr)),
	op("post_artist", TagCatalog, "POST", "/api/v1/artist", "Add a new artist to Lidarr.", required(inPayload("data"))),
	op("put_artist_editor", TagCatalog, "PUT", "/api/v1/artist/editor", "Bulk update artist settings.", required(inPayload("data"))),
	op("delete_artist_editor", TagCatalog, "DELETE", "/api/v1/artist/editor", "Bulk delete artists.", required(inPayload("data"))),
	op("get_artist_lookup", TagCatalog, "GET", "/api/v1/artist/lookup", "Search for artists matching a term.", inQuery("term", tStr)),
	op("post_login", TagSystem, "POST", "/login", "Perform a login operation.", inQuery("returnUrl", tStr)),
	op("get_login", TagSystem, "GET", "/login", "Check the current login status."),
	op("get_logout", TagSystem, "GET", "/logout", "Perform a logout operation."),
	op("get_autotagging_id", TagOperations, "GET", "/api/v1/autotagging/{id}", "Get details for an auto-tagging configuration by ID.", inPath("id", tInt)),
	op("put_autotagging_id", TagOperations, "PUT", "/api/v1/autotagging/{id}", "Update an auto-tagging configuration by ID.", inPath("id", tStr), required(inPayload("data"))),
	op("delete_autotagging_id", TagOperations, "DELETE", "/api/v1/autotagging/{id}", "Delete an auto-tagging configuration.", inPath("id", tInt)),
	op("post_autotagging", TagOperations, "POST", "/api/v1/autotagging", "Add a new auto-tagging configuration.", required(inPayload("data"))),
	op("get_autotagging", TagOperations, "GET", "/api/v1/autotagging", "Get all auto-tagging configurations."),
	op("get_autotagging_schema", TagOperations, "GET", "/api/v1/autotagging/schema", "Get the schema for auto-tagging configurations."),
	op("get_system_backup", TagSystem, "GET", "/api/v1/system/backup", "Get the current system backup information."),
	op("delete_system_backup_id", TagSystem, "DELETE", "/api/v1/system/backup/{id}", "Delete a system backup by its ID.", inPath("id", tInt)),
	op("post_system_backup_restore_id", TagSystem, "POST", "/api/v1/system/backup/restore/{id}", "Restore Lidarr from a specific backup ID.", inPath("id", tInt)),
	op("post_system_backup_restore_upload", TagSystem, "POST", "/api/v1/system/backup/restore/upload", "Upload and restore a Lidarr backup archive."),
	op("get_blocklist", TagQueue, "GET", "/api/v1/blocklist", "Retrieve a paginated list of items in the blocklist.", inQuery("page", tInt), inQuery("pageSize", tInt), inQuery("sortKey", tStr), inQuery("sortDirection", tStr)),
	op("delete_blocklist_id", TagQueue, "DELETE", "/api/v1/blocklist/{id}", "Remove an item from the blocklist by its ID.", inPath("id", tInt)),
	op("delete_blocklist_bulk", TagQueue, "DELETE", "/api/v1/blocklist/bulk", "Bulk removal of items from the blocklist.", required(inPayload("data"))),
	op("get_calendar", TagOperations, "GET", "/api/v1/calendar", "Retrieve calendar events for a given time range.", inQuery("start", tStr), inQuery("end", tStr), inQuery("unmonitored", tBool), inQuery("includeArtist", tBool), inQuery("tags", tStr)),
	op("get_calendar_id", TagOperations, "GET", "/api/v1/calendar/{id}", "Retrieve a specific calendar event by its ID.", inPath("id", tInt)),
	op("get_feed_v1_calendar_lidarrics", TagOperations, "GET", "/feed/v1/calendar/lidarr.ics", "Retrieve the calendar feed in iCal format.", inQuery("pastDays", tInt), inQuery("futureDays", tInt), inQuery("tags", tStr), inQuery("unmonitored", tBool)),
	op("get_command_id", TagOperations, "GET", "/api/v1/command/{id}", "Get the status of a specific command by its ID.", inPath("id", tInt)),
	op("delete_command_id", TagOperations, "DELETE", "/api/v1/command/{id}", "Cancel a specific command by its ID.", inPath("id", tInt)),
	op("post_command", TagOperations, "POST", "/api/v1/command", "Execute a command in Lidarr.", required(inPayload("data"))),
	op("get_command", TagOperations, "GET", "/api/v1/command", "Retrieve all currently running or recently finished commands."),
	op("get_customfilter_id", TagProfiles, "GET", "/api/v1/customfilter/{id}", "Retrieve details for a specific custom filter by its ID.", inPath("id", tInt)),
	op("put_customfilter_id", TagProfiles, "PUT", "/api/v1/customfilter/{id}", "Update an existing custom filter by its ID.", inPath("id", tStr), required(inPayload("data"))),
	op("delete_customfilter_id", TagProfiles, "DELETE", "/api/v1/customfilter/{id}", "Delete a custom filter by its ID.", inPath("id", tInt)),
	op("get_customfilter", TagProfiles, "GET", "/api/v1/customfilter", "Retrieve all defined custom filters."),
	op("post_customfilter", TagProfiles, "POST", "/api/v1/customfilter", "Create a new custom filter.", required(inPayload("data"))),
	op("get_customformat_id", TagProfiles, "GET", "/api/v1/customformat/{id}", "Retrieve a specific custom format by its ID.", inPath("id", tInt)),
	op("put_customformat_id", TagProfiles, "PUT", "/api/v1/customformat/{id}", "Update an existing custom format by its ID.", inPath("id", tStr), required(inPayload("data"))),
	op("delete_customformat_id", TagProfiles, "DELETE", "/api/v1/customformat/{id}", "Retrieve all defined custom formats.", inPath("id", tInt)),
	op("get_customformat", TagProfiles, "GET", "/api/v1/customformat", "Create a new custom format."),
	op("post_customformat", TagProfiles, "POST", "/api/v1/customformat", "Bulk update multiple custom formats.", required(inPayload("data"))),
	op("put_customformat_bulk", TagProfiles, "PUT", "/api/v1/customformat/bulk", "Bulk delete multiple custom formats.", required(inPayload("data"))),
	op("delete_customformat_bulk", TagProfiles, "DELETE", "/api/v1/customformat/bulk", "Retrieve the configuration schema for custom formats.", required(inPayload("data"))),
	op("get_customformat_schema", TagProfiles, "GET", "/api/v1/customformat/schema", "Retrieve details for a specific delay profile by its ID."),
	op("get_wanted_cutoff", TagProfiles, "GET", "/api/v1/wanted/cutoff", "Update an existing delay profile by its ID.", inQuery("page", tInt), inQuery("pageSize", tInt), inQuery("sortKey", tStr), inQuery("sortDirection", tStr), inQuery("includeArtist", tBool), inQuery("monitored", tBool)),
	op("get_wanted_cutoff_id", TagProfiles, "GET", "/api/v1/wanted/cutoff/{id}", "Delete a delay profile by its ID.", inPath("id", tInt)),
	op("post_delayprofile", TagProfiles, "POST", "/api/v1/delayprofile", "Add a new delay profile.", required(inPayload("data"))),
	op("get_delayprofile", TagProfiles, "GET", "/api/v1/delayprofile", "Retrieve all defined delay profiles."),
	op("delete_delayprofile_id", TagProfiles, "DELETE", "/api/v1/delayprofile/{id}", "Retrieve information about available disk space.", inPath("id", tInt)),
	op("put_delayprofile_id", TagProfiles, "PUT", "/api/v1/delayprofile/{id}", "Retrieve details for a specific download client by its ID.", inPath("id", tStr), required(inPayload("data"))),
	op("get_delayprofile_id", TagProfiles, "GET", "/api/v1/delayprofile/{id}", "Update an existing download client configuration.", inPath("id", tInt)),
	op("put_delayprofile_reorder_id", TagProfiles, "PUT", "/api/v1/delayprofile/reorder/{id}", "Delete a download client from Lidarr.", inPath("id", tInt), inQuery("afterId", tInt)),
	op("get_diskspace", TagSystem, "GET", "/api/v1/diskspace", "Retrieve all configured download clients."),
	op("get_downloadclient_id", TagDownloads, "GET", "/api/v1/downloadclient/{id}", "Add a new download client to Lidarr.", inPath("id", tInt)),
	op("put_downloadclient_id", TagDownloads, "PUT", "/api/v1/downloadclient/{id}", "Bulk update multiple download clients.", inPath("id", tInt), required(inPayload("data")), inQuery("forceSave", tBool)),
	op("delete_downloadclient_id", TagDownloads, "DELETE", "/api/v1/downloadclient/{id}", "Bulk delete multiple download clients.", inPath("id", tInt)),
	op("get_downloadclient", TagDownloads, "GET", "/api/v1/downloadclient", "Retrieve the configuration schema for download clients."),
	op("post_downloadclient", TagDownloads, "POST", "/api/v1/downloadclient", "Test a download client configuration.", required(inPayload("data")), inQuery("forceSave", tBool)),
	op("put_downloadclient_bulk", TagDownloads, "PUT", "/api/v1/downloadclient/bulk", "Test all configured download clients.", required(inPayload("data"))),
	op("delete_downloadclient_bulk", TagDownloads, "DELETE", "/api/v1/downloadclient/bulk", "Perform an action on a download client.", required(inPayload("data"))),
	op("get_downloadclient_schema", TagDownloads, "GET", "/api/v1/downloadclient/schema", "Retrieve download client configuration by ID."),
	op("post_downloadclient_test", TagDownloads, "POST", "/api/v1/downloadclient/test", "Update download client configuration by ID.", required(inPayload("data")), inQuery("forceTest", tBool)),
	op("post_downloadclient_testall", TagDownloads, "POST", "/api/v1/downloadclient/testall", "Retrieve all download client configurations."),
	op("post_downloadclient_action_name", TagDownloads, "POST", "/api/v1/downloadclient/action/{name}", "Browse the local filesystem.", inPath("name", tStr), required(inPayload("data"))),
	op("get_config_downloadclient_id", TagDownloads, "GET", "/api/v1/config/downloadclient/{id}", "Get information about a specific filesystem path.", inPath("id", tInt)),
	op("put_config_downloadclient_id", TagDownloads, "PUT", "/api/v1/config/downloadclient/{id}", "Retrieve the current health status of Lidarr.", inPath("id", tStr), required(inPayload("data"))),
	op("get_config_downloadclient", TagDownloads, "GET", "/api/v1/config/downloadclient", "Retrieve the schema for health status information."),
	op("get_filesystem", TagSystem, "GET", "/api/v1/filesystem", "Retrieve Lidarr activity history.", inQuery("path", tStr), inQuery("includeFiles", tBool), inQuery("allowFoldersWithoutTrailingSlashes", tBool)),
	op("get_filesystem_type", TagSystem, "GET", "/api/v1/filesystem/type", "Retrieve activity history for a specific artist.", inQuery("path", tStr)),
	op("get_filesystem_mediafiles", TagSystem, "GET", "/api/v1/filesystem/mediafiles", "Delete a history item by its ID.", inQuery("path", tStr)),
	op("get_health", TagSystem, "GET", "/api/v1/health", "Get the current health status of the Lidarr instance."),
	op("get_history", TagHistory, "GET", "/api/v1/history", "Mark a history item as failed.", inQuery("page", tInt), inQuery("pageSize", tInt), inQuery("sortKey", tStr), inQuery("sortDirection", tStr), inQuery("includeArtist", tBool), inQuery("includeAlbum", tBool), inQuery("includeTrack", tBool), inQuery("eventType", tArr), inQuery("albumId", tInt), inQuery("downloadId", tStr), inQuery("artistIds", tArr), inQuery("quality", tArr)),
	op("get_history_since", TagHistory, "GET", "/api/v1/history/since", "Retrieve host configuration settings by ID.", inQuery("date", tStr), inQuery("eventType", tStr), inQuery("includeArtist", tBool), inQuery("includeAlbum", tBool), inQuery("includeTrack", tBool)),
	op("get_history_artist", TagHistory, "GET", "/api/v1/history/artist", "Update host configuration settings by ID.", inQuery("artistId", tInt), inQuery("albumId", tInt), inQuery("eventType", tStr), inQuery("includeArtist", tBool), inQuery("includeAlbum", tBool), inQuery("includeTrack", tBool)),
	op("post_history_failed_id", TagHistory, "POST", "/api/v1/history/failed/{id}", "Retrieve all host configuration settings.", inPath("id", tInt)),
	op("get_config_host_id", TagSystem, "GET", "/api/v1/config/host/{id}", "Retrieve details for a specific indexer by ID.", inPath("id", tInt)),
	op("put_config_host_id", TagSystem, "PUT", "/api/v1/config/host/{id}", "Update an existing indexer configuration by ID.", inPath("id", tStr), required(inPayload("data"))),
	op("get_config_host", TagSystem, "GET", "/api/v1/config/host", "Delete an indexer from Lidarr."),
	op("get_importlist_id", TagDownloads, "GET", "/api/v1/importlist/{id}", "Retrieve all configured indexers.", inPath("id", tInt)),
	op("put_importlist_id", TagDownloads, "PUT", "/api/v1/importlist/{id}", "Add a new indexer to Lidarr.", inPath("id", tInt), required(inPayload("data")), inQuery("forceSave", tBool)),
	op("delete_importlist_id", TagDownloads, "DELETE", "/api/v1/importlist/{id}", "Bulk update multiple indexer configurations.", inPath("id", tInt)),
	op("get_importlist", TagDownloads, "GET", "/api/v1/importlist", "Bulk delete multiple indexers."),
	op("post_importlist", TagDownloads, "POST", "/api/v1/importlist", "Retrieve the configuration schema for indexers.", required(inPayload("data")), inQuery("forceSave", tBool)),
	op("put_importlist_bulk", TagDownloads, "PUT", "/api/v1/importlist/bulk", "Test an indexer configuration.", required(inPayload("data"))),
	op("delete_importlist_bulk", TagDownloads, "DELETE", "/api/v1/importlist/bulk", "Test all configured indexers.", required(inPayload("data"))),
	op("get_importlist_schema", TagDownloads, "GET", "/api/v1/importlist/schema", "Perform an action on an indexer."),
	op("post_importlist_test", TagDownloads, "POST", "/api/v1/importlist/test", "Retrieve indexer configuration details by ID.", required(inPayload("data")), inQuery("forceTest", tBool)),
	op("post_importlist_testall", TagDownloads, "POST", "/api/v1/importlist/testall", "Update indexer configuration details by ID."),
	op("post_importlist_action_name", TagDownloads, "POST", "/api/v1/importlist/action/{name}", "Retrieve all indexer configuration settings.", inPath("name", tStr), required(inPayload("data"))),
	op("get_importlistexclusion_id", TagDownloads, "GET", "/api/v1/importlistexclusion/{id}", "Retrieve details for a specific metadata profile by ID.", inPath("id", tInt)),
	op("put_importlistexclusion_id", TagDownloads, "PUT", "/api/v1/importlistexclusion/{id}", "Update an existing metadata profile configuration.", inPath("id", tStr), required(inPayload("data"))),
	op("delete_importlistexclusion_id", TagDownloads, "DELETE", "/api/v1/importlistexclusion/{id}", "Delete a metadata profile from Lidarr.", inPath("id", tInt)),
	op("get_importlistexclusion", TagDownloads, "GET", "/api/v1/importlistexclusion", "Retrieve all defined metadata profiles."),
	op("post_importlistexclusion", TagDownloads, "POST", "/api/v1/importlistexclusion", "Create a new metadata profile.", required(inPayload("data"))),
	op("get_indexer_id", TagIndexer, "GET", "/api/v1/indexer/{id}", "Retrieve the configuration schema for metadata profiles.", inPath("id", tInt)),
	op("put_indexer_id", TagIndexer, "PUT", "/api/v1/indexer/{id}", "Retrieve naming configuration by ID.", inPath("id", tInt), required(inPayload("data")), inQuery("forceSave", tBool)),
	op("delete_indexer_id", TagIndexer, "DELETE", "/api/v1/indexer/{id}", "Update naming configuration by ID.", inPath("id", tInt)),
	op("get_indexer", TagIndexer, "GET", "/api/v1/indexer", "Retrieve all naming configurations."),
	op("post_indexer", TagIndexer, "POST", "/api/v1/indexer", "Retrieve details for a specific notification by ID.", required(inPayload("data")), inQuery("forceSave", tBool)),
	op("put_indexer_bulk", TagIndexer, "PUT", "/api/v1/indexer/bulk", "Update an existing notification configuration.", required(inPayload("data"))),
	op("delete_indexer_bulk", TagIndexer, "DELETE", "/api/v1/indexer/bulk", "Delete a notification from Lidarr.", required(inPayload("data"))),
	op("get_indexer_schema", TagIndexer, "GET", "/api/v1/indexer/schema", "Retrieve all configured notifications."),
	op("post_indexer_test", TagIndexer, "POST", "/api/v1/indexer/test", "Add a new notification to Lidarr.", required(inPayload("data")), inQuery("forceTest", tBool)),
	op("post_indexer_testall", TagIndexer, "POST", "/api/v1/indexer/testall", "Bulk update multiple notification configurations."),
	op("post_indexer_action_name", TagIndexer, "POST", "/api/v1/indexer/action/{name}", "Bulk delete multiple notifications.", inPath("name", tStr), required(inPayload("data"))),
	op("get_config_indexer_id", TagIndexer, "GET", "/api/v1/config/indexer/{id}", "Retrieve the configuration schema for notifications.", inPath("id", tInt)),
	op("put_config_indexer_id", TagIndexer, "PUT", "/api/v1/config/indexer/{id}", "Test a notification configuration.", inPath("id", tStr), required(inPayload("data"))),
	op("get_config_indexer", TagIndexer, "GET", "/api/v1/config/indexer", "Test all configured notifications."),
	op("get_indexerflag", TagIndexer, "GET", "/api/v1/indexerflag", "Perform an action on a notification."),
	op("get_language_id", TagProfiles, "GET", "/api/v1/language/{id}", "Parse artist information from a string.", inPath("id", tInt)),
	op("get_language", TagProfiles, "GET", "/api/v1/language", "Parse album information from a string."),
	op("get_localization", TagSystem, "GET", "/api/v1/localization", "Parse track information from a string."),
	op("get_log", TagSystem, "GET", "/api/v1/log", "Retrieve information about a specific file path.", inQuery("page", tInt), inQuery("pageSize", tInt), inQuery("sortKey", tStr), inQuery("sortDirection", tStr), inQuery("level", tStr)),
	op("get_log_file", TagSystem, "GET", "/api/v1/log/file", "Retrieve details for a specific quality definition by ID."),
	op("get_log_file_filename", TagSystem, "GET", "/api/v1/log/file/{filename}", "Update an existing quality definition configuration.", inPath("filename", tStr)),
	op("post_manualimport", TagDownloads, "POST", "/api/v1/manualimport", "Retrieve all defined quality definitions.", required(inPayload("data"))),
	op("get_manualimport", TagDownloads, "GET", "/api/v1/manualimport", "Bulk update multiple quality definitions.", inQuery("folder", tStr), inQuery("downloadId", tStr), inQuery("artistId", tInt), inQuery("filterExistingFiles", tBool), inQuery("replaceExistingFiles", tBool)),
	op("get_mediacover_artist_artist_id_filename", TagCatalog, "GET", "/api/v1/mediacover/artist/{artistId}/{filename}", "Retrieve the configuration schema for quality definitions.", inPath("artistId", tInt), inPath("filename", tStr)),
	op("get_mediacover_album_album_id_filename", TagCatalog, "GET", "/api/v1/mediacover/album/{albumId}/{filename}", "Retrieve details for a specific quality profile by ID.", inPath("albumId", tInt), inPath("filename", tStr)),
	op("get_config_mediamanagement_id", TagProfiles, "GET", "/api/v1/config/mediamanagement/{id}", "Update an existing quality profile configuration.", inPath("id", tInt)),
	op("put_config_mediamanagement_id", TagProfiles, "PUT", "/api/v1/config/mediamanagement/{id}", "Delete a quality profile from Lidarr.", inPath("id", tStr), required(inPayload("data"))),
	op("get_config_mediamanagement", TagProfiles, "GET", "/api/v1/config/mediamanagement", "Retrieve all defined quality profiles."),
	op("get_metadata_id", TagCatalog, "GET", "/api/v1/metadata/{id}", "Create a new quality profile.", inPath("id", tInt)),
	op("put_metadata_id", TagCatalog, "PUT", "/api/v1/metadata/{id}", "Retrieve the configuration schema for quality profiles.", inPath("id", tInt), required(inPayload("data")), inQuery("forceSave", tBool)),
	op("delete_metadata_id", TagCatalog, "DELETE", "/api/v1/metadata/{id}", "Retrieve the current download queue.", inPath("id", tInt)),
	op("get_metadata", TagCatalog, "GET", "/api/v1/metadata", "Retrieve detailed information about the download queue."),
	op("post_metadata", TagCatalog, "POST", "/api/v1/metadata", "Retrieve the status of the download queue.", required(inPayload("data")), inQuery("forceSave", tBool)),
	op("get_metadata_schema", TagCatalog, "GET", "/api/v1/metadata/schema", "Retrieve the schema for the download queue."),
	op("post_metadata_test", TagCatalog, "POST", "/api/v1/metadata/test", "Manually grab an item from the queue by its ID.", required(inPayload("data")), inQuery("forceTest", tBool)),
	op("post_metadata_testall", TagCatalog, "POST", "/api/v1/metadata/testall", "Remove an item from the download queue."),
	op("post_metadata_action_name", TagCatalog, "POST", "/api/v1/metadata/action/{name}", "Bulk removal of items from the download queue.", inPath("name", tStr), required(inPayload("data"))),
	op("post_metadataprofile", TagProfiles, "POST", "/api/v1/metadataprofile", "Perform an action on the download queue.", required(inPayload("data"))),
	op("get_metadataprofile", TagProfiles, "GET", "/api/v1/metadataprofile", "Retrieve available releases."),
	op("delete_metadataprofile_id", TagProfiles, "DELETE", "/api/v1/metadataprofile/{id}", "Manually grab a specific release.", inPath("id", tInt)),
	op("put_metadataprofile_id", TagProfiles, "PUT", "/api/v1/metadataprofile/{id}", "Retrieve details for pushed releases.", inPath("id", tStr), required(inPayload("data"))),
	op("get_metadataprofile_id", TagProfiles, "GET", "/api/v1/metadataprofile/{id}", "Push a new release for processing.", inPath("id", tInt)),
	op("get_metadataprofile_schema", TagProfiles, "GET", "/api/v1/metadataprofile/schema", "Retrieve remote path mapping configurations."),
	op("get_config_metadataprovider_id", TagProfiles, "GET", "/api/v1/config/metadataprovider/{id}", "Retrieve file rename information.", inPath("id", tInt)),
	op("put_config_metadataprovider_id", TagProfiles, "PUT", "/api/v1/config/metadataprovider/{id}", "Execute a file rename operation.", inPath("id", tStr), required(inPayload("data"))),
	op("get_config_metadataprovider", TagProfiles, "GET", "/api/v1/config/metadataprovider", "Retrieve rename information for a specific artist."),
	op("get_wanted_missing", TagCatalog, "GET", "/api/v1/wanted/missing", "Retrieve details for a specific restriction by ID.", inQuery("page", tInt), inQuery("pageSize", tInt), inQuery("sortKey", tStr), inQuery("sortDirection", tStr), inQuery("includeArtist", tBool), inQuery("monitored", tBool)),
	op("get_wanted_missing_id", TagCatalog, "GET", "/api/v1/wanted/missing/{id}", "Update an existing restriction configuration.", inPath("id", tInt)),
	op("get_config_naming_id", TagProfiles, "GET", "/api/v1/config/naming/{id}", "Delete a restriction from Lidarr.", inPath("id", tInt)),
	op("put_config_naming_id", TagProfiles, "PUT", "/api/v1/config/naming/{id}", "Retrieve all defined restrictions.", inPath("id", tStr), required(inPayload("data"))),
	op("get_config_naming", TagProfiles, "GET", "/api/v1/config/naming", "Add a new restriction configuration."),
	op("get_config_naming_examples", TagProfiles, "GET", "/api/v1/config/naming/examples", "Retrieve details for a specific root folder by ID.", inQuery("renameTracks", tBool), inQuery("replaceIllegalCharacters", tBool), inQuery("colonReplacementFormat", tInt), inQuery("standardTrackFormat", tStr), inQuery("multiDiscTrackFormat", tStr), inQuery("artistFolderFormat", tStr), inQuery("includeArtistName", tBool), inQuery("includeAlbumTitle", tBool), inQuery("includeQuality", tBool), inQuery("replaceSpaces", tBool), inQuery("separator", tStr), inQuery("numberStyle", tStr), inQuery("id", tInt), inQuery("resourceName", tStr)),
	op("get_notification_id", TagConfig, "GET", "/api/v1/notification/{id}", "Delete a root folder from Lidarr.", inPath("id", tInt)),
	op("put_notification_id", TagConfig, "PUT", "/api/v1/notification/{id}", "Retrieve all configured root folders.", inPath("id", tInt), required(inPayload("data")), inQuery("forceSave", tBool)),
	op("delete_notification_id", TagConfig, "DELETE", "/api/v1/notification/{id}", "Add a new root folder to Lidarr.", inPath("id", tInt)),
	op("get_notification", TagConfig, "GET", "/api/v1/notification", "Retrieve details for a specific tag by ID."),
	op("post_notification", TagConfig, "POST", "/api/v1/notification", "Update an existing tag.", required(inPayload("data")), inQuery("forceSave", tBool)),
	op("get_notification_schema", TagConfig, "GET", "/api/v1/notification/schema", "Delete a tag from Lidarr."),
	op("post_notification_test", TagConfig, "POST", "/api/v1/notification/test", "Retrieve all defined tags.", required(inPayload("data")), inQuery("forceTest", tBool)),
	op("post_notification_testall", TagConfig, "POST", "/api/v1/notification/testall", "Add a new tag to Lidarr."),
	op("post_notification_action_name", TagConfig, "POST", "/api/v1/notification/action/{name}", "Retrieve details for a specific tag by ID, including its usage.", inPath("name", tStr), required(inPayload("data"))),
	op("get_parse", TagOperations, "GET", "/api/v1/parse", "Retrieve details for all tags, including their usage.", inQuery("title", tStr)),
	op("get_ping", TagSystem, "GET", "/ping", "Retrieve details for a specific track by ID."),
	op("put_qualitydefinition_id", TagProfiles, "PUT", "/api/v1/qualitydefinition/{id}", "Update an existing track by its ID.", inPath("id", tStr), required(inPayload("data"))),
	op("get_qualitydefinition_id", TagProfiles, "GET", "/api/v1/qualitydefinition/{id}", "Retrieve all tracks for a specific artist or album.", inPath("id", tInt)),
	op("get_qualitydefinition", TagProfiles, "GET", "/api/v1/qualitydefinition", "Update the monitoring status of multiple tracks."),
	op("put_qualitydefinition_update", TagProfiles, "PUT", "/api/v1/qualitydefinition/update", "Update the monitoring status of multiple tracks.", required(inPayload("data"))),
	op("post_qualityprofile", TagProfiles, "POST", "/api/v1/qualityprofile", "Retrieve details for a specific track file by ID.", required(inPayload("data"))),
	op("get_qualityprofile", TagProfiles, "GET", "/api/v1/qualityprofile", "Delete a track file from Lidarr."),
	op("delete_qualityprofile_id", TagProfiles, "DELETE", "/api/v1/qualityprofile/{id}", "Update metadata for a specific track file.", inPath("id", tInt)),
	op("put_qualityprofile_id", TagProfiles, "PUT", "/api/v1/qualityprofile/{id}", "Retrieve all track files for a specific artist or album.", inPath("id", tStr), required(inPayload("data"))),
	op("get_qualityprofile_id", TagProfiles, "GET", "/api/v1/qualityprofile/{id}", "Bulk update multiple track files.", inPath("id", tInt)),
	op("get_qualityprofile_schema", TagProfiles, "GET", "/api/v1/qualityprofile/schema", "Bulk delete multiple track files."),
	op("delete_queue_id", TagQueue, "DELETE", "/api/v1/queue/{id}", "Retrieve tracks that are missing from the collection.", inPath("id", tInt), inQuery("removeFromClient", tBool), inQuery("blocklist", tBool), inQuery("skipRedownload", tBool), inQuery("changeCategory", tBool)),
	op("delete_queue_bulk", TagQueue, "DELETE", "/api/v1/queue/bulk", "Retrieve tracks that have not reached their quality cutoff.", required(inPayload("data")), inQuery("removeFromClient", tBool), inQuery("blocklist", tBool), inQuery("skipRedownload", tBool), inQuery("changeCategory", tBool)),
	op("get_queue", TagQueue, "GET", "/api/v1/queue", "Search for tracks matching a specific term.", inQuery("page", tInt), inQuery("pageSize", tInt), inQuery("sortKey", tStr), inQuery("sortDirection", tStr), inQuery("includeUnknownArtistItems", tBool), inQuery("includeArtist", tBool), inQuery("includeAlbum", tBool), inQuery("artistIds", tArr), inQuery("protocol", tStr), inQuery("quality", tArr)),
	op("post_queue_grab_id", TagQueue, "POST", "/api/v1/queue/grab/{id}", "Retrieve detailed info for a missing track by ID.", inPath("id", tInt)),
	op("post_queue_grab_bulk", TagQueue, "POST", "/api/v1/queue/grab/bulk", "Retrieve detailed info for a wanted cutoff track by ID.", required(inPayload("data"))),
	op("get_queue_details", TagQueue, "GET", "/api/v1/queue/details", "Retrieve Prowlarr configuration.", inQuery("artistId", tInt), inQuery("albumIds", tArr), inQuery("includeArtist", tBool), inQuery("includeAlbum", tBool)),
	op("get_queue_status", TagQueue, "GET", "/api/v1/queue/status", "Update Prowlarr configuration."),
	op("post_release", TagDownloads, "POST", "/api/v1/release", "Retrieve details of a single Prowlarr configuration.", required(inPayload("data"))),
	op("get_release", TagDownloads, "GET", "/api/v1/release", "Retrieve details for a specific remote path mapping by ID.", inQuery("albumId", tInt), inQuery("artistId", tInt)),
	op("get_releaseprofile_id", TagProfiles, "GET", "/api/v1/releaseprofile/{id}", "Update an existing remote path mapping.", inPath("id", tInt)),
	op("put_releaseprofile_id", TagProfiles, "PUT", "/api/v1/releaseprofile/{id}", "Retrieve all configured remote path mappings.", inPath("id", tStr), required(inPayload("data"))),
	op("delete_releaseprofile_id", TagProfiles, "DELETE", "/api/v1/releaseprofile/{id}", "Retrieve details for a specific search by ID.", inPath("id", tInt)),
	op("get_releaseprofile", TagProfiles, "GET", "/api/v1/releaseprofile", "Retrieve all recent search operations."),
	op("post_releaseprofile", TagProfiles, "POST", "/api/v1/releaseprofile", "Retrieve details for a specific artist by ID.", required(inPayload("data"))),
	op("post_release_push", TagDownloads, "POST", "/api/v1/release/push", "Update an existing artist configuration.", required(inPayload("data"))),
	op("get_remotepathmapping_id", TagConfig, "GET", "/api/v1/remotepathmapping/{id}", "Retrieve all artists in the collection.", inPath("id", tInt)),
	op("delete_remotepathmapping_id", TagConfig, "DELETE", "/api/v1/remotepathmapping/{id}", "Retrieve the current system status of Lidarr.", inPath("id", tInt)),
	op("put_remotepathmapping_id", TagConfig, "PUT", "/api/v1/remotepathmapping/{id}", "Retrieve details for a specific update by ID.", inPath("id", tStr), required(inPayload("data"))),
	op("post_remotepathmapping", TagConfig, "POST", "/api/v1/remotepathmapping", "Retrieve all available system updates.", required(inPayload("data"))),
	op("get_remotepathmapping", TagConfig, "GET", "/api/v1/remotepathmapping", "Retrieve the current health status of Lidarr."),
	op("get_rename", TagCatalog, "GET", "/api/v1/rename", "Retrieve Lidarr system logs.", inQuery("artistId", tInt), inQuery("albumId", tInt)),
	op("get_retag", TagCatalog, "GET", "/api/v1/retag", "Retrieve list of Lidarr log files.", inQuery("artistId", tInt), inQuery("albumId", tInt)),
	op("get_rootfolder_id", TagConfig, "GET", "/api/v1/rootfolder/{id}", "Retrieve details for a specific log file by ID.", inPath("id", tInt)),
	op("put_rootfolder_id", TagConfig, "PUT", "/api/v1/rootfolder/{id}", "Retrieve contents of a specific log file.", inPath("id", tStr), required(inPayload("data"))),
	op("delete_rootfolder_id", TagConfig, "DELETE", "/api/v1/rootfolder/{id}", "Delete rootfolder id.", inPath("id", tInt)),
	op("post_rootfolder", TagConfig, "POST", "/api/v1/rootfolder", "Add a new rootfolder.", required(inPayload("data"))),
	op("get_rootfolder", TagConfig, "GET", "/api/v1/rootfolder", "Get rootfolder."),
	op("get_search", TagSearch, "GET", "/api/v1/search", "Get search.", inQuery("term", tStr)),
	op("get_content_path", TagSystem, "GET", "/content/{path}", "Get content path.", inPath("path", tStr)),
	op("get_", TagSystem, "GET", "/{path}", "Get .", inPath("path", tStr)),
	op("get_path", TagSystem, "GET", "/{path}", "Get path.", inPath("path", tStr)),
	op("get_system_status", TagSystem, "GET", "/api/v1/system/status", "Get system status."),
	op("get_system_routes", TagSystem, "GET", "/api/v1/system/routes", "Get system routes."),
	op("get_system_routes_duplicate", TagSystem, "GET", "/api/v1/system/routes/duplicate", "Retrieve the current download queue."),
	op("post_system_shutdown", TagSystem, "POST", "/api/v1/system/shutdown", "Retrieve detailed entries in the download queue."),
	op("post_system_restart", TagSystem, "POST", "/api/v1/system/restart", "Retrieve status information for the download queue."),
	op("get_tag_id", TagSystem, "GET", "/api/v1/tag/{id}", "Retrieve the current system status of Lidarr.", inPath("id", tInt)),
	op("put_tag_id", TagSystem, "PUT", "/api/v1/tag/{id}", "Retrieve available system routes.", inPath("id", tStr), required(inPayload("data"))),
	op("delete_tag_id", TagSystem, "DELETE", "/api/v1/tag/{id}", "Retrieve duplicate system routes.", inPath("id", tInt)),
	op("get_tag", TagSystem, "GET", "/api/v1/tag", "Retrieve all system backups."),
	op("post_tag", TagSystem, "POST", "/api/v1/tag", "Delete a system backup by its ID.", required(inPayload("data"))),
	op("get_tag_detail_id", TagSystem, "GET", "/api/v1/tag/detail/{id}", "Restore from a specific system backup.", inPath("id", tInt)),
	op("get_tag_detail", TagSystem, "GET", "/api/v1/tag/detail", "Retrieve detailed usage information for a specific tag."),
	op("get_system_task", TagSystem, "GET", "/api/v1/system/task", "Retrieve detailed usage information for all tags."),
	op("get_system_task_id", TagSystem, "GET", "/api/v1/system/task/{id}", "Retrieve details for a specific track by its ID.", inPath("id", tInt)),
	op("get_track", TagCatalog, "GET", "/api/v1/track", "Update an existing track configuration.", inQuery("artistId", tInt), inQuery("albumId", tInt), inQuery("albumReleaseId", tInt), inQuery("trackIds", tArr)),
	op("get_track_id", TagCatalog, "GET", "/api/v1/track/{id}", "Retrieve all tracks for a specific artist or album.", inPath("id", tInt)),
	op("get_trackfile_id", TagCatalog, "GET", "/api/v1/trackfile/{id}", "Bulk update the monitoring status for multiple tracks.", inPath("id", tInt)),
	op("put_trackfile_id", TagCatalog, "PUT", "/api/v1/trackfile/{id}", "Retrieve details for a specific track file by its ID.", inPath("id", tStr), required(inPayload("data"))),
	op("delete_trackfile_id", TagCatalog, "DELETE", "/api/v1/trackfile/{id}", "Delete a specific track file from Lidarr.", inPath("id", tInt)),
	op("get_trackfile", TagCatalog, "GET", "/api/v1/trackfile", "Get track files.", inQuery("artistId", tInt), inQuery("trackFileIds", tArr), inQuery("albumId", tArr), inQuery("unmapped", tBool)),
	op("put_trackfile_editor", TagCatalog, "PUT", "/api/v1/trackfile/editor", "Update track file editor.", required(inPayload("data"))),
	op("delete_trackfile_bulk", TagCatalog, "DELETE", "/api/v1/trackfile/bulk", "Bulk delete track files.", required(inPayload("data"))),
	op("put_config_ui_id", TagSystem, "PUT", "/api/v1/config/ui/{id}", "Update UI configuration.", inPath("id", tStr), required(inPayload("data"))),
	op("get_config_ui_id", TagSystem, "GET", "/api/v1/config/ui/{id}", "Get specific UI configuration.", inPath("id", tInt)),
	op("get_config_ui", TagSystem, "GET", "/api/v1/config/ui", "Get UI configuration."),
	op("get_update", TagSystem, "GET", "/api/v1/update", "Get available updates."),
	op("get_log_file_update", TagSystem, "GET", "/api/v1/log/file/update", "Get log file update."),
	op("get_log_file_update_filename", TagSystem, "GET", "/api/v1/log/file/update/{filename}", "Get log file update content.", inPath("filename", tStr)),
}
