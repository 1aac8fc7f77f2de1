package arr

import "arr-mcp/internal/domain"

var chaptarrOperations = []domain.Operation{
	op("get_api", TagSystem, "GET", "/api", "Get the base API information for Chaptarr."),
	op("post_login", TagSystem, "POST", "/login", "Perform a login operation to the Chaptarr instance.", inQuery("returnUrl", tStr)),
	op("get_login", TagSystem, "GET", "/login", "Get the current login status for the Chaptarr instance."),
	op("get_logout", TagSystem, "GET", "/logout", "Perform a logout operation from the Chaptarr instance."),
	op("get_author", TagCatalog, "GET", "/api/v1/author", "Get all authors managed by Chaptarr."),
	op("post_author", TagCatalog, "POST", "/api/v1/author", "Add a new author to Chaptarr.", required(inPayload("data"))),
	op("put_author_id", TagCatalog, "PUT", "/api/v1/author/{id}", "Update an author's information by ID.", inPath("id", tStr), required(inPayload("data")), inQuery("moveFiles", tBool)),
	op("delete_author_id", TagCatalog, "DELETE", "/api/v1/author/{id}", "Delete an author from Chaptarr.", inPath("id", tInt), inQuery("deleteFiles", tBool), inQuery("addImportListExclusion", tBool)),
	op("get_author_id", TagCatalog, "GET", "/api/v1/author/{id}", "Get information for a specific author by ID.", inPath("id", tInt)),
	op("put_author_editor", TagCatalog, "PUT", "/api/v1/author/editor", "Bulk update author parameters.", required(inPayload("data"))),
	op("delete_author_editor", TagCatalog, "DELETE", "/api/v1/author/editor", "Bulk delete authors.", required(inPayload("data"))),
	op("get_author_lookup", TagCatalog, "GET", "/api/v1/author/lookup", "Search for authors matching a term.", inQuery("term", tStr)),
	op("get_system_backup", TagSystem, "GET", "/api/v1/system/backup", "Retrieve all system backups."),
	op("delete_system_backup_id", TagSystem, "DELETE", "/api/v1/system/backup/{id}", "Delete a specific system backup.", inPath("id", tInt)),
	op("post_system_backup_restore_id", TagSystem, "POST", "/api/v1/system/backup/restore/{id}", "Restore a system backup.", inPath("id", tInt)),
	op("post_system_backup_restore_upload", TagSystem, "POST", "/api/v1/system/backup/restore/upload", "Upload and restore a system backup."),
	op("get_blocklist", TagQueue, "GET", "/api/v1/blocklist", "Retrieve the blocklist.", inQuery("page", tInt), inQuery("pageSize", tInt), inQuery("sortKey", tStr), inQuery("sortDirection", tStr)),
	op("delete_blocklist_id", TagQueue, "DELETE", "/api/v1/blocklist/{id}", "Delete an item from the blocklist.", inPath("id", tInt)),
	op("delete_blocklist_bulk", TagQueue, "DELETE", "/api/v1/blocklist/bulk", "Bulk delete items from the blocklist.", required(inPayload("data"))),
	op("get_book", TagCatalog, "GET", "/api/v1/book", "Retrieve all books.", inQuery("authorId", tInt), inQuery("bookIds", tArr), inQuery("titleSlug", tStr), inQuery("includeAllAuthorBooks", tBool)),
	op("post_book", TagCatalog, "POST", "/api/v1/book", "Add a new book.", required(inPayload("data"))),
	op("get_book_id_overview", TagCatalog, "GET", "/api/v1/book/{id}/overview", "Retrieve overview for a specific book.", inPath("id", tInt)),
	op("put_book_id", TagCatalog, "PUT", "/api/v1/book/{id}", "Retrieve a paginated list of items in the blocklist.", inPath("id", tStr), required(inPayload("data"))),
	op("delete_book_id", TagCatalog, "DELETE", "/api/v1/book/{id}", "Remove an item from the blocklist by its ID.", inPath("id", tInt), inQuery("deleteFiles", tBool), inQuery("addImportListExclusion", tBool)),
	op("get_book_id", TagCatalog, "GET", "/api/v1/book/{id}", "Bulk removal of items from the blocklist.", inPath("id", tInt)),
	op("put_book_monitor", TagCatalog, "PUT", "/api/v1/book/monitor", "Retrieve details for a specific book by its ID.", required(inPayload("data"))),
	op("put_book_editor", TagCatalog, "PUT", "/api/v1/book/editor", "Update an existing book configuration.", required(inPayload("data"))),
	op("delete_book_editor", TagCatalog, "DELETE", "/api/v1/book/editor", "Retrieve the schema for book configurations.", required(inPayload("data"))),
	op("get_bookfile", TagCatalog, "GET", "/api/v1/bookfile", "Retrieve all book files for a specific book.", inQuery("authorId", tInt), inQuery("bookFileIds", tArr), inQuery("bookId", tArr), inQuery("unmapped", tBool)),
	op("put_bookfile_id", TagCatalog, "PUT", "/api/v1/bookfile/{id}", "Delete a specific book file.", inPath("id", tStr), required(inPayload("data"))),
	op("delete_bookfile_id", TagCatalog, "DELETE", "/api/v1/bookfile/{id}", "Retrieve details for a specific book file by its ID.", inPath("id", tInt)),
	op("get_bookfile_id", TagCatalog, "GET", "/api/v1/bookfile/{id}", "Bulk update multiple book files.", inPath("id", tInt)),
	op("put_bookfile_editor", TagCatalog, "PUT", "/api/v1/bookfile/editor", "Update book file editor.", required(inPayload("data"))),
	op("delete_bookfile_bulk", TagCatalog, "DELETE", "/api/v1/bookfile/bulk", "Bulk delete book files.", required(inPayload("data"))),
	op("get_book_lookup", TagCatalog, "GET", "/api/v1/book/lookup", "Search for books.", inQuery("term", tStr)),
	op("post_bookshelf", TagCatalog, "POST", "/api/v1/bookshelf", "Add book to bookshelf.", required(inPayload("data"))),
	op("get_calendar", TagOperations, "GET", "/api/v1/calendar", "Get calendar events.", inQuery("start", tStr), inQuery("end", tStr), inQuery("unmonitored", tBool), inQuery("includeAuthor", tBool)),
	op("get_calendar_id", TagOperations, "GET", "/api/v1/calendar/{id}", "Get a specific calendar event.", inPath("id", tInt)),
	op("get_feed_v1_calendar_readarrics", TagOperations, "GET", "/feed/v1/calendar/readarr.ics", "Get calendar feed.", inQuery("pastDays", tInt), inQuery("futureDays", tInt), inQuery("tagList", tStr), inQuery("unmonitored", tBool)),
	op("post_command", TagOperations, "POST", "/api/v1/command", "Execute a command.", required(inPayload("data"))),
	op("get_command", TagOperations, "GET", "/api/v1/command", "Get all commands."),
	op("delete_command_id", TagOperations, "DELETE", "/api/v1/command/{id}", "Delete a specific command.", inPath("id", tInt)),
	op("get_command_id", TagOperations, "GET", "/api/v1/command/{id}", "Get a specific command by ID.", inPath("id", tInt)),
	op("get_customfilter", TagProfiles, "GET", "/api/v1/customfilter", "Get custom filters."),
	op("post_customfilter", TagProfiles, "POST", "/api/v1/customfilter", "Add a new custom filter.", required(inPayload("data"))),
	op("put_customfilter_id", TagProfiles, "PUT", "/api/v1/customfilter/{id}", "Update a custom filter.", inPath("id", tStr), required(inPayload("data"))),
	op("delete_customfilter_id", TagProfiles, "DELETE", "/api/v1/customfilter/{id}", "Delete a custom filter.", inPath("id", tInt)),
	op("get_customfilter_id", TagProfiles, "GET", "/api/v1/customfilter/{id}", "Get a specific custom filter.", inPath("id", tInt)),
	op("post_customformat", TagProfiles, "POST", "/api/v1/customformat", "Add a new custom format.", required(inPayload("data"))),
	op("get_customformat", TagProfiles, "GET", "/api/v1/customformat", "Update a custom format."),
	op("put_customformat_id", TagProfiles, "PUT", "/api/v1/customformat/{id}", "Delete a custom format.", inPath("id", tStr), required(inPayload("data"))),
	op("delete_customformat_id", TagProfiles, "DELETE", "/api/v1/customformat/{id}", "Get a specific custom format.", inPath("id", tInt)),
	op("get_customformat_id", TagProfiles, "GET", "/api/v1/customformat/{id}", "Bulk update custom formats.", inPath("id", tInt)),
	op("get_customformat_schema", TagProfiles, "GET", "/api/v1/customformat/schema", "Bulk delete custom formats."),
	op("get_wanted_cutoff", TagProfiles, "GET", "/api/v1/wanted/cutoff", "Get custom format schema.", inQuery("page", tInt), inQuery("pageSize", tInt), inQuery("sortKey", tStr), inQuery("sortDirection", tStr), inQuery("includeAuthor", tBool), inQuery("monitored", tBool)),
	op("get_wanted_cutoff_id", TagProfiles, "GET", "/api/v1/wanted/cutoff/{id}", "Add a new delay profile.", inPath("id", tInt)),
	op("post_delayprofile", TagProfiles, "POST", "/api/v1/delayprofile", "Get delay profiles.", required(inPayload("data"))),
	op("get_delayprofile", TagProfiles, "GET", "/api/v1/delayprofile", "Delete a delay profile."),
	op("delete_delayprofile_id", TagProfiles, "DELETE", "/api/v1/delayprofile/{id}", "Update a delay profile.", inPath("id", tInt)),
	op("put_delayprofile_id", TagProfiles, "PUT", "/api/v1/delayprofile/{id}", "Get a specific delay profile.", inPath("id", tStr), required(inPayload("data"))),
	op("get_delayprofile_id", TagProfiles, "GET", "/api/v1/delayprofile/{id}", "Reorder delay profiles.", inPath("id", tInt)),
	op("put_delayprofile_reorder_id", TagProfiles, "PUT", "/api/v1/delayprofile/reorder/{id}", "Get disk space information.", inPath("id", tInt), inQuery("afterId", tInt)),
	op("get_config_development", TagSystem, "GET", "/api/v1/config/development", "Get download clients."),
	op("put_config_development_id", TagSystem, "PUT", "/api/v1/config/development/{id}", "Add a new download client.", inPath("id", tStr), required(inPayload("data"))),
	op("get_config_development_id", TagSystem, "GET", "/api/v1/config/development/{id}", "Update a download client.", inPath("id", tInt)),
	op("get_diskspace", TagSystem, "GET", "/api/v1/diskspace", "Delete a download client."),
	op("get_downloadclient", TagDownloads, "GET", "/api/v1/downloadclient", "Get a specific download client."),
	op("post_downloadclient", TagDownloads, "POST", "/api/v1/downloadclient", "Get download client configuration.", required(inPayload("data")), inQuery("forceSave", tBool)),
	op("put_downloadclient_id", TagDownloads, "PUT", "/api/v1/downloadclient/{id}", "Update download client configuration.", inPath("id", tStr), required(inPayload("data")), inQuery("forceSave", tBool)),
	op("delete_downloadclient_id", TagDownloads, "DELETE", "/api/v1/downloadclient/{id}", "Get specific download client configuration.", inPath("id", tInt)),
	op("get_downloadclient_id", TagDownloads, "GET", "/api/v1/downloadclient/{id}", "Get missing books.", inPath("id", tInt)),
	op("put_downloadclient_bulk", TagDownloads, "PUT", "/api/v1/downloadclient/bulk", "Get books missing cutoff.", required(inPayload("data"))),
	op("delete_downloadclient_bulk", TagDownloads, "DELETE", "/api/v1/downloadclient/bulk", "Get history.", required(inPayload("data"))),
	op("get_downloadclient_schema", TagDownloads, "GET", "/api/v1/downloadclient/schema", "Mark history item as failed."),
	op("post_downloadclient_test", TagDownloads, "POST", "/api/v1/downloadclient/test", "Get specific history item.", required(inPayload("data")), inQuery("forceTest", tBool)),
	op("post_downloadclient_testall", TagDownloads, "POST", "/api/v1/downloadclient/testall", "Get history for a book."),
	op("post_downloadclient_action_name", TagDownloads, "POST", "/api/v1/downloadclient/action/{name}", "Get system health.", inPath("name", tStr), required(inPayload("data"))),
	op("get_config_downloadclient", TagDownloads, "GET", "/api/v1/config/downloadclient", "Get import lists."),
	op("put_config_downloadclient_id", TagDownloads, "PUT", "/api/v1/config/downloadclient/{id}", "Add a new import list.", inPath("id", tStr), required(inPayload("data"))),
	op("get_config_downloadclient_id", TagDownloads, "GET", "/api/v1/config/downloadclient/{id}", "Update an import list.", inPath("id", tInt)),
	op("get_edition", TagCatalog, "GET", "/api/v1/edition", "Delete an import list.", inQuery("bookId", tArr)),
	op("get_filesystem", TagSystem, "GET", "/api/v1/filesystem", "Get a specific import list.", inQuery("path", tStr), inQuery("includeFiles", tBool), inQuery("allowFoldersWithoutTrailingSlashes", tBool)),
	op("get_filesystem_type", TagSystem, "GET", "/api/v1/filesystem/type", "Bulk update import lists.", inQuery("path", tStr)),
	op("get_filesystem_mediafiles", TagSystem, "GET", "/api/v1/filesystem/mediafiles", "Bulk delete import lists.", inQuery("path", tStr)),
	op("get_health", TagSystem, "GET", "/api/v1/health", "Get import list schema."),
	op("get_history", TagHistory, "GET", "/api/v1/history", "Test an import list.", inQuery("page", tInt), inQuery("pageSize", tInt), inQuery("sortKey", tStr), inQuery("sortDirection", tStr), inQuery("includeAuthor", tBool), inQuery("includeBook", tBool), inQuery("eventType", tArr), inQuery("bookId", tInt), inQuery("downloadId", tStr)),
	op("get_history_since", TagHistory, "GET", "/api/v1/history/since", "Test all import lists.", inQuery("date", tStr), inQuery("eventType", tStr), inQuery("includeAuthor", tBool), inQuery("includeBook", tBool)),
	op("get_history_author", TagHistory, "GET", "/api/v1/history/author", "Perform action on import list.", inQuery("authorId", tInt), inQuery("bookId", tInt), inQuery("eventType", tStr), inQuery("includeAuthor", tBool), inQuery("includeBook", tBool)),
	op("post_history_failed_id", TagHistory, "POST", "/api/v1/history/failed/{id}", "Get import list configuration.", inPath("id", tInt)),
	op("get_config_host", TagSystem, "GET", "/api/v1/config/host", "Update import list configuration."),
	op("put_config_host_id", TagSystem, "PUT", "/api/v1/config/host/{id}", "Get specific import list configuration.", inPath("id", tStr), required(inPayload("data"))),
	op("get_config_host_id", TagSystem, "GET", "/api/v1/config/host/{id}", "Get import list exclusions.", inPath("id", tInt)),
	op("get_importlist", TagDownloads, "GET", "/api/v1/importlist", "Add import list exclusion."),
	op("post_importlist", TagDownloads, "POST", "/api/v1/importlist", "Update import list exclusion.", required(inPayload("data")), inQuery("forceSave", tBool)),
	op("put_importlist_id", TagDownloads, "PUT", "/api/v1/importlist/{id}", "Delete import list exclusion.", inPath("id", tStr), required(inPayload("data")), inQuery("forceSave", tBool)),
	op("delete_importlist_id", TagDownloads, "DELETE", "/api/v1/importlist/{id}", "Get specific import list exclusion.", inPath("id", tInt)),
	op("get_importlist_id", TagDownloads, "GET", "/api/v1/importlist/{id}", "Get indexers.", inPath("id", tInt)),
	op("put_importlist_bulk", TagDownloads, "PUT", "/api/v1/importlist/bulk", "Add a new indexer.", required(inPayload("data"))),
	op("delete_importlist_bulk", TagDownloads, "DELETE", "/api/v1/importlist/bulk", "Update an indexer.", required(inPayload("data"))),
	op("get_importlist_schema", TagDownloads, "GET", "/api/v1/importlist/schema", "Delete an indexer."),
	op("post_importlist_test", TagDownloads, "POST", "/api/v1/importlist/test", "Get a specific indexer.", required(inPayload("data")), inQuery("forceTest", tBool)),
	op("post_importlist_testall", TagDownloads, "POST", "/api/v1/importlist/testall", "Bulk update indexers."),
	op("post_importlist_action_name", TagDownloads, "POST", "/api/v1/importlist/action/{name}", "Bulk delete indexers.", inPath("name", tStr), required(inPayload("data"))),
	op("get_importlistexclusion", TagDownloads, "GET", "/api/v1/importlistexclusion", "Get indexer schema."),
	op("post_importlistexclusion", TagDownloads, "POST", "/api/v1/importlistexclusion", "Test an indexer.", required(inPayload("data"))),
	op("put_importlistexclusion_id", TagDownloads, "PUT", "/api/v1/importlistexclusion/{id}", "Test all indexers.", inPath("id", tStr), required(inPayload("data"))),
	op("delete_importlistexclusion_id", TagDownloads, "DELETE", "/api/v1/importlistexclusion/{id}", "Perform action on indexer.", inPath("id", tInt)),
	op("get_importlistexclusion_id", TagDownloads, "GET", "/api/v1/importlistexclusion/{id}", "Get indexer configuration.", inPath("id", tInt)),
	op("get_indexer", TagIndexer, "GET", "/api/v1/indexer", "Update indexer configuration."),
	op("post_indexer", TagIndexer, "POST", "/api/v1/indexer", "Get specific indexer configuration.", required(inPayload("data")), inQuery("forceSave", tBool)),
	op("put_indexer_id", TagIndexer, "PUT", "/api/v1/indexer/{id}", "Get indexer flags.", inPath("id", tStr), required(inPayload("data")), inQuery("forceSave", tBool)),
	op("delete_indexer_id", TagIndexer, "DELETE", "/api/v1/indexer/{id}", "Get available languages.", inPath("id", tInt)),
	op("get_indexer_id", TagIndexer, "GET", "/api/v1/indexer/{id}", "Get a specific language.", inPath("id", tInt)),
	op("put_indexer_bulk", TagIndexer, "PUT", "/api/v1/indexer/bulk", "Get localization.", required(inPayload("data"))),
	op("delete_indexer_bulk", TagIndexer, "DELETE", "/api/v1/indexer/bulk", "Get system logs.", required(inPayload("data"))),
	op("get_indexer_schema", TagIndexer, "GET", "/api/v1/indexer/schema", "Get log files."),
	op("post_indexer_test", TagIndexer, "POST", "/api/v1/indexer/test", "Get log file content.", required(inPayload("data")), inQuery("forceTest", tBool)),
	op("post_indexer_testall", TagIndexer, "POST", "/api/v1/indexer/testall", "Add a new indexer testall."),
	op("post_indexer_action_name", TagIndexer, "POST", "/api/v1/indexer/action/{name}", "Perform action on indexer.", inPath("name", tStr), required(inPayload("data"))),
	op("get_config_indexer", TagIndexer, "GET", "/api/v1/config/indexer", "Get indexer configuration."),
	op("put_config_indexer_id", TagIndexer, "PUT", "/api/v1/config/indexer/{id}", "Update indexer configuration.", inPath("id", tStr), required(inPayload("data"))),
	op("get_config_indexer_id", TagIndexer, "GET", "/api/v1/config/indexer/{id}", "Get specific indexer configuration.", inPath("id", tInt)),
	op("get_indexerflag", TagIndexer, "GET", "/api/v1/indexerflag", "Get indexer flags."),
	op("get_language", TagProfiles, "GET", "/api/v1/language", "Get available languages."),
	op("get_language_id", TagProfiles, "GET", "/api/v1/language/{id}", "Get a specific language.", inPath("id", tInt)),
	op("get_localization", TagSystem, "GET", "/api/v1/localization", "Get localization."),
	op("get_log", TagSystem, "GET", "/api/v1/log", "Get system logs.", inQuery("page", tInt), inQuery("pageSize", tInt), inQuery("sortKey", tStr), inQuery("sortDirection", tStr), inQuery("level", tStr)),
	op("get_log_file", TagSystem, "GET", "/api/v1/log/file", "Get log files."),
	op("get_log_file_filename", TagSystem, "GET", "/api/v1/log/file/{filename}", "Get log file content.", inPath("filename", tStr)),
	op("post_manualimport", TagDownloads, "POST", "/api/v1/manualimport", "Add a new manualimport.", required(inPayload("data"))),
	op("get_manualimport", TagDownloads, "GET", "/api/v1/manualimport", "Get manualimport.", inQuery("folder", tStr), inQuery("downloadId", tStr), inQuery("authorId", tInt), inQuery("filterExistingFiles", tBool), inQuery("replaceExistingFiles", tBool)),
	op("get_mediacover_author_author_id_filename", TagCatalog, "GET", "/api/v1/mediacover/author/{authorId}/{filename}", "Get specific mediacover author author filename.", inPath("authorId", tInt), inPath("filename", tStr)),
	op("get_mediacover_book_book_id_filename", TagCatalog, "GET", "/api/v1/mediacover/book/{bookId}/{filename}", "Get specific mediacover book book filename.", inPath("bookId", tInt), inPath("filename", tStr)),
	op("get_config_mediamanagement", TagProfiles, "GET", "/api/v1/config/mediamanagement", "Get config mediamanagement."),
	op("put_config_mediamanagement_id", TagProfiles, "PUT", "/api/v1/config/mediamanagement/{id}", "Update config mediamanagement id.", inPath("id", tStr), required(inPayload("data"))),
	op("get_config_mediamanagement_id", TagProfiles, "GET", "/api/v1/config/mediamanagement/{id}", "Get specific media management configuration.", inPath("id", tInt)),
	op("get_metadata", TagCatalog, "GET", "/api/v1/metadata", "Get metadata consumers."),
	op("post_metadata", TagCatalog, "POST", "/api/v1/metadata", "Add a new metadata consumer.", required(inPayload("data")), inQuery("forceSave", tBool)),
	op("put_metadata_id", TagCatalog, "PUT", "/api/v1/metadata/{id}", "Update a metadata consumer.", inPath("id", tStr), required(inPayload("data")), inQuery("forceSave", tBool)),
	op("delete_metadata_id", TagCatalog, "DELETE", "/api/v1/metadata/{id}", "Delete a metadata consumer.", inPath("id", tInt)),
	op("get_metadata_id", TagCatalog, "GET", "/api/v1/metadata/{id}", "Get a specific metadata consumer.", inPath("id", tInt)),
	op("get_metadata_schema", TagCatalog, "GET", "/api/v1/metadata/schema", "Get metadata schema."),
	op("post_metadata_test", TagCatalog, "POST", "/api/v1/metadata/test", "Test metadata consumer.", required(inPayload("data")), inQuery("forceTest", tBool)),
	op("post_metadata_testall", TagCatalog, "POST", "/api/v1/metadata/testall", "Test all metadata consumers."),
	op("post_metadata_action_name", TagCatalog, "POST", "/api/v1/metadata/action/{name}", "Perform action on metadata consumer.", inPath("name", tStr), required(inPayload("data"))),
	op("post_metadataprofile", TagProfiles, "POST", "/api/v1/metadataprofile", "Add a new metadata profile.", required(inPayload("data"))),
	op("get_metadataprofile", TagProfiles, "GET", "/api/v1/metadataprofile", "Get metadata profiles."),
	op("delete_metadataprofile_id", TagProfiles, "DELETE", "/api/v1/metadataprofile/{id}", "Delete a metadata profile.", inPath("id", tInt)),
	op("put_metadataprofile_id", TagProfiles, "PUT", "/api/v1/metadataprofile/{id}", "Update a metadata profile.", inPath("id", tStr), required(inPayload("data"))),
	op("get_metadataprofile_id", TagProfiles, "GET", "/api/v1/metadataprofile/{id}", "Get a specific metadata profile.", inPath("id", tInt)),
	op("get_metadataprofile_schema", TagProfiles, "GET", "/api/v1/metadataprofile/schema", "Get metadata profile schema."),
	op("get_config_metadataprovider", TagProfiles, "GET", "/api/v1/config/metadataprovider", "Get metadata provider configuration."),
	op("put_config_metadataprovider_id", TagProfiles, "PUT", "/api/v1/config/metadataprovider/{id}", "Update metadata provider configuration.", inPath("id", tStr), required(inPayload("data"))),
	op("get_config_metadataprovider_id", TagProfiles, "GET", "/api/v1/config/metadataprovider/{id}", "Get specific metadata provider configuration.", inPath("id", tInt)),
	op("get_wanted_missing", TagCatalog, "GET", "/api/v1/wanted/missing", "Get missing books.", inQuery("page", tInt), inQuery("pageSize", tInt), inQuery("sortKey", tStr), inQuery("sortDirection", tStr), inQuery("includeAuthor", tBool), inQuery("monitored", tBool)),
	op("get_wanted_missing_id", TagCatalog, "GET", "/api/v1/wanted/missing/{id}", "Get missing books (paged).", inPath("id", tInt)),
	op("get_config_naming", TagProfiles, "GET", "/api/v1/config/naming", "Get naming configuration."),
	op("put_config_naming_id", TagProfiles, "PUT", "/api/v1/config/naming/{id}", "Update naming configuration.", inPath("id", tStr), required(inPayload("data"))),
	op("get_config_naming_id", TagProfiles, "GET", "/api/v1/config/naming/{id}", "Get specific naming configuration.", inPath("id", tInt)),
	op("get_config_naming_examples", TagProfiles, "GET", "/api/v1/config/naming/examples", "Get naming configuration examples.", inQuery("renameBooks", tBool), inQuery("replaceIllegalCharacters", tBool), inQuery("colonReplacementFormat", tInt), inQuery("standardBookFormat", tStr), inQuery("authorFolderFormat", tStr), inQuery("includeAuthorName", tBool), inQuery("includeBookTitle", tBool), inQuery("includeQuality", tBool), inQuery("replaceSpaces", tBool), inQuery("separator", tStr), inQuery("numberStyle", tStr), inQuery("id", tInt), inQuery("resourceName", tStr)),
	op("get_notification", TagConfig, "GET", "/api/v1/notification", "Get notifications."),
	op("post_notification", TagConfig, "POST", "/api/v1/notification", "Add a new notification.", required(inPayload("data")), inQuery("forceSave", tBool)),
	op("put_notification_id", TagConfig, "PUT", "/api/v1/notification/{id}", "Update a notification.", inPath("id", tStr), required(inPayload("data")), inQuery("forceSave", tBool)),
	op("delete_notification_id", TagConfig, "DELETE", "/api/v1/notification/{id}", "Delete a notification.", inPath("id", tInt)),
	op("get_notification_id", TagConfig, "GET", "/api/v1/notification/{id}", "Get a specific notification.", inPath("id", tInt)),
	op("get_notification_schema", TagConfig, "GET", "/api/v1/notification/schema", "Get notification schema."),
	op("post_notification_test", TagConfig, "POST", "/api/v1/notification/test", "Test notification.", required(inPayload("data")), inQuery("forceTest", tBool)),
	op("post_notification_testall", TagConfig, "POST", "/api/v1/notification/testall", "Test all notifications."),
	op("post_notification_action_name", TagConfig, "POST", "/api/v1/notification/action/{name}", "Perform action on notification.", inPath("name", tStr), required(inPayload("data"))),
	op("get_parse", TagOperations, "GET", "/api/v1/parse", "Parse book information.", inQuery("title", tStr)),
	op("get_ping", TagSystem, "GET", "/ping", "Get quality definitions."),
	op("put_qualitydefinition_id", TagProfiles, "PUT", "/api/v1/qualitydefinition/{id}", "Update quality definition.", inPath("id", tStr), required(inPayload("data"))),
	op("get_qualitydefinition_id", TagProfiles, "GET", "/api/v1/qualitydefinition/{id}", "Get specific quality definition.", inPath("id", tInt)),
	op("get_qualitydefinition", TagProfiles, "GET", "/api/v1/qualitydefinition", "Get quality profiles."),
	op("put_qualitydefinition_update", TagProfiles, "PUT", "/api/v1/qualitydefinition/update", "Add a new quality profile.", required(inPayload("data"))),
	op("post_qualityprofile", TagProfiles, "POST", "/api/v1/qualityprofile", "Update a quality profile.", required(inPayload("data"))),
	op("get_qualityprofile", TagProfiles, "GET", "/api/v1/qualityprofile", "Delete a quality profile."),
	op("delete_qualityprofile_id", TagProfiles, "DELETE", "/api/v1/qualityprofile/{id}", "Get a specific quality profile.", inPath("id", tInt)),
	op("put_qualityprofile_id", TagProfiles, "PUT", "/api/v1/qualityprofile/{id}", "Get quality profile schema.", inPath("id", tStr), required(inPayload("data"))),
	op("get_qualityprofile_id", TagProfiles, "GET", "/api/v1/qualityprofile/{id}", "Get queue.", inPath("id", tInt)),
	op("get_qualityprofile_schema", TagProfiles, "GET", "/api/v1/qualityprofile/schema", "Get queue details."),
	op("delete_queue_id", TagQueue, "DELETE", "/api/v1/queue/{id}", "Get queue status.", inPath("id", tInt), inQuery("removeFromClient", tBool), inQuery("blocklist", tBool), inQuery("skipRedownload", tBool), inQuery("changeCategory", tBool)),
	op("delete_queue_bulk", TagQueue, "DELETE", "/api/v1/queue/bulk", "Bulk delete queue items.", required(inPayload("data")), inQuery("removeFromClient", tBool), inQuery("blocklist", tBool), inQuery("skipRedownload", tBool), inQuery("changeCategory", tBool)),
	op("get_queue", TagQueue, "GET", "/api/v1/queue", "Get queue.", inQuery("page", tInt), inQuery("pageSize", tInt), inQuery("sortKey", tStr), inQuery("sortDirection", tStr), inQuery("includeUnknownAuthorItems", tBool), inQuery("includeAuthor", tBool), inQuery("includeBook", tBool)),
	op("post_queue_grab_id", TagQueue, "POST", "/api/v1/queue/grab/{id}", "Grab queue item.", inPath("id", tInt)),
	op("post_queue_grab_bulk", TagQueue, "POST", "/api/v1/queue/grab/bulk", "Bulk grab queue items.", required(inPayload("data"))),
	op("get_queue_details", TagQueue, "GET", "/api/v1/queue/details", "Get queue details.", inQuery("authorId", tInt), inQuery("bookIds", tArr), inQuery("includeAuthor", tBool), inQuery("includeBook", tBool)),
	op("get_queue_status", TagQueue, "GET", "/api/v1/queue/status", "Get queue status."),
	op("post_release", TagDownloads, "POST", "/api/v1/release", "Add a release.", required(inPayload("data"))),
	op("get_release", TagDownloads, "GET", "/api/v1/release", "Get releases.", inQuery("bookId", tInt), inQuery("authorId", tInt)),
	op("get_releaseprofile", TagProfiles, "GET", "/api/v1/releaseprofile", "Get release profiles."),
	op("post_releaseprofile", TagProfiles, "POST", "/api/v1/releaseprofile", "Add a release profile.", required(inPayload("data"))),
	op("put_releaseprofile_id", TagProfiles, "PUT", "/api/v1/releaseprofile/{id}", "Update a release profile.", inPath("id", tStr), required(inPayload("data"))),
	op("delete_releaseprofile_id", TagProfiles, "DELETE", "/api/v1/releaseprofile/{id}", "Delete a release profile.", inPath("id", tInt)),
	op("get_releaseprofile_id", TagProfiles, "GET", "/api/v1/releaseprofile/{id}", "Get a specific release profile.", inPath("id", tInt)),
	op("post_release_push", TagDownloads, "POST", "/api/v1/release/push", "Push release.", required(inPayload("data"))),
	op("post_remotepathmapping", TagConfig, "POST", "/api/v1/remotepathmapping", "Add remote path mapping.", required(inPayload("data"))),
	op("get_remotepathmapping", TagConfig, "GET", "/api/v1/remotepathmapping", "Get remote path mappings."),
	op("delete_remotepathmapping_id", TagConfig, "DELETE", "/api/v1/remotepathmapping/{id}", "Delete remote path mapping.", inPath("id", tInt)),
	op("put_remotepathmapping_id", TagConfig, "PUT", "/api/v1/remotepathmapping/{id}", "Update remote path mapping.", inPath("id", tStr), required(inPayload("data"))),
	op("get_remotepathmapping_id", TagConfig, "GET", "/api/v1/remotepathmapping/{id}", "Get specific remote path mapping.", inPath("id", tInt)),
	op("get_rename", TagCatalog, "GET", "/api/v1/rename", "Get rename suggestions.", inQuery("authorId", tInt), inQuery("bookId", tInt)),
	op("get_retag", TagCatalog, "GET", "/api/v1/retag", "Retag books.", inQuery("authorId", tInt), inQuery("bookId", tInt)),
	op("post_rootfolder", TagConfig, "POST", "/api/v1/rootfolder", "Add a new root folder.", required(inPayload("data"))),
	op("get_rootfolder", TagConfig, "GET", "/api/v1/rootfolder", "Get root folders."),
	op("put_rootfolder_id", TagConfig, "PUT", "/api/v1/rootfolder/{id}", "Update a root folder.", inPath("id", tStr), required(inPayload("data"))),
	op("delete_rootfolder_id", TagConfig, "DELETE", "/api/v1/rootfolder/{id}", "Delete a root folder.", inPath("id", tInt)),
	op("get_rootfolder_id", TagConfig, "GET", "/api/v1/rootfolder/{id}", "Get specific root folder.", inPath("id", tInt)),
	op("get_search", TagSearch, "GET", "/api/v1/search", "Search for books.", inQuery("term", tStr)),
	op("get_series", TagCatalog, "GET", "/api/v1/series", "Get series info.", inQuery("authorId", tInt)),
	op("get_content_path", TagSystem, "GET", "/content/{path}", "Get content path.", inPath("path", tStr)),
	op("get_", TagSystem, "GET", "/{path}", "Get resource by path.", inPath("path", tStr)),
	op("get_path", TagSystem, "GET", "/{path}", "Get system paths.", inPath("path", tStr)),
	op("get_system_status", TagSystem, "GET", "/api/v1/system/status", "Retrieve the current download queue."),
	op("get_system_routes", TagSystem, "GET", "/api/v1/system/routes", "Retrieve detailed entries in the download queue."),
	op("get_system_routes_duplicate", TagSystem, "GET", "/api/v1/system/routes/duplicate", "Retrieve status information for the download queue."),
	op("post_system_shutdown", TagSystem, "POST", "/api/v1/system/shutdown", "Retrieve the current system status of Chaptarr."),
	op("post_system_restart", TagSystem, "POST", "/api/v1/system/restart", "Retrieve available system routes."),
	op("get_tag", TagSystem, "GET", "/api/v1/tag", "Retrieve duplicate system routes."),
	op("post_tag", TagSystem, "POST", "/api/v1/tag", "Retrieve all system backups.", required(inPayload("data"))),
	op("put_tag_id", TagSystem, "PUT", "/api/v1/tag/{id}", "Delete a system backup by its ID.", inPath("id", tStr), required(inPayload("data"))),
	op("delete_tag_id", TagSystem, "DELETE", "/api/v1/tag/{id}", "Retrieve all defined tags.", inPath("id", tInt)),
	op("get_tag_id", TagSystem, "GET", "/api/v1/tag/{id}", "Add a new tag to Chaptarr.", inPath("id", tInt)),
	op("get_tag_detail", TagSystem, "GET", "/api/v1/tag/detail", "Delete an existing tag."),
	op("get_tag_detail_id", TagSystem, "GET", "/api/v1/tag/detail/{id}", "Retrieve details for a specific tag by its ID.", inPath("id", tInt)),
	op("get_system_task", TagSystem, "GET", "/api/v1/system/task", "Retrieve detailed usage information for all tags."),
	op("get_system_task_id", TagSystem, "GET", "/api/v1/system/task/{id}", "Retrieve detailed usage information for a specific tag.", inPath("id", tInt)),
	op("put_config_ui_id", TagSystem, "PUT", "/api/v1/config/ui/{id}", "Retrieve information about system tasks.", inPath("id", tStr), required(inPayload("data"))),
	op("get_config_ui_id", TagSystem, "GET", "/api/v1/config/ui/{id}", "Retrieve details for a specific system task.", inPath("id", tInt)),
	op("get_config_ui", TagSystem, "GET", "/api/v1/config/ui", "Retrieve logs for system tasks."),
	op("get_update", TagSystem, "GET", "/api/v1/update", "Retrieve logs for a specific system task."),
	op("get_log_file_update", TagSystem, "GET", "/api/v1/log/file/update", "Retrieve available log file updates."),
	op("get_log_file_update_filename", TagSystem, "GET", "/api/v1/log/file/update/{filename}", "Retrieve content of a specific log file update.", inPath("filename", tStr)),
}
