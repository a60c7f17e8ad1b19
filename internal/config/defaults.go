package config

// Well-known tool ids. These match the ids the registry registers at
// process start and the ids used throughout the configuration file.
const (
	ToolBookmarkValidator = "bookmarkValidator"
	ToolBookmarkImporter  = "bookmarkImporter"
	ToolAIOptimizer       = "aiOptimizer"
	ToolDuplicateDetector = "duplicateDetector"
	ToolFolderOrganizer   = "folderOrganizer"
)

func defaultFeatureFlags() map[string]bool {
	return map[string]bool{
		"enableAI":           true,
		"enableBatchImport":  true,
		"enableRealTimeSync": false,
	}
}

// defaultToolMaps returns the built-in tool configuration in the loosely
// typed form viper expects for defaults. The folder organizer ships
// disabled and depends on the optimizer having produced categories.
func defaultToolMaps() []map[string]any {
	return []map[string]any{
		{
			"id":       ToolBookmarkValidator,
			"name":     "Bookmark Validator",
			"enabled":  true,
			"priority": 10,
			"settings": map[string]any{
				"max_retries": 3,
				"timeout":     "5s",
			},
		},
		{
			"id":       ToolBookmarkImporter,
			"name":     "Bookmark Importer",
			"enabled":  true,
			"priority": 20,
			"settings": map[string]any{
				"max_file_size":     10 * 1024 * 1024,
				"supported_formats": []string{"html", "json"},
			},
		},
		{
			"id":       ToolAIOptimizer,
			"name":     "AI Optimizer",
			"enabled":  true,
			"priority": 30,
			"settings": map[string]any{
				"auto_categorize": true,
				"generate_alias":  true,
				"extract_tags":    true,
			},
		},
		{
			"id":       ToolDuplicateDetector,
			"name":     "Duplicate Detector",
			"enabled":  true,
			"priority": 40,
			"settings": map[string]any{
				"similarity_threshold": 0.8,
			},
		},
		{
			"id":           ToolFolderOrganizer,
			"name":         "Folder Organizer",
			"enabled":      false,
			"priority":     50,
			"dependencies": []string{ToolAIOptimizer},
			"settings": map[string]any{
				"auto_create_folders": true,
				"max_folder_depth":    3,
			},
		},
	}
}
