package settings

// SystemSettings is the per-deployment configuration record. There is at
// most one; reads of an absent or unreadable record return Default().
type SystemSettings struct {
	// APIKey is the translation-gateway credential. An empty value falls
	// back to the process environment.
	APIKey          string `json:"api_key"`
	ShowDemoBanner  bool   `json:"show_demo_banner"`
	MaintenanceMode bool   `json:"maintenance_mode"`
}

// Default is the documented fallback for a fresh or corrupt record.
func Default() SystemSettings {
	return SystemSettings{
		APIKey:          "",
		ShowDemoBanner:  true,
		MaintenanceMode: false,
	}
}
