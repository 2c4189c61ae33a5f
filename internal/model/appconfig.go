package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Defaults applied to new projects
	DefaultLaborersPerDay      int     `json:"default_laborers_per_day"`
	DefaultWorkingHours        float64 `json:"default_working_hours"`
	DefaultLabourRatePerDay    float64 `json:"default_labour_rate_per_day"`
	DefaultMarginPercent       float64 `json:"default_margin_percent"`
	DefaultDealerMarginPercent float64 `json:"default_dealer_margin_percent"`
	DefaultPackStrategy        string  `json:"default_pack_strategy"`

	// Application preferences
	Currency       string   `json:"currency"`
	RecentProjects []string `json:"recent_projects"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching the values from DefaultSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	return AppConfig{
		DefaultLaborersPerDay:      defaults.LaborersPerDay,
		DefaultWorkingHours:        defaults.WorkingHoursPerDay,
		DefaultLabourRatePerDay:    defaults.LabourRatePerDay,
		DefaultMarginPercent:       defaults.MarginPercent,
		DefaultDealerMarginPercent: defaults.DealerMarginPercent,
		DefaultPackStrategy:        string(defaults.PackStrategy),
		Currency:                   "INR",
		RecentProjects:             []string{},
	}
}

// ApplyToSettings copies the configured defaults into an EstimateSettings.
// Used when creating a new project so it inherits the user's saved defaults.
func (c AppConfig) ApplyToSettings(s *EstimateSettings) {
	s.LaborersPerDay = c.DefaultLaborersPerDay
	s.WorkingHoursPerDay = c.DefaultWorkingHours
	s.LabourRatePerDay = c.DefaultLabourRatePerDay
	s.MarginPercent = c.DefaultMarginPercent
	s.DealerMarginPercent = c.DefaultDealerMarginPercent
	if c.DefaultPackStrategy != "" {
		s.PackStrategy = PackStrategyKind(c.DefaultPackStrategy)
	}
}
