package request

// UpdateSettingsRequest carries a partial set of settings to store.
type UpdateSettingsRequest struct {
	Settings map[string]string `json:"settings" binding:"required"`
}
