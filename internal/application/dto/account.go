package dto

// LoginRequest is the DTO for logging an account in.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AccountResponse is the DTO for the logged-in account.
type AccountResponse struct {
	Username string `json:"username"`
}

// PreferencesRequest is the DTO for updating notification preferences.
type PreferencesRequest struct {
	Enabled             bool `json:"enabled"`
	AutoReserveReminder bool `json:"autoReserveReminder"`
	UpcomingReminder    bool `json:"upcomingReminder"`
	EndReminder         bool `json:"endReminder"`
	TempAwayReminder    bool `json:"tempAwayExpiryReminder"`
}

// ErrorResponse is the DTO for a structured error payload.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
