package entity

// UserAccount is the logged-in library account. Username keys the per-account
// archive file; Token is the seat service session established by login.
type UserAccount struct {
	Username   string `gorm:"column:username;primaryKey" json:"username"`
	Token      string `gorm:"column:token" json:"-"`
	LineUserID string `gorm:"column:line_user_id" json:"-"` // Push target for fired alerts, optional
	Active     bool   `gorm:"column:active" json:"-"`
}

// TableName specifies the table name for the UserAccount entity.
func (UserAccount) TableName() string {
	return "user_account"
}

// NotificationPreferences holds the per-account alert enable flags. Written
// by the settings endpoint, read-only to the scheduling engine.
type NotificationPreferences struct {
	Username    string `gorm:"column:username;primaryKey" json:"-"`
	Enabled     bool   `gorm:"column:enabled" json:"enabled"`
	ReserveOpen bool   `gorm:"column:reserve_open" json:"autoReserveReminder"`
	Upcoming    bool   `gorm:"column:upcoming" json:"upcomingReminder"`
	End         bool   `gorm:"column:end" json:"endReminder"`
	TempAway    bool   `gorm:"column:temp_away" json:"tempAwayExpiryReminder"`
}

// TableName specifies the table name for the NotificationPreferences entity.
func (NotificationPreferences) TableName() string {
	return "notification_preferences"
}

// DefaultPreferences returns the preferences a fresh account starts with:
// everything enabled.
func DefaultPreferences(username string) *NotificationPreferences {
	return &NotificationPreferences{
		Username:    username,
		Enabled:     true,
		ReserveOpen: true,
		Upcoming:    true,
		End:         true,
		TempAway:    true,
	}
}
