package model

import "time"

// User is a registered account. Timezone drives all local-day bucketing
// for the user's tasks and completion history.
type User struct {
	ID               string
	Name             string
	Email            string
	PasswordHash     string
	Timezone         string // IANA identifier, e.g. "Asia/Ho_Chi_Minh"
	NotificationTime string // HH:MM
	ReminderOffset   int    // minutes before due
	CreatedAt        time.Time
}
