package repository

// CreateUserOptions holds parameters for inserting a new User.
type CreateUserOptions struct {
	Name         string
	Email        string
	PasswordHash string
	Timezone     string
}

// GetOneUserOptions holds filter parameters for fetching a single User.
// All non-empty fields are applied as AND conditions.
type GetOneUserOptions struct {
	ID    string
	Email string
}

// UpdateUserOptions holds the full post-update field set for a User.
type UpdateUserOptions struct {
	ID               string
	Name             string
	Timezone         string
	NotificationTime string
	ReminderOffset   int
}
