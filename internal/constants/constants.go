package constants

const (
	// DefaultUserListLimit caps GET /api/users when no limit is given.
	DefaultUserListLimit = 50

	// DefaultTaskListLimit caps GET /api/tasks when no limit is given.
	DefaultTaskListLimit = 100

	// DefaultStandupListLimit caps the recent-standups projection.
	DefaultStandupListLimit = 20

	// MaxListLimit is the hard ceiling for any caller-supplied limit.
	MaxListLimit = 500
)
