package constants

const (
	// DateLayout is the only form calendar dates take across API boundaries
	DateLayout = "2006-01-02"
	// TimeLayout is the 24-hour form event times take across API boundaries
	TimeLayout = "15:04"

	// CalendarGridDays is the fixed month-view size: 6 full weeks
	CalendarGridDays = 42
	// MaxDotIndicators is the most per-event dots a day cell renders before
	// collapsing into a numeric count badge
	MaxDotIndicators = 3

	// DefaultFriendColor is used when a friend is created without a color
	DefaultFriendColor = "#3B82F6"
	// UnknownFriendName is the placeholder shown for dangling friend references
	UnknownFriendName = "Unknown"

	// IdeaFilterAll is the sentinel category filter matching every idea
	IdeaFilterAll = "all"
	// IdeaStatusSuggested is the initial status of a newly created idea
	IdeaStatusSuggested = "suggested"

	// DefaultServerPort is used when SERVER_PORT is not configured
	DefaultServerPort = 7070
)
