package config

// Layout constants.
const (
	// MinBoardCellWidth is the narrowest a prayer board cell may get.
	MinBoardCellWidth = 12

	// CompactModeThreshold drops the large clock below this width.
	CompactModeThreshold = 70

	// MaxQuoteWidth caps the wrapped width of the quote panel.
	MaxQuoteWidth = 90

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "…"
)

// Input constraints.
const (
	// MaxProfileFieldLength limits name and location fields.
	MaxProfileFieldLength = 80

	// MaxAnnouncementLength limits the announcement body.
	MaxAnnouncementLength = 400
)
