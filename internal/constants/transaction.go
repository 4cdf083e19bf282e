package constants

const (
	// Log line layout
	TimestampFormat = "2006-01-02 15:04:05"
	LogFieldSep     = " | "
	LogFromPrefix   = "From: "
	LogToPrefix     = "To: "
	LogAmountPrefix = "Amount: $"

	DefaultHistoryLimit = 50
)
