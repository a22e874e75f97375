package cli

const (
	FlagHome   = "home"
	FlagFormat = "format"
	FlagTag    = "tag"
	FlagRecord = "record"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)
