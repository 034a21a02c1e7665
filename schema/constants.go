package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// Endpoint represents an Analytics API surface.
	Endpoint string
)

// All output modes supported.
const (
	TableOut   OutputMode = "table" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All Analytics API surfaces supported.
const (
	UserActivityEndpoint   Endpoint = "user-activity"
	DailyUsageEndpoint     Endpoint = "daily-usage"
	DAUCountEndpoint       Endpoint = "dau-count"
	EditorLanguageEndpoint Endpoint = "daily-user-activity-by-editor-language"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TableOut:   {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}
