package driven

// ConfigStore provides access to application configuration: storage
// backend selection, insight credentials, log level. Distinct from
// the user-facing Settings record, which is domain state.
// Implementations handle persistence (e.g., TOML files) and type
// conversion.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	// Returns empty string if key doesn't exist or isn't a string.
	GetString(key string) string

	// GetInt retrieves an integer configuration value.
	// Returns 0 if key doesn't exist or isn't an integer.
	GetInt(key string) int

	// GetBool retrieves a boolean configuration value.
	// Returns false if key doesn't exist or isn't a boolean.
	GetBool(key string) bool

	// Set stores a configuration value.
	// The value is persisted immediately.
	Set(key string, value any) error

	// Load reads configuration from storage.
	Load() error

	// Path returns the configuration file path.
	Path() string
}

// Well-known configuration keys.
const (
	// ConfigStorageBackend selects the durable store: "file" or "sqlite".
	ConfigStorageBackend = "storage.backend"

	// ConfigStorageDir overrides the data directory.
	ConfigStorageDir = "storage.dir"

	// ConfigInsightAPIKey is the OpenAI API key.
	ConfigInsightAPIKey = "insight.api_key"

	// ConfigInsightModel overrides the narrative model.
	ConfigInsightModel = "insight.model"

	// ConfigInsightBaseURL overrides the API base URL.
	ConfigInsightBaseURL = "insight.base_url"

	// ConfigInsightTimeoutSeconds bounds the narrative request.
	ConfigInsightTimeoutSeconds = "insight.timeout_seconds"

	// ConfigLogLevel sets the log verbosity.
	ConfigLogLevel = "log.level"
)
