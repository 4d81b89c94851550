package config

// Config holds the process-wide settings for the relay. It is populated
// once at startup from the environment and passed explicitly to every
// component that needs it; nothing reads the environment after startup.
type Config struct {
	// BindAddress is the listen address for the HTTP server
	BindAddress string

	// LogLevel is the hclog output level [debug, info, trace]
	LogLevel string

	// TriggerSecret is the shared secret expected in the inbound
	// Authorization header as "Bearer <TriggerSecret>"
	TriggerSecret string `validate:"required"`

	// Owner is the GitHub owner of the repository receiving dispatch events
	Owner string `validate:"required"`

	// Repo is the GitHub repository name receiving dispatch events
	Repo string `validate:"required"`

	// Token is the GitHub API credential used for the outbound call,
	// distinct from TriggerSecret
	Token string `validate:"required"`

	// APIBaseURL is the base URL of the GitHub REST API
	APIBaseURL string `validate:"required,url"`

	// DefaultSite is substituted when the inbound payload omits "site"
	DefaultSite string `validate:"required,url"`
}
