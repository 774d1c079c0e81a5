package config

const (
	// APIKeyEnv is the environment variable consulted when --api-key is
	// not given. You can find your key at https://www.pastery.net/account/.
	APIKeyEnv = "PASTERY_API_KEY"

	// DefaultDuration is the paste lifetime applied when --duration is
	// not given.
	DefaultDuration = "1d"
)
