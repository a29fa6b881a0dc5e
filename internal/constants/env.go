package constants

const (
	// EnvConfigPath overrides the configuration file location.
	EnvConfigPath = "GOODREADME_CONFIG"

	// EnvGitHubToken is checked first for the profile service credential.
	EnvGitHubToken = "GOODREADME_GITHUB_TOKEN"

	// EnvGitHubTokenFallback is the conventional GitHub token variable.
	EnvGitHubTokenFallback = "GITHUB_TOKEN"

	// EnvFile is the dotenv file loaded from the working directory, if present.
	EnvFile = ".env"
)
