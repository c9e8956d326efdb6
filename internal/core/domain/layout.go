package domain

const (
	// ConfigFileName is the name of the configuration file discovered from the working directory.
	ConfigFileName = "todo.yaml"

	// ConfigEnvVar names an environment variable holding an explicit config file path.
	ConfigEnvVar = "TODO_CONFIG"

	// ConfigVersion is the config file version understood by this build.
	ConfigVersion = "1"
)
