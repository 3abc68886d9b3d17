// Package config manages user-level settings stored at ~/.anvil/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the default project language and an optional recipe overlay file.
package config
