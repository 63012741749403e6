// Package config manages user-level settings stored at ~/.appskel/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the default catalog name and the permission bits for created entries.
package config
