// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// A missing config file is normal; built-in defaults apply.
package config
