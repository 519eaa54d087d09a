// Package configs manages keepsake's settings and configuration file.
//
// # Settings
//
// KeepsakeSettings is resolved at startup:
//
//   - ConfigDir: $XDG_CONFIG_HOME/keepsake (os.UserConfigDir)
//   - DataDir: $XDG_DATA_HOME/keepsake, falling back to ~/.local/share/keepsake
//
// Setting KEEPSAKE_HOME points both at a single directory.
//
// # Configuration
//
// config.toml holds the page details and the gated items:
//
//	[page]
//	title = "Feliz 6 meses de nós"
//
//	[[items]]
//	id = "future"
//	secret = "quercasarcomigo?"
//	hint = "A pergunta mais importante"
//	value = "Sim, para a vida toda"
//
// A missing file yields DefaultConfig. Secrets are plain strings compared
// after reveal.Normalize; they are not protected in any way.
package configs
