package configs

import (
	"fmt"
	"os"

	kerrors "github.com/PolarWolf314/keepsake/internal/errors"
	"github.com/PolarWolf314/keepsake/internal/reveal"
)

type Config struct {
	Page  Page         `toml:"page"`
	Items []ItemConfig `toml:"items"`
}

type Page struct {
	Title   string `toml:"title"`
	Partner string `toml:"partner"`
}

type ItemConfig struct {
	ID     string `toml:"id"`
	Secret string `toml:"secret"`
	Hint   string `toml:"hint"`
	Value  string `toml:"value"`
}

// DefaultConfig returns the configuration written by `keepsake config init`.
func DefaultConfig() *Config {
	return &Config{
		Page: Page{
			Title:   "Feliz 6 meses de nós",
			Partner: "meu amor",
		},
		Items: []ItemConfig{
			{ID: string(reveal.EngagementDate), Secret: "anel", Hint: "O que cabe no teu dedo?", Value: "Em breve ♥"},
			{ID: string(reveal.WeddingDate), Secret: "primavera", Hint: "Em que estação?", Value: "Quando as flores voltarem"},
			{ID: string(reveal.ProposalPlan), Secret: "praia", Hint: "Onde gostamos de ver o pôr do sol?", Value: "Surpresa à beira-mar"},
			{ID: string(reveal.Future), Secret: "quercasarcomigo?", Hint: "A pergunta mais importante", Value: "Sim, para a vida toda"},
		},
	}
}

// LoadConfig loads config.toml. Defaults are returned when the file does not
// exist yet.
func LoadConfig() (*Config, error) {
	path := KeepsakeSettings.ConfigPath()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	config := &Config{}
	if err := LoadTOML(path, config); err != nil {
		return nil, fmt.Errorf("failed to load config %s: %v: %w", path, err, kerrors.ErrInvalidConfig)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig writes config.toml after validating it.
func SaveConfig(config *Config) error {
	if err := config.Validate(); err != nil {
		return err
	}
	if err := SaveTOML(KeepsakeSettings.ConfigPath(), config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

// ConfigExists reports whether config.toml has been written.
func ConfigExists() (bool, error) {
	_, err := os.Stat(KeepsakeSettings.ConfigPath())
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Validate checks every item names a known gated item exactly once and has
// a secret that survives normalization.
func (c *Config) Validate() error {
	seen := make(map[string]bool, len(c.Items))
	for i, item := range c.Items {
		if _, err := reveal.ParseItemID(item.ID); err != nil {
			return fmt.Errorf("items[%d]: %v: %w", i, err, kerrors.ErrInvalidConfig)
		}
		if seen[item.ID] {
			return fmt.Errorf("items[%d]: duplicate item %q: %w", i, item.ID, kerrors.ErrInvalidConfig)
		}
		seen[item.ID] = true
		if reveal.Normalize(item.Secret) == "" {
			return fmt.Errorf("items[%d]: item %q has no secret: %w", i, item.ID, kerrors.ErrInvalidConfig)
		}
	}
	return nil
}

// GatedItems converts the configured items for reveal.NewGate.
func (c *Config) GatedItems() []reveal.Item {
	items := make([]reveal.Item, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, reveal.Item{
			ID:             reveal.ItemID(item.ID),
			RequiredSecret: item.Secret,
			Hint:           item.Hint,
			Value:          item.Value,
		})
	}
	return items
}
