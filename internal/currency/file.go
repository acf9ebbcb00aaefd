package currency

import (
	"fmt"

	"github.com/VladPetriv/currency_bot/internal/models"
	"github.com/VladPetriv/currency_bot/pkg/money"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/samber/lo"
)

type registryFile struct {
	Currencies []currencyEntry `yaml:"currencies" json:"currencies" toml:"currencies"`
	Groups     [][]string      `yaml:"groups" json:"groups" toml:"groups"`
}

type currencyEntry struct {
	Code      string   `yaml:"code" json:"code" toml:"code"`
	Triggers  []string `yaml:"triggers" json:"triggers" toml:"triggers"`
	Symbol    string   `yaml:"symbol" json:"symbol" toml:"symbol"`
	DropLimit float64  `yaml:"drop_limit" json:"drop_limit" toml:"drop_limit"`
}

// LoadRegistry reads a registry from a YAML, JSON or TOML file.
// Currencies keep the file order, which becomes the detection order.
func LoadRegistry(path string) (*Registry, error) {
	var file registryFile

	err := cleanenv.ReadConfig(path, &file)
	if err != nil {
		return nil, fmt.Errorf("read registry file: %w", err)
	}

	definitions := lo.Map(file.Currencies, func(entry currencyEntry, _ int) models.CurrencyDefinition {
		return models.CurrencyDefinition{
			Code:      entry.Code,
			Triggers:  entry.Triggers,
			Symbol:    entry.Symbol,
			DropLimit: money.NewFromFloat(entry.DropLimit),
		}
	})
	groups := lo.Map(file.Groups, func(codes []string, _ int) models.CurrencyGroup {
		return models.CurrencyGroup{Codes: codes}
	})

	registry, err := NewRegistry(definitions, groups)
	if err != nil {
		return nil, fmt.Errorf("build registry from %s: %w", path, err)
	}

	return registry, nil
}
