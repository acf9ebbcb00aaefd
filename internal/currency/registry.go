package currency

import (
	"fmt"

	"github.com/VladPetriv/currency_bot/internal/models"
	"github.com/VladPetriv/currency_bot/pkg/money"
	"github.com/samber/lo"
)

// Registry is the immutable set of recognised currencies and their display groups.
// The order of definitions is the detection order.
type Registry struct {
	definitions []models.CurrencyDefinition
	byCode      map[string]models.CurrencyDefinition
	groups      []models.CurrencyGroup
}

// NewRegistry validates definitions and groups and builds a registry from them.
func NewRegistry(definitions []models.CurrencyDefinition, groups []models.CurrencyGroup) (*Registry, error) {
	if len(definitions) == 0 {
		return nil, fmt.Errorf("registry has no currency definitions")
	}

	byCode := make(map[string]models.CurrencyDefinition, len(definitions))
	for _, definition := range definitions {
		if definition.Code == "" {
			return nil, fmt.Errorf("currency definition without code")
		}
		if _, ok := byCode[definition.Code]; ok {
			return nil, fmt.Errorf("duplicate currency code %s", definition.Code)
		}

		triggers := lo.Compact(definition.Triggers)
		if len(triggers) == 0 {
			return nil, fmt.Errorf("currency %s has no triggers", definition.Code)
		}

		definition.Triggers = triggers
		byCode[definition.Code] = definition
	}

	seen := make(map[string]int)
	for index, group := range groups {
		for _, code := range group.Codes {
			if _, ok := byCode[code]; !ok {
				return nil, fmt.Errorf("group %d references unknown currency %s", index, code)
			}
			if previous, ok := seen[code]; ok {
				return nil, fmt.Errorf("currency %s belongs to groups %d and %d", code, previous, index)
			}

			seen[code] = index
		}
	}

	return &Registry{
		definitions: lo.Map(definitions, func(definition models.CurrencyDefinition, _ int) models.CurrencyDefinition {
			return byCode[definition.Code]
		}),
		byCode: byCode,
		groups: lo.Map(groups, func(group models.CurrencyGroup, _ int) models.CurrencyGroup {
			return models.CurrencyGroup{Codes: append([]string(nil), group.Codes...)}
		}),
	}, nil
}

// Lookup returns the definition registered under code.
func (r *Registry) Lookup(code string) (models.CurrencyDefinition, bool) {
	definition, ok := r.byCode[code]
	return definition, ok
}

// Definitions returns all definitions in detection order.
func (r *Registry) Definitions() []models.CurrencyDefinition {
	return append([]models.CurrencyDefinition(nil), r.definitions...)
}

// Groups returns display groups in their configured order.
func (r *Registry) Groups() []models.CurrencyGroup {
	return append([]models.CurrencyGroup(nil), r.groups...)
}

// GroupOf returns the group that contains code.
func (r *Registry) GroupOf(code string) (models.CurrencyGroup, bool) {
	return lo.Find(r.groups, func(group models.CurrencyGroup) bool {
		return lo.Contains(group.Codes, code)
	})
}

// DefaultRegistry returns the built-in registry.
// Detection order: USD, EUR, UAH, GEL, RSD, RUB, TRY.
func DefaultRegistry() *Registry {
	registry, err := NewRegistry(defaultDefinitions(), defaultGroups())
	if err != nil {
		panic(fmt.Sprintf("built-in currency registry is invalid: %v", err))
	}

	return registry
}

func defaultDefinitions() []models.CurrencyDefinition {
	return []models.CurrencyDefinition{
		{
			Code:      "USD",
			Triggers:  []string{"USD", "$", "доллар"},
			Symbol:    "$",
			DropLimit: money.NewFromInt(10),
		},
		{
			Code:      "EUR",
			Triggers:  []string{"EUR", "€", "евро"},
			Symbol:    "€",
			DropLimit: money.NewFromInt(10),
		},
		{
			Code:      "UAH",
			Triggers:  []string{"UAH", "₴", "грн", "гривен"},
			Symbol:    "₴",
			DropLimit: money.NewFromInt(400),
		},
		{
			Code:      "GEL",
			Triggers:  []string{"GEL", "₾", "лари"},
			Symbol:    "₾",
			DropLimit: money.NewFromInt(30),
		},
		{
			Code:      "RSD",
			Triggers:  []string{"RSD", "динар"},
			Symbol:    "Д",
			DropLimit: money.NewFromInt(500),
		},
		{
			Code:      "RUB",
			Triggers:  []string{"RUB", "₽", "рубл"},
			Symbol:    "₽",
			DropLimit: money.NewFromInt(500),
		},
		{
			Code:      "TRY",
			Triggers:  []string{"TRY", "₺", "лир"},
			Symbol:    "₺",
			DropLimit: money.NewFromInt(300),
		},
	}
}

func defaultGroups() []models.CurrencyGroup {
	return []models.CurrencyGroup{
		{Codes: []string{"USD", "EUR"}},
		{Codes: []string{"RUB", "GEL", "UAH"}},
		{Codes: []string{"RSD", "TRY"}},
	}
}
