package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Rarity drives reward magnitude and presentation styling only.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
	RarityMythic    Rarity = "mythic"
)

func (r Rarity) IsValid() bool {
	switch r {
	case RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary, RarityMythic:
		return true
	default:
		return false
	}
}

// Rank orders rarities by increasing scarcity. Unknown rarities sort first.
func (r Rarity) Rank() int {
	switch r {
	case RarityCommon:
		return 1
	case RarityUncommon:
		return 2
	case RarityRare:
		return 3
	case RarityEpic:
		return 4
	case RarityLegendary:
		return 5
	case RarityMythic:
		return 6
	default:
		return 0
	}
}

// Card is one collectible. Cards are defined in cards.yaml and never change
// at runtime.
type Card struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Rarity      Rarity `yaml:"rarity"`
	Category    string `yaml:"category"`
	Series      string `yaml:"series"`

	XPReward     int `yaml:"xp_reward"`
	CreditReward int `yaml:"credit_reward"`

	Secret          bool   `yaml:"secret"`
	DiscoveryHint   string `yaml:"hint,omitempty"`
	UnlockCondition string `yaml:"unlock_condition,omitempty"`

	// MaxSupply is carried over from the card data but no rule reads it.
	MaxSupply int `yaml:"max_supply,omitempty"`
}

// HintText returns the hint shown for a card the player has not discovered.
// Secret cards never leak their hint.
func (c Card) HintText() string {
	if c.Secret {
		return "???"
	}
	if c.DiscoveryHint != "" {
		return c.DiscoveryHint
	}
	return "Keep playing…"
}

//go:embed cards.yaml
var cardsYAML []byte

// Catalog is the validated, read-only card database. Built once at startup.
type Catalog struct {
	cards []Card
	byID  map[string]Card
}

// Load parses and validates the embedded card database.
func Load() (*Catalog, error) {
	var file struct {
		Cards []Card `yaml:"cards"`
	}
	if err := yaml.Unmarshal(cardsYAML, &file); err != nil {
		return nil, fmt.Errorf("parse cards.yaml: %w", err)
	}
	if len(file.Cards) == 0 {
		return nil, fmt.Errorf("cards.yaml: no cards defined")
	}

	byID := make(map[string]Card, len(file.Cards))
	for _, c := range file.Cards {
		if c.ID == "" {
			return nil, fmt.Errorf("cards.yaml: card %q has no id", c.Name)
		}
		if _, dup := byID[c.ID]; dup {
			return nil, fmt.Errorf("cards.yaml: duplicate card id %q", c.ID)
		}
		if c.Name == "" {
			return nil, fmt.Errorf("cards.yaml: card %q has no name", c.ID)
		}
		if !c.Rarity.IsValid() {
			return nil, fmt.Errorf("cards.yaml: card %q has unknown rarity %q", c.ID, c.Rarity)
		}
		if c.XPReward < 0 || c.CreditReward < 0 {
			return nil, fmt.Errorf("cards.yaml: card %q has negative rewards", c.ID)
		}
		byID[c.ID] = c
	}

	return &Catalog{cards: file.Cards, byID: byID}, nil
}

// Get looks up a card by id.
func (c *Catalog) Get(id string) (Card, bool) {
	card, ok := c.byID[id]
	return card, ok
}

// All returns every card in definition order.
func (c *Catalog) All() []Card {
	out := make([]Card, len(c.cards))
	copy(out, c.cards)
	return out
}

// Len returns the number of cards in the catalog.
func (c *Catalog) Len() int {
	return len(c.cards)
}

// Series returns the distinct series names in first-appearance order.
func (c *Catalog) Series() []string {
	var names []string
	seen := map[string]bool{}
	for _, card := range c.cards {
		if !seen[card.Series] {
			seen[card.Series] = true
			names = append(names, card.Series)
		}
	}
	return names
}

// BySeries returns the cards in the given series, in definition order.
func (c *Catalog) BySeries(series string) []Card {
	var out []Card
	for _, card := range c.cards {
		if card.Series == series {
			out = append(out, card)
		}
	}
	return out
}
