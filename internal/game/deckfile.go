package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DeckFile represents the top-level YAML structure of a deck list file.
type DeckFile struct {
	Decks []DeckEntry `yaml:"decks"`
}

// DeckEntry represents a single named deck in the YAML file.
type DeckEntry struct {
	Name  string      `yaml:"name"`
	Cards []CardEntry `yaml:"cards"`
}

// CardEntry represents a card and its count in a deck.
type CardEntry struct {
	Name     string `yaml:"name"`
	Count    int    `yaml:"count"`
	Upgraded bool   `yaml:"upgraded,omitempty"`
}

// ParseDeckFile parses a YAML deck file and returns a map of deck name → card slice.
func ParseDeckFile(path string) (map[string][]*Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var df DeckFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("parse deck YAML: %w", err)
	}

	decks := make(map[string][]*Card)
	for _, deck := range df.Decks {
		cards, err := buildDeck(deck)
		if err != nil {
			return nil, err
		}
		decks[deck.Name] = cards
	}

	return decks, nil
}

// DeckByName returns the named deck from the deck file.
func DeckByName(path, name string) ([]*Card, error) {
	decks, err := ParseDeckFile(path)
	if err != nil {
		return nil, err
	}
	cards, ok := decks[name]
	if !ok {
		return nil, fmt.Errorf("deck %q not found in %s", name, path)
	}
	return cards, nil
}

func buildDeck(deck DeckEntry) ([]*Card, error) {
	var cards []*Card
	for _, entry := range deck.Cards {
		card, err := LookupCard(entry.Name)
		if err != nil {
			return nil, fmt.Errorf("deck %q: %w", deck.Name, err)
		}
		if entry.Upgraded {
			card = card.WithUpgrade()
		}
		count := entry.Count
		if count == 0 {
			count = 1
		}
		for i := 0; i < count; i++ {
			cards = append(cards, card)
		}
	}
	return cards, nil
}

// --- Encounter files ---

// EncounterFile represents the top-level YAML structure of an encounter file.
type EncounterFile struct {
	Encounters []EncounterEntry `yaml:"encounters"`
}

// EncounterEntry is one named enemy roster.
type EncounterEntry struct {
	Name    string       `yaml:"name"`
	Enemies []EnemyEntry `yaml:"enemies"`
}

// EnemyEntry describes one enemy slot. Attack and Block parameterize the
// default scaling pattern; a zero Attack gets the stock values.
type EnemyEntry struct {
	Name   string `yaml:"name"`
	HP     int    `yaml:"hp"`
	Attack int    `yaml:"attack,omitempty"`
	Block  int    `yaml:"block,omitempty"`
}

// ParseEncounterFile parses a YAML encounter file into enemy configs by
// encounter name.
func ParseEncounterFile(path string) (map[string][]EnemyConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var ef EncounterFile
	if err := yaml.Unmarshal(data, &ef); err != nil {
		return nil, fmt.Errorf("parse encounter YAML: %w", err)
	}

	encounters := make(map[string][]EnemyConfig)
	for _, enc := range ef.Encounters {
		var enemies []EnemyConfig
		for _, e := range enc.Enemies {
			cfg := EnemyConfig{Name: e.Name, MaxHP: e.HP}
			if e.Attack > 0 {
				block := e.Block
				if block == 0 {
					block = 8
				}
				cfg.Selector = NewPatternSelector(e.Attack, block)
			}
			enemies = append(enemies, cfg)
		}
		encounters[enc.Name] = enemies
	}

	return encounters, nil
}

// EncounterByName returns the named enemy roster from an encounter file.
func EncounterByName(path, name string) ([]EnemyConfig, error) {
	encounters, err := ParseEncounterFile(path)
	if err != nil {
		return nil, err
	}
	enemies, ok := encounters[name]
	if !ok {
		return nil, fmt.Errorf("encounter %q not found in %s", name, path)
	}
	return enemies, nil
}
