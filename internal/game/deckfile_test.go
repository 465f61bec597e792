package game

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTempYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "file.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseDeckFile(t *testing.T) {
	path := writeTempYAML(t, `
decks:
  - name: Ironclad Starter
    cards:
      - name: Strike
        count: 5
      - name: Defend
        count: 4
      - name: Bash
        upgraded: true
`)
	decks, err := ParseDeckFile(path)
	if err != nil {
		t.Fatal(err)
	}
	cards, ok := decks["Ironclad Starter"]
	if !ok {
		t.Fatalf("deck not found, have %v", decks)
	}
	if len(cards) != 10 {
		t.Fatalf("deck size: got %d, want 10", len(cards))
	}
	// Omitted count defaults to 1; upgraded flag carries through.
	last := cards[9]
	if last.Name != "Bash" || !last.Upgraded {
		t.Errorf("last card: got %s (upgraded=%v), want upgraded Bash", last.Name, last.Upgraded)
	}
}

func TestParseDeckFileUnknownCard(t *testing.T) {
	path := writeTempYAML(t, `
decks:
  - name: Broken
    cards:
      - name: Neow's Lament
        count: 1
`)
	if _, err := ParseDeckFile(path); !errors.Is(err, ErrUnknownCard) {
		t.Errorf("got %v, want ErrUnknownCard", err)
	}
}

func TestDeckByNameMissing(t *testing.T) {
	path := writeTempYAML(t, `
decks:
  - name: Only Deck
    cards:
      - name: Strike
        count: 1
`)
	if _, err := DeckByName(path, "No Such Deck"); err == nil {
		t.Error("expected an error for a missing deck name")
	}
}

func TestParseEncounterFile(t *testing.T) {
	path := writeTempYAML(t, `
encounters:
  - name: Exordium Elites
    enemies:
      - name: Gremlin Nob
        hp: 85
        attack: 14
        block: 6
      - name: Lagavulin
        hp: 109
`)
	encounters, err := ParseEncounterFile(path)
	if err != nil {
		t.Fatal(err)
	}
	enemies, ok := encounters["Exordium Elites"]
	if !ok || len(enemies) != 2 {
		t.Fatalf("encounter: got %v", encounters)
	}
	if enemies[0].Name != "Gremlin Nob" || enemies[0].MaxHP != 85 {
		t.Errorf("first enemy: %+v", enemies[0])
	}
	if enemies[0].Selector == nil {
		t.Error("attack field should install a pattern selector")
	}
	if enemies[1].Selector != nil {
		t.Error("enemy without attack field should get the default selector at combat start")
	}
}
