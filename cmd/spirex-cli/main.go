package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/peterkuimelis/spirex/internal/game"
	"github.com/peterkuimelis/spirex/internal/log"
)

func main() {
	decksFile := flag.String("decks", "", "path to decks YAML file")
	deck := flag.String("deck", "", "named deck to play (requires --decks)")
	encountersFile := flag.String("encounters", "", "path to encounters YAML file")
	encounter := flag.String("encounter", "", "named encounter to fight (requires --encounters)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = random)")
	flag.Parse()

	player := game.PlayerConfig{}
	if *deck != "" {
		if *decksFile == "" {
			fmt.Fprintln(os.Stderr, "Error: --deck requires --decks")
			os.Exit(1)
		}
		cards, err := game.DeckByName(*decksFile, *deck)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		player.Cards = cards
	}

	enemies := []game.EnemyConfig{{Name: "Cultist", MaxHP: 48}}
	if *encounter != "" {
		if *encountersFile == "" {
			fmt.Fprintln(os.Stderr, "Error: --encounter requires --encounters")
			os.Exit(1)
		}
		roster, err := game.EncounterByName(*encountersFile, *encounter)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		enemies = roster
	}

	combat := game.NewCombat(game.Config{
		Player:  player,
		Enemies: enemies,
		Logger:  log.NewTextLogger(os.Stdout),
		Seed:    *seed,
	})

	printState(combat.Snapshot())
	repl(combat)
}

func repl(combat *game.Combat) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		if combat.Over() {
			fmt.Printf("\nCombat over: %s\n", combat.Phase)
			return
		}
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "play", "p":
			handIndex, targetIndex, err := parsePlayArgs(fields[1:])
			if err != nil {
				fmt.Println(err)
				continue
			}
			res, err := combat.PlayCard(handIndex, targetIndex)
			if err != nil {
				fmt.Printf("Cannot play: %v\n", err)
				continue
			}
			printState(res.State)
		case "end", "e":
			res, err := combat.EndTurn()
			if err != nil {
				fmt.Printf("Cannot end turn: %v\n", err)
				continue
			}
			printState(res.State)
		case "state", "s":
			printState(combat.Snapshot())
		case "help", "h":
			printHelp()
		case "quit", "q":
			return
		default:
			fmt.Printf("Unknown command %q (try 'help')\n", fields[0])
		}
	}
}

func parsePlayArgs(args []string) (handIndex, targetIndex int, err error) {
	if len(args) < 1 {
		return 0, 0, fmt.Errorf("usage: play <hand index> [enemy index]")
	}
	handIndex, err = strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("bad hand index %q", args[0])
	}
	targetIndex = 0
	if len(args) > 1 {
		targetIndex, err = strconv.Atoi(args[1])
		if err != nil {
			return 0, 0, fmt.Errorf("bad enemy index %q", args[1])
		}
	}
	return handIndex, targetIndex, nil
}

func printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  play <i> [e]  play hand card i (targeting enemy e, default 0)")
	fmt.Println("  end           end your turn")
	fmt.Println("  state         reprint the combat state")
	fmt.Println("  quit          give up")
}

func printState(s game.Snapshot) {
	fmt.Println()
	for _, e := range s.Enemies {
		marker := fmt.Sprintf("[%d] %s  %d/%d HP", e.Index, e.Name, e.HP, e.MaxHP)
		if e.Block > 0 {
			marker += fmt.Sprintf("  block %d", e.Block)
		}
		if !e.Alive {
			marker += "  (defeated)"
		} else if e.Intent != "" {
			marker += "  → " + e.Intent
		}
		if len(e.Statuses) > 0 {
			marker += "  " + statusLine(e.Statuses)
		}
		fmt.Println(marker)
	}

	p := s.Player
	line := fmt.Sprintf("\n%s  %d/%d HP  block %d  energy %d/%d",
		p.Name, p.HP, p.MaxHP, p.Block, p.Energy, p.MaxEnergy)
	if p.Barricade {
		line += "  [Barricade]"
	}
	if len(p.Statuses) > 0 {
		line += "  " + statusLine(p.Statuses)
	}
	fmt.Println(line)

	fmt.Printf("Hand (draw %d, discard %d, exhaust %d):\n",
		p.DrawCount, p.DiscardCount, p.ExhaustCount)
	for _, c := range p.Hand {
		cost := strconv.Itoa(c.Cost)
		if c.Cost < 0 {
			cost = "X"
		}
		name := c.Name
		if c.Upgraded {
			name += "+"
		}
		fmt.Printf("  [%d] (%s) %-16s %s\n", c.Index, cost, name, c.Description)
	}
}

func statusLine(statuses map[string]int) string {
	parts := make([]string, 0, len(statuses))
	for name, stacks := range statuses {
		parts = append(parts, fmt.Sprintf("%s %d", name, stacks))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
