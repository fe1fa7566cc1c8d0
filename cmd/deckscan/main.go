// deckscan reads one 52-card shuffle, runs the pattern engine over it
// and renders the ranked finds.
//
// The deck comes from (in priority order) -factory, -file, the command
// line arguments, or whitespace-separated tokens on stdin.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"

	"github.com/deckhound/motif/pkg/motif"
	"github.com/deckhound/motif/pkg/motif/card"
	"github.com/deckhound/motif/pkg/motif/pattern"
	"github.com/deckhound/motif/pkg/motif/report"
)

// deckFile is the YAML shape accepted by -file.
type deckFile struct {
	Deck []string `yaml:"deck"`
}

func main() {
	var (
		filePath = flag.String("file", "", "YAML file holding the shuffle under a top-level 'deck' key")
		factory  = flag.Bool("factory", false, "scan the factory-order deck instead of reading one")
		plain    = flag.Bool("plain", false, "plain output without terminal styling")
	)
	flag.Parse()

	tokens, err := readDeck(*filePath, *factory, flag.Args())
	if err != nil {
		log.Fatalf("read deck: %v", err)
	}

	engine := motif.New(motif.Options{})
	finds, err := engine.Detect(tokens)
	if err != nil {
		log.Fatalf("detect: %v", err)
	}

	rep := report.New().Build(tokens, finds)
	if *plain {
		renderPlain(rep)
		return
	}
	render(rep)
}

func readDeck(filePath string, factory bool, args []string) ([]string, error) {
	switch {
	case factory:
		return card.FactoryOrder(), nil
	case filePath != "":
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, err
		}
		var df deckFile
		if err := yaml.Unmarshal(data, &df); err != nil {
			return nil, fmt.Errorf("parse %s: %w", filePath, err)
		}
		return df.Deck, nil
	case len(args) > 0:
		return args, nil
	default:
		var tokens []string
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			tokens = append(tokens, strings.Fields(scanner.Text())...)
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return tokens, nil
	}
}

func render(rep report.Report) {
	box := pterm.DefaultBox.WithLeftPadding(2).WithRightPadding(2).WithTitle(pterm.LightYellow("|DECKSCAN|")).WithTitleTopCenter()
	box.Println(pterm.Sprintf("report %s\n%d pattern(s) found, %d position(s) still in factory order",
		rep.ID, len(rep.Finds), len(rep.FactoryPositions)))

	if len(rep.Finds) == 0 {
		pterm.Info.Println("nothing out of the ordinary in this shuffle")
		return
	}

	for _, f := range rep.Finds {
		style := tierStyle(f.Tier)
		pterm.Printfln("%s %s %s  %v",
			f.Icon,
			style.Sprint(strings.ToUpper(f.Tier.String())),
			f.Name,
			f.Positions)
	}
}

func renderPlain(rep report.Report) {
	fmt.Printf("report %s\n", rep.ID)
	for _, f := range rep.Finds {
		fmt.Printf("%-14s %-24s %v\n", f.Tier, f.Name, f.Positions)
	}
	fmt.Printf("factory positions: %d\n", len(rep.FactoryPositions))
}

func tierStyle(t pattern.Tier) *pterm.Style {
	switch t {
	case pattern.Legendary:
		return pterm.NewStyle(pterm.FgLightMagenta, pterm.Bold)
	case pattern.Extraordinary:
		return pterm.NewStyle(pterm.FgLightRed)
	case pattern.VeryRare:
		return pterm.NewStyle(pterm.FgLightYellow)
	case pattern.Rare:
		return pterm.NewStyle(pterm.FgLightCyan)
	case pattern.Uncommon:
		return pterm.NewStyle(pterm.FgLightGreen)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}
