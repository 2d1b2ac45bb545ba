package cli

import (
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/digkill/tarot-app/internal/core/domain"
)

var spreadsCmd = &cobra.Command{
	Use:   "spreads",
	Short: "List the available spreads",
	RunE:  runSpreads,
}

func init() {
	rootCmd.AddCommand(spreadsCmd)
}

// categoryOrder fixes the browsing order of spread groups.
var categoryOrder = []domain.SpreadCategory{
	domain.SpreadCategoryBasic,
	domain.SpreadCategoryLove,
	domain.SpreadCategoryCareer,
	domain.SpreadCategoryWeekly,
	domain.SpreadCategoryYear,
	domain.SpreadCategorySpiritual,
	domain.SpreadCategoryCustom,
}

func runSpreads(cmd *cobra.Command, _ []string) error {
	if spreadCatalog == nil {
		return errors.New("spread catalog not configured")
	}

	translator := currentTranslator(cmd)
	hasPremium := settingsService.Load(cmd.Context()).HasPremium

	groups := make(map[domain.SpreadCategory][]domain.Spread)
	for _, spread := range spreadCatalog.List() {
		groups[spread.Category] = append(groups[spread.Category], spread)
	}

	heading := color.New(color.Bold, color.FgCyan).SprintFunc()
	premiumMark := color.New(color.FgYellow).SprintFunc()
	featuredMark := color.New(color.FgGreen).SprintFunc()

	for _, category := range categoryOrder {
		spreads := groups[category]
		if len(spreads) == 0 {
			continue
		}
		cmd.Println(heading(category.String()))
		for _, spread := range spreads {
			marks := ""
			if spread.Featured {
				marks += " " + featuredMark("★")
			}
			if spread.Premium {
				if hasPremium {
					marks += " " + premiumMark("premium")
				} else {
					marks += " " + premiumMark("premium, locked")
				}
			}
			cmd.Printf("  %-20s %2d cards  %s%s\n",
				spread.ID,
				len(spread.Positions),
				translator.Translate(spread.NameKey, nil),
				marks)
			cmd.Printf("  %-20s           %s\n", "",
				translator.Translate(spread.DescriptionKey, nil))
		}
		cmd.Println()
	}
	return nil
}
