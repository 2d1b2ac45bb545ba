package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var drawCmd = &cobra.Command{
	Use:   "draw <spread-id>",
	Short: "Draw cards for a spread and save the reading",
	Long: `Draw cards for the given spread, assemble the interpretation, and
save the reading at the head of your history.

Run "tarot spreads" to list the available spread ids.`,
	Args: cobra.ExactArgs(1),
	RunE: runDraw,
}

func init() {
	rootCmd.AddCommand(drawCmd)
}

func runDraw(cmd *cobra.Command, args []string) error {
	if divinationService == nil {
		return errors.New("divination service not configured")
	}

	spread, err := spreadCatalog.Get(args[0])
	if err != nil {
		return fmt.Errorf("unknown spread %q, run \"tarot spreads\" to list them", args[0])
	}
	if spread.Premium && !settingsService.Load(cmd.Context()).HasPremium {
		return fmt.Errorf("spread %q is premium; unlock it with \"tarot settings set premium true\"", spread.ID)
	}

	translator := currentTranslator(cmd)
	result, err := divinationService.NewReading(cmd.Context(), args[0], translator)
	if err != nil {
		return err
	}

	title := color.New(color.Bold, color.FgMagenta).SprintFunc()
	cardName := color.New(color.Bold).SprintFunc()
	reversedMark := color.New(color.FgYellow).SprintFunc()

	cmd.Println(title(translator.Translate(spreadNameKey(result.Reading.SpreadID), nil)))
	cmd.Println()

	for i, pos := range result.Interpretation.Positions {
		orientation := ""
		if pos.IsReversed {
			orientation = " " + reversedMark("(reversed)")
		}
		cmd.Printf("%d. %s — %s%s\n", i+1, pos.Title, cardName(pos.Card.Name), orientation)
		cmd.Printf("   %s\n", pos.Narrative)
	}

	cmd.Println()
	cmd.Println(color.CyanString("Summary"))
	cmd.Println(result.Interpretation.Summary)
	if len(result.Interpretation.Keywords) > 0 {
		cmd.Println()
		cmd.Printf("Keywords: %s\n", strings.Join(result.Interpretation.Keywords, ", "))
	}
	cmd.Println()
	cmd.Printf("Saved as %s\n", result.Reading.ID)
	return nil
}

// spreadNameKey rebuilds the catalog name key from a spread id.
func spreadNameKey(spreadID string) string {
	return "spreads." + spreadID + ".name"
}
