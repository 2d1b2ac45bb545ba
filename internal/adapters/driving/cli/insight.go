package cli

import (
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/digkill/tarot-app/internal/core/domain"
)

var insightCmd = &cobra.Command{
	Use:   "insight <reading-id>",
	Short: "Request an AI narrative for a saved reading",
	Long: `Request an AI-generated narrative for a saved reading and attach it
to the record. Each reading is augmented at most once; running the
command again shows the stored narrative.

Requires an OpenAI API key, set with "tarot settings key" or through
the OPENAI_API_KEY environment variable.`,
	Args: cobra.ExactArgs(1),
	RunE: runInsight,
}

func init() {
	rootCmd.AddCommand(insightCmd)
}

func runInsight(cmd *cobra.Command, args []string) error {
	if divinationService == nil {
		return errors.New("divination service not configured")
	}

	reading, err := findReading(cmd, args[0])
	if err != nil {
		return err
	}

	insight, err := divinationService.Augment(cmd.Context(), reading.ID, currentTranslator(cmd))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInsightKeyMissing):
			return errors.New("no API key configured; set one with \"tarot settings key\"")
		case errors.Is(err, domain.ErrInsightEmpty):
			return errors.New("the narrative service returned an empty response, try again")
		case errors.Is(err, domain.ErrInsightMalformed):
			return errors.New("the narrative service returned an unusable response, try again")
		default:
			return err
		}
	}

	cmd.Println(color.MagentaString("AI Insight (%s)", insight.Model))
	cmd.Println()
	cmd.Println(insight.Summary)
	cmd.Println()
	for _, pos := range insight.Positions {
		orientation := ""
		if pos.Orientation == domain.OrientationReversed {
			orientation = " (reversed)"
		}
		cmd.Printf("%s — %s%s\n", pos.PositionTitle, pos.CardName, orientation)
		cmd.Printf("  %s\n", pos.Meaning)
	}
	return nil
}
