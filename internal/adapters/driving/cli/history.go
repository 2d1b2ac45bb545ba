package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/digkill/tarot-app/internal/core/domain"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse and edit saved readings",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <reading-id>",
	Short: "Show one saved reading in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyNotesCmd = &cobra.Command{
	Use:   "notes <reading-id> <text>",
	Short: "Attach or replace the notes on a reading",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runHistoryNotes,
}

var historyTagsCmd = &cobra.Command{
	Use:   "tags <reading-id> <tag>...",
	Short: "Replace the tags on a reading",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runHistoryTags,
}

var historyFavoriteCmd = &cobra.Command{
	Use:     "favorite <reading-id>",
	Aliases: []string{"fav"},
	Short:   "Toggle the favorite flag on a reading",
	Args:    cobra.ExactArgs(1),
	RunE:    runHistoryFavorite,
}

var historyRemoveCmd = &cobra.Command{
	Use:   "remove <reading-id>",
	Short: "Delete one reading",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryRemove,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all readings",
	RunE:  runHistoryClear,
}

func init() {
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyNotesCmd)
	historyCmd.AddCommand(historyTagsCmd)
	historyCmd.AddCommand(historyFavoriteCmd)
	historyCmd.AddCommand(historyRemoveCmd)
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if readingHistory == nil {
		return errors.New("reading history not configured")
	}

	readings, err := readingHistory.LoadAll(cmd.Context())
	if err != nil {
		return err
	}
	if len(readings) == 0 {
		cmd.Println("No readings yet. Start with \"tarot draw three-card\".")
		return nil
	}

	favMark := color.New(color.FgYellow).SprintFunc()
	for _, reading := range readings {
		mark := " "
		if reading.Favorite {
			mark = favMark("★")
		}
		insight := ""
		if reading.Insight != nil {
			insight = "  [ai]"
		}
		cmd.Printf("%s %-22s %s  %s%s\n",
			mark,
			reading.ID,
			time.UnixMilli(reading.DrawnAt).Format("2006-01-02 15:04"),
			reading.SpreadID,
			insight)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	reading, err := findReading(cmd, args[0])
	if err != nil {
		return err
	}

	translator := currentTranslator(cmd)
	heading := color.New(color.Bold).SprintFunc()

	cmd.Printf("%s  %s\n", heading(reading.ID),
		time.UnixMilli(reading.DrawnAt).Format("2006-01-02 15:04"))
	cmd.Printf("Spread: %s\n", translator.Translate(spreadNameKey(reading.SpreadID), nil))
	if reading.Favorite {
		cmd.Println("Favorite: yes")
	}
	if len(reading.Tags) > 0 {
		cmd.Printf("Tags: %s\n", strings.Join(reading.Tags, ", "))
	}
	cmd.Println()

	lang := settingsService.Load(cmd.Context()).Language
	for _, item := range reading.Items {
		name := item.CardID
		if deckRepository != nil {
			if card, err := deckRepository.Card(lang, item.CardID); err == nil {
				name = card.Name
			}
		}
		orientation := ""
		if item.IsReversed {
			orientation = " (reversed)"
		}
		cmd.Printf("%d. %s%s\n", item.PositionIndex+1, name, orientation)
	}

	cmd.Println()
	cmd.Println(heading("Summary"))
	cmd.Println(reading.SummaryText)

	if reading.Notes != "" {
		cmd.Println()
		cmd.Println(heading("Notes"))
		cmd.Println(reading.Notes)
	}
	if reading.Insight != nil {
		cmd.Println()
		cmd.Println(color.MagentaString("AI Insight (%s)", reading.Insight.Model))
		cmd.Println(reading.Insight.Summary)
		for _, pos := range reading.Insight.Positions {
			cmd.Printf("  %s — %s: %s\n", pos.PositionTitle, pos.CardName, pos.Meaning)
		}
	}
	return nil
}

func runHistoryNotes(cmd *cobra.Command, args []string) error {
	reading, err := findReading(cmd, args[0])
	if err != nil {
		return err
	}

	notes := strings.Join(args[1:], " ")
	if err := readingHistory.Update(cmd.Context(), reading.ID, domain.ReadingPatch{Notes: &notes}); err != nil {
		return err
	}
	cmd.Printf("Notes updated on %s\n", reading.ID)
	return nil
}

func runHistoryTags(cmd *cobra.Command, args []string) error {
	reading, err := findReading(cmd, args[0])
	if err != nil {
		return err
	}

	tags := args[1:]
	if err := readingHistory.Update(cmd.Context(), reading.ID, domain.ReadingPatch{Tags: &tags}); err != nil {
		return err
	}
	cmd.Printf("Tags updated on %s\n", reading.ID)
	return nil
}

func runHistoryFavorite(cmd *cobra.Command, args []string) error {
	if readingHistory == nil {
		return errors.New("reading history not configured")
	}

	reading, err := readingHistory.ToggleFavorite(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if reading == nil {
		return fmt.Errorf("no reading with id %q", args[0])
	}
	if reading.Favorite {
		cmd.Printf("%s marked as favorite\n", reading.ID)
	} else {
		cmd.Printf("%s is no longer a favorite\n", reading.ID)
	}
	return nil
}

func runHistoryRemove(cmd *cobra.Command, args []string) error {
	reading, err := findReading(cmd, args[0])
	if err != nil {
		return err
	}

	if err := readingHistory.Remove(cmd.Context(), reading.ID); err != nil {
		return err
	}
	cmd.Printf("Removed %s\n", reading.ID)
	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	if readingHistory == nil {
		return errors.New("reading history not configured")
	}

	cmd.Print("Delete all readings? This cannot be undone. [y/N] ")
	reader := bufio.NewReader(os.Stdin)
	answer, _ := reader.ReadString('\n')
	if strings.ToLower(strings.TrimSpace(answer)) != "y" {
		cmd.Println("Aborted.")
		return nil
	}

	if err := readingHistory.Clear(cmd.Context()); err != nil {
		return err
	}
	cmd.Println("History cleared.")
	return nil
}

// findReading resolves a reading by id, accepting unambiguous id
// prefixes for convenience.
func findReading(cmd *cobra.Command, id string) (*domain.Reading, error) {
	if readingHistory == nil {
		return nil, errors.New("reading history not configured")
	}

	readings, err := readingHistory.LoadAll(cmd.Context())
	if err != nil {
		return nil, err
	}

	var match *domain.Reading
	for i := range readings {
		if readings[i].ID == id {
			return &readings[i], nil
		}
		if strings.HasPrefix(readings[i].ID, id) {
			if match != nil {
				return nil, fmt.Errorf("reading id prefix %q is ambiguous", id)
			}
			match = &readings[i]
		}
	}
	if match == nil {
		return nil, fmt.Errorf("no reading with id %q", id)
	}
	return match, nil
}
