package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/homefix/marketplace-client/internal/core/domain"
)

var (
	searchTrade     string
	searchCity      string
	searchMinRating float64
	searchPage      int
	searchSize      int
)

var professionalsCmd = &cobra.Command{
	Use:     "professionals [query]",
	Aliases: []string{"pros"},
	Short:   "Search the professional directory",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		search := domain.ProfessionalSearch{
			Trade:     searchTrade,
			City:      searchCity,
			MinRating: searchMinRating,
			Page:      searchPage,
			Size:      searchSize,
		}
		if len(args) == 1 {
			search.Query = args[0]
		}

		pros, err := api.SearchProfessionals(cmd.Context(), search)
		if err != nil {
			return err
		}
		if len(pros) == 0 {
			fmt.Println("No professionals found")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tTRADE\tCITY\tRATE\tRATING")
		for _, p := range pros {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f\t%.1f (%d)\n",
				p.ID, p.Name, p.Trade, p.City, p.HourlyRate, p.Rating, p.ReviewCount)
		}
		return w.Flush()
	},
}

var tradesCmd = &cobra.Command{
	Use:   "trades",
	Short: "List profession categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		trades, err := api.ListTrades(cmd.Context())
		if err != nil {
			return err
		}
		for _, t := range trades {
			fmt.Printf("%s\t%s\n", t.Slug, t.Name)
		}
		return nil
	},
}

var reviewsCmd = &cobra.Command{
	Use:   "reviews <professional-id>",
	Short: "Show the reviews of a professional",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reviews, err := api.ListReviews(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if len(reviews) == 0 {
			fmt.Println("No reviews yet")
			return nil
		}
		for _, r := range reviews {
			fmt.Printf("%s  %d/5  %s\n", r.Username, r.Rating, r.Comment)
			for _, reply := range mustReplies(cmd, r.ID) {
				fmt.Printf("    ↳ %s: %s\n", reply.Username, reply.Comment)
			}
		}
		return nil
	},
}

// mustReplies swallows reply-fetch failures; a broken reply thread
// should not hide the reviews themselves.
func mustReplies(cmd *cobra.Command, reviewID string) []domain.ReviewReply {
	replies, err := api.RepliesByReview(cmd.Context(), reviewID)
	if err != nil {
		return nil
	}
	return replies
}

func init() {
	professionalsCmd.Flags().StringVar(&searchTrade, "trade", "", "filter by trade")
	professionalsCmd.Flags().StringVar(&searchCity, "city", "", "filter by city")
	professionalsCmd.Flags().Float64Var(&searchMinRating, "min-rating", 0, "minimum average rating")
	professionalsCmd.Flags().IntVar(&searchPage, "page", 0, "result page")
	professionalsCmd.Flags().IntVar(&searchSize, "size", 20, "page size")

	rootCmd.AddCommand(professionalsCmd, tradesCmd, reviewsCmd)
}
