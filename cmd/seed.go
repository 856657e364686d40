package cmd

import (
	"time"

	"backend-games/internal/seed"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	seedDataset     string
	seedFakeReviews int
	seedFakeSeed    int64
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace all table contents with a bundled dataset",
	Long: `Truncate categories, users, reviews and comments and load a bundled dataset.

Examples:
  backend-games seed --dataset test
  backend-games seed --dataset development --fake-reviews 50`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := seed.LoadDataset(seedDataset)
		if err != nil {
			return err
		}

		if seedFakeSeed == 0 {
			seedFakeSeed = time.Now().UnixNano()
		}
		if err := seed.AddFakeReviews(data, seedFakeReviews, seedFakeSeed); err != nil {
			return err
		}

		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.close()

		rt.logger.Info("Seeding database",
			zap.String("dataset", seedDataset),
			zap.Int("fake_reviews", seedFakeReviews),
		)

		return seed.NewSeeder(rt.db, rt.logger).Seed(cmd.Context(), data)
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedDataset, "dataset", seed.DatasetDevelopment, "Dataset to load (test|development)")
	seedCmd.Flags().IntVar(&seedFakeReviews, "fake-reviews", 0, "Number of generated reviews to add")
	seedCmd.Flags().Int64Var(&seedFakeSeed, "fake-seed", 0, "Seed for generated reviews (0 = random)")
}
