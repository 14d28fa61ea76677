package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/algonotes/backend/config"
	"github.com/algonotes/backend/internal/service/seeder"
)

// seedCmd 清空并重建学习内容
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Rebuild all study content from the built-in catalog",
	Long: `Delete every chapter, topic, tag and study plan, then recreate them from the
built-in catalog in a single transaction. Running it twice yields the same data.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB(config.GetConfig())
		if err != nil {
			return err
		}
		summary, err := seeder.New(db).Run(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "seeded %d chapters, %d topics, %d tags, %d study plans\n",
			summary.Chapters, summary.Topics, summary.Tags, summary.StudyPlans)
		return nil
	},
}
