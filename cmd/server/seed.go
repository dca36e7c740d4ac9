package main

import (
	"fmt"

	"swapi/internal/database"

	"github.com/spf13/cobra"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load users, characters, planets and vehicles from a YAML file",
	Long: `Upserts catalogue rows from a YAML fixtures file. Rows are keyed on id,
so the same file can be applied repeatedly. Without --file the bundled
Star Wars catalogue is loaded.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := bootstrap()
		if err != nil {
			return err
		}
		f, err := database.LoadFixtures(seedFile)
		if err != nil {
			return err
		}
		res, err := database.Seed(db, f)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "seeded %d users, %d characters, %d planets, %d vehicles\n",
			res.Users, res.Characters, res.Planets, res.Vehicles)
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "fixtures file (default: bundled catalogue)")
	rootCmd.AddCommand(seedCmd)
}
