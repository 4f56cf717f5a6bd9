package cmds

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/digitalmuseum/archive-api/internal/store"
)

// seedCmd dumps the built-in seed catalog as JSON. Useful for eyeballing
// what a fresh server will serve without starting one.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Print the seed catalog as JSON",
	RunE: func(_ *cobra.Command, _ []string) error {
		s := store.NewSeeded()

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"artifacts":    s.Artifacts(),
			"competitions": s.Competitions(),
			"news":         s.News(),
			"events":       s.Events(),
		})
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
