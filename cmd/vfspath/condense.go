package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/worldiety/vfspath/dirent"
	"github.com/worldiety/vfspath/pathutil"
	"github.com/worldiety/vfspath/relpath"
	"github.com/worldiety/vfspath/uri"
)

var (
	condenseFlavor  = newFlavorFlag("dirent")
	condenseDropDup bool
)

var condenseCmd = &cobra.Command{
	Use:   "condense PATH...",
	Short: "Fold a list of targets to a common base and relative suffixes",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		platform, err := resolvePlatform()
		if err != nil {
			return err
		}

		var algebra pathutil.Algebra
		switch condenseFlavor.String() {
		case "dirent":
			algebra = dirent.NewAlgebra(platform)
		case "relpath":
			algebra = relpath.Algebra{}
		case "uri":
			algebra = uri.Algebra{}
		}

		base, suffixes, err := pathutil.CondenseTargets(algebra, args, condenseDropDup)
		if err != nil {
			return err
		}

		log.Debug().Str("base", base).Int("count", len(suffixes)).Msg("condensed targets")
		fmt.Println(base)
		for _, s := range suffixes {
			fmt.Println("  " + s)
		}
		return nil
	},
}

func init() {
	condenseCmd.Flags().Var(condenseFlavor, "flavor", "path flavor: dirent|relpath|uri")
	condenseCmd.Flags().BoolVar(&condenseDropDup, "remove-redundancies", true, "drop targets that are descendants of another retained target")
	rootCmd.AddCommand(condenseCmd)
}
