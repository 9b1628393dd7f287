package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/worldiety/vfspath/dirent"
	"github.com/worldiety/vfspath/relpath"
	"github.com/worldiety/vfspath/uri"
)

var canonicalizeFlavor = newFlavorFlag("dirent")

var canonicalizeCmd = &cobra.Command{
	Use:   "canonicalize PATH",
	Short: "Print a path's canonical form under the chosen flavor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := args[0]
		platform, err := resolvePlatform()
		if err != nil {
			return err
		}

		var out string
		switch canonicalizeFlavor.String() {
		case "dirent":
			out = string(dirent.Canonicalize(platform, input))
		case "relpath":
			out = string(relpath.Canonicalize(input))
		case "uri":
			out = string(uri.Canonicalize(input))
		}

		log.Debug().Str("flavor", canonicalizeFlavor.String()).Str("input", input).Str("output", out).Msg("canonicalized")
		fmt.Println(out)
		return nil
	},
}

func init() {
	canonicalizeCmd.Flags().Var(canonicalizeFlavor, "flavor", "path flavor: dirent|relpath|uri")
	rootCmd.AddCommand(canonicalizeCmd)
}
