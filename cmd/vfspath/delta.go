package main

import (
	"github.com/spf13/cobra"

	"github.com/worldiety/vfspath/delta"
	"github.com/worldiety/vfspath/editor"
)

var deltaCmd = &cobra.Command{
	Use:   "delta SOURCE_DIR TARGET_DIR",
	Short: "Dry-run the tree-delta engine between two local directories, logging the Editor call trace at debug level",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sourceDir, targetDir := args[0], args[1]

		var source delta.NodeSnapshot
		if info, err := newFsSnapshot(sourceDir); err == nil {
			source = info
		}

		target, err := newFsSnapshot(targetDir)
		if err != nil {
			return err
		}

		builder := &editor.TreeBuilder{}
		tracer := editor.NewTracing(builder, log)

		return delta.Run(tracer, source, target, delta.Options{})
	},
}

func init() {
	rootCmd.AddCommand(deltaCmd)
}
