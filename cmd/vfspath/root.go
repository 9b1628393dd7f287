package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/worldiety/vfspath/pathkind"
)

// flavorFlag is a pflag.Value restricting a --flavor flag to the three
// PathAlgebra flavors, so an unrecognized value is rejected by cobra's own
// flag parsing rather than surfacing as a RunE error.
type flavorFlag struct {
	value string
}

var _ pflag.Value = (*flavorFlag)(nil)

func newFlavorFlag(def string) *flavorFlag {
	return &flavorFlag{value: def}
}

func (f *flavorFlag) String() string { return f.value }

func (f *flavorFlag) Set(s string) error {
	switch s {
	case "dirent", "relpath", "uri":
		f.value = s
		return nil
	default:
		return fmt.Errorf("unknown flavor %q, want one of dirent|relpath|uri", s)
	}
}

func (f *flavorFlag) Type() string { return "flavor" }

var (
	platformFlag string
	logLevelFlag string

	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "vfspath",
	Short: "Exercise the vfspath path algebra and tree-delta engine",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := zerolog.ParseLevel(logLevelFlag)
		if err != nil {
			return err
		}
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&platformFlag, "platform", "posix", `dirent platform: "posix" or "dos"`)
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "info", "log level: trace|debug|info|warn|error")
}

func resolvePlatform() (pathkind.Platform, error) {
	switch platformFlag {
	case "posix":
		return pathkind.POSIX, nil
	case "dos":
		return pathkind.DOS, nil
	default:
		return 0, fmt.Errorf("unknown platform %q", platformFlag)
	}
}
