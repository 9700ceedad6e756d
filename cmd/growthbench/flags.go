package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func LogLevel() string { return viper.GetString("LOG_LEVEL") }

func NoColor() bool { return viper.GetBool("NO_COLOR") }

func Subject() string { return viper.GetString("SUBJECT") }

func WorkDir() string { return viper.GetString("WORKDIR") }

func Output() string { return viper.GetString("OUTPUT") }

func Input() string { return viper.GetString("INPUT") }

func Archive() string { return viper.GetString("ARCHIVE") }

func RunID() string { return viper.GetString("RUN") }

func MetricsFile() string { return viper.GetString("METRICS_FILE") }

func DryRun() bool { return viper.GetBool("DRY_RUN") }

func OutDir() string { return viper.GetString("OUTDIR") }

func Formats() []string { return viper.GetStringSlice("FORMATS") }

func HTMLFile() string { return viper.GetString("HTML") }

func MinSize() int { return viper.GetInt("MIN_SIZE") }

func MinPoints() int { return viper.GetInt("MIN_POINTS") }

// bindFlags binds a command's flags to viper keys. It runs when the command
// executes, because several commands share key names.
func bindFlags(cmd *cobra.Command, keys map[string]string) error {
	for key, name := range keys {
		if err := viper.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return fmt.Errorf("binding --%s: %w", name, err)
		}
	}
	return nil
}
