package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const initLongDescription = `Create advent.yaml in the current working directory with the current
settings: reports directory, cache behaviour, solve parallelism and log rotation.
Every key can also be set through an ADVENT_ environment variable, for example
ADVENT_SOLVE_PARALLEL=8.`

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write an advent.yaml with the current settings",
		Long:  initLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath := filepath.Join(configFolderPath, configFileName)

			// SafeWriteConfigAs never overwrites an edited config.
			if err := viper.SafeWriteConfigAs(configPath); err != nil {
				return fmt.Errorf("write %s: %w", configPath, err)
			}

			cmd.Printf("Wrote %s (reports in %s, %d parallel line(s))\n",
				configPath, viper.GetString(outputFlagName), viper.GetInt(solveParallelConfigKey))

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
}
