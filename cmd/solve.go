package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"advent.dev/pkg/advent/internal/domain"
	m "advent.dev/pkg/advent/internal/model"
)

const solveLongDescription = `Solve both parts of a puzzle for the given day.

The input file is read as-is. Its SHA-256 hash keys the stored report, so
solving the same input again prints the stored answers unless --no-cache
is set.`

// solveCmd represents the solve command.
var solveCmd = newSolveCmd()

func newSolveCmd() *cobra.Command {
	var inputPath string

	cmd := &cobra.Command{
		Use:     "solve <day>",
		Short:   "Solve a puzzle from an input file",
		Long:    solveLongDescription,
		Example: "  advent solve 3 -i inputs/day03.txt\n  advent solve 3 -i inputs/day03.txt --parallel 8",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := domain.ParseDay(args[0])
			if err != nil {
				return err
			}

			return workflow.Solve(cmd.Context(), domain.SolveArgs{
				Day:      day,
				Input:    m.Path(inputPath),
				Reports:  m.Path(viper.GetString(outputFlagName)),
				UseCache: !viper.GetBool(noCacheFlagName),
				Parallel: viper.GetInt(solveParallelConfigKey),
			})
		},
	}

	cmd.Flags().StringVarP(&inputPath, inputFlagName, "i", "", "puzzle input file")
	cobra.CheckErr(cmd.MarkFlagRequired(inputFlagName))

	cmd.Flags().IntP(solveParallelFlagName, "p", defaultSolveParallel, "number of input lines evaluated concurrently")
	bindFlagToConfig(cmd.Flags().Lookup(solveParallelFlagName), solveParallelConfigKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(solveCmd)
}
