package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/manasm11/gamebrief/internal/flow"
	"github.com/manasm11/gamebrief/internal/state"
)

func newFlowCommand() *cobra.Command {
	var answersPath string

	c := &cobra.Command{
		Use:           "flow",
		Short:         "Print the step sequence an answer file walks through",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := state.LoadAnswers(answersPath)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for i, step := range flow.Resolve(a) {
				mark := "ok"
				if n := len(flow.Validate(step, a)); n > 0 {
					mark = fmt.Sprintf("%d missing", n)
				}
				fmt.Fprintf(w, "%2d. %-18s %-18s %s\n", i+1, step, step.Title(), mark)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&answersPath, "answers", "a", "", "Answer file (.yaml, .yml or .json)")
	_ = c.MarkFlagRequired("answers")
	return c
}

func init() {
	rootCmd.AddCommand(newGenerateCommand(), newFlowCommand())
}
