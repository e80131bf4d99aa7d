package cmd

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/manasm11/gamebrief/internal/export"
	"github.com/manasm11/gamebrief/internal/flow"
	"github.com/manasm11/gamebrief/internal/generator"
	"github.com/manasm11/gamebrief/internal/state"
)

func newGenerateCommand() *cobra.Command {
	var (
		answersPath string
		output      string
		model       string
		strict      bool
	)

	c := &cobra.Command{
		Use:   "generate",
		Short: "Build a blueprint from an answer file",
		Long: `Build a blueprint from a YAML or JSON answer file without the wizard.
The document goes to stdout unless --output is given.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := state.LoadAnswers(answersPath)
			if err != nil {
				return err
			}
			if strict {
				if err := checkAnswers(a); err != nil {
					return err
				}
			}

			target := model
			if target == "" {
				target = cfg.TargetModel
			}
			doc := generator.Blueprint(a, generator.Options{TargetModel: target})
			logger.Info("blueprint generated",
				zap.String("answers", answersPath),
				zap.Int("bytes", len(doc)),
			)

			if output == "" {
				_, err := io.WriteString(cmd.OutOrStdout(), doc)
				return err
			}
			if err := export.WriteDocument(output, doc); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", output)
			return nil
		},
	}

	c.Flags().StringVarP(&answersPath, "answers", "a", "", "Answer file (.yaml, .yml or .json)")
	c.Flags().StringVarP(&output, "output", "o", "", "Write the blueprint to this file instead of stdout")
	c.Flags().StringVar(&model, "model", "", "Target model named in the system note (default from config)")
	c.Flags().BoolVar(&strict, "strict", false, "Fail if any visited step has missing answers")
	_ = c.MarkFlagRequired("answers")
	return c
}

// checkAnswers validates every step the answers visit and reports all
// failures at once, in step order.
func checkAnswers(a state.Answers) error {
	var problems []string
	for _, step := range flow.Resolve(a) {
		errs := flow.Validate(step, a)
		for _, f := range slices.Sorted(maps.Keys(errs)) {
			problems = append(problems, fmt.Sprintf("%s: %s: %s", step.Title(), f, errs[f]))
		}
	}
	if len(problems) == 0 {
		return nil
	}
	return errors.New("answers are incomplete:\n  " + strings.Join(problems, "\n  "))
}
