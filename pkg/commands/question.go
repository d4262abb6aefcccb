package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/meditary/pkg/app"
	"tableflip.dev/meditary/pkg/commands/options"
	"tableflip.dev/meditary/pkg/question"
	"tableflip.dev/meditary/pkg/runner/questions"
)

func addQuestion(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "question",
		Aliases: []string{"questions", "q"},
		Short:   "Manage the questions asked after each sit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addQuestionList(cmd)
	addQuestionAdd(cmd)
	addQuestionEdit(cmd)
	addQuestionDelete(cmd)
	addQuestionMove(cmd)
	addQuestionReset(cmd)

	topLevel.AddCommand(cmd)
}

func questionIDCompletions(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	svc, _, err := loadService(context.Background())
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return questions.Completions(svc, toComplete), cobra.ShellCompDirectiveNoFileComp
}

func kindNames() string {
	names := make([]string, 0, 3)
	for _, k := range question.AllKinds() {
		names = append(names, string(k))
	}
	return strings.Join(names, ", ")
}

func addQuestionList(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List questions in the order they are asked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withService(cmd, func(ctx context.Context, svc *app.Service) error {
				if output.JSON {
					return output.Render(svc.Questions(), nil)
				}
				n := questions.List{Service: svc, Printer: printer(svc, io.ShowID)}
				return n.Do(ctx)
			})
		},
	}

	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func addQuestionAdd(topLevel *cobra.Command) {
	var secondary, kind string

	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a custom question at the end of the list",
		Long:  fmt.Sprintf("Add a custom question. Kinds: %s.", kindNames()),
		Example: `
meditary question add "Did I sit upright?" --kind yesno --pt "Sentei ereto?"
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd, func(ctx context.Context, svc *app.Service) error {
				n := questions.Add{
					Service:   svc,
					Printer:   printer(svc, true),
					Primary:   strings.Join(args, " "),
					Secondary: secondary,
					Kind:      kind,
				}
				return n.Do(ctx)
			})
		},
	}

	cmd.Flags().StringVar(&secondary, "pt", "", "Portuguese text, defaults to the English text.")
	cmd.Flags().StringVar(&kind, "kind", string(question.KindFreeText), "Answer kind: "+kindNames()+".")

	topLevel.AddCommand(cmd)
}

func addQuestionEdit(topLevel *cobra.Command) {
	var primary, secondary, kind string

	cmd := &cobra.Command{
		Use:               "edit <id>",
		Short:             "Change the text or kind of a question",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: questionIDCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd, func(ctx context.Context, svc *app.Service) error {
				n := questions.Edit{Service: svc, Printer: printer(svc, true), ID: args[0]}
				if cmd.Flags().Changed("en") {
					n.Primary = &primary
				}
				if cmd.Flags().Changed("pt") {
					n.Secondary = &secondary
				}
				if cmd.Flags().Changed("kind") {
					n.Kind = &kind
				}
				return n.Do(ctx)
			})
		},
	}

	cmd.Flags().StringVar(&primary, "en", "", "English text.")
	cmd.Flags().StringVar(&secondary, "pt", "", "Portuguese text.")
	cmd.Flags().StringVar(&kind, "kind", "", "Answer kind: "+kindNames()+".")

	topLevel.AddCommand(cmd)
}

func addQuestionDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:               "delete <id>",
		Aliases:           []string{"rm"},
		Short:             "Delete a question; answers already given are kept",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: questionIDCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd, func(ctx context.Context, svc *app.Service) error {
				n := questions.Delete{Service: svc, ID: args[0]}
				return n.Do(ctx)
			})
		},
	}

	topLevel.AddCommand(cmd)
}

func addQuestionMove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "move <id> <position>",
		Short: "Move a question to a zero-based position",
		Example: `
meditary question move sleepy 0
`,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: questionIDCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			to, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("position %q is not a number", args[1])
			}
			return withService(cmd, func(ctx context.Context, svc *app.Service) error {
				n := questions.Move{Service: svc, Printer: printer(svc, true), ID: args[0], To: to}
				return n.Do(ctx)
			})
		},
	}

	topLevel.AddCommand(cmd)
}

func addQuestionReset(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore the built-in questions, dropping custom ones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withService(cmd, func(ctx context.Context, svc *app.Service) error {
				n := questions.Reset{Service: svc, Printer: printer(svc, true)}
				return n.Do(ctx)
			})
		},
	}

	topLevel.AddCommand(cmd)
}
