package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sirashofficial/learnership-management-sub004/internal/cli/formatter"
)

func newProgressCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Reconcile assessment results against the plan",
	}
	cmd.AddCommand(newProgressStudentCmd(app), newProgressGroupCmd(app))
	return cmd
}

func newProgressStudentCmd(app *App) *cobra.Command {
	var groupRef string
	var asOf *time.Time

	cmd := &cobra.Command{
		Use:   "student STUDENT",
		Short: "Show one learner's progress snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			groupID, err := resolveGroupID(ctx, app, groupRef)
			if err != nil {
				return err
			}
			student, err := resolveStudent(ctx, app, groupID, args[0])
			if err != nil {
				return err
			}
			snap, err := app.Progress.GetProgressSnapshot(ctx, student.ID, asOf)
			if err != nil {
				return err
			}
			target := app.Curriculum.Current().CreditCap()
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSnapshot(snap, student.Name, target))
			return nil
		},
	}

	cmd.Flags().StringVar(&groupRef, "group", "", "Group name or ID")
	optionalDateFlag(cmd.Flags(), &asOf, "as-of", "Reconcile as of this date, defaults to today")
	_ = cmd.MarkFlagRequired("group")
	return cmd
}

func newProgressGroupCmd(app *App) *cobra.Command {
	var asOf *time.Time

	cmd := &cobra.Command{
		Use:   "group GROUP",
		Short: "Reconcile every learner in a group, most urgent first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			groupID, err := resolveGroupID(ctx, app, args[0])
			if err != nil {
				return err
			}
			resp, err := app.Progress.ReconcileGroup(ctx, groupID, asOf)
			if err != nil {
				return err
			}
			students, err := app.Groups.ListStudents(ctx, groupID)
			if err != nil {
				return err
			}
			names := make(map[string]string, len(students))
			for _, s := range students {
				names[s.ID] = s.Name
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatGroupProgress(resp, names))
			return nil
		},
	}

	optionalDateFlag(cmd.Flags(), &asOf, "as-of", "Reconcile as of this date, defaults to today")
	return cmd
}
