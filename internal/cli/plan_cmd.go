package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sirashofficial/learnership-management-sub004/internal/app"
	"github.com/sirashofficial/learnership-management-sub004/internal/cli/formatter"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Compute, apply and inspect rollout plans",
	}
	cmd.AddCommand(
		newPlanComputeCmd(app),
		newPlanApplyCmd(app),
		newPlanShowCmd(app),
		newPlanDriftCmd(app),
	)
	return cmd
}

func newPlanComputeCmd(app *App) *cobra.Command {
	var groupRef string
	var start *time.Time

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Preview a group's plan without saving it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			groupID, err := resolveGroupID(ctx, app, groupRef)
			if err != nil {
				return err
			}
			var startDate time.Time
			if start != nil {
				startDate = *start
			} else {
				g, err := app.Groups.GetByID(ctx, groupID)
				if err != nil {
					return err
				}
				startDate = g.StartDate
			}
			plan, err := app.Rollout.ComputeRolloutPlan(ctx, groupID, startDate)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlan(plan))
			return nil
		},
	}

	cmd.Flags().StringVar(&groupRef, "group", "", "Group name or ID")
	optionalDateFlag(cmd.Flags(), &start, "start", "Start date to plan from, defaults to the group start")
	_ = cmd.MarkFlagRequired("group")
	return cmd
}

func newPlanApplyCmd(a *App) *cobra.Command {
	var groupRef string
	var start *time.Time

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Compute and save a group's plan, replacing any existing one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			groupID, err := resolveGroupID(ctx, a, groupRef)
			if err != nil {
				return err
			}
			resp, err := a.Rollout.ApplyRolloutPlan(ctx, app.ApplyRolloutRequest{GroupID: groupID, StartDate: start})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatApply(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&groupRef, "group", "", "Group name or ID")
	optionalDateFlag(cmd.Flags(), &start, "start", "New start date; the group is updated to match")
	_ = cmd.MarkFlagRequired("group")
	return cmd
}

func newPlanShowCmd(app *App) *cobra.Command {
	var groupRef string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a group's saved plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			groupID, err := resolveGroupID(ctx, app, groupRef)
			if err != nil {
				return err
			}
			plan, err := app.Rollout.GetPlan(ctx, groupID)
			if err != nil {
				return fmt.Errorf("no saved plan for group %s (run plan apply first): %w", groupRef, err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlan(plan))
			return nil
		},
	}

	cmd.Flags().StringVar(&groupRef, "group", "", "Group name or ID")
	_ = cmd.MarkFlagRequired("group")
	return cmd
}

func newPlanDriftCmd(app *App) *cobra.Command {
	var groupRef string

	cmd := &cobra.Command{
		Use:   "drift",
		Short: "Compare a saved plan with a fresh calculation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			groupID, err := resolveGroupID(ctx, app, groupRef)
			if err != nil {
				return err
			}
			report, err := app.Rollout.CheckDrift(ctx, groupID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDrift(report))
			return nil
		},
	}

	cmd.Flags().StringVar(&groupRef, "group", "", "Group name or ID")
	_ = cmd.MarkFlagRequired("group")
	return cmd
}
