package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sirashofficial/learnership-management-sub004/internal/app"
	"github.com/sirashofficial/learnership-management-sub004/internal/cli/formatter"
	"github.com/sirashofficial/learnership-management-sub004/internal/domain"
)

func newSessionsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Generate and list class sessions",
	}
	cmd.AddCommand(newSessionsGenerateCmd(app), newSessionsListCmd(app))
	return cmd
}

func newSessionsGenerateCmd(a *App) *cobra.Command {
	var groupRef, templateID, startTime, endTime, venue, activity string
	var weekdays []time.Weekday
	var from, to *time.Time
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Expand a weekly pattern into sessions across the group's plan",
		Long: `Expand a weekly pattern into dated sessions inside the group's applied plan.

The pattern is either a stored template (--template), an inline cadence
(--weekdays with --start-time, --end-time and --venue), or, when neither is
given, the template assigned to the group. Running it twice creates nothing
new; slots already booked by another group are reported as conflicts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			groupID, err := resolveGroupID(ctx, a, groupRef)
			if err != nil {
				return err
			}
			req := app.GenerateSessionsRequest{
				GroupID:    groupID,
				TemplateID: templateID,
				From:       from,
				To:         to,
				DryRun:     dryRun,
			}
			if len(weekdays) > 0 {
				req.Cadence = &domain.Cadence{
					Weekdays:  weekdays,
					StartTime: startTime,
					EndTime:   endTime,
					Venue:     venue,
					Activity:  domain.ActivityKind(strings.ToLower(activity)),
				}
			}
			resp, err := a.Sessions.GenerateSessions(ctx, req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatGenerate(resp))
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&groupRef, "group", "", "Group name or ID")
	fs.StringVar(&templateID, "template", "", "Template ID")
	fs.Var(&weekdaysValue{days: &weekdays}, "weekdays", "Cadence weekdays, e.g. mon,wed,fri")
	fs.StringVar(&startTime, "start-time", "09:00", "Cadence start time (HH:MM)")
	fs.StringVar(&endTime, "end-time", "12:00", "Cadence end time (HH:MM)")
	fs.StringVar(&venue, "venue", "", "Cadence venue")
	fs.StringVar(&activity, "activity", string(domain.ActivityLecture), "Cadence activity: lecture, practical, workplace or assessment")
	optionalDateFlag(fs, &from, "from", "First date to generate")
	optionalDateFlag(fs, &to, "to", "Last date to generate")
	fs.BoolVar(&dryRun, "dry-run", false, "Report what would be created without saving")
	_ = cmd.MarkFlagRequired("group")
	return cmd
}

func newSessionsListCmd(app *App) *cobra.Command {
	var groupRef string
	var from, to *time.Time

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a group's sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			groupID, err := resolveGroupID(ctx, app, groupRef)
			if err != nil {
				return err
			}
			sessions, err := app.Sessions.ListSessions(ctx, groupID, from, to)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSessions(sessions))
			return nil
		},
	}

	cmd.Flags().StringVar(&groupRef, "group", "", "Group name or ID")
	optionalDateFlag(cmd.Flags(), &from, "from", "List sessions on or after this date")
	optionalDateFlag(cmd.Flags(), &to, "to", "List sessions on or before this date")
	_ = cmd.MarkFlagRequired("group")
	return cmd
}
