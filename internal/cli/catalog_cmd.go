package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sirashofficial/learnership-management-sub004/internal/cli/formatter"
	"github.com/sirashofficial/learnership-management-sub004/internal/domain"
)

func newCurriculumCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "curriculum",
		Short: "Inspect the loaded qualification",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "List modules and unit standards with their credits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCurriculum(app.Curriculum.Current()))
			return nil
		},
	})
	return cmd
}

func newGroupCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "group",
		Short: "Manage cohorts",
	}
	cmd.AddCommand(newGroupCreateCmd(app), newGroupListCmd(app))
	return cmd
}

func newGroupCreateCmd(app *App) *cobra.Command {
	var name string
	var start time.Time

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g := &domain.Group{Name: name, StartDate: start}
			if err := app.Groups.Create(cmd.Context(), g); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created group %s (%s) starting %s\n", g.Name, g.ID, formatter.Date(g.StartDate))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Group name")
	dateFlag(cmd.Flags(), &start, "start", "First day of training")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("start")
	return cmd
}

func newGroupListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			groups, err := app.Groups.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatGroups(groups))
			return nil
		},
	}
}

func newStudentCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "student",
		Short: "Manage learners",
	}
	cmd.AddCommand(newStudentAddCmd(app), newStudentListCmd(app))
	return cmd
}

func newStudentAddCmd(app *App) *cobra.Command {
	var groupRef, name string
	var enrolled *time.Time

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Enrol a learner in a group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			groupID, err := resolveGroupID(ctx, app, groupRef)
			if err != nil {
				return err
			}
			s := &domain.Student{GroupID: groupID, Name: name}
			if enrolled != nil {
				s.EnrolledAt = *enrolled
			}
			if err := app.Groups.AddStudent(ctx, s); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Enrolled %s (%s) on %s\n", s.Name, s.ID, formatter.Date(s.EnrolledAt))
			return nil
		},
	}

	cmd.Flags().StringVar(&groupRef, "group", "", "Group name or ID")
	cmd.Flags().StringVar(&name, "name", "", "Learner name")
	optionalDateFlag(cmd.Flags(), &enrolled, "enrolled", "Enrolment date, defaults to the group start")
	_ = cmd.MarkFlagRequired("group")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newStudentListCmd(app *App) *cobra.Command {
	var groupRef string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the learners in a group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			groupID, err := resolveGroupID(ctx, app, groupRef)
			if err != nil {
				return err
			}
			students, err := app.Groups.ListStudents(ctx, groupID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStudents(students))
			return nil
		},
	}

	cmd.Flags().StringVar(&groupRef, "group", "", "Group name or ID")
	_ = cmd.MarkFlagRequired("group")
	return cmd
}

func newAssessmentCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assessment",
		Short: "Record assessment outcomes",
	}
	cmd.AddCommand(newAssessmentRecordCmd(app))
	return cmd
}

func newAssessmentRecordCmd(app *App) *cobra.Command {
	var groupRef, studentRef, unit, result, kind string
	var assessed *time.Time

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record one assessment result for a learner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			groupID, err := resolveGroupID(ctx, app, groupRef)
			if err != nil {
				return err
			}
			student, err := resolveStudent(ctx, app, groupID, studentRef)
			if err != nil {
				return err
			}
			f := &domain.AssessmentFact{
				StudentID:      student.ID,
				UnitStandardID: strings.ToUpper(strings.TrimSpace(unit)),
				Type:           domain.AssessmentType(strings.ToUpper(kind)),
				Result:         domain.AssessmentResult(strings.ToUpper(result)),
			}
			if assessed != nil {
				f.AssessedDate = *assessed
			}
			if err := app.Groups.RecordAssessment(ctx, f); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s %s for %s on %s\n", f.UnitStandardID, f.Result, student.Name, formatter.Date(f.AssessedDate))
			return nil
		},
	}

	cmd.Flags().StringVar(&groupRef, "group", "", "Group name or ID")
	cmd.Flags().StringVar(&studentRef, "student", "", "Learner name or ID")
	cmd.Flags().StringVar(&unit, "unit", "", "Unit standard ID")
	cmd.Flags().StringVar(&result, "result", "", "COMPETENT, NOT_YET_COMPETENT or ABSENT")
	cmd.Flags().StringVar(&kind, "type", string(domain.AssessmentSummative), "FORMATIVE, SUMMATIVE or WORKPLACE")
	optionalDateFlag(cmd.Flags(), &assessed, "date", "Assessment date, defaults to today")
	_ = cmd.MarkFlagRequired("group")
	_ = cmd.MarkFlagRequired("student")
	_ = cmd.MarkFlagRequired("unit")
	_ = cmd.MarkFlagRequired("result")
	return cmd
}
