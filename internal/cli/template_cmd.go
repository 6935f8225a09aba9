package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sirashofficial/learnership-management-sub004/internal/cli/formatter"
	"github.com/sirashofficial/learnership-management-sub004/internal/domain"
)

func newTemplateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Manage weekly schedule templates",
	}
	cmd.AddCommand(
		newTemplateImportCmd(app),
		newTemplateListCmd(app),
		newTemplateAssignCmd(app),
	)
	return cmd
}

func newTemplateImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import or replace a template from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tpl, err := app.Templates.ImportFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			slots := 0
			for _, s := range tpl.Slots {
				slots += len(s)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported template %s (%s) with %d weekly slot(s)\n", tpl.ID, tpl.Name, slots)
			return nil
		},
	}
}

func newTemplateListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List templates and their slots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			templates, err := app.Templates.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTemplates(templates))
			return nil
		},
	}
}

func newTemplateAssignCmd(app *App) *cobra.Command {
	var groupRef, templateID string
	var from time.Time
	var to *time.Time

	cmd := &cobra.Command{
		Use:   "assign",
		Short: "Bind a group to a template over a date range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			groupID, err := resolveGroupID(ctx, app, groupRef)
			if err != nil {
				return err
			}
			gs := &domain.GroupSchedule{GroupID: groupID, TemplateID: templateID, StartDate: from, EndDate: to}
			if err := app.Templates.Assign(ctx, gs); err != nil {
				return err
			}
			until := "open-ended"
			if gs.EndDate != nil {
				until = "until " + formatter.Date(*gs.EndDate)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Assigned template %s to group %s from %s, %s\n", templateID, groupRef, formatter.Date(gs.StartDate), until)
			return nil
		},
	}

	cmd.Flags().StringVar(&groupRef, "group", "", "Group name or ID")
	cmd.Flags().StringVar(&templateID, "template", "", "Template ID")
	dateFlag(cmd.Flags(), &from, "from", "First date the template applies")
	optionalDateFlag(cmd.Flags(), &to, "to", "Last date the template applies")
	_ = cmd.MarkFlagRequired("group")
	_ = cmd.MarkFlagRequired("template")
	_ = cmd.MarkFlagRequired("from")
	return cmd
}
