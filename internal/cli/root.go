package cli

import (
	"github.com/spf13/cobra"

	"github.com/sirashofficial/learnership-management-sub004/internal/repository"
	"github.com/sirashofficial/learnership-management-sub004/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Curriculum repository.CurriculumSource
	Groups     service.GroupService
	Rollout    service.RolloutService
	Sessions   service.SessionService
	Progress   service.ProgressService
	Templates  service.TemplateService
}

// NewRootCmd creates the top-level "rollout" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "rollout",
		Short:         "Learnership rollout scheduler and progress tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newCurriculumCmd(app),
		newGroupCmd(app),
		newStudentCmd(app),
		newAssessmentCmd(app),
		newPlanCmd(app),
		newTemplateCmd(app),
		newSessionsCmd(app),
		newProgressCmd(app),
	)

	return root
}
