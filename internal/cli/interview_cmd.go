package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/CZDX-WX/ai-interview-coach-cli/internal/catalog"
	"github.com/CZDX-WX/ai-interview-coach-cli/internal/store/session"
)

func newInterviewCmd(ref *appRef) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interview",
		Short: "模拟面试",
	}
	cmd.AddCommand(newInterviewPhasesCmd(), newInterviewRunCmd(ref))
	return cmd
}

func newInterviewPhasesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "phases",
		Short: "列出可选的面试环节",
		Run: func(_ *cobra.Command, _ []string) {
			for _, phase := range catalog.AllPossiblePhases {
				fmt.Printf("%-18s %s（约 %s）\n", phase.ID, phase.Name, phase.DefaultEstimatedTime)
			}
		},
	}
}

func newInterviewRunCmd(ref *appRef) *cobra.Command {
	var (
		jobField string
		level    string
		phases   []string
		resumeID string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "开始一场模拟面试并走完全部环节",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := ref.App()

			app.Setup.ClearSetup()
			app.Setup.SetJobField(jobField)
			app.Setup.SetExperienceLevel(level)
			if len(phases) > 0 {
				for _, id := range catalog.DefaultPhaseSelection() {
					app.Setup.TogglePhase(id)
				}
				for _, id := range phases {
					app.Setup.TogglePhase(id)
				}
			}
			if resumeID != "" {
				app.Setup.SetSelectedResumeByID(resumeID)
			}

			sessionID := app.Setup.CreateSession(cmd.Context())
			if !app.Session.StartInterview(sessionID) {
				return fmt.Errorf("无法开始面试：请检查岗位方向、经验级别与环节选择")
			}

			fmt.Printf("面试开始（%s / %s），会话 %s\n",
				app.Setup.JobFieldLabel(), app.Setup.ExperienceLevelLabel(), sessionID)
			fmt.Println(strings.Repeat("-", 60))

			for app.Session.Status() == session.RunOngoing {
				phase := app.Session.CurrentPhase()
				if phase == nil {
					break
				}
				fmt.Printf("\n[环节 %d/%d] %s\n", app.Session.CurrentPhaseIndex()+1,
					app.Session.TotalPhases(), phase.Name)

				for {
					fmt.Printf("  Q: %s\n", app.Session.CurrentQuestionText())
					if !app.Session.CanGoToNextSubQuestion() {
						break
					}
					app.Session.NextSubQuestion()
				}
				app.Session.NextPhase()
			}

			fmt.Println(strings.Repeat("-", 60))
			fmt.Printf("面试结束，状态: %s，进度: %.0f%%\n",
				app.Session.Status(), app.Session.Progress())
			return nil
		},
	}

	cmd.Flags().StringVar(&jobField, "field", "", "岗位方向（见 careers 列表，如 swe）")
	cmd.Flags().StringVar(&level, "level", "", "经验级别（如 campus、junior）")
	cmd.Flags().StringSliceVar(&phases, "phase", nil, "面试环节 ID，可多次指定；缺省使用默认组合")
	cmd.Flags().StringVar(&resumeID, "resume", "", "使用的简历 ID")
	_ = cmd.MarkFlagRequired("field")
	_ = cmd.MarkFlagRequired("level")
	return cmd
}
