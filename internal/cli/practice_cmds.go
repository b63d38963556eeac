package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/CZDX-WX/ai-interview-coach-cli/internal/model"
)

func newPracticeCmd(ref *appRef) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "practice",
		Short: "练习题库",
	}
	cmd.AddCommand(
		newPracticeRolesCmd(ref),
		newPracticeSearchCmd(ref),
		newPracticeGenerateCmd(ref),
		newPracticeStatsCmd(ref),
		newPracticeMarkCmd(ref),
	)
	return cmd
}

func newPracticeRolesCmd(ref *appRef) *cobra.Command {
	return &cobra.Command{
		Use:   "roles",
		Short: "列出岗位角色与技术标签",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := ref.App()
			if err := app.Practice.FetchRoles(cmd.Context()); err != nil {
				return err
			}
			if err := app.Practice.FetchTags(cmd.Context(), nil); err != nil {
				return err
			}
			fmt.Println("岗位角色:")
			for _, role := range app.Practice.Roles() {
				fmt.Printf("  %d  %s（%s）\n", role.ID, role.Name, role.Category)
			}
			fmt.Println("技术标签:")
			var names []string
			for _, tag := range app.Practice.Tags() {
				names = append(names, tag.Name)
			}
			fmt.Printf("  %s\n", strings.Join(names, "、"))
			return nil
		},
	}
}

func newPracticeSearchCmd(ref *appRef) *cobra.Command {
	var (
		roleID     int64
		tags       []string
		allTags    bool
		status     string
		difficulty string
		page       int
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "按条件搜索题目",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := ref.App()
			app.Practice.UpdateFilter(func(f *model.QuestionSearchRequest) {
				if roleID > 0 {
					f.RoleID = &roleID
				} else {
					f.RoleID = nil
				}
				f.TagNames = tags
				f.SearchMode = model.SearchModeAnyTag
				if allTags {
					f.SearchMode = model.SearchModeAllTag
				}
				f.PracticeStatus = status
				f.Difficulty = difficulty
			})

			if err := app.Practice.SearchQuestions(cmd.Context(), page); err != nil {
				return err
			}

			result := app.Practice.Questions()
			fmt.Printf("共 %d 题，第 %d/%d 页\n", result.Total, result.Current, result.Pages)
			for _, q := range result.Records {
				marker := " "
				if q.IsBookmarked {
					marker = "*"
				}
				fmt.Printf("%s [%s][%s] %s\n    %s\n", marker,
					q.Difficulty, q.ProficiencyStatus, q.ID, q.QuestionText)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&roleID, "role", 0, "岗位角色 ID")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "标签名，可多次指定")
	cmd.Flags().BoolVar(&allTags, "all-tags", false, "要求同时命中全部标签")
	cmd.Flags().StringVar(&status, "status", "", "熟练度（NOT_PRACTICED/NEEDS_REVIEW/MASTERED）")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "难度（EASY/MEDIUM/HARD）")
	cmd.Flags().IntVar(&page, "page", 1, "页码")
	return cmd
}

func newPracticeGenerateCmd(ref *appRef) *cobra.Command {
	var (
		req    model.GenerationRequest
		public bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "发起 AI 出题任务并等待完成",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := ref.App()

			var ok bool
			if public {
				ok = app.Practice.StartPublicGeneration(cmd.Context(), req)
			} else {
				ok = app.Practice.StartPersonalizedGeneration(cmd.Context(), req)
			}
			if !ok {
				task := app.Practice.Task()
				if task != nil {
					return fmt.Errorf("%s", task.Message)
				}
				return fmt.Errorf("出题请求提交失败")
			}

			fmt.Println("任务已受理，等待生成完成。")
			for {
				select {
				case <-cmd.Context().Done():
					app.Practice.StopPolling()
					return cmd.Context().Err()
				case <-time.After(app.Cfg.Client.PollInterval / 2):
				}

				task := app.Practice.Task()
				if task == nil {
					continue
				}
				if task.Finished {
					if task.Status != model.TaskCompleted {
						return fmt.Errorf("任务失败: %s", task.Message)
					}
					fmt.Printf("%s\n", task.Message)
					for _, q := range app.Practice.LastTaskResult() {
						fmt.Printf("  新题: %s\n", q.QuestionText)
					}
					app.Practice.ClearLastTaskResult()
					return nil
				}
				fmt.Printf("  进度 %d%%: %s\n", task.Progress, task.Message)
			}
		},
	}

	cmd.Flags().Int64Var(&req.RoleID, "role", 0, "岗位角色 ID")
	cmd.Flags().StringSliceVar(&req.TagNames, "tag", nil, "标签名，可多次指定")
	cmd.Flags().StringVar(&req.Difficulty, "difficulty", "", "难度")
	cmd.Flags().IntVar(&req.Count, "count", 3, "生成题目数量")
	cmd.Flags().BoolVar(&public, "public", false, "补充公共题库而非个性化生成")
	_ = cmd.MarkFlagRequired("role")
	return cmd
}

func newPracticeStatsCmd(ref *appRef) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "查看练习进度统计",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := ref.App()
			if err := app.Practice.FetchProgressStats(cmd.Context()); err != nil {
				return err
			}
			stats := app.Practice.Stats()
			fmt.Printf("题目总数: %d\n已掌握:   %d\n需复习:   %d\n未练习:   %d\n已收藏:   %d\n",
				stats.TotalQuestions, stats.MasteredCount, stats.NeedsReviewCount,
				stats.NotPracticedCount, stats.BookmarkedCount)
			return nil
		},
	}
}

func newPracticeMarkCmd(ref *appRef) *cobra.Command {
	var (
		status   string
		bookmark bool
		reset    bool
	)

	cmd := &cobra.Command{
		Use:   "mark <题目ID>",
		Short: "更新某题的熟练度或收藏状态",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := ref.App()
			questionID := args[0]

			// mark 操作基于当前页内的题目，先保证列表已加载
			if len(app.Practice.Questions().Records) == 0 {
				if err := app.Practice.SearchQuestions(cmd.Context(), 1); err != nil {
					return err
				}
			}

			switch {
			case reset:
				if err := app.Practice.ResetQuestionStatus(cmd.Context(), questionID); err != nil {
					return err
				}
				fmt.Println("已重置为未练习。")
			case bookmark:
				if err := app.Practice.ToggleQuestionBookmark(cmd.Context(), questionID); err != nil {
					return err
				}
				fmt.Println("收藏状态已切换。")
			case status != "":
				if err := app.Practice.UpdateQuestionStatus(cmd.Context(), questionID, status); err != nil {
					return err
				}
				fmt.Println("熟练度已更新。")
			default:
				return fmt.Errorf("请指定 --status、--bookmark 或 --reset 之一")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "熟练度（NOT_PRACTICED/NEEDS_REVIEW/MASTERED）")
	cmd.Flags().BoolVar(&bookmark, "bookmark", false, "切换收藏")
	cmd.Flags().BoolVar(&reset, "reset", false, "重置为未练习")
	return cmd
}
