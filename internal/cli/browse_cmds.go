package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/CZDX-WX/ai-interview-coach-cli/internal/store/problems"
)

func newProblemsCmd(ref *appRef) *cobra.Command {
	var (
		tab        string
		difficulty string
		status     string
		topic      string
		search     string
		sortBy     string
		favorite   string
		mark       string
		markStatus string
	)

	cmd := &cobra.Command{
		Use:   "problems",
		Short: "浏览内置刷题清单",
		RunE: func(_ *cobra.Command, _ []string) error {
			app := ref.App()
			app.Problems.FetchProblems()

			if favorite != "" {
				app.Problems.ToggleFavorite(favorite)
				fmt.Printf("已切换 %s 的收藏状态。\n", favorite)
			}
			if mark != "" {
				if markStatus == "" {
					return fmt.Errorf("--mark 需要配合 --mark-status 使用")
				}
				app.Problems.UpdateStatus(mark, markStatus)
				fmt.Printf("已更新 %s 的状态为 %s。\n", mark, markStatus)
			}

			app.Problems.UpdateFilter(func(f *problems.Filter) {
				if tab != "" {
					f.ActiveTab = tab
				}
				f.Difficulty = difficulty
				f.Status = status
				f.Topic = topic
				f.SearchTerm = search
				if sortBy != "" {
					f.SortBy = sortBy
				}
			})

			list := app.Problems.FilteredProblems()
			fmt.Printf("共 %d 题（主题: %s）\n", len(list),
				strings.Join(app.Problems.AvailableTopics(), "、"))
			for _, p := range list {
				state := app.Problems.StatusOf(p.ID)
				marker := " "
				if state.IsFavorite {
					marker = "*"
				}
				fmt.Printf("%s %-8s [%s][%s] %s（通过率 %.0f%%，频度 %d）\n",
					marker, p.ID, p.Difficulty, state.Status, p.Title,
					p.AcceptanceRate, p.FrequencyScore)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&tab, "tab", "", "页签（all/mySubmissions/favorites）")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "难度（简单/中等/困难）")
	cmd.Flags().StringVar(&status, "status", "", "状态（未开始/已尝试/已解决）")
	cmd.Flags().StringVar(&topic, "topic", "", "主题")
	cmd.Flags().StringVar(&search, "search", "", "搜索词")
	cmd.Flags().StringVar(&sortBy, "sort", "", "排序（frequencyDesc/difficultyAsc/difficultyDesc）")
	cmd.Flags().StringVar(&favorite, "favorite", "", "切换指定题目的收藏")
	cmd.Flags().StringVar(&mark, "mark", "", "更新指定题目的状态")
	cmd.Flags().StringVar(&markStatus, "mark-status", "", "与 --mark 配合的新状态")
	return cmd
}

func newResourcesCmd(ref *appRef) *cobra.Command {
	var (
		category string
		search   string
	)

	cmd := &cobra.Command{
		Use:   "resources",
		Short: "浏览学习资源库",
		RunE: func(_ *cobra.Command, _ []string) error {
			app := ref.App()
			app.Resources.FetchResources()
			app.Resources.SetActiveCategory(category)
			app.Resources.SetSearchTerm(search)

			groups := app.Resources.GroupedByCategory()
			if len(groups) == 0 {
				fmt.Println("没有匹配的资源。")
				return nil
			}
			for _, group := range groups {
				fmt.Printf("\n## %s\n", group.Category.Name)
				for _, r := range group.Resources {
					fmt.Printf("  [%s] %s\n      %s\n      %s\n", r.Type, r.Title, r.Description, r.LinkURL)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "分类 ID，缺省为全部")
	cmd.Flags().StringVar(&search, "search", "", "搜索词")
	return cmd
}

func newCareersCmd(ref *appRef) *cobra.Command {
	var (
		field  string
		level  string
		search string
		detail string
	)

	cmd := &cobra.Command{
		Use:   "careers",
		Short: "浏览职业洞察岗位画像",
		RunE: func(_ *cobra.Command, _ []string) error {
			app := ref.App()
			app.Career.FetchProfiles()

			if detail != "" {
				profile := app.Career.FindProfile(detail)
				if profile == nil {
					return fmt.Errorf("未找到岗位画像 %s", detail)
				}
				fmt.Printf("%s（%s / %s）\n\n%s\n", profile.Title,
					profile.JobField, profile.ExperienceLevel, profile.Description)
				fmt.Println("\n核心职责:")
				for _, r := range profile.Responsibilities {
					fmt.Printf("  - %s\n", r)
				}
				fmt.Println("\n技术技能:")
				for _, s := range profile.TechnicalSkills {
					fmt.Printf("  - %s（%s）\n", s.Name, s.Importance)
				}
				if profile.AvgSalaryRange != "" {
					fmt.Printf("\n薪资范围: %s\n", profile.AvgSalaryRange)
				}
				return nil
			}

			app.Career.SetJobField(field)
			app.Career.SetExperienceLevel(level)
			app.Career.SetSearchTerm(search)
			for _, p := range app.Career.FilteredProfiles() {
				fmt.Printf("%-16s %s（%s / %s）\n", p.ID, p.Title, p.JobField, p.ExperienceLevel)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&field, "field", "", "岗位方向")
	cmd.Flags().StringVar(&level, "level", "", "经验级别")
	cmd.Flags().StringVar(&search, "search", "", "搜索词")
	cmd.Flags().StringVar(&detail, "show", "", "查看指定画像详情")
	return cmd
}
