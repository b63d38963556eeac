package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CZDX-WX/ai-interview-coach-cli/internal/store/prefs"
)

func newPrefsCmd(ref *appRef) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "查看与修改偏好设置",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "查看当前偏好",
		Run: func(_ *cobra.Command, _ []string) {
			app := ref.App()
			n := app.Prefs.Notifications()
			fmt.Printf("主题: %s（选项 %s）\n", app.Prefs.Theme(), app.Prefs.ThemeOption())
			fmt.Printf("报告就绪邮件通知:   %v\n", n.ReportReadyEmail)
			fmt.Printf("报告就绪应用内通知: %v\n", n.ReportReadyApp)
			fmt.Printf("系统更新应用内通知: %v\n", n.SystemUpdatesApp)
			fmt.Printf("资源推荐应用内通知: %v\n", n.NewResourceRecommendationsApp)
			fmt.Printf("允许数据用于 AI 改进: %v\n", app.Prefs.AllowDataUsageForAI())
		},
	}

	theme := &cobra.Command{
		Use:   "theme <light|dark|system>",
		Short: "设置主题",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			option := args[0]
			if option != prefs.OptionLight && option != prefs.OptionDark && option != prefs.OptionSystem {
				return fmt.Errorf("无效的主题选项: %s", option)
			}
			app := ref.App()
			app.Prefs.SetThemeOption(option)
			fmt.Printf("主题已设置为 %s（当前生效 %s）。\n", option, app.Prefs.Theme())
			return nil
		},
	}

	var notifyOn, notifyOff []string
	notify := &cobra.Command{
		Use:   "notify",
		Short: "调整通知开关",
		RunE: func(_ *cobra.Command, _ []string) error {
			app := ref.App()
			n := app.Prefs.Notifications()
			for _, key := range notifyOn {
				if err := setNotifyFlag(&n, key, true); err != nil {
					return err
				}
			}
			for _, key := range notifyOff {
				if err := setNotifyFlag(&n, key, false); err != nil {
					return err
				}
			}
			app.Prefs.UpdateNotifications(n)
			fmt.Println("通知设置已更新。")
			return nil
		},
	}
	notify.Flags().StringSliceVar(&notifyOn, "on", nil, "开启的开关（report-email/report-app/system/resources）")
	notify.Flags().StringSliceVar(&notifyOff, "off", nil, "关闭的开关")

	var allow bool
	data := &cobra.Command{
		Use:   "data-usage",
		Short: "设置是否允许数据用于 AI 改进",
		RunE: func(_ *cobra.Command, _ []string) error {
			app := ref.App()
			app.Prefs.SetAllowDataUsageForAI(allow)
			fmt.Printf("数据使用授权已设置为 %v。\n", allow)
			return nil
		},
	}
	data.Flags().BoolVar(&allow, "allow", true, "是否允许")

	cmd.AddCommand(show, theme, notify, data)
	return cmd
}

func setNotifyFlag(n *prefs.NotificationPreferences, key string, value bool) error {
	switch key {
	case "report-email":
		n.ReportReadyEmail = value
	case "report-app":
		n.ReportReadyApp = value
	case "system":
		n.SystemUpdatesApp = value
	case "resources":
		n.NewResourceRecommendationsApp = value
	default:
		return fmt.Errorf("未知的通知开关: %s", key)
	}
	return nil
}
