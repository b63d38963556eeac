package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/CZDX-WX/ai-interview-coach-cli/internal/model"
)

func newRegisterCmd(ref *appRef) *cobra.Command {
	var req model.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "注册新账号",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := ref.App()
			if !app.Auth.Register(cmd.Context(), req) {
				return fmt.Errorf("%s", app.Auth.Err())
			}
			fmt.Println("注册成功，请使用 coach login 登录。")
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Username, "username", "", "用户名")
	cmd.Flags().StringVar(&req.Email, "email", "", "邮箱")
	cmd.Flags().StringVar(&req.Password, "password", "", "密码")
	cmd.Flags().StringVar(&req.FullName, "name", "", "姓名")
	cmd.Flags().StringVar(&req.Major, "major", "", "专业")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLoginCmd(ref *appRef) *cobra.Command {
	var req model.LoginRequest

	cmd := &cobra.Command{
		Use:   "login",
		Short: "使用用户名或邮箱登录",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := ref.App()
			if !app.Auth.Login(cmd.Context(), req) {
				return fmt.Errorf("%s", app.Auth.Err())
			}
			user := app.Auth.CurrentUser()
			fmt.Printf("登录成功，欢迎 %s。\n", displayName(user))
			return nil
		},
	}

	cmd.Flags().StringVar(&req.UsernameOrEmail, "user", "", "用户名或邮箱")
	cmd.Flags().StringVar(&req.Password, "password", "", "密码")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(ref *appRef) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "退出登录并清除本地会话",
		RunE: func(_ *cobra.Command, _ []string) error {
			ref.App().Auth.Logout()
			fmt.Println("已退出登录。")
			return nil
		},
	}
}

func newWhoamiCmd(ref *appRef) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "查看当前登录身份",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := ref.App()
			user, err := app.Auth.FetchUser(cmd.Context())
			if err != nil {
				return err
			}
			if user == nil {
				fmt.Println("未登录。")
				return nil
			}
			fmt.Printf("%s (%s)\n", displayName(user), user.Email)
			if user.School != "" || user.Major != "" {
				fmt.Printf("  %s %s\n", user.School, user.Major)
			}
			for _, r := range user.Resumes {
				fmt.Printf("  简历: %s (%s)\n", r.Name, r.UploadDate)
			}
			return nil
		},
	}
}

func newProfileCmd(ref *appRef) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "管理个人资料",
	}
	cmd.AddCommand(
		newProfileUpdateCmd(ref),
		newProfilePasswordCmd(ref),
		newProfileResumeCmd(ref),
		newProfileDeleteCmd(ref),
	)
	return cmd
}

func newProfileUpdateCmd(ref *appRef) *cobra.Command {
	var req model.UpdateProfileRequest

	cmd := &cobra.Command{
		Use:   "update",
		Short: "更新个人资料",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := ref.App()
			current := app.Auth.CurrentUser()
			if current == nil {
				return fmt.Errorf("请先登录")
			}
			if req.FullName == "" {
				req.FullName = current.FullName
			}
			if req.Email == "" {
				req.Email = current.Email
			}
			if !app.Auth.UpdateProfile(cmd.Context(), req) {
				return fmt.Errorf("%s", app.Auth.Err())
			}
			fmt.Println("资料已更新。")
			return nil
		},
	}

	cmd.Flags().StringVar(&req.FullName, "name", "", "姓名")
	cmd.Flags().StringVar(&req.Email, "email", "", "邮箱")
	cmd.Flags().StringVar(&req.School, "school", "", "学校")
	cmd.Flags().StringVar(&req.Major, "major", "", "专业")
	cmd.Flags().StringVar(&req.GraduationYear, "graduation", "", "毕业年份")
	return cmd
}

func newProfilePasswordCmd(ref *appRef) *cobra.Command {
	var req model.ChangePasswordRequest

	cmd := &cobra.Command{
		Use:   "change-password",
		Short: "修改密码",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := ref.App()
			if req.ConfirmNewPassword == "" {
				req.ConfirmNewPassword = req.NewPassword
			}
			if !app.Auth.ChangePassword(cmd.Context(), req) {
				return fmt.Errorf("%s", app.Auth.Err())
			}
			fmt.Println("密码修改成功。")
			return nil
		},
	}

	cmd.Flags().StringVar(&req.CurrentPassword, "current", "", "当前密码")
	cmd.Flags().StringVar(&req.NewPassword, "new", "", "新密码")
	_ = cmd.MarkFlagRequired("current")
	_ = cmd.MarkFlagRequired("new")
	return cmd
}

func newProfileResumeCmd(ref *appRef) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resume",
		Short: "管理简历附件",
	}

	upload := &cobra.Command{
		Use:   "upload <文件路径>",
		Short: "上传简历",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := ref.App()
			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open resume file: %w", err)
			}
			defer file.Close()

			created := app.Auth.UploadResume(cmd.Context(), file.Name(), file)
			if created == nil {
				return fmt.Errorf("%s", app.Auth.Err())
			}
			fmt.Printf("简历已上传: %s (%s)\n", created.Name, created.ID)
			return nil
		},
	}

	remove := &cobra.Command{
		Use:   "delete <简历ID>",
		Short: "删除简历",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := ref.App()
			if !app.Auth.DeleteResume(cmd.Context(), args[0]) {
				return fmt.Errorf("%s", app.Auth.Err())
			}
			fmt.Println("简历已删除。")
			return nil
		},
	}

	cmd.AddCommand(upload, remove)
	return cmd
}

func newProfileDeleteCmd(ref *appRef) *cobra.Command {
	var confirmed bool

	cmd := &cobra.Command{
		Use:   "delete-account",
		Short: "删除账号及全部数据",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !confirmed {
				return fmt.Errorf("删除账号不可恢复，请加 --yes 确认")
			}
			app := ref.App()
			if !app.Auth.RequestAccountDeletion(cmd.Context()) {
				return fmt.Errorf("%s", app.Auth.Err())
			}
			app.Prefs.Clear()
			fmt.Println("账号已删除。")
			return nil
		},
	}

	cmd.Flags().BoolVar(&confirmed, "yes", false, "确认删除")
	return cmd
}

func displayName(user *model.User) string {
	if user == nil {
		return ""
	}
	if user.FullName != "" {
		return user.FullName
	}
	return user.Username
}
