// Package cli 实现 coach 命令行客户端的全部子命令。
// 配置只来自环境变量，与服务端组件保持同一套加载方式。
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/CZDX-WX/ai-interview-coach-cli/internal/config"
	"github.com/CZDX-WX/ai-interview-coach-cli/internal/gateway"
	"github.com/CZDX-WX/ai-interview-coach-cli/internal/localstore"
	"github.com/CZDX-WX/ai-interview-coach-cli/internal/mockapi"
	"github.com/CZDX-WX/ai-interview-coach-cli/internal/store"
	"github.com/CZDX-WX/ai-interview-coach-cli/internal/store/auth"
	"github.com/CZDX-WX/ai-interview-coach-cli/internal/store/career"
	"github.com/CZDX-WX/ai-interview-coach-cli/internal/store/forum"
	"github.com/CZDX-WX/ai-interview-coach-cli/internal/store/practice"
	"github.com/CZDX-WX/ai-interview-coach-cli/internal/store/prefs"
	"github.com/CZDX-WX/ai-interview-coach-cli/internal/store/problems"
	"github.com/CZDX-WX/ai-interview-coach-cli/internal/store/resources"
	"github.com/CZDX-WX/ai-interview-coach-cli/internal/store/session"
	"github.com/CZDX-WX/ai-interview-coach-cli/internal/store/setup"
)

// App 聚合一次命令执行所需的全部依赖。
type App struct {
	Cfg     *config.Config
	Logger  *slog.Logger
	Storage *localstore.Store
	Tokens  *store.TokenHolder
	API     *gateway.Client

	Auth      *auth.Store
	Setup     *setup.Store
	Session   *session.Store
	Practice  *practice.Store
	Forum     *forum.Store
	Problems  *problems.Store
	Resources *resources.Store
	Career    *career.Store
	Prefs     *prefs.Store

	mock *mockapi.Server
}

// appRef 让子命令在 PersistentPreRunE 完成装配后拿到 App。
type appRef struct {
	app *App
}

func (r *appRef) App() *App { return r.app }

// NewApp 按配置装配客户端。Mock 模式下同进程拉起内置后端，
// 网关指向它的实际监听地址。
func NewApp() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	storage, err := localstore.Open(cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}

	app := &App{
		Cfg:     cfg,
		Logger:  logger,
		Storage: storage,
	}
	app.Tokens = store.NewTokenHolder(storage)

	baseURL := cfg.Client.BaseURL
	if cfg.Client.Mode == config.ModeMock {
		mockCfg := cfg.Mock
		mockCfg.Port = 0
		dbPath := filepath.Join(filepath.Dir(cfg.Storage.Path), "coach-mock.db")
		server, err := mockapi.NewServer(mockCfg, dbPath, logger)
		if err != nil {
			return nil, fmt.Errorf("start mock backend: %w", err)
		}
		addr, err := server.StartBackground()
		if err != nil {
			return nil, fmt.Errorf("start mock backend: %w", err)
		}
		app.mock = server
		baseURL = fmt.Sprintf("http://%s/api", addr)
	}

	app.API = gateway.New(baseURL, cfg.Client.Timeout, app.Tokens, logger)

	app.Auth = auth.New(app.API, app.Tokens, storage, logger)
	app.Setup = setup.New(app.Auth)
	app.Session = session.New(app.Setup)
	app.Practice = practice.New(app.API, logger, cfg.Client.PollInterval, cfg.Client.PageSize)
	app.Forum = forum.New(app.API, app.Auth, logger)
	app.Problems = problems.New()
	app.Resources = resources.New()
	app.Career = career.New()
	app.Prefs = prefs.New(storage, logger)

	return app, nil
}

// Close 释放后台资源。
func (a *App) Close() {
	a.Practice.StopPolling()
	if a.mock != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = a.mock.Shutdown(ctx)
	}
}

// NewRootCommand 组装根命令及全部子命令。
func NewRootCommand() *cobra.Command {
	ref := &appRef{}

	root := &cobra.Command{
		Use:           "coach",
		Short:         "AI 面试教练命令行客户端",
		Long:          "面向求职者的模拟面试与刷题练习工具：账号、模拟面试、题库、讨论区、学习资源与职业洞察。",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "serve-mock" {
				return nil
			}
			app, err := NewApp()
			if err != nil {
				return err
			}
			ref.app = app
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if ref.app != nil {
				ref.app.Close()
			}
		},
	}

	root.AddCommand(
		newRegisterCmd(ref),
		newLoginCmd(ref),
		newLogoutCmd(ref),
		newWhoamiCmd(ref),
		newProfileCmd(ref),
		newInterviewCmd(ref),
		newPracticeCmd(ref),
		newForumCmd(ref),
		newProblemsCmd(ref),
		newResourcesCmd(ref),
		newCareersCmd(ref),
		newPrefsCmd(ref),
		newServeMockCmd(),
	)
	return root
}

// Execute 运行根命令。
func Execute() error {
	return NewRootCommand().Execute()
}
