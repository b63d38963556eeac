package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CZDX-WX/ai-interview-coach-cli/internal/model"
)

func newForumCmd(ref *appRef) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "forum",
		Short: "讨论区",
	}
	cmd.AddCommand(
		newForumCategoriesCmd(ref),
		newForumThreadsCmd(ref),
		newForumViewCmd(ref),
		newForumNewCmd(ref),
		newForumReplyCmd(ref),
	)
	return cmd
}

func newForumCategoriesCmd(ref *appRef) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "列出讨论区分类",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := ref.App()
			if err := app.Forum.FetchCategories(cmd.Context()); err != nil {
				return err
			}
			for _, c := range app.Forum.Categories() {
				fmt.Printf("%-24s %s（主题 %d / 帖子 %d）\n", c.ID, c.Name, c.ThreadCount, c.PostCount)
				if c.LastThread != nil {
					fmt.Printf("    最新: %s · %s\n", c.LastThread.Title, c.LastThread.AuthorName)
				}
			}
			return nil
		},
	}
}

func newForumThreadsCmd(ref *appRef) *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "threads <分类ID>",
		Short: "列出某分类下的主题",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := ref.App()
			if err := app.Forum.FetchThreads(cmd.Context(), args[0], page, app.Cfg.Client.ForumPageSize); err != nil {
				return err
			}
			threads := app.Forum.Threads()
			fmt.Printf("共 %d 个主题，第 %d/%d 页\n", threads.Total, threads.Current, threads.Pages)
			for _, t := range threads.Records {
				pin := "  "
				if t.IsPinned {
					pin = "置顶"
				}
				fmt.Printf("%s %s  %s · %s（回复 %d）\n", pin, t.ID, t.Title, t.Author.Name, t.ReplyCount)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "页码")
	return cmd
}

func newForumViewCmd(ref *appRef) *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "view <主题ID>",
		Short: "查看主题及其回帖",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := ref.App()
			if err := app.Forum.FetchThreadWithPosts(cmd.Context(), args[0], page, app.Cfg.Client.PostsPageSize); err != nil {
				return err
			}
			detail := app.Forum.Detail()
			if detail == nil {
				return fmt.Errorf("主题不存在")
			}
			fmt.Printf("%s\n作者: %s  回复: %d  浏览: %d\n\n",
				detail.ThreadInfo.Title, detail.ThreadInfo.Author.Name,
				detail.ThreadInfo.ReplyCount, detail.ThreadInfo.ViewCount)
			for _, post := range detail.Posts.Records {
				role := ""
				if post.IsOp {
					role = "（楼主）"
				}
				fmt.Printf("[%s] %s%s\n%s\n\n", post.CreatedAt, post.Author.Name, role, post.Content)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "页码")
	return cmd
}

func newForumNewCmd(ref *appRef) *cobra.Command {
	var title, content string

	cmd := &cobra.Command{
		Use:   "new <分类ID>",
		Short: "发布新主题",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := ref.App()
			created, err := app.Forum.CreateThread(cmd.Context(), model.CreateThreadRequest{
				CategoryID: args[0],
				Title:      title,
				Content:    content,
			})
			if err != nil {
				if msg := app.Forum.Err(); msg != "" {
					return fmt.Errorf("%s", msg)
				}
				return err
			}
			fmt.Printf("主题已发布: %s\n", created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "主题标题")
	cmd.Flags().StringVar(&content, "content", "", "主题正文")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("content")
	return cmd
}

func newForumReplyCmd(ref *appRef) *cobra.Command {
	var content string

	cmd := &cobra.Command{
		Use:   "reply <主题ID>",
		Short: "回复主题",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := ref.App()
			created, err := app.Forum.CreatePost(cmd.Context(), model.CreatePostRequest{
				ThreadID: args[0],
				Content:  content,
			})
			if err != nil {
				if msg := app.Forum.Err(); msg != "" {
					return fmt.Errorf("%s", msg)
				}
				return err
			}
			fmt.Printf("回复已发布: %s\n", created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&content, "content", "", "回复内容")
	_ = cmd.MarkFlagRequired("content")
	return cmd
}
