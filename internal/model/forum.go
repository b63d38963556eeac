package model

// ForumCategory 论坛分类及其统计信息。
type ForumCategory struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	ThreadCount int        `json:"threadCount"`
	PostCount   int        `json:"postCount"`
	LastThread  *ThreadRef `json:"lastThread,omitempty"`
}

// ThreadRef 是分类列表中指向最新主题的摘要。
type ThreadRef struct {
	ThreadID   string `json:"threadId"`
	Title      string `json:"title"`
	Timestamp  string `json:"timestamp"`
	AuthorName string `json:"authorName"`
}

// ThreadSummary 主题列表页的单个主题摘要。
type ThreadSummary struct {
	ID              string      `json:"id"`
	CategoryID      string      `json:"categoryId"`
	Title           string      `json:"title"`
	Author          AuthorInfo  `json:"author"`
	CreatedAt       string      `json:"createdAt"`
	ReplyCount      int         `json:"replyCount"`
	ViewCount       int         `json:"viewCount,omitempty"`
	LastReplyAt     string      `json:"lastReplyAt,omitempty"`
	LastReplyAuthor *AuthorInfo `json:"lastReplyAuthor,omitempty"`
	IsPinned        bool        `json:"isPinned,omitempty"`
	IsLocked        bool        `json:"isLocked,omitempty"`
}

// Post 主题详情页中的一条帖子（回复）。
// 统一使用 isOp 命名标记主楼（旧 mock 数据中的 isOP 已废弃）。
type Post struct {
	ID        string     `json:"id"`
	Author    AuthorInfo `json:"author"`
	Content   string     `json:"content"`
	CreatedAt string     `json:"createdAt"`
	IsOp      bool       `json:"isOp,omitempty"`
}

// ThreadDetail 对应 GET /discussion/threads/{id} 的响应体。
type ThreadDetail struct {
	ThreadInfo ThreadSummary `json:"threadInfo"`
	Posts      Page[Post]    `json:"posts"`
}
