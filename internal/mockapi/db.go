package mockapi

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/CZDX-WX/ai-interview-coach-cli/internal/model"
)

// OpenDB 打开 Mock 后端的数据库并完成迁移与种子数据。
// path 传 ":memory:" 时得到一次性的内存库，供测试与演示使用。
func OpenDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open mock database: %w", err)
	}

	if path == ":memory:" {
		// 内存库只在单个连接上可见，连接池必须收敛到 1
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.SetMaxOpenConns(1)
		}
	}

	if err := db.AutoMigrate(
		&UserRecord{},
		&ResumeRecord{},
		&RoleRecord{},
		&TagRecord{},
		&QuestionRecord{},
		&PracticeRecord{},
		&CategoryRecord{},
		&ThreadRecord{},
		&PostRecord{},
	); err != nil {
		return nil, fmt.Errorf("migrate mock database: %w", err)
	}

	if err := seed(db); err != nil {
		return nil, fmt.Errorf("seed mock database: %w", err)
	}
	return db, nil
}

// seed 填充演示数据。幂等：已有数据时跳过。
func seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&RoleRecord{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()

	roles := []RoleRecord{
		{Name: "后端开发工程师", Category: "研发", Description: "负责服务端系统的设计与实现", CreatedAt: now},
		{Name: "前端开发工程师", Category: "研发", Description: "负责 Web 界面与交互的实现", CreatedAt: now},
		{Name: "算法工程师", Category: "研发", Description: "负责机器学习模型的研发与落地", CreatedAt: now},
	}
	if err := db.Create(&roles).Error; err != nil {
		return err
	}

	tags := []TagRecord{
		{Name: "Java", CreatedAt: now},
		{Name: "Spring", CreatedAt: now},
		{Name: "MySQL", CreatedAt: now},
		{Name: "Redis", CreatedAt: now},
		{Name: "算法与数据结构", CreatedAt: now},
		{Name: "操作系统", CreatedAt: now},
		{Name: "计算机网络", CreatedAt: now},
		{Name: "Vue", CreatedAt: now},
	}
	if err := db.Create(&tags).Error; err != nil {
		return err
	}

	backendID := roles[0].ID
	questions := []QuestionRecord{
		{
			ID:              uuid.NewString(),
			QuestionText:    "请解释一下 MySQL 的事务隔离级别，以及它们分别解决了什么问题。",
			ReferenceAnswer: "四种隔离级别：读未提交、读已提交、可重复读、串行化。分别针对脏读、不可重复读与幻读。InnoDB 默认可重复读，通过 MVCC 与间隙锁实现。",
			Difficulty:      "MEDIUM",
			Tags:            mustJSON([]string{"MySQL"}),
			RoleID:          &backendID,
			CreatedAt:       now,
		},
		{
			ID:              uuid.NewString(),
			QuestionText:    "Redis 的持久化机制有哪些？各自的优缺点是什么？",
			ReferenceAnswer: "RDB 做定时快照，恢复快但可能丢数据；AOF 记录写命令，更安全但文件大、恢复慢。生产上常开启混合持久化。",
			Difficulty:      "MEDIUM",
			Tags:            mustJSON([]string{"Redis"}),
			RoleID:          &backendID,
			CreatedAt:       now,
		},
		{
			ID:              uuid.NewString(),
			QuestionText:    "什么是 TCP 三次握手？为什么需要三次而不是两次？",
			ReferenceAnswer: "SYN、SYN+ACK、ACK 三步建立连接。两次无法防止失效的连接请求突然到达服务端造成资源浪费，也无法让双方都确认对方的收发能力。",
			Difficulty:      "EASY",
			Tags:            mustJSON([]string{"计算机网络"}),
			RoleID:          &backendID,
			CreatedAt:       now,
		},
		{
			ID:              uuid.NewString(),
			QuestionText:    "请描述一次完整的垃圾回收过程，以及如何排查频繁 Full GC。",
			ReferenceAnswer: "从 GC Roots 出发标记存活对象，再按收集器策略清除或整理。排查时先看 GC 日志确认触发原因，再用堆转储分析大对象与泄漏点。",
			Difficulty:      "HARD",
			Tags:            mustJSON([]string{"Java"}),
			RoleID:          &backendID,
			CreatedAt:       now,
		},
	}
	if err := db.Create(&questions).Error; err != nil {
		return err
	}

	categories := []CategoryRecord{
		{ID: "interview-experience", Name: "面经分享", Description: "分享你的面试经历与复盘", SortOrder: 1},
		{ID: "tech-discussion", Name: "技术讨论", Description: "与同行切磋技术问题", SortOrder: 2},
		{ID: "career-planning", Name: "职业规划", Description: "聊聊 offer 选择与职业发展", SortOrder: 3},
	}
	if err := db.Create(&categories).Error; err != nil {
		return err
	}

	return seedDemoUser(db, now)
}

// seedDemoUser 创建演示账号（demo / password123）及其论坛内容。
func seedDemoUser(db *gorm.DB, now time.Time) error {
	hash, err := HashPassword("password123")
	if err != nil {
		return err
	}

	user := UserRecord{
		ID:           uuid.NewString(),
		Username:     "demo",
		Email:        "demo@example.com",
		PasswordHash: hash,
		FullName:     "演示用户",
		Major:        "计算机科学与技术",
		Authorities:  mustJSON([]string{"ROLE_USER"}),
		CreatedAt:    now,
	}
	if err := db.Create(&user).Error; err != nil {
		return err
	}

	thread := ThreadRecord{
		ID:         uuid.NewString(),
		CategoryID: "interview-experience",
		Title:      "秋招后端面经：从简历到 offer 的完整复盘",
		AuthorID:   user.ID,
		CreatedAt:  now.Add(-48 * time.Hour),
		ReplyCount: 1,
	}
	replyAt := now.Add(-24 * time.Hour)
	thread.LastReplyAt = &replyAt
	thread.LastReplyAuthorID = user.ID
	if err := db.Create(&thread).Error; err != nil {
		return err
	}

	posts := []PostRecord{
		{
			ID:        uuid.NewString(),
			ThreadID:  thread.ID,
			AuthorID:  user.ID,
			Content:   "整理了一下最近三家公司的后端面试题，供大家参考。",
			IsOp:      true,
			CreatedAt: thread.CreatedAt,
		},
		{
			ID:        uuid.NewString(),
			ThreadID:  thread.ID,
			AuthorID:  user.ID,
			Content:   "补充：二面手撕了一道 LRU，建议提前练一下。",
			CreatedAt: replyAt,
		},
	}
	if err := db.Create(&posts).Error; err != nil {
		return err
	}

	practice := PracticeRecord{
		UserID:    user.ID,
		Status:    model.ProficiencyNotPracticed,
		UpdatedAt: now,
	}
	var firstQuestion QuestionRecord
	if err := db.Order("created_at").First(&firstQuestion).Error; err == nil {
		practice.QuestionID = firstQuestion.ID
		practice.Status = model.ProficiencyNeedsReview
		if err := db.Create(&practice).Error; err != nil {
			return err
		}
	}
	return nil
}
