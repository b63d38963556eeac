package model

// User 表示当前登录账号的完整画像。
// Authorities 统一为字符串切片（旧版 Set 序列化不稳定，已废弃）。
type User struct {
	ID             string       `json:"id"`
	Username       string       `json:"username"`
	Email          string       `json:"email"`
	FullName       string       `json:"fullName"`
	AvatarURL      string       `json:"avatarUrl,omitempty"`
	School         string       `json:"school,omitempty"`
	Major          string       `json:"major,omitempty"`
	GraduationYear string       `json:"graduationYear,omitempty"`
	Resumes        []ResumeInfo `json:"resumes,omitempty"`
	Authorities    []string     `json:"authorities,omitempty"`
}

// ResumeInfo 表示用户的一份简历附件，归属于唯一用户。
type ResumeInfo struct {
	ID         string `json:"id,omitempty"`
	Name       string `json:"name"`
	UploadDate string `json:"uploadDate,omitempty"`
	URL        string `json:"url,omitempty"`
	IsDefault  bool   `json:"isDefault,omitempty"`
}

// Clone 返回 User 的深拷贝，供乐观更新回滚使用。
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	cp := *u
	if u.Resumes != nil {
		cp.Resumes = make([]ResumeInfo, len(u.Resumes))
		copy(cp.Resumes, u.Resumes)
	}
	if u.Authorities != nil {
		cp.Authorities = make([]string, len(u.Authorities))
		copy(cp.Authorities, u.Authorities)
	}
	return &cp
}

// AuthorInfo 是论坛等处使用的简化作者信息。
type AuthorInfo struct {
	UserID    string `json:"userId"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}
