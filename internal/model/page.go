package model

// Page 是所有列表接口统一使用的分页信封。
// 历史版本中曾同时存在 content/totalElements/number 与 records/total/current
// 两种结构；后端最终收敛到 MyBatis-Plus IPage 风格，这里以其为准。
type Page[T any] struct {
	Records []T   `json:"records"`
	Total   int64 `json:"total"`
	Size    int   `json:"size"`
	Current int   `json:"current"`
	Pages   int   `json:"pages"`
}

// NewPage 根据完整记录集和分页参数切出一页。页码从 1 开始。
func NewPage[T any](all []T, current, size int) Page[T] {
	if size <= 0 {
		size = 10
	}
	if current <= 0 {
		current = 1
	}
	total := int64(len(all))
	pages := int((total + int64(size) - 1) / int64(size))

	start := (current - 1) * size
	if start > len(all) {
		start = len(all)
	}
	end := start + size
	if end > len(all) {
		end = len(all)
	}

	records := make([]T, end-start)
	copy(records, all[start:end])

	return Page[T]{
		Records: records,
		Total:   total,
		Size:    size,
		Current: current,
		Pages:   pages,
	}
}
