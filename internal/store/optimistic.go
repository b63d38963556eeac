package store

// Optimistic 执行一次“乐观更新”：先落地本地修改，再发起远端调用，
// 失败时用事先拍下的快照精确还原。snapshot 必须是足够深的拷贝，
// 保证还原后看不到乐观修改的任何痕迹。
func Optimistic[T any](snapshot T, apply func(), call func() error, restore func(T)) error {
	apply()
	if err := call(); err != nil {
		restore(snapshot)
		return err
	}
	return nil
}
