package internal

const (
	// 日志文件默认名称，位于当前工作目录；整理时始终跳过同名文件
	DefaultLogFile = "organizer.log"

	// 配置文件名（不含扩展名）
	DefaultConfigName = "config"

	// 配置目录名
	DefaultConfigDir = ".file-organizer"

	// 新建分类目录的权限
	DefaultDirPerm = 0755
)
