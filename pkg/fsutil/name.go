package fsutil

import "strings"

// SplitName 将文件名拆分为主名和扩展名
// 与 filepath.Ext 不同：".bashrc" 这类隐藏文件没有扩展名，以 "." 结尾的文件名也没有扩展名
func SplitName(name string) (stem, ext string) {
	i := strings.LastIndex(name, ".")
	if i <= 0 || i == len(name)-1 {
		return name, ""
	}
	return name[:i], name[i:]
}

// Ext 返回文件名的扩展名（带前导点），规则同 SplitName
func Ext(name string) string {
	_, ext := SplitName(name)
	return ext
}
