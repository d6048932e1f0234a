package hasher

import (
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/afero"
)

// CalculateHash 计算文件内容的 xxHash
func CalculateHash(fs afero.Fs, filePath string) (uint64, error) {
	file, err := fs.Open(filePath)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	hash := xxhash.New()
	if _, err := io.Copy(hash, file); err != nil {
		return 0, err
	}

	return hash.Sum64(), nil
}

// CopyWithHash 从 src 复制到 dst，同时计算读取内容的 xxHash
func CopyWithHash(dst io.Writer, src io.Reader) (uint64, int64, error) {
	hash := xxhash.New()
	n, err := io.Copy(dst, io.TeeReader(src, hash))
	return hash.Sum64(), n, err
}
