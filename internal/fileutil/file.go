package fileutil

import (
	"os"
	"path/filepath"
)

func MkdirAllIfNotExist(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, 0700)
	}
	return nil
}

// path を置くディレクトリがなければ作る
// sqlite やログファイルの置き場所として、存在しないディレクトリが指定されることがある
func MkdirParentIfNotExist(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return MkdirAllIfNotExist(dir)
}
