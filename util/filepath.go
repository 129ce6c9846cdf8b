package util

import "os"

func FileExist(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func DirExist(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
