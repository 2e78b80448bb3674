package common

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// FileExist returns true if the path names an existing file or directory.
func FileExist(filePath string) bool {
	_, err := os.Stat(filePath)
	return err == nil || !os.IsNotExist(err)
}

// CurrentDir returns the directory of the running executable.
func CurrentDir() (string, error) {
	return filepath.Abs(filepath.Dir(os.Args[0]))
}

// AbsolutePath returns path if it is absolute, or path joined to datadir.
func AbsolutePath(datadir, filename string) string {
	if filepath.IsAbs(filename) {
		return filename
	}
	return filepath.Join(datadir, filename)
}

// GetUint64FromStr parses decimal or 0x prefixed hex.
func GetUint64FromStr(str string) (uint64, error) {
	s := strings.TrimSpace(str)
	base := 10
	if has0xPrefix(s) {
		s, base = s[2:], 16
	}
	res, err := strconv.ParseUint(s, base, 64)
	if err != nil {
		return 0, errors.New("invalid unsigned 64 bit integer: " + str)
	}
	return res, nil
}

// Now returns the current unix time in seconds.
func Now() int64 {
	return time.Now().Unix()
}

// NowMilli returns the current unix time in milliseconds.
func NowMilli() int64 {
	return time.Now().UnixNano() / 1e6
}
