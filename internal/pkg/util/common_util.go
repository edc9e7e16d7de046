package util

import (
	"time"
	"unicode/utf8"
)

// GetMidnight 取指定时间所在日期的零点
func GetMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// TruncateRunes 按字符数截断字符串，超出部分以省略号结尾
func TruncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max]) + "..."
}
