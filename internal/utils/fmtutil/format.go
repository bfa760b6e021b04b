// Package fmtutil provides formatting helpers for operator log messages.
// Package fmtutil 提供运维日志消息的格式化工具。
package fmtutil

import (
	"fmt"
	"strings"
	"time"
)

// FormatBytes renders a size with a binary unit, e.g. 5.00MB.
// FormatBytes 使用二进制单位格式化大小，例如 5.00MB。
func FormatBytes(b int64) string {
	if b < 1024 {
		return fmt.Sprintf("%dB", b)
	}
	value := float64(b)
	unit := ""
	for _, u := range []string{"KB", "MB", "GB", "TB"} {
		value /= 1024
		unit = u
		if value < 1024 {
			break
		}
	}
	return fmt.Sprintf("%.2f%s", value, unit)
}

// FormatDuration renders whole days, hours, minutes and seconds, e.g. "14d" or "1h 30m".
// FormatDuration 以天、时、分、秒格式化时长。
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return d.String()
	}

	units := []struct {
		size   time.Duration
		suffix string
	}{
		{24 * time.Hour, "d"},
		{time.Hour, "h"},
		{time.Minute, "m"},
		{time.Second, "s"},
	}
	var parts []string
	for _, u := range units {
		if n := d / u.size; n > 0 {
			parts = append(parts, fmt.Sprintf("%d%s", n, u.suffix))
			d -= n * u.size
		}
	}
	return strings.Join(parts, " ")
}
