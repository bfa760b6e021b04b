package follow

import (
	"context"
	"fmt"
	"io"

	"github.com/nxadm/tail"
)

// Follow copies the lines of path to out. Without follow it stops at EOF;
// with follow it keeps reading, reopening the file after a size rotation,
// until ctx is done.
// Follow 将 path 中的行复制到 out。非跟随模式读到 EOF 结束；跟随模式持续读取，
// 在文件按大小轮转后重新打开，直到 ctx 结束。
func Follow(ctx context.Context, path string, follow bool, out io.Writer) error {
	t, err := tail.TailFile(path, tail.Config{
		Follow:    follow,
		ReOpen:    follow,
		MustExist: !follow,
		Poll:      true, // Fallback if inotify fails
		Logger:    tail.DiscardingLogger,
	})
	if err != nil {
		return err
	}
	defer t.Cleanup()

	for {
		select {
		case <-ctx.Done():
			_ = t.Stop()
			return nil
		case line, ok := <-t.Lines:
			if !ok {
				return t.Wait()
			}
			if line.Err != nil {
				return line.Err
			}
			if _, err := fmt.Fprintln(out, line.Text); err != nil {
				_ = t.Stop()
				return err
			}
		}
	}
}
