package rotate

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/klauspost/compress/gzip"
	"go.uber.org/zap"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/livp123/grouplog/internal/config"
	"github.com/livp123/grouplog/internal/metrics"
	"github.com/livp123/grouplog/internal/utils/fileutil"
	"github.com/livp123/grouplog/internal/utils/fmtutil"
	errs "github.com/livp123/grouplog/pkg/errors"
)

const megabyte = 1024 * 1024

// Options is the rotation and retention policy.
// Options 是轮转与保留策略。
type Options struct {
	Dir       string
	Extension string
	MaxSizeMB int
	MaxAge    time.Duration
	Compress  bool
}

// Option customizes a Writer.
type Option func(*Writer)

// WithClock replaces time.Now, used to pick the day file and the retention cutoff.
// WithClock 替换 time.Now，用于选择日文件与计算保留截止时间。
func WithClock(now func() time.Time) Option {
	return func(w *Writer) { w.now = now }
}

// WithLogger sets the operator logger.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(w *Writer) {
		if l != nil {
			w.log = l
		}
	}
}

// Writer appends lines to <dir>/<YYYY-MM-DD><ext>. One lumberjack.Logger is
// pointed at each day's file in turn and cuts same-day segments once the size
// ceiling is reached. Its own backup pruning stays off so Filename can change;
// retention and compression are done by the sweep. A single mutex serializes
// every append, rotation and sweep.
// Writer 将日志行追加到按日期命名的文件中，所有写入、轮转与清理由同一把锁串行化。
type Writer struct {
	mu     sync.Mutex
	opts   Options
	now    func() time.Time
	log    *zap.SugaredLogger
	day    string
	file   *lumberjack.Logger
	size   int64
	closed bool
}

// New prepares the output directory and removes expired files. The first day
// file is opened lazily on the first write.
// New 准备输出目录并清理过期文件，首个日文件在首次写入时打开。
func New(opts Options, options ...Option) (*Writer, error) {
	opts.Extension = config.NormalizeExtension(opts.Extension)
	if err := config.ValidateExtension(opts.Extension); err != nil {
		return nil, err
	}
	if strings.TrimSpace(opts.Dir) == "" {
		return nil, errs.NewConfigError("storage.dir", opts.Dir)
	}
	if opts.MaxSizeMB < 1 {
		return nil, errs.NewConfigError("storage.max_size_mb", opts.MaxSizeMB)
	}
	if opts.MaxAge <= 0 {
		return nil, errs.NewConfigError("storage.max_age_days", opts.MaxAge)
	}

	if err := fileutil.EnsureDir(opts.Dir, 0755); err != nil {
		return nil, errs.NewDirError(opts.Dir, err)
	}

	w := &Writer{
		opts: opts,
		now:  time.Now,
		log:  zap.NewNop().Sugar(),
		file: &lumberjack.Logger{
			MaxSize:   opts.MaxSizeMB,
			LocalTime: true,
		},
	}
	for _, o := range options {
		o(w)
	}

	if _, err := w.sweepLocked(); err != nil {
		w.log.Warnf("⚠️  Retention sweep failed in %s: %v", opts.Dir, err)
	}
	return w, nil
}

// DayPath returns the file for the local calendar day of t.
// DayPath 返回 t 所在本地日期对应的文件路径。
func DayPath(dir, ext string, t time.Time) string {
	return filepath.Join(dir, t.Format(config.DateLayout)+config.NormalizeExtension(ext))
}

// CurrentPath returns the file that the next write goes to.
func (w *Writer) CurrentPath() string {
	return DayPath(w.opts.Dir, w.opts.Extension, w.now())
}

// WriteLine appends "[<at>] <msg>\n" to the current day file.
// WriteLine 向当日文件追加 "[<时间>] <消息>\n"。
func (w *Writer) WriteLine(at time.Time, msg string) error {
	var b strings.Builder
	b.Grow(len(config.TimeLayout) + len(msg) + 4)
	b.WriteByte('[')
	b.WriteString(at.Format(config.TimeLayout))
	b.WriteString("] ")
	b.WriteString(msg)
	b.WriteByte('\n')
	_, err := w.Write([]byte(b.String()))
	return err
}

// Write implements io.Writer. p is never split across two files.
// Write 实现 io.Writer，p 不会被拆分到两个文件中。
func (w *Writer) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return 0, errs.ErrWriterClosed
	}
	if int64(len(p)) > w.maxBytes() {
		return 0, fmt.Errorf("%w: %d bytes", errs.ErrLineTooLong, len(p))
	}
	if err := w.rollLocked(); err != nil {
		return 0, err
	}
	// lumberjack reopens a day file only while size+len stays below the ceiling
	if w.size > 0 && w.size+int64(len(p)) >= w.maxBytes() {
		if err := w.rotateLocked(metrics.RotateSize); err != nil {
			return 0, err
		}
	}

	n, err := w.file.Write(p)
	w.size += int64(n)
	metrics.BytesWritten.Add(float64(n))
	if err != nil {
		metrics.WriteErrors.Inc()
		return n, errs.NewWriteError(w.file.Filename, err)
	}
	return n, nil
}

// Rotate cuts a new segment of the current day file.
// Rotate 为当日文件切分新的分段。
func (w *Writer) Rotate() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return errs.ErrWriterClosed
	}
	if err := w.rollLocked(); err != nil {
		return err
	}
	return w.rotateLocked(metrics.RotateManual)
}

// Sweep deletes expired files and switches day if the date changed while idle.
// It returns the number of files removed.
// Sweep 删除过期文件；若空闲期间日期已变更则切换到新日文件。返回删除的文件数。
func (w *Writer) Sweep() (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return 0, errs.ErrWriterClosed
	}
	if w.day != "" && w.now().Format(config.DateLayout) != w.day {
		before := w.day
		if err := w.rollLocked(); err != nil {
			return 0, err
		}
		w.log.Debugf("Day switched while idle: %s -> %s", before, w.day)
	}
	return w.sweepLocked()
}

// Close closes the active file. Later writes fail with ErrWriterClosed.
// Close 关闭当前文件，之后的写入返回 ErrWriterClosed。
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true
	return w.file.Close()
}

func (w *Writer) maxBytes() int64 {
	return int64(w.opts.MaxSizeMB) * megabyte
}

// rollLocked makes sure the active lumberjack targets today's file.
func (w *Writer) rollLocked() error {
	now := w.now()
	day := now.Format(config.DateLayout)
	if w.day != "" && day == w.day {
		return nil
	}

	rolled := w.day != ""
	if rolled {
		if err := w.file.Close(); err != nil {
			w.log.Warnf("⚠️  Failed to close %s: %v", w.file.Filename, err)
		}
		metrics.Rotations.WithLabelValues(metrics.RotateDate).Inc()
	}

	path := DayPath(w.opts.Dir, w.opts.Extension, now)
	if err := fileutil.EnsureDir(w.opts.Dir, 0755); err != nil {
		return errs.NewDirError(w.opts.Dir, err)
	}
	w.day = day
	w.file.Filename = path
	w.size = 0
	if info, err := os.Stat(path); err == nil {
		w.size = info.Size()
	}

	if rolled {
		w.log.Infof("🔄 Day rollover, now writing %s", path)
		if _, err := w.sweepLocked(); err != nil {
			w.log.Warnf("⚠️  Retention sweep failed in %s: %v", w.opts.Dir, err)
		}
	}
	return nil
}

func (w *Writer) rotateLocked(reason string) error {
	if err := w.file.Rotate(); err != nil {
		return errs.NewRotateError(w.file.Filename, err)
	}
	w.log.Infof("🔄 Rotated %s (%s, %s)", w.file.Filename, reason, fmtutil.FormatBytes(w.size))
	w.size = 0
	metrics.Rotations.WithLabelValues(reason).Inc()

	if w.opts.Compress {
		w.compressLocked()
	}
	if _, err := w.sweepLocked(); err != nil {
		w.log.Warnf("⚠️  Retention sweep failed in %s: %v", w.opts.Dir, err)
	}
	return nil
}

// sweepLocked removes owned files whose modification time is older than MaxAge.
func (w *Writer) sweepLocked() (int, error) {
	entries, err := os.ReadDir(w.opts.Dir)
	if err != nil {
		return 0, err
	}

	cutoff := w.now().Add(-w.opts.MaxAge)
	active := ""
	if w.day != "" {
		active = filepath.Base(w.file.Filename)
	}

	removed := 0
	for _, e := range entries {
		name := e.Name()
		if !e.Type().IsRegular() || name == active || !w.owns(name) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if !info.ModTime().Before(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(w.opts.Dir, name)); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			w.log.Warnf("⚠️  Failed to remove expired %s: %v", name, err)
			continue
		}
		removed++
		metrics.FilesExpired.Inc()
		w.log.Infof("🗑️  Removed expired %s", name)
	}
	return removed, nil
}

// owns reports whether name is a day file or one of its segments:
// <YYYY-MM-DD>[-<stamp>]<ext>[.gz]
func (w *Writer) owns(name string) bool {
	if len(name) < len(config.DateLayout) {
		return false
	}
	if _, err := time.Parse(config.DateLayout, name[:len(config.DateLayout)]); err != nil {
		return false
	}
	base := strings.TrimSuffix(name, ".gz")
	return strings.HasSuffix(base, w.opts.Extension)
}

// compressLocked gzips same-day segments. The archive keeps the segment's
// modification time so the retention window is unchanged.
func (w *Writer) compressLocked() {
	entries, err := os.ReadDir(w.opts.Dir)
	if err != nil {
		w.log.Warnf("⚠️  Compression skipped in %s: %v", w.opts.Dir, err)
		return
	}
	for _, e := range entries {
		name := e.Name()
		if !e.Type().IsRegular() || !w.owns(name) || !isSegment(name) || strings.HasSuffix(name, ".gz") {
			continue
		}
		if err := gzipFile(filepath.Join(w.opts.Dir, name)); err != nil {
			w.log.Warnf("⚠️  Failed to compress %s: %v", name, err)
			continue
		}
		w.log.Debugf("Compressed %s", name)
	}
}

// isSegment reports whether name is a size segment: <YYYY-MM-DD>-<stamp><ext>.
func isSegment(name string) bool {
	n := len(config.DateLayout)
	return len(name) > n && name[n] == '-'
}

func gzipFile(path string) (err error) {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	dst := path + ".gz"
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode())
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(dst)
		}
	}()

	zw := gzip.NewWriter(out)
	if _, err = io.Copy(zw, src); err == nil {
		err = zw.Close()
	}
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	if err = os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return err
	}
	return os.Remove(path)
}
