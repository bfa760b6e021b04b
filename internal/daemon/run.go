package daemon

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/livp123/grouplog/internal/collector"
	"github.com/livp123/grouplog/internal/config"
	"github.com/livp123/grouplog/internal/rotate"
	"github.com/livp123/grouplog/internal/utils/fmtutil"
	"github.com/livp123/grouplog/internal/utils/logger"
)

// Run starts the collector and blocks until a stop signal, a cancelled ctx
// or a failed append. Only the latter is returned as an error.
// Run 启动收集器并阻塞，直到收到停止信号、ctx 取消或写入失败；仅写入失败会返回错误。
func Run(ctx context.Context, cfg *config.Config, opts *DaemonOptions) error {
	log := logger.Get(ctx)
	if opts == nil {
		opts = &DaemonOptions{}
	}
	now := opts.Clock
	if now == nil {
		now = time.Now
	}

	filter, err := collector.CompileFilter(cfg.Format.Filter)
	if err != nil {
		return err
	}

	writer, err := rotate.New(rotate.Options{
		Dir:       cfg.Storage.Dir,
		Extension: cfg.Storage.Extension,
		MaxSizeMB: cfg.Storage.MaxSizeMB,
		MaxAge:    cfg.MaxAge(),
		Compress:  cfg.Storage.Compress,
	}, rotate.WithLogger(log), rotate.WithClock(now))
	if err != nil {
		return err
	}
	defer func() {
		if err := writer.Close(); err != nil {
			log.Warnf("⚠️  Failed to close log file: %v", err)
		}
	}()

	fatal := make(chan error, 1)
	srv := collector.NewServer(writer,
		collector.WithLogger(log),
		collector.WithFilter(filter),
		collector.WithPlaceholder(cfg.Format.MissingField),
		collector.WithProducerTimestamp(cfg.Format.UseProducerTimestamp),
		collector.WithMetrics(cfg.Server.Metrics),
		collector.WithClock(now),
		collector.WithWriteErrorHandler(func(err error) {
			select {
			case fatal <- err:
			default:
			}
		}),
	)

	ln := opts.Listener
	if ln == nil {
		if ln, err = net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
			return err
		}
	}

	httpSrv := &http.Server{
		Handler:           srv.Mux(),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout(),
	}
	serveErr := make(chan error, 1)
	go func() {
		if err := httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	log.Infof("🚀 Log server listening on http://localhost:%d/log", listenPort(ln, cfg.Server.Port))
	log.Infof("📁 Log files are written to %s with extension %s (max %s per file, kept %s)",
		cfg.Storage.Dir, cfg.Storage.Extension,
		fmtutil.FormatBytes(int64(cfg.Storage.MaxSizeMB)*1024*1024), fmtutil.FormatDuration(cfg.MaxAge()))
	if filter != nil {
		log.Infof("🔍 Filter: %s", filter)
	}

	loopCtx, stopLoop := context.WithCancel(ctx)
	defer stopLoop()
	go runCleanupLoop(loopCtx, writer, cfg.CleanupInterval())

	sig := opts.Signals
	if sig == nil {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
		defer signal.Stop(ch)
		sig = ch
	}

	runErr := waitForSignal(ctx, sig, writer, serveErr, fatal)

	log.Info("👋 Log server shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Warnf("⚠️  HTTP shutdown: %v", err)
	}
	return runErr
}

// rotator is the part of the writer driven by signals and the cleanup loop.
type rotator interface {
	Rotate() error
	Sweep() (int, error)
}

func waitForSignal(ctx context.Context, sig <-chan os.Signal, w rotator, serveErr, fatal <-chan error) error {
	log := logger.Get(ctx)
	for {
		select {
		case s := <-sig:
			if s != syscall.SIGHUP {
				return nil
			}
			log.Info("🔄 Received SIGHUP, rotating log file...")
			if err := w.Rotate(); err != nil {
				log.Errorf("❌ Failed to rotate: %v", err)
			}
		case err := <-serveErr:
			return err
		case err := <-fatal:
			log.Errorf("❌ Unrecoverable write failure, stopping: %v", err)
			return err
		case <-ctx.Done():
			return nil
		}
	}
}

func runCleanupLoop(ctx context.Context, w rotator, interval time.Duration) {
	log := logger.Get(ctx)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := w.Sweep()
			if err != nil {
				log.Warnf("⚠️  Cleanup failed: %v", err)
				continue
			}
			if n > 0 {
				log.Infof("🧹 Removed %d expired log files", n)
			}
		}
	}
}

func listenPort(ln net.Listener, fallback int) int {
	if addr, ok := ln.Addr().(*net.TCPAddr); ok {
		return addr.Port
	}
	return fallback
}
