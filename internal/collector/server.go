package collector

import (
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/livp123/grouplog/internal/config"
	"github.com/livp123/grouplog/internal/metrics"
	errs "github.com/livp123/grouplog/pkg/errors"
)

// maxUnixSeconds bounds producer timestamps accepted as seconds (year 2514).
const maxUnixSeconds = 1 << 34

// Sink persists rendered lines. *rotate.Writer satisfies it.
// Sink 持久化渲染后的行，*rotate.Writer 实现了该接口。
type Sink interface {
	WriteLine(at time.Time, msg string) error
}

// Server is the ingestion endpoint. It always acknowledges with 200 "OK".
// Server 是日志接收端点，始终返回 200 "OK"。
type Server struct {
	sink          Sink
	log           *zap.SugaredLogger
	filter        *Filter
	placeholder   string
	producerStamp bool
	metrics       bool
	now           func() time.Time
	onWriteError  func(error)
}

// Option customizes a Server.
type Option func(*Server)

// WithLogger sets the operator console logger.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithFilter drops entries the filter rejects.
func WithFilter(f *Filter) Option {
	return func(s *Server) { s.filter = f }
}

// WithPlaceholder sets the text rendered for absent fields.
func WithPlaceholder(p string) Option {
	return func(s *Server) { s.placeholder = p }
}

// WithProducerTimestamp prefixes lines with the producer's timestamp when it
// is a positive number of Unix seconds.
func WithProducerTimestamp(enabled bool) Option {
	return func(s *Server) { s.producerStamp = enabled }
}

// WithMetrics exposes /metrics on the server mux.
func WithMetrics(enabled bool) Option {
	return func(s *Server) { s.metrics = enabled }
}

// WithClock replaces time.Now for the receipt timestamp.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// WithWriteErrorHandler is called after a failed append, once the producer
// has been acknowledged.
// WithWriteErrorHandler 在写入失败时调用（生产者已收到确认）。
func WithWriteErrorHandler(fn func(error)) Option {
	return func(s *Server) { s.onWriteError = fn }
}

// NewServer creates the collector around an explicitly constructed sink.
// NewServer 基于显式构造的 Sink 创建收集器。
func NewServer(sink Sink, opts ...Option) *Server {
	s := &Server{
		sink:         sink,
		log:          zap.NewNop().Sugar(),
		placeholder:  config.DefaultMissing,
		now:          time.Now,
		onWriteError: func(error) {},
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Server) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("POST /log", s.HandleLog)
	if s.metrics {
		mux.Handle("GET /metrics", promhttp.Handler())
	}
	return mux
}

func (s *Server) HandleLog(w http.ResponseWriter, r *http.Request) {
	defer acknowledge(w)
	metrics.EntriesReceived.Inc()

	entry, err := DecodeEntry(r.Body)
	if err != nil {
		metrics.EntriesDropped.WithLabelValues(metrics.DropDecode).Inc()
		s.log.Warnf("⚠️  Dropped undecodable payload from %s: %v", r.RemoteAddr, err)
		return
	}

	ok, err := s.filter.Allow(entry)
	if err != nil {
		// Evaluation failures keep the entry
		s.log.Warnf("⚠️  %v", err)
		ok = true
	}
	msg := Format(entry, s.placeholder)
	if !ok {
		metrics.EntriesDropped.WithLabelValues(metrics.DropFiltered).Inc()
		s.log.Debugf("Filtered: %s", msg)
		return
	}

	if err := s.sink.WriteLine(s.stamp(entry), msg); err != nil {
		metrics.EntriesDropped.WithLabelValues(metrics.DropWrite).Inc()
		if errors.Is(err, errs.ErrLineTooLong) {
			s.log.Warnf("⚠️  Dropped oversized entry from %s: %v", r.RemoteAddr, err)
			return
		}
		s.log.Errorf("❌ Failed to write entry: %v", err)
		s.onWriteError(err)
	} else {
		metrics.EntriesWritten.Inc()
	}
	s.log.Infof("📥 Received: %s", msg)
}

func (s *Server) stamp(e Entry) time.Time {
	if s.producerStamp {
		if ts, ok := e.Timestamp.Float(); ok && ts > 0 && ts < maxUnixSeconds {
			sec, frac := math.Modf(ts)
			return time.Unix(int64(sec), int64(frac*1e9)).Local()
		}
	}
	return s.now()
}

func acknowledge(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
