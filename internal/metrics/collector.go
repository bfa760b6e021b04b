package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Drop reasons / 丢弃原因
const (
	DropDecode   = "decode"
	DropFiltered = "filtered"
	DropWrite    = "write"
)

// Rotation reasons / 轮转原因
const (
	RotateDate   = "date"
	RotateSize   = "size"
	RotateManual = "manual"
)

var (
	// Ingestion metrics
	EntriesReceived = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "grouplog_entries_received_total",
			Help: "Total POST /log requests received",
		},
	)
	EntriesWritten = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "grouplog_entries_written_total",
			Help: "Total lines appended to day files",
		},
	)
	EntriesDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "grouplog_entries_dropped_total",
			Help: "Acknowledged entries that were not written",
		},
		[]string{"reason"},
	)

	// Storage metrics
	BytesWritten = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "grouplog_bytes_written_total",
			Help: "Total bytes appended to day files",
		},
	)
	Rotations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "grouplog_rotations_total",
			Help: "File rotations by trigger",
		},
		[]string{"reason"},
	)
	FilesExpired = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "grouplog_files_expired_total",
			Help: "Files deleted by the retention sweep",
		},
	)
	WriteErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "grouplog_write_errors_total",
			Help: "Failed appends",
		},
	)
)
