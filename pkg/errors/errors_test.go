package errors

import (
	"errors"
	"io/fs"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	sentinelErrors := []struct {
		name string
		err  error
		msg  string
	}{
		{"ErrInvalidPort", ErrInvalidPort, "invalid port number"},
		{"ErrInvalidExtension", ErrInvalidExtension, "invalid file extension"},
		{"ErrInvalidFilePath", ErrInvalidFilePath, "invalid file path"},
		{"ErrInvalidDuration", ErrInvalidDuration, "invalid duration"},
		{"ErrInvalidFilter", ErrInvalidFilter, "invalid filter expression"},
		{"ErrInvalidDate", ErrInvalidDate, "invalid date"},
		{"ErrConfigNotFound", ErrConfigNotFound, "config not found"},
		{"ErrConfigInvalid", ErrConfigInvalid, "invalid configuration"},
		{"ErrDirCreateFailed", ErrDirCreateFailed, "log directory creation failed"},
		{"ErrWriteFailed", ErrWriteFailed, "log write failed"},
		{"ErrRotateFailed", ErrRotateFailed, "log rotation failed"},
		{"ErrWriterClosed", ErrWriterClosed, "log writer closed"},
		{"ErrLineTooLong", ErrLineTooLong, "line exceeds maximum file size"},
		{"ErrConfigExists", ErrConfigExists, "config already exists"},
		{"ErrDeliveryFailed", ErrDeliveryFailed, "message delivery failed"},
	}

	for _, tc := range sentinelErrors {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err == nil {
				t.Errorf("%s is nil", tc.name)
				return
			}
			if tc.err.Error() != tc.msg {
				t.Errorf("%s: got %q, want %q", tc.name, tc.err.Error(), tc.msg)
			}
		})
	}
}

func TestNewPortError(t *testing.T) {
	tests := []struct {
		name string
		port int
		want string
	}{
		{
			name: "negative port",
			port: -1,
			want: "invalid port number: -1",
		},
		{
			name: "port too large",
			port: 65536,
			want: "invalid port number: 65536",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := NewPortError(tc.port)
			if err.Error() != tc.want {
				t.Errorf("got %q, want %q", err.Error(), tc.want)
			}
			if !errors.Is(err, ErrInvalidPort) {
				t.Errorf("error should wrap ErrInvalidPort")
			}
		})
	}
}

func TestNewExtensionError(t *testing.T) {
	err := NewExtensionError("a/b")
	if err.Error() != `invalid file extension: "a/b"` {
		t.Errorf("got %q", err.Error())
	}
	if !errors.Is(err, ErrInvalidExtension) {
		t.Errorf("error should wrap ErrInvalidExtension")
	}
}

func TestNewConfigError(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value any
		want  string
	}{
		{
			name:  "invalid int field",
			field: "storage.max_size_mb",
			value: -1,
			want:  "invalid configuration: field=storage.max_size_mb value=-1",
		},
		{
			name:  "invalid string field",
			field: "storage.dir",
			value: "",
			want:  "invalid configuration: field=storage.dir value=",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := NewConfigError(tc.field, tc.value)
			if err.Error() != tc.want {
				t.Errorf("got %q, want %q", err.Error(), tc.want)
			}
			if !errors.Is(err, ErrConfigInvalid) {
				t.Errorf("error should wrap ErrConfigInvalid")
			}
		})
	}
}

func TestErrorWrapping(t *testing.T) {
	t.Run("write error keeps cause", func(t *testing.T) {
		err := NewWriteError("logs/2026-01-01.log", fs.ErrPermission)
		if !errors.Is(err, ErrWriteFailed) {
			t.Error("errors.Is failed to match ErrWriteFailed")
		}
		if !errors.Is(err, fs.ErrPermission) {
			t.Error("errors.Is failed to match the wrapped cause")
		}
	})

	t.Run("dir error keeps cause", func(t *testing.T) {
		err := NewDirError("logs", fs.ErrExist)
		if !errors.Is(err, ErrDirCreateFailed) || !errors.Is(err, fs.ErrExist) {
			t.Error("errors.Is failed to match dir error chain")
		}
	})

	t.Run("rotate error", func(t *testing.T) {
		err := NewRotateError("logs/x.log", errors.New("boom"))
		if !errors.Is(err, ErrRotateFailed) {
			t.Error("errors.Is failed to match ErrRotateFailed")
		}
	})

	t.Run("filter error", func(t *testing.T) {
		err := NewFilterError("group ==", errors.New("unexpected EOF"))
		if !errors.Is(err, ErrInvalidFilter) {
			t.Error("errors.Is failed to match ErrInvalidFilter")
		}
	})

	t.Run("date error", func(t *testing.T) {
		err := NewDateError("yesterday", errors.New("cannot parse"))
		if !errors.Is(err, ErrInvalidDate) {
			t.Error("errors.Is failed to match ErrInvalidDate")
		}
		if err.Error() != `invalid date: "yesterday": cannot parse` {
			t.Errorf("got %q", err.Error())
		}
	})

	t.Run("duration error", func(t *testing.T) {
		err := NewDurationError("storage.cleanup_interval", "soon")
		if err.Error() != "invalid duration: field=storage.cleanup_interval value=soon" {
			t.Errorf("got %q", err.Error())
		}
	})
}

func TestNewDeliveryError(t *testing.T) {
	t.Run("transport failure", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := NewDeliveryError("http://localhost:8300/log", 0, cause)
		if !errors.Is(err, ErrDeliveryFailed) || !errors.Is(err, cause) {
			t.Error("delivery error should wrap both sentinel and cause")
		}
	})

	t.Run("bad status", func(t *testing.T) {
		err := NewDeliveryError("http://localhost:8300/log", 500, nil)
		want := "message delivery failed: http://localhost:8300/log: status 500"
		if err.Error() != want {
			t.Errorf("got %q, want %q", err.Error(), want)
		}
	})
}

func TestNewFileError(t *testing.T) {
	err := NewFileError(ErrConfigNotFound, "grouplog.yaml", fs.ErrNotExist)
	want := "config not found: grouplog.yaml: file does not exist"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, ErrConfigNotFound) || !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error should wrap both kind and cause")
	}
}
