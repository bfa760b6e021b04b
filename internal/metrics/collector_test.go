package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

// TestCountersRegistered tests that collectors are usable and labelled
// TestCountersRegistered 测试指标可用且带有标签
func TestCountersRegistered(t *testing.T) {
	before := testutil.ToFloat64(EntriesDropped.WithLabelValues(DropFiltered))
	EntriesDropped.WithLabelValues(DropFiltered).Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(EntriesDropped.WithLabelValues(DropFiltered)))

	before = testutil.ToFloat64(Rotations.WithLabelValues(RotateManual))
	Rotations.WithLabelValues(RotateManual).Add(2)
	assert.Equal(t, before+2, testutil.ToFloat64(Rotations.WithLabelValues(RotateManual)))

	assert.Equal(t, 1, testutil.CollectAndCount(BytesWritten))
}
