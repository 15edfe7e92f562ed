package face

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingDetector struct {
	calls []string
}

func (d *countingDetector) Detect(ctx context.Context, imagePath string) ([]Record, error) {
	d.calls = append(d.calls, imagePath)
	return []Record{{}}, nil
}

func TestLimitedDisabled(t *testing.T) {
	inner := &countingDetector{}
	assert.Same(t, inner, Limited(inner, 0))
}

func TestLimitedDelegates(t *testing.T) {
	inner := &countingDetector{}
	detector := Limited(inner, 600)
	for _, p := range []string{"a.jpg", "b.jpg"} {
		records, err := detector.Detect(context.Background(), p)
		require.NoError(t, err)
		assert.Len(t, records, 1)
	}
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, inner.calls)
}
