package word

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeRecords(count int) []Record {
	records := make([]Record, count)
	for i := range records {
		records[i] = Record{
			Term:        fmt.Sprintf("term-%d", i),
			Translation: fmt.Sprintf("translation-%d", i),
		}
	}
	return records
}

func TestSampleRecords(t *testing.T) {
	tests := []struct {
		name        string
		poolSize    int
		count       int
		expectedLen int
	}{
		{name: "count below pool size", poolSize: 80, count: 50, expectedLen: 50},
		{name: "count above pool size", poolSize: 10, count: 50, expectedLen: 10},
		{name: "count equals pool size", poolSize: 5, count: 5, expectedLen: 5},
		{name: "zero count", poolSize: 5, count: 0, expectedLen: 0},
		{name: "empty pool", poolSize: 0, count: 3, expectedLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(1))
			records := makeRecords(tt.poolSize)

			got := SampleRecords(rng, records, tt.count)
			require.Len(t, got, tt.expectedLen)

			// Without replacement: every sampled term is distinct.
			seen := make(map[string]struct{}, len(got))
			for _, r := range got {
				_, duplicate := seen[r.Term]
				assert.False(t, duplicate, "term %s sampled twice", r.Term)
				seen[r.Term] = struct{}{}
			}
		})
	}
}

func TestSampleRecords_DoesNotMutateInput(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	records := makeRecords(10)

	_ = SampleRecords(rng, records, 5)
	for i, r := range records {
		assert.Equal(t, fmt.Sprintf("term-%d", i), r.Term)
	}
}

func TestSampleRecords_Deterministic(t *testing.T) {
	records := makeRecords(20)

	first := SampleRecords(rand.New(rand.NewSource(42)), records, 10)
	second := SampleRecords(rand.New(rand.NewSource(42)), records, 10)
	assert.Equal(t, first, second)
}

func TestSampleStrings(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	values := []string{"a", "b", "c"}

	got := SampleStrings(rng, values, 2)
	require.Len(t, got, 2)
	assert.NotEqual(t, got[0], got[1])
	assert.Subset(t, values, got)

	assert.Len(t, SampleStrings(rng, values, 10), 3)
	assert.Nil(t, SampleStrings(rng, nil, 2))
}
