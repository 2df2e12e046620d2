package word

import (
	"math/rand"
)

// SampleRecords picks up to count records uniformly without replacement and
// returns them in random order. The input is not modified; returned records
// are independent copies. A partial Fisher-Yates shuffle keeps the selection
// unbiased, unlike sorting by a random comparator.
func SampleRecords(rng *rand.Rand, records []Record, count int) []Record {
	if count > len(records) {
		count = len(records)
	}
	if count <= 0 {
		return nil
	}

	candidates := make([]Record, len(records))
	for i, r := range records {
		candidates[i] = r.Clone()
	}
	for i := 0; i < count; i++ {
		j := i + rng.Intn(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
	}
	return candidates[:count:count]
}

// SampleStrings picks up to count strings uniformly without replacement,
// in random order.
func SampleStrings(rng *rand.Rand, values []string, count int) []string {
	if count > len(values) {
		count = len(values)
	}
	if count <= 0 {
		return nil
	}

	candidates := append([]string(nil), values...)
	for i := 0; i < count; i++ {
		j := i + rng.Intn(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
	}
	return candidates[:count:count]
}
