package word

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate mockgen -source=source.go -destination=../mocks/word/mock_source.go -package=mock_word Source

// Source supplies candidate word records. Implementations may serve from a
// static pool or fetch from a remote lookup and translation pipeline; either
// way a call eventually yields zero or more well-formed records.
type Source interface {
	FetchCandidates(ctx context.Context, limit int) ([]Record, error)
}

// StaticPool serves records from an in-memory pool loaded at startup.
type StaticPool struct {
	records []Record
	rng     *rand.Rand
}

// NewStaticPool creates a pool source. Malformed records are dropped up
// front so downstream consumers never see them. Pass a seeded rng for
// reproducible tests; nil falls back to a time-seeded one.
func NewStaticPool(records []Record, rng *rand.Rand) *StaticPool {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &StaticPool{
		records: Sanitize(records),
		rng:     rng,
	}
}

// FetchCandidates returns up to limit records sampled from the pool.
func (p *StaticPool) FetchCandidates(_ context.Context, limit int) ([]Record, error) {
	return SampleRecords(p.rng, p.records, limit), nil
}

// Records returns the full sanitized pool.
func (p *StaticPool) Records() []Record {
	result := make([]Record, len(p.records))
	for i, r := range p.records {
		result[i] = r.Clone()
	}
	return result
}

// LoadPool reads a word pool from a YAML file.
func LoadPool(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open(%s) > %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	var records []Record
	if err := yaml.NewDecoder(file).Decode(&records); err != nil {
		return nil, fmt.Errorf("yaml.NewDecoder().Decode() > %w", err)
	}
	return records, nil
}
