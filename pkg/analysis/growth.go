package analysis

import (
	"sort"
	"time"

	"github.com/agentstation/starlens/pkg/constants"
	"github.com/agentstation/starlens/pkg/stars"
)

// growth buckets starred timestamps by day or month and accumulates them
// into the trend. Only buckets that received stars appear; the sequence is
// ascending by bucket and its final value equals the record count.
func (a *Analyzer) growth(records []stars.Record) []GrowthPoint {
	if len(records) == 0 {
		return nil
	}

	counts := make(map[time.Time]int)
	for _, rec := range records {
		counts[a.bucketOf(rec.StarredAt)]++
	}

	buckets := make([]time.Time, 0, len(counts))
	for bucket := range counts {
		buckets = append(buckets, bucket)
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Before(buckets[j]) })

	points := make([]GrowthPoint, 0, len(buckets))
	cumulative := 0
	for _, bucket := range buckets {
		cumulative += counts[bucket]
		points = append(points, GrowthPoint{Bucket: bucket, Cumulative: cumulative})
	}
	return points
}

// bucketOf truncates a timestamp to its day or month bucket in UTC.
func (a *Analyzer) bucketOf(t time.Time) time.Time {
	t = t.UTC()
	if a.bucket == constants.GrowthBucketDay {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
