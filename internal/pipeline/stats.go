package pipeline

import "sync/atomic"

// Stats counts metadata records that never reached the repository.
type Stats struct {
	metadataDropped atomic.Int64
	metadataFailed  atomic.Int64
}

type StatsSnapshot struct {
	MetadataDropped int64 `json:"metadata_dropped"`
	MetadataFailed  int64 `json:"metadata_failed"`
}

func (s *Stats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		MetadataDropped: s.metadataDropped.Load(),
		MetadataFailed:  s.metadataFailed.Load(),
	}
}
