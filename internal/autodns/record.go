package autodns

import (
	"context"
	"log/slog"
)

const (
	// RecordTTL in seconds, applied to every record the synchronizer
	// writes.
	RecordTTL int64 = 300

	// LoopbackAddr parks the record of a stopped instance.
	LoopbackAddr = "127.0.0.1"

	// RecordType of every managed record.
	RecordType = "A"
)

// Record is a DNS record set as the zone provider reports it. Name keeps the
// provider's trailing dot.
type Record struct {
	Name   string
	Type   string
	TTL    int64
	Values []string
}

type RecordStore interface {
	// FindRecord returns the A record whose name sorts at or after name,
	// limited to one result. The second return is false when the zone
	// has no record at or after that name.
	FindRecord(
		ctx context.Context,
		log *slog.Logger,
		name string,
	) (Record, bool, error)

	// UpsertRecord creates or replaces the record set atomically. The
	// comment identifies the change's source instance.
	UpsertRecord(
		ctx context.Context,
		log *slog.Logger,
		r Record,
		comment string,
	) error

	// DeleteRecord removes the record set. The provider requires r to
	// match the record's current content exactly.
	DeleteRecord(ctx context.Context, log *slog.Logger, r Record) error
}
