package autodns

import (
	"context"
	"fmt"
	"log/slog"
)

// Outcome reports what a single synchronization did to the zone.
type Outcome string

const (
	OutcomeUpserted Outcome = "upserted"
	OutcomeDeleted  Outcome = "deleted"

	// OutcomeSkippedNoTag: the instance carries no dns tag and is not
	// DNS-managed.
	OutcomeSkippedNoTag Outcome = "skipped: no dns tag"

	// OutcomeSkippedState: transient lifecycle states (pending,
	// shutting-down, ...) mutate nothing. They must not fall through to
	// an upsert with an empty address.
	OutcomeSkippedState Outcome = "skipped: unhandled state"
)

// Synchronizer keeps a DNS zone record in step with one compute instance's
// lifecycle state: running publishes the public address, stopped parks the
// name at the loopback placeholder, terminated removes the record.
//
// A Synchronizer holds no state between calls; ordering across rapid
// lifecycle events is left to the zone's last-write-wins upsert semantics.
type Synchronizer struct {
	log       *slog.Logger
	conf      Config
	instances InstanceStore
	records   RecordStore
}

func NewSynchronizer(
	log *slog.Logger,
	conf Config,
	instances InstanceStore,
	records RecordStore,
) *Synchronizer {
	return &Synchronizer{
		log:       log,
		conf:      conf,
		instances: instances,
		records:   records,
	}
}

// Sync fetches the instance snapshot and issues at most one mutating call
// against the zone. Instances without a dns tag and states outside
// running/stopped/terminated report a skip outcome with a nil error.
func (s *Synchronizer) Sync(
	ctx context.Context,
	instanceID string,
) (Outcome, error) {
	inst, err := s.instances.DescribeInstance(ctx, s.log, instanceID)
	if err != nil {
		return "", fmt.Errorf("describe instance: %w", err)
	}

	name := dnsNameTag(inst.Tags)
	if name == "" {
		s.log.Info("no dns tag, skipping",
			slog.String("instance", instanceID))
		return OutcomeSkippedNoTag, nil
	}
	target := s.conf.RecordName(name)

	log := s.log.With(
		slog.String("instance", instanceID),
		slog.String("record", target),
		slog.String("state", string(inst.State)))

	var addr string
	switch inst.State {
	case StateTerminated:
		if err := s.deleteRecord(ctx, log, target); err != nil {
			return "", fmt.Errorf("delete record: %w", err)
		}
		return OutcomeDeleted, nil
	case StateRunning:
		// May still be empty right after boot. It's passed through
		// as-is; whether an empty value is acceptable is the zone
		// provider's call.
		addr = inst.PublicAddr
	case StateStopped:
		addr = LoopbackAddr
	default:
		log.Info("unhandled state, skipping")
		return OutcomeSkippedState, nil
	}

	rec := Record{
		Name:   target,
		Type:   RecordType,
		TTL:    RecordTTL,
		Values: []string{addr},
	}
	comment := fmt.Sprintf("DNS attached to instance %s", instanceID)
	if err := s.records.UpsertRecord(ctx, log, rec, comment); err != nil {
		return "", fmt.Errorf("upsert record: %w", err)
	}
	log.Info("upserted record", slog.String("value", addr))
	return OutcomeUpserted, nil
}

// deleteRecord removes the record set named target. The zone reports the
// record sorting at-or-after the target, so when the named record does not
// exist we get back the lexicographically-next one; the exact-name guard
// keeps us from deleting it. Deletes must carry the record's current TTL,
// type, and values, so those come from the zone, not from us.
func (s *Synchronizer) deleteRecord(
	ctx context.Context,
	log *slog.Logger,
	target string,
) error {
	rec, found, err := s.records.FindRecord(ctx, log, target)
	if err != nil {
		return fmt.Errorf("find record: %w", err)
	}
	want := target + "."
	if !found || rec.Name != want {
		log.Warn("record mismatch",
			slog.String("have", rec.Name),
			slog.String("want", want))
		return ErrRecordMismatch
	}
	if err := s.records.DeleteRecord(ctx, log, rec); err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	log.Info("deleted record")
	return nil
}
