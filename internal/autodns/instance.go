package autodns

import (
	"context"
	"log/slog"
	"strings"
)

// State is the compute provider's lifecycle state for an instance. Only the
// three states below drive the zone; everything else is left alone.
type State string

const (
	StateRunning    State = "running"
	StateStopped    State = "stopped"
	StateTerminated State = "terminated"
)

// Instance is a point-in-time view of a compute instance. It lives for a
// single synchronization and is never persisted.
type Instance struct {
	// ID of the instance as supplied by the triggering event.
	ID string

	// State at the time of the describe call.
	State State

	// PublicAddr is empty unless the provider has assigned a public IPv4
	// address. Freshly booted instances may not have one yet.
	PublicAddr string

	// Tags on the instance.
	Tags map[string]string
}

type InstanceStore interface {
	// DescribeInstance fetches the current snapshot for one instance.
	DescribeInstance(
		ctx context.Context,
		log *slog.Logger,
		id string,
	) (Instance, error)
}

// TagKey is the instance tag that names the DNS record to manage. An
// instance without it is not DNS-managed.
const TagKey = "dns"

// dnsNameTag extracts the record host name from instance tags. The key match
// is case-insensitive after trimming, and the value is trimmed and lowered.
// An empty result means no record should be managed for this instance.
func dnsNameTag(tags map[string]string) string {
	for k, v := range tags {
		if strings.EqualFold(strings.TrimSpace(k), TagKey) {
			return strings.ToLower(strings.TrimSpace(v))
		}
	}
	return ""
}
