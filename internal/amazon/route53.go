package amazon

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/route53/types"
	"github.com/thankful-ai/autodns/internal/autodns"
)

var _ autodns.RecordStore = &Route53{}

// recordAPI is the slice of the Route53 client used here.
type recordAPI interface {
	ListResourceRecordSets(
		ctx context.Context,
		params *route53.ListResourceRecordSetsInput,
		optFns ...func(*route53.Options),
	) (*route53.ListResourceRecordSetsOutput, error)
	ChangeResourceRecordSets(
		ctx context.Context,
		params *route53.ChangeResourceRecordSetsInput,
		optFns ...func(*route53.Options),
	) (*route53.ChangeResourceRecordSetsOutput, error)
}

// Route53 implements autodns.RecordStore against one hosted zone.
type Route53 struct {
	client recordAPI
	zoneID string
}

func NewRoute53(client recordAPI, zoneID string) *Route53 {
	return &Route53{client: client, zoneID: zoneID}
}

// FindRecord lists one A record starting at name. Route53 returns the record
// sorting at-or-after the start name, so the caller must check the name of
// whatever comes back.
func (r *Route53) FindRecord(
	ctx context.Context,
	log *slog.Logger,
	name string,
) (autodns.Record, bool, error) {
	var zero autodns.Record
	out, err := r.client.ListResourceRecordSets(ctx,
		&route53.ListResourceRecordSetsInput{
			HostedZoneId:    aws.String(r.zoneID),
			StartRecordName: aws.String(name),
			StartRecordType: types.RRTypeA,
			MaxItems:        aws.Int32(1),
		})
	if err != nil {
		return zero, false, fmt.Errorf(
			"list resource record sets: %w", err)
	}
	if len(out.ResourceRecordSets) == 0 {
		return zero, false, nil
	}
	set := out.ResourceRecordSets[0]
	rec := autodns.Record{
		Name: aws.ToString(set.Name),
		Type: string(set.Type),
		TTL:  aws.ToInt64(set.TTL),
	}
	for _, rr := range set.ResourceRecords {
		rec.Values = append(rec.Values, aws.ToString(rr.Value))
	}
	log.Debug("found record set", slog.String("name", rec.Name))
	return rec, true, nil
}

func (r *Route53) UpsertRecord(
	ctx context.Context,
	log *slog.Logger,
	rec autodns.Record,
	comment string,
) error {
	_, err := r.client.ChangeResourceRecordSets(ctx,
		&route53.ChangeResourceRecordSetsInput{
			HostedZoneId: aws.String(r.zoneID),
			ChangeBatch: &types.ChangeBatch{
				Comment: aws.String(comment),
				Changes: []types.Change{{
					Action:            types.ChangeActionUpsert,
					ResourceRecordSet: resourceRecordSet(rec),
				}},
			},
		})
	if err != nil {
		return fmt.Errorf("change resource record sets: %w", err)
	}
	log.Info("upserted record set", slog.String("name", rec.Name))
	return nil
}

func (r *Route53) DeleteRecord(
	ctx context.Context,
	log *slog.Logger,
	rec autodns.Record,
) error {
	_, err := r.client.ChangeResourceRecordSets(ctx,
		&route53.ChangeResourceRecordSetsInput{
			HostedZoneId: aws.String(r.zoneID),
			ChangeBatch: &types.ChangeBatch{
				Changes: []types.Change{{
					Action:            types.ChangeActionDelete,
					ResourceRecordSet: resourceRecordSet(rec),
				}},
			},
		})
	if err != nil {
		return fmt.Errorf("change resource record sets: %w", err)
	}
	log.Info("deleted record set", slog.String("name", rec.Name))
	return nil
}

func resourceRecordSet(rec autodns.Record) *types.ResourceRecordSet {
	set := &types.ResourceRecordSet{
		Name: aws.String(rec.Name),
		Type: types.RRType(rec.Type),
		TTL:  aws.Int64(rec.TTL),
	}
	for _, v := range rec.Values {
		set.ResourceRecords = append(set.ResourceRecords,
			types.ResourceRecord{Value: aws.String(v)})
	}
	return set
}
