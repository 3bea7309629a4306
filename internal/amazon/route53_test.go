package amazon

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/route53/types"
	"github.com/thankful-ai/autodns/internal/autodns"
)

type fakeRecordAPI struct {
	listOut   *route53.ListResourceRecordSetsOutput
	listErr   error
	changeErr error

	listInput   *route53.ListResourceRecordSetsInput
	changeInput *route53.ChangeResourceRecordSetsInput
}

func (f *fakeRecordAPI) ListResourceRecordSets(
	ctx context.Context,
	params *route53.ListResourceRecordSetsInput,
	optFns ...func(*route53.Options),
) (*route53.ListResourceRecordSetsOutput, error) {
	f.listInput = params
	return f.listOut, f.listErr
}

func (f *fakeRecordAPI) ChangeResourceRecordSets(
	ctx context.Context,
	params *route53.ChangeResourceRecordSetsInput,
	optFns ...func(*route53.Options),
) (*route53.ChangeResourceRecordSetsOutput, error) {
	f.changeInput = params
	return &route53.ChangeResourceRecordSetsOutput{}, f.changeErr
}

func TestFindRecord(t *testing.T) {
	t.Parallel()

	api := &fakeRecordAPI{listOut: &route53.ListResourceRecordSetsOutput{
		ResourceRecordSets: []types.ResourceRecordSet{{
			Name: aws.String("web1.example.com."),
			Type: types.RRTypeA,
			TTL:  aws.Int64(300),
			ResourceRecords: []types.ResourceRecord{{
				Value: aws.String("1.2.3.4"),
			}},
		}},
	}}
	logger, cancel := log()
	defer cancel()

	store := NewRoute53(api, "Z123")
	rec, found, err := store.FindRecord(context.Background(), logger,
		"web1.example.com")
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Fatal("want found")
	}
	if rec.Name != "web1.example.com." || rec.Type != "A" || rec.TTL != 300 {
		t.Fatalf("bad record: %+v", rec)
	}
	if len(rec.Values) != 1 || rec.Values[0] != "1.2.3.4" {
		t.Fatalf("bad values: %v", rec.Values)
	}

	in := api.listInput
	if aws.ToString(in.HostedZoneId) != "Z123" {
		t.Fatalf("bad zone: %s", aws.ToString(in.HostedZoneId))
	}
	if aws.ToString(in.StartRecordName) != "web1.example.com" {
		t.Fatalf("bad start name: %s", aws.ToString(in.StartRecordName))
	}
	if in.StartRecordType != types.RRTypeA || aws.ToInt32(in.MaxItems) != 1 {
		t.Fatalf("bad list input: %+v", in)
	}
}

func TestFindRecordEmptyZone(t *testing.T) {
	t.Parallel()

	api := &fakeRecordAPI{
		listOut: &route53.ListResourceRecordSetsOutput{},
	}
	logger, cancel := log()
	defer cancel()

	store := NewRoute53(api, "Z123")
	_, found, err := store.FindRecord(context.Background(), logger,
		"web1.example.com")
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Fatal("want not found")
	}
}

func TestUpsertRecord(t *testing.T) {
	t.Parallel()

	api := &fakeRecordAPI{}
	logger, cancel := log()
	defer cancel()

	store := NewRoute53(api, "Z123")
	rec := autodns.Record{
		Name:   "web1.example.com",
		Type:   "A",
		TTL:    300,
		Values: []string{"1.2.3.4"},
	}
	err := store.UpsertRecord(context.Background(), logger, rec,
		"DNS attached to instance i-abc123")
	if err != nil {
		t.Fatal(err)
	}

	in := api.changeInput
	if aws.ToString(in.HostedZoneId) != "Z123" {
		t.Fatalf("bad zone: %s", aws.ToString(in.HostedZoneId))
	}
	batch := in.ChangeBatch
	if got := aws.ToString(batch.Comment); got != "DNS attached to instance i-abc123" {
		t.Fatalf("bad comment: %s", got)
	}
	if len(batch.Changes) != 1 {
		t.Fatalf("want 1 change, got %d", len(batch.Changes))
	}
	change := batch.Changes[0]
	if change.Action != types.ChangeActionUpsert {
		t.Fatalf("want UPSERT, got %s", change.Action)
	}
	set := change.ResourceRecordSet
	if aws.ToString(set.Name) != "web1.example.com" ||
		set.Type != types.RRTypeA ||
		aws.ToInt64(set.TTL) != 300 {

		t.Fatalf("bad record set: %+v", set)
	}
	if len(set.ResourceRecords) != 1 ||
		aws.ToString(set.ResourceRecords[0].Value) != "1.2.3.4" {

		t.Fatalf("bad resource records: %+v", set.ResourceRecords)
	}
}

func TestDeleteRecord(t *testing.T) {
	t.Parallel()

	api := &fakeRecordAPI{}
	logger, cancel := log()
	defer cancel()

	store := NewRoute53(api, "Z123")
	rec := autodns.Record{
		Name:   "web1.example.com.",
		Type:   "A",
		TTL:    600,
		Values: []string{"9.9.9.9"},
	}
	err := store.DeleteRecord(context.Background(), logger, rec)
	if err != nil {
		t.Fatal(err)
	}

	batch := api.changeInput.ChangeBatch
	if len(batch.Changes) != 1 {
		t.Fatalf("want 1 change, got %d", len(batch.Changes))
	}
	change := batch.Changes[0]
	if change.Action != types.ChangeActionDelete {
		t.Fatalf("want DELETE, got %s", change.Action)
	}

	// Deletes carry the record's current content exactly.
	set := change.ResourceRecordSet
	if aws.ToString(set.Name) != "web1.example.com." ||
		aws.ToInt64(set.TTL) != 600 {

		t.Fatalf("bad record set: %+v", set)
	}
	if len(set.ResourceRecords) != 1 ||
		aws.ToString(set.ResourceRecords[0].Value) != "9.9.9.9" {

		t.Fatalf("bad resource records: %+v", set.ResourceRecords)
	}
}
