package amazon

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/thankful-ai/autodns/internal/autodns"
)

var _ autodns.InstanceStore = &EC2{}

// describeAPI is the slice of the EC2 client used here.
type describeAPI interface {
	DescribeInstances(
		ctx context.Context,
		params *ec2.DescribeInstancesInput,
		optFns ...func(*ec2.Options),
	) (*ec2.DescribeInstancesOutput, error)
}

// EC2 implements autodns.InstanceStore.
type EC2 struct {
	client describeAPI
}

func NewEC2(client describeAPI) *EC2 {
	return &EC2{client: client}
}

func (e *EC2) DescribeInstance(
	ctx context.Context,
	log *slog.Logger,
	id string,
) (autodns.Instance, error) {
	var zero autodns.Instance
	out, err := e.client.DescribeInstances(ctx, &ec2.DescribeInstancesInput{
		InstanceIds: []string{id},
	})
	if err != nil {
		return zero, fmt.Errorf("describe instances: %w", err)
	}
	if len(out.Reservations) == 0 ||
		len(out.Reservations[0].Instances) == 0 {

		return zero, fmt.Errorf("%s: %w", id,
			autodns.ErrInstanceNotFound)
	}
	in := out.Reservations[0].Instances[0]

	inst := autodns.Instance{
		ID:         id,
		PublicAddr: aws.ToString(in.PublicIpAddress),
		Tags:       make(map[string]string, len(in.Tags)),
	}
	if in.State != nil {
		inst.State = autodns.State(in.State.Name)
	}
	for _, tag := range in.Tags {
		inst.Tags[aws.ToString(tag.Key)] = aws.ToString(tag.Value)
	}
	log.Debug("described instance",
		slog.String("instance", id),
		slog.String("state", string(inst.State)))
	return inst, nil
}
