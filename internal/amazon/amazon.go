// Package amazon implements the autodns stores against AWS: EC2 for instance
// snapshots and Route53 for zone records.
package amazon

import (
	"context"
	"fmt"

	awsconf "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/route53"
)

// Clients holds both stores backed by one shared AWS configuration.
type Clients struct {
	EC2     *EC2
	Route53 *Route53
}

// NewClients resolves credentials from the environment. An empty region
// defers to the environment's default region.
func NewClients(ctx context.Context, zoneID, region string) (*Clients, error) {
	var optFns []func(*awsconf.LoadOptions) error
	if region != "" {
		optFns = append(optFns, awsconf.WithRegion(region))
	}
	conf, err := awsconf.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		return nil, fmt.Errorf("load default config: %w", err)
	}
	return &Clients{
		EC2:     NewEC2(ec2.NewFromConfig(conf)),
		Route53: NewRoute53(route53.NewFromConfig(conf), zoneID),
	}, nil
}
