// Package awsrds wraps the RDS control-plane API calls the resolver needs.
package awsrds

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/rds/types"
)

// ErrInstanceNotFound is returned when an instance identifier does not
// exist in the control plane.
var ErrInstanceNotFound = errors.New("db instance not found")

type Client struct {
	rds *rds.Client
}

// NewClient loads AWS configuration and builds an RDS client. If
// accessKey is specified the config is created for the static
// accessKey/secretKey pair; otherwise the default AWS SDK credential
// resolution applies.
func NewClient(ctx context.Context, region, accessKey, secretKey string) (*Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if accessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")))
	}
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}

	return &Client{rds: rds.NewFromConfig(cfg)}, nil
}

// ListParameters returns every parameter of the named DB parameter group.
func (c *Client) ListParameters(ctx context.Context, groupName string) ([]types.Parameter, error) {
	paginator := rds.NewDescribeDBParametersPaginator(c.rds, &rds.DescribeDBParametersInput{
		DBParameterGroupName: aws.String(groupName),
	})

	var values []types.Parameter
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}

		values = append(values, page.Parameters...)
	}

	return values, nil
}

// ListInstances enumerates the account's DB instances, optionally filtered
// by engine.
func (c *Client) ListInstances(ctx context.Context, engine string) ([]types.DBInstance, error) {
	input := &rds.DescribeDBInstancesInput{}
	if engine != "" {
		input.Filters = []types.Filter{
			{Name: aws.String("engine"), Values: []string{engine}},
		}
	}
	paginator := rds.NewDescribeDBInstancesPaginator(c.rds, input)

	var values []types.DBInstance
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}

		values = append(values, page.DBInstances...)
	}

	return values, nil
}

// InstanceParameterGroup resolves the parameter group currently assigned to
// the named instance.
func (c *Client) InstanceParameterGroup(ctx context.Context, id string) (string, error) {
	out, err := c.rds.DescribeDBInstances(ctx, &rds.DescribeDBInstancesInput{
		DBInstanceIdentifier: aws.String(id),
	})
	if err != nil {
		var notFound *types.DBInstanceNotFoundFault
		if errors.As(err, &notFound) {
			return "", fmt.Errorf("%w: %s", ErrInstanceNotFound, id)
		}
		return "", err
	}
	if len(out.DBInstances) == 0 {
		return "", fmt.Errorf("%w: %s", ErrInstanceNotFound, id)
	}

	instance := out.DBInstances[0]
	if len(instance.DBParameterGroups) == 0 {
		return "", fmt.Errorf("instance %s has no parameter group", id)
	}
	return aws.ToString(instance.DBParameterGroups[0].DBParameterGroupName), nil
}
