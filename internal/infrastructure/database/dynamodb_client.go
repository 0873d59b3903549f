package database

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ConnectDynamoDB creates a DynamoDB client using environment variables.
//
// Supported env vars (local-friendly):
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID (default: local)
//   - AWS_SECRET_ACCESS_KEY (default: local)
//   - DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000)
func ConnectDynamoDB() *dynamodb.Client {
	cfg, err := NewDynamoDBConfigFromEnv(context.Background())
	if err != nil {
		log.Fatalf("failed to create dynamodb config: %v", err)
	}
	return dynamodb.NewFromConfig(cfg)
}

func NewDynamoDBConfigFromEnv(ctx context.Context) (aws.Config, error) {
	region := getenvDefault("AWS_REGION", "us-east-1")
	endpoint := os.Getenv("DYNAMODB_ENDPOINT")

	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(
		getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		"",
	)

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
		config.WithCredentialsProvider(creds),
	}

	if endpoint != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if service == dynamodb.ServiceID {
				return aws.Endpoint{URL: endpoint, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, config.WithEndpointResolverWithOptions(resolver))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}

type tableSpec struct {
	env        string
	name       string
	attributes []types.AttributeDefinition
	keySchema  []types.KeySchemaElement
}

func tableSpecs() []tableSpec {
	return []tableSpec{
		{
			env:  "FOOD_ORDERS_TABLE",
			name: "food_orders",
			attributes: []types.AttributeDefinition{
				{AttributeName: aws.String("restaurant_id"), AttributeType: types.ScalarAttributeTypeN},
				{AttributeName: aws.String("menu_item"), AttributeType: types.ScalarAttributeTypeS},
			},
			keySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("restaurant_id"), KeyType: types.KeyTypeHash},
				{AttributeName: aws.String("menu_item"), KeyType: types.KeyTypeRange},
			},
		},
		{
			env:  "CLIENTS_TABLE",
			name: "clients",
			attributes: []types.AttributeDefinition{
				{AttributeName: aws.String("username"), AttributeType: types.ScalarAttributeTypeS},
			},
			keySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("username"), KeyType: types.KeyTypeHash},
			},
		},
		{
			env:  "RATINGS_TABLE",
			name: "ratings",
			attributes: []types.AttributeDefinition{
				{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeN},
			},
			keySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
			},
		},
		{
			env:  "COUNTERS_TABLE",
			name: "counters",
			attributes: []types.AttributeDefinition{
				{AttributeName: aws.String("name"), AttributeType: types.ScalarAttributeTypeS},
			},
			keySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("name"), KeyType: types.KeyTypeHash},
			},
		},
		{
			env:  "PAYMENTS_TABLE",
			name: "payments",
			attributes: []types.AttributeDefinition{
				{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
			},
			keySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
			},
		},
	}
}

// EnsureTables creates the service tables when they are missing. This
// is a local-dev convenience (DYNAMODB_ENSURE_TABLES=true), not a
// migration tool; in managed environments tables are provisioned out of
// band.
func EnsureTables(ctx context.Context, ddb *dynamodb.Client) error {
	for _, spec := range tableSpecs() {
		name := getenvDefault(spec.env, spec.name)
		_, err := ddb.CreateTable(ctx, &dynamodb.CreateTableInput{
			TableName:            aws.String(name),
			AttributeDefinitions: spec.attributes,
			KeySchema:            spec.keySchema,
			BillingMode:          types.BillingModePayPerRequest,
		})
		if err != nil {
			var inUse *types.ResourceInUseException
			if errors.As(err, &inUse) {
				continue
			}
			return err
		}
		log.Printf("[database] created table %s", name)
	}
	return nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
