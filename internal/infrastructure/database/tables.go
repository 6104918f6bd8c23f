package database

import (
	"context"
	"errors"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Secondary index names. They must match the repositories' queries.
const (
	PreQuoteEmailIndex = "contact_email-index"
	PartnerEmailIndex  = "email-index"
)

// TableCreator is the subset of the DynamoDB client used by EnsureTables.
type TableCreator interface {
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

// EnsureTables creates the application tables. Tables that already exist are
// left untouched.
func EnsureTables(ctx context.Context, client TableCreator, t Tables) error {
	for _, in := range TableDefinitions(t) {
		_, err := client.CreateTable(ctx, in)
		var inUse *types.ResourceInUseException
		switch {
		case err == nil:
			log.Printf("[database][dynamodb] table created name=%s", aws.ToString(in.TableName))
		case errors.As(err, &inUse):
			log.Printf("[database][dynamodb] table exists name=%s", aws.ToString(in.TableName))
		default:
			return err
		}
	}
	return nil
}

// TableDefinitions describes the three tables with on-demand billing.
func TableDefinitions(t Tables) []*dynamodb.CreateTableInput {
	return []*dynamodb.CreateTableInput{
		{
			TableName:            aws.String(t.HouseDesigns),
			BillingMode:          types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{stringAttr("id")},
			KeySchema:            []types.KeySchemaElement{hashKey("id")},
		},
		{
			TableName:            aws.String(t.PreQuotes),
			BillingMode:          types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{stringAttr("ticket"), stringAttr("contact_email")},
			KeySchema:            []types.KeySchemaElement{hashKey("ticket")},
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
				allProjection(PreQuoteEmailIndex, "contact_email"),
			},
		},
		{
			TableName:            aws.String(t.Partners),
			BillingMode:          types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{stringAttr("id"), stringAttr("email")},
			KeySchema:            []types.KeySchemaElement{hashKey("id")},
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
				allProjection(PartnerEmailIndex, "email"),
			},
		},
	}
}

func stringAttr(name string) types.AttributeDefinition {
	return types.AttributeDefinition{AttributeName: aws.String(name), AttributeType: types.ScalarAttributeTypeS}
}

func hashKey(name string) types.KeySchemaElement {
	return types.KeySchemaElement{AttributeName: aws.String(name), KeyType: types.KeyTypeHash}
}

func allProjection(index, key string) types.GlobalSecondaryIndex {
	return types.GlobalSecondaryIndex{
		IndexName:  aws.String(index),
		KeySchema:  []types.KeySchemaElement{hashKey(key)},
		Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
	}
}
