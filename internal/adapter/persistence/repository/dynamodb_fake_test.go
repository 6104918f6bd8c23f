package repository

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is a single-table, single-hash-key stand-in for DynamoDB. It
// honors attribute_not_exists / attribute_exists conditions on the key and
// records the last Query and Scan inputs; those return every stored item.
type fakeDynamo struct {
	key   string
	items map[string]map[string]types.AttributeValue
	order []string

	lastQuery *dynamodb.QueryInput
	lastScan  *dynamodb.ScanInput
}

func newFakeDynamo(key string) *fakeDynamo {
	return &fakeDynamo{key: key, items: map[string]map[string]types.AttributeValue{}}
}

func (f *fakeDynamo) keyOf(m map[string]types.AttributeValue) string {
	return m[f.key].(*types.AttributeValueMemberS).Value
}

func (f *fakeDynamo) checkCondition(cond *string, exists bool) error {
	c := aws.ToString(cond)
	switch {
	case strings.HasPrefix(c, "attribute_not_exists") && exists:
		return &types.ConditionalCheckFailedException{Message: aws.String("exists")}
	case strings.HasPrefix(c, "attribute_exists") && !exists:
		return &types.ConditionalCheckFailedException{Message: aws.String("missing")}
	}
	return nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	k := f.keyOf(in.Item)
	_, exists := f.items[k]
	if err := f.checkCondition(in.ConditionExpression, exists); err != nil {
		return nil, err
	}
	if !exists {
		f.order = append(f.order, k)
	}
	f.items[k] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return &dynamodb.GetItemOutput{Item: f.items[f.keyOf(in.Key)]}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	k := f.keyOf(in.Key)
	item, exists := f.items[k]
	if err := f.checkCondition(in.ConditionExpression, exists); err != nil {
		return nil, err
	}
	// Only "SET #a = :a, #b = :b" expressions are supported.
	expr := strings.TrimPrefix(aws.ToString(in.UpdateExpression), "SET ")
	for _, part := range strings.Split(expr, ",") {
		kv := strings.Split(strings.TrimSpace(part), " = ")
		item[in.ExpressionAttributeNames[kv[0]]] = in.ExpressionAttributeValues[kv[1]]
	}
	return &dynamodb.UpdateItemOutput{Attributes: item}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	k := f.keyOf(in.Key)
	old := f.items[k]
	delete(f.items, k)
	return &dynamodb.DeleteItemOutput{Attributes: old}, nil
}

func (f *fakeDynamo) all() []map[string]types.AttributeValue {
	var out []map[string]types.AttributeValue
	for _, k := range f.order {
		if it, ok := f.items[k]; ok {
			out = append(out, it)
		}
	}
	return out
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.lastQuery = in
	return &dynamodb.QueryOutput{Items: f.all()}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.lastScan = in
	return &dynamodb.ScanOutput{Items: f.all()}, nil
}
