package repository

import (
	"context"

	"github.com/Iris-Sagastume/construct-ia/internal/domain/entities"
	"github.com/Iris-Sagastume/construct-ia/internal/infrastructure/database"
	"github.com/Iris-Sagastume/construct-ia/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type partnerItem struct {
	ID           string   `dynamodbav:"id"`
	Kind         string   `dynamodbav:"kind"`
	Name         string   `dynamodbav:"name"`
	Email        string   `dynamodbav:"email"`
	InterestRate *float64 `dynamodbav:"interest_rate,omitempty"`
	Status       string   `dynamodbav:"status"`
	CreatedAt    string   `dynamodbav:"created_at"`
	UpdatedAt    string   `dynamodbav:"updated_at"`
}

// PartnerDynamoRepository persists partner requests in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: email-index (PK: email)
//
// The table is small (one row per company), so status listing is a filtered scan.
type PartnerDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPartnerRepository = (*PartnerDynamoRepository)(nil)

func NewPartnerDynamoRepository(ddb DynamoAPI, tableName string) *PartnerDynamoRepository {
	return &PartnerDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PartnerDynamoRepository) Create(ctx context.Context, p entities.Partner) (entities.Partner, error) {
	av, err := attributevalue.MarshalMap(toPartnerItem(p))
	if err != nil {
		return entities.Partner{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Partner{}, interfaces.ErrAlreadyExists
		}
		return entities.Partner{}, err
	}
	return p, nil
}

func (r *PartnerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Partner, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Partner{}, err
	}
	if len(out.Item) == 0 {
		return entities.Partner{}, nil
	}

	var it partnerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Partner{}, err
	}
	return fromPartnerItem(it), nil
}

func (r *PartnerDynamoRepository) List(ctx context.Context, status entities.PartnerStatus) ([]entities.Partner, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if status != "" {
		in.FilterExpression = aws.String("#status = :status")
		in.ExpressionAttributeNames = map[string]string{"#status": "status"}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		}
	}

	p := dynamodb.NewScanPaginator(r.ddb, in)
	var res []entities.Partner
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items, err := unmarshalPartners(out.Items)
		if err != nil {
			return nil, err
		}
		res = append(res, items...)
	}
	return res, nil
}

func (r *PartnerDynamoRepository) ListByEmail(ctx context.Context, email string) ([]entities.Partner, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(database.PartnerEmailIndex),
		KeyConditionExpression: aws.String("email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
	})

	var res []entities.Partner
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items, err := unmarshalPartners(out.Items)
		if err != nil {
			return nil, err
		}
		res = append(res, items...)
	}
	return res, nil
}

// Update replaces the stored item. Unknown ids yield a zero value.
func (r *PartnerDynamoRepository) Update(ctx context.Context, p entities.Partner) (entities.Partner, error) {
	av, err := attributevalue.MarshalMap(toPartnerItem(p))
	if err != nil {
		return entities.Partner{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Partner{}, nil
		}
		return entities.Partner{}, err
	}
	return p, nil
}

func (r *PartnerDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.tableName),
		Key:          stringKey("id", id),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func unmarshalPartners(raw []map[string]types.AttributeValue) ([]entities.Partner, error) {
	var items []partnerItem
	if err := attributevalue.UnmarshalListOfMaps(raw, &items); err != nil {
		return nil, err
	}
	res := make([]entities.Partner, 0, len(items))
	for _, it := range items {
		res = append(res, fromPartnerItem(it))
	}
	return res, nil
}

func toPartnerItem(p entities.Partner) partnerItem {
	return partnerItem{
		ID:           p.ID,
		Kind:         string(p.Kind),
		Name:         p.Name,
		Email:        p.Email,
		InterestRate: p.InterestRate,
		Status:       string(p.Status),
		CreatedAt:    formatTime(p.CreatedAt),
		UpdatedAt:    formatTime(p.UpdatedAt),
	}
}

func fromPartnerItem(it partnerItem) entities.Partner {
	return entities.Partner{
		ID:           it.ID,
		Kind:         entities.PartnerKind(it.Kind),
		Name:         it.Name,
		Email:        it.Email,
		InterestRate: it.InterestRate,
		Status:       entities.PartnerStatus(it.Status),
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
