package repository

import (
	"context"
	"time"

	"github.com/Iris-Sagastume/construct-ia/internal/domain/entities"
	"github.com/Iris-Sagastume/construct-ia/internal/infrastructure/database"
	"github.com/Iris-Sagastume/construct-ia/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type preQuoteItem struct {
	Ticket         string   `dynamodbav:"ticket"`
	HouseDesignID  string   `dynamodbav:"house_design_id"`
	Builder        *string  `dynamodbav:"builder,omitempty"`
	Supplier       *string  `dynamodbav:"supplier,omitempty"`
	BankName       *string  `dynamodbav:"bank_name,omitempty"`
	BankRate       *float64 `dynamodbav:"bank_rate,omitempty"`
	ContactEmail   string   `dynamodbav:"contact_email"`
	ContactPhone   string   `dynamodbav:"contact_phone"`
	ContactMode    string   `dynamodbav:"contact_mode"`
	ContactPlace   *string  `dynamodbav:"contact_place,omitempty"`
	VirtualChannel *string  `dynamodbav:"virtual_channel,omitempty"`
	EstimatedCost  int64    `dynamodbav:"estimated_cost"`
	Status         string   `dynamodbav:"status"`
	CreatedAt      string   `dynamodbav:"created_at"`
	UpdatedAt      string   `dynamodbav:"updated_at"`
}

// PreQuoteDynamoRepository persists PreQuote entities in DynamoDB.
//
// Table requirements:
//   - PK: ticket (string)
//   - GSI: contact_email-index (PK: contact_email)
//
// The ticket is the key so a duplicate ticket is rejected by the conditional
// put instead of a read-before-write.
type PreQuoteDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPreQuoteRepository = (*PreQuoteDynamoRepository)(nil)

func NewPreQuoteDynamoRepository(ddb DynamoAPI, tableName string) *PreQuoteDynamoRepository {
	return &PreQuoteDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PreQuoteDynamoRepository) Create(ctx context.Context, q entities.PreQuote) (entities.PreQuote, error) {
	av, err := attributevalue.MarshalMap(toPreQuoteItem(q))
	if err != nil {
		return entities.PreQuote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#ticket)"),
		ExpressionAttributeNames: map[string]string{
			"#ticket": "ticket",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.PreQuote{}, interfaces.ErrAlreadyExists
		}
		return entities.PreQuote{}, err
	}
	return q, nil
}

func (r *PreQuoteDynamoRepository) GetByTicket(ctx context.Context, ticket string) (entities.PreQuote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("ticket", ticket),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PreQuote{}, err
	}
	if len(out.Item) == 0 {
		return entities.PreQuote{}, nil
	}

	var it preQuoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PreQuote{}, err
	}
	return fromPreQuoteItem(it), nil
}

func (r *PreQuoteDynamoRepository) ListByEmail(ctx context.Context, email string) ([]entities.PreQuote, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(database.PreQuoteEmailIndex),
		KeyConditionExpression: aws.String("contact_email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
	})

	var res []entities.PreQuote
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items, err := unmarshalPreQuotes(out.Items)
		if err != nil {
			return nil, err
		}
		res = append(res, items...)
	}
	return res, nil
}

func (r *PreQuoteDynamoRepository) ListByPartner(ctx context.Context, kind entities.PartnerKind, name string) ([]entities.PreQuote, error) {
	attr := partnerAttribute(kind)
	if attr == "" {
		return nil, nil
	}

	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#partner = :name"),
		ExpressionAttributeNames: map[string]string{
			"#partner": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name": &types.AttributeValueMemberS{Value: name},
		},
	})

	var res []entities.PreQuote
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items, err := unmarshalPreQuotes(out.Items)
		if err != nil {
			return nil, err
		}
		res = append(res, items...)
	}
	return res, nil
}

func (r *PreQuoteDynamoRepository) UpdateStatus(ctx context.Context, ticket string, status entities.PreQuoteStatus) (entities.PreQuote, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 stringKey("ticket", ticket),
		ConditionExpression: aws.String("attribute_exists(#ticket)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
		ExpressionAttributeNames: map[string]string{
			"#ticket":     "ticket",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.PreQuote{}, nil
		}
		return entities.PreQuote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.PreQuote{}, nil
	}
	var it preQuoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PreQuote{}, err
	}
	return fromPreQuoteItem(it), nil
}

// partnerAttribute is the pre-quote attribute that names a partner of kind.
func partnerAttribute(kind entities.PartnerKind) string {
	switch kind {
	case entities.PartnerKindConstructora:
		return "builder"
	case entities.PartnerKindFerreteria:
		return "supplier"
	case entities.PartnerKindBanco:
		return "bank_name"
	}
	return ""
}

func unmarshalPreQuotes(raw []map[string]types.AttributeValue) ([]entities.PreQuote, error) {
	var items []preQuoteItem
	if err := attributevalue.UnmarshalListOfMaps(raw, &items); err != nil {
		return nil, err
	}
	res := make([]entities.PreQuote, 0, len(items))
	for _, it := range items {
		res = append(res, fromPreQuoteItem(it))
	}
	return res, nil
}

func toPreQuoteItem(q entities.PreQuote) preQuoteItem {
	return preQuoteItem{
		Ticket:         q.Ticket,
		HouseDesignID:  q.HouseDesignID,
		Builder:        q.Builder,
		Supplier:       q.Supplier,
		BankName:       q.BankName,
		BankRate:       q.BankRate,
		ContactEmail:   q.ContactEmail,
		ContactPhone:   q.ContactPhone,
		ContactMode:    string(q.ContactMode),
		ContactPlace:   q.ContactPlace,
		VirtualChannel: q.VirtualChannel,
		EstimatedCost:  q.EstimatedCost,
		Status:         string(q.Status),
		CreatedAt:      formatTime(q.CreatedAt),
		UpdatedAt:      formatTime(q.UpdatedAt),
	}
}

func fromPreQuoteItem(it preQuoteItem) entities.PreQuote {
	return entities.PreQuote{
		Ticket:         it.Ticket,
		HouseDesignID:  it.HouseDesignID,
		Builder:        it.Builder,
		Supplier:       it.Supplier,
		BankName:       it.BankName,
		BankRate:       it.BankRate,
		ContactEmail:   it.ContactEmail,
		ContactPhone:   it.ContactPhone,
		ContactMode:    entities.ContactMode(it.ContactMode),
		ContactPlace:   it.ContactPlace,
		VirtualChannel: it.VirtualChannel,
		EstimatedCost:  it.EstimatedCost,
		Status:         entities.PreQuoteStatus(it.Status),
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}
