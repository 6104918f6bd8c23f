package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/Iris-Sagastume/construct-ia/internal/domain/entities"
	"github.com/Iris-Sagastume/construct-ia/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// imageChunkSize keeps every item well below the 400 KB DynamoDB limit.
const imageChunkSize = 300 * 1024

type houseDesignItem struct {
	ID              string `dynamodbav:"id"`
	HouseType       string `dynamodbav:"house_type"`
	AreaVaras       int    `dynamodbav:"area_varas"`
	Bedrooms        int    `dynamodbav:"bedrooms"`
	Bathrooms       int    `dynamodbav:"bathrooms"`
	Department      string `dynamodbav:"department"`
	Municipality    string `dynamodbav:"municipality"`
	Neighborhood    string `dynamodbav:"neighborhood"`
	HasPool         bool   `dynamodbav:"has_pool"`
	AdditionalNotes string `dynamodbav:"additional_notes"`
	EstimatedCost   int64  `dynamodbav:"estimated_cost"`
	BlueprintRef    string `dynamodbav:"blueprint_image_ref,omitempty"`
	BlueprintChunks int    `dynamodbav:"blueprint_image_chunks,omitempty"`
	RenderRef       string `dynamodbav:"render_image_ref,omitempty"`
	RenderChunks    int    `dynamodbav:"render_image_chunks,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
}

type imageChunkItem struct {
	ID   string `dynamodbav:"id"`
	Data string `dynamodbav:"data"`
}

// HouseDesignDynamoRepository persists HouseDesign entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Image refs that would push the main item past imageChunkSize are stored as extra items
// in the same table, keyed "<design id>#<kind>#<n>".
type HouseDesignDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IHouseDesignRepository = (*HouseDesignDynamoRepository)(nil)

func NewHouseDesignDynamoRepository(ddb DynamoAPI, tableName string) *HouseDesignDynamoRepository {
	return &HouseDesignDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *HouseDesignDynamoRepository) Create(ctx context.Context, d entities.HouseDesign) (entities.HouseDesign, error) {
	it := toHouseDesignItem(d)

	// Both refs share the main item, so the inline budget is spent across them.
	budget := imageChunkSize - len(d.AdditionalNotes)
	if chunks := chunkIfOverBudget(d.BlueprintRef, &budget); chunks != nil {
		if err := r.putChunks(ctx, d.ID, entities.ImageKindBlueprint, chunks); err != nil {
			return entities.HouseDesign{}, err
		}
		it.BlueprintRef, it.BlueprintChunks = "", len(chunks)
	}
	if chunks := chunkIfOverBudget(d.RenderRef, &budget); chunks != nil {
		if err := r.putChunks(ctx, d.ID, entities.ImageKindRender, chunks); err != nil {
			return entities.HouseDesign{}, err
		}
		it.RenderRef, it.RenderChunks = "", len(chunks)
	}

	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.HouseDesign{}, err
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
			return entities.HouseDesign{}, interfaces.ErrAlreadyExists
		}
		return entities.HouseDesign{}, err
	}
	return d, nil
}

func (r *HouseDesignDynamoRepository) GetByID(ctx context.Context, id string) (entities.HouseDesign, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.HouseDesign{}, err
	}
	if len(out.Item) == 0 {
		return entities.HouseDesign{}, nil
	}

	var it houseDesignItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.HouseDesign{}, err
	}
	d := fromHouseDesignItem(it)

	if it.BlueprintChunks > 0 {
		if d.BlueprintRef, err = r.getChunks(ctx, it.ID, entities.ImageKindBlueprint, it.BlueprintChunks); err != nil {
			return entities.HouseDesign{}, err
		}
	}
	if it.RenderChunks > 0 {
		if d.RenderRef, err = r.getChunks(ctx, it.ID, entities.ImageKindRender, it.RenderChunks); err != nil {
			return entities.HouseDesign{}, err
		}
	}
	return d, nil
}

func (r *HouseDesignDynamoRepository) putChunks(ctx context.Context, id string, kind entities.ImageKind, chunks []string) error {
	for i, c := range chunks {
		av, err := attributevalue.MarshalMap(imageChunkItem{ID: chunkID(id, kind, i), Data: c})
		if err != nil {
			return err
		}
		if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{TableName: aws.String(r.tableName), Item: av}); err != nil {
			return fmt.Errorf("store %s chunk %d: %w", kind, i, err)
		}
	}
	return nil
}

func (r *HouseDesignDynamoRepository) getChunks(ctx context.Context, id string, kind entities.ImageKind, n int) (string, error) {
	var b strings.Builder
	for i := 0; i < n; i++ {
		out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
			TableName:      aws.String(r.tableName),
			Key:            stringKey("id", chunkID(id, kind, i)),
			ConsistentRead: aws.Bool(true),
		})
		if err != nil {
			return "", err
		}
		if len(out.Item) == 0 {
			return "", fmt.Errorf("missing %s chunk %d of design %s", kind, i, id)
		}
		var c imageChunkItem
		if err := attributevalue.UnmarshalMap(out.Item, &c); err != nil {
			return "", err
		}
		b.WriteString(c.Data)
	}
	return b.String(), nil
}

func chunkID(id string, kind entities.ImageKind, i int) string {
	return fmt.Sprintf("%s#%s#%d", id, kind, i)
}

// chunkIfOverBudget returns nil and charges the budget when ref still fits in
// the main item, otherwise the chunks to store separately.
func chunkIfOverBudget(ref string, budget *int) []string {
	if ref == "" {
		return nil
	}
	if len(ref) <= *budget {
		*budget -= len(ref)
		return nil
	}
	return splitImageRef(ref)
}

// splitImageRef returns the reference unchanged (one element) when it fits in
// a single item.
func splitImageRef(ref string) []string {
	if len(ref) <= imageChunkSize {
		return []string{ref}
	}
	chunks := make([]string, 0, len(ref)/imageChunkSize+1)
	for len(ref) > imageChunkSize {
		chunks = append(chunks, ref[:imageChunkSize])
		ref = ref[imageChunkSize:]
	}
	if ref != "" {
		chunks = append(chunks, ref)
	}
	return chunks
}

func toHouseDesignItem(d entities.HouseDesign) houseDesignItem {
	return houseDesignItem{
		ID:              d.ID,
		HouseType:       d.HouseType,
		AreaVaras:       d.AreaVaras,
		Bedrooms:        d.Bedrooms,
		Bathrooms:       d.Bathrooms,
		Department:      d.Department,
		Municipality:    d.Municipality,
		Neighborhood:    d.Neighborhood,
		HasPool:         d.HasPool,
		AdditionalNotes: d.AdditionalNotes,
		EstimatedCost:   d.EstimatedCost,
		BlueprintRef:    d.BlueprintRef,
		RenderRef:       d.RenderRef,
		CreatedAt:       formatTime(d.CreatedAt),
	}
}

func fromHouseDesignItem(it houseDesignItem) entities.HouseDesign {
	return entities.HouseDesign{
		ID:              it.ID,
		HouseType:       it.HouseType,
		AreaVaras:       it.AreaVaras,
		Bedrooms:        it.Bedrooms,
		Bathrooms:       it.Bathrooms,
		Department:      it.Department,
		Municipality:    it.Municipality,
		Neighborhood:    it.Neighborhood,
		HasPool:         it.HasPool,
		AdditionalNotes: it.AdditionalNotes,
		EstimatedCost:   it.EstimatedCost,
		BlueprintRef:    it.BlueprintRef,
		RenderRef:       it.RenderRef,
		CreatedAt:       parseTime(it.CreatedAt),
	}
}
