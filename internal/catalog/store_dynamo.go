package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoStore keeps the catalog in a DynamoDB table keyed by `id` (string).
// Timestamps are stored as RFC3339Nano strings.
type DynamoStore struct {
	client *dynamodb.Client
	table  string
}

func NewDynamoStore(client *dynamodb.Client, table string) *DynamoStore {
	return &DynamoStore{client: client, table: table}
}

type ddbProduct struct {
	ID          string  `dynamodbav:"id"`
	Name        string  `dynamodbav:"name"`
	Description string  `dynamodbav:"description"`
	Price       float64 `dynamodbav:"price"`
	Category    string  `dynamodbav:"category"`
	Stock       int     `dynamodbav:"stock"`
	ImageURL    string  `dynamodbav:"image_url"`
	CreatedAt   string  `dynamodbav:"created_at"`
	UpdatedAt   string  `dynamodbav:"updated_at"`
}

func toDDB(p Product) ddbProduct {
	return ddbProduct{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Stock:       p.Stock,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:   p.UpdatedAt.Format(time.RFC3339Nano),
	}
}

func fromDDB(dp ddbProduct) Product {
	p := Product{
		ID:          dp.ID,
		Name:        dp.Name,
		Description: dp.Description,
		Price:       dp.Price,
		Category:    dp.Category,
		Stock:       dp.Stock,
		ImageURL:    dp.ImageURL,
	}
	if t, err := time.Parse(time.RFC3339Nano, dp.CreatedAt); err == nil {
		p.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339Nano, dp.UpdatedAt); err == nil {
		p.UpdatedAt = t
	}
	return p
}

func (s *DynamoStore) key(id string) (map[string]ddbtypes.AttributeValue, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": id})
	if err != nil {
		return nil, fmt.Errorf("marshal key: %w", err)
	}
	return key, nil
}

func (s *DynamoStore) Ping(ctx context.Context) error {
	_, err := s.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: &s.table})
	return err
}

func (s *DynamoStore) Scan(ctx context.Context) ([]Product, error) {
	out := make([]Product, 0, 16)

	paginator := dynamodb.NewScanPaginator(s.client, &dynamodb.ScanInput{TableName: &s.table})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan page: %w", err)
		}
		for _, item := range page.Items {
			var dp ddbProduct
			if err := attributevalue.UnmarshalMap(item, &dp); err != nil {
				return nil, fmt.Errorf("unmarshal item: %w", err)
			}
			out = append(out, fromDDB(dp))
		}
	}
	return out, nil
}

func (s *DynamoStore) Get(ctx context.Context, id string) (Product, bool, error) {
	key, err := s.key(id)
	if err != nil {
		return Product{}, false, err
	}

	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{TableName: &s.table, Key: key})
	if err != nil {
		return Product{}, false, fmt.Errorf("get item: %w", err)
	}
	if len(out.Item) == 0 {
		return Product{}, false, nil
	}

	var dp ddbProduct
	if err := attributevalue.UnmarshalMap(out.Item, &dp); err != nil {
		return Product{}, false, fmt.Errorf("unmarshal item: %w", err)
	}
	return fromDDB(dp), true, nil
}

func (s *DynamoStore) Put(ctx context.Context, p Product) error {
	item, err := attributevalue.MarshalMap(toDDB(p))
	if err != nil {
		return fmt.Errorf("marshal product: %w", err)
	}
	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{TableName: &s.table, Item: item})
	if err != nil {
		return fmt.Errorf("put item: %w", err)
	}
	return nil
}

func (s *DynamoStore) Delete(ctx context.Context, id string) error {
	key, err := s.key(id)
	if err != nil {
		return err
	}
	_, err = s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{TableName: &s.table, Key: key})
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}
