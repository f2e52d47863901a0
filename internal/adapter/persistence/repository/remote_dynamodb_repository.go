package repository

import (
	"context"
	"time"

	"consolidador/internal/domain/entities"
	"consolidador/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName    = "orders"
	defaultBatchesTableName   = "batches"
	defaultSuppliersTableName = "suppliers"
)

// TableNames selects the DynamoDB tables backing each collection.
type TableNames struct {
	Orders    string
	Batches   string
	Suppliers string
}

func (t TableNames) withDefaults() TableNames {
	if t.Orders == "" {
		t.Orders = defaultOrdersTableName
	}
	if t.Batches == "" {
		t.Batches = defaultBatchesTableName
	}
	if t.Suppliers == "" {
		t.Suppliers = defaultSuppliersTableName
	}
	return t
}

// dynamoAPI is the subset of *dynamodb.Client used by the store.
type dynamoAPI interface {
	dynamodb.ScanAPIClient
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// DynamoRemoteStore persists orders, batches and suppliers in DynamoDB.
//
// Table requirements:
//   - orders:    PK id (string)
//   - batches:   PK code (string)
//   - suppliers: PK id (string)
//
// Writes are unconditional PutItem upserts: the local cache is the source of
// what the user sees, the remote copy only has to converge to it.

type DynamoRemoteStore struct {
	ddb    dynamoAPI
	tables TableNames
}

var _ interfaces.IRemoteStore = (*DynamoRemoteStore)(nil)

func NewDynamoRemoteStore(ddb dynamoAPI, tables TableNames) *DynamoRemoteStore {
	return &DynamoRemoteStore{
		ddb:    ddb,
		tables: tables.withDefaults(),
	}
}

func (r *DynamoRemoteStore) ListOrders(ctx context.Context) ([]entities.Order, error) {
	items, err := scanAll[orderItem](ctx, r.ddb, r.tables.Orders)
	if err != nil {
		return nil, classifyError("list orders", err)
	}
	out := make([]entities.Order, 0, len(items))
	for _, it := range items {
		out = append(out, fromOrderItem(it))
	}
	return out, nil
}

func (r *DynamoRemoteStore) PutOrder(ctx context.Context, o entities.Order) error {
	return classifyError("put order", r.put(ctx, r.tables.Orders, toOrderItem(o)))
}

func (r *DynamoRemoteStore) DeleteOrder(ctx context.Context, id string) error {
	return classifyError("delete order", r.delete(ctx, r.tables.Orders, "id", id))
}

func (r *DynamoRemoteStore) ListBatches(ctx context.Context) ([]entities.Batch, error) {
	items, err := scanAll[batchItem](ctx, r.ddb, r.tables.Batches)
	if err != nil {
		return nil, classifyError("list batches", err)
	}
	out := make([]entities.Batch, 0, len(items))
	for _, it := range items {
		out = append(out, fromBatchItem(it))
	}
	return out, nil
}

func (r *DynamoRemoteStore) PutBatch(ctx context.Context, b entities.Batch) error {
	return classifyError("put batch", r.put(ctx, r.tables.Batches, toBatchItem(b)))
}

func (r *DynamoRemoteStore) DeleteBatch(ctx context.Context, code string) error {
	return classifyError("delete batch", r.delete(ctx, r.tables.Batches, "code", code))
}

func (r *DynamoRemoteStore) ListSuppliers(ctx context.Context) ([]entities.Supplier, error) {
	items, err := scanAll[supplierItem](ctx, r.ddb, r.tables.Suppliers)
	if err != nil {
		return nil, classifyError("list suppliers", err)
	}
	out := make([]entities.Supplier, 0, len(items))
	for _, it := range items {
		out = append(out, fromSupplierItem(it))
	}
	return out, nil
}

func (r *DynamoRemoteStore) PutSupplier(ctx context.Context, s entities.Supplier) error {
	return classifyError("put supplier", r.put(ctx, r.tables.Suppliers, toSupplierItem(s)))
}

func (r *DynamoRemoteStore) DeleteSupplier(ctx context.Context, id string) error {
	return classifyError("delete supplier", r.delete(ctx, r.tables.Suppliers, "id", id))
}

// SubscribeOrders polls the orders table. DynamoDB has no push feed for plain
// clients, so a full scan per interval stands in for a realtime snapshot.
func (r *DynamoRemoteStore) SubscribeOrders(ctx context.Context, interval time.Duration, onSnapshot func([]entities.Order), onError func(error)) func() {
	return pollOrders(ctx, interval, r.ListOrders, onSnapshot, onError)
}

func (r *DynamoRemoteStore) put(ctx context.Context, table string, item any) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(table),
		Item:      av,
	})
	return err
}

func (r *DynamoRemoteStore) delete(ctx context.Context, table, keyName, key string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			keyName: &types.AttributeValueMemberS{Value: key},
		},
	})
	return err
}

func scanAll[T any](ctx context.Context, ddb dynamodb.ScanAPIClient, table string) ([]T, error) {
	var out []T
	p := dynamodb.NewScanPaginator(ddb, &dynamodb.ScanInput{
		TableName:      aws.String(table),
		ConsistentRead: aws.Bool(true),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []T
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		out = append(out, items...)
	}
	return out, nil
}
