package repository

import (
	"context"
	"errors"
	"strconv"

	"foodcourt_api/internal/domain/entities"
	"foodcourt_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultFoodOrdersTableName = "food_orders"

type orderItem struct {
	RestaurantID int64   `dynamodbav:"restaurant_id"`
	MenuItem     string  `dynamodbav:"menu_item"`
	Quantity     int64   `dynamodbav:"quantity"`
	UnitPrice    float64 `dynamodbav:"price"`
	TotalPrice   float64 `dynamodbav:"total_price"`
}

// OrderLedgerDynamoRepository persists OrderAggregate rows in DynamoDB.
//
// Table requirements:
//   - PK: restaurant_id (number)
//   - SK: menu_item (string)
//
// The composite key enforces (restaurant_id, menu_item) uniqueness at
// the store. Writes are conditional: the insert requires the key to be
// absent, the update requires the stored quantity to be unchanged since
// the caller's read. A failed condition comes back as
// interfaces.ErrConflict so the usecase can re-read and retry.

type OrderLedgerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderLedgerRepository = (*OrderLedgerDynamoRepository)(nil)

func NewOrderLedgerDynamoRepository(ddb *dynamodb.Client) *OrderLedgerDynamoRepository {
	return &OrderLedgerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("FOOD_ORDERS_TABLE", defaultFoodOrdersTableName),
	}
}

func orderKey(restaurantID int64, menuItem string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"restaurant_id": &types.AttributeValueMemberN{Value: strconv.FormatInt(restaurantID, 10)},
		"menu_item":     &types.AttributeValueMemberS{Value: menuItem},
	}
}

func (r *OrderLedgerDynamoRepository) Find(ctx context.Context, restaurantID int64, menuItem string) (entities.OrderAggregate, error) {
	ctx, cancel := storeContext(ctx)
	defer cancel()

	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            orderKey(restaurantID, menuItem),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.OrderAggregate{}, err
	}
	if len(out.Item) == 0 {
		return entities.OrderAggregate{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.OrderAggregate{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderLedgerDynamoRepository) Insert(ctx context.Context, agg entities.OrderAggregate) error {
	av, err := attributevalue.MarshalMap(toOrderItem(agg))
	if err != nil {
		return err
	}

	ctx, cancel := storeContext(ctx)
	defer cancel()

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#rid)"),
		ExpressionAttributeNames: map[string]string{
			"#rid": "restaurant_id",
		},
	})
	return mapConditionalError(err)
}

func (r *OrderLedgerDynamoRepository) UpdateIfQuantity(ctx context.Context, agg entities.OrderAggregate, expectedQuantity int64) error {
	ctx, cancel := storeContext(ctx)
	defer cancel()

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 orderKey(agg.RestaurantID, agg.MenuItem),
		ConditionExpression: aws.String("attribute_exists(#rid) AND #qty = :expected"),
		UpdateExpression:    aws.String("SET #qty = :qty, #price = :price, #total = :total"),
		ExpressionAttributeNames: map[string]string{
			"#rid":   "restaurant_id",
			"#qty":   "quantity",
			"#price": "price",
			"#total": "total_price",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedQuantity, 10)},
			":qty":      &types.AttributeValueMemberN{Value: strconv.FormatInt(agg.Quantity, 10)},
			":price":    &types.AttributeValueMemberN{Value: floatToString(agg.UnitPrice)},
			":total":    &types.AttributeValueMemberN{Value: floatToString(agg.TotalPrice)},
		},
	})
	return mapConditionalError(err)
}

func (r *OrderLedgerDynamoRepository) ListAll(ctx context.Context) ([]entities.OrderAggregate, error) {
	ctx, cancel := storeContext(ctx)
	defer cancel()

	var (
		orders  []entities.OrderAggregate
		lastKey map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it orderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			orders = append(orders, fromOrderItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastKey = out.LastEvaluatedKey
	}
	return orders, nil
}

func mapConditionalError(err error) error {
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return interfaces.ErrConflict
	}
	return err
}

func toOrderItem(agg entities.OrderAggregate) orderItem {
	return orderItem{
		RestaurantID: agg.RestaurantID,
		MenuItem:     agg.MenuItem,
		Quantity:     agg.Quantity,
		UnitPrice:    agg.UnitPrice,
		TotalPrice:   agg.TotalPrice,
	}
}

func fromOrderItem(it orderItem) entities.OrderAggregate {
	return entities.OrderAggregate{
		RestaurantID: it.RestaurantID,
		MenuItem:     it.MenuItem,
		Quantity:     it.Quantity,
		UnitPrice:    it.UnitPrice,
		TotalPrice:   it.TotalPrice,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
