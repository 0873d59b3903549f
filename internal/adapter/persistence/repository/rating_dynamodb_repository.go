package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"foodcourt_api/internal/domain/entities"
	"foodcourt_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultRatingsTableName  = "ratings"
	defaultCountersTableName = "counters"
	ratingsCounterName       = "ratings"
)

type ratingItem struct {
	ID          int64   `dynamodbav:"id"`
	SubjectName string  `dynamodbav:"subject_name"`
	Score       float64 `dynamodbav:"score"`
	CreatedAt   string  `dynamodbav:"created_at"`
}

// RatingDynamoRepository persists Rating rows in DynamoDB.
//
// Table requirements:
//   - ratings:  PK id (number)
//   - counters: PK name (string), attribute seq (number)
//
// Sequence ids come from a server-side atomic ADD on the counter item,
// so concurrent appends never collide.

type RatingDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	countersTable string
}

var _ interfaces.IRatingRepository = (*RatingDynamoRepository)(nil)

func NewRatingDynamoRepository(ddb *dynamodb.Client) *RatingDynamoRepository {
	return &RatingDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("RATINGS_TABLE", defaultRatingsTableName),
		countersTable: getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
	}
}

func (r *RatingDynamoRepository) Append(ctx context.Context, rating entities.Rating) (entities.Rating, error) {
	ctx, cancel := storeContext(ctx)
	defer cancel()

	id, err := r.nextSequence(ctx)
	if err != nil {
		return entities.Rating{}, err
	}
	rating.ID = id

	av, err := attributevalue.MarshalMap(toRatingItem(rating))
	if err != nil {
		return entities.Rating{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Rating{}, err
	}
	return rating, nil
}

// nextSequence increments the ratings counter and returns the new
// value. ADD creates the counter item on first use.
func (r *RatingDynamoRepository) nextSequence(ctx context.Context) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.countersTable),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: ratingsCounterName},
		},
		UpdateExpression: aws.String("ADD #seq :one"),
		ExpressionAttributeNames: map[string]string{
			"#seq": "seq",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}

	seq, ok := out.Attributes["seq"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, errSequenceAttribute
	}
	return strconv.ParseInt(seq.Value, 10, 64)
}

var errSequenceAttribute = errors.New("counter returned no seq attribute")

func toRatingItem(rating entities.Rating) ratingItem {
	return ratingItem{
		ID:          rating.ID,
		SubjectName: rating.SubjectName,
		Score:       rating.Score,
		CreatedAt:   rating.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}
