package repository

import (
	"context"
	"time"

	"foodcourt_api/internal/domain/entities"
	"foodcourt_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultClientsTableName = "clients"

type accountItem struct {
	Username     string `dynamodbav:"username"`
	PasswordHash string `dynamodbav:"password_hash"`
	Email        string `dynamodbav:"email,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// AccountDynamoRepository persists Account entities in DynamoDB.
//
// Table requirements:
//   - PK: username (string)
//
// Username uniqueness is enforced by the conditional put; a duplicate
// registration fails without touching the stored row.

type AccountDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAccountRepository = (*AccountDynamoRepository)(nil)

func NewAccountDynamoRepository(ddb *dynamodb.Client) *AccountDynamoRepository {
	return &AccountDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CLIENTS_TABLE", defaultClientsTableName),
	}
}

func (r *AccountDynamoRepository) Create(ctx context.Context, a entities.Account) (entities.Account, error) {
	av, err := attributevalue.MarshalMap(toAccountItem(a))
	if err != nil {
		return entities.Account{}, err
	}

	ctx, cancel := storeContext(ctx)
	defer cancel()

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#username)"),
		ExpressionAttributeNames: map[string]string{
			"#username": "username",
		},
	})
	if err != nil {
		return entities.Account{}, mapConditionalError(err)
	}
	return a, nil
}

func (r *AccountDynamoRepository) GetByUsername(ctx context.Context, username string) (entities.Account, error) {
	ctx, cancel := storeContext(ctx)
	defer cancel()

	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"username": &types.AttributeValueMemberS{Value: username},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Account{}, err
	}
	if len(out.Item) == 0 {
		return entities.Account{}, nil
	}

	var it accountItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Account{}, err
	}
	return fromAccountItem(it), nil
}

func toAccountItem(a entities.Account) accountItem {
	return accountItem{
		Username:     a.Username,
		PasswordHash: a.PasswordHash,
		Email:        a.Email,
		CreatedAt:    a.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromAccountItem(it accountItem) entities.Account {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Account{
		Username:     it.Username,
		PasswordHash: it.PasswordHash,
		Email:        it.Email,
		CreatedAt:    createdAt,
	}
}
