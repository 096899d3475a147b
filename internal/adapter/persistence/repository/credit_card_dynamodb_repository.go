package repository

import (
	"context"
	"time"

	"tahsilat/internal/domain/entities"
	"tahsilat/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCardsTableName = "credit_cards"
	cardsPayableIDIndex   = "payable_id-index"
)

type creditCardItem struct {
	ID        string `dynamodbav:"id"`
	PayableID string `dynamodbav:"payable_id"`
	Token     string `dynamodbav:"token"`
	Alias     string `dynamodbav:"alias,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

// CreditCardDynamoRepository persists stored card tokens in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: payable_id-index (PK: payable_id)

type CreditCardDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICreditCardRepository = (*CreditCardDynamoRepository)(nil)

func NewCreditCardDynamoRepository(ddb *dynamodb.Client) *CreditCardDynamoRepository {
	return &CreditCardDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CARDS_TABLE", defaultCardsTableName),
	}
}

func (r *CreditCardDynamoRepository) Create(ctx context.Context, c entities.CreditCard) (entities.CreditCard, error) {
	it := creditCardItem{
		ID:        c.ID,
		PayableID: c.PayableID,
		Token:     c.Token,
		Alias:     c.Alias,
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.CreditCard{}, err
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
		return entities.CreditCard{}, err
	}
	return c, nil
}

func (r *CreditCardDynamoRepository) GetByPayableID(ctx context.Context, payableID string) (entities.CreditCard, error) {
	out, err := r.queryByPayableID(ctx, payableID)
	if err != nil {
		return entities.CreditCard{}, err
	}
	if len(out.Items) == 0 {
		return entities.CreditCard{}, nil
	}

	var it creditCardItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.CreditCard{}, err
	}
	return fromCreditCardItem(it), nil
}

func (r *CreditCardDynamoRepository) DeleteByPayableID(ctx context.Context, payableID string) error {
	out, err := r.queryByPayableID(ctx, payableID)
	if err != nil {
		return err
	}

	for _, raw := range out.Items {
		var it creditCardItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return err
		}
		_, err = r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: it.ID},
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *CreditCardDynamoRepository) queryByPayableID(ctx context.Context, payableID string) (*dynamodb.QueryOutput, error) {
	return r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(cardsPayableIDIndex),
		KeyConditionExpression: aws.String("payable_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: payableID},
		},
	})
}

func fromCreditCardItem(it creditCardItem) entities.CreditCard {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.CreditCard{
		ID:        it.ID,
		PayableID: it.PayableID,
		Token:     it.Token,
		Alias:     it.Alias,
		CreatedAt: createdAt,
	}
}
