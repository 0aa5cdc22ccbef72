package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoSequence hands out increasing int64 ids from an atomic counter item.
//
// Table requirements:
//   - PK: name (string)
type DynamoSequence struct {
	ddb       DynamoDBAPI
	tableName string
}

func NewDynamoSequence(ddb DynamoDBAPI, tableName string) *DynamoSequence {
	return &DynamoSequence{ddb: ddb, tableName: tableName}
}

func (s *DynamoSequence) Next(ctx context.Context, name string) (int64, error) {
	out, err := s.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: name},
		},
		UpdateExpression: aws.String("ADD #value :one"),
		ExpressionAttributeNames: map[string]string{
			"#value": "value",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}

	v, ok := out.Attributes["value"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("sequence %s: missing counter value", name)
	}
	return strconv.ParseInt(v.Value, 10, 64)
}
