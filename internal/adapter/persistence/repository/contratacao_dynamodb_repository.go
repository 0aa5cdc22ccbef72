package repository

import (
	"context"
	"fmt"
	"sort"

	"indt_seguros/internal/domain/entities"
	"indt_seguros/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const contratacoesSequence = "contratacoes"

type contratacaoItem struct {
	ID              int64  `dynamodbav:"id"`
	PropostaID      int64  `dynamodbav:"proposta_id"`
	DataContratacao string `dynamodbav:"data_contratacao"`
}

// ContratacaoDynamoRepository persists Contratacao entities in DynamoDB.
//
// Table requirements:
//   - PK: id (number)

type ContratacaoDynamoRepository struct {
	ddb       DynamoDBAPI
	seq       *DynamoSequence
	tableName string
}

var _ interfaces.IContratacaoRepository = (*ContratacaoDynamoRepository)(nil)

func NewContratacaoDynamoRepository(ddb DynamoDBAPI, seq *DynamoSequence, tableName string) *ContratacaoDynamoRepository {
	return &ContratacaoDynamoRepository{ddb: ddb, seq: seq, tableName: tableName}
}

func (r *ContratacaoDynamoRepository) Inserir(ctx context.Context, c entities.Contratacao) (int64, error) {
	id, err := r.seq.Next(ctx, contratacoesSequence)
	if err != nil {
		return 0, err
	}
	c.ID = id

	av, err := attributevalue.MarshalMap(toContratacaoItem(c))
	if err != nil {
		return 0, err
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
		return 0, err
	}
	return id, nil
}

func (r *ContratacaoDynamoRepository) ObterPorID(ctx context.Context, id int64) (*entities.Contratacao, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it contratacaoItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	c, err := fromContratacaoItem(it)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ContratacaoDynamoRepository) Listar(ctx context.Context) ([]entities.Contratacao, error) {
	raw, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}

	items := make([]entities.Contratacao, 0, len(raw))
	for _, av := range raw {
		var it contratacaoItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		c, err := fromContratacaoItem(it)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func toContratacaoItem(c entities.Contratacao) contratacaoItem {
	return contratacaoItem{
		ID:              c.ID,
		PropostaID:      c.PropostaID,
		DataContratacao: formatTime(c.DataContratacao),
	}
}

func fromContratacaoItem(it contratacaoItem) (entities.Contratacao, error) {
	data, err := parseTime("data_contratacao", it.DataContratacao)
	if err != nil {
		return entities.Contratacao{}, fmt.Errorf("contratacao %d: %w", it.ID, err)
	}
	return entities.Contratacao{
		ID:              it.ID,
		PropostaID:      it.PropostaID,
		DataContratacao: data,
	}, nil
}
