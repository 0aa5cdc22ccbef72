package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"indt_seguros/internal/domain/entities"
	"indt_seguros/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const propostasSequence = "propostas"

type propostaItem struct {
	ID          int64  `dynamodbav:"id"`
	NomeCliente string `dynamodbav:"nome_cliente"`
	Produto     string `dynamodbav:"produto"`
	Premio      string `dynamodbav:"premio"`
	Status      string `dynamodbav:"status"`
	DataCriacao string `dynamodbav:"data_criacao"`
}

// PropostaDynamoRepository persists Proposta entities in DynamoDB.
//
// Table requirements:
//   - PK: id (number)
//
// Ids come from the "propostas" counter of the sequences table.

type PropostaDynamoRepository struct {
	ddb       DynamoDBAPI
	seq       *DynamoSequence
	tableName string
}

var _ interfaces.IPropostaRepository = (*PropostaDynamoRepository)(nil)

func NewPropostaDynamoRepository(ddb DynamoDBAPI, seq *DynamoSequence, tableName string) *PropostaDynamoRepository {
	return &PropostaDynamoRepository{ddb: ddb, seq: seq, tableName: tableName}
}

func (r *PropostaDynamoRepository) Inserir(ctx context.Context, p entities.Proposta) (int64, error) {
	id, err := r.seq.Next(ctx, propostasSequence)
	if err != nil {
		return 0, err
	}
	p.ID = id

	av, err := attributevalue.MarshalMap(toPropostaItem(p))
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

func (r *PropostaDynamoRepository) ObterPorID(ctx context.Context, id int64) (*entities.Proposta, error) {
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

	var it propostaItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	p, err := fromPropostaItem(it)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Listar scans the whole table; scan order is undefined so results are sorted by id.
func (r *PropostaDynamoRepository) Listar(ctx context.Context) ([]entities.Proposta, error) {
	raw, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}

	items := make([]entities.Proposta, 0, len(raw))
	for _, av := range raw {
		var it propostaItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		p, err := fromPropostaItem(it)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

// AtualizarStatus moves the proposal from de to para only if it still holds de.
func (r *PropostaDynamoRepository) AtualizarStatus(ctx context.Context, id int64, de, para entities.StatusProposta) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :de"),
		UpdateExpression:    aws.String("SET #status = :para"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":de":   &types.AttributeValueMemberS{Value: string(de)},
			":para": &types.AttributeValueMemberS{Value: string(para)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return interfaces.ErrStatusDivergente
		}
		return err
	}
	return nil
}

func toPropostaItem(p entities.Proposta) propostaItem {
	return propostaItem{
		ID:          p.ID,
		NomeCliente: p.NomeCliente,
		Produto:     p.Produto,
		Premio:      p.Premio.String(),
		Status:      string(p.Status),
		DataCriacao: formatTime(p.DataCriacao),
	}
}

func fromPropostaItem(it propostaItem) (entities.Proposta, error) {
	premio, err := decimal.NewFromString(it.Premio)
	if err != nil {
		return entities.Proposta{}, fmt.Errorf("proposta %d: invalid premio %q: %w", it.ID, it.Premio, err)
	}
	criacao, err := parseTime("data_criacao", it.DataCriacao)
	if err != nil {
		return entities.Proposta{}, fmt.Errorf("proposta %d: %w", it.ID, err)
	}
	return entities.Proposta{
		ID:          it.ID,
		NomeCliente: it.NomeCliente,
		Produto:     it.Produto,
		Premio:      premio,
		Status:      entities.StatusProposta(it.Status),
		DataCriacao: criacao,
	}, nil
}
