package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/course-reviews-api/internal/domain"
)

// ProgramRepo provides typed DynamoDB operations for the programs table.
type ProgramRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewProgramRepo(client *dynamodb.Client, tableName string) *ProgramRepo {
	return &ProgramRepo{client: client, tableName: tableName}
}

func (r *ProgramRepo) Put(ctx context.Context, p *domain.Program) error {
	item, err := attributevalue.MarshalMap(p)
	if err != nil {
		return fmt.Errorf("marshal program: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *ProgramRepo) Scan(ctx context.Context) ([]domain.Program, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	var programs []domain.Program
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &programs); err != nil {
		return nil, err
	}
	return programs, nil
}
