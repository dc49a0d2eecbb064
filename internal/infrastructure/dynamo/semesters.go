package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/course-reviews-api/internal/domain"
)

// SemesterRepo provides typed DynamoDB operations for the semesters table.
type SemesterRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewSemesterRepo(client *dynamodb.Client, tableName string) *SemesterRepo {
	return &SemesterRepo{client: client, tableName: tableName}
}

func (r *SemesterRepo) Put(ctx context.Context, s *domain.Semester) error {
	item, err := attributevalue.MarshalMap(s)
	if err != nil {
		return fmt.Errorf("marshal semester: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *SemesterRepo) Get(ctx context.Context, semesterID string) (*domain.Semester, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("semester_id", semesterID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("semester not found: %w", domain.ErrNotFound)
	}
	var s domain.Semester
	if err := attributevalue.UnmarshalMap(out.Item, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SemesterRepo) Scan(ctx context.Context) ([]domain.Semester, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	var semesters []domain.Semester
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &semesters); err != nil {
		return nil, err
	}
	return semesters, nil
}
