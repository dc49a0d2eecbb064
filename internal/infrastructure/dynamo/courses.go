package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/course-reviews-api/internal/domain"
)

// CourseRepo provides typed DynamoDB operations for the courses table.
type CourseRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewCourseRepo(client *dynamodb.Client, tableName string) *CourseRepo {
	return &CourseRepo{client: client, tableName: tableName}
}

func (r *CourseRepo) Put(ctx context.Context, c *domain.Course) error {
	item, err := attributevalue.MarshalMap(c)
	if err != nil {
		return fmt.Errorf("marshal course: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *CourseRepo) Get(ctx context.Context, courseID string) (*domain.Course, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("course_id", courseID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("course not found: %w", domain.ErrNotFound)
	}
	var c domain.Course
	if err := attributevalue.UnmarshalMap(out.Item, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// GetBySlug queries the slug GSI and returns the single matching course.
func (r *CourseRepo) GetBySlug(ctx context.Context, slug string) (*domain.Course, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("slug-index"),
		KeyConditionExpression: aws.String("slug = :slug"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":slug": &types.AttributeValueMemberS{Value: slug},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Items) == 0 {
		return nil, fmt.Errorf("course not found: %w", domain.ErrNotFound)
	}
	var c domain.Course
	if err := attributevalue.UnmarshalMap(out.Items[0], &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Scan returns every course. The catalog is small (a few hundred items), so a
// full scan per listing request is acceptable.
func (r *CourseRepo) Scan(ctx context.Context) ([]domain.Course, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	var courses []domain.Course
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}
