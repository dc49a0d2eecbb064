package dynamo

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/course-reviews-api/internal/domain"
	"github.com/course-reviews-api/internal/pkg/id"
)

// ReviewRepo provides typed DynamoDB operations for the reviews table.
// Reviews are append-only; the repo exposes no update or delete.
type ReviewRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewReviewRepo(client *dynamodb.Client, tableName string) *ReviewRepo {
	return &ReviewRepo{client: client, tableName: tableName}
}

// Put creates a review. The store assigns the review ID and creation
// timestamp; callers only supply content and references.
func (r *ReviewRepo) Put(ctx context.Context, rev *domain.Review) error {
	rev.ReviewID = id.New()
	rev.DocType = domain.DocTypeReview
	rev.CreatedAt = time.Now().UTC()

	item, err := attributevalue.MarshalMap(rev)
	if err != nil {
		return fmt.Errorf("marshal review: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *ReviewRepo) Get(ctx context.Context, reviewID string) (*domain.Review, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("review_id", reviewID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("review not found: %w", domain.ErrNotFound)
	}
	var rev domain.Review
	if err := attributevalue.UnmarshalMap(out.Item, &rev); err != nil {
		return nil, err
	}
	return &rev, nil
}

// ListByCourse queries the course_id-created_at GSI, newest first.
func (r *ReviewRepo) ListByCourse(ctx context.Context, courseID string) ([]domain.Review, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("course_id-created_at-index"),
		KeyConditionExpression: aws.String("course_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: courseID},
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}
	var reviews []domain.Review
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// Recent queries the doc_type-created_at GSI for the newest reviews across
// all courses. doc_type is constant on every item, which makes the GSI a
// creation-time-ordered view of the whole table.
func (r *ReviewRepo) Recent(ctx context.Context, limit int32) ([]domain.Review, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("doc_type-created_at-index"),
		KeyConditionExpression: aws.String("doc_type = :t"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":t": &types.AttributeValueMemberS{Value: domain.DocTypeReview},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(limit),
	})
	if err != nil {
		return nil, err
	}
	var reviews []domain.Review
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
