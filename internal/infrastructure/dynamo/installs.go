package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/quant-backend/internal/domain"
)

// InstallRepo records which client installations redeemed codes.
// PK: binding_id (ULID), GSI: email-index. Duplicate bindings are tolerated.
type InstallRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewInstallRepo(client *dynamodb.Client, tableName string) *InstallRepo {
	return &InstallRepo{client: client, tableName: tableName}
}

func (r *InstallRepo) Put(ctx context.Context, b *domain.InstallBinding) error {
	item, err := attributevalue.MarshalMap(b)
	if err != nil {
		return fmt.Errorf("marshal install binding: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}
