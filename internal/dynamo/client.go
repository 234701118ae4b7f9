package dynamo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"epos-support-agent/internal/config"
	"epos-support-agent/internal/models"
)

// API is the slice of the DynamoDB client this package uses, split out so
// tests can substitute a fake.
type API interface {
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
}

// Client wraps the DynamoDB client for the ticket table.
type Client struct {
	client API
	table  string
}

// record is the stored item shape. The partition attribute is named PK for
// historical reasons; it carries the store id. Media links are written as
// explicit NULL attributes when absent rather than omitted, because the
// dashboard reads every attribute by name.
type record struct {
	StoreID     string  `dynamodbav:"PK"`
	ID          string  `dynamodbav:"id"`
	TicketID    string  `dynamodbav:"ticketId"`
	Summary     string  `dynamodbav:"summary"`
	Description string  `dynamodbav:"description"`
	DeviceInfo  string  `dynamodbav:"deviceInfo"`
	VideoLink   *string `dynamodbav:"videoLink"`
	AudioLink   *string `dynamodbav:"audioLink"`
	CreatedAt   string  `dynamodbav:"createdAt"`
	Status      string  `dynamodbav:"status"`
}

func NewClient(ctx context.Context, cfg *config.Config, table string) (*Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AWSRegion),
	}
	if cfg.AWSAccessKeyID != "" && cfg.AWSSecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				cfg.AWSAccessKeyID,
				cfg.AWSSecretAccessKey,
				cfg.AWSSessionToken,
			),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &Client{
		client: dynamodb.NewFromConfig(awsCfg),
		table:  table,
	}, nil
}

// NewFromAPI builds a client over an existing DynamoDB API implementation.
func NewFromAPI(api API, table string) *Client {
	return &Client{client: api, table: table}
}

// EnsureTable creates the ticket table when it does not exist yet. The table
// is keyed by the id attribute alone; the store id is a plain attribute
// narrowed by scan filters.
func (c *Client) EnsureTable(ctx context.Context) error {
	_, err := c.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(c.table),
	})
	if err == nil {
		return nil
	}

	var notFound *types.ResourceNotFoundException
	if !errors.As(err, &notFound) {
		return fmt.Errorf("failed to describe table %s: %w", c.table, err)
	}

	log.Printf("Table %s not found, creating", c.table)
	_, err = c.client.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName: aws.String(c.table),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
		BillingMode: types.BillingModePayPerRequest,
	})
	if err != nil {
		return fmt.Errorf("failed to create table %s: %w", c.table, err)
	}

	return nil
}

// PutTicketInput carries everything the create flow persists. DeviceInfo is
// serialized to a JSON string attribute; nil media links become NULL markers.
type PutTicketInput struct {
	ID          string
	StoreID     string
	TicketID    string
	Summary     string
	Description string
	DeviceInfo  map[string]interface{}
	VideoLink   *string
	AudioLink   *string
	CreatedAt   string
	Status      models.TicketStatus
}

func (c *Client) PutTicket(ctx context.Context, in PutTicketInput) error {
	deviceInfo := in.DeviceInfo
	if deviceInfo == nil {
		deviceInfo = map[string]interface{}{}
	}
	deviceJSON, err := json.Marshal(deviceInfo)
	if err != nil {
		return fmt.Errorf("failed to marshal device info: %w", err)
	}

	item, err := attributevalue.MarshalMap(record{
		StoreID:     in.StoreID,
		ID:          in.ID,
		TicketID:    in.TicketID,
		Summary:     in.Summary,
		Description: in.Description,
		DeviceInfo:  string(deviceJSON),
		VideoLink:   in.VideoLink,
		AudioLink:   in.AudioLink,
		CreatedAt:   in.CreatedAt,
		Status:      string(in.Status),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal ticket item: %w", err)
	}

	_, err = c.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(c.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to put ticket %s: %w", in.ID, err)
	}

	return nil
}

// ListTickets scans the whole table, following the continuation key until the
// scan is exhausted. When storeID is non-empty it is pushed down as a filter
// expression and re-applied to the mapped results, in case the stored
// attribute diverges from the expression.
func (c *Client) ListTickets(ctx context.Context, storeID string) ([]models.Ticket, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(c.table),
	}
	if storeID != "" {
		input.FilterExpression = aws.String("PK = :storeId")
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":storeId": &types.AttributeValueMemberS{Value: storeID},
		}
	}

	tickets := []models.Ticket{}
	for {
		result, err := c.client.Scan(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to scan table %s: %w", c.table, err)
		}

		var records []record
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &records); err != nil {
			return nil, fmt.Errorf("failed to unmarshal scan page: %w", err)
		}

		for _, r := range records {
			if storeID != "" && r.StoreID != storeID {
				continue
			}
			tickets = append(tickets, toTicket(r))
		}

		if result.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = result.LastEvaluatedKey
	}

	return tickets, nil
}

// UpdateStatus overwrites the status attribute of one record and nothing
// else. There is no existence precheck; a missing id upserts a bare record.
func (c *Client) UpdateStatus(ctx context.Context, id string, status models.TicketStatus) error {
	_, err := c.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(c.table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression: aws.String("SET #status = :newStatus"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":newStatus": &types.AttributeValueMemberS{Value: string(status)},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to update status for %s: %w", id, err)
	}

	return nil
}

func toTicket(r record) models.Ticket {
	t := models.Ticket{
		StoreID:     r.StoreID,
		TicketID:    r.ID,
		Summary:     r.Summary,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		Status:      r.Status,
	}
	if t.TicketID == "" {
		t.TicketID = r.TicketID
	}
	if r.VideoLink != nil {
		t.VideoLink = *r.VideoLink
	}
	if r.AudioLink != nil {
		t.AudioLink = *r.AudioLink
	}
	if r.DeviceInfo != "" {
		var info map[string]interface{}
		if err := json.Unmarshal([]byte(r.DeviceInfo), &info); err == nil {
			t.DeviceInfo = info
		}
	}
	return t
}
