package dynamo_test

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"epos-support-agent/internal/dynamo"
	"epos-support-agent/internal/models"
)

type fakeAPI struct {
	describeTable func(*dynamodb.DescribeTableInput) (*dynamodb.DescribeTableOutput, error)
	createTable   func(*dynamodb.CreateTableInput) (*dynamodb.CreateTableOutput, error)
	putItem       func(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error)
	scan          func(*dynamodb.ScanInput) (*dynamodb.ScanOutput, error)
	updateItem    func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error)
}

func (f *fakeAPI) DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	return f.describeTable(params)
}

func (f *fakeAPI) CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	return f.createTable(params)
}

func (f *fakeAPI) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	return f.putItem(params)
}

func (f *fakeAPI) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	return f.scan(params)
}

func (f *fakeAPI) UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	return f.updateItem(params)
}

func item(storeID, id, summary, status string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK":          &types.AttributeValueMemberS{Value: storeID},
		"id":          &types.AttributeValueMemberS{Value: id},
		"ticketId":    &types.AttributeValueMemberS{Value: id},
		"summary":     &types.AttributeValueMemberS{Value: summary},
		"description": &types.AttributeValueMemberS{Value: "d"},
		"deviceInfo":  &types.AttributeValueMemberS{Value: `{"appVersion":"2.1.0"}`},
		"videoLink":   &types.AttributeValueMemberNULL{Value: true},
		"audioLink":   &types.AttributeValueMemberNULL{Value: true},
		"createdAt":   &types.AttributeValueMemberS{Value: "2026-08-30T10:00:00Z"},
		"status":      &types.AttributeValueMemberS{Value: status},
	}
}

func TestPutTicket(t *testing.T) {
	var captured *dynamodb.PutItemInput
	api := &fakeAPI{
		putItem: func(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			captured = in
			return &dynamodb.PutItemOutput{}, nil
		},
	}
	client := dynamo.NewFromAPI(api, "tickets")

	video := "https://example.com/v"
	err := client.PutTicket(context.Background(), dynamo.PutTicketInput{
		ID:          "42",
		StoreID:     "S1",
		TicketID:    "42",
		Summary:     "Crash",
		Description: "Crashes on save",
		VideoLink:   &video,
		CreatedAt:   "2026-08-30T10:00:00Z",
		Status:      models.StatusUnderReview,
	})

	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, "tickets", aws.ToString(captured.TableName))

	assert.Equal(t, &types.AttributeValueMemberS{Value: "S1"}, captured.Item["PK"])
	assert.Equal(t, &types.AttributeValueMemberS{Value: "42"}, captured.Item["id"])
	assert.Equal(t, &types.AttributeValueMemberS{Value: "Under Review"}, captured.Item["status"])
	assert.Equal(t, &types.AttributeValueMemberS{Value: "https://example.com/v"}, captured.Item["videoLink"])

	// Absent links are stored as explicit NULL markers, not omitted.
	assert.Equal(t, &types.AttributeValueMemberNULL{Value: true}, captured.Item["audioLink"])

	// Nil device info is stored as an empty JSON object.
	assert.Equal(t, &types.AttributeValueMemberS{Value: "{}"}, captured.Item["deviceInfo"])
}

func TestListTickets_PaginatesAndPostFilters(t *testing.T) {
	calls := 0
	api := &fakeAPI{
		scan: func(in *dynamodb.ScanInput) (*dynamodb.ScanOutput, error) {
			calls++
			assert.Equal(t, "PK = :storeId", aws.ToString(in.FilterExpression))

			switch calls {
			case 1:
				assert.Nil(t, in.ExclusiveStartKey)
				return &dynamodb.ScanOutput{
					Items: []map[string]types.AttributeValue{
						item("S1", "42", "Crash", "Under Review"),
						// Slipped past the server-side filter; the post-filter
						// must drop it.
						item("S2", "77", "Other store", "Resolved"),
					},
					LastEvaluatedKey: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: "42"},
					},
				}, nil
			case 2:
				assert.NotNil(t, in.ExclusiveStartKey)
				return &dynamodb.ScanOutput{
					Items: []map[string]types.AttributeValue{
						item("S1", "43", "Freeze", "Resolved"),
					},
				}, nil
			}
			t.Fatalf("unexpected scan call %d", calls)
			return nil, nil
		},
	}
	client := dynamo.NewFromAPI(api, "tickets")

	tickets, err := client.ListTickets(context.Background(), "S1")

	require.NoError(t, err)
	assert.Equal(t, 2, calls, "scan must follow the continuation key")
	require.Len(t, tickets, 2)
	assert.Equal(t, "42", tickets[0].TicketID)
	assert.Equal(t, "43", tickets[1].TicketID)
	for _, ticket := range tickets {
		assert.Equal(t, "S1", ticket.StoreID)
	}
	assert.Equal(t, map[string]interface{}{"appVersion": "2.1.0"}, tickets[0].DeviceInfo)
	assert.Empty(t, tickets[0].VideoLink)
}

func TestListTickets_NoFilter(t *testing.T) {
	api := &fakeAPI{
		scan: func(in *dynamodb.ScanInput) (*dynamodb.ScanOutput, error) {
			assert.Nil(t, in.FilterExpression)
			return &dynamodb.ScanOutput{
				Items: []map[string]types.AttributeValue{
					item("S1", "42", "Crash", "Under Review"),
					item("S2", "77", "Other", "Resolved"),
				},
			}, nil
		},
	}
	client := dynamo.NewFromAPI(api, "tickets")

	tickets, err := client.ListTickets(context.Background(), "")

	require.NoError(t, err)
	assert.Len(t, tickets, 2)
}

func TestUpdateStatus(t *testing.T) {
	var captured *dynamodb.UpdateItemInput
	api := &fakeAPI{
		updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			captured = in
			return &dynamodb.UpdateItemOutput{}, nil
		},
	}
	client := dynamo.NewFromAPI(api, "tickets")

	err := client.UpdateStatus(context.Background(), "42", models.StatusResolved)

	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, &types.AttributeValueMemberS{Value: "42"}, captured.Key["id"])
	assert.Equal(t, "SET #status = :newStatus", aws.ToString(captured.UpdateExpression))
	assert.Equal(t, "status", captured.ExpressionAttributeNames["#status"])
	assert.Equal(t, &types.AttributeValueMemberS{Value: "Resolved"}, captured.ExpressionAttributeValues[":newStatus"])
}

func TestEnsureTable_CreatesWhenMissing(t *testing.T) {
	created := false
	api := &fakeAPI{
		describeTable: func(in *dynamodb.DescribeTableInput) (*dynamodb.DescribeTableOutput, error) {
			return nil, &types.ResourceNotFoundException{Message: aws.String("not found")}
		},
		createTable: func(in *dynamodb.CreateTableInput) (*dynamodb.CreateTableOutput, error) {
			created = true
			require.Len(t, in.KeySchema, 1)
			assert.Equal(t, "id", aws.ToString(in.KeySchema[0].AttributeName))
			assert.Equal(t, types.KeyTypeHash, in.KeySchema[0].KeyType)
			return &dynamodb.CreateTableOutput{}, nil
		},
	}
	client := dynamo.NewFromAPI(api, "tickets")

	require.NoError(t, client.EnsureTable(context.Background()))
	assert.True(t, created)
}

func TestEnsureTable_NoopWhenPresent(t *testing.T) {
	api := &fakeAPI{
		describeTable: func(in *dynamodb.DescribeTableInput) (*dynamodb.DescribeTableOutput, error) {
			return &dynamodb.DescribeTableOutput{}, nil
		},
		createTable: func(in *dynamodb.CreateTableInput) (*dynamodb.CreateTableOutput, error) {
			t.Fatal("create must not be called when the table exists")
			return nil, nil
		},
	}
	client := dynamo.NewFromAPI(api, "tickets")

	require.NoError(t, client.EnsureTable(context.Background()))
}
