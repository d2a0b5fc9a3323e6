package repository

import (
	"context"
	"time"

	"lyft_client/internal/domain/entities"
	"lyft_client/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEstimatesTableName = "estimates"

// estimateTableAPI is the subset of the DynamoDB client the repository uses.
type estimateTableAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

type locationItem struct {
	Latitude  float64 `dynamodbav:"latitude"`
	Longitude float64 `dynamodbav:"longitude"`
	Address   string  `dynamodbav:"address,omitempty"`
}

type moneyItem struct {
	Amount      int64  `dynamodbav:"amount"`
	Currency    string `dynamodbav:"currency"`
	Description string `dynamodbav:"description,omitempty"`
}

type estimateItem struct {
	ID          string       `dynamodbav:"id"`
	ServiceID   string       `dynamodbav:"service_id"`
	Origin      locationItem `dynamodbav:"origin"`
	Destination locationItem `dynamodbav:"destination"`
	Seats       int          `dynamodbav:"seats"`
	Cost        moneyItem    `dynamodbav:"cost"`

	RideRequestID     string     `dynamodbav:"ride_request_id,omitempty"`
	CancellationCost  *moneyItem `dynamodbav:"cancellation_cost,omitempty"`
	CancellationToken string     `dynamodbav:"cancellation_token,omitempty"`
	BookingState      string     `dynamodbav:"booking_state,omitempty"`
	IdempotencyToken  string     `dynamodbav:"idempotency_token,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
	ExpiresAt int64  `dynamodbav:"expires_at,omitempty"`
}

// EstimateDynamoRepository persists Estimate records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - TTL attribute: expires_at (epoch seconds)
//
// DynamoDB deletes expired items lazily, so reads filter on expires_at as well.
type EstimateDynamoRepository struct {
	ddb       estimateTableAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client, tableName string) *EstimateDynamoRepository {
	return newEstimateDynamoRepository(ddb, tableName)
}

func newEstimateDynamoRepository(ddb estimateTableAPI, tableName string) *EstimateDynamoRepository {
	if tableName == "" {
		tableName = defaultEstimatesTableName
	}
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (r *EstimateDynamoRepository) Put(ctx context.Context, e entities.Estimate, policy entities.TTLPolicy) error {
	it := toEstimateItem(e)
	it.ExpiresAt = expiryUnix(policy, r.now())

	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *EstimateDynamoRepository) Get(ctx context.Context, id string) (entities.Estimate, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, false, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, false, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimate{}, false, err
	}
	if entities.Expired(fromUnix(it.ExpiresAt), r.now()) {
		return entities.Estimate{}, false, nil
	}
	return fromEstimateItem(it), true, nil
}

func toEstimateItem(e entities.Estimate) estimateItem {
	it := estimateItem{
		ID:                e.ID,
		ServiceID:         e.ServiceID,
		Origin:            toLocationItem(e.Request.Origin),
		Destination:       toLocationItem(e.Request.Destination),
		Seats:             e.Request.Seats,
		Cost:              toMoneyItem(e.Cost),
		RideRequestID:     e.RideRequestID,
		CancellationToken: e.CancellationToken,
		BookingState:      string(e.BookingState),
		IdempotencyToken:  e.IdempotencyToken,
		CreatedAt:         formatTime(e.CreatedAt),
		UpdatedAt:         formatTime(e.UpdatedAt),
	}
	if e.CancellationCost != nil {
		c := toMoneyItem(*e.CancellationCost)
		it.CancellationCost = &c
	}
	return it
}

func fromEstimateItem(it estimateItem) entities.Estimate {
	e := entities.Estimate{
		ID:        it.ID,
		ServiceID: it.ServiceID,
		Request: entities.EstimateRequest{
			Origin:      fromLocationItem(it.Origin),
			Destination: fromLocationItem(it.Destination),
			Seats:       it.Seats,
		},
		Cost:              fromMoneyItem(it.Cost),
		RideRequestID:     it.RideRequestID,
		CancellationToken: it.CancellationToken,
		BookingState:      entities.BookingState(it.BookingState),
		IdempotencyToken:  it.IdempotencyToken,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
	if it.CancellationCost != nil {
		c := fromMoneyItem(*it.CancellationCost)
		e.CancellationCost = &c
	}
	return e
}

func toLocationItem(l entities.Location) locationItem {
	return locationItem{Latitude: l.Latitude, Longitude: l.Longitude, Address: l.Address}
}

func fromLocationItem(it locationItem) entities.Location {
	return entities.Location{Latitude: it.Latitude, Longitude: it.Longitude, Address: it.Address}
}

func toMoneyItem(m entities.Money) moneyItem {
	return moneyItem{Amount: m.Amount, Currency: m.Currency, Description: m.Description}
}

func fromMoneyItem(it moneyItem) entities.Money {
	return entities.Money{Amount: it.Amount, Currency: it.Currency, Description: it.Description}
}
