package repository

import (
	"context"
	"errors"
	"sort"

	"bucketvault/internal/domain/entities"
	"bucketvault/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSessionsTableName = "payment_sessions"
	sessionsIDIndex          = "id-index"
	sessionsWalletIndex      = "wallet_address-index"

	// Cleared/expired items linger for reconciliation before DynamoDB TTL
	// removes them.
	sessionRetentionSeconds = 30 * 24 * 3600
)

type paymentSessionItem struct {
	Reference     string  `dynamodbav:"reference"`
	ID            string  `dynamodbav:"id"`
	WalletAddress string  `dynamodbav:"wallet_address"`
	TokenSymbol   string  `dynamodbav:"token_symbol"`
	FiatAmount    float64 `dynamodbav:"fiat_amount"`
	CryptoAmount  int64   `dynamodbav:"crypto_amount"`
	Status        string  `dynamodbav:"status"`
	FailReason    string  `dynamodbav:"fail_reason,omitempty"`
	CreatedAt     int64   `dynamodbav:"created_at"`
	ExpiresAt     int64   `dynamodbav:"expires_at"`
	VerifiedAt    int64   `dynamodbav:"verified_at,omitempty"`
	TTL           int64   `dynamodbav:"ttl"`
}

// SessionDynamoRepository persists PaymentSession entities in DynamoDB.
//
// Table requirements:
//   - PK: reference (string)
//   - GSI: id-index (PK: id)
//   - GSI: wallet_address-index (PK: wallet_address)
//   - TTL attribute: ttl
//
// Timestamps are stored as canonical integer epoch seconds regardless of the
// representation the originating client used. Conditional writes carry the
// at-most-once transition guarantee: concurrent resolutions race safely with
// exactly one winner.

type SessionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISessionRepository = (*SessionDynamoRepository)(nil)

func NewSessionDynamoRepository(ddb *dynamodb.Client) *SessionDynamoRepository {
	return &SessionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SESSIONS_TABLE", defaultSessionsTableName),
	}
}

func (r *SessionDynamoRepository) Create(ctx context.Context, s entities.PaymentSession) (entities.PaymentSession, error) {
	av, err := attributevalue.MarshalMap(toPaymentSessionItem(s))
	if err != nil {
		return entities.PaymentSession{}, err
	}

	// A reference may be reused only after its previous session was cleared.
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#ref) OR #status = :cleared"),
		ExpressionAttributeNames: map[string]string{
			"#ref":    "reference",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cleared": &types.AttributeValueMemberS{Value: string(entities.SessionStatusCleared)},
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.PaymentSession{}, interfaces.ErrReferenceTaken
		}
		return entities.PaymentSession{}, err
	}
	return s, nil
}

func (r *SessionDynamoRepository) GetByReference(ctx context.Context, reference string) (entities.PaymentSession, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"reference": &types.AttributeValueMemberS{Value: reference},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentSession{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentSession{}, nil
	}

	var it paymentSessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentSession{}, err
	}
	return fromPaymentSessionItem(it), nil
}

func (r *SessionDynamoRepository) ListByWallet(ctx context.Context, walletAddress string) ([]entities.PaymentSession, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(sessionsWalletIndex),
		KeyConditionExpression: aws.String("wallet_address = :w"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":w": &types.AttributeValueMemberS{Value: walletAddress},
		},
	})
	if err != nil {
		return nil, err
	}

	sessions := make([]entities.PaymentSession, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentSessionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		sessions = append(sessions, fromPaymentSessionItem(it))
	}
	sort.Slice(sessions, func(i, j int) bool { return sessions[i].CreatedAt > sessions[j].CreatedAt })
	return sessions, nil
}

func (r *SessionDynamoRepository) ResolveIfPending(ctx context.Context, reference string, status entities.SessionStatus, cryptoAmount int64, verifiedAt int64, failReason string) (entities.PaymentSession, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"reference": &types.AttributeValueMemberS{Value: reference},
		},
		ConditionExpression: aws.String("#status = :pending"),
		UpdateExpression:    aws.String("SET #status = :status, crypto_amount = :ca, verified_at = :va, fail_reason = :fr"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending": &types.AttributeValueMemberS{Value: string(entities.SessionStatusPending)},
			":status":  &types.AttributeValueMemberS{Value: string(status)},
			":ca":      &types.AttributeValueMemberN{Value: formatInt(cryptoAmount)},
			":va":      &types.AttributeValueMemberN{Value: formatInt(verifiedAt)},
			":fr":      &types.AttributeValueMemberS{Value: failReason},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.PaymentSession{}, interfaces.ErrNotPending
		}
		return entities.PaymentSession{}, err
	}

	var it paymentSessionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PaymentSession{}, err
	}
	return fromPaymentSessionItem(it), nil
}

func (r *SessionDynamoRepository) ExpireIfPending(ctx context.Context, reference string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"reference": &types.AttributeValueMemberS{Value: reference},
		},
		ConditionExpression: aws.String("#status = :pending"),
		UpdateExpression:    aws.String("SET #status = :expired"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending": &types.AttributeValueMemberS{Value: string(entities.SessionStatusPending)},
			":expired": &types.AttributeValueMemberS{Value: string(entities.SessionStatusExpired)},
		},
	})
	if err != nil && !isConditionalCheckFailed(err) {
		return err
	}
	return nil
}

func (r *SessionDynamoRepository) ClearByID(ctx context.Context, id string) error {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(sessionsIDIndex),
		KeyConditionExpression: aws.String("id = :id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberS{Value: id},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return err
	}
	if len(out.Items) == 0 {
		return nil
	}

	var it paymentSessionItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return err
	}

	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"reference": &types.AttributeValueMemberS{Value: it.Reference},
		},
		UpdateExpression: aws.String("SET #status = :cleared"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cleared": &types.AttributeValueMemberS{Value: string(entities.SessionStatusCleared)},
		},
	})
	return err
}

func isConditionalCheckFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	return errors.As(err, &ccf)
}

func toPaymentSessionItem(s entities.PaymentSession) paymentSessionItem {
	return paymentSessionItem{
		Reference:     s.Reference,
		ID:            s.ID,
		WalletAddress: s.WalletAddress,
		TokenSymbol:   string(s.TokenSymbol),
		FiatAmount:    s.FiatAmount,
		CryptoAmount:  s.CryptoAmount,
		Status:        string(s.Status),
		FailReason:    s.FailReason,
		CreatedAt:     s.CreatedAt,
		ExpiresAt:     s.ExpiresAt,
		VerifiedAt:    s.VerifiedAt,
		TTL:           s.ExpiresAt + sessionRetentionSeconds,
	}
}

func fromPaymentSessionItem(it paymentSessionItem) entities.PaymentSession {
	return entities.PaymentSession{
		Reference:     it.Reference,
		ID:            it.ID,
		WalletAddress: it.WalletAddress,
		TokenSymbol:   entities.TokenSymbol(it.TokenSymbol),
		FiatAmount:    it.FiatAmount,
		CryptoAmount:  it.CryptoAmount,
		Status:        entities.SessionStatus(it.Status),
		FailReason:    it.FailReason,
		CreatedAt:     it.CreatedAt,
		ExpiresAt:     it.ExpiresAt,
		VerifiedAt:    it.VerifiedAt,
	}
}
