package repository

import (
	"context"

	"bucketvault/internal/domain/entities"
	"bucketvault/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultAttemptsTableName = "deposit_attempts"
	attemptsIDIndex          = "id-index"
)

type manualInstructionsItem struct {
	ContractAddress  string           `dynamodbav:"contract_address"`
	Method           string           `dynamodbav:"method"`
	Amount           int64            `dynamodbav:"amount"`
	Weights          []int            `dynamodbav:"weights"`
	ExpectedBalances map[string]int64 `dynamodbav:"expected_balances"`
}

type depositAttemptItem struct {
	SessionID     string                  `dynamodbav:"session_id"`
	ID            string                  `dynamodbav:"id"`
	Reference     string                  `dynamodbav:"reference"`
	WalletAddress string                  `dynamodbav:"wallet_address"`
	TokenSymbol   string                  `dynamodbav:"token_symbol"`
	Amount        int64                   `dynamodbav:"amount"`
	Mode          string                  `dynamodbav:"mode"`
	Status        string                  `dynamodbav:"status"`
	BucketCredits map[string]int64        `dynamodbav:"bucket_credits"`
	Weights       map[string]int          `dynamodbav:"weights"`
	FailureReason string                  `dynamodbav:"failure_reason,omitempty"`
	TxHash        string                  `dynamodbav:"tx_hash,omitempty"`
	Manual        *manualInstructionsItem `dynamodbav:"manual,omitempty"`
	CreatedAt     int64                   `dynamodbav:"created_at"`
	UpdatedAt     int64                   `dynamodbav:"updated_at"`
}

// AttemptDynamoRepository persists DepositSplitAttempt entities in DynamoDB.
//
// Table requirements:
//   - PK: session_id (string). One attempt per session; the conditional
//     create is what makes Execute idempotent under races
//   - GSI: id-index (PK: id)

type AttemptDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDepositAttemptRepository = (*AttemptDynamoRepository)(nil)

func NewAttemptDynamoRepository(ddb *dynamodb.Client) *AttemptDynamoRepository {
	return &AttemptDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ATTEMPTS_TABLE", defaultAttemptsTableName),
	}
}

func (r *AttemptDynamoRepository) Create(ctx context.Context, a entities.DepositSplitAttempt) (entities.DepositSplitAttempt, error) {
	av, err := attributevalue.MarshalMap(toDepositAttemptItem(a))
	if err != nil {
		return entities.DepositSplitAttempt{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#sid)"),
		ExpressionAttributeNames: map[string]string{
			"#sid": "session_id",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.DepositSplitAttempt{}, interfaces.ErrAttemptExists
		}
		return entities.DepositSplitAttempt{}, err
	}
	return a, nil
}

func (r *AttemptDynamoRepository) GetBySessionID(ctx context.Context, sessionID string) (entities.DepositSplitAttempt, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"session_id": &types.AttributeValueMemberS{Value: sessionID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.DepositSplitAttempt{}, err
	}
	if len(out.Item) == 0 {
		return entities.DepositSplitAttempt{}, nil
	}

	var it depositAttemptItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.DepositSplitAttempt{}, err
	}
	return fromDepositAttemptItem(it), nil
}

func (r *AttemptDynamoRepository) GetByID(ctx context.Context, id string) (entities.DepositSplitAttempt, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(attemptsIDIndex),
		KeyConditionExpression: aws.String("id = :id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberS{Value: id},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.DepositSplitAttempt{}, err
	}
	if len(out.Items) == 0 {
		return entities.DepositSplitAttempt{}, nil
	}

	var it depositAttemptItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.DepositSplitAttempt{}, err
	}
	return fromDepositAttemptItem(it), nil
}

func (r *AttemptDynamoRepository) Save(ctx context.Context, a entities.DepositSplitAttempt) (entities.DepositSplitAttempt, error) {
	av, err := attributevalue.MarshalMap(toDepositAttemptItem(a))
	if err != nil {
		return entities.DepositSplitAttempt{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.DepositSplitAttempt{}, err
	}
	return a, nil
}

func (r *AttemptDynamoRepository) TransitionStatus(ctx context.Context, id string, from, to entities.AttemptStatus, txHash string, updatedAt int64) (entities.DepositSplitAttempt, error) {
	a, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.DepositSplitAttempt{}, err
	}
	if a.ID == "" {
		return entities.DepositSplitAttempt{}, interfaces.ErrNotFound
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"session_id": &types.AttributeValueMemberS{Value: a.SessionID},
		},
		ConditionExpression: aws.String("#status = :from"),
		UpdateExpression:    aws.String("SET #status = :to, tx_hash = :tx, updated_at = :ua"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from": &types.AttributeValueMemberS{Value: string(from)},
			":to":   &types.AttributeValueMemberS{Value: string(to)},
			":tx":   &types.AttributeValueMemberS{Value: txHash},
			":ua":   &types.AttributeValueMemberN{Value: formatInt(updatedAt)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.DepositSplitAttempt{}, interfaces.ErrNotInStatus
		}
		return entities.DepositSplitAttempt{}, err
	}

	var it depositAttemptItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.DepositSplitAttempt{}, err
	}
	return fromDepositAttemptItem(it), nil
}

func toDepositAttemptItem(a entities.DepositSplitAttempt) depositAttemptItem {
	it := depositAttemptItem{
		SessionID:     a.SessionID,
		ID:            a.ID,
		Reference:     a.Reference,
		WalletAddress: a.WalletAddress,
		TokenSymbol:   string(a.TokenSymbol),
		Amount:        a.Amount,
		Mode:          string(a.Mode),
		Status:        string(a.Status),
		BucketCredits: creditsToItem(a.BucketCredits),
		Weights:       weightsToItem(a.Weights),
		FailureReason: string(a.FailureReason),
		TxHash:        a.TxHash,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
	if a.Manual != nil {
		it.Manual = &manualInstructionsItem{
			ContractAddress:  a.Manual.ContractAddress,
			Method:           a.Manual.Method,
			Amount:           a.Manual.Amount,
			Weights:          a.Manual.Weights,
			ExpectedBalances: creditsToItem(a.Manual.ExpectedBalances),
		}
	}
	return it
}

func fromDepositAttemptItem(it depositAttemptItem) entities.DepositSplitAttempt {
	a := entities.DepositSplitAttempt{
		SessionID:     it.SessionID,
		ID:            it.ID,
		Reference:     it.Reference,
		WalletAddress: it.WalletAddress,
		TokenSymbol:   entities.TokenSymbol(it.TokenSymbol),
		Amount:        it.Amount,
		Mode:          entities.AttemptMode(it.Mode),
		Status:        entities.AttemptStatus(it.Status),
		BucketCredits: creditsFromItem(it.BucketCredits),
		Weights:       weightsFromItem(it.Weights),
		FailureReason: entities.FailureReason(it.FailureReason),
		TxHash:        it.TxHash,
		CreatedAt:     it.CreatedAt,
		UpdatedAt:     it.UpdatedAt,
	}
	if it.Manual != nil {
		a.Manual = &entities.ManualInstructions{
			ContractAddress:  it.Manual.ContractAddress,
			Method:           it.Manual.Method,
			Amount:           it.Manual.Amount,
			Weights:          it.Manual.Weights,
			ExpectedBalances: creditsFromItem(it.Manual.ExpectedBalances),
		}
	}
	return a
}

func creditsToItem(c entities.BucketCredits) map[string]int64 {
	if c == nil {
		return nil
	}
	out := make(map[string]int64, len(c))
	for b, v := range c {
		out[string(b)] = v
	}
	return out
}

func creditsFromItem(m map[string]int64) entities.BucketCredits {
	if m == nil {
		return nil
	}
	out := make(entities.BucketCredits, len(m))
	for b, v := range m {
		out[entities.Bucket(b)] = v
	}
	return out
}

func weightsToItem(w entities.BucketWeights) map[string]int {
	if w == nil {
		return nil
	}
	out := make(map[string]int, len(w))
	for b, v := range w {
		out[string(b)] = v
	}
	return out
}

func weightsFromItem(m map[string]int) entities.BucketWeights {
	if m == nil {
		return nil
	}
	out := make(entities.BucketWeights, len(m))
	for b, v := range m {
		out[entities.Bucket(b)] = v
	}
	return out
}
