package ledger

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/clubops/club-manager/pkg/model"
	amqp "github.com/rabbitmq/amqp091-go"
)

const reimbursementQueue = "reimbursement-requests"

// NewReimbursementPublisher connects to RabbitMQ and declares the durable
// queue the payment side consumes from.
func NewReimbursementPublisher(url string) (*ReimbursementPublisher, error) {
	connection, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %v", err)
	}

	channel, err := connection.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel: %v", err)
	}

	_, err = channel.QueueDeclare(reimbursementQueue, true, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to declare queue %q: %v", reimbursementQueue, err)
	}

	return &ReimbursementPublisher{connection: connection, channel: channel}, nil
}

type ReimbursementPublisher struct {
	connection *amqp.Connection
	channel    *amqp.Channel
}

type reimbursementRequest struct {
	EventID     uint    `json:"eventId"`
	ExpenseID   uint    `json:"expenseId"`
	Amount      float64 `json:"amount"`
	SubmittedBy string  `json:"submittedBy"`
	Description string  `json:"description"`
}

// Publish hands an approved expense to the payment collaborator. No money
// moves here.
func (p *ReimbursementPublisher) Publish(ctx context.Context, expense model.Expense) error {
	body, err := json.Marshal(reimbursementRequest{
		EventID:     expense.EventID,
		ExpenseID:   expense.ID,
		Amount:      expense.Amount,
		SubmittedBy: expense.SubmittedBy,
		Description: expense.Description,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal reimbursement request: %v", err)
	}

	return p.channel.PublishWithContext(ctx, "", reimbursementQueue, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
}

func (p *ReimbursementPublisher) Close() error {
	if err := p.channel.Close(); err != nil {
		return err
	}
	return p.connection.Close()
}
