package services

import (
	"context"
	"encoding/json"
	"fmt"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
	"go.uber.org/zap"
)

// OrderNotifier is told about each successful order so the buyer can be
// emailed their order number. The notification is fire-and-forget; a
// notifier failure never fails the order.
type OrderNotifier interface {
	OrderConfirmed(ctx context.Context, email, orderNumber, productName string) error
}

// LogNotifier records the email/order pairing in the service log. This is
// the default: no mail is actually sent.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier { return &LogNotifier{} }

func (n *LogNotifier) OrderConfirmed(_ context.Context, email, orderNumber, productName string) error {
	zap.L().Info("Order confirmation sent",
		zap.String("email", email),
		zap.String("order_number", orderNumber),
		zap.String("product", productName),
	)
	return nil
}

// SNSNotifier publishes order confirmations to an SNS topic for a
// downstream mailer to pick up.
type SNSNotifier struct {
	client   *sns.Client
	topicARN string
}

func NewSNSNotifier(client *sns.Client, topicARN string) *SNSNotifier {
	return &SNSNotifier{client: client, topicARN: topicARN}
}

func (n *SNSNotifier) OrderConfirmed(ctx context.Context, email, orderNumber, productName string) error {
	payload := map[string]string{
		"event_type":   "order.confirmed",
		"email":        email,
		"order_number": orderNumber,
		"product":      productName,
	}
	msgBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	_, err = n.client.Publish(ctx, &sns.PublishInput{
		TopicArn: sdkaws.String(n.topicARN),
		Message:  sdkaws.String(string(msgBytes)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"event_type": {
				DataType:    sdkaws.String("String"),
				StringValue: sdkaws.String("order.confirmed"),
			},
		},
	})
	return err
}
