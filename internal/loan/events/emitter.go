// Package events publishes loan outcome events to the downstream stream.
// Delivery is best-effort: one attempt per event, no retry, no ordering.
package events

import (
	"context"
	"encoding/json"
	"time"

	apperrors "loan-intake/internal/common/errors"
	"loan-intake/internal/common/logger"
	"loan-intake/internal/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
)

// Publisher hands one event to the stream transport.
type Publisher interface {
	Publish(ctx context.Context, event *models.LoanEvent) error
}

// SNSAPI is the subset of the SNS client used by the publisher.
type SNSAPI interface {
	Publish(ctx context.Context, input *sns.PublishInput) (*sns.PublishOutput, error)
}

type SNSPublisher struct {
	client   SNSAPI
	topicARN string
	timeout  time.Duration
	logger   logger.Logger
}

func NewSNSPublisher(client SNSAPI, topicARN string, timeout time.Duration, log logger.Logger) *SNSPublisher {
	return &SNSPublisher{
		client:   client,
		topicARN: topicARN,
		timeout:  timeout,
		logger:   log.WithFields(map[string]interface{}{"component": "events"}),
	}
}

func (p *SNSPublisher) Publish(ctx context.Context, event *models.LoanEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return apperrors.NewEventPublishFailedError(err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	_, err = p.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(p.topicARN),
		Message:  aws.String(string(data)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"status": {
				DataType:    aws.String("String"),
				StringValue: aws.String(event.Status),
			},
		},
	})
	if err != nil {
		return apperrors.NewEventPublishFailedError(err)
	}

	p.logger.Debug("loan event published", map[string]interface{}{
		"applicationId": event.ApplicationID,
		"status":        event.Status,
	})
	return nil
}

// NoopPublisher drops events. Used when the event stream is disabled, e.g.
// in local development without a topic.
type NoopPublisher struct {
	logger logger.Logger
}

func NewNoopPublisher(log logger.Logger) *NoopPublisher {
	return &NoopPublisher{logger: log}
}

func (p *NoopPublisher) Publish(_ context.Context, event *models.LoanEvent) error {
	p.logger.Debug("event stream disabled, dropping loan event", map[string]interface{}{
		"applicationId": event.ApplicationID,
	})
	return nil
}
