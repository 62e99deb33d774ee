package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	apperrors "loan-intake/internal/common/errors"
	"loan-intake/internal/common/logger"
	"loan-intake/internal/models"

	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSNS struct {
	inputs []*sns.PublishInput
	err    error
}

func (f *fakeSNS) Publish(_ context.Context, input *sns.PublishInput) (*sns.PublishOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.inputs = append(f.inputs, input)
	return &sns.PublishOutput{}, nil
}

func createEvent() *models.LoanEvent {
	return &models.LoanEvent{
		ApplicationID: "app-1",
		ApplicantName: "Dana Whitfield",
		LoanAmount:    12000,
		Status:        models.StatusApproved,
		Timestamp:     "2026-08-30T10:00:00Z",
		Eligibility: models.Decision{
			Eligible:      true,
			InterestRate:  3.5,
			MaxLoanAmount: 350000,
			Reasoning:     "Application meets all criteria for approval",
		},
	}
}

func TestSNSPublisher_PublishesEventJSON(t *testing.T) {
	client := &fakeSNS{}
	publisher := NewSNSPublisher(client, "arn:aws:sns:us-east-1:123456789012:loan-applications", 2*time.Second, logger.NewTestLogger(t))
	event := createEvent()

	require.NoError(t, publisher.Publish(context.Background(), event))

	require.Len(t, client.inputs, 1)
	input := client.inputs[0]
	assert.Equal(t, "arn:aws:sns:us-east-1:123456789012:loan-applications", *input.TopicArn)

	var decoded models.LoanEvent
	require.NoError(t, json.Unmarshal([]byte(*input.Message), &decoded))
	assert.Equal(t, *event, decoded)

	attr, ok := input.MessageAttributes["status"]
	require.True(t, ok)
	assert.Equal(t, models.StatusApproved, *attr.StringValue)
}

func TestSNSPublisher_TransportFailure(t *testing.T) {
	client := &fakeSNS{err: errors.New("topic unreachable")}
	publisher := NewSNSPublisher(client, "arn:test", time.Second, logger.NewNoOpLogger())

	err := publisher.Publish(context.Background(), createEvent())

	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeEventPublishFailed))
}

func TestNoopPublisher_DropsEvents(t *testing.T) {
	publisher := NewNoopPublisher(logger.NewNoOpLogger())

	assert.NoError(t, publisher.Publish(context.Background(), createEvent()))
}
