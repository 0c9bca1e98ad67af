package dispatch

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	log "github.com/sirupsen/logrus"
)

var (
	ErrQueueNotFound = fmt.Errorf("notification queue not found")
)

// SQSAPI is the part of the sqs client the dispatcher uses
type SQSAPI interface {
	GetQueueUrl(ctx context.Context, params *sqs.GetQueueUrlInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error)
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SQSDispatcher enqueues notifications into an SQS queue for the delivery workers
type SQSDispatcher struct {
	client   SQSAPI
	queueURL string
}

// NewSQSDispatcher resolves the queue url once
func NewSQSDispatcher(ctx context.Context, client SQSAPI, queueName string) (*SQSDispatcher, error) {
	resp, err := client.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{QueueName: aws.String(queueName)})
	if err != nil {
		return nil, fmt.Errorf("get queue url of %s: %w", queueName, err)
	}
	if resp.QueueUrl == nil {
		return nil, ErrQueueNotFound
	}

	return &SQSDispatcher{
		client:   client,
		queueURL: *resp.QueueUrl,
	}, nil
}

func (d *SQSDispatcher) Dispatch(ctx context.Context, n Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return err
	}

	resp, err := d.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(d.queueURL),
		MessageBody: aws.String(string(body)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"channel": {DataType: aws.String("String"), StringValue: aws.String(string(n.Channel))},
			"kind":    {DataType: aws.String("String"), StringValue: aws.String(string(n.Kind))},
		},
	})
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":          dispatchLogPrefix,
			"notification_id": n.ID,
			"monitoree_id":    n.MonitoreeID,
			"error":           err,
		}).Error("enqueue notification")
		return err
	}

	log.WithFields(log.Fields{
		"prefix":          dispatchLogPrefix,
		"notification_id": n.ID,
		"message_id":      aws.ToString(resp.MessageId),
		"channel":         n.Channel,
	}).Info("notification enqueued")
	return nil
}
