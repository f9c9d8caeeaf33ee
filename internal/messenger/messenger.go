package messenger

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/sqs"
	"go.uber.org/zap"
	"github.com/tokenmart/market-ledger/internal/config"
)

type MessageService interface {
	SendMessage(item Item, body []byte) error
	PollMessages(item Item, messages chan *sqs.Message)
	DeleteMessage(item Item, msg *sqs.Message) error
}

type Messenger struct {
	sqsClient *sqs.SQS
}

type Item string

var (
	MetadataRefresh Item = "metadata.refresh"
)

// Msg is the payload shipped on every queue item.
type Msg struct {
	ItemId uint64 `json:"itemId"`
}

func (i Item) queue() string {
	return fmt.Sprintf("%s%s.%s", config.Get().Aws.QueuePrefix, config.Get().Index, i)
}

func NewMessenger(sqsClient *sqs.SQS) MessageService {
	return &Messenger{sqsClient: sqsClient}
}

func (m Messenger) SendMessage(item Item, body []byte) error {
	queueUrl, err := m.getQueueUrl(item)
	if err != nil {
		return err
	}

	_, err = m.sqsClient.SendMessage(&sqs.SendMessageInput{
		MessageBody: aws.String(string(body)),
		QueueUrl:    queueUrl,
	})
	if err != nil {
		zap.L().With(zap.Error(err), zap.String("queue", item.queue())).Error("[Queue] Failed to send message")
		return err
	}

	zap.L().With(zap.String("queue", item.queue())).Info("[Queue] Published message")

	return nil
}

func (m Messenger) PollMessages(item Item, messages chan *sqs.Message) {
	queueUrl, err := m.getQueueUrl(item)
	if err != nil {
		zap.L().With(zap.Error(err), zap.String("queue", item.queue())).Fatal("[Queue] Failed to resolve queue")
	}

	for {
		output, err := m.sqsClient.ReceiveMessage(&sqs.ReceiveMessageInput{
			QueueUrl:            queueUrl,
			MaxNumberOfMessages: aws.Int64(10),
			WaitTimeSeconds:     aws.Int64(15),
		})
		if err != nil {
			zap.L().With(zap.Error(err), zap.String("queue", item.queue())).Error("[Queue] Failed to receive messages")
			continue
		}

		for _, message := range output.Messages {
			messages <- message
		}
	}
}

func (m Messenger) DeleteMessage(item Item, msg *sqs.Message) error {
	queueUrl, err := m.getQueueUrl(item)
	if err != nil {
		return err
	}

	_, err = m.sqsClient.DeleteMessage(&sqs.DeleteMessageInput{
		QueueUrl:      queueUrl,
		ReceiptHandle: msg.ReceiptHandle,
	})

	return err
}

func (m Messenger) getQueueUrl(item Item) (*string, error) {
	result, err := m.sqsClient.GetQueueUrl(&sqs.GetQueueUrlInput{
		QueueName: aws.String(item.queue()),
	})
	if err != nil {
		zap.L().With(zap.Error(err), zap.String("queue", item.queue())).Error("[Queue] Failed to get queue url")
		return nil, err
	}

	return result.QueueUrl, nil
}
