package rabbitmq

import (
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	USER_CREATED_QUEUE      = "user.created"
	USER_INFO_UPDATED_QUEUE = "user.info_updated"
	USER_DELETED_QUEUE      = "user.deleted"
)

var queues = []string{
	USER_CREATED_QUEUE,
	USER_INFO_UPDATED_QUEUE,
	USER_DELETED_QUEUE,
}

type MQConn struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

func New(connString string) (*MQConn, error) {
	conn, err := amqp.Dial(connString)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	for _, queue := range queues {
		if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
			ch.Close()
			conn.Close()
			return nil, err
		}
	}

	return &MQConn{
		conn: conn,
		ch:   ch,
	}, nil
}

func (m *MQConn) Consume(queue string) (<-chan amqp.Delivery, error) {
	return m.ch.Consume(queue, "", false, false, false, false, nil)
}

func (m *MQConn) Close() error {
	if err := m.ch.Close(); err != nil {
		return err
	}

	return m.conn.Close()
}
