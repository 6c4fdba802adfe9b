package mailservice

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"golang.org/x/exp/rand"

	"github.com/sushihentaime/postly/internal/common"
)

const (
	defaultMaxRetries = 5
	defaultBaseDelay  = 500 * time.Millisecond
)

func NewMailService(mb common.MessageConsumer, host, username, password, sender string, port int, logger *slog.Logger) *MailService {
	return newMailService(mb, NewMailer(host, port, username, password, sender, NewTemplate()), logger)
}

func newMailService(mb common.MessageConsumer, m Mailer, logger MailLogger) *MailService {
	ctx, cancel := context.WithCancel(context.Background())
	return &MailService{
		mb:         mb,
		m:          m,
		logger:     logger,
		ctx:        ctx,
		cancel:     cancel,
		maxRetries: defaultMaxRetries,
		baseDelay:  defaultBaseDelay,
	}
}

// SendWelcomeEmails consumes user.created events and mails every new user in the background
// until Close is called.
func (s *MailService) SendWelcomeEmails() error {
	msgs, err := s.mb.Consume(common.UserCreatedKey, common.UserExchange, common.UserWelcomeQueue)
	if err != nil {
		return err
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		for {
			select {
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				s.handle(msg)

			case <-s.ctx.Done():
				s.logger.Info("stopping welcome email consumer")
				return
			}
		}
	}()

	return nil
}

func (s *MailService) handle(msg amqp.Delivery) {
	var ev common.UserCreatedEvent
	if err := json.Unmarshal(msg.Body, &ev); err != nil {
		s.logger.Error("could not unmarshal message", slog.String("error", err.Error()))
		msg.Nack(false, false)
		return
	}

	data := welcomeData{Name: ev.Name, Username: ev.Username}
	if data.Name == "" {
		data.Name = ev.Username
	}

	// exponential backoff with jitter
	for attempt := 0; attempt < s.maxRetries; attempt++ {
		err := s.m.send(ev.Username, data, welcomeTemplate)
		if err == nil {
			s.logger.Info("welcome email sent", slog.String("email", ev.Username))
			msg.Ack(false)
			return
		}

		delay := time.Duration(rand.Int63n(int64(s.baseDelay) << uint(attempt)))
		s.logger.Info("delaying welcome email", slog.String("email", ev.Username), slog.Int("attempt", attempt), slog.Duration("delay", delay))

		select {
		case <-time.After(delay):
		case <-s.ctx.Done():
			msg.Nack(false, true)
			return
		}
	}

	s.logger.Error("could not send welcome email", slog.String("email", ev.Username))
	msg.Ack(false)
}

// Close stops the consumer and waits for the in-flight message to finish.
func (s *MailService) Close() {
	s.cancel()
	s.wg.Wait()
}
