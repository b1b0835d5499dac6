package email

import (
	"context"
	"errors"
	"time"

	"go-onboarding/internal/config"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

type Message struct {
	To       string
	Subject  string
	HTMLBody string
}

//go:generate mockgen -source=sender.go -destination=mock/sender_mock.go -package=mock
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

type smtpSender struct {
	client   *mail.Client
	from     string
	fromName string
}

// NewSMTPSender membuat client SMTP. Koneksi baru dibuka saat Send.
func NewSMTPSender(cfg config.EmailConfig) (Sender, error) {
	if cfg.Host == "" {
		return nil, errors.New("email host is required")
	}

	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(15 * time.Second),
	}
	if cfg.User != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.User),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, err
	}

	return &smtpSender{client: client, from: cfg.From, fromName: cfg.FromName}, nil
}

func (s *smtpSender) Send(ctx context.Context, msg Message) error {
	m, err := buildMessage(s.from, s.fromName, msg)
	if err != nil {
		return err
	}
	return s.client.DialAndSendWithContext(ctx, m)
}

func buildMessage(from, fromName string, msg Message) (*mail.Msg, error) {
	m := mail.NewMsg()
	if fromName != "" {
		if err := m.FromFormat(fromName, from); err != nil {
			return nil, err
		}
	} else if err := m.From(from); err != nil {
		return nil, err
	}
	if err := m.To(msg.To); err != nil {
		return nil, err
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextHTML, msg.HTMLBody)
	return m, nil
}

// logSender dipakai ketika SMTP tidak dikonfigurasi (development).
type logSender struct {
	logger *zap.Logger
}

func NewLogSender(logger *zap.Logger) Sender {
	return &logSender{logger: logger.Named("email.log_sender")}
}

func (s *logSender) Send(_ context.Context, msg Message) error {
	s.logger.Info("email not sent, smtp disabled",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
	)
	return nil
}
