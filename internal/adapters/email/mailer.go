package email

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/smithy-go"

	"launchpage/internal/domain"
)

// Supported mail providers.
const (
	ProviderSMTP   = "smtp"
	ProviderSES    = "ses"
	ProviderResend = "resend"
	ProviderNoop   = "noop"
)

// SMTPConfig holds configuration for an SMTP relay.
type SMTPConfig struct {
	Host     string
	Port     int
	Secure   bool // implicit TLS; otherwise STARTTLS is used when offered
	Username string
	Password string
	Timeout  time.Duration
}

// SESConfig holds configuration for AWS SES.
type SESConfig struct {
	Region             string
	AccessKeyID        string
	SecretAccessKey    string
	InsecureSkipVerify bool
}

// ResendConfig holds configuration for the Resend API.
type ResendConfig struct {
	APIKey string
}

// MailerConfig holds configuration for creating a mailer.
type MailerConfig struct {
	Provider string
	From     string        // display form, e.g. `"Kyro Launch" <launch@kyro.com>`
	Timeout  time.Duration // per send for API providers; SMTP uses SMTPConfig.Timeout
	SMTP     SMTPConfig
	SES      SESConfig
	Resend   ResendConfig
}

// NewMailer creates a mailer from config. Unknown providers fall back to a no-op mailer.
func NewMailer(logger *slog.Logger, config MailerConfig) (domain.Mailer, error) {
	switch strings.ToLower(config.Provider) {
	case ProviderSMTP, "":
		m, err := newSMTPMailer(logger, config.From, config.SMTP)
		if err != nil {
			return nil, err
		}
		return m, nil
	case ProviderSES:
		return newSESMailer(logger, config.From, config.Timeout, config.SES), nil
	case ProviderResend:
		if config.Resend.APIKey == "" {
			return nil, fmt.Errorf("resend provider requires an API key")
		}
		return newResendMailer(logger, config.From, config.Timeout, config.Resend.APIKey), nil
	case ProviderNoop:
		return &noopMailer{logger: logger}, nil
	default:
		logger.Warn("unknown email provider, using noop", "provider", config.Provider)
		return &noopMailer{logger: logger}, nil
	}
}

type sesMailer struct {
	logger         *slog.Logger
	client         *ses.Client
	from           string
	timeout        time.Duration
	hasCredentials bool
}

func newSESMailer(logger *slog.Logger, from string, timeout time.Duration, cfg SESConfig) *sesMailer {
	if cfg.InsecureSkipVerify {
		logger.Warn("TLS certificate verification is disabled for SES, use only in development")
	}
	httpClient := &http.Client{
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: cfg.InsecureSkipVerify,
				MinVersion:         tls.VersionTLS12,
			},
		},
	}
	awsCfg := aws.Config{
		Region: cfg.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
		HTTPClient: httpClient,
	}
	return &sesMailer{
		logger:         logger,
		client:         ses.NewFromConfig(awsCfg),
		from:           from,
		timeout:        sendTimeout(timeout),
		hasCredentials: cfg.AccessKeyID != "" && cfg.SecretAccessKey != "",
	}
}

func (s *sesMailer) Send(ctx context.Context, to, subject, html, text string) error {
	if !s.hasCredentials {
		return fmt.Errorf("%w: SES credentials are not configured", domain.ErrMailAuth)
	}
	input := &ses.SendEmailInput{
		Source: aws.String(s.from),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data:    aws.String(subject),
				Charset: aws.String("UTF-8"),
			},
			Body: &types.Body{},
		},
	}
	if html != "" {
		input.Message.Body.Html = &types.Content{
			Data:    aws.String(html),
			Charset: aws.String("UTF-8"),
		}
	}
	if text != "" {
		input.Message.Body.Text = &types.Content{
			Data:    aws.String(text),
			Charset: aws.String("UTF-8"),
		}
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	result, err := s.client.SendEmail(ctx, input)
	if err != nil {
		return classifySESError(err)
	}
	s.logger.Info("email sent via SES", "message_id", aws.ToString(result.MessageId), "to", to)
	return nil
}

func sendTimeout(d time.Duration) time.Duration {
	if d <= 0 {
		return defaultSMTPTimeout
	}
	return d
}

// SES error codes that mean the credentials or account setup are wrong.
var sesAuthErrorCodes = map[string]struct{}{
	"InvalidClientTokenId":          {},
	"SignatureDoesNotMatch":         {},
	"UnrecognizedClientException":   {},
	"MissingAuthenticationToken":    {},
	"AccessDenied":                  {},
	"AccessDeniedException":         {},
	"ExpiredToken":                  {},
	"AccountSendingPausedException": {},
}

func classifySESError(err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		if _, ok := sesAuthErrorCodes[apiErr.ErrorCode()]; ok {
			return fmt.Errorf("%w: SES %s: %w", domain.ErrMailAuth, apiErr.ErrorCode(), err)
		}
	}
	return fmt.Errorf("failed to send email via SES: %w", err)
}

type noopMailer struct {
	logger *slog.Logger
}

func (n *noopMailer) Send(_ context.Context, to, subject, _, _ string) error {
	n.logger.Info("email would be sent (noop)", "to", to, "subject", subject)
	return nil
}
