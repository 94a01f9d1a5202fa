package email

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"mime/quotedprintable"
	"net"
	"net/mail"
	"net/smtp"
	"net/textproto"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"launchpage/internal/domain"
)

const defaultSMTPTimeout = 10 * time.Second

// SMTP reply codes that signal an authentication or credential problem.
var smtpAuthReplyCodes = map[int]struct{}{
	530: {}, // authentication required
	534: {}, // mechanism too weak / app password required
	535: {}, // credentials invalid
	538: {}, // encryption required for mechanism
}

type smtpMailer struct {
	logger   *slog.Logger
	host     string
	port     int
	secure   bool
	username string
	password string
	timeout  time.Duration
	from     string
	envFrom  string
}

func newSMTPMailer(logger *slog.Logger, from string, cfg SMTPConfig) (*smtpMailer, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("smtp host is required")
	}
	if cfg.Port <= 0 {
		return nil, fmt.Errorf("invalid smtp port %d", cfg.Port)
	}
	addr, err := mail.ParseAddress(from)
	if err != nil {
		return nil, fmt.Errorf("invalid sender address %q: %w", from, err)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultSMTPTimeout
	}
	return &smtpMailer{
		logger:   logger.With("component", "mailer.smtp"),
		host:     cfg.Host,
		port:     cfg.Port,
		secure:   cfg.Secure,
		username: cfg.Username,
		password: cfg.Password,
		timeout:  timeout,
		from:     addr.String(),
		envFrom:  addr.Address,
	}, nil
}

func (m *smtpMailer) Send(ctx context.Context, to, subject, html, text string) error {
	msg, err := buildMessage(m.from, to, subject, html, text)
	if err != nil {
		return fmt.Errorf("build message: %w", err)
	}

	start := time.Now()
	log := m.logger.With("addr", m.addr(), "tls", m.secure, "to", to)

	if err := m.deliver(ctx, to, msg); err != nil {
		log.Error("smtp send failed", "error", err)
		return classifySMTPError(err)
	}
	log.Info("email sent", "elapsed", time.Since(start))
	return nil
}

func (m *smtpMailer) addr() string {
	return net.JoinHostPort(m.host, strconv.Itoa(m.port))
}

func (m *smtpMailer) deliver(ctx context.Context, to string, msg []byte) error {
	conn, err := m.dial(ctx)
	if err != nil {
		return err
	}
	deadline := time.Now().Add(m.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	_ = conn.SetDeadline(deadline)

	c, err := smtp.NewClient(conn, m.host)
	if err != nil {
		_ = conn.Close()
		return err
	}
	defer func() { _ = c.Close() }()

	if !m.secure {
		if ok, _ := c.Extension("STARTTLS"); ok {
			if err := c.StartTLS(&tls.Config{ServerName: m.host, MinVersion: tls.VersionTLS12}); err != nil {
				return fmt.Errorf("starttls: %w", err)
			}
		}
	}
	if m.username != "" {
		if ok, _ := c.Extension("AUTH"); !ok {
			return fmt.Errorf("%w: server %s does not offer AUTH", domain.ErrMailAuth, m.host)
		}
		if err := c.Auth(smtp.PlainAuth("", m.username, m.password, m.host)); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrMailAuth, err)
		}
	}
	if err := c.Mail(m.envFrom); err != nil {
		return fmt.Errorf("MAIL FROM: %w", err)
	}
	if err := c.Rcpt(to); err != nil {
		return fmt.Errorf("RCPT TO: %w", err)
	}
	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("DATA: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		return fmt.Errorf("write body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close body: %w", err)
	}
	return c.Quit()
}

func (m *smtpMailer) dial(ctx context.Context) (net.Conn, error) {
	dialer := &net.Dialer{Timeout: m.timeout}
	if m.secure {
		tlsDialer := &tls.Dialer{
			NetDialer: dialer,
			Config:    &tls.Config{ServerName: m.host, MinVersion: tls.VersionTLS12},
		}
		return tlsDialer.DialContext(ctx, "tcp", m.addr())
	}
	return dialer.DialContext(ctx, "tcp", m.addr())
}

// classifySMTPError tags reply codes that point at bad credentials with domain.ErrMailAuth.
func classifySMTPError(err error) error {
	if errors.Is(err, domain.ErrMailAuth) {
		return err
	}
	var tpErr *textproto.Error
	if errors.As(err, &tpErr) {
		if _, ok := smtpAuthReplyCodes[tpErr.Code]; ok {
			return fmt.Errorf("%w: %w", domain.ErrMailAuth, err)
		}
	}
	return fmt.Errorf("smtp send: %w", err)
}

// buildMessage renders an RFC 5322 message. When both bodies are present the
// result is multipart/alternative with the text part first.
func buildMessage(from, to, subject, html, text string) ([]byte, error) {
	var buf bytes.Buffer
	header := func(k, v string) { fmt.Fprintf(&buf, "%s: %s\r\n", k, v) }

	header("From", from)
	header("To", to)
	header("Subject", mime.QEncoding.Encode("utf-8", subject))
	header("Date", time.Now().Format(time.RFC1123Z))
	header("Message-ID", "<"+uuid.NewString()+"@"+domainOf(from)+">")
	header("MIME-Version", "1.0")

	switch {
	case html != "" && text != "":
		boundary := "alt-" + strings.ReplaceAll(uuid.NewString(), "-", "")
		header("Content-Type", `multipart/alternative; boundary="`+boundary+`"`)
		buf.WriteString("\r\n")
		for _, part := range []struct{ ctype, body string }{
			{"text/plain", text},
			{"text/html", html},
		} {
			fmt.Fprintf(&buf, "--%s\r\n", boundary)
			if err := writePart(&buf, part.ctype, part.body); err != nil {
				return nil, err
			}
		}
		fmt.Fprintf(&buf, "--%s--\r\n", boundary)
	case html != "":
		if err := writePart(&buf, "text/html", html); err != nil {
			return nil, err
		}
	default:
		if err := writePart(&buf, "text/plain", text); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func writePart(buf *bytes.Buffer, ctype, body string) error {
	fmt.Fprintf(buf, "Content-Type: %s; charset=utf-8\r\n", ctype)
	buf.WriteString("Content-Transfer-Encoding: quoted-printable\r\n\r\n")
	qp := quotedprintable.NewWriter(buf)
	if _, err := qp.Write([]byte(body)); err != nil {
		return err
	}
	if err := qp.Close(); err != nil {
		return err
	}
	buf.WriteString("\r\n")
	return nil
}

func domainOf(addr string) string {
	if a, err := mail.ParseAddress(addr); err == nil {
		addr = a.Address
	}
	if i := strings.LastIndex(addr, "@"); i >= 0 {
		return addr[i+1:]
	}
	return "localhost"
}
