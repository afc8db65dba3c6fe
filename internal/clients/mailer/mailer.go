package mailer

import (
	"context"
	"crypto/tls"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/fiadoapp/backend/internal/entity"
	"github.com/fiadoapp/backend/pkg/config"
)

const subject = "Notificación de tu cuenta"

// Client delivers notifications over SMTP for accounts without a WhatsApp
// number.
type Client struct {
	cfg    config.Mailer
	dialer *gomail.Dialer
}

func New(cfg config.Mailer) *Client {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Login, cfg.Password)

	dialer.TLSConfig = &tls.Config{
		ServerName: cfg.Host,
		MinVersion: tls.VersionTLS12,
	}

	return &Client{
		cfg:    cfg,
		dialer: dialer,
	}
}

func (c *Client) Send(_ context.Context, destination, body string) error {
	if c.cfg.Host == "" {
		return fmt.Errorf("%w: mailer is not configured", entity.ErrDelivery)
	}

	msg := gomail.NewMessage(
		gomail.SetCharset("UTF-8"),
		gomail.SetEncoding(gomail.Base64),
	)

	msg.SetAddressHeader("From", c.cfg.From, c.cfg.FromName)
	msg.SetHeader("To", destination)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	err := c.dialer.DialAndSend(msg)
	if err != nil {
		return fmt.Errorf("%w: %s", entity.ErrDelivery, err)
	}

	return nil
}
