package mailer

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type smtpDispatcher struct {
	dialer *gomail.Dialer
	from   string
	logger *zap.Logger
}

func NewSMTPDispatcher(cfg SMTPConfig, logger ...*zap.Logger) Dispatcher {
	l := zap.L().Named("mailer.smtp")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("mailer.smtp")
	}
	return &smtpDispatcher{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
		logger: l,
	}
}

func (d *smtpDispatcher) SendOtp(ctx context.Context, to, fullName string, otp int) error {
	body := fmt.Sprintf(
		"<p>Halo %s,</p><p>Kode OTP untuk reset password kamu: <b>%06d</b></p><p>Kode berlaku 5 menit dan hanya bisa dipakai sekali.</p>",
		fullName, otp,
	)
	return d.send(ctx, to, "Reset Password OTP", body)
}

func (d *smtpDispatcher) SendWelcome(ctx context.Context, to, fullName string) error {
	body := fmt.Sprintf(
		"<p>Halo %s,</p><p>Akun booking ruangan kamu sudah aktif. Silakan login dengan email ini.</p>",
		fullName,
	)
	return d.send(ctx, to, "Selamat Datang", body)
}

func (d *smtpDispatcher) send(ctx context.Context, to, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", d.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := d.dialer.DialAndSend(msg); err != nil {
		d.logger.Error("send mail failed",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.Error(err),
		)
		return err
	}

	d.logger.Info("mail sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}
