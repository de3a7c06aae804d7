package mailing

import (
	"fmt"
	"strconv"

	"DTCL-Backend/internal/utils"

	"gopkg.in/gomail.v2"
)

type MailConfig struct {
	AppURL       string
	SMTPHost     string
	SMTPPort     string
	SMTPSender   string
	SMTPEmail    string
	SMTPPassword string
}

func LoadMailConfig() MailConfig {
	return MailConfig{
		AppURL:       utils.GetConfig("APP_URL"),
		SMTPHost:     utils.GetConfig("SMTP_HOST"),
		SMTPPort:     utils.GetConfig("SMTP_PORT"),
		SMTPSender:   utils.GetConfig("SMTP_SENDER_NAME"),
		SMTPEmail:    utils.GetConfig("SMTP_AUTH_EMAIL"),
		SMTPPassword: utils.GetConfig("SMTP_AUTH_PASSWORD"),
	}
}

func SendMail(toEmail string, subject string, body string) error {
	emailConfig := LoadMailConfig()

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", emailConfig.SMTPEmail)
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)
	port, err := strconv.Atoi(emailConfig.SMTPPort)
	if err != nil {
		return err
	}
	dialer := gomail.NewDialer(
		emailConfig.SMTPHost,
		port,
		emailConfig.SMTPEmail,
		emailConfig.SMTPPassword,
	)

	err = dialer.DialAndSend(mailer)
	if err != nil {
		return err
	}

	return nil
}

// VerificationEmailBody renders the OTP email sent on register and resend.
func VerificationEmailBody(name string, code string, expiryMinutes int) string {
	return fmt.Sprintf(`
	<div style="font-family: Arial, sans-serif; max-width: 480px; margin: 0 auto;">
		<h2>Xin chào %s,</h2>
		<p>Mã xác thực tài khoản của bạn là:</p>
		<p style="font-size: 28px; font-weight: bold; letter-spacing: 6px;">%s</p>
		<p>Mã có hiệu lực trong %d phút. Nếu bạn không yêu cầu mã này, vui lòng bỏ qua email.</p>
	</div>`, name, code, expiryMinutes)
}
