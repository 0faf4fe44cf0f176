package utils

import (
	"strconv"

	"gopkg.in/gomail.v2"
)

func SendEmail(to, subject, body, smtpHost, smtpPort, smtpUser, smtpPass string) error {
	return sendMail(to, subject, "text/plain", body, smtpHost, smtpPort, smtpUser, smtpPass)
}

// SendHTMLEmail is used for newsletter sends, where the body carries markup.
func SendHTMLEmail(to, subject, body, smtpHost, smtpPort, smtpUser, smtpPass string) error {
	return sendMail(to, subject, "text/html", body, smtpHost, smtpPort, smtpUser, smtpPass)
}

func sendMail(to, subject, contentType, body, smtpHost, smtpPort, smtpUser, smtpPass string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", smtpUser)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody(contentType, body)

	port, err := strconv.Atoi(smtpPort)
	if err != nil || port <= 0 {
		port = 587
	}
	d := gomail.NewDialer(smtpHost, port, smtpUser, smtpPass)
	return d.DialAndSend(m)
}
