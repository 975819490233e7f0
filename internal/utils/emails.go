package utils

import (
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/jahangir2k04/fitflex-client/internal/models"
)

// Mailer sends transactional mail over SMTP. A Mailer with an empty
// username is disabled and drops messages silently, so local setups work
// without SMTP credentials.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	log    *zap.SugaredLogger
}

func NewMailer(host string, port int, username, password string, log *zap.SugaredLogger) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   username,
		log:    log,
	}
}

// SendReceipt emails the student a confirmation for a completed payment.
// Called from a goroutine after the payment workflow succeeds; a send
// failure is logged, never surfaced to the request.
func (m *Mailer) SendReceipt(payment models.Payment) {
	if m.from == "" {
		return
	}

	body := fmt.Sprintf(`
	<html>
	<body style="font-family: Arial, sans-serif; color: #333;">
		<h2>Payment received</h2>
		<p>Thanks for enrolling in <strong>%s</strong>!</p>
		<p>Amount: $%.2f<br>Transaction: %s<br>Date: %s</p>
		<p>See you in class.</p>
	</body>
	</html>`,
		payment.ClassName, payment.Price, payment.TransactionID,
		payment.Date.Format("Jan 2, 2006 3:04 PM"))

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", m.from)
	mailer.SetHeader("To", payment.StudentEmail)
	mailer.SetHeader("Subject", "FitFlex payment confirmation")
	mailer.SetBody("text/html", body)

	if err := m.dialer.DialAndSend(mailer); err != nil {
		m.log.Errorw("failed to send receipt email", "to", payment.StudentEmail, "error", err)
		return
	}

	m.log.Infow("receipt email sent", "to", payment.StudentEmail)
}
