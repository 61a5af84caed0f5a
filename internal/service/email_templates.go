package service

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/cheickthiam/portfolio/internal/model"
)

const ownerName = "Cheick Ahmed Thiam"

var contactNotificationHTML = template.Must(template.New("notification").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background-color: #0a192f; color: #cca354; padding: 20px; text-align: center;">
      <h1>Nouveau Message de Contact</h1>
    </div>
    <div style="background-color: #f4f4f4; padding: 20px; margin-top: 20px;">
      <p><strong>De:</strong> {{.Name}}</p>
      <p><strong>Email:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
      <p><strong>Sujet:</strong> {{.Subject}}</p>
      <p><strong>Date:</strong> {{.Date}}</p>
      <p><strong>Message:</strong></p>
      <div style="white-space: pre-wrap; background-color: white; padding: 15px; border-left: 4px solid #cca354;">{{.Message}}</div>
    </div>
    <p style="margin-top: 20px; text-align: center; color: #888; font-size: 12px;">Ce message a été envoyé depuis votre portfolio</p>
  </div>
</body>
</html>`))

var autoReplyHTML = template.Must(template.New("auto_reply").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; line-height: 1.6; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 40px 20px;">
    <h1 style="color: #0a192f;">Merci pour votre message !</h1>
    <p>Bonjour {{.Name}},</p>
    <p>J'ai bien reçu votre message via mon formulaire de contact. Je vous remercie de l'intérêt que vous portez à mon profil.</p>
    <p>Je prendrai le temps de lire votre demande et je m'engage à vous répondre dans un délai de <strong>24 heures</strong>.</p>
    <p>Cordialement,<br><strong>{{.Owner}}</strong></p>
    <p style="margin-top: 30px; text-align: center; color: #888; font-size: 13px;">&copy; {{.Year}} {{.Owner}}. Tous droits réservés.</p>
  </div>
</body>
</html>`))

func contactNotificationTemplate(c *model.Contact) (subject, html, text string, err error) {
	date := c.CreatedAt.Format("02/01/2006 15:04")
	subject = fmt.Sprintf("Nouveau contact: %s", c.Subject)

	var buf bytes.Buffer
	err = contactNotificationHTML.Execute(&buf, map[string]string{
		"Name":    c.Name,
		"Email":   c.Email,
		"Subject": c.Subject,
		"Date":    date,
		"Message": c.Message,
	})
	if err != nil {
		return "", "", "", fmt.Errorf("render notification email: %w", err)
	}

	text = fmt.Sprintf(`Nouveau Message de Contact

De: %s
Email: %s
Sujet: %s
Date: %s

Message:
%s
`, c.Name, c.Email, c.Subject, date, c.Message)

	return subject, buf.String(), text, nil
}

func autoReplyTemplate(c *model.Contact) (subject, html, text string, err error) {
	subject = fmt.Sprintf("Réception de votre message - %s", ownerName)

	var buf bytes.Buffer
	err = autoReplyHTML.Execute(&buf, map[string]any{
		"Name":  c.Name,
		"Owner": ownerName,
		"Year":  time.Now().Year(),
	})
	if err != nil {
		return "", "", "", fmt.Errorf("render auto-reply email: %w", err)
	}

	text = fmt.Sprintf(`Bonjour %s,

J'ai bien reçu votre message et je vous en remercie.

Je m'engage à vous répondre dans un délai de 24 heures.

Cordialement,
%s
`, c.Name, ownerName)

	return subject, buf.String(), text, nil
}
