package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"

	"github.com/blackboyfilms/studio-api/internal/entity"
)

const newLeadTemplate = `
<h2>Novo lead no site 🎬</h2>
<p><strong>Nome:</strong> {{.Name}}</p>
<p><strong>E-mail:</strong> {{.Email}}</p>
<p><strong>Telefone:</strong> {{.Phone}}</p>
<p><strong>Nicho:</strong> {{.Niche}}</p>
{{if .City}}<p><strong>Cidade:</strong> {{.City}}</p>{{end}}
<p><strong>Mensagem:</strong></p>
<blockquote>{{.Message}}</blockquote>
`

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	Inbox    string // caixa da equipe que recebe os avisos de lead
}

func NewEmailSender(host string, port int, user, password, from, inbox string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		Inbox:    inbox,
	}
}

func (s *EmailSender) NotifyNewLead(lead *entity.Lead) error {
	t, err := template.New("new_lead").Parse(newLeadTemplate)
	if err != nil {
		return fmt.Errorf("erro ao montar template de e-mail: %w", err)
	}

	data := struct {
		Name, Email, Phone, Niche, Message, City string
	}{
		Name:    lead.Name,
		Email:   lead.Email,
		Phone:   lead.Phone,
		Niche:   lead.Niche,
		Message: lead.Message,
	}
	if lead.City != nil {
		data.City = *lead.City
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("erro ao processar template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.Inbox)
	m.SetHeader("Subject", fmt.Sprintf("Novo lead: %s (%s)", lead.Name, lead.Niche))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar e-mail SMTP: %w", err)
	}

	return nil
}
