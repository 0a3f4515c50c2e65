package mailer

import (
	"fmt"
	"time"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog/log"

	"github.com/mastrino/reflection/config"
	"github.com/mastrino/reflection/internal/dto"
)

// Mailer delivers the three questionnaire emails to the two configured
// recipients.
type Mailer interface {
	SendMilestone(kind Kind) error
	SendSubmission(report dto.CompiledSubmission, submittedAt time.Time) error
}

type resendMailer struct {
	client *resend.Client
	from   string
	to     []string
}

func NewMailer(cfg *config.Config) Mailer {
	return &resendMailer{
		client: resend.NewClient(cfg.Email.ResendAPIKey),
		from:   cfg.Email.From,
		to:     []string{cfg.Email.RecipientDad, cfg.Email.RecipientMom},
	}
}

func (m *resendMailer) SendMilestone(kind Kind) error {
	subject, err := MilestoneSubject(kind)
	if err != nil {
		return err
	}
	html, err := RenderMilestone(kind)
	if err != nil {
		return err
	}
	return m.send(subject, html)
}

func (m *resendMailer) SendSubmission(report dto.CompiledSubmission, submittedAt time.Time) error {
	html, err := RenderSubmission(report, submittedAt)
	if err != nil {
		return err
	}
	return m.send(SubmissionSubject, html)
}

func (m *resendMailer) send(subject, html string) error {
	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      m.to,
		Subject: subject,
		Html:    html,
	}
	sent, err := m.client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("resend dispatch failed: %w", err)
	}
	log.Info().Str("email_id", sent.Id).Str("subject", subject).Msg("Email dispatched")
	return nil
}
