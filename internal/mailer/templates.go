package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/mastrino/reflection/internal/dto"
)

// Kind identifies a milestone email.
type Kind string

const (
	KindStarted Kind = "started"
	KindHalfway Kind = "halfway"
)

// milestonePayload is the typed input for the start/halfway templates.
type milestonePayload struct {
	Heading      string
	HeadingColor string
	Body         string
	Footer       string
}

// submissionPayload is the typed input for the final-report template.
type submissionPayload struct {
	Sections       []dto.CompiledSection
	AnsweredCount  int
	TotalQuestions int
	SubmittedDate  string
	SubmittedTime  string
}

var milestoneTmpl = template.Must(template.New("milestone").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 40px 20px;"><div style="text-align: center; margin-bottom: 30px;"><h1 style="color: #D4AF37; font-size: 24px; letter-spacing: 4px; margin: 0;">DREW MASTRINO</h1><p style="color: #888; font-size: 12px; letter-spacing: 2px; margin-top: 8px;">DECISION REFLECTION</p></div><div style="background: #1a1a1a; border-radius: 12px; padding: 30px; color: #fff;"><h2 style="color: {{.HeadingColor}}; margin-top: 0;">{{.Heading}}</h2><p style="color: #ccc; line-height: 1.7;">{{.Body}}</p><p style="color: #888; font-size: 14px; margin-top: 20px;">{{.Footer}}</p></div><p style="text-align: center; color: #444; font-size: 12px; margin-top: 30px; letter-spacing: 2px;">SEMPER FIDELIS</p></div>`))

var submissionTmpl = template.Must(template.New("submission").Parse(`<div style="font-family: Arial, sans-serif; max-width: 700px; margin: 0 auto; padding: 40px 20px; background: #0a0a0a;"><div style="text-align: center; margin-bottom: 40px;"><h1 style="color: #D4AF37; font-size: 28px; letter-spacing: 6px; margin: 0;">DREW MASTRINO</h1><p style="color: #888; font-size: 12px; letter-spacing: 3px; margin-top: 8px;">DECISION REFLECTION</p><div style="width: 60px; height: 3px; background: linear-gradient(90deg, transparent, #CD1126, transparent); margin: 20px auto;"></div></div><div style="background: #1a1a1a; border-radius: 12px; padding: 30px; color: #fff; margin-bottom: 30px;"><h2 style="color: #4CAF50; margin-top: 0; text-align: center;">✓ Drew has submitted his answers</h2><p style="color: #ccc; line-height: 1.7; text-align: center;">Drew completed <strong>{{.AnsweredCount}}</strong> of <strong>{{.TotalQuestions}}</strong> questions.</p><p style="color: #888; font-size: 14px; text-align: center;">Submitted on {{.SubmittedDate}} at {{.SubmittedTime}}</p></div><div style="background: #1a1a1a; border-radius: 12px; padding: 30px; color: #fff;">{{range .Sections}}<div style="margin-bottom: 30px;"><h3 style="color: #D4AF37; border-bottom: 2px solid #333; padding-bottom: 10px; margin-bottom: 20px;">{{.Icon}} {{.Section}}</h3>{{range .Questions}}<div style="margin-bottom: 24px;"><p style="color: #CD1126; font-size: 12px; letter-spacing: 1px; margin-bottom: 8px;">Q{{.Number}}</p><p style="color: #ccc; font-size: 14px; margin-bottom: 12px;">{{.Question}}</p><div style="background: rgba(0,0,0,0.3); border-left: 3px solid #D4AF37; padding: 16px; border-radius: 4px;"><p style="color: #fff; font-size: 15px; line-height: 1.7; margin: 0; white-space: pre-wrap;">{{.Answer}}</p></div></div>{{end}}</div>{{end}}</div><p style="text-align: center; color: #444; font-size: 12px; margin-top: 40px; letter-spacing: 3px;">SEMPER FIDELIS - ALWAYS FAITHFUL</p></div>`))

// MilestoneSubject returns the subject line for a milestone kind.
func MilestoneSubject(kind Kind) (string, error) {
	switch kind {
	case KindStarted:
		return "Drew has started his Decision Reflection", nil
	case KindHalfway:
		return "Drew is 50% through his Decision Reflection", nil
	default:
		return "", fmt.Errorf("unknown milestone kind %q", kind)
	}
}

// SubmissionSubject is the subject line of the final report email.
const SubmissionSubject = "Drew's Decision Reflection - Complete Answers"

// RenderMilestone produces the HTML body for a milestone email.
func RenderMilestone(kind Kind) (string, error) {
	var payload milestonePayload
	switch kind {
	case KindStarted:
		payload = milestonePayload{
			Heading:      "Drew has begun",
			HeadingColor: "#CD1126",
			Body:         "Drew has started working on his questionnaire. He is taking the time to think through this decision carefully.",
			Footer:       "You will receive another update when he reaches 50% completion, and again when he submits his final answers.",
		}
	case KindHalfway:
		payload = milestonePayload{
			Heading:      "Halfway there",
			HeadingColor: "#D4AF37",
			Body:         "Drew has completed 50% of his questionnaire. He is putting real thought into this.",
			Footer:       "You will receive his complete answers when he is ready to share them with you.",
		}
	default:
		return "", fmt.Errorf("unknown milestone kind %q", kind)
	}

	var buf bytes.Buffer
	if err := milestoneTmpl.Execute(&buf, payload); err != nil {
		return "", fmt.Errorf("rendering milestone email: %w", err)
	}
	return buf.String(), nil
}

// RenderSubmission produces the HTML body of the final report.
func RenderSubmission(report dto.CompiledSubmission, submittedAt time.Time) (string, error) {
	payload := submissionPayload{
		Sections:       report.Sections,
		AnsweredCount:  report.AnsweredCount,
		TotalQuestions: report.TotalQuestions,
		SubmittedDate:  submittedAt.Format("Monday, January 2, 2006"),
		SubmittedTime:  submittedAt.Format("3:04:05 PM"),
	}

	var buf bytes.Buffer
	if err := submissionTmpl.Execute(&buf, payload); err != nil {
		return "", fmt.Errorf("rendering submission email: %w", err)
	}
	return buf.String(), nil
}
