// Package mail sends courier-facing notification emails over SMTP.
// Delivery is best-effort: the decision workflow has already committed by the
// time a notification goes out, so failures are logged and dropped rather
// than surfaced.
package mail

import (
	"context"
	"log/slog"

	gomail "github.com/wneessen/go-mail"
)

const fromAddress = "noreply@ticbnpick.com"

// mailClient is the slice of go-mail used by the sender, extracted for tests.
type mailClient interface {
	DialAndSendWithContext(ctx context.Context, messages ...*gomail.Msg) error
}

// Sender delivers templated notification emails through an SMTP relay.
type Sender struct {
	client mailClient
	logger *slog.Logger
}

// NewSender creates an SMTP notification sender.
// Returns nil when no host is configured so callers can treat outbound mail
// as optional wiring.
func NewSender(logger *slog.Logger, host string, port int, username, password string) (*Sender, error) {
	if host == "" {
		return nil, nil
	}

	client, err := gomail.NewClient(host,
		gomail.WithPort(port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(username),
		gomail.WithPassword(password),
	)
	if err != nil {
		return nil, err
	}

	return &Sender{
		client: client,
		logger: logger.With("component", "mail_sender"),
	}, nil
}

// SendRegistrationReceived notifies a courier that their registration was
// received and awaits review.
func (s *Sender) SendRegistrationReceived(ctx context.Context, to string) {
	s.send(ctx, to,
		"TicBnPick - Inscription reçue",
		"Bonjour,\n\n"+
			"Votre demande d'inscription en tant que livreur a bien été reçue.\n\n"+
			"Votre compte est en attente de validation par notre équipe administrative.\n"+
			"Un email vous sera envoyé lorsque votre demande aura été examinée.\n\n"+
			"Cordialement,\n"+
			"L'équipe TicBnPick")
}

// SendAccountApproved notifies a courier that their registration was approved.
func (s *Sender) SendAccountApproved(ctx context.Context, to string) {
	s.send(ctx, to,
		"TicBnPick - Compte approuvé",
		"Bonjour,\n\n"+
			"Félicitations ! Votre compte livreur a été approuvé.\n\n"+
			"Vous pouvez maintenant vous connecter à l'application et commencer à effectuer des livraisons.\n\n"+
			"Cordialement,\n"+
			"L'équipe TicBnPick")
}

// SendAccountRejected notifies a courier that their registration was declined.
// The reason is included when non-empty.
func (s *Sender) SendAccountRejected(ctx context.Context, to string, reason string) {
	reasonText := ""
	if reason != "" {
		reasonText = "\nRaison : " + reason + "\n"
	}

	s.send(ctx, to,
		"TicBnPick - Demande d'inscription refusée",
		"Bonjour,\n\n"+
			"Nous avons le regret de vous informer que votre demande d'inscription "+
			"en tant que livreur n'a pas été approuvée.\n"+
			reasonText+
			"\nSi vous pensez qu'il s'agit d'une erreur, veuillez nous contacter.\n\n"+
			"Cordialement,\n"+
			"L'équipe TicBnPick")
}

// send builds and dispatches one plain-text message.
// A nil sender silently drops mail; delivery failures are logged, never returned.
func (s *Sender) send(ctx context.Context, to, subject, body string) {
	if s == nil {
		return
	}

	msg := gomail.NewMsg()
	if err := msg.From(fromAddress); err != nil {
		s.logger.ErrorContext(ctx, "failed to set mail sender address", "error", err)
		return
	}
	if err := msg.To(to); err != nil {
		s.logger.ErrorContext(ctx, "failed to set mail recipient", "to", to, "error", err)
		return
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		s.logger.ErrorContext(ctx, "failed to send email", "to", to, "subject", subject, "error", err)
		return
	}

	s.logger.InfoContext(ctx, "email sent", "to", to, "subject", subject)
}
