// internal/core/ports/mailer.go
package ports

import "context"

// Email is a single outbound plain-text message.
type Email struct {
	To      []string
	CC      []string
	Subject string
	Body    string
}

// Mailer sends notification emails. Order submission depends on a synchronous
// send succeeding before anything is persisted.
type Mailer interface {
	Send(ctx context.Context, email Email) error
}
