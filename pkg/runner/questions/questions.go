// Package questions runs the question registry commands.
package questions

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/meditary/pkg/app"
	"tableflip.dev/meditary/pkg/printers"
	"tableflip.dev/meditary/pkg/question"
)

var errNoService = errors.New("questions: no service")

type List struct {
	Service *app.Service
	Printer printers.PrettyPrint
}

func (n *List) Do(_ context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	all := n.Service.Questions()
	n.Printer.TitleWithCount("Questions", len(all), "question", "questions")
	n.Printer.Questions(all...)
	return nil
}

// Add appends a custom question. The secondary text defaults to the primary
// one.
type Add struct {
	Service   *app.Service
	Printer   printers.PrettyPrint
	Primary   string
	Secondary string
	Kind      string
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	kind, err := question.ParseKind(n.Kind)
	if err != nil {
		return err
	}
	secondary := n.Secondary
	if strings.TrimSpace(secondary) == "" {
		secondary = n.Primary
	}
	if _, err := n.Service.AddQuestion(ctx, n.Primary, secondary, kind); err != nil {
		return err
	}
	return (&List{Service: n.Service, Printer: n.Printer}).Do(ctx)
}

// Edit changes the fields that were set.
type Edit struct {
	Service   *app.Service
	Printer   printers.PrettyPrint
	ID        string
	Primary   *string
	Secondary *string
	Kind      *string
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	p := question.Patch{TextPrimary: n.Primary, TextSecondary: n.Secondary}
	if n.Kind != nil {
		kind, err := question.ParseKind(*n.Kind)
		if err != nil {
			return err
		}
		p.Kind = &kind
	}
	if _, err := n.Service.UpdateQuestion(ctx, n.ID, p); err != nil {
		return err
	}
	return (&List{Service: n.Service, Printer: n.Printer}).Do(ctx)
}

type Delete struct {
	Service *app.Service
	ID      string
}

func (n *Delete) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	if err := n.Service.DeleteQuestion(ctx, n.ID); err != nil {
		return err
	}
	fmt.Printf("deleted question %s, existing answers are kept\n", n.ID)
	return nil
}

// Move shifts a question to a zero-based position.
type Move struct {
	Service *app.Service
	Printer printers.PrettyPrint
	ID      string
	To      int
}

func (n *Move) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	if err := n.Service.MoveQuestion(ctx, n.ID, n.To); err != nil {
		return err
	}
	return (&List{Service: n.Service, Printer: n.Printer}).Do(ctx)
}

// Reset restores the built-in questions. Custom questions are dropped.
type Reset struct {
	Service *app.Service
	Printer printers.PrettyPrint
}

func (n *Reset) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	if err := n.Service.ResetQuestions(ctx); err != nil {
		return err
	}
	return (&List{Service: n.Service, Printer: n.Printer}).Do(ctx)
}

// Completions lists question ids starting with prefix.
func Completions(svc *app.Service, prefix string) []string {
	var out []string
	for _, q := range svc.Questions() {
		if strings.HasPrefix(q.ID, prefix) {
			out = append(out, q.ID)
		}
	}
	return out
}
