package app

import (
	"context"

	"go.uber.org/zap"

	"tableflip.dev/meditary/pkg/question"
	"tableflip.dev/meditary/pkg/store"
)

// Questions returns the registry sorted by order.
func (s *Service) Questions() []question.Question {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.questions.List()
}

// Question looks up one question. Answers may reference ids that no longer
// resolve; callers treat a miss as "not displayable".
func (s *Service) Question(id string) (question.Question, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.questions.Get(id)
}

// mutateQuestions applies fn to a copy of the registry, persists the copy and
// swaps it in.
func (s *Service) mutateQuestions(ctx context.Context, fn func(*question.Registry) error) error {
	s.questionsMu.Lock()
	defer s.questionsMu.Unlock()
	if err := s.writable(store.KeyQuestions); err != nil {
		return err
	}
	s.mu.RLock()
	next := s.questions.Clone()
	s.mu.RUnlock()

	if err := fn(next); err != nil {
		return err
	}
	return s.commit(ctx, store.KeyQuestions, next.List(), func() {
		s.questions = next
	})
}

// AddQuestion appends a custom question.
func (s *Service) AddQuestion(ctx context.Context, textPrimary, textSecondary string, kind question.Kind) (question.Question, error) {
	var added question.Question
	err := s.mutateQuestions(ctx, func(r *question.Registry) error {
		var err error
		added, err = r.Add(textPrimary, textSecondary, kind)
		return err
	})
	if err != nil {
		return question.Question{}, err
	}
	s.log.Debug("question added", zap.String("id", added.ID), zap.Int("order", added.Order))
	return added, nil
}

// UpdateQuestion merges p into the question with id.
func (s *Service) UpdateQuestion(ctx context.Context, id string, p question.Patch) (question.Question, error) {
	var updated question.Question
	err := s.mutateQuestions(ctx, func(r *question.Registry) error {
		var err error
		updated, err = r.Update(id, p)
		return err
	})
	if err != nil {
		return question.Question{}, err
	}
	s.log.Debug("question updated", zap.String("id", id))
	return updated, nil
}

// DeleteQuestion removes a question. Existing answers to it are kept.
func (s *Service) DeleteQuestion(ctx context.Context, id string) error {
	err := s.mutateQuestions(ctx, func(r *question.Registry) error {
		return r.Delete(id)
	})
	if err != nil {
		return err
	}
	s.log.Debug("question deleted", zap.String("id", id))
	return nil
}

// ReorderQuestions replaces the order with the given permutation.
func (s *Service) ReorderQuestions(ctx context.Context, ordered []question.Question) error {
	return s.mutateQuestions(ctx, func(r *question.Registry) error {
		return r.Reorder(ordered)
	})
}

// MoveQuestion shifts one question to position to.
func (s *Service) MoveQuestion(ctx context.Context, id string, to int) error {
	return s.mutateQuestions(ctx, func(r *question.Registry) error {
		return r.Move(id, to)
	})
}

// ResetQuestions discards custom questions and restores the built-ins.
func (s *Service) ResetQuestions(ctx context.Context) error {
	err := s.mutateQuestions(ctx, func(r *question.Registry) error {
		r.ResetToDefault()
		return nil
	})
	if err != nil {
		return err
	}
	s.log.Info("questions reset to defaults")
	return nil
}
