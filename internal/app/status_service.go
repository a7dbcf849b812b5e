// internal/app/status_service.go
package app

import (
	"context"
	"errors"
	"time"

	"homework_status_bot/internal/domain/homework"

	"github.com/sirupsen/logrus"
)

// Fetcher returns the decoded API response for homeworks updated since timestamp.
type Fetcher interface {
	Fetch(ctx context.Context, timestamp int64) (any, error)
}

// Notifier delivers a message to the user.
type Notifier interface {
	Notify(message string) error
}

// Waiter blocks between polling iterations.
type Waiter interface {
	Wait(ctx context.Context) error
}

// StatusService polls the status of the most recent homework and notifies on every change.
type StatusService struct {
	fetcher  Fetcher
	notifier Notifier
	waiter   Waiter
	journal  homework.Journal // Optional
	logger   *logrus.Entry
	now      func() time.Time

	fromDate   int64
	lastStatus homework.Status
}

func NewStatusService(
	fetcher Fetcher,
	notifier Notifier,
	waiter Waiter,
	journal homework.Journal, // nil disables the delivery journal
	logger *logrus.Entry,
	fromDate time.Time, // Lower bound of the poll, fixed for the whole run
) *StatusService {
	return &StatusService{
		fetcher:  fetcher,
		notifier: notifier,
		waiter:   waiter,
		journal:  journal,
		logger:   logger,
		now:      time.Now,
		fromDate: fromDate.Unix(),
	}
}

// LastStatus returns the status of the last successfully notified homework.
func (s *StatusService) LastStatus() homework.Status {
	return s.lastStatus
}

// Run polls until ctx is cancelled or an iteration fails. Every iteration, including a failed one,
// is followed by a wait. A failure is returned after that final wait.
func (s *StatusService) Run(ctx context.Context) error {
	s.logger.WithField("from_date", s.fromDate).Info("Polling started")

	for {
		if ctx.Err() != nil {
			s.logger.Info("Polling stopped")
			return nil
		}

		pollErr := s.Poll(ctx)
		if pollErr != nil && ctx.Err() != nil {
			s.logger.Info("Polling stopped")
			return nil
		}
		if pollErr != nil {
			s.logger.Errorf("Сбой в работе программы: %v", pollErr)
		}

		if err := s.waiter.Wait(ctx); err != nil && !errors.Is(err, context.Canceled) {
			s.logger.WithError(err).Warn("Wait interrupted")
		}

		if pollErr != nil {
			return pollErr
		}
	}
}

// Poll runs a single fetch-validate-notify iteration.
func (s *StatusService) Poll(ctx context.Context) error {
	response, err := s.fetcher.Fetch(ctx, s.fromDate)
	if err != nil {
		return err
	}

	ok, err := homework.Validate(response)
	if err != nil {
		return err
	}
	if !ok {
		s.logger.Error("Ответ от API не получен")
		return nil
	}

	homeworks := homework.Homeworks(response)
	if len(homeworks) == 0 {
		s.logger.Debug("В ответе API получен пустой список домашних работ")
		return nil
	}

	// The API lists the most recent homework first.
	record := homeworks[0]
	current, err := homework.StatusOf(record)
	if err != nil {
		return err
	}

	if current == s.lastStatus {
		s.logger.WithField("status", current).Debug("Статус проверки не изменился")
		return nil
	}

	message, err := homework.Interpret(record)
	if err != nil {
		return err
	}
	if err := s.notifier.Notify(message); err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"previous": s.lastStatus,
		"current":  current,
	}).Info("Status change delivered")
	s.lastStatus = current

	s.recordDelivery(ctx, record, current, message)
	return nil
}

func (s *StatusService) recordDelivery(ctx context.Context, record any, status homework.Status, message string) {
	if s.journal == nil {
		return
	}
	name, _ := homework.NameOf(record) // Interpret already checked the name
	d := &homework.Delivery{
		HomeworkName: name,
		Status:       status,
		Message:      message,
		SentAt:       s.now(),
	}
	if err := s.journal.Record(ctx, d); err != nil {
		s.logger.WithError(err).Warn("Failed to record delivery in journal")
	}
}
