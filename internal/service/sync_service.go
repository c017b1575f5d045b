package service

import (
	"context"
	"log"
	"strings"

	"github.com/marcus024/ssu-alumni-tracker/internal/model"
	"github.com/marcus024/ssu-alumni-tracker/internal/repository"
)

// SyncSummary reports one reconciliation run.
type SyncSummary struct {
	Processed     int `json:"processed"`
	Synced        int `json:"synced"`
	AlreadyInSync int `json:"already_in_sync"`
	NotFound      int `json:"not_found"`
	Failed        int `json:"failed"`
}

// SyncService reconciles graduate statuses onto linked user accounts.
// The profile is always the source of truth; the account is overwritten,
// never the other way around.
type SyncService interface {
	SyncStatuses(ctx context.Context) (SyncSummary, error)
}

type syncService struct {
	graduates repository.GraduateRepository
	users     repository.UserRepository
}

func NewSyncService(graduates repository.GraduateRepository, users repository.UserRepository) SyncService {
	return &syncService{graduates: graduates, users: users}
}

// SyncStatuses is idempotent and safe to run on a schedule: a clean second
// run reports everything as already in sync and writes nothing. A profile
// without a matching account is a counted outcome, not an error, and
// never stops the rest of the batch.
func (s *syncService) SyncStatuses(ctx context.Context) (SyncSummary, error) {
	var summary SyncSummary

	profiles, err := s.graduates.FindAllWithEmail(ctx)
	if err != nil {
		return summary, err
	}
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return summary, err
	}

	accounts := make(map[string]*model.UserAccount, len(users))
	for _, u := range users {
		accounts[normalizeEmail(u.Email)] = u
	}

	for _, profile := range profiles {
		summary.Processed++

		user, ok := accounts[normalizeEmail(profile.Email)]
		if !ok {
			summary.NotFound++
			continue
		}

		if user.Status == profile.Status {
			summary.AlreadyInSync++
			continue
		}

		if err := s.users.UpdateStatus(ctx, user.ID.String(), profile.Status); err != nil {
			log.Printf("failed to sync status for %s: %v", user.Email, err)
			summary.Failed++
			continue
		}
		user.Status = profile.Status
		summary.Synced++
	}

	return summary, nil
}

// Emails are compared case-insensitively after trimming, so an account
// registered with a differently-cased address still reconciles.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
