package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/marcus024/ssu-alumni-tracker/internal/model"
	"github.com/marcus024/ssu-alumni-tracker/internal/survey"
)

func syncFixture() (*fakeGraduateRepo, *fakeUserRepo) {
	graduates := newFakeGraduateRepo()
	users := newFakeUserRepo()
	return graduates, users
}

func addGraduate(g *fakeGraduateRepo, email string, status survey.Status) *model.GraduateProfile {
	p := &model.GraduateProfile{Email: email, Status: status}
	_ = g.Create(context.Background(), p, nil)
	return p
}

func addAccount(u *fakeUserRepo, email string, status survey.Status) *model.UserAccount {
	a := &model.UserAccount{ID: uuid.New(), Email: email, Status: status}
	_ = u.Create(context.Background(), a)
	return a
}

func TestSyncStatuses(t *testing.T) {
	graduates, users := syncFixture()

	addGraduate(graduates, "approved@example.com", survey.StatusApproved)
	outOfSync := addAccount(users, "approved@example.com", survey.StatusPending)

	addGraduate(graduates, "insync@example.com", survey.StatusRejected)
	addAccount(users, "insync@example.com", survey.StatusRejected)

	addGraduate(graduates, "noaccount@example.com", survey.StatusPending)

	svc := NewSyncService(graduates, users)
	summary, err := svc.SyncStatuses(context.Background())
	if err != nil {
		t.Fatalf("SyncStatuses() error = %v", err)
	}

	want := SyncSummary{Processed: 3, Synced: 1, AlreadyInSync: 1, NotFound: 1}
	if summary != want {
		t.Errorf("summary = %+v, want %+v", summary, want)
	}
	if outOfSync.Status != survey.StatusApproved {
		t.Errorf("account status = %q, want %q", outOfSync.Status, survey.StatusApproved)
	}
}

func TestSyncStatusesIdempotent(t *testing.T) {
	graduates, users := syncFixture()
	addGraduate(graduates, "a@example.com", survey.StatusApproved)
	addAccount(users, "a@example.com", survey.StatusPending)
	addGraduate(graduates, "b@example.com", survey.StatusRejected)
	addAccount(users, "b@example.com", survey.StatusPending)

	svc := NewSyncService(graduates, users)
	first, err := svc.SyncStatuses(context.Background())
	if err != nil {
		t.Fatalf("first run error = %v", err)
	}
	if first.Synced != 2 {
		t.Fatalf("first run synced = %d, want 2", first.Synced)
	}

	second, err := svc.SyncStatuses(context.Background())
	if err != nil {
		t.Fatalf("second run error = %v", err)
	}
	want := SyncSummary{Processed: 2, AlreadyInSync: 2}
	if second != want {
		t.Errorf("second run = %+v, want %+v", second, want)
	}
}

func TestSyncStatusesEmailNormalization(t *testing.T) {
	graduates, users := syncFixture()
	addGraduate(graduates, "Mixed.Case@Example.COM", survey.StatusApproved)
	account := addAccount(users, "  mixed.case@example.com ", survey.StatusPending)

	svc := NewSyncService(graduates, users)
	summary, err := svc.SyncStatuses(context.Background())
	if err != nil {
		t.Fatalf("SyncStatuses() error = %v", err)
	}
	if summary.Synced != 1 || summary.NotFound != 0 {
		t.Errorf("summary = %+v, want one synced", summary)
	}
	if account.Status != survey.StatusApproved {
		t.Errorf("account status = %q, want %q", account.Status, survey.StatusApproved)
	}
}

func TestSyncStatusesFailureIsolation(t *testing.T) {
	graduates, users := syncFixture()

	addGraduate(graduates, "first@example.com", survey.StatusApproved)
	first := addAccount(users, "first@example.com", survey.StatusPending)

	addGraduate(graduates, "broken@example.com", survey.StatusApproved)
	broken := addAccount(users, "broken@example.com", survey.StatusPending)
	users.failUpdates[broken.ID.String()] = errors.New("write refused")

	addGraduate(graduates, "last@example.com", survey.StatusRejected)
	last := addAccount(users, "last@example.com", survey.StatusPending)

	svc := NewSyncService(graduates, users)
	summary, err := svc.SyncStatuses(context.Background())
	if err != nil {
		t.Fatalf("SyncStatuses() error = %v", err)
	}

	// One failed write never aborts the rest of the batch.
	want := SyncSummary{Processed: 3, Synced: 2, Failed: 1}
	if summary != want {
		t.Errorf("summary = %+v, want %+v", summary, want)
	}
	if first.Status != survey.StatusApproved {
		t.Errorf("first account = %q, want approved", first.Status)
	}
	if broken.Status != survey.StatusPending {
		t.Errorf("broken account = %q, want untouched pending", broken.Status)
	}
	if last.Status != survey.StatusRejected {
		t.Errorf("last account = %q, want rejected", last.Status)
	}
}
