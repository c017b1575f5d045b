package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/marcus024/ssu-alumni-tracker/internal/model"
	"github.com/marcus024/ssu-alumni-tracker/internal/survey"
	"github.com/marcus024/ssu-alumni-tracker/pkg/apperror"
)

type fakeSearch struct {
	indexed map[string]bool
}

func newFakeSearch() *fakeSearch {
	return &fakeSearch{indexed: make(map[string]bool)}
}

func (f *fakeSearch) IndexGraduate(profile *model.GraduateProfile) error {
	f.indexed[profile.ID.String()] = true
	return nil
}

func (f *fakeSearch) RemoveGraduate(id string) error {
	delete(f.indexed, id)
	return nil
}

func (f *fakeSearch) Search(string) ([]GraduateDocument, error) { return nil, nil }

type approvalFixture struct {
	svc       ApprovalService
	graduates *fakeGraduateRepo
	search    *fakeSearch
	notifier  *fakeNotifier
	mailer    *fakeMailer
}

func newApprovalFixture() *approvalFixture {
	f := &approvalFixture{
		graduates: newFakeGraduateRepo(),
		search:    newFakeSearch(),
		notifier:  &fakeNotifier{},
		mailer:    &fakeMailer{},
	}
	f.svc = NewApprovalService(f.graduates, newFakeUserRepo(), f.search, f.notifier, f.mailer)
	return f
}

func TestUpdateStatusTransitions(t *testing.T) {
	tests := []struct {
		name     string
		from, to survey.Status
		wantCode int
	}{
		{"approve pending", survey.StatusPending, survey.StatusApproved, http.StatusOK},
		{"reject pending", survey.StatusPending, survey.StatusRejected, http.StatusOK},
		{"reopen approved", survey.StatusApproved, survey.StatusPending, http.StatusOK},
		{"reopen rejected", survey.StatusRejected, survey.StatusPending, http.StatusOK},
		{"approved to rejected", survey.StatusApproved, survey.StatusRejected, http.StatusConflict},
		{"rejected to approved", survey.StatusRejected, survey.StatusApproved, http.StatusConflict},
		{"no-op transition", survey.StatusPending, survey.StatusPending, http.StatusConflict},
		{"unknown target", survey.StatusPending, "archived", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newApprovalFixture()
			p := addGraduate(f.graduates, "g@example.com", tt.from)

			got, err := f.svc.UpdateStatus(context.Background(), p.ID.String(), tt.to)
			if tt.wantCode == http.StatusOK {
				if err != nil {
					t.Fatalf("UpdateStatus() error = %v", err)
				}
				if got.Status != tt.to {
					t.Errorf("Status = %q, want %q", got.Status, tt.to)
				}
				return
			}

			if err == nil {
				t.Fatal("UpdateStatus() succeeded, want refusal")
			}
			if code := apperror.MapErrorToStatus(err); code != tt.wantCode {
				t.Errorf("status code = %d, want %d", code, tt.wantCode)
			}
			if p.Status != tt.from {
				t.Errorf("profile mutated on refusal: %q", p.Status)
			}
		})
	}
}

func TestUpdateStatusUnknownGraduate(t *testing.T) {
	f := newApprovalFixture()
	_, err := f.svc.UpdateStatus(context.Background(), "0199c9a0-0000-7000-8000-000000000000", survey.StatusApproved)
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("UpdateStatus() error = %v, want %v", err, apperror.ErrNotFound)
	}
}

func TestUpdateStatusDirectorySync(t *testing.T) {
	f := newApprovalFixture()
	p := addGraduate(f.graduates, "g@example.com", survey.StatusPending)
	id := p.ID.String()

	if _, err := f.svc.UpdateStatus(context.Background(), id, survey.StatusApproved); err != nil {
		t.Fatalf("approve error = %v", err)
	}
	if !f.search.indexed[id] {
		t.Error("approved graduate not indexed in the directory")
	}

	if _, err := f.svc.UpdateStatus(context.Background(), id, survey.StatusPending); err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	if f.search.indexed[id] {
		t.Error("reopened graduate still in the directory")
	}
}

func TestUpdateStatusNotifies(t *testing.T) {
	f := newApprovalFixture()
	p := addGraduate(f.graduates, "g@example.com", survey.StatusPending)

	if _, err := f.svc.UpdateStatus(context.Background(), p.ID.String(), survey.StatusApproved); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	if len(f.mailer.sent) != 1 {
		t.Errorf("mails = %v, want 1", f.mailer.sent)
	}
}
