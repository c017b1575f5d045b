package service

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/marcus024/ssu-alumni-tracker/internal/model"
	"github.com/marcus024/ssu-alumni-tracker/internal/survey"
	"github.com/marcus024/ssu-alumni-tracker/pkg/apperror"
	"github.com/marcus024/ssu-alumni-tracker/pkg/storage"
)

// In-memory fakes for the repository and infrastructure interfaces.

type memoryWorkflowStore struct {
	mu       sync.Mutex
	sessions map[string]*survey.Workflow
}

func newMemoryWorkflowStore() *memoryWorkflowStore {
	return &memoryWorkflowStore{sessions: make(map[string]*survey.Workflow)}
}

func (s *memoryWorkflowStore) Get(_ context.Context, id string) (*survey.Workflow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: session %s", apperror.ErrNotFound, id)
	}
	copied := *w
	return &copied, nil
}

func (s *memoryWorkflowStore) Save(_ context.Context, w *survey.Workflow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *w
	s.sessions[w.ID] = &copied
	return nil
}

func (s *memoryWorkflowStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

type fakeGraduateRepo struct {
	profiles []*model.GraduateProfile
	images   map[uuid.UUID][]model.GraduateImage
}

func newFakeGraduateRepo() *fakeGraduateRepo {
	return &fakeGraduateRepo{images: make(map[uuid.UUID][]model.GraduateImage)}
}

func (r *fakeGraduateRepo) Create(_ context.Context, profile *model.GraduateProfile, images []model.GraduateImage) error {
	if profile.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		profile.ID = id
	}
	r.profiles = append(r.profiles, profile)
	r.images[profile.ID] = images
	return nil
}

func (r *fakeGraduateRepo) FindByID(_ context.Context, id string) (*model.GraduateProfile, error) {
	for _, p := range r.profiles {
		if p.ID.String() == id {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeGraduateRepo) FindByEmail(_ context.Context, email string) (*model.GraduateProfile, error) {
	for _, p := range r.profiles {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeGraduateRepo) FindAll(_ context.Context, status survey.Status) ([]*model.GraduateProfile, error) {
	if status == "" {
		return r.profiles, nil
	}
	var out []*model.GraduateProfile
	for _, p := range r.profiles {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeGraduateRepo) FindAllWithEmail(_ context.Context) ([]*model.GraduateProfile, error) {
	var out []*model.GraduateProfile
	for _, p := range r.profiles {
		if p.Email != "" {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeGraduateRepo) UpdateStatus(_ context.Context, id string, status survey.Status) error {
	for _, p := range r.profiles {
		if p.ID.String() == id {
			p.Status = status
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeGraduateRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.profiles)), nil
}

type fakeUserRepo struct {
	users       []*model.UserAccount
	failUpdates map[string]error
}

func newFakeUserRepo(users ...*model.UserAccount) *fakeUserRepo {
	return &fakeUserRepo{users: users, failUpdates: make(map[string]error)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.UserAccount) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users = append(r.users, user)
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*model.UserAccount, error) {
	for _, u := range r.users {
		if u.ID.String() == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.UserAccount, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindRoleByName(_ context.Context, name string) (*model.Role, error) {
	return &model.Role{ID: 1, Name: name}, nil
}

func (r *fakeUserRepo) FindAll(_ context.Context) ([]*model.UserAccount, error) {
	return r.users, nil
}

func (r *fakeUserRepo) UpdateStatus(_ context.Context, id string, status survey.Status) error {
	if err, ok := r.failUpdates[id]; ok {
		return err
	}
	for _, u := range r.users {
		if u.ID.String() == id {
			u.Status = status
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

type fakeDepartmentRepo struct {
	departments map[uint]*model.Department
}

func newFakeDepartmentRepo(ids ...uint) *fakeDepartmentRepo {
	r := &fakeDepartmentRepo{departments: make(map[uint]*model.Department)}
	for _, id := range ids {
		r.departments[id] = &model.Department{ID: id, Name: fmt.Sprintf("Department %d", id)}
	}
	return r
}

func (r *fakeDepartmentRepo) FindAll(_ context.Context) ([]*model.Department, error) {
	var out []*model.Department
	for _, d := range r.departments {
		out = append(out, d)
	}
	return out, nil
}

func (r *fakeDepartmentRepo) FindByID(_ context.Context, id uint) (*model.Department, error) {
	d, ok := r.departments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return d, nil
}

func (r *fakeDepartmentRepo) Exists(_ context.Context, id uint) (bool, error) {
	_, ok := r.departments[id]
	return ok, nil
}

type fakeFileStorage struct {
	uploaded []string
	deleted  []string
	failWith error
}

func (f *fakeFileStorage) Upload(_ context.Context, r io.Reader, size int64, folder, fileName string, c storage.Constraints) (string, error) {
	if f.failWith != nil {
		return "", f.failWith
	}
	if err := c.Check(size, fileName); err != nil {
		return "", err
	}
	url := fmt.Sprintf("https://cdn.test/%s/%s", folder, fileName)
	f.uploaded = append(f.uploaded, url)
	return url, nil
}

func (f *fakeFileStorage) Delete(_ context.Context, fileURL string) error {
	f.deleted = append(f.deleted, fileURL)
	return nil
}

type fakeNotifier struct {
	created []*model.Notification
}

func (f *fakeNotifier) CreateNotification(_ context.Context, n *model.Notification) error {
	f.created = append(f.created, n)
	return nil
}

func (f *fakeNotifier) GetNotifications(_ context.Context, userID uuid.UUID, limit, offset int) ([]model.Notification, error) {
	var out []model.Notification
	for _, n := range f.created {
		if n.UserID == userID {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (f *fakeNotifier) MarkAsRead(_ context.Context, _ uuid.UUID) error { return nil }

func (f *fakeNotifier) MarkAllAsRead(_ context.Context, _ uuid.UUID) error { return nil }
func (f *fakeNotifier) UnreadCount(_ context.Context, _ uuid.UUID) (int64, error) {
	return int64(len(f.created)), nil
}

type fakeMailer struct {
	sent []string
}

func (f *fakeMailer) Send(to, subject, body string) {
	f.sent = append(f.sent, to+": "+subject)
}
