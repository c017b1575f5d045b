package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/marcus024/ssu-alumni-tracker/internal/dto"
	"github.com/marcus024/ssu-alumni-tracker/internal/model"
	"github.com/marcus024/ssu-alumni-tracker/internal/repository"
	"github.com/marcus024/ssu-alumni-tracker/internal/survey"
	"github.com/marcus024/ssu-alumni-tracker/pkg/apperror"
	"github.com/marcus024/ssu-alumni-tracker/pkg/storage"
)

// RegistrationService drives the multi-step tracer-survey workflow. The
// same service backs self-registration and admin registration on a
// graduate's behalf.
type RegistrationService interface {
	StartSession(ctx context.Context) (*survey.Workflow, error)
	GetSession(ctx context.Context, id string) (*survey.Workflow, error)
	PutAnswers(ctx context.Context, id string, input dto.AnswersInput) (*survey.Workflow, error)
	AttachImages(ctx context.Context, id string, picture *dto.UploadFile, images []*dto.UploadFile) (*survey.Workflow, error)
	Advance(ctx context.Context, id string) (*survey.Workflow, []survey.FieldError, error)
	Retreat(ctx context.Context, id string) (*survey.Workflow, error)
	Submit(ctx context.Context, id string) (*model.GraduateProfile, error)
	Abandon(ctx context.Context, id string) error
}

type registrationService struct {
	store       WorkflowStore
	graduates   repository.GraduateRepository
	departments repository.DepartmentRepository
	users       repository.UserRepository
	fileStorage storage.FileStorage
	notifier    NotificationService
	mailer      Mailer
	folder      string
}

func NewRegistrationService(
	store WorkflowStore,
	graduates repository.GraduateRepository,
	departments repository.DepartmentRepository,
	users repository.UserRepository,
	fileStorage storage.FileStorage,
	notifier NotificationService,
	mailer Mailer,
	folder string,
) RegistrationService {
	return &registrationService{
		store:       store,
		graduates:   graduates,
		departments: departments,
		users:       users,
		fileStorage: fileStorage,
		notifier:    notifier,
		mailer:      mailer,
		folder:      folder,
	}
}

func (s *registrationService) StartSession(ctx context.Context) (*survey.Workflow, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	w := survey.NewWorkflow(id.String())
	if err := s.store.Save(ctx, w); err != nil {
		return nil, err
	}

	return w, nil
}

func (s *registrationService) GetSession(ctx context.Context, id string) (*survey.Workflow, error) {
	return s.store.Get(ctx, id)
}

func (s *registrationService) PutAnswers(ctx context.Context, id string, input dto.AnswersInput) (*survey.Workflow, error) {
	w, err := s.activeSession(ctx, id)
	if err != nil {
		return nil, err
	}

	input.Apply(&w.Answers)
	if err := s.store.Save(ctx, w); err != nil {
		return nil, err
	}

	return w, nil
}

func (s *registrationService) AttachImages(ctx context.Context, id string, picture *dto.UploadFile, images []*dto.UploadFile) (*survey.Workflow, error) {
	w, err := s.activeSession(ctx, id)
	if err != nil {
		return nil, err
	}

	if len(w.Answers.ActivityImages)+len(images) > survey.MaxActivityImages {
		return nil, &survey.ValidationError{Fields: []survey.FieldError{{
			Field:  "activity_images",
			Reason: fmt.Sprintf("at most %d activity images are allowed", survey.MaxActivityImages),
		}}}
	}

	if picture != nil {
		url, err := s.fileStorage.Upload(ctx, picture.Reader, picture.Size, s.folder+"/pictures", picture.FileName, storage.ImageConstraints)
		if err != nil {
			return nil, storageFieldError("profile_picture", err)
		}
		w.Answers.ProfilePicture = &survey.FileRef{URL: url, FileName: picture.FileName}
	}

	for _, img := range images {
		url, err := s.fileStorage.Upload(ctx, img.Reader, img.Size, s.folder+"/activities", img.FileName, storage.ImageConstraints)
		if err != nil {
			return nil, storageFieldError("activity_images", err)
		}
		w.Answers.ActivityImages = append(w.Answers.ActivityImages, survey.FileRef{URL: url, FileName: img.FileName})
	}

	if err := s.store.Save(ctx, w); err != nil {
		return nil, err
	}

	return w, nil
}

func (s *registrationService) Advance(ctx context.Context, id string) (*survey.Workflow, []survey.FieldError, error) {
	w, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	fieldErrs, err := w.Advance()
	if err != nil {
		return nil, nil, wrapWorkflowErr(err)
	}
	if err := s.store.Save(ctx, w); err != nil {
		return nil, nil, err
	}

	return w, fieldErrs, nil
}

func (s *registrationService) Retreat(ctx context.Context, id string) (*survey.Workflow, error) {
	w, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := w.Retreat(); err != nil {
		return nil, wrapWorkflowErr(err)
	}
	if err := s.store.Save(ctx, w); err != nil {
		return nil, err
	}

	return w, nil
}

// Submit closes the workflow and creates the pending graduate profile in
// one transaction. The submitted workflow stays in the store so a retry
// surfaces a conflict instead of a duplicate profile.
func (s *registrationService) Submit(ctx context.Context, id string) (*model.GraduateProfile, error) {
	w, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	// A retry on a closed session is a conflict, never a duplicate profile.
	switch w.State {
	case survey.StateSubmitted:
		return nil, wrapWorkflowErr(survey.ErrAlreadySubmitted)
	case survey.StateAbandoned:
		return nil, wrapWorkflowErr(survey.ErrWorkflowClosed)
	}

	if email := w.Answers.Email; email != "" {
		if _, err := s.graduates.FindByEmail(ctx, email); err == nil {
			return nil, &survey.ValidationError{Fields: []survey.FieldError{{
				Field:  "email",
				Reason: "a graduate profile with this email already exists",
			}}}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	deptExists := func(deptID uint) bool {
		ok, err := s.departments.Exists(ctx, deptID)
		return err == nil && ok
	}

	submission, err := w.Submit(deptExists)
	if err != nil {
		// Validation refusals leave the workflow at step 5.
		var vErr *survey.ValidationError
		if errors.As(err, &vErr) {
			if saveErr := s.store.Save(ctx, w); saveErr != nil {
				log.Printf("failed to persist session after refused submit: %v", saveErr)
			}
			return nil, vErr
		}
		return nil, wrapWorkflowErr(err)
	}

	profile, images, err := buildProfile(submission)
	if err != nil {
		return nil, err
	}

	if err := s.graduates.Create(ctx, profile, images); err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx, w); err != nil {
		log.Printf("failed to persist submitted session %s: %v", id, err)
	}

	s.notifySubmitted(ctx, profile)

	return profile, nil
}

func (s *registrationService) Abandon(ctx context.Context, id string) error {
	w, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}

	var urls []string
	if pic := w.Answers.ProfilePicture; pic != nil {
		urls = append(urls, pic.URL)
	}
	for _, img := range w.Answers.ActivityImages {
		urls = append(urls, img.URL)
	}

	// A closed session must refuse before anything is touched; a submitted
	// session's files belong to the persisted profile.
	if err := w.Abandon(); err != nil {
		return wrapWorkflowErr(err)
	}

	// Remove files uploaded during the session; nothing durable survives
	// an abandon.
	for _, url := range urls {
		if err := s.fileStorage.Delete(ctx, url); err != nil {
			log.Printf("failed to delete abandoned file: %v", err)
		}
	}

	return s.store.Delete(ctx, id)
}

func (s *registrationService) activeSession(ctx context.Context, id string) (*survey.Workflow, error) {
	w, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if w.State != survey.StateInProgress {
		return nil, apperror.New(http.StatusConflict, "survey session is closed", apperror.ErrConflict)
	}
	return w, nil
}

func (s *registrationService) notifySubmitted(ctx context.Context, profile *model.GraduateProfile) {
	if s.notifier != nil {
		if user, err := s.users.FindByEmail(ctx, profile.Email); err == nil {
			notification := &model.Notification{
				UserID:  user.ID,
				Type:    "submission",
				Message: "Your graduate tracer survey was submitted and is pending review.",
			}
			if err := s.notifier.CreateNotification(ctx, notification); err != nil {
				log.Printf("failed to create submission notification: %v", err)
			}
		}
	}

	if s.mailer != nil {
		name := profile.FirstName + " " + profile.Surname
		s.mailer.Send(profile.Email, "Tracer survey received",
			fmt.Sprintf("Dear %s, your graduate tracer survey has been received and is pending review.", name),
		)
	}
}

func wrapWorkflowErr(err error) error {
	switch {
	case errors.Is(err, survey.ErrAlreadySubmitted):
		return apperror.New(http.StatusConflict, "survey already submitted", err)
	case errors.Is(err, survey.ErrWorkflowClosed):
		return apperror.New(http.StatusConflict, "survey session is closed", err)
	case errors.Is(err, survey.ErrNotAtFinalStep), errors.Is(err, survey.ErrAtFirstStep):
		return apperror.New(http.StatusBadRequest, err.Error(), err)
	}
	return err
}

func storageFieldError(field string, err error) error {
	if errors.Is(err, storage.ErrFileTooLarge) || errors.Is(err, storage.ErrWrongType) {
		return &survey.ValidationError{Fields: []survey.FieldError{{Field: field, Reason: err.Error()}}}
	}
	return err
}

// buildProfile maps an immutable submission onto the persistence model.
// Branch blocks that do not apply stay NULL.
func buildProfile(sub *survey.Submission) (*model.GraduateProfile, []model.GraduateImage, error) {
	a := sub.Answers

	profile := &model.GraduateProfile{
		Surname:          a.Surname,
		FirstName:        a.FirstName,
		MiddleName:       a.MiddleName,
		Email:            a.Email,
		Phone:            a.Phone,
		PermanentAddress: a.PermanentAddress,
		Sex:              string(a.Sex),
		CivilStatus:      string(a.CivilStatus),
		Year:             a.Year,
		CollegeCampus:    a.CollegeCampus,
		Program:          a.Program,
		Major:            a.Major,
		Course:           a.Course,
		DepartmentID:     a.DepartmentID,
		EverEmployed:     string(a.EverEmployed),
		Status:           survey.StatusPending,
	}

	if a.ProfilePicture != nil {
		url := a.ProfilePicture.URL
		profile.ProfilePictureURL = &url
	}

	var err error
	if a.AdvancedStudy != nil {
		if profile.AdvancedStudy, err = marshalBlock(a.AdvancedStudy); err != nil {
			return nil, nil, err
		}
	}
	if a.ProfessionalExam != nil {
		if profile.ProfessionalExam, err = marshalBlock(a.ProfessionalExam); err != nil {
			return nil, nil, err
		}
	}
	if len(a.Trainings) > 0 {
		if profile.Trainings, err = marshalBlock(a.Trainings); err != nil {
			return nil, nil, err
		}
	}

	switch a.EverEmployed {
	case survey.Yes:
		if a.Employment != nil {
			if profile.Employment, err = marshalBlock(a.Employment); err != nil {
				return nil, nil, err
			}
		}
		if !a.ReasonsForStaying.Empty() {
			if profile.ReasonsForStaying, err = marshalBlock(a.ReasonsForStaying); err != nil {
				return nil, nil, err
			}
		}
		if a.FirstJob != nil {
			if profile.FirstJob, err = marshalBlock(a.FirstJob); err != nil {
				return nil, nil, err
			}
		}
		profile.InitialEarning = a.InitialEarning
		profile.RecentEarning = a.RecentEarning
	case survey.No:
		if profile.UnemploymentReasons, err = marshalBlock(a.UnemploymentReasons); err != nil {
			return nil, nil, err
		}
	}

	images := make([]model.GraduateImage, 0, len(a.ActivityImages))
	for _, img := range a.ActivityImages {
		images = append(images, model.GraduateImage{
			FileURL:  img.URL,
			FileName: img.FileName,
		})
	}

	return profile, images, nil
}

func marshalBlock(v any) (datatypes.JSON, error) {
	if v == nil {
		return nil, nil
	}
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode survey block: %w", err)
	}
	return datatypes.JSON(payload), nil
}
