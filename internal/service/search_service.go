package service

import (
	"encoding/json"
	"html"
	"log"
	"strings"

	"github.com/meilisearch/meilisearch-go"
	"github.com/microcosm-cc/bluemonday"

	"github.com/marcus024/ssu-alumni-tracker/internal/model"
)

const graduatesIndex = "graduates"

// GraduateSearchService maintains the searchable alumni directory. Only
// approved profiles are ever indexed.
type GraduateSearchService interface {
	IndexGraduate(profile *model.GraduateProfile) error
	RemoveGraduate(id string) error
	Search(query string) ([]GraduateDocument, error)
}

type graduateSearchService struct {
	client    meilisearch.ServiceManager
	sanitizer *bluemonday.Policy
}

func NewGraduateSearchService(client meilisearch.ServiceManager) GraduateSearchService {
	s := &graduateSearchService{
		client:    client,
		sanitizer: bluemonday.StrictPolicy(),
	}
	s.initIndexes()
	return s
}

func (s *graduateSearchService) initIndexes() {
	filterableAttrs := []string{"college_campus", "program", "year"}
	filterableInterface := make([]any, len(filterableAttrs))
	for i, v := range filterableAttrs {
		filterableInterface[i] = v
	}
	if _, err := s.client.Index(graduatesIndex).UpdateFilterableAttributes(&filterableInterface); err != nil {
		log.Printf("Failed to update graduates filterable attributes: %v", err)
	}

	sortableAttrs := []string{"year"}
	if _, err := s.client.Index(graduatesIndex).UpdateSortableAttributes(&sortableAttrs); err != nil {
		log.Printf("Failed to update graduates sortable attributes: %v", err)
	}
}

// GraduateDocument is the directory view of an approved graduate.
type GraduateDocument struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Year          int    `json:"year"`
	CollegeCampus string `json:"college_campus"`
	Program       string `json:"program"`
	Course        string `json:"course"`
	CurrentWork   string `json:"current_work"`
}

func (s *graduateSearchService) IndexGraduate(profile *model.GraduateProfile) error {
	doc := GraduateDocument{
		ID:            profile.ID.String(),
		Name:          s.cleanForIndex(profile.FirstName + " " + profile.Surname),
		Email:         profile.Email,
		Year:          profile.Year,
		CollegeCampus: profile.CollegeCampus,
		Program:       profile.Program,
		Course:        s.cleanForIndex(profile.Course),
		CurrentWork:   s.cleanForIndex(currentWorkOf(profile)),
	}

	task, err := s.client.Index(graduatesIndex).AddDocuments([]GraduateDocument{doc}, strPtr("id"))
	if err != nil {
		return err
	}
	log.Printf("Indexed graduate %s, task id: %d", doc.ID, task.TaskUID)
	return nil
}

func (s *graduateSearchService) RemoveGraduate(id string) error {
	_, err := s.client.Index(graduatesIndex).DeleteDocument(id)
	return err
}

func (s *graduateSearchService) Search(query string) ([]GraduateDocument, error) {
	resp, err := s.client.Index(graduatesIndex).Search(query, &meilisearch.SearchRequest{
		Limit: 50,
	})
	if err != nil {
		return nil, err
	}

	docs := make([]GraduateDocument, 0, len(resp.Hits))
	for _, hit := range resp.Hits {
		payload, err := json.Marshal(hit)
		if err != nil {
			continue
		}
		var doc GraduateDocument
		if err := json.Unmarshal(payload, &doc); err != nil {
			continue
		}
		docs = append(docs, doc)
	}

	return docs, nil
}

// cleanForIndex strips markup and normalizes whitespace in free-text
// answers before they reach the index.
func (s *graduateSearchService) cleanForIndex(content string) string {
	sanitized := s.sanitizer.Sanitize(content)
	cleanText := html.UnescapeString(sanitized)
	return strings.Join(strings.Fields(cleanText), " ")
}

func currentWorkOf(profile *model.GraduateProfile) string {
	if len(profile.Employment) == 0 {
		return ""
	}
	var employment struct {
		CurrentWork string `json:"current_work"`
	}
	if err := json.Unmarshal(profile.Employment, &employment); err != nil {
		return ""
	}
	return employment.CurrentWork
}

func strPtr(s string) *string {
	return &s
}
