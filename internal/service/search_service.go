package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"bnihub.com/chaptertracker/internal/dto"
	"bnihub.com/chaptertracker/internal/model"
	"bnihub.com/chaptertracker/internal/repository"
	"github.com/meilisearch/meilisearch-go"
)

const memberIndex = "members"

type MemberSearchService interface {
	IndexMember(member *model.Member) error
	RemoveMember(id string) error
	Search(ctx context.Context, filter dto.MemberSearchFilter) ([]*model.Member, error)
}

type memberSearchService struct {
	client meilisearch.ServiceManager
	repo   repository.MemberRepository
}

func NewMemberSearchService(client meilisearch.ServiceManager, repo repository.MemberRepository) MemberSearchService {
	s := &memberSearchService{client: client, repo: repo}
	s.initIndex()
	return s
}

func (s *memberSearchService) initIndex() {
	filterableAttrs := []string{"industry", "status"}
	filterableInterface := make([]any, len(filterableAttrs))
	for i, v := range filterableAttrs {
		filterableInterface[i] = v
	}
	_, err := s.client.Index(memberIndex).UpdateFilterableAttributes(&filterableInterface)
	if err != nil {
		log.Printf("Failed to update members filterable attributes: %v", err)
	}

	sortableAttrs := []string{"name", "join_date"}
	_, err = s.client.Index(memberIndex).UpdateSortableAttributes(&sortableAttrs)
	if err != nil {
		log.Printf("Failed to update members sortable attributes: %v", err)
	}
}

type meiliMemberDoc struct {
	ID           string `json:"id"`
	PhoneID      string `json:"phone_id"`
	MemberNumber string `json:"member_number"`
	Name         string `json:"name"`
	Industry     string `json:"industry"`
	Status       string `json:"status"`
	JoinDate     int64  `json:"join_date"`
}

func (s *memberSearchService) IndexMember(member *model.Member) error {
	doc := meiliMemberDoc{
		ID:           member.ID.String(),
		PhoneID:      member.PhoneID,
		MemberNumber: member.MemberNumber,
		Name:         member.Name,
		Industry:     member.Industry,
		Status:       member.Status,
		JoinDate:     member.JoinDate.Unix(),
	}

	_, err := s.client.Index(memberIndex).AddDocuments([]meiliMemberDoc{doc}, strPtr("id"))
	return err
}

func (s *memberSearchService) RemoveMember(id string) error {
	_, err := s.client.Index(memberIndex).DeleteDocument(id)
	return err
}

func (s *memberSearchService) Search(ctx context.Context, filter dto.MemberSearchFilter) ([]*model.Member, error) {
	limit := int64(filter.Limit)
	if limit <= 0 {
		limit = 20
	}
	req := &meilisearch.SearchRequest{Limit: limit}

	var filters []string
	if filter.Industry != "" {
		filters = append(filters, fmt.Sprintf("industry = %q", filter.Industry))
	}
	if filter.Status != "" {
		filters = append(filters, fmt.Sprintf("status = %q", filter.Status))
	}
	if len(filters) > 0 {
		req.Filter = strings.Join(filters, " AND ")
	}

	resp, err := s.client.Index(memberIndex).Search(filter.Query, req)
	if err != nil {
		return nil, err
	}

	var docs []meiliMemberDoc
	if err := resp.Hits.Decode(&docs); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, doc.ID)
	}

	members, err := s.repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	// Keep meilisearch relevance ordering.
	byID := make(map[string]*model.Member, len(members))
	for _, m := range members {
		byID[m.ID.String()] = m
	}
	ordered := make([]*model.Member, 0, len(ids))
	for _, id := range ids {
		if m, ok := byID[id]; ok {
			ordered = append(ordered, m)
		}
	}
	return ordered, nil
}

func strPtr(s string) *string {
	return &s
}
