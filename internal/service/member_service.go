package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"bnihub.com/chaptertracker/internal/dto"
	"bnihub.com/chaptertracker/internal/excel"
	"bnihub.com/chaptertracker/internal/model"
	"bnihub.com/chaptertracker/internal/repository"
	"bnihub.com/chaptertracker/pkg/apperror"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type MemberService interface {
	CreateMember(ctx context.Context, req dto.CreateMemberRequest) (*model.Member, error)
	UpdateMember(ctx context.Context, id uuid.UUID, req dto.UpdateMemberRequest) (*model.Member, error)
	DeleteMember(ctx context.Context, id uuid.UUID) error
	GetAllMembers(ctx context.Context) ([]*model.Member, error)
	// ImportMembers upserts roster rows keyed by Phone_ID. Unlike activity
	// uploads, row failures are itemized in the result.
	ImportMembers(ctx context.Context, file io.Reader) (*dto.MemberImportResult, error)
	SearchMembers(ctx context.Context, filter dto.MemberSearchFilter) ([]*model.Member, error)
}

type memberService struct {
	repo   repository.MemberRepository
	search MemberSearchService
}

func NewMemberService(repo repository.MemberRepository, search MemberSearchService) MemberService {
	return &memberService{repo: repo, search: search}
}

func (s *memberService) CreateMember(ctx context.Context, req dto.CreateMemberRequest) (*model.Member, error) {
	joinDate, err := parseSheetDate(req.JoinDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid join date %q", apperror.ErrBadRequest, req.JoinDate)
	}

	status := req.Status
	if status == "" {
		status = model.MemberStatusActive
	}

	member := &model.Member{
		PhoneID:      req.PhoneID,
		MemberNumber: req.MemberNumber,
		Name:         req.Name,
		Industry:     req.Industry,
		Master:       req.Master,
		JoinDate:     joinDate,
		Status:       status,
	}
	if err := s.repo.Create(ctx, member); err != nil {
		return nil, err
	}

	s.indexMember(member)
	return member, nil
}

func (s *memberService) UpdateMember(ctx context.Context, id uuid.UUID, req dto.UpdateMemberRequest) (*model.Member, error) {
	member, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	if req.PhoneID != nil {
		member.PhoneID = *req.PhoneID
	}
	if req.MemberNumber != nil {
		member.MemberNumber = *req.MemberNumber
	}
	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.Industry != nil {
		member.Industry = *req.Industry
	}
	if req.Master != nil {
		member.Master = req.Master
	}
	if req.JoinDate != nil {
		joinDate, err := parseSheetDate(*req.JoinDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid join date %q", apperror.ErrBadRequest, *req.JoinDate)
		}
		member.JoinDate = joinDate
	}
	if req.Status != nil {
		member.Status = *req.Status
	}

	if err := s.repo.Update(ctx, member); err != nil {
		return nil, err
	}

	s.indexMember(member)
	return member, nil
}

func (s *memberService) DeleteMember(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.ErrNotFound
		}
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.removeFromIndex(id)
	return nil
}

func (s *memberService) GetAllMembers(ctx context.Context) ([]*model.Member, error) {
	return s.repo.FindAll(ctx)
}

func (s *memberService) ImportMembers(ctx context.Context, file io.Reader) (*dto.MemberImportResult, error) {
	sheet, err := excel.Parse(file)
	if err != nil {
		if errors.Is(err, excel.ErrEmptySheet) {
			return nil, fmt.Errorf("%w: %s", apperror.ErrBadRequest, err.Error())
		}
		return nil, err
	}

	result := &dto.MemberImportResult{Errors: []string{}}
	for i, row := range sheet.Rows {
		// Sheet row numbers are 1-based and include the header row.
		rowNum := i + 2

		if valid, _ := excel.ValidateMemberRow(row); !valid {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: Missing required fields", rowNum))
			continue
		}

		joinDate, err := parseSheetDate(row["Join_Date"])
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: Invalid date format", rowNum))
			continue
		}

		status := model.MemberStatusInactive
		if strings.EqualFold(row["Status"], model.MemberStatusActive) {
			status = model.MemberStatusActive
		}

		member := &model.Member{
			PhoneID:      row["Phone_ID"],
			MemberNumber: row["Member_Number"],
			Name:         row["Name"],
			Industry:     row["Industry"],
			JoinDate:     joinDate,
			Status:       status,
		}
		if master := row["Master"]; master != "" {
			member.Master = &master
		}

		if err := s.repo.UpsertByPhoneID(ctx, member); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %s", rowNum, err.Error()))
			continue
		}

		result.Success++
		s.indexMember(member)
	}

	result.Message = fmt.Sprintf("Upload completed. %d members imported, %d failed.", result.Success, result.Failed)
	return result, nil
}

func (s *memberService) SearchMembers(ctx context.Context, filter dto.MemberSearchFilter) ([]*model.Member, error) {
	if s.search != nil {
		members, err := s.search.Search(ctx, filter)
		if err == nil {
			return members, nil
		}
		logrus.WithError(err).Warn("member search index unavailable, falling back to database")
	}
	return s.repo.FindAll(ctx)
}

func (s *memberService) indexMember(member *model.Member) {
	if s.search == nil {
		return
	}
	if err := s.search.IndexMember(member); err != nil {
		logrus.WithError(err).WithField("member", member.ID).Warn("failed to index member")
	}
}

func (s *memberService) removeFromIndex(id uuid.UUID) {
	if s.search == nil {
		return
	}
	if err := s.search.RemoveMember(id.String()); err != nil {
		logrus.WithError(err).WithField("member", id).Warn("failed to remove member from index")
	}
}

// excelEpoch is the zero of the 1900 date system used for serial dates.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

var sheetDateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01-02-06",
	"1/2/2006",
	"1/2/06",
	"2006-01-02T15:04:05Z07:00",
}

// parseSheetDate accepts the date shapes spreadsheet cells commonly come
// back as, including raw Excel serial numbers.
func parseSheetDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, errors.New("empty date")
	}
	for _, layout := range sheetDateLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return t, nil
		}
	}
	if serial, err := strconv.ParseFloat(raw, 64); err == nil && serial > 0 {
		return excelEpoch.AddDate(0, 0, int(serial)), nil
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", raw)
}
