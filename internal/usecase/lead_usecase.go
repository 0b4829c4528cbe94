package usecase

//go:generate mockgen -source=lead_usecase.go -destination=mocks/lead_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"truedoc-admin/internal/converter"
	"truedoc-admin/internal/delivery/dto"
	"truedoc-admin/internal/domain/entity"
	"truedoc-admin/internal/domain/repository"
	"truedoc-admin/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrLeadNotFound     = errors.New("lead not found")
	ErrInvalidDateRange = errors.New("start_date must not be after end_date")
)

type LeadUsecase interface {
	List(ctx context.Context, query *dto.LeadListQuery) ([]dto.LeadResponse, *dto.PageInfo, error)
	ListSources(ctx context.Context) ([]string, error)
	Create(ctx context.Context, req *dto.CreateLeadRequest) (*dto.LeadResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateLeadRequest) (*dto.LeadResponse, error)
	Delete(ctx context.Context, id int64) error
}

type leadUsecase struct {
	log          *logrus.Logger
	leadRepo     repository.LeadRepository
	auditService service.AuditService
	paginator    Paginator
}

func NewLeadUsecase(log *logrus.Logger, leadRepo repository.LeadRepository, auditService service.AuditService, paginator Paginator) LeadUsecase {
	return &leadUsecase{
		log:          log,
		leadRepo:     leadRepo,
		auditService: auditService,
		paginator:    paginator,
	}
}

func (u *leadUsecase) List(ctx context.Context, query *dto.LeadListQuery) ([]dto.LeadResponse, *dto.PageInfo, error) {
	// YYYY-MM-DD compares correctly as a string
	if query.StartDate != "" && query.EndDate != "" && query.StartDate > query.EndDate {
		return nil, nil, ErrInvalidDateRange
	}

	filter := &entity.LeadFilter{
		Search:    strings.TrimSpace(query.Search),
		Status:    query.Status,
		Source:    query.Source,
		StartDate: query.StartDate,
		EndDate:   query.EndDate,
		Sort:      sortOrder(query.Sort, query.Order),
		Page:      u.paginator.Page(query.Page, query.Limit),
	}

	leads, total, err := u.leadRepo.FindAll(ctx, filter)
	if err != nil {
		u.log.Warnf("Failed to find leads: %+v", err)
		return nil, nil, lookupFailed(err)
	}

	return converter.LeadsToResponses(leads), pageInfo(filter.Page, total), nil
}

func (u *leadUsecase) ListSources(ctx context.Context) ([]string, error) {
	sources, err := u.leadRepo.FindSources(ctx)
	if err != nil {
		u.log.Warnf("Failed to find lead sources: %+v", err)
		return nil, lookupFailed(err)
	}
	if sources == nil {
		sources = []string{}
	}
	return sources, nil
}

func (u *leadUsecase) Create(ctx context.Context, req *dto.CreateLeadRequest) (*dto.LeadResponse, error) {
	lead := &entity.Lead{
		Name:   strings.TrimSpace(req.Name),
		Email:  strings.TrimSpace(req.Email),
		Phone:  req.Phone,
		Source: req.Source,
		Status: req.Status,
		Notes:  req.Notes,
	}
	if lead.Status == "" {
		lead.Status = entity.LeadStatusNew
	}

	if err := u.leadRepo.Create(ctx, lead); err != nil {
		u.log.Warnf("Failed to create lead: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, entity.AuditActionLeadCreate, "lead", strconv.FormatInt(lead.ID, 10), lead); err != nil {
		u.log.Warnf("Failed to audit lead create: %+v", err)
	}

	return converter.LeadToResponse(lead), nil
}

func (u *leadUsecase) Update(ctx context.Context, id int64, req *dto.UpdateLeadRequest) (*dto.LeadResponse, error) {
	lead, err := u.leadRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find lead: %+v", err)
		return nil, lookupFailed(err)
	}
	if lead == nil {
		return nil, ErrLeadNotFound
	}

	old := *lead
	if req.Name != nil {
		lead.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		lead.Email = strings.TrimSpace(*req.Email)
	}
	if req.Phone != nil {
		lead.Phone = *req.Phone
	}
	if req.Source != nil {
		lead.Source = *req.Source
	}
	if req.Status != nil {
		lead.Status = *req.Status
	}
	if req.Notes != nil {
		lead.Notes = req.Notes
	}

	if err := u.leadRepo.Update(ctx, lead); err != nil {
		u.log.Warnf("Failed to update lead: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, entity.AuditActionLeadUpdate, "lead", strconv.FormatInt(id, 10), old, lead); err != nil {
		u.log.Warnf("Failed to audit lead update: %+v", err)
	}

	return converter.LeadToResponse(lead), nil
}

func (u *leadUsecase) Delete(ctx context.Context, id int64) error {
	rows, err := u.leadRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete lead: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrLeadNotFound
	}

	if err := u.auditService.LogDelete(ctx, entity.AuditActionLeadDelete, "lead", strconv.FormatInt(id, 10), nil); err != nil {
		u.log.Warnf("Failed to audit lead delete: %+v", err)
	}
	return nil
}
