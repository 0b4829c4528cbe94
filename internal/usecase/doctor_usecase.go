package usecase

//go:generate mockgen -source=doctor_usecase.go -destination=mocks/doctor_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"strings"

	"truedoc-admin/internal/converter"
	"truedoc-admin/internal/delivery/dto"
	"truedoc-admin/internal/domain/entity"
	"truedoc-admin/internal/domain/repository"
	"truedoc-admin/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrLocationNotFound    = errors.New("location not found")
	ErrInstitutionNotFound = errors.New("institution not found")
	ErrUniversityNotFound  = errors.New("university not found")
	ErrInvalidInstitution  = errors.New("exactly one of institution_id or institution_other is required")
)

type DoctorUsecase interface {
	ListDoctors(ctx context.Context, query *dto.DoctorListQuery) ([]dto.DoctorListItemResponse, *dto.PageInfo, error)
	GetDoctor(ctx context.Context, id uuid.UUID) (*dto.DoctorDetailResponse, error)
	UpdateDoctor(ctx context.Context, id uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorDetailResponse, error)
	UpdateLocation(ctx context.Context, doctorID, locationID uuid.UUID, req *dto.UpdateLocationRequest) (*dto.LocationResponse, error)
	UpdateSpecialtyInstitution(ctx context.Context, claimID uuid.UUID, req *dto.UpdateSpecialtyInstitutionRequest) (*dto.DoctorDetailResponse, error)
}

type doctorUsecase struct {
	log          *logrus.Logger
	doctorRepo   repository.DoctorRepository
	claimRepo    repository.ClaimRepository
	locationRepo repository.LocationRepository
	moderation   ModerationUsecase
	auditService service.AuditService
	paginator    Paginator
}

func NewDoctorUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	claimRepo repository.ClaimRepository,
	locationRepo repository.LocationRepository,
	moderation ModerationUsecase,
	auditService service.AuditService,
	paginator Paginator,
) DoctorUsecase {
	return &doctorUsecase{
		log:          log,
		doctorRepo:   doctorRepo,
		claimRepo:    claimRepo,
		locationRepo: locationRepo,
		moderation:   moderation,
		auditService: auditService,
		paginator:    paginator,
	}
}

func (u *doctorUsecase) ListDoctors(ctx context.Context, query *dto.DoctorListQuery) ([]dto.DoctorListItemResponse, *dto.PageInfo, error) {
	filter := &entity.DoctorFilter{
		Search: strings.TrimSpace(query.Search),
		Sort:   sortOrder(query.Sort, query.Order),
		Page:   u.paginator.Page(query.Page, query.Limit),
	}
	if query.State != "" {
		state, err := entity.ParseApprovalState(query.State)
		if err != nil {
			return nil, nil, err
		}
		filter.State = &state
	}

	doctors, total, err := u.doctorRepo.FindAll(ctx, filter)
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, nil, lookupFailed(err)
	}

	return converter.DoctorsToListResponses(doctors), pageInfo(filter.Page, total), nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, id uuid.UUID) (*dto.DoctorDetailResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, lookupFailed(err)
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToDetailResponse(doctor), nil
}

// UpdateDoctor writes the profile fields first, then replaces insurance plans when a
// selection is given. Plans go through the two-phase replace of ModerationUsecase.
func (u *doctorUsecase) UpdateDoctor(ctx context.Context, id uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorDetailResponse, error) {
	fields := doctorUpdateFields(req)

	if len(fields) > 0 {
		rows, err := u.doctorRepo.UpdateFields(ctx, id, fields)
		if err != nil {
			if isDuplicateKeyError(err, "email") {
				return nil, ErrEmailAlreadyExists
			}
			if isForeignKeyError(err, "faculdade") {
				return nil, ErrUniversityNotFound
			}
			u.log.Warnf("Failed to update doctor: %+v", err)
			return nil, &WriteFailedError{Kind: WriteDoctorProfile, ID: id, Err: err}
		}
		if rows == 0 {
			return nil, ErrDoctorNotFound
		}

		if err := u.auditService.LogUpdate(ctx, entity.AuditActionDoctorUpdate, "doctor", id.String(), nil, fields); err != nil {
			u.log.Warnf("Failed to audit doctor update: %+v", err)
		}
	}

	if req.InsurancePlanIDs != nil {
		if _, err := u.moderation.ReplaceDoctorInsurancePlans(ctx, id, *req.InsurancePlanIDs); err != nil {
			return nil, err
		}
	}

	return u.GetDoctor(ctx, id)
}

func (u *doctorUsecase) UpdateLocation(ctx context.Context, doctorID, locationID uuid.UUID, req *dto.UpdateLocationRequest) (*dto.LocationResponse, error) {
	location, err := u.locationRepo.FindByID(ctx, locationID)
	if err != nil {
		u.log.Warnf("Failed to find location: %+v", err)
		return nil, lookupFailed(err)
	}
	if location == nil || location.DoctorID != doctorID {
		return nil, ErrLocationNotFound
	}

	old := *location
	location.Label = req.Label
	location.PostalCode = req.PostalCode
	location.Street = req.Street
	location.Number = req.Number
	location.Complement = req.Complement
	location.District = req.District
	location.City = req.City
	location.State = strings.ToUpper(req.State)
	location.Phone = req.Phone
	location.Latitude = req.Latitude
	location.Longitude = req.Longitude

	if err := u.locationRepo.Update(ctx, location); err != nil {
		u.log.Warnf("Failed to update location: %+v", err)
		return nil, &WriteFailedError{Kind: WriteLocation, ID: locationID, Err: err}
	}

	if err := u.auditService.LogUpdate(ctx, entity.AuditActionLocationUpdate, "location", locationID.String(), old, location); err != nil {
		u.log.Warnf("Failed to audit location update: %+v", err)
	}

	return converter.LocationToResponse(location), nil
}

func (u *doctorUsecase) UpdateSpecialtyInstitution(ctx context.Context, claimID uuid.UUID, req *dto.UpdateSpecialtyInstitutionRequest) (*dto.DoctorDetailResponse, error) {
	institutionID, institutionOther := req.InstitutionID, req.InstitutionOther
	if institutionOther != nil {
		trimmed := strings.TrimSpace(*institutionOther)
		if trimmed == "" {
			institutionOther = nil
		} else {
			institutionOther = &trimmed
		}
	}
	if (institutionID == nil) == (institutionOther == nil) {
		return nil, ErrInvalidInstitution
	}

	doctorID, err := u.claimRepo.FindDoctorID(ctx, entity.ClaimKindSpecialty, claimID)
	if err != nil {
		u.log.Warnf("Failed to find specialty claim: %+v", err)
		return nil, lookupFailed(err)
	}
	if doctorID == uuid.Nil {
		return nil, ErrClaimNotFound
	}

	rows, err := u.claimRepo.UpdateSpecialtyInstitution(ctx, claimID, institutionID, institutionOther)
	if err != nil {
		if isForeignKeyError(err, "instituicao") {
			return nil, ErrInstitutionNotFound
		}
		u.log.Warnf("Failed to update specialty institution: %+v", err)
		return nil, &WriteFailedError{Kind: WriteClaimInstitution, ID: claimID, Err: err}
	}
	if rows == 0 {
		return nil, ErrClaimNotFound
	}

	if err := u.auditService.LogUpdate(ctx, entity.AuditActionClaimInstitutionUpdate, string(entity.ClaimKindSpecialty), claimID.String(), nil, map[string]interface{}{
		"institution_id":    institutionID,
		"institution_other": institutionOther,
	}); err != nil {
		u.log.Warnf("Failed to audit specialty institution update: %+v", err)
	}

	return u.GetDoctor(ctx, doctorID)
}

func doctorUpdateFields(req *dto.UpdateDoctorRequest) map[string]interface{} {
	fields := make(map[string]interface{})
	setString := func(column string, value *string) {
		if value != nil {
			fields[column] = strings.TrimSpace(*value)
		}
	}

	setString("nome", req.Name)
	setString("crm", req.LicenseNumber)
	setString("email", req.Email)
	setString("website", req.Website)
	setString("descricao", req.Description)
	setString("faculdade_outro", req.UniversityOther)
	setString("forma_contato", req.ContactForm)
	setString("contato", req.Contact)
	setString("facebook", req.Facebook)
	setString("instagram", req.Instagram)
	setString("tiktok", req.TikTok)
	setString("linkedin", req.LinkedIn)
	setString("twitter", req.Twitter)
	setString("convenio_outro", req.InsuranceOther)

	if req.Approved != nil {
		fields["aprovado"] = *req.Approved
	}
	if req.Telehealth != nil {
		fields["teleconsulta"] = *req.Telehealth
	}
	if req.UniversityID != nil {
		fields["faculdade_id"] = *req.UniversityID
	}
	if req.RQE != nil {
		fields["rqe"] = nullableString(*req.RQE)
	}
	// An empty resubmitted license code clears the pending renewal
	if req.PendingLicenseRenewal != nil {
		fields["new_rqe"] = nullableString(*req.PendingLicenseRenewal)
	}

	return fields
}

func nullableString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
