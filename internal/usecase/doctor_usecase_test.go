package usecase_test

import (
	"context"
	"errors"
	"testing"

	"truedoc-admin/config"
	"truedoc-admin/internal/delivery/dto"
	"truedoc-admin/internal/domain/entity"
	repomocks "truedoc-admin/internal/domain/repository/mocks"
	servicemocks "truedoc-admin/internal/service/mocks"
	"truedoc-admin/internal/usecase"
	"truedoc-admin/internal/usecase/mocks"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

func testPaginator() usecase.Paginator {
	return usecase.NewPaginator(config.PaginationConfig{DefaultPageSize: 10, MaxPageSize: 50})
}

func strPtr(s string) *string {
	return &s
}

type DoctorUsecaseTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	doctorRepo   *repomocks.MockDoctorRepository
	claimRepo    *repomocks.MockClaimRepository
	locationRepo *repomocks.MockLocationRepository
	moderation   *mocks.MockModerationUsecase
	auditService *servicemocks.MockAuditService
	usecase      usecase.DoctorUsecase
	ctx          context.Context
}

func (s *DoctorUsecaseTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.doctorRepo = repomocks.NewMockDoctorRepository(s.ctrl)
	s.claimRepo = repomocks.NewMockClaimRepository(s.ctrl)
	s.locationRepo = repomocks.NewMockLocationRepository(s.ctrl)
	s.moderation = mocks.NewMockModerationUsecase(s.ctrl)
	s.auditService = servicemocks.NewMockAuditService(s.ctrl)
	s.usecase = usecase.NewDoctorUsecase(newTestLogger(), s.doctorRepo, s.claimRepo, s.locationRepo,
		s.moderation, s.auditService, testPaginator())
	s.ctx = context.Background()

	s.auditService.EXPECT().LogUpdate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func (s *DoctorUsecaseTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestDoctorUsecaseSuite(t *testing.T) {
	suite.Run(t, new(DoctorUsecaseTestSuite))
}

func (s *DoctorUsecaseTestSuite) TestListDoctors_BuildsFilter() {
	query := &dto.DoctorListQuery{Search: "  souza ", State: "approved_with_pending_changes", Sort: "crm", Order: "desc", Page: 2, Limit: 500}
	doctors := []entity.Doctor{
		{ID: uuid.New(), Approved: true, Specialties: []entity.SpecialtyClaim{{ID: uuid.New()}}},
	}

	s.doctorRepo.EXPECT().FindAll(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, filter *entity.DoctorFilter) ([]entity.Doctor, int64, error) {
			s.Equal("souza", filter.Search)
			s.Require().NotNil(filter.State)
			s.Equal(entity.ApprovalStateApprovedWithPendingChanges, *filter.State)
			s.Equal(entity.Sort{Column: "crm", Desc: true}, filter.Sort)
			s.Equal(entity.Page{Number: 2, Size: 50}, filter.Page)
			return doctors, 51, nil
		})

	result, info, err := s.usecase.ListDoctors(s.ctx, query)

	s.Require().NoError(err)
	s.Require().Len(result, 1)
	s.Equal(entity.ApprovalStateApprovedWithPendingChanges, result[0].State)
	s.Equal(&dto.PageInfo{Page: 2, Limit: 50, Total: 51}, info)
}

func (s *DoctorUsecaseTestSuite) TestListDoctors_AllStates() {
	s.doctorRepo.EXPECT().FindAll(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, filter *entity.DoctorFilter) ([]entity.Doctor, int64, error) {
			s.Nil(filter.State)
			s.Equal(entity.Page{Number: 1, Size: 10}, filter.Page)
			return nil, 0, nil
		})

	result, info, err := s.usecase.ListDoctors(s.ctx, &dto.DoctorListQuery{})

	s.Require().NoError(err)
	s.Empty(result)
	s.Equal(int64(0), info.Total)
}

func (s *DoctorUsecaseTestSuite) TestListDoctors_LookupFailed() {
	s.doctorRepo.EXPECT().FindAll(s.ctx, gomock.Any()).Return(nil, int64(0), errors.New("timeout"))

	_, _, err := s.usecase.ListDoctors(s.ctx, &dto.DoctorListQuery{})

	s.ErrorIs(err, usecase.ErrLookupFailed)
}

func (s *DoctorUsecaseTestSuite) TestGetDoctor_NotFound() {
	id := uuid.New()
	s.doctorRepo.EXPECT().FindByID(s.ctx, id).Return(nil, nil)

	result, err := s.usecase.GetDoctor(s.ctx, id)

	s.Nil(result)
	s.ErrorIs(err, usecase.ErrDoctorNotFound)
}

func (s *DoctorUsecaseTestSuite) TestUpdateDoctor_WritesOnlyGivenFields() {
	id := uuid.New()
	req := &dto.UpdateDoctorRequest{
		Name:                  strPtr(" Ana Souza "),
		PendingLicenseRenewal: strPtr(""),
		RQE:                   strPtr("12345"),
	}

	s.doctorRepo.EXPECT().UpdateFields(s.ctx, id, map[string]interface{}{
		"nome":    "Ana Souza",
		"rqe":     strPtr("12345"),
		"new_rqe": (*string)(nil),
	}).Return(int64(1), nil)
	s.doctorRepo.EXPECT().FindByID(s.ctx, id).Return(&entity.Doctor{ID: id, Name: "Ana Souza", Approved: true}, nil)

	result, err := s.usecase.UpdateDoctor(s.ctx, id, req)

	s.Require().NoError(err)
	s.Equal(entity.ApprovalStateApproved, result.State)
}

func (s *DoctorUsecaseTestSuite) TestUpdateDoctor_ReplacesInsurancePlans() {
	id := uuid.New()
	plans := []uuid.UUID{uuid.New()}

	s.moderation.EXPECT().ReplaceDoctorInsurancePlans(s.ctx, id, plans).Return(&dto.DoctorStatusResponse{DoctorID: id}, nil)
	s.doctorRepo.EXPECT().FindByID(s.ctx, id).Return(&entity.Doctor{ID: id}, nil)

	result, err := s.usecase.UpdateDoctor(s.ctx, id, &dto.UpdateDoctorRequest{InsurancePlanIDs: &plans})

	s.Require().NoError(err)
	s.Equal(id, result.ID)
}

func (s *DoctorUsecaseTestSuite) TestUpdateDoctor_PartialPlanReplaceSurfaces() {
	id := uuid.New()
	plans := []uuid.UUID{uuid.New()}
	partial := &usecase.WriteFailedError{Kind: usecase.WriteInsurancePlansInsert, ID: id, Err: errors.New("fk")}

	s.moderation.EXPECT().ReplaceDoctorInsurancePlans(s.ctx, id, plans).Return(nil, partial)

	result, err := s.usecase.UpdateDoctor(s.ctx, id, &dto.UpdateDoctorRequest{InsurancePlanIDs: &plans})

	s.Nil(result)
	s.ErrorIs(err, usecase.ErrPlansPartiallyReplaced)
}

func (s *DoctorUsecaseTestSuite) TestUpdateDoctor_DuplicateEmail() {
	id := uuid.New()
	s.doctorRepo.EXPECT().UpdateFields(s.ctx, id, gomock.Any()).
		Return(int64(0), &pgconn.PgError{Code: "23505", ConstraintName: "medico_email_key"})

	result, err := s.usecase.UpdateDoctor(s.ctx, id, &dto.UpdateDoctorRequest{Email: strPtr("taken@example.com")})

	s.Nil(result)
	s.ErrorIs(err, usecase.ErrEmailAlreadyExists)
}

func (s *DoctorUsecaseTestSuite) TestUpdateDoctor_NotFound() {
	id := uuid.New()
	s.doctorRepo.EXPECT().UpdateFields(s.ctx, id, gomock.Any()).Return(int64(0), nil)

	_, err := s.usecase.UpdateDoctor(s.ctx, id, &dto.UpdateDoctorRequest{Name: strPtr("Ana")})

	s.ErrorIs(err, usecase.ErrDoctorNotFound)
}

func (s *DoctorUsecaseTestSuite) TestUpdateLocation_RejectsOtherDoctorsLocation() {
	locationID := uuid.New()
	s.locationRepo.EXPECT().FindByID(s.ctx, locationID).Return(&entity.Location{ID: locationID, DoctorID: uuid.New()}, nil)

	result, err := s.usecase.UpdateLocation(s.ctx, uuid.New(), locationID, &dto.UpdateLocationRequest{})

	s.Nil(result)
	s.ErrorIs(err, usecase.ErrLocationNotFound)
}

func (s *DoctorUsecaseTestSuite) TestUpdateLocation_Success() {
	doctorID, locationID := uuid.New(), uuid.New()
	req := &dto.UpdateLocationRequest{
		PostalCode: "01310-100",
		Street:     "Av. Paulista",
		Number:     "1000",
		District:   "Bela Vista",
		City:       "São Paulo",
		State:      "sp",
	}

	s.locationRepo.EXPECT().FindByID(s.ctx, locationID).Return(&entity.Location{ID: locationID, DoctorID: doctorID, City: "Santos"}, nil)
	s.locationRepo.EXPECT().Update(s.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, l *entity.Location) error {
		s.Equal("São Paulo", l.City)
		s.Equal("SP", l.State)
		return nil
	})

	result, err := s.usecase.UpdateLocation(s.ctx, doctorID, locationID, req)

	s.Require().NoError(err)
	s.Equal("SP", result.State)
	s.Equal("Av. Paulista", result.Street)
}

func (s *DoctorUsecaseTestSuite) TestUpdateSpecialtyInstitution_RequiresExactlyOne() {
	institutionID := uuid.New()

	_, err := s.usecase.UpdateSpecialtyInstitution(s.ctx, uuid.New(), &dto.UpdateSpecialtyInstitutionRequest{})
	s.ErrorIs(err, usecase.ErrInvalidInstitution)

	_, err = s.usecase.UpdateSpecialtyInstitution(s.ctx, uuid.New(), &dto.UpdateSpecialtyInstitutionRequest{
		InstitutionID:    &institutionID,
		InstitutionOther: strPtr("Hospital X"),
	})
	s.ErrorIs(err, usecase.ErrInvalidInstitution)

	_, err = s.usecase.UpdateSpecialtyInstitution(s.ctx, uuid.New(), &dto.UpdateSpecialtyInstitutionRequest{
		InstitutionOther: strPtr("   "),
	})
	s.ErrorIs(err, usecase.ErrInvalidInstitution)
}

func (s *DoctorUsecaseTestSuite) TestUpdateSpecialtyInstitution_FreeText() {
	claimID, doctorID := uuid.New(), uuid.New()

	s.claimRepo.EXPECT().FindDoctorID(s.ctx, entity.ClaimKindSpecialty, claimID).Return(doctorID, nil)
	s.claimRepo.EXPECT().UpdateSpecialtyInstitution(s.ctx, claimID, (*uuid.UUID)(nil), strPtr("Hospital X")).Return(int64(1), nil)
	s.doctorRepo.EXPECT().FindByID(s.ctx, doctorID).Return(&entity.Doctor{ID: doctorID}, nil)

	result, err := s.usecase.UpdateSpecialtyInstitution(s.ctx, claimID, &dto.UpdateSpecialtyInstitutionRequest{
		InstitutionOther: strPtr(" Hospital X "),
	})

	s.Require().NoError(err)
	s.Equal(doctorID, result.ID)
}

func (s *DoctorUsecaseTestSuite) TestUpdateSpecialtyInstitution_UnknownInstitution() {
	claimID, institutionID := uuid.New(), uuid.New()

	s.claimRepo.EXPECT().FindDoctorID(s.ctx, entity.ClaimKindSpecialty, claimID).Return(uuid.New(), nil)
	s.claimRepo.EXPECT().UpdateSpecialtyInstitution(s.ctx, claimID, &institutionID, (*string)(nil)).
		Return(int64(0), &pgconn.PgError{Code: "23503", ConstraintName: "medico_especialidade_residencia_instituicao_residencia_id_fkey"})

	_, err := s.usecase.UpdateSpecialtyInstitution(s.ctx, claimID, &dto.UpdateSpecialtyInstitutionRequest{InstitutionID: &institutionID})

	s.ErrorIs(err, usecase.ErrInstitutionNotFound)
}
