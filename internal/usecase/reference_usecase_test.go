package usecase_test

import (
	"context"
	"errors"
	"testing"

	"truedoc-admin/internal/delivery/dto"
	"truedoc-admin/internal/domain/entity"
	repomocks "truedoc-admin/internal/domain/repository/mocks"
	servicemocks "truedoc-admin/internal/service/mocks"
	"truedoc-admin/internal/usecase"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReferenceUsecaseTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	referenceRepo *repomocks.MockReferenceRepository
	specialtyRepo *repomocks.MockSpecialtyRepository
	auditService  *servicemocks.MockAuditService
	usecase       usecase.ReferenceUsecase
	ctx           context.Context
}

func (s *ReferenceUsecaseTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.referenceRepo = repomocks.NewMockReferenceRepository(s.ctrl)
	s.specialtyRepo = repomocks.NewMockSpecialtyRepository(s.ctrl)
	s.auditService = servicemocks.NewMockAuditService(s.ctrl)
	s.usecase = usecase.NewReferenceUsecase(newTestLogger(), s.referenceRepo, s.specialtyRepo, s.auditService, testPaginator())
	s.ctx = context.Background()
}

func (s *ReferenceUsecaseTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestReferenceUsecaseSuite(t *testing.T) {
	suite.Run(t, new(ReferenceUsecaseTestSuite))
}

func (s *ReferenceUsecaseTestSuite) TestList() {
	refs := []entity.NamedReference{{ID: uuid.New(), Name: "Unimed"}}
	s.referenceRepo.EXPECT().FindAll(s.ctx, entity.ReferenceKindInsurancePlan, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ entity.ReferenceKind, filter *entity.ReferenceFilter) ([]entity.NamedReference, int64, error) {
			s.Equal("uni", filter.Search)
			s.Equal(entity.Sort{Column: "nome"}, filter.Sort)
			return refs, 1, nil
		})

	result, info, err := s.usecase.List(s.ctx, entity.ReferenceKindInsurancePlan, &dto.ReferenceListQuery{Search: "uni"})

	s.Require().NoError(err)
	s.Require().Len(result, 1)
	s.Equal("Unimed", result[0].Name)
	s.Equal(int64(1), info.Total)
}

func (s *ReferenceUsecaseTestSuite) TestCreate_Plan() {
	s.referenceRepo.EXPECT().Create(s.ctx, entity.ReferenceKindInsurancePlan, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ entity.ReferenceKind, ref *entity.NamedReference) error {
			s.NotEqual(uuid.Nil, ref.ID)
			s.Equal("Amil", ref.Name)
			return nil
		})
	s.auditService.EXPECT().LogCreate(s.ctx, entity.AuditActionReferenceCreate, "insurance_plan", gomock.Any(), gomock.Any()).Return(nil)

	result, err := s.usecase.Create(s.ctx, entity.ReferenceKindInsurancePlan, &dto.ReferenceRequest{Name: " Amil "})

	s.Require().NoError(err)
	s.Equal("Amil", result.Name)
}

func (s *ReferenceUsecaseTestSuite) TestCreate_DuplicateName() {
	s.referenceRepo.EXPECT().Create(s.ctx, entity.ReferenceKindUniversity, gomock.Any()).
		Return(&pgconn.PgError{Code: "23505", ConstraintName: "faculdade_nome_key"})

	result, err := s.usecase.Create(s.ctx, entity.ReferenceKindUniversity, &dto.ReferenceRequest{Name: "USP"})

	s.Nil(result)
	s.ErrorIs(err, usecase.ErrReferenceExists)
}

func (s *ReferenceUsecaseTestSuite) TestCreate_InstitutionExists() {
	s.referenceRepo.EXPECT().ExistsByName(s.ctx, entity.ReferenceKindInstitution, "Hospital das Clínicas").Return(true, nil)

	result, err := s.usecase.Create(s.ctx, entity.ReferenceKindInstitution, &dto.ReferenceRequest{Name: "Hospital das Clínicas"})

	s.Nil(result)
	s.ErrorIs(err, usecase.ErrInstitutionExists)
}

func (s *ReferenceUsecaseTestSuite) TestUpdate_NotFound() {
	id := uuid.New()
	s.referenceRepo.EXPECT().FindByID(s.ctx, entity.ReferenceKindUniversity, id).Return(nil, nil)

	result, err := s.usecase.Update(s.ctx, entity.ReferenceKindUniversity, id, &dto.ReferenceRequest{Name: "Unifesp"})

	s.Nil(result)
	s.ErrorIs(err, usecase.ErrReferenceNotFound)
}

func (s *ReferenceUsecaseTestSuite) TestUpdate_Success() {
	id := uuid.New()
	old := &entity.NamedReference{ID: id, Name: "Unifesp"}
	s.referenceRepo.EXPECT().FindByID(s.ctx, entity.ReferenceKindUniversity, id).Return(old, nil)
	s.referenceRepo.EXPECT().Update(s.ctx, entity.ReferenceKindUniversity, &entity.NamedReference{ID: id, Name: "UNIFESP"}).Return(int64(1), nil)
	s.auditService.EXPECT().LogUpdate(s.ctx, entity.AuditActionReferenceUpdate, "university", id.String(), old, gomock.Any()).Return(nil)

	result, err := s.usecase.Update(s.ctx, entity.ReferenceKindUniversity, id, &dto.ReferenceRequest{Name: "UNIFESP"})

	s.Require().NoError(err)
	s.Equal("UNIFESP", result.Name)
}

func (s *ReferenceUsecaseTestSuite) TestDelete_InUse() {
	id := uuid.New()
	s.referenceRepo.EXPECT().Delete(s.ctx, entity.ReferenceKindInsurancePlan, id).
		Return(int64(0), &pgconn.PgError{Code: "23503", ConstraintName: "medico_convenios_convenio_id_fkey"})

	s.ErrorIs(s.usecase.Delete(s.ctx, entity.ReferenceKindInsurancePlan, id), usecase.ErrReferenceInUse)
}

func (s *ReferenceUsecaseTestSuite) TestDelete_NotFound() {
	id := uuid.New()
	s.referenceRepo.EXPECT().Delete(s.ctx, entity.ReferenceKindInsurancePlan, id).Return(int64(0), nil)

	s.ErrorIs(s.usecase.Delete(s.ctx, entity.ReferenceKindInsurancePlan, id), usecase.ErrReferenceNotFound)
}

func (s *ReferenceUsecaseTestSuite) TestDelete_Success() {
	id := uuid.New()
	s.referenceRepo.EXPECT().Delete(s.ctx, entity.ReferenceKindInstitution, id).Return(int64(1), nil)
	s.auditService.EXPECT().LogDelete(s.ctx, entity.AuditActionReferenceDelete, "institution", id.String(), nil).Return(nil)

	s.NoError(s.usecase.Delete(s.ctx, entity.ReferenceKindInstitution, id))
}

func (s *ReferenceUsecaseTestSuite) TestListSpecialties() {
	s.specialtyRepo.EXPECT().FindAll(s.ctx).Return([]entity.Specialty{
		{ID: uuid.New(), Name: "Cardiologia", Type: entity.SpecialtyTypeE},
	}, nil)

	result, err := s.usecase.ListSpecialties(s.ctx)

	s.Require().NoError(err)
	s.Require().Len(result, 1)
	s.Equal("Cardiologia", result[0].Name)
}

func (s *ReferenceUsecaseTestSuite) TestListSpecialties_LookupFailed() {
	s.specialtyRepo.EXPECT().FindAll(s.ctx).Return(nil, errors.New("timeout"))

	_, err := s.usecase.ListSpecialties(s.ctx)

	s.ErrorIs(err, usecase.ErrLookupFailed)
}
