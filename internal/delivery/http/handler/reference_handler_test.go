package handler_test

import (
	"net/http"
	"testing"

	"truedoc-admin/internal/delivery/dto"
	"truedoc-admin/internal/delivery/http/handler"
	"truedoc-admin/internal/domain/entity"
	"truedoc-admin/internal/usecase"
	"truedoc-admin/internal/usecase/mocks"
	"truedoc-admin/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestReferenceHandler_UsesMountedKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockReferenceUsecase(ctrl)
	h := handler.NewReferenceHandler(entity.ReferenceKindUniversity, uc, validator.NewValidator())

	uc.EXPECT().List(gomock.Any(), entity.ReferenceKindUniversity, &dto.ReferenceListQuery{Search: "usp"}).
		Return([]dto.ReferenceResponse{{ID: uuid.New(), Name: "USP"}}, &dto.PageInfo{Page: 1, Limit: 10, Total: 1}, nil)

	rec := serve(t, http.MethodGet, "/admin/universities", "/admin/universities?search=usp", nil, h.GetAll)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReferenceHandler_CreateConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockReferenceUsecase(ctrl)
	h := handler.NewReferenceHandler(entity.ReferenceKindInstitution, uc, validator.NewValidator())

	uc.EXPECT().Create(gomock.Any(), entity.ReferenceKindInstitution, &dto.ReferenceRequest{Name: "Santa Casa"}).
		Return(nil, usecase.ErrInstitutionExists)

	rec := serve(t, http.MethodPost, "/admin/institutions", "/admin/institutions", map[string]string{"name": "Santa Casa"}, h.Create)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestReferenceHandler_DeleteInUse(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockReferenceUsecase(ctrl)
	h := handler.NewReferenceHandler(entity.ReferenceKindInsurancePlan, uc, validator.NewValidator())
	id := uuid.New()

	uc.EXPECT().Delete(gomock.Any(), entity.ReferenceKindInsurancePlan, id).Return(usecase.ErrReferenceInUse)

	rec := serve(t, http.MethodDelete, "/admin/insurance-plans/{id}", "/admin/insurance-plans/"+id.String(), nil, h.Delete)

	assert.Equal(t, http.StatusConflict, rec.Code)
}
