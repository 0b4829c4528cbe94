package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
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
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newModerationHandler(t *testing.T) (*handler.ModerationHandler, *mocks.MockModerationUsecase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockModerationUsecase(ctrl)
	return handler.NewModerationHandler(uc, validator.NewValidator()), uc
}

func TestModerationHandler_SetDoctorApproval(t *testing.T) {
	doctorID := uuid.New()
	target := "/admin/doctors/" + doctorID.String() + "/approval"
	const pattern = "/admin/doctors/{id}/approval"

	t.Run("returns resolved state", func(t *testing.T) {
		h, uc := newModerationHandler(t)
		uc.EXPECT().SetDoctorApproved(gomock.Any(), doctorID, true).Return(&dto.DoctorStatusResponse{
			DoctorID:       doctorID,
			Approved:       true,
			State:          entity.ApprovalStateApproved,
			PendingReasons: []entity.PendingReason{},
		}, nil)

		rec := serve(t, http.MethodPut, pattern, target, map[string]bool{"approved": true}, h.SetDoctorApproval)

		require.Equal(t, http.StatusOK, rec.Code)
		env := decode(t, rec)
		assert.True(t, env.Success)
		var status dto.DoctorStatusResponse
		require.NoError(t, json.Unmarshal(env.Data, &status))
		assert.Equal(t, entity.ApprovalStateApproved, status.State)
	})

	t.Run("missing flag is a validation error", func(t *testing.T) {
		h, _ := newModerationHandler(t)

		rec := serve(t, http.MethodPut, pattern, target, map[string]string{}, h.SetDoctorApproval)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Validation failed", decode(t, rec).Message)
	})

	t.Run("invalid id", func(t *testing.T) {
		h, _ := newModerationHandler(t)

		rec := serve(t, http.MethodPut, pattern, "/admin/doctors/nope/approval", map[string]bool{"approved": true}, h.SetDoctorApproval)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	errorCases := []struct {
		name string
		err  error
		code int
	}{
		{"not found", usecase.ErrDoctorNotFound, http.StatusNotFound},
		{"lookup failed", fmt.Errorf("%w: %w", usecase.ErrLookupFailed, errors.New("timeout")), http.StatusServiceUnavailable},
		{"write failed", &usecase.WriteFailedError{Kind: usecase.WriteDoctorApproval, ID: doctorID, Err: errors.New("reset")}, http.StatusInternalServerError},
	}
	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			h, uc := newModerationHandler(t)
			uc.EXPECT().SetDoctorApproved(gomock.Any(), doctorID, false).Return(nil, tc.err)

			rec := serve(t, http.MethodPut, pattern, target, map[string]bool{"approved": false}, h.SetDoctorApproval)

			assert.Equal(t, tc.code, rec.Code)
			assert.False(t, decode(t, rec).Success)
		})
	}
}

func TestModerationHandler_SetClaimVisibility(t *testing.T) {
	claimID := uuid.New()
	const pattern = "/admin/claims/{kind}/{id}/visibility"

	t.Run("unknown kind", func(t *testing.T) {
		h, _ := newModerationHandler(t)

		rec := serve(t, http.MethodPut, pattern, "/admin/claims/diploma/"+claimID.String()+"/visibility",
			map[string]bool{"visible": true}, h.SetClaimVisibility)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("subspecialty has no visibility", func(t *testing.T) {
		h, uc := newModerationHandler(t)
		uc.EXPECT().SetClaimVisibility(gomock.Any(), entity.ClaimKindSubspecialty, claimID, true).Return(nil, usecase.ErrUnsupportedClaimKind)

		rec := serve(t, http.MethodPut, pattern, "/admin/claims/subspecialty/"+claimID.String()+"/visibility",
			map[string]bool{"visible": true}, h.SetClaimVisibility)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("claim not found", func(t *testing.T) {
		h, uc := newModerationHandler(t)
		uc.EXPECT().SetClaimVisibility(gomock.Any(), entity.ClaimKindOtherTraining, claimID, false).Return(nil, usecase.ErrClaimNotFound)

		rec := serve(t, http.MethodPut, pattern, "/admin/claims/other_training/"+claimID.String()+"/visibility",
			map[string]bool{"visible": false}, h.SetClaimVisibility)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Claim not found", decode(t, rec).Message)
	})
}

func TestModerationHandler_SetClaimApproval(t *testing.T) {
	h, uc := newModerationHandler(t)
	claimID, doctorID := uuid.New(), uuid.New()
	uc.EXPECT().SetClaimApproved(gomock.Any(), entity.ClaimKindSpecialty, claimID, true).Return(&dto.DoctorStatusResponse{
		DoctorID: doctorID,
		Approved: true,
		State:    entity.ApprovalStateApproved,
	}, nil)

	rec := serve(t, http.MethodPut, "/admin/claims/{kind}/{id}/approval", "/admin/claims/specialty/"+claimID.String()+"/approval",
		map[string]bool{"approved": true}, h.SetClaimApproval)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestModerationHandler_ReplaceInsurancePlans(t *testing.T) {
	doctorID := uuid.New()
	target := "/admin/doctors/" + doctorID.String() + "/insurance-plans"
	const pattern = "/admin/doctors/{id}/insurance-plans"

	t.Run("empty selection clears plans", func(t *testing.T) {
		h, uc := newModerationHandler(t)
		uc.EXPECT().ReplaceDoctorInsurancePlans(gomock.Any(), doctorID, []uuid.UUID{}).Return(&dto.DoctorStatusResponse{DoctorID: doctorID}, nil)

		rec := serve(t, http.MethodPut, pattern, target, `{"insurance_plan_ids": []}`, h.ReplaceInsurancePlans)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("partial replacement has its own message", func(t *testing.T) {
		h, uc := newModerationHandler(t)
		planID := uuid.New()
		uc.EXPECT().ReplaceDoctorInsurancePlans(gomock.Any(), doctorID, []uuid.UUID{planID}).
			Return(nil, &usecase.WriteFailedError{Kind: usecase.WriteInsurancePlansInsert, ID: doctorID, Err: errors.New("fk")})

		rec := serve(t, http.MethodPut, pattern, target, map[string][]uuid.UUID{"insurance_plan_ids": {planID}}, h.ReplaceInsurancePlans)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, decode(t, rec).Message, "Insurance plans were removed")
	})

	t.Run("missing selection", func(t *testing.T) {
		h, _ := newModerationHandler(t)

		rec := serve(t, http.MethodPut, pattern, target, `{}`, h.ReplaceInsurancePlans)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
