//go:build integration

package repository_test

import (
	"context"
	"testing"

	"truedoc-admin/internal/domain/entity"
	domainRepo "truedoc-admin/internal/domain/repository"
	"truedoc-admin/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type DoctorRepositorySuite struct {
	suite.Suite
	db         *gorm.DB
	doctors    domainRepo.DoctorRepository
	claims     domainRepo.ClaimRepository
	planLinks  domainRepo.DoctorInsurancePlanRepository
	ctx        context.Context
	specialty  entity.Specialty
	seededByID map[uuid.UUID]string
}

func TestDoctorRepositorySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(DoctorRepositorySuite))
}

func (s *DoctorRepositorySuite) SetupSuite() {
	s.db = newPostgres(s.T())
	s.doctors = repository.NewDoctorRepository(s.db)
	s.claims = repository.NewClaimRepository(s.db)
	s.planLinks = repository.NewDoctorInsurancePlanRepository(s.db)
	s.ctx = context.Background()
}

func (s *DoctorRepositorySuite) SetupTest() {
	truncateAll(s.T(), s.db)
	s.specialty = entity.Specialty{ID: uuid.New(), Name: "Cardiologia", Type: entity.SpecialtyTypeE}
	s.Require().NoError(s.db.Create(&s.specialty).Error)
	s.seededByID = map[uuid.UUID]string{}
}

func strPtr(s string) *string { return &s }

// seed inserts a doctor with the given flags and claims
func (s *DoctorRepositorySuite) seed(label string, approved bool, newRQE *string, claimsApproved ...bool) uuid.UUID {
	doctor := entity.Doctor{
		ID:                    uuid.New(),
		Name:                  "Dr. " + label,
		LicenseNumber:         "CRM-" + label,
		Email:                 label + "@truedoc.example",
		Approved:              approved,
		PendingLicenseRenewal: newRQE,
	}
	s.Require().NoError(s.db.Omit("Specialties", "Subspecialties", "OtherTrainings", "InsurancePlans", "Locations", "University").Create(&doctor).Error)

	for i, ok := range claimsApproved {
		switch i % 3 {
		case 0:
			s.Require().NoError(s.db.Omit("Specialty", "Institution").Create(&entity.SpecialtyClaim{
				ID: uuid.New(), DoctorID: doctor.ID, SpecialtyID: s.specialty.ID, Approved: ok,
			}).Error)
		case 1:
			s.Require().NoError(s.db.Omit("Institution").Create(&entity.SubspecialtyClaim{
				ID: uuid.New(), DoctorID: doctor.ID, Name: "Arritmia", Approved: ok,
			}).Error)
		case 2:
			s.Require().NoError(s.db.Create(&entity.OtherTrainingClaim{
				ID: uuid.New(), DoctorID: doctor.ID, Name: "ACLS", Approved: ok,
			}).Error)
		}
	}

	s.seededByID[doctor.ID] = label
	return doctor.ID
}

func (s *DoctorRepositorySuite) seedMixed() {
	s.seed("pending", false, nil)
	s.seed("pending-with-claims", false, nil, false, true)
	s.seed("approved", true, nil)
	s.seed("approved-all-claims", true, nil, true, true, true)
	s.seed("empty-rqe", true, strPtr(""))
	s.seed("whitespace-rqe", true, strPtr("   "))
	s.seed("new-rqe", true, strPtr("12345"))
	s.seed("specialty-pending", true, nil, false)
	s.seed("subspecialty-pending", true, nil, true, false)
	s.seed("training-pending", true, nil, true, true, false)
}

func (s *DoctorRepositorySuite) TestCountByStateMatchesResolver() {
	s.seedMixed()

	want := map[entity.ApprovalState]int64{}
	for id := range s.seededByID {
		snapshot, err := s.doctors.FindSnapshot(s.ctx, id)
		s.Require().NoError(err)
		s.Require().NotNil(snapshot)
		want[snapshot.ApprovalState()]++
	}

	for _, state := range []entity.ApprovalState{
		entity.ApprovalStatePending,
		entity.ApprovalStateApproved,
		entity.ApprovalStateApprovedWithPendingChanges,
	} {
		got, err := s.doctors.CountByState(s.ctx, state)
		s.Require().NoError(err)
		s.Equal(want[state], got, "state %s", state)
	}

	s.Equal(int64(2), want[entity.ApprovalStatePending])
	s.Equal(int64(3), want[entity.ApprovalStateApproved])
	s.Equal(int64(5), want[entity.ApprovalStateApprovedWithPendingChanges])

	var approvedRows int64
	s.Require().NoError(s.db.Model(&entity.Doctor{}).Where("aprovado = true").Count(&approvedRows).Error)
	s.Equal(approvedRows, want[entity.ApprovalStateApproved]+want[entity.ApprovalStateApprovedWithPendingChanges])
}

func (s *DoctorRepositorySuite) TestFindAllFiltersByStateAndSearch() {
	s.seedMixed()
	state := entity.ApprovalStateApprovedWithPendingChanges

	doctors, total, err := s.doctors.FindAll(s.ctx, &entity.DoctorFilter{
		Search: "pending",
		State:  &state,
		Sort:   entity.Sort{Column: "nome"},
		Page:   entity.Page{Number: 1, Size: 2},
	})

	s.Require().NoError(err)
	s.Equal(int64(3), total)
	s.Require().Len(doctors, 2)
	s.Equal("Dr. specialty-pending", doctors[0].Name)
	s.Equal("Dr. subspecialty-pending", doctors[1].Name)
	for _, d := range doctors {
		s.Equal(state, d.ApprovalState())
	}
}

func (s *DoctorRepositorySuite) TestSetApprovedReportsMissingRows() {
	id := s.seed("pending", false, nil)

	rows, err := s.doctors.SetApproved(s.ctx, id, true)
	s.Require().NoError(err)
	s.Equal(int64(1), rows)

	rows, err = s.doctors.SetApproved(s.ctx, uuid.New(), true)
	s.Require().NoError(err)
	s.Equal(int64(0), rows)

	doctor, err := s.doctors.FindByEmail(s.ctx, "pending@truedoc.example")
	s.Require().NoError(err)
	s.True(doctor.Approved)
}

func (s *DoctorRepositorySuite) TestClaimOwnershipAndApproval() {
	id := s.seed("claims", true, nil, false)
	snapshot, err := s.doctors.FindSnapshot(s.ctx, id)
	s.Require().NoError(err)
	s.Require().Len(snapshot.Specialties, 1)
	claimID := snapshot.Specialties[0].ID

	owner, err := s.claims.FindDoctorID(s.ctx, entity.ClaimKindSpecialty, claimID)
	s.Require().NoError(err)
	s.Equal(id, owner)

	missing, err := s.claims.FindDoctorID(s.ctx, entity.ClaimKindOtherTraining, claimID)
	s.Require().NoError(err)
	s.Equal(uuid.Nil, missing)

	rows, err := s.claims.SetApproved(s.ctx, entity.ClaimKindSpecialty, claimID, true)
	s.Require().NoError(err)
	s.Equal(int64(1), rows)

	rows, err = s.claims.SetVisibility(s.ctx, entity.ClaimKindSpecialty, claimID, true)
	s.Require().NoError(err)
	s.Equal(int64(1), rows)

	snapshot, err = s.doctors.FindSnapshot(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(entity.ApprovalStateApproved, snapshot.ApprovalState())
	s.True(snapshot.Specialties[0].ShowOnPublicProfile)
}

func (s *DoctorRepositorySuite) TestReplaceInsurancePlanLinks() {
	id := s.seed("plans", true, nil)
	plans := []entity.InsurancePlan{
		{ID: uuid.New(), Name: "Unimed"},
		{ID: uuid.New(), Name: "Amil"},
	}
	s.Require().NoError(s.db.Create(&plans).Error)

	s.Require().NoError(s.planLinks.CreateBatch(s.ctx, []entity.DoctorInsurancePlan{
		{DoctorID: id, InsurancePlanID: plans[0].ID},
		{DoctorID: id, InsurancePlanID: plans[1].ID},
	}))
	s.Require().NoError(s.planLinks.DeleteByDoctorID(s.ctx, id))
	s.Require().NoError(s.planLinks.CreateBatch(s.ctx, []entity.DoctorInsurancePlan{
		{DoctorID: id, InsurancePlanID: plans[1].ID},
	}))
	s.Require().NoError(s.planLinks.CreateBatch(s.ctx, nil))

	doctor, err := s.doctors.FindByID(s.ctx, id)
	s.Require().NoError(err)
	s.Require().Len(doctor.InsurancePlans, 1)
	s.Equal("Amil", doctor.InsurancePlans[0].InsurancePlan.Name)
}
