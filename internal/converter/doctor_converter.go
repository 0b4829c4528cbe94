package converter

import (
	"truedoc-admin/internal/delivery/dto"
	"truedoc-admin/internal/domain/entity"
)

// DoctorToStatusResponse resolves the doctor's state from the loaded snapshot
func DoctorToStatusResponse(doctor *entity.Doctor) *dto.DoctorStatusResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorStatusResponse{
		DoctorID:       doctor.ID,
		Approved:       doctor.Approved,
		State:          doctor.ApprovalState(),
		PendingReasons: pendingReasons(doctor),
	}
}

// DoctorsToListResponses converts doctors with loaded claims to list items labelled with their state
func DoctorsToListResponses(doctors []entity.Doctor) []dto.DoctorListItemResponse {
	responses := make([]dto.DoctorListItemResponse, len(doctors))
	for i := range doctors {
		d := &doctors[i]
		responses[i] = dto.DoctorListItemResponse{
			ID:            d.ID,
			Name:          d.Name,
			LicenseNumber: d.LicenseNumber,
			Email:         d.Email,
			Approved:      d.Approved,
			State:         d.ApprovalState(),
			CreatedAt:     d.CreatedAt,
		}
	}
	return responses
}

// DoctorToDetailResponse converts a fully loaded doctor to DoctorDetailResponse DTO
func DoctorToDetailResponse(doctor *entity.Doctor) *dto.DoctorDetailResponse {
	if doctor == nil {
		return nil
	}

	resp := &dto.DoctorDetailResponse{
		ID:                    doctor.ID,
		Name:                  doctor.Name,
		LicenseNumber:         doctor.LicenseNumber,
		Email:                 doctor.Email,
		Approved:              doctor.Approved,
		Moderator:             doctor.Moderator,
		State:                 doctor.ApprovalState(),
		PendingReasons:        pendingReasons(doctor),
		RQE:                   doctor.RQE,
		PendingLicenseRenewal: doctor.PendingLicenseRenewal,
		Website:               doctor.Website,
		Description:           doctor.Description,
		UniversityOther:       doctor.UniversityOther,
		ContactForm:           doctor.ContactForm,
		Contact:               doctor.Contact,
		Facebook:              doctor.Facebook,
		Instagram:             doctor.Instagram,
		TikTok:                doctor.TikTok,
		LinkedIn:              doctor.LinkedIn,
		Twitter:               doctor.Twitter,
		Telehealth:            doctor.Telehealth,
		InsuranceOther:        doctor.InsuranceOther,
		Specialties:           make([]dto.SpecialtyClaimResponse, len(doctor.Specialties)),
		Subspecialties:        make([]dto.ClaimResponse, len(doctor.Subspecialties)),
		OtherTrainings:        make([]dto.ClaimResponse, len(doctor.OtherTrainings)),
		InsurancePlans:        make([]dto.ReferenceResponse, 0, len(doctor.InsurancePlans)),
		Locations:             LocationsToResponses(doctor.Locations),
		CreatedAt:             doctor.CreatedAt,
	}

	if doctor.University != nil {
		resp.University = &dto.ReferenceResponse{ID: doctor.University.ID, Name: doctor.University.Name}
	}

	for i, c := range doctor.Specialties {
		claim := dto.SpecialtyClaimResponse{
			ID:                  c.ID,
			InstitutionOther:    c.InstitutionOther,
			ShowOnPublicProfile: c.ShowOnPublicProfile,
			Approved:            c.Approved,
		}
		if c.Specialty != nil {
			claim.Specialty = SpecialtyToResponse(c.Specialty)
		}
		if c.Institution != nil {
			claim.Institution = &dto.ReferenceResponse{ID: c.Institution.ID, Name: c.Institution.Name}
		}
		resp.Specialties[i] = claim
	}

	for i, c := range doctor.Subspecialties {
		claim := dto.ClaimResponse{ID: c.ID, Name: c.Name, Approved: c.Approved}
		switch {
		case c.Institution != nil:
			claim.Institution = &c.Institution.Name
		case c.InstitutionOther != nil:
			claim.Institution = c.InstitutionOther
		}
		resp.Subspecialties[i] = claim
	}

	for i, c := range doctor.OtherTrainings {
		visible := c.ShowOnPublicProfile
		resp.OtherTrainings[i] = dto.ClaimResponse{
			ID:                  c.ID,
			Name:                c.Name,
			Institution:         c.Institution,
			ShowOnPublicProfile: &visible,
			Approved:            c.Approved,
		}
	}

	for _, link := range doctor.InsurancePlans {
		if link.InsurancePlan == nil {
			continue
		}
		resp.InsurancePlans = append(resp.InsurancePlans, dto.ReferenceResponse{
			ID:   link.InsurancePlan.ID,
			Name: link.InsurancePlan.Name,
		})
	}

	return resp
}

// LocationsToResponses converts a slice of Location entities to slice of LocationResponse DTOs
func LocationsToResponses(locations []entity.Location) []dto.LocationResponse {
	responses := make([]dto.LocationResponse, len(locations))
	for i, l := range locations {
		responses[i] = *LocationToResponse(&l)
	}
	return responses
}

// LocationToResponse converts a Location entity to LocationResponse DTO
func LocationToResponse(l *entity.Location) *dto.LocationResponse {
	if l == nil {
		return nil
	}

	return &dto.LocationResponse{
		ID:         l.ID,
		Label:      l.Label,
		PostalCode: l.PostalCode,
		Street:     l.Street,
		Number:     l.Number,
		Complement: l.Complement,
		District:   l.District,
		City:       l.City,
		State:      l.State,
		Phone:      l.Phone,
		Latitude:   l.Latitude,
		Longitude:  l.Longitude,
	}
}

func pendingReasons(doctor *entity.Doctor) []entity.PendingReason {
	reasons := entity.PendingReasons(doctor)
	if reasons == nil {
		return []entity.PendingReason{}
	}
	return reasons
}
