package converter

import (
	"truedoc-admin/internal/delivery/dto"
	"truedoc-admin/internal/domain/entity"
)

func ReferenceToResponse(ref *entity.NamedReference) *dto.ReferenceResponse {
	if ref == nil {
		return nil
	}
	return &dto.ReferenceResponse{ID: ref.ID, Name: ref.Name}
}

func ReferencesToResponses(refs []entity.NamedReference) []dto.ReferenceResponse {
	responses := make([]dto.ReferenceResponse, len(refs))
	for i, ref := range refs {
		responses[i] = dto.ReferenceResponse{ID: ref.ID, Name: ref.Name}
	}
	return responses
}

func SpecialtyToResponse(s *entity.Specialty) *dto.SpecialtyResponse {
	if s == nil {
		return nil
	}
	return &dto.SpecialtyResponse{ID: s.ID, Name: s.Name, Type: s.Type}
}

func SpecialtiesToResponses(specialties []entity.Specialty) []dto.SpecialtyResponse {
	responses := make([]dto.SpecialtyResponse, len(specialties))
	for i := range specialties {
		responses[i] = *SpecialtyToResponse(&specialties[i])
	}
	return responses
}
