package service

import (
	"context"

	"dealership-api/internal/entity"
	"dealership-api/internal/repo"
)

type LeadService struct {
	leadRepo repo.Lead
}

func NewLeadService(repos *repo.Repositories) *LeadService {
	return &LeadService{leadRepo: repos.Lead}
}

func (s *LeadService) GetLeads(ctx context.Context, pg *entity.PaginationInput) ([]entity.LeadOutputModel, error) {
	leads, err := s.leadRepo.GetLeads(ctx, pg)
	if err != nil {
		return nil, err
	}

	return mapLeads(leads), nil
}
