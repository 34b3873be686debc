// services/summary_service.go
package services

import "backend/repository"

type Summary struct {
	TotalMeals             int64 `json:"totalMeals"`
	InsideDiet             int64 `json:"insideDiet"`
	OffTheDiet             int64 `json:"offTheDiet"`
	BestSequenceInsideDiet int64 `json:"bestSequenceInsideDiet"`
}

type SummaryService struct {
	repo repository.MealRepository
}

func NewSummaryService(repo repository.MealRepository) *SummaryService {
	return &SummaryService{repo: repo}
}

// Summarize derives the owner's diary statistics. An owner with no
// meals gets all zeros.
//
// BestSequenceInsideDiet is the largest number of on-diet meals
// sharing one day token. It is NOT a consecutive-day streak: days are
// compared as opaque text and adjacency is never examined.
func (s *SummaryService) Summarize(sessionID string) (*Summary, error) {
	total, err := s.repo.CountByOwner(sessionID, nil)
	if err != nil {
		return nil, err
	}

	onDiet := true
	inside, err := s.repo.CountByOwner(sessionID, &onDiet)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.OnDietCountsByDay(sessionID)
	if err != nil {
		return nil, err
	}
	var best int64
	for _, row := range rows {
		if row.Count > best {
			best = row.Count
		}
	}

	return &Summary{
		TotalMeals:             total,
		InsideDiet:             inside,
		OffTheDiet:             total - inside,
		BestSequenceInsideDiet: best,
	}, nil
}
