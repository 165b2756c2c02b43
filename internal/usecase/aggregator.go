package usecase

import (
	"context"
	"fmt"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Aggregator assembles a FullResume from the store.
type Aggregator struct {
	store Store
}

func NewAggregator(store Store) *Aggregator {
	return &Aggregator{store: store}
}

// Aggregate loads the resume header and then its four sections concurrently.
// The first failing fetch cancels the others and is returned.
func (a *Aggregator) Aggregate(ctx context.Context, resumeID uuid.UUID) (*domain.FullResume, error) {
	resume, err := a.store.GetResume(ctx, resumeID)
	if err != nil {
		return nil, err
	}

	full := &domain.FullResume{Resume: *resume}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		info, err := a.store.GetPersonalInfo(gctx, resumeID)
		if err != nil {
			return fmt.Errorf("personal info: %w", err)
		}
		full.PersonalInfo = info
		return nil
	})
	g.Go(func() error {
		items, err := a.store.ListWorkExperience(gctx, resumeID)
		if err != nil {
			return fmt.Errorf("work experience: %w", err)
		}
		full.WorkExperience = items
		return nil
	})
	g.Go(func() error {
		items, err := a.store.ListEducation(gctx, resumeID)
		if err != nil {
			return fmt.Errorf("education: %w", err)
		}
		full.Education = items
		return nil
	})
	g.Go(func() error {
		items, err := a.store.ListSkills(gctx, resumeID)
		if err != nil {
			return fmt.Errorf("skills: %w", err)
		}
		full.Skills = items
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	normalize(full)
	return full, nil
}

func normalize(full *domain.FullResume) {
	if full.WorkExperience == nil {
		full.WorkExperience = []domain.WorkExperience{}
	}
	if full.Education == nil {
		full.Education = []domain.Education{}
	}
	if full.Skills == nil {
		full.Skills = []domain.Skill{}
	}
	for i := range full.WorkExperience {
		full.WorkExperience[i].Normalize()
	}
	for i := range full.Education {
		full.Education[i].Normalize()
	}
	domain.SortWorkExperience(full.WorkExperience)
	domain.SortEducation(full.Education)
	domain.SortSkills(full.Skills)
}
