package service

import (
	"context"
	"errors"
	"math/rand"
	"strings"

	"github.com/rngenius/rngenius-go/internal/apperr"
	"github.com/rngenius/rngenius-go/internal/model"
	"github.com/rngenius/rngenius-go/internal/repository"
)

// GeneratorService handles generator business logic. Every operation takes
// the requester id derived from the access token; mutations and single-entity
// reads require the requester to be the generator's owner.
type GeneratorService struct {
	repo  *repository.GeneratorRepository
	users *repository.UserRepository
}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService(repo *repository.GeneratorRepository, users *repository.UserRepository) *GeneratorService {
	return &GeneratorService{repo: repo, users: users}
}

// GetGeneratorByID returns a generator with its options after an ownership
// check.
func (s *GeneratorService) GetGeneratorByID(ctx context.Context, id, requesterID int64) (*model.Generator, error) {
	return s.loadOwned(ctx, id, requesterID)
}

// GetMyGenerators returns all generators owned by the requester, empty slice
// if none.
func (s *GeneratorService) GetMyGenerators(ctx context.Context, requesterID int64) ([]model.Generator, error) {
	return s.repo.ListByOwner(ctx, requesterID)
}

// AddGenerator persists a new generator owned by the requester. Any inline
// options are validated and stored with it.
func (s *GeneratorService) AddGenerator(ctx context.Context, req *model.AddGeneratorRequest, requesterID int64) (*model.Generator, error) {
	if req == nil {
		return nil, apperr.Validation("generator", "Generator data is required")
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperr.Validation("name", "Generator name is required")
	}
	for _, opt := range req.Options {
		if err := validateOption(opt); err != nil {
			return nil, err
		}
	}

	if _, err := s.users.GetByID(ctx, requesterID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperr.NotFound("user", "No user with this id")
		}
		return nil, err
	}

	gen := &model.Generator{
		OwnerID: requesterID,
		Name:    req.Name,
		Options: make([]model.Option, len(req.Options)),
	}
	for i, opt := range req.Options {
		gen.Options[i] = model.Option{Category: opt.Category, Value: opt.Value}
	}

	if err := s.repo.Create(ctx, gen); err != nil {
		return nil, err
	}

	return gen, nil
}

// DeleteGeneratorByID removes a generator and its options after an ownership
// check.
func (s *GeneratorService) DeleteGeneratorByID(ctx context.Context, id, requesterID int64) error {
	if _, err := s.loadOwned(ctx, id, requesterID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// AddGeneratorOption appends an option to an owned generator.
func (s *GeneratorService) AddGeneratorOption(ctx context.Context, generatorID int64, req model.AddOptionRequest, requesterID int64) (*model.Option, error) {
	if err := validateOption(req); err != nil {
		return nil, err
	}

	if _, err := s.loadOwned(ctx, generatorID, requesterID); err != nil {
		return nil, err
	}

	opt := &model.Option{
		GeneratorID: generatorID,
		Category:    req.Category,
		Value:       req.Value,
	}
	if err := s.repo.AddOption(ctx, opt); err != nil {
		return nil, err
	}

	return opt, nil
}

// DeleteCategorizedGeneratorOption removes the option matching both the id
// and the category. Ownership is checked through the option's parent
// generator.
func (s *GeneratorService) DeleteCategorizedGeneratorOption(ctx context.Context, optionID int64, category string, requesterID int64) error {
	opt, err := s.repo.GetOptionByID(ctx, optionID)
	if err != nil {
		if errors.Is(err, repository.ErrOptionNotFound) {
			return apperr.NotFound("option", "No option with this id")
		}
		return err
	}

	if _, err := s.loadOwned(ctx, opt.GeneratorID, requesterID); err != nil {
		return err
	}

	if err := s.repo.DeleteOptionByCategory(ctx, optionID, category); err != nil {
		if errors.Is(err, repository.ErrOptionNotFound) {
			return apperr.NotFound("option", "No categorized option with this id")
		}
		return err
	}

	return nil
}

// GenerateOption picks one option uniformly at random among all the
// generator's options, regardless of category. Read-only: nothing is
// persisted. A generator without options is a domain error, not a no-op.
func (s *GeneratorService) GenerateOption(ctx context.Context, generatorID, requesterID int64) (*model.Option, error) {
	gen, err := s.loadOwned(ctx, generatorID, requesterID)
	if err != nil {
		return nil, err
	}

	return pickOption(gen.Options)
}

// pickOption selects one option uniformly at random.
func pickOption(options []model.Option) (*model.Option, error) {
	if len(options) == 0 {
		return nil, apperr.DomainRule("generator", "No options to choose from")
	}
	return &options[rand.Intn(len(options))], nil
}

// loadOwned fetches a generator and enforces the ownership rule shared by
// all single-entity reads and mutations.
func (s *GeneratorService) loadOwned(ctx context.Context, id, requesterID int64) (*model.Generator, error) {
	gen, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrGeneratorNotFound) {
			return nil, apperr.NotFound("generator", "No generator with this id")
		}
		return nil, err
	}

	if gen.OwnerID != requesterID {
		return nil, apperr.Authorization("generator", "You are not authorized to perform this action")
	}

	return gen, nil
}

func validateOption(opt model.AddOptionRequest) error {
	if strings.TrimSpace(opt.Category) == "" {
		return apperr.Validation("category", "Option category is required")
	}
	if strings.TrimSpace(opt.Value) == "" {
		return apperr.Validation("value", "Option value is required")
	}
	return nil
}
