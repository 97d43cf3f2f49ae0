package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"folio-be/internal/apperr"
	"folio-be/internal/cache"
	"folio-be/internal/entities"
	"folio-be/internal/models"
	"folio-be/internal/repository"
)

// PortfolioService defines the interface for portfolio business logic.
// Every by-id operation runs the ownership check before touching anything.
type PortfolioService interface {
	List(ctx context.Context, ownerID string) ([]*entities.Asset, error)
	Create(ctx context.Context, ownerID string, req *models.CreateAssetRequest) (*entities.Asset, error)
	Get(ctx context.Context, ownerID, assetID string) (*entities.Asset, error)
	Update(ctx context.Context, ownerID, assetID string, req *models.UpdateAssetRequest) (*entities.Asset, error)
	Delete(ctx context.Context, ownerID, assetID string) error
}

type portfolioService struct {
	repo  repository.AssetRepository
	cache cache.Cache
}

const listingCacheTTL = 5 * time.Minute

// NewPortfolioService creates a new portfolio service. A nil cache is valid
// and means every listing goes to the database.
func NewPortfolioService(repo repository.AssetRepository, cacheClient cache.Cache) PortfolioService {
	return &portfolioService{
		repo:  repo,
		cache: cacheClient,
	}
}

func listingCacheKey(ownerID string) string {
	return fmt.Sprintf("portfolio:%s", ownerID)
}

// List returns all assets of the owner, newest first
func (s *portfolioService) List(ctx context.Context, ownerID string) ([]*entities.Asset, error) {
	if s.cache != nil {
		var cached []*entities.Asset
		if err := s.cache.GetJSON(ctx, listingCacheKey(ownerID), &cached); err == nil {
			return cached, nil
		}
	}

	assets, err := s.repo.FindAllByOwner(ownerID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, listingCacheKey(ownerID), assets, listingCacheTTL); err != nil {
			log.Warn().Err(err).Str("owner_id", ownerID).Msg("failed to cache portfolio listing")
		}
	}

	return assets, nil
}

// Create persists a new asset owned by ownerID
func (s *portfolioService) Create(ctx context.Context, ownerID string, req *models.CreateAssetRequest) (*entities.Asset, error) {
	purchaseDate, err := parsePurchaseDate(req.PurchaseDate)
	if err != nil {
		return nil, err
	}

	asset, err := s.repo.Create(ownerID, req.Name, req.Symbol, req.Quantity, req.BuyPrice, purchaseDate, req.Notes)
	if err != nil {
		return nil, err
	}

	s.invalidateListing(ctx, ownerID)
	return asset, nil
}

// Get loads one asset after verifying ownership
func (s *portfolioService) Get(ctx context.Context, ownerID, assetID string) (*entities.Asset, error) {
	return s.loadOwned(ownerID, assetID)
}

// Update applies the provided fields to an owned asset. The loaded record
// from the ownership check is mutated and persisted; no second lookup.
func (s *portfolioService) Update(ctx context.Context, ownerID, assetID string, req *models.UpdateAssetRequest) (*entities.Asset, error) {
	asset, err := s.loadOwned(ownerID, assetID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		asset.Name = *req.Name
	}
	if req.Symbol != nil {
		asset.Symbol = *req.Symbol
	}
	if req.Quantity != nil {
		asset.Quantity = *req.Quantity
	}
	if req.BuyPrice != nil {
		asset.BuyPrice = *req.BuyPrice
	}
	if req.PurchaseDate != nil {
		purchaseDate, err := parsePurchaseDate(*req.PurchaseDate)
		if err != nil {
			return nil, err
		}
		asset.PurchaseDate = purchaseDate
	}
	if req.Notes != nil {
		asset.Notes = req.Notes
	}

	updated, err := s.repo.Update(asset)
	if err != nil {
		return nil, err
	}

	s.invalidateListing(ctx, ownerID)
	return updated, nil
}

// Delete removes an owned asset
func (s *portfolioService) Delete(ctx context.Context, ownerID, assetID string) error {
	if _, err := s.loadOwned(ownerID, assetID); err != nil {
		return err
	}

	if err := s.repo.Delete(assetID); err != nil {
		return err
	}

	s.invalidateListing(ctx, ownerID)
	return nil
}

// loadOwned is the ownership guard: absent asset -> ErrAssetNotFound,
// someone else's asset -> ErrNotOwner. It never mutates state.
func (s *portfolioService) loadOwned(ownerID, assetID string) (*entities.Asset, error) {
	asset, err := s.repo.FindByID(assetID)
	if err != nil {
		return nil, err
	}
	if asset.OwnerID != ownerID {
		return nil, apperr.ErrNotOwner
	}
	return asset, nil
}

func (s *portfolioService) invalidateListing(ctx context.Context, ownerID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, listingCacheKey(ownerID)); err != nil {
		log.Warn().Err(err).Str("owner_id", ownerID).Msg("failed to invalidate portfolio listing cache")
	}
}

// parsePurchaseDate accepts a plain date or a full RFC 3339 timestamp.
func parsePurchaseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid purchase date %q, use YYYY-MM-DD or RFC 3339", apperr.ErrValidation, value)
	}
	return t, nil
}
