package repository

import (
	"database/sql"
	"fmt"
	"time"

	"folio-be/internal/apperr"
	"folio-be/internal/entities"
)

// AssetRepository defines the interface for asset database operations
type AssetRepository interface {
	Create(ownerID, name, symbol string, quantity, buyPrice float64, purchaseDate time.Time, notes *string) (*entities.Asset, error)
	FindByID(id string) (*entities.Asset, error)
	FindAllByOwner(ownerID string) ([]*entities.Asset, error)
	Update(asset *entities.Asset) (*entities.Asset, error)
	Delete(id string) error
}

type assetRepository struct {
	db *sql.DB
}

// NewAssetRepository creates a new asset repository
func NewAssetRepository(db *sql.DB) AssetRepository {
	return &assetRepository{db: db}
}

const assetColumns = "id, owner_id, name, symbol, quantity, buy_price, purchase_date, notes, created_at, updated_at"

// Create inserts a new asset owned by ownerID
func (r *assetRepository) Create(ownerID, name, symbol string, quantity, buyPrice float64, purchaseDate time.Time, notes *string) (*entities.Asset, error) {
	query := `
		INSERT INTO assets (owner_id, name, symbol, quantity, buy_price, purchase_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + assetColumns

	row := r.db.QueryRow(query, ownerID, name, symbol, quantity, buyPrice, purchaseDate, notes)
	asset, err := scanAsset(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}
	return asset, nil
}

// FindByID finds an asset by ID regardless of owner. Ownership is checked
// by the service layer against the returned record.
func (r *assetRepository) FindByID(id string) (*entities.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE id = $1`

	row := r.db.QueryRow(query, id)
	asset, err := scanAsset(row)
	if err == sql.ErrNoRows {
		return nil, apperr.ErrAssetNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find asset: %w", err)
	}
	return asset, nil
}

// FindAllByOwner retrieves all assets for a specific owner, newest first
func (r *assetRepository) FindAllByOwner(ownerID string) ([]*entities.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE owner_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assets: %w", err)
	}
	defer rows.Close()

	assets := []*entities.Asset{}
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}
		assets = append(assets, asset)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assets: %w", err)
	}

	return assets, nil
}

// Update persists the mutable business attributes of an asset. owner_id is
// deliberately not in the SET list.
func (r *assetRepository) Update(asset *entities.Asset) (*entities.Asset, error) {
	query := `
		UPDATE assets
		SET name = $2, symbol = $3, quantity = $4, buy_price = $5,
		    purchase_date = $6, notes = $7, updated_at = (NOW() AT TIME ZONE 'UTC')
		WHERE id = $1
		RETURNING ` + assetColumns

	row := r.db.QueryRow(query, asset.ID, asset.Name, asset.Symbol, asset.Quantity,
		asset.BuyPrice, asset.PurchaseDate, asset.Notes)
	updated, err := scanAsset(row)
	if err == sql.ErrNoRows {
		return nil, apperr.ErrAssetNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update asset: %w", err)
	}
	return updated, nil
}

// Delete removes an asset by ID
func (r *assetRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM assets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	if affected == 0 {
		return apperr.ErrAssetNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAsset(row rowScanner) (*entities.Asset, error) {
	var asset entities.Asset
	err := row.Scan(
		&asset.ID,
		&asset.OwnerID,
		&asset.Name,
		&asset.Symbol,
		&asset.Quantity,
		&asset.BuyPrice,
		&asset.PurchaseDate,
		&asset.Notes,
		&asset.CreatedAt,
		&asset.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &asset, nil
}
