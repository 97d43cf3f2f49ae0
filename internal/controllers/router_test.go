package controllers

import (
	"fmt"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"folio-be/internal/apperr"
	"folio-be/internal/entities"
	"folio-be/internal/hash"
	"folio-be/internal/middleware"
	"folio-be/internal/service"
	"folio-be/internal/token"
)

// newTestRouter wires the real services, token service, and middleware over
// in-memory stores, mirroring the construction in main.go.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	userRepo := &memUserRepo{users: map[string]*entities.User{}}
	assetRepo := &memAssetRepo{assets: map[string]*entities.Asset{}}

	tokenService := token.NewService("test-secret", time.Hour)
	authService := service.NewAuthService(userRepo, hash.NewBcryptHasher(), tokenService)
	portfolioService := service.NewPortfolioService(assetRepo, nil)

	authController := NewAuthController(authService)
	portfolioController := NewPortfolioController(portfolioService)

	authenticated := middleware.AuthMiddleware(tokenService, userRepo)

	router := gin.New()
	users := router.Group("/users")
	{
		users.POST("/register", authController.Register)
		users.POST("/login", authController.Login)
		users.GET("/me", authenticated, authController.Me)
		users.PUT("/profile", authenticated, authController.UpdateProfile)
	}
	portfolio := router.Group("/portfolio")
	portfolio.Use(authenticated)
	{
		portfolio.GET("", portfolioController.List)
		portfolio.POST("", portfolioController.Create)
		portfolio.GET("/:id", portfolioController.Get)
		portfolio.PUT("/:id", portfolioController.Update)
		portfolio.DELETE("/:id", portfolioController.Delete)
	}
	return router
}

// --- in-memory stores ---

type memUserRepo struct {
	users  map[string]*entities.User
	nextID int
}

func (r *memUserRepo) Create(name, email, passwordHash string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return nil, apperr.ErrEmailTaken
		}
	}
	r.nextID++
	now := time.Now()
	user := &entities.User{
		ID:           fmt.Sprintf("user-%d", r.nextID),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	r.users[user.ID] = user
	copied := *user
	return &copied, nil
}

func (r *memUserRepo) FindByEmail(email string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperr.ErrUserNotFound
}

func (r *memUserRepo) FindByID(id string) (*entities.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperr.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *memUserRepo) Update(id, name, passwordHash string) (*entities.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperr.ErrUserNotFound
	}
	u.Name = name
	u.PasswordHash = passwordHash
	u.UpdatedAt = time.Now()
	copied := *u
	return &copied, nil
}

type memAssetRepo struct {
	assets map[string]*entities.Asset
	nextID int
}

func (r *memAssetRepo) Create(ownerID, name, symbol string, quantity, buyPrice float64, purchaseDate time.Time, notes *string) (*entities.Asset, error) {
	r.nextID++
	now := time.Now()
	asset := &entities.Asset{
		ID:           fmt.Sprintf("asset-%d", r.nextID),
		OwnerID:      ownerID,
		Name:         name,
		Symbol:       symbol,
		Quantity:     quantity,
		BuyPrice:     buyPrice,
		PurchaseDate: purchaseDate,
		Notes:        notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	r.assets[asset.ID] = asset
	copied := *asset
	return &copied, nil
}

func (r *memAssetRepo) FindByID(id string) (*entities.Asset, error) {
	a, ok := r.assets[id]
	if !ok {
		return nil, apperr.ErrAssetNotFound
	}
	copied := *a
	return &copied, nil
}

func (r *memAssetRepo) FindAllByOwner(ownerID string) ([]*entities.Asset, error) {
	out := []*entities.Asset{}
	for _, a := range r.assets {
		if a.OwnerID == ownerID {
			copied := *a
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *memAssetRepo) Update(asset *entities.Asset) (*entities.Asset, error) {
	stored, ok := r.assets[asset.ID]
	if !ok {
		return nil, apperr.ErrAssetNotFound
	}
	updated := *asset
	updated.OwnerID = stored.OwnerID
	updated.UpdatedAt = time.Now()
	r.assets[asset.ID] = &updated
	copied := updated
	return &copied, nil
}

func (r *memAssetRepo) Delete(id string) error {
	if _, ok := r.assets[id]; !ok {
		return apperr.ErrAssetNotFound
	}
	delete(r.assets, id)
	return nil
}
