package impl

import (
	"context"
	"log/slog"

	deliverycontext "beautymarket/internal/delivery/context"
	"beautymarket/internal/domain/entity"
	domainerrors "beautymarket/internal/domain/errors"
	"beautymarket/internal/domain/repository"
	"beautymarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type cartService struct {
	txManager   repository.TransactionManager
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	tracker     usecase.AnalyticsTracker
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	Tracker     usecase.AnalyticsTracker
	Logger      *slog.Logger
}

// NewCartService creates the CartUsecase.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		txManager:   params.TxManager,
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		tracker:     params.Tracker,
		logger:      params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	items, err := srv.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart items")
	}

	return entity.NewCart(items), nil
}

// AddToCart adds quantity units of an active product, incrementing an existing line.
func (srv *cartService) AddToCart(ctx context.Context, userID uuid.UUID, input *usecase.AddToCartInput) (*entity.Cart, error) {
	if input.Quantity < 1 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("quantity must be at least 1")
	}

	var product *entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		var err error
		product, err = repoFactory.ProductRepo().FindByID(ctx, input.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
			}

			return errors.Wrap(err, "failed to find product")
		}
		if !product.IsActive {
			return errors.Wrap(domainerrors.ErrProductInactive, "product is not available")
		}

		existing, err := cartRepo.FindByUserAndProduct(ctx, userID, input.ProductID)
		switch {
		case err == nil:
			quantity := existing.Quantity + input.Quantity
			if !product.InStock(quantity) {
				return errors.Wrap(domainerrors.ErrInsufficientStock, product.Name)
			}

			return errors.Wrap(cartRepo.UpdateQuantity(ctx, existing.ID, quantity), "failed to update cart item")
		case errors.Is(err, repository.ErrCartItemNotFound):
			if !product.InStock(input.Quantity) {
				return errors.Wrap(domainerrors.ErrInsufficientStock, product.Name)
			}

			item := &entity.CartItem{UserID: userID, ProductID: input.ProductID, Quantity: input.Quantity}

			return errors.Wrap(cartRepo.Create(ctx, item), "failed to create cart item")
		default:
			return errors.Wrap(err, "failed to find cart item")
		}
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute add to cart transaction")
	}

	srv.tracker.TrackActivity(ctx, userID, entity.ActivityAddToCart, "Added "+product.Name+" to cart", input.Client)

	return srv.GetCart(ctx, userID)
}

// UpdateCartItem sets the quantity of a line; zero or less removes it.
func (srv *cartService) UpdateCartItem(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*entity.Cart, error) {
	if _, err := srv.ownedItem(ctx, userID, itemID); err != nil {
		return nil, err
	}

	if quantity <= 0 {
		if err := srv.cartRepo.Delete(ctx, itemID); err != nil {
			return nil, errors.Wrap(err, "failed to delete cart item")
		}
	} else if err := srv.cartRepo.UpdateQuantity(ctx, itemID, quantity); err != nil {
		return nil, errors.Wrap(err, "failed to update cart item")
	}

	return srv.GetCart(ctx, userID)
}

func (srv *cartService) RemoveCartItem(ctx context.Context, userID, itemID uuid.UUID) (*entity.Cart, error) {
	if _, err := srv.ownedItem(ctx, userID, itemID); err != nil {
		return nil, err
	}

	if err := srv.cartRepo.Delete(ctx, itemID); err != nil {
		return nil, errors.Wrap(err, "failed to delete cart item")
	}

	return srv.GetCart(ctx, userID)
}

func (srv *cartService) ClearCart(ctx context.Context, userID uuid.UUID) error {
	if err := srv.cartRepo.ClearByUser(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}

// ownedItem hides other users' cart lines behind a not-found error.
func (srv *cartService) ownedItem(ctx context.Context, userID, itemID uuid.UUID) (*entity.CartItem, error) {
	item, err := srv.cartRepo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCartItemNotFound, "cart item not found")
		}

		return nil, errors.Wrap(err, "failed to find cart item")
	}
	if item.UserID != userID {
		srv.log(ctx).Warn("Cart item access by non-owner", slog.Any("userID", userID), slog.Any("itemID", itemID))

		return nil, errors.Wrap(domainerrors.ErrCartItemNotFound, "cart item belongs to another user")
	}

	return item, nil
}
