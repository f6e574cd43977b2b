package catalog

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/yummy-restaurant/backend/internal/adapter/logger"
	"github.com/yummy-restaurant/backend/internal/domain"
	"github.com/yummy-restaurant/backend/internal/interfaces"
)

// Service exposes the menu catalog: public reads plus the admin-only
// write operations behind the back office.
type Service struct {
	repo   interfaces.MenuRepository
	logger logger.Logger
}

func NewService(repo interfaces.MenuRepository, logger logger.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) GetItem(ctx context.Context, id int) (*domain.MenuItem, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) ListAvailable(ctx context.Context, category string) ([]domain.MenuItem, error) {
	cat := domain.Category(category)
	if category != "" && !domain.ValidCategory(cat) {
		return nil, &domain.ValidationError{
			Field:   "category",
			Message: fmt.Sprintf("unknown category %q", category),
		}
	}
	return s.repo.ListAvailable(ctx, cat)
}

func (s *Service) CreateItem(ctx context.Context, cmd interfaces.SaveMenuItemCommand) (*domain.MenuItem, error) {
	price := decimal.NewFromFloat(cmd.Price).Round(2)

	item, err := domain.NewMenuItem(cmd.Name, cmd.Description, price, domain.Category(cmd.Category), cmd.Image)
	if err != nil {
		return nil, err
	}
	if cmd.Available != nil {
		item.Available = *cmd.Available
	}

	if err := s.repo.Create(ctx, item); err != nil {
		s.logger.Error("menu_create_failed", "Failed to create menu item", "", nil, err)
		return nil, err
	}

	s.logger.Info("menu_item_created", "Menu item created", "", map[string]interface{}{
		"item_id": item.ID, "category": item.Category,
	})
	return item, nil
}

func (s *Service) UpdateItem(ctx context.Context, id int, cmd interfaces.SaveMenuItemCommand) (*domain.MenuItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	item.Name = cmd.Name
	item.Description = cmd.Description
	item.Price = decimal.NewFromFloat(cmd.Price).Round(2)
	item.Category = domain.Category(cmd.Category)
	if cmd.Image != "" {
		item.Image = cmd.Image
	}
	if cmd.Available != nil {
		item.Available = *cmd.Available
	}

	if errs := item.Validate(); len(errs) > 0 {
		return nil, errs
	}

	if err := s.repo.Update(ctx, item); err != nil {
		s.logger.Error("menu_update_failed", "Failed to update menu item", "", nil, err)
		return nil, err
	}
	return item, nil
}

func (s *Service) DeleteItem(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("menu_item_deleted", "Menu item deleted", "", map[string]interface{}{"item_id": id})
	return nil
}
