package repository

import (
	"context"

	"firebase.google.com/go/v4/db"

	"github.com/th3akash/taste-haven-backend/entity"
)

// MenuRepository reads the menu tree from the Realtime Database.
type MenuRepository struct {
	DB *db.Client
}

func NewMenuRepository(client *db.Client) *MenuRepository {
	return &MenuRepository{DB: client}
}

// Menu returns the two-level category -> item tree under menu/. A missing
// node comes back as a nil map, not an error.
func (r *MenuRepository) Menu(ctx context.Context) (map[string]map[string]entity.MenuItem, error) {
	var menu map[string]map[string]entity.MenuItem
	if err := r.DB.NewRef("menu").Get(ctx, &menu); err != nil {
		return nil, err
	}
	return menu, nil
}
