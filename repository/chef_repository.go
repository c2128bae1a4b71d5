package repository

import (
	"context"

	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/db"

	"github.com/th3akash/taste-haven-backend/entity"
)

// ChefRepository spans the two chef stores: Firebase Auth for credentials and
// the Realtime Database chef_users/ node for the roster mirror.
type ChefRepository struct {
	Auth *auth.Client
	DB   *db.Client
}

func NewChefRepository(authClient *auth.Client, dbClient *db.Client) *ChefRepository {
	return &ChefRepository{Auth: authClient, DB: dbClient}
}

// SavePassword updates the password of an existing identity, or creates the
// identity when the email is unknown to the provider.
func (r *ChefRepository) SavePassword(ctx context.Context, email, password string) error {
	user, err := r.Auth.GetUserByEmail(ctx, email)
	if err == nil {
		_, err = r.Auth.UpdateUser(ctx, user.UID, (&auth.UserToUpdate{}).Password(password))
		return err
	}
	if !auth.IsUserNotFound(err) {
		return err
	}
	_, err = r.Auth.CreateUser(ctx, (&auth.UserToCreate{}).Email(email).Password(password))
	return err
}

// RemoveUser deletes the identity from the provider. Absence is not an error.
func (r *ChefRepository) RemoveUser(ctx context.Context, email string) error {
	user, err := r.Auth.GetUserByEmail(ctx, email)
	if err != nil {
		if auth.IsUserNotFound(err) {
			return nil
		}
		return err
	}
	return r.Auth.DeleteUser(ctx, user.UID)
}

// Upsert updates the roster record matching the email in place, or pushes a
// new one.
func (r *ChefRepository) Upsert(ctx context.Context, rec *entity.ChefRecord) error {
	ref := r.DB.NewRef("chef_users")
	key, err := r.findKey(ctx, ref, rec.Email)
	if err != nil {
		return err
	}
	if key != "" {
		return ref.Child(key).Set(ctx, rec)
	}
	_, err = ref.Push(ctx, rec)
	return err
}

// Remove deletes the roster record matching the email, reporting whether one
// was found.
func (r *ChefRepository) Remove(ctx context.Context, email string) (bool, error) {
	ref := r.DB.NewRef("chef_users")
	key, err := r.findKey(ctx, ref, email)
	if err != nil || key == "" {
		return false, err
	}
	if err := ref.Child(key).Delete(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// All returns the full chef_users/ mapping, empty when the node is absent.
func (r *ChefRepository) All(ctx context.Context) (map[string]entity.ChefRecord, error) {
	var out map[string]entity.ChefRecord
	if err := r.DB.NewRef("chef_users").Get(ctx, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = map[string]entity.ChefRecord{}
	}
	return out, nil
}

func (r *ChefRepository) findKey(ctx context.Context, ref *db.Ref, email string) (string, error) {
	nodes, err := ref.OrderByChild("email").EqualTo(email).GetOrdered(ctx)
	if err != nil {
		return "", err
	}
	if len(nodes) == 0 {
		return "", nil
	}
	return nodes[0].Key(), nil
}
