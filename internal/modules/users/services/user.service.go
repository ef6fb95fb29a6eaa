package services

import (
	"context"
	"strings"

	"gestion-projets-core/internal/app/config"
	"gestion-projets-core/internal/infrastructure/datasource"
	"gestion-projets-core/internal/shared/apperror"
	"gestion-projets-core/internal/shared/listing"
	"gestion-projets-core/internal/shared/models"
	"gestion-projets-core/internal/shared/resource"
	"gestion-projets-core/internal/shared/utils"
)

// pager est implémenté par les dépôts qui paginent côté backend
type pager interface {
	ListPage(ctx context.Context, page int) ([]models.User, *int, error)
}

type UserService struct {
	*resource.Service[models.User]
	local bool
}

func NewUserService(src *datasource.Source) (*UserService, error) {
	repo, err := datasource.Resolve[models.User](src, datasource.Users)
	if err != nil {
		return nil, err
	}

	s := &UserService{local: src.Config.SourceOf(datasource.Users.Name) == config.SourceLocal}
	s.Service = resource.NewService(repo, resource.Options[models.User]{
		NotFound:   "Utilisateur non trouvé",
		PageSize:   listing.DefaultPageSize,
		BeforeSave: s.beforeSave,
	})
	return s, nil
}

// List pagine côté backend quand le dépôt le permet; la recherche porte alors sur la page reçue
func (s *UserService) List(ctx context.Context, q listing.Query) (listing.Page[models.User], error) {
	remote, ok := s.Store().(pager)
	if !ok {
		return s.Service.List(ctx, q)
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	items, total, err := remote.ListPage(ctx, page)
	if err != nil {
		return listing.Page[models.User]{}, err
	}

	count := len(items)
	if total != nil {
		count = *total
	}
	items = listing.Filter(items, q.Search, func(u models.User) []string { return u.SearchFields() })
	return listing.Page[models.User]{
		Items:      items,
		Pagination: listing.NewPagination(page, s.PageSize(), count),
	}, nil
}

// UpdateFCMToken enregistre le jeton push de l'utilisateur
func (s *UserService) UpdateFCMToken(ctx context.Context, id, token string) (models.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return user, err
	}
	user.FCMToken = token
	return s.Update(ctx, id, user)
}

// beforeSave ne s'applique qu'au stockage local: le backend gère lui-même
// l'unicité des emails et le hash des mots de passe.
func (s *UserService) beforeSave(ctx context.Context, user models.User) (models.User, error) {
	if !s.local {
		return user, nil
	}

	all, err := s.All(ctx)
	if err != nil {
		return user, err
	}

	var existing *models.User
	for i := range all {
		if !user.ID.IsZero() && all[i].ID.Equal(user.ID) {
			existing = &all[i]
			continue
		}
		if strings.EqualFold(all[i].Email, user.Email) {
			return user, apperror.Conflict("Un utilisateur avec cet email existe déjà", map[string]interface{}{
				"code":  "EMAIL_EXISTS",
				"email": user.Email,
			})
		}
	}

	switch {
	case user.Password == "" && existing != nil:
		user.Password = existing.Password
	case user.Password != "" && !utils.IsHashedPassword(user.Password):
		hashed, err := utils.HashPassword(user.Password)
		if err != nil {
			return user, err
		}
		user.Password = hashed
	}
	return user, nil
}
