package resource

import (
	"context"

	"github.com/gin-gonic/gin"

	"gestion-projets-core/internal/shared/listing"
	"gestion-projets-core/internal/shared/response"
)

// Operations est satisfait par *Service et par les services de module qui l'embarquent
type Operations[T any] interface {
	List(ctx context.Context, q listing.Query) (listing.Page[T], error)
	Get(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, item T) (T, error)
	Update(ctx context.Context, id string, item T) (T, error)
	Delete(ctx context.Context, id string) error
}

// Labels messages de succès d'une collection
type Labels struct {
	Created string
	Updated string
	Deleted string
}

// Presenter adapte un élément avant l'envoi (masquage de champs)
type Presenter[T any] func(T) T

type Controller[T Item[T]] struct {
	service   Operations[T]
	validator *response.Validator
	labels    Labels
	present   Presenter[T]
}

func NewController[T Item[T]](service Operations[T], labels Labels) *Controller[T] {
	return &Controller[T]{
		service:   service,
		validator: response.NewValidator(),
		labels:    labels,
		present:   func(item T) T { return item },
	}
}

// WithPresenter fixe la transformation appliquée aux éléments renvoyés
func (c *Controller[T]) WithPresenter(p Presenter[T]) *Controller[T] {
	c.present = p
	return c
}

// Register monte les routes CRUD sur le groupe
func (c *Controller[T]) Register(group *gin.RouterGroup) {
	group.GET("", c.List)
	group.POST("", c.Create)
	group.GET("/:id", c.Get)
	group.PUT("/:id", c.Update)
	group.DELETE("/:id", c.Delete)
}

// List - GET ?search=&page=
func (c *Controller[T]) List(ctx *gin.Context) {
	var q listing.Query
	if err := ctx.ShouldBindQuery(&q); err != nil {
		response.ListError(ctx, c.validator.QueryError(err))
		return
	}

	page, err := c.service.List(ctx.Request.Context(), q)
	if err != nil {
		response.ListError(ctx, err)
		return
	}
	response.OK(ctx, "", c.PresentPage(page))
}

// Get - GET /:id
func (c *Controller[T]) Get(ctx *gin.Context) {
	item, err := c.service.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		response.Error(ctx, err)
		return
	}
	response.OK(ctx, "", c.present(item))
}

// Create - POST
func (c *Controller[T]) Create(ctx *gin.Context) {
	var item T
	if err := c.validator.Bind(ctx, &item); err != nil {
		response.Error(ctx, err)
		return
	}

	created, err := c.service.Create(ctx.Request.Context(), item)
	if err != nil {
		response.Error(ctx, err)
		return
	}
	response.Created(ctx, c.labels.Created, c.present(created))
}

// Update - PUT /:id
func (c *Controller[T]) Update(ctx *gin.Context) {
	var item T
	if err := c.validator.Bind(ctx, &item); err != nil {
		response.Error(ctx, err)
		return
	}

	updated, err := c.service.Update(ctx.Request.Context(), ctx.Param("id"), item)
	if err != nil {
		response.Error(ctx, err)
		return
	}
	response.OK(ctx, c.labels.Updated, c.present(updated))
}

// Delete - DELETE /:id
func (c *Controller[T]) Delete(ctx *gin.Context) {
	if err := c.service.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		response.Error(ctx, err)
		return
	}
	response.OK(ctx, c.labels.Deleted, nil)
}

// PresentPage applique le presenter à chaque élément d'une page
func (c *Controller[T]) PresentPage(page listing.Page[T]) listing.Page[T] {
	for i := range page.Items {
		page.Items[i] = c.present(page.Items[i])
	}
	return page
}
