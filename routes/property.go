package routes

import (
	"errors"

	"github.com/Joeseb100/realprops/models"
	"github.com/Joeseb100/realprops/storage"
	"github.com/Joeseb100/realprops/utils"

	"github.com/kataras/iris/v12"
)

type PropertyHandler struct {
	Properties *storage.PropertyRepository
	Audit      *storage.AuditRecorder
}

func NewPropertyHandler(properties *storage.PropertyRepository, audit *storage.AuditRecorder) *PropertyHandler {
	return &PropertyHandler{Properties: properties, Audit: audit}
}

// List is public. Status defaults to AVAILABLE so listing pages never show
// SOLD properties unless asked; location=all means unfiltered.
func (h *PropertyHandler) List(ctx iris.Context) {
	location := ctx.URLParam("location")
	if location == "all" {
		location = ""
	}
	status := ctx.URLParam("status")
	if status == "" {
		status = models.PropertyStatusAvailable
	}

	properties, err := h.Properties.List(storage.PropertyFilter{
		Location: location,
		Status:   status,
		Type:     ctx.URLParam("type"),
	})
	if err != nil {
		utils.JSONError(ctx, iris.StatusInternalServerError, "server_error", err.Error())
		return
	}
	ctx.JSON(properties)
}

func (h *PropertyHandler) Get(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, iris.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	property, err := h.Properties.Get(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.JSONError(ctx, iris.StatusNotFound, "not_found", "property not found")
			return
		}
		utils.JSONError(ctx, iris.StatusInternalServerError, "server_error", err.Error())
		return
	}
	ctx.JSON(property)
}

type CreatePropertyInput struct {
	Title       string   `json:"title" validate:"required,max=256"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Location    string   `json:"location" validate:"required,max=256"`
	Type        string   `json:"type" validate:"omitempty,oneof=HOUSE PLOT"`
	AreaSqft    int      `json:"areaSqft" validate:"required,gt=0"`
	Bedrooms    int      `json:"bedrooms" validate:"gte=0"`
	Bathrooms   int      `json:"bathrooms" validate:"gte=0"`
	Description string   `json:"description" validate:"required"`
	PhoneNumber string   `json:"phoneNumber" validate:"required,max=32"`
	Status      string   `json:"status" validate:"omitempty,oneof=AVAILABLE SOLD"`
	ImageURLs   []string `json:"imageUrls"`
}

// Create is admin-only; the middleware has already rejected anonymous calls.
func (h *PropertyHandler) Create(ctx iris.Context) {
	var input CreatePropertyInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	property := models.Property{
		Title:       input.Title,
		Price:       input.Price,
		Location:    input.Location,
		Type:        input.Type,
		AreaSqft:    input.AreaSqft,
		Bedrooms:    input.Bedrooms,
		Bathrooms:   input.Bathrooms,
		Description: input.Description,
		PhoneNumber: input.PhoneNumber,
		Status:      input.Status,
	}

	if err := h.Properties.Create(&property, input.ImageURLs); err != nil {
		var verr *storage.ValidationError
		if errors.As(err, &verr) {
			utils.JSONError(ctx, iris.StatusBadRequest, "validation_error", verr.Error())
			return
		}
		utils.JSONError(ctx, iris.StatusInternalServerError, "server_error", err.Error())
		return
	}

	h.Audit.Record(utils.AdminID(ctx), "property.create", "property", property.ID, nil, property, utils.ClientIP(ctx))
	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(property)
}

type UpdatePropertyInput struct {
	Title       *string   `json:"title" validate:"omitempty,max=256"`
	Price       *float64  `json:"price" validate:"omitempty,gt=0"`
	Location    *string   `json:"location" validate:"omitempty,max=256"`
	Type        *string   `json:"type" validate:"omitempty,oneof=HOUSE PLOT"`
	AreaSqft    *int      `json:"areaSqft" validate:"omitempty,gt=0"`
	Bedrooms    *int      `json:"bedrooms" validate:"omitempty,gte=0"`
	Bathrooms   *int      `json:"bathrooms" validate:"omitempty,gte=0"`
	Description *string   `json:"description"`
	PhoneNumber *string   `json:"phoneNumber" validate:"omitempty,max=32"`
	Status      *string   `json:"status" validate:"omitempty,oneof=AVAILABLE SOLD"`
	ImageURLs   *[]string `json:"imageUrls"`
}

// Update applies only the supplied fields. Supplying imageUrls replaces the
// whole image set; omitting it leaves the images untouched.
func (h *PropertyHandler) Update(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, iris.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var input UpdatePropertyInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	before, _ := h.Properties.Get(id)

	property, err := h.Properties.Update(id, storage.PropertyUpdate{
		Title:       input.Title,
		Price:       input.Price,
		Location:    input.Location,
		Type:        input.Type,
		AreaSqft:    input.AreaSqft,
		Bedrooms:    input.Bedrooms,
		Bathrooms:   input.Bathrooms,
		Description: input.Description,
		PhoneNumber: input.PhoneNumber,
		Status:      input.Status,
		ImageURLs:   input.ImageURLs,
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.JSONError(ctx, iris.StatusNotFound, "not_found", "property not found")
			return
		}
		utils.JSONError(ctx, iris.StatusInternalServerError, "server_error", err.Error())
		return
	}

	h.Audit.Record(utils.AdminID(ctx), "property.update", "property", property.ID, before, property, utils.ClientIP(ctx))
	ctx.JSON(property)
}

// Delete cascades to all owned images.
func (h *PropertyHandler) Delete(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, iris.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	before, _ := h.Properties.Get(id)

	if err := h.Properties.Delete(id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.JSONError(ctx, iris.StatusNotFound, "not_found", "property not found")
			return
		}
		utils.JSONError(ctx, iris.StatusInternalServerError, "server_error", err.Error())
		return
	}

	h.Audit.Record(utils.AdminID(ctx), "property.delete", "property", id, before, nil, utils.ClientIP(ctx))
	ctx.JSON(iris.Map{"success": true})
}
