package routes

import (
	"errors"

	"github.com/Joeseb100/realprops/storage"
	"github.com/Joeseb100/realprops/utils"

	"github.com/kataras/iris/v12"
)

type ReviewHandler struct {
	Reviews *storage.ReviewRepository
	Audit   *storage.AuditRecorder
}

func NewReviewHandler(reviews *storage.ReviewRepository, audit *storage.AuditRecorder) *ReviewHandler {
	return &ReviewHandler{Reviews: reviews, Audit: audit}
}

// List shows every review to an authenticated admin; everyone else only
// sees approved ones, capped at the public page size, newest first.
func (h *ReviewHandler) List(ctx iris.Context) {
	var err error
	var reviews interface{}

	if utils.AdminFromRequest(ctx) != nil {
		reviews, err = h.Reviews.ListAll()
	} else {
		reviews, err = h.Reviews.ListPublic()
	}
	if err != nil {
		utils.JSONError(ctx, iris.StatusInternalServerError, "server_error", err.Error())
		return
	}
	ctx.JSON(reviews)
}

type SubmitReviewInput struct {
	Name    string `json:"name" validate:"required,max=128"`
	Rating  int    `json:"rating" validate:"required"`
	Comment string `json:"comment" validate:"required"`
}

// Submit is public. Reviews always start unapproved.
func (h *ReviewHandler) Submit(ctx iris.Context) {
	var input SubmitReviewInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	review, err := h.Reviews.Submit(input.Name, input.Rating, input.Comment)
	if err != nil {
		utils.JSONError(ctx, iris.StatusInternalServerError, "server_error", err.Error())
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{
		"message": "Review submitted! It will appear after approval.",
		"review":  review,
	})
}

type ModerateReviewInput struct {
	ID     uint   `json:"id" validate:"required"`
	Action string `json:"action" validate:"required,oneof=approve delete"`
}

// Moderate approves or deletes a review, admin only.
func (h *ReviewHandler) Moderate(ctx iris.Context) {
	var input ModerateReviewInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var err error
	var message string
	switch input.Action {
	case "approve":
		err = h.Reviews.Approve(input.ID)
		message = "Review approved"
	case "delete":
		err = h.Reviews.Delete(input.ID)
		message = "Review deleted"
	}
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.JSONError(ctx, iris.StatusNotFound, "not_found", "review not found")
			return
		}
		utils.JSONError(ctx, iris.StatusInternalServerError, "server_error", err.Error())
		return
	}

	h.Audit.Record(utils.AdminID(ctx), "review."+input.Action, "review", input.ID, nil, nil, utils.ClientIP(ctx))
	ctx.JSON(iris.Map{"message": message})
}
