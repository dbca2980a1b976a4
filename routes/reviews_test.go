package routes

import (
	"net/http"
	"testing"

	"github.com/Joeseb100/realprops/models"
)

func TestReviewSubmitAndVisibility(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/reviews", map[string]interface{}{
		"name": "Visitor", "rating": 9, "comment": "Great agent",
	}, nil)
	if resp.Code != http.StatusCreated {
		t.Fatalf("submit: expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created struct {
		Review models.Review `json:"review"`
	}
	decodeBody(t, resp, &created)
	if created.Review.Approved {
		t.Fatal("new reviews must start unapproved")
	}
	if created.Review.Rating != 5 {
		t.Fatalf("rating 9 must clamp to 5, got %d", created.Review.Rating)
	}

	// Public view hides it, the admin view includes it.
	resp = doJSON(t, app, http.MethodGet, "/api/reviews", nil, nil)
	var public []models.Review
	decodeBody(t, resp, &public)
	if len(public) != 0 {
		t.Fatalf("unapproved review leaked publicly: %+v", public)
	}

	resp = doJSON(t, app, http.MethodGet, "/api/reviews", nil, adminCookie(t))
	var all []models.Review
	decodeBody(t, resp, &all)
	if len(all) != 1 {
		t.Fatalf("admin must see unapproved reviews, got %d", len(all))
	}
}

func TestReviewSubmitValidation(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/reviews", map[string]interface{}{
		"name": "No Comment", "rating": 4,
	}, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("missing comment: expected 400, got %d", resp.Code)
	}
}

func TestReviewModeration(t *testing.T) {
	app, _ := buildTestApp(t)
	cookie := adminCookie(t)

	resp := doJSON(t, app, http.MethodPost, "/api/reviews", map[string]interface{}{
		"name": "Visitor", "rating": 5, "comment": "Approve me",
	}, nil)
	var created struct {
		Review models.Review `json:"review"`
	}
	decodeBody(t, resp, &created)

	resp = doJSON(t, app, http.MethodPatch, "/api/reviews", map[string]interface{}{
		"id": created.Review.ID, "action": "approve",
	}, nil)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("moderation without session: expected 401, got %d", resp.Code)
	}

	resp = doJSON(t, app, http.MethodPatch, "/api/reviews", map[string]interface{}{
		"id": created.Review.ID, "action": "approve",
	}, cookie)
	if resp.Code != http.StatusOK {
		t.Fatalf("approve: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	resp = doJSON(t, app, http.MethodGet, "/api/reviews", nil, nil)
	var public []models.Review
	decodeBody(t, resp, &public)
	if len(public) != 1 || !public[0].Approved {
		t.Fatalf("approved review must be public: %+v", public)
	}

	resp = doJSON(t, app, http.MethodPatch, "/api/reviews", map[string]interface{}{
		"id": created.Review.ID, "action": "shred",
	}, cookie)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("unrecognized action: expected 400, got %d", resp.Code)
	}

	resp = doJSON(t, app, http.MethodPatch, "/api/reviews", map[string]interface{}{
		"id": created.Review.ID, "action": "delete",
	}, cookie)
	if resp.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", resp.Code)
	}

	resp = doJSON(t, app, http.MethodPatch, "/api/reviews", map[string]interface{}{
		"id": created.Review.ID, "action": "delete",
	}, cookie)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("delete missing id: expected 404, got %d", resp.Code)
	}
}
