package products

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"emporia/db"
	"emporia/globals"
	"emporia/models"

	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestUpsertRatingAppendsNew(t *testing.T) {
	ratings := UpsertRating(nil, models.Rating{UserID: "user1", Stars: 4})
	if len(ratings) != 1 || ratings[0].Stars != 4 {
		t.Fatalf("expected one rating with 4 stars, got %+v", ratings)
	}
}

func TestUpsertRatingOverwritesExisting(t *testing.T) {
	ratings := []models.Rating{{UserID: "user1", Stars: 4, Comment: "good"}}
	ratings = UpsertRating(ratings, models.Rating{UserID: "user1", Stars: 2, Comment: "changed my mind"})

	if len(ratings) != 1 {
		t.Fatalf("expected exactly one rating for the user, got %d", len(ratings))
	}
	if ratings[0].Stars != 2 || ratings[0].Comment != "changed my mind" {
		t.Fatalf("expected overwritten rating, got %+v", ratings[0])
	}
}

func TestUpsertRatingKeepsOtherUsers(t *testing.T) {
	ratings := []models.Rating{
		{UserID: "user1", Stars: 5},
		{UserID: "user2", Stars: 3},
	}
	ratings = UpsertRating(ratings, models.Rating{UserID: "user2", Stars: 1})

	if len(ratings) != 2 {
		t.Fatalf("expected two ratings, got %d", len(ratings))
	}
	if ratings[0].Stars != 5 || ratings[1].Stars != 1 {
		t.Fatalf("unexpected ratings: %+v", ratings)
	}
}

func TestAverageStarsSingleRating(t *testing.T) {
	// first-ever rating of 5 must yield 5, not a divide-by-zero
	got := AverageStars([]models.Rating{{Stars: 5}})
	if got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
}

func TestAverageStarsEmptyIsZero(t *testing.T) {
	if got := AverageStars(nil); got != 0 {
		t.Fatalf("expected 0 for empty ratings, got %d", got)
	}
}

func ratingRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPut, "/api/ratings", strings.NewReader(body))
	ctx := context.WithValue(req.Context(), globals.UserIDKey, "user1234abcd0000")
	return req.WithContext(ctx)
}

func TestRateProductUnknownProductIsNotFound(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	mt.Run("unknown product", func(mt *mtest.T) {
		orig := db.ProductCollection
		db.ProductCollection = mt.Coll
		defer func() { db.ProductCollection = orig }()

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "shopdb.products", mtest.FirstBatch))

		w := httptest.NewRecorder()
		RateProduct(w, ratingRequest(`{"productId":"prod1234abcd0000","star":4}`), nil)

		if w.Code != http.StatusNotFound {
			mt.Fatalf("expected 404 for unknown product, got %d", w.Code)
		}
	})
}

func TestRateProductStoreFailureIsInternal(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	mt.Run("store failure", func(mt *mtest.T) {
		orig := db.ProductCollection
		db.ProductCollection = mt.Coll
		defer func() { db.ProductCollection = orig }()

		// A failing find must surface as 500, not as a missing product.
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11600,
			Name:    "InterruptedAtShutdown",
			Message: "server is shutting down",
		}))

		w := httptest.NewRecorder()
		RateProduct(w, ratingRequest(`{"productId":"prod1234abcd0000","star":4}`), nil)

		if w.Code != http.StatusInternalServerError {
			mt.Fatalf("expected 500 for a store failure, got %d", w.Code)
		}
	})
}

func TestAverageStarsRoundsHalfUp(t *testing.T) {
	cases := []struct {
		stars []int
		want  int
	}{
		{[]int{4, 5}, 5},    // 4.5 rounds up
		{[]int{2, 3}, 3},    // 2.5 rounds up
		{[]int{1, 2, 2}, 2}, // 1.67 rounds to 2
		{[]int{1, 1, 2}, 1}, // 1.33 rounds to 1
		{[]int{3}, 3},
	}
	for _, tc := range cases {
		ratings := make([]models.Rating, 0, len(tc.stars))
		for _, s := range tc.stars {
			ratings = append(ratings, models.Rating{Stars: s})
		}
		if got := AverageStars(ratings); got != tc.want {
			t.Errorf("AverageStars(%v) = %d, want %d", tc.stars, got, tc.want)
		}
	}
}
