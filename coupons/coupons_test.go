package coupons

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"emporia/db"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestUpdateCouponRejectsDuplicateName(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	mt.Run("duplicate name", func(mt *mtest.T) {
		orig := db.CouponCollection
		db.CouponCollection = mt.Coll
		defer func() { db.CouponCollection = orig }()

		// Another coupon already owns the requested name.
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "shopdb.coupons", mtest.FirstBatch,
			bson.D{{Key: "couponId", Value: "coupon99zzzzzzzz"}, {Key: "name", Value: "SUMMER10"}}))

		req := httptest.NewRequest(http.MethodPut, "/api/coupons/coupon11aaaaaaaa",
			strings.NewReader(`{"name":"SUMMER10"}`))
		w := httptest.NewRecorder()
		UpdateCoupon(w, req, httprouter.Params{{Key: "id", Value: "coupon11aaaaaaaa"}})

		if w.Code != http.StatusConflict {
			mt.Fatalf("expected 409 for a duplicate coupon name, got %d", w.Code)
		}
	})
}
