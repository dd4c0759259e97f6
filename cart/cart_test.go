package cart

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"emporia/globals"

	"github.com/stretchr/testify/assert"
)

func TestPriceLinesTotalsFromCatalogPrices(t *testing.T) {
	reqs := []LineRequest{
		{ProductID: "prodA", Count: 3, Color: "red"},
		{ProductID: "prodB", Count: 2, Color: "blue"},
	}
	prices := map[string]float64{"prodA": 10.50, "prodB": 4.25}

	lines, total := PriceLines(reqs, prices)

	assert.Len(t, lines, 2)
	assert.Equal(t, 10.50, lines[0].Price)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.Equal(t, "red", lines[0].Color)
	assert.Equal(t, 4.25, lines[1].Price)
	// 3*10.50 + 2*4.25 = 40.00
	assert.Equal(t, 40.00, total)
}

func TestPriceLinesPreservesRequestOrder(t *testing.T) {
	reqs := []LineRequest{
		{ProductID: "b", Count: 1},
		{ProductID: "a", Count: 1},
	}
	lines, _ := PriceLines(reqs, map[string]float64{"a": 1, "b": 2})

	assert.Equal(t, "b", lines[0].ProductID)
	assert.Equal(t, "a", lines[1].ProductID)
}

func TestPriceLinesSameProductTwoColors(t *testing.T) {
	reqs := []LineRequest{
		{ProductID: "p", Count: 2, Color: "red"},
		{ProductID: "p", Count: 1, Color: "black"},
	}
	lines, total := PriceLines(reqs, map[string]float64{"p": 5})

	assert.Len(t, lines, 2)
	assert.Equal(t, 15.0, total)
}

func buildCartRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/cart", strings.NewReader(body))
	ctx := context.WithValue(req.Context(), globals.UserIDKey, "user1234abcd0000")
	return req.WithContext(ctx)
}

func TestBuildCartRejectsInvalidInput(t *testing.T) {
	cases := map[string]string{
		"zero count":     `{"cart":[{"productId":"prod1234abcd0000","count":0}]}`,
		"negative count": `{"cart":[{"productId":"prod1234abcd0000","count":-2}]}`,
		"empty cart":     `{"cart":[]}`,
		"missing cart":   `{}`,
		"no product id":  `{"cart":[{"count":1}]}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			BuildCart(w, buildCartRequest(body), nil)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestDiscountTwentyPercent(t *testing.T) {
	if got := Discount(100.00, 20); got != 80.00 {
		t.Fatalf("expected 80.00, got %v", got)
	}
}

func TestDiscountZeroPercentUnchanged(t *testing.T) {
	if got := Discount(123.45, 0); got != 123.45 {
		t.Fatalf("expected total unchanged, got %v", got)
	}
}

func TestDiscountRoundsHalfUpToTwoPlaces(t *testing.T) {
	// 99.99 at 10% off -> 89.991 -> 89.99
	if got := Discount(99.99, 10); got != 89.99 {
		t.Fatalf("expected 89.99, got %v", got)
	}
	// 100 at 33.333% -> 66.667 -> 66.67
	if got := Discount(100, 33.333); got != 66.67 {
		t.Fatalf("expected 66.67, got %v", got)
	}
}
