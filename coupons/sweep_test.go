package coupons

import (
	"testing"
	"time"

	"emporia/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestExpired(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	past := models.Coupon{Name: "OLD", Expiry: now.Add(-time.Minute)}
	future := models.Coupon{Name: "FRESH", Expiry: now.Add(time.Hour)}

	assert.True(t, Expired(past, now))
	assert.False(t, Expired(future, now))
	// expiry exactly at the tick is not yet expired ($lt semantics)
	assert.False(t, Expired(models.Coupon{Expiry: now}, now))
}

func TestExpiredFilterShape(t *testing.T) {
	now := time.Now()
	filter := ExpiredFilter(now)

	assert.Equal(t, bson.M{"expiry": bson.M{"$lt": now}}, filter)
}

func TestSweepIntervalDefault(t *testing.T) {
	t.Setenv("SWEEP_INTERVAL", "")
	assert.Equal(t, 2*time.Minute, SweepInterval())
}

func TestSweepIntervalOverride(t *testing.T) {
	t.Setenv("SWEEP_INTERVAL", "30")
	assert.Equal(t, 30*time.Second, SweepInterval())
}

func TestSweepIntervalIgnoresGarbage(t *testing.T) {
	t.Setenv("SWEEP_INTERVAL", "soon")
	assert.Equal(t, 2*time.Minute, SweepInterval())

	t.Setenv("SWEEP_INTERVAL", "-5")
	assert.Equal(t, 2*time.Minute, SweepInterval())
}
