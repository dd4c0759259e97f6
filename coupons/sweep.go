package coupons

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"emporia/db"
	"emporia/models"
	"emporia/rdx"

	"go.mongodb.org/mongo-driver/bson"
)

const defaultSweepInterval = 2 * time.Minute

// SweepInterval reads SWEEP_INTERVAL (seconds) or falls back to 2 minutes.
func SweepInterval() time.Duration {
	if s := os.Getenv("SWEEP_INTERVAL"); s != "" {
		if secs, err := strconv.Atoi(s); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultSweepInterval
}

// StartSweep runs the coupon-expiry sweep until ctx is cancelled. Each tick
// is isolated: a panic or error in one tick is logged and the next tick
// runs regardless.
func StartSweep(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Printf("Coupon sweep running every %v", interval)
	for {
		select {
		case <-ctx.Done():
			log.Println("Coupon sweep stopped")
			return
		case <-ticker.C:
			sweepTick()
		}
	}
}

func sweepTick() {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("Coupon sweep tick panicked: %v", rec)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	res, err := db.CouponCollection.DeleteMany(ctx, ExpiredFilter(time.Now()))
	if err != nil {
		log.Printf("Coupon sweep failed: %v", err)
		return
	}

	if res.DeletedCount > 0 {
		log.Printf("Coupon sweep deleted %d expired coupons", res.DeletedCount)
	}

	if err := rdx.RdxSet("coupon:sweep:last", time.Now().Format(time.RFC3339), 0); err != nil {
		log.Printf("Coupon sweep bookkeeping failed: %v", err)
	}
}

// ExpiredFilter matches coupons whose expiry has passed as of now.
func ExpiredFilter(now time.Time) bson.M {
	return bson.M{"expiry": bson.M{"$lt": now}}
}

// Expired reports whether the coupon's expiry has passed as of now.
func Expired(c models.Coupon, now time.Time) bool {
	return c.Expiry.Before(now)
}
