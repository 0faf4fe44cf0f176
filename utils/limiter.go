package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// CanSendOTP rate-limits reset-code mails: at most one per minute and ten
// per hour for the same address.
func CanSendOTP(rdb *redis.Client, key string) (bool, string) {
	ctx := context.Background()
	minuteKey := fmt.Sprintf("otp_minute_%s", key)
	hourKey := fmt.Sprintf("otp_hour_%s", key)
	if rdb.Exists(ctx, minuteKey).Val() > 0 {
		return false, "Please wait 60 seconds before requesting another code"
	}
	cnt, _ := rdb.Get(ctx, hourKey).Int()
	if cnt >= 10 {
		return false, "Too many codes requested, try again in an hour"
	}
	return true, ""
}

func MarkOTPSent(rdb *redis.Client, key string) {
	ctx := context.Background()
	minuteKey := fmt.Sprintf("otp_minute_%s", key)
	hourKey := fmt.Sprintf("otp_hour_%s", key)
	rdb.Set(ctx, minuteKey, 1, 60*time.Second)
	rdb.Incr(ctx, hourKey)
	rdb.Expire(ctx, hourKey, time.Hour)
}
