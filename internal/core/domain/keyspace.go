package domain

import (
	"strconv"
	"strings"
	"time"
)

// Idempotency key kinds. The key grammar is <kind>:<entity-ids...>:<discriminator>.
// Keys are the sole deduplication mechanism for billable work: identical business
// facts within the same discriminator window always derive the identical key.
const (
	KeyKindScheduled    = "scheduled"
	KeyKindManualSwitch = "manual_switch"
	KeyKindActivation   = "activation"
)

// manualSwitchBucket is the duplicate-trigger tolerance for manual switches.
// Two manual triggers within the same 60-second bucket derive the same key.
const manualSwitchBucket = 60

// NoPeriodSentinel marks an activation key for a subscription with no
// billing-period end.
const NoPeriodSentinel = "no_period"

// ScheduledKey derives the idempotency key for a scheduled listing slot.
// The discriminator is the slot's due timestamp in RFC3339 UTC.
func ScheduledKey(subscriptionID, storeID, planID string, slotDue time.Time) string {
	return KeyKindScheduled + ":" + subscriptionID + ":" + storeID + ":" + planID + ":" +
		slotDue.UTC().Format(time.RFC3339)
}

// ManualSwitchKey derives the idempotency key for a manually triggered
// dispatch of one webhook config. The discriminator is a 60-second floor
// bucket of the trigger time.
func ManualSwitchKey(storeID, configID string, now time.Time) string {
	bucket := now.Unix() / manualSwitchBucket
	return KeyKindManualSwitch + ":" + storeID + ":" + configID + ":" +
		strconv.FormatInt(bucket, 10)
}

// ActivationKey derives the idempotency key for activating listing work on a
// subscription. A nil periodEnd uses the no_period sentinel.
func ActivationKey(subscriptionID, storeID string, periodEnd *time.Time) string {
	disc := NoPeriodSentinel
	if periodEnd != nil {
		disc = periodEnd.UTC().Format(time.RFC3339)
	}
	return KeyKindActivation + ":" + subscriptionID + ":" + storeID + ":" + disc
}

// ExtractScheduledSlotTime parses the slot-due timestamp out of a scheduled
// key. Legacy scheduled keys carried a numeric time-bucket suffix instead of a
// timestamp; those are recognized and reported as having no timestamp rather
// than as an error, so callers can discard them.
func ExtractScheduledSlotTime(key string) (time.Time, bool) {
	parts := strings.SplitN(key, ":", 5)
	if len(parts) != 5 || parts[0] != KeyKindScheduled {
		return time.Time{}, false
	}

	suffix := parts[4]
	if _, err := strconv.ParseInt(suffix, 10, 64); err == nil {
		// Legacy numeric bucket format.
		return time.Time{}, false
	}

	ts, err := time.Parse(time.RFC3339, suffix)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}
