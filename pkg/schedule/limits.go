package schedule

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const DefaultLimits = "0:100;200:30,70;500:30,35,35;1000:30,25,25,20"

// Limits maps a price threshold, in currency units, to the installment
// percentages used for prices from that threshold up.
type Limits map[int64][]int

// ParseLimits reads "threshold:p1,p2;threshold:p1" definitions. Every plan
// must add up to 100 and a zero threshold must exist.
func ParseLimits(raw string) (Limits, error) {
	limits := make(Limits)
	for _, part := range strings.Split(raw, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		threshold, plan, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("invalid payment schedule limit %q", part)
		}
		value, err := strconv.ParseInt(strings.TrimSpace(threshold), 10, 64)
		if err != nil || value < 0 {
			return nil, fmt.Errorf("invalid payment schedule threshold %q", threshold)
		}
		var percentages []int
		sum := 0
		for _, p := range strings.Split(plan, ",") {
			percentage, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil || percentage <= 0 {
				return nil, fmt.Errorf("invalid payment schedule percentage %q", p)
			}
			percentages = append(percentages, percentage)
			sum += percentage
		}
		if sum != 100 {
			return nil, fmt.Errorf("payment schedule for %d sums to %d, expected 100", value, sum)
		}
		limits[value] = percentages
	}
	if _, ok := limits[0]; !ok {
		return nil, fmt.Errorf("payment schedule limits must define a 0 threshold")
	}
	return limits, nil
}

func MustParseLimits(raw string) Limits {
	limits, err := ParseLimits(raw)
	if err != nil {
		panic(err)
	}
	return limits
}

func (l Limits) PercentagesFor(total decimal.Decimal) []int {
	thresholds := make([]int64, 0, len(l))
	for threshold := range l {
		thresholds = append(thresholds, threshold)
	}
	sort.Slice(thresholds, func(i, j int) bool { return thresholds[i] > thresholds[j] })
	for _, threshold := range thresholds {
		if total.GreaterThanOrEqual(decimal.NewFromInt(threshold)) {
			return l[threshold]
		}
	}
	return []int{100}
}
