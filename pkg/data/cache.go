package data

import (
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// DailyCache stores one verse per calendar day and translation, keeping only
// the newest keepDays distinct days.
type DailyCache struct {
	kv       KV
	keepDays int
	logger   *zap.Logger
}

func NewDailyCache(kv KV, keepDays int, logger *zap.Logger) *DailyCache {
	if keepDays < 1 {
		keepDays = 1
	}
	return &DailyCache{kv: kv, keepDays: keepDays, logger: logger}
}

// DateKey formats t as the UTC calendar date used in cache keys.
func DateKey(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

func (c *DailyCache) Get(date, translation string) (Verse, bool) {
	return Lookup(c.kv, DailyKey(date, translation), c.logger)
}

func (c *DailyCache) Put(date, translation string, v Verse) error {
	if err := Save(c.kv, DailyKey(date, translation), v); err != nil {
		return err
	}
	if err := c.evict(); err != nil {
		c.logger.Warn("evict daily cache", zap.Error(err))
	}
	return nil
}

func (c *DailyCache) evict() error {
	keys, err := c.kv.Keys(dailyPrefix)
	if err != nil {
		return err
	}

	byDate := map[string][]string{}
	for _, k := range keys {
		rest := strings.TrimPrefix(k, dailyPrefix)
		if len(rest) < len(dateLayout) {
			continue
		}
		date := rest[:len(dateLayout)]
		if _, err := time.Parse(dateLayout, date); err != nil {
			continue
		}
		byDate[date] = append(byDate[date], k)
	}
	if len(byDate) <= c.keepDays {
		return nil
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	for _, d := range dates[c.keepDays:] {
		for _, k := range byDate[d] {
			if err := c.kv.Remove(k); err != nil {
				return err
			}
		}
	}
	return nil
}
