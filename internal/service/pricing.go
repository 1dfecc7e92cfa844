package service

import (
	"errors"
	"math"
	"time"
)

// TaxRate 固定稅率 10%
const TaxRate = 0.10

// 季節加成，依入住月份套用在基礎房價上
const (
	WinterSurge = 0.40 // 12 月、1 月
	SummerSurge = 0.30 // 6–8 月
	SpringSurge = 0.20 // 3–5 月
)

var ErrInvalidStay = errors.New("check-in date must be before check-out date")

// Quote 是一次住宿的完整價格明細
type Quote struct {
	NightlyRate     float64
	Nights          int
	SeasonalPercent int
	Subtotal        float64
	Tax             float64
	Total           float64
}

// Round2 金額捨入規則：四捨五入（half away from zero）到小數第二位
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// SeasonalFactor 回傳指定月份的季節加成
func SeasonalFactor(m time.Month) float64 {
	switch {
	case m == time.December || m == time.January:
		return WinterSurge
	case m >= time.June && m <= time.August:
		return SummerSurge
	case m >= time.March && m <= time.May:
		return SpringSurge
	default:
		return 0
	}
}

// NightlyRate 依月份計算單晚房價
func NightlyRate(baseRate float64, m time.Month) float64 {
	return Round2(baseRate * (1 + SeasonalFactor(m)))
}

// StayNights 計算住宿晚數，日期非整日部分不計
func StayNights(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}

// QuoteStay 依入住月份的季節價計算整段住宿的小計、稅額與總額
func QuoteStay(baseRate float64, checkIn, checkOut time.Time) (Quote, error) {
	if !checkIn.Before(checkOut) {
		return Quote{}, ErrInvalidStay
	}
	nights := StayNights(checkIn, checkOut)
	if nights <= 0 {
		return Quote{}, ErrInvalidStay
	}

	nightly := NightlyRate(baseRate, checkIn.Month())
	subtotal := Round2(nightly * float64(nights))
	tax := Round2(subtotal * TaxRate)
	return Quote{
		NightlyRate:     nightly,
		Nights:          nights,
		SeasonalPercent: int(SeasonalFactor(checkIn.Month()) * 100),
		Subtotal:        subtotal,
		Tax:             tax,
		Total:           Round2(subtotal + tax),
	}, nil
}
