package services

import (
	"errors"
	"math"
	"time"

	"warga-http-service/internal/domain/models"
	"warga-http-service/internal/infrastructure/config"
	"warga-http-service/pkg/logger"

	"gorm.io/gorm"
)

// Supported dashboard windows. Numeric windows count back from today, BULAN
// covers the current calendar month up to today.
const (
	Window7     = "7"
	Window14    = "14"
	Window30    = "30"
	WindowBulan = "BULAN"
)

const serieSaldoCacheTTL = 10 * time.Minute

// Candle is one day of the balance series. High and low collapse to
// max/min(open, close) because the ledger has no intraday ordering.
type Candle struct {
	Tanggal string `json:"tanggal"`
	Open    int64  `json:"open"`
	High    int64  `json:"high"`
	Low     int64  `json:"low"`
	Close   int64  `json:"close"`
}

// TitikEMA is one point of the exponential moving average overlay.
type TitikEMA struct {
	Tanggal string  `json:"tanggal"`
	Nilai   float64 `json:"nilai"`
}

// SerieSaldo is the dashboard payload: a dense day-bucketed candlestick
// series with its EMA overlay and bullish crossover markers.
type SerieSaldo struct {
	Window     string     `json:"window"`
	Candles    []Candle   `json:"candles"`
	EMA        []TitikEMA `json:"ema"`
	Markers    []string   `json:"markers"`
	PeriodeEMA int        `json:"periode_ema"`
	SaldoAwal  int64      `json:"saldo_awal"`
	SaldoAkhir int64      `json:"saldo_akhir"`
}

// InterfaceDashboardService defines the dashboard service interface
type InterfaceDashboardService interface {
	GetSerieSaldo(userID uint, window string) (*SerieSaldo, error)
}

// DashboardService derives the balance series shown on the dashboard.
type DashboardService struct {
	DB     *gorm.DB
	Config *config.Config
	Policy AuthorizationPolicy
	Redis  InterfaceRedisService
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(db *gorm.DB, cfg *config.Config, policy AuthorizationPolicy, redis InterfaceRedisService) InterfaceDashboardService {
	return &DashboardService{
		DB:     db,
		Config: cfg,
		Policy: policy,
		Redis:  redis,
	}
}

// DayKey formats a timestamp as its civil day in the given location.
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}

// windowStart resolves a window name to its first day at midnight and the
// number of days it spans, today included.
func windowStart(window string, now time.Time, loc *time.Location) (time.Time, int, error) {
	local := now.In(loc)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

	switch window {
	case Window7:
		return today.AddDate(0, 0, -6), 7, nil
	case Window14:
		return today.AddDate(0, 0, -13), 14, nil
	case Window30:
		return today.AddDate(0, 0, -29), 30, nil
	case WindowBulan:
		start := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
		return start, local.Day(), nil
	default:
		return time.Time{}, 0, errors.New("rentang waktu tidak dikenal")
	}
}

// emaPeriod scales the smoothing period with the window so short windows
// still get a usable overlay.
func emaPeriod(nDays int) int {
	period := int(math.Round(float64(nDays) / 2))
	if period < 3 {
		period = 3
	}
	return period
}

// BuildSerieSaldo derives the candlestick series from a flat transaction list.
// Days without transactions carry the running balance forward, so the series
// always has one candle per day of the window.
func BuildSerieSaldo(txns []models.Transaksi, window string, now time.Time, loc *time.Location) (*SerieSaldo, error) {
	start, nDays, err := windowStart(window, now, loc)
	if err != nil {
		return nil, err
	}

	// Opening balance accumulates everything strictly before the window.
	var saldo int64
	perDay := make(map[string]int64, nDays)
	for _, t := range txns {
		if t.Tanggal.In(loc).Before(start) {
			saldo += t.Signed()
		} else {
			perDay[DayKey(t.Tanggal, loc)] += t.Signed()
		}
	}

	serie := &SerieSaldo{
		Window:     window,
		Candles:    make([]Candle, 0, nDays),
		EMA:        make([]TitikEMA, 0, nDays),
		Markers:    []string{},
		PeriodeEMA: emaPeriod(nDays),
		SaldoAwal:  saldo,
	}

	k := 2.0 / float64(serie.PeriodeEMA+1)
	var ema float64
	var prevClose int64
	var prevEMA float64

	for i := 0; i < nDays; i++ {
		day := start.AddDate(0, 0, i)
		key := day.Format("2006-01-02")

		open := saldo
		saldo += perDay[key]
		c := Candle{Tanggal: key, Open: open, Close: saldo}
		if open > saldo {
			c.High, c.Low = open, saldo
		} else {
			c.High, c.Low = saldo, open
		}
		serie.Candles = append(serie.Candles, c)

		if i == 0 {
			ema = float64(saldo)
		} else {
			ema = float64(saldo)*k + ema*(1-k)
			if float64(prevClose) <= prevEMA && float64(saldo) > ema {
				serie.Markers = append(serie.Markers, key)
			}
		}
		serie.EMA = append(serie.EMA, TitikEMA{Tanggal: key, Nilai: ema})

		prevClose = saldo
		prevEMA = ema
	}

	serie.SaldoAkhir = saldo
	return serie, nil
}

// 1 GetSerieSaldo returns the cached or freshly derived balance series
func (s *DashboardService) GetSerieSaldo(userID uint, window string) (*SerieSaldo, error) {
	loc, err := time.LoadLocation(s.Config.ReportTimezone)
	if err != nil {
		loc = time.UTC
	}
	now := time.Now()
	today := DayKey(now, loc)

	if s.Redis != nil {
		var cached SerieSaldo
		if err := s.Redis.GetSerieSaldo(userID, window, today, &cached); err == nil {
			return &cached, nil
		}
	}

	tx := s.DB.Model(&models.Transaksi{})
	if !s.Policy.IsOperator(userID) {
		tx = tx.Where("user_id = ?", userID)
	}

	var txns []models.Transaksi
	if err := tx.Order("tanggal ASC, id ASC").Find(&txns).Error; err != nil {
		return nil, err
	}

	serie, err := BuildSerieSaldo(txns, window, now, loc)
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if err := s.Redis.CacheSerieSaldo(userID, window, today, serie, serieSaldoCacheTTL); err != nil {
			logger.Warning("Failed to cache balance series for user %d: %v", userID, err)
		}
	}
	return serie, nil
}
