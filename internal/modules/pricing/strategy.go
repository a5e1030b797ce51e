package pricing

import (
	"math"
	"sort"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"

	"restomenu/internal/domain"
)

// Context carries the request inputs a strategy may read.
type Context struct {
	DurationHours *float64
	// TimeHHMM wins over At when both are set.
	TimeHHMM string
	At       *time.Time
}

func (c Context) minuteOfDay() (int, error) {
	if c.TimeHHMM != "" {
		m, err := domain.ParseClock(c.TimeHHMM, false)
		if err != nil {
			return 0, ErrInvalidTime.Withf("time %q must be HH:MM", c.TimeHHMM)
		}
		return m, nil
	}
	if c.At != nil {
		return c.At.Hour()*60 + c.At.Minute(), nil
	}
	return 0, ErrTimeRequired
}

type DiscountType string

const (
	DiscountFlat    DiscountType = "FLAT"
	DiscountPercent DiscountType = "PERCENT"
)

type Discount struct {
	Type   DiscountType
	Value  decimal.Decimal
	Amount decimal.Decimal
}

// Result is a strategy's output. DiscountedPrice is set only by DISCOUNTED
// and supersedes BasePrice downstream.
type Result struct {
	BasePrice       decimal.Decimal
	Discount        *Discount
	DiscountedPrice *decimal.Decimal
	AppliedRule     map[string]any
}

// Effective is the price carried into the add-on and tax steps.
func (r Result) Effective() decimal.Decimal {
	if r.DiscountedPrice != nil {
		return *r.DiscountedPrice
	}
	return r.BasePrice
}

// Strategy is one validated pricing configuration. Every pricing type has
// exactly one implementation, built by DecodeStrategy.
type Strategy interface {
	Type() domain.PricingType
	Compute(pc Context) (Result, error)
}

// DecodeStrategy validates raw against the schema of pricingType.
func DecodeStrategy(pricingType domain.PricingType, raw map[string]any) (Strategy, error) {
	switch pricingType {
	case domain.PricingStatic:
		return decodeStatic(raw)
	case domain.PricingComplimentary:
		return Complimentary{}, nil
	case domain.PricingDiscounted:
		return decodeDiscounted(raw)
	case domain.PricingTiered:
		return decodeTiered(raw)
	case domain.PricingDynamic:
		return decodeDynamic(raw)
	default:
		return nil, ErrUnknownType.Withf("Invalid pricing_type %q on item", pricingType)
	}
}

// decode maps the loosely typed config onto a struct of pointer fields so
// that absent and mistyped values are both detectable.
func decode(pricingType domain.PricingType, raw map[string]any, out any) error {
	if raw == nil {
		return nil
	}
	if err := mapstructure.Decode(raw, out); err != nil {
		return ErrInvalidConfig.Withf("%s pricing_config: %v", pricingType, err).Wrap(err)
	}
	return nil
}

func money(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

/* ---------- STATIC ---------- */

type Static struct {
	Price decimal.Decimal
}

func decodeStatic(raw map[string]any) (Strategy, error) {
	var cfg struct {
		Price *float64 `mapstructure:"price"`
	}
	if err := decode(domain.PricingStatic, raw, &cfg); err != nil {
		return nil, err
	}
	if cfg.Price == nil {
		return nil, ErrInvalidConfig.Withf("STATIC pricing_config.price must be a number")
	}
	return Static{Price: money(*cfg.Price)}, nil
}

func (Static) Type() domain.PricingType { return domain.PricingStatic }

func (s Static) Compute(Context) (Result, error) {
	return Result{
		BasePrice:   s.Price,
		AppliedRule: map[string]any{"type": domain.PricingStatic, "price": s.Price.InexactFloat64()},
	}, nil
}

/* ---------- COMPLIMENTARY ---------- */

// Complimentary ignores whatever config is stored.
type Complimentary struct{}

func (Complimentary) Type() domain.PricingType { return domain.PricingComplimentary }

func (Complimentary) Compute(Context) (Result, error) {
	return Result{
		BasePrice:   decimal.Zero,
		AppliedRule: map[string]any{"type": domain.PricingComplimentary, "price": 0},
	}, nil
}

/* ---------- DISCOUNTED ---------- */

type Discounted struct {
	BasePrice     decimal.Decimal
	DiscountType  DiscountType
	DiscountValue decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

func decodeDiscounted(raw map[string]any) (Strategy, error) {
	var cfg struct {
		BasePrice     *float64 `mapstructure:"base_price"`
		DiscountType  *string  `mapstructure:"discount_type"`
		DiscountValue *float64 `mapstructure:"discount_value"`
	}
	if err := decode(domain.PricingDiscounted, raw, &cfg); err != nil {
		return nil, err
	}
	if cfg.BasePrice == nil {
		return nil, ErrInvalidConfig.Withf("DISCOUNTED pricing_config.base_price must be a number")
	}
	if cfg.DiscountType == nil || (DiscountType(*cfg.DiscountType) != DiscountFlat && DiscountType(*cfg.DiscountType) != DiscountPercent) {
		return nil, ErrInvalidConfig.Withf("DISCOUNTED pricing_config.discount_type must be FLAT or PERCENT")
	}
	if cfg.DiscountValue == nil || *cfg.DiscountValue < 0 {
		return nil, ErrInvalidConfig.Withf("DISCOUNTED pricing_config.discount_value must be a non-negative number")
	}

	d := Discounted{
		BasePrice:     money(*cfg.BasePrice),
		DiscountType:  DiscountType(*cfg.DiscountType),
		DiscountValue: money(*cfg.DiscountValue),
	}
	if d.DiscountType == DiscountPercent && d.DiscountValue.GreaterThan(hundred) {
		return nil, ErrInvalidConfig.Withf("Percentage discount cannot exceed 100")
	}
	return d, nil
}

func (Discounted) Type() domain.PricingType { return domain.PricingDiscounted }

func (d Discounted) Compute(Context) (Result, error) {
	amount := d.DiscountValue
	if d.DiscountType == DiscountPercent {
		amount = d.BasePrice.Mul(d.DiscountValue).Div(hundred)
	}
	final := decimal.Max(decimal.Zero, d.BasePrice.Sub(amount))

	return Result{
		BasePrice:       d.BasePrice,
		Discount:        &Discount{Type: d.DiscountType, Value: d.DiscountValue, Amount: amount},
		DiscountedPrice: &final,
		AppliedRule: map[string]any{
			"type":           domain.PricingDiscounted,
			"base_price":     d.BasePrice.InexactFloat64(),
			"discount_type":  d.DiscountType,
			"discount_value": d.DiscountValue.InexactFloat64(),
		},
	}, nil
}

/* ---------- TIERED ---------- */

type Tier struct {
	Upto  decimal.Decimal
	Price decimal.Decimal
}

// Tiered holds tiers sorted by Upto, strictly increasing.
type Tiered struct {
	Tiers []Tier
}

func decodeTiered(raw map[string]any) (Strategy, error) {
	var cfg struct {
		Tiers []struct {
			Upto  *float64 `mapstructure:"upto"`
			Price *float64 `mapstructure:"price"`
		} `mapstructure:"tiers"`
	}
	if err := decode(domain.PricingTiered, raw, &cfg); err != nil {
		return nil, err
	}
	if len(cfg.Tiers) == 0 {
		return nil, ErrInvalidConfig.Withf("TIERED pricing_config.tiers must be a non-empty array")
	}

	tiers := make([]Tier, 0, len(cfg.Tiers))
	for _, t := range cfg.Tiers {
		if t.Upto == nil || *t.Upto <= 0 {
			return nil, ErrInvalidConfig.Withf("Each tier.upto must be a positive number")
		}
		if t.Price == nil || *t.Price < 0 {
			return nil, ErrInvalidConfig.Withf("Each tier.price must be a non-negative number")
		}
		tiers = append(tiers, Tier{Upto: money(*t.Upto), Price: money(*t.Price)})
	}

	sort.SliceStable(tiers, func(i, j int) bool { return tiers[i].Upto.LessThan(tiers[j].Upto) })
	for i := 1; i < len(tiers); i++ {
		if tiers[i].Upto.LessThanOrEqual(tiers[i-1].Upto) {
			return nil, ErrOverlappingTiers
		}
	}
	return Tiered{Tiers: tiers}, nil
}

func isPositiveFinite(f float64) bool {
	return f > 0 && !math.IsInf(f, 0)
}

func (Tiered) Type() domain.PricingType { return domain.PricingTiered }

// Compute picks the first tier covering the duration. Durations beyond the
// last tier are charged at the last tier.
func (t Tiered) Compute(pc Context) (Result, error) {
	if pc.DurationHours == nil || !isPositiveFinite(*pc.DurationHours) {
		return Result{}, ErrDurationRequired
	}
	duration := money(*pc.DurationHours)

	chosen := t.Tiers[len(t.Tiers)-1]
	for _, tier := range t.Tiers {
		if duration.LessThanOrEqual(tier.Upto) {
			chosen = tier
			break
		}
	}

	return Result{
		BasePrice: chosen.Price,
		AppliedRule: map[string]any{
			"type":          domain.PricingTiered,
			"chosen":        map[string]any{"upto": chosen.Upto.InexactFloat64(), "price": chosen.Price.InexactFloat64()},
			"durationHours": *pc.DurationHours,
		},
	}, nil
}

/* ---------- DYNAMIC ---------- */

// Window is a half-open [Start, End) price window within one day.
type Window struct {
	Start string
	End   string
	Price decimal.Decimal

	from, to int
}

// Dynamic holds windows sorted by start, non-overlapping.
type Dynamic struct {
	Windows []Window
}

func decodeDynamic(raw map[string]any) (Strategy, error) {
	var cfg struct {
		Windows []struct {
			Start *string  `mapstructure:"start"`
			End   *string  `mapstructure:"end"`
			Price *float64 `mapstructure:"price"`
		} `mapstructure:"windows"`
	}
	if err := decode(domain.PricingDynamic, raw, &cfg); err != nil {
		return nil, err
	}
	if len(cfg.Windows) == 0 {
		return nil, ErrInvalidConfig.Withf("DYNAMIC pricing_config.windows must be a non-empty array")
	}

	windows := make([]Window, 0, len(cfg.Windows))
	for _, w := range cfg.Windows {
		if w.Start == nil || w.End == nil {
			return nil, ErrInvalidConfig.Withf("Dynamic window must include start and end (HH:MM)")
		}
		from, err1 := domain.ParseClock(*w.Start, false)
		to, err2 := domain.ParseClock(*w.End, false)
		if err1 != nil || err2 != nil {
			return nil, ErrInvalidConfig.Withf("Dynamic window %s-%s must use HH:MM", *w.Start, *w.End)
		}
		if to <= from {
			return nil, ErrInvalidConfig.Withf("Dynamic window end must be after start")
		}
		if w.Price == nil || *w.Price < 0 {
			return nil, ErrInvalidConfig.Withf("Dynamic window price must be non-negative")
		}
		windows = append(windows, Window{Start: *w.Start, End: *w.End, Price: money(*w.Price), from: from, to: to})
	}

	sort.SliceStable(windows, func(i, j int) bool { return windows[i].from < windows[j].from })
	for i := 1; i < len(windows); i++ {
		if windows[i].from < windows[i-1].to {
			return nil, ErrOverlappingWindows
		}
	}
	return Dynamic{Windows: windows}, nil
}

func (Dynamic) Type() domain.PricingType { return domain.PricingDynamic }

func (d Dynamic) Compute(pc Context) (Result, error) {
	now, err := pc.minuteOfDay()
	if err != nil {
		return Result{}, err
	}

	for _, w := range d.Windows {
		if w.from <= now && now < w.to {
			return Result{
				BasePrice: w.Price,
				AppliedRule: map[string]any{
					"type":   domain.PricingDynamic,
					"chosen": map[string]any{"start": w.Start, "end": w.End, "price": w.Price.InexactFloat64()},
					"time":   now,
				},
			}, nil
		}
	}
	return Result{}, ErrNotAvailableAtTime
}

// ComputeBase decodes the item's stored config and runs its strategy.
func ComputeBase(item *domain.Item, pc Context) (Result, error) {
	s, err := DecodeStrategy(item.PricingType, item.PricingConfig)
	if err != nil {
		return Result{}, err
	}
	return s.Compute(pc)
}
