package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"restomenu/internal/config"
	"restomenu/internal/database"
	"restomenu/internal/domain"
	"restomenu/internal/pkg/logger"
	"restomenu/internal/repository"
)

func pct(v float64) *float64 { return &v }

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	logger.Init(logger.Options{Level: cfg.LogLevel})

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("DB connection failed")
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	// Cleanup old data (children first)
	log.Info().Msg("cleaning old data")
	for _, table := range []string{"bookings", "items", "subcategories", "categories"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			log.Fatal().Err(err).Str("table", table).Msg("cleanup failed")
		}
	}

	ctx := context.Background()
	categories := repository.NewCategoryRepository(db)
	subcategories := repository.NewSubcategoryRepository(db)
	items := repository.NewItemRepository(db)

	// ================== CATEGORIES ==================
	food := &domain.Category{Name: "Food", Description: "Kitchen menu", TaxApplicable: true, TaxPercentage: pct(10)}
	drinks := &domain.Category{Name: "Drinks", TaxApplicable: true, TaxPercentage: pct(18)}
	spaces := &domain.Category{Name: "Spaces", Description: "Bookable rooms and tables"}
	for _, c := range []*domain.Category{food, drinks, spaces} {
		must(categories.Create(ctx, c), "category "+c.Name)
	}

	// ================== SUBCATEGORIES ==================
	pasta := &domain.Subcategory{CategoryID: food.ID, Name: "Pasta", TaxMode: domain.TaxInherit}
	kids := &domain.Subcategory{CategoryID: food.ID, Name: "Kids menu", TaxMode: domain.TaxNotApplicable}
	cocktails := &domain.Subcategory{CategoryID: drinks.ID, Name: "Cocktails", TaxMode: domain.TaxApplicable, TaxPercentage: pct(20)}
	for _, s := range []*domain.Subcategory{pasta, kids, cocktails} {
		must(subcategories.Create(ctx, s), "subcategory "+s.Name)
	}

	// ================== ITEMS ==================
	seed := []*domain.Item{
		{
			CategoryID:    &food.ID,
			Name:          "Burger",
			PricingType:   domain.PricingStatic,
			PricingConfig: map[string]any{"price": 50},
			Addons: []domain.Addon{
				{"id": "cheese", "name": "Extra cheese", "price": 5, "is_mandatory": false},
				{"id": "bacon", "name": "Bacon", "price": 7, "is_mandatory": false, "groupId": "toppings"},
			},
		},
		{
			SubcategoryID: &kids.ID,
			Name:          "Birthday cake slice",
			PricingType:   domain.PricingComplimentary,
		},
		{
			SubcategoryID: &pasta.ID,
			Name:          "Carbonara",
			PricingType:   domain.PricingDiscounted,
			PricingConfig: map[string]any{"base_price": 100, "discount_type": "PERCENT", "discount_value": 30},
		},
		{
			SubcategoryID: &cocktails.ID,
			Name:          "Mojito",
			PricingType:   domain.PricingDynamic,
			PricingConfig: map[string]any{"windows": []any{
				map[string]any{"start": "09:00", "end": "12:00", "price": 5},
				map[string]any{"start": "12:00", "end": "18:00", "price": 8},
			}},
		},
		{
			CategoryID:  &spaces.ID,
			Name:        "Private dining room",
			PricingType: domain.PricingTiered,
			PricingConfig: map[string]any{"tiers": []any{
				map[string]any{"upto": 2, "price": 10},
				map[string]any{"upto": 5, "price": 20},
			}},
			IsBookable: true,
			Availability: &domain.Availability{
				Days: []domain.DayCode{domain.Monday, domain.Tuesday, domain.Wednesday, domain.Thursday, domain.Friday},
				Slots: []domain.Slot{
					{Start: "09:00", End: "10:00"},
					{Start: "10:00", End: "11:00"},
					{Start: "12:00", End: "13:00"},
				},
			},
		},
	}
	for _, it := range seed {
		if it.Addons == nil {
			it.Addons = []domain.Addon{}
		}
		must(items.Create(ctx, it), "item "+it.Name)
		log.Info().Str("id", it.ID.String()).Str("name", it.Name).Str("pricing", string(it.PricingType)).Msg("item created")
	}

	log.Info().Msg("seed complete")
}

func must(err error, what string) {
	if err != nil {
		log.Fatal().Err(err).Msgf("seed %s", what)
	}
}
