package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Catalog=MockCatalogService

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"travel/config"
	"travel/infras/otel"
	"travel/internal/domains/catalog/model"
	"travel/internal/domains/catalog/model/dto"
	"travel/internal/domains/catalog/repository"
	"travel/shared"
	"travel/shared/cache"
	"travel/shared/constant"
	"travel/shared/failure"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	cacheOptions = "catalog:options"
)

type Catalog interface {
	Options(ctx context.Context, kind string) (dto.GetOptionsResponse, error)
	ResolveOption(ctx context.Context, kind, name string) (int64, error)
	Price(ctx context.Context, kind string, id int64) (decimal.Decimal, error)
}

type serviceImpl struct {
	repo  repository.Catalog
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Catalog, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Catalog {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func unknownKind(kind string) error {
	return failure.BadRequestFromString(fmt.Sprintf("unknown option kind %q, expected one of %s", kind, strings.Join(model.Kinds, ", "))) //nolint:wrapcheck
}

func (s *serviceImpl) Options(ctx context.Context, kind string) (res dto.GetOptionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".catalog.Options")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !slices.Contains(model.Kinds, kind) {
		return res, unknownKind(kind)
	}

	cacheKey := shared.BuildCacheKey(cacheOptions, kind)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for options")

		return res, nil
	}

	res = dto.GetOptionsResponse{Kind: kind, Options: []dto.Option{}}

	switch kind {
	case model.KindFlight:
		var flights []model.Flight

		flights, err = s.repo.Flights(ctx)
		for _, flight := range flights {
			res.Options = append(res.Options, dto.Option{ID: flight.FlightID, Name: flight.FlightNumber})
		}
	case model.KindRestaurant:
		var restaurants []model.Restaurant

		restaurants, err = s.repo.Restaurants(ctx)
		for _, restaurant := range restaurants {
			res.Options = append(res.Options, dto.Option{ID: restaurant.RestaurantID, Name: restaurant.RestaurantName})
		}
	case model.KindAttraction:
		var attractions []model.Attraction

		attractions, err = s.repo.Attractions(ctx)
		for _, attraction := range attractions {
			res.Options = append(res.Options, dto.Option{ID: attraction.AttractionID, Name: attraction.AttractionName})
		}
	}

	if err != nil {
		log.Error().Err(err).Str("kind", kind).Msg("failed to get options")

		return dto.GetOptionsResponse{}, fmt.Errorf("failed to get %s options: %w", kind, err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save options to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) ResolveOption(ctx context.Context, kind, name string) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".catalog.ResolveOption")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	options, err := s.Options(ctx, kind)
	if err != nil {
		return 0, err
	}

	id, ok := options.Find(name)
	if !ok {
		return 0, failure.NotFound(fmt.Sprintf("%s %q not found", kind, name)) //nolint:wrapcheck
	}

	return id, nil
}

// Price looks up the amount one selected component adds to a booking. A
// missing row is an error, never a zero price.
func (s *serviceImpl) Price(ctx context.Context, kind string, id int64) (price decimal.Decimal, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".catalog.Price")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{"kind": kind, "id": id})

	found := false

	switch kind {
	case model.KindFlight:
		var flight model.Flight

		flight, err = s.repo.Flight(ctx, id)
		found, price = flight.FlightID != 0, flight.Price
	case model.KindRestaurant:
		var dish model.Dish

		dish, err = s.repo.FirstDish(ctx, id)
		found, price = dish.DishID != 0, dish.TypicalPrice
	case model.KindAttraction:
		var attraction model.Attraction

		attraction, err = s.repo.Attraction(ctx, id)
		found, price = attraction.AttractionID != 0, attraction.EntryFee
	default:
		return decimal.Zero, unknownKind(kind)
	}

	if err != nil {
		log.Error().Err(err).Str("kind", kind).Int64("id", id).Msg("failed to look up price")

		return decimal.Zero, fmt.Errorf("failed to look up %s price: %w", kind, err)
	}

	if !found {
		return decimal.Zero, failure.UnprocessableEntity(fmt.Sprintf("referenced %s %d not found", kind, id)) //nolint:wrapcheck
	}

	return price, nil
}
