package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"travel/infras/database"
	"travel/infras/otel"
	"travel/internal/domains/catalog/model"
	"travel/shared"
	gDto "travel/shared/dto"
	gRepo "travel/shared/repository"
)

// Catalog reads the reference tables a booking is priced from.
type Catalog interface {
	Flights(ctx context.Context) ([]model.Flight, error)
	Restaurants(ctx context.Context) ([]model.Restaurant, error)
	Attractions(ctx context.Context) ([]model.Attraction, error)
	Flight(ctx context.Context, flightID int64) (model.Flight, error)
	FirstDish(ctx context.Context, restaurantID int64) (model.Dish, error)
	Attraction(ctx context.Context, attractionID int64) (model.Attraction, error)
}

type repositoryImpl struct {
	flights     gRepo.Repository[model.Flight]
	restaurants gRepo.Repository[model.Restaurant]
	dishes      gRepo.Repository[model.Dish]
	attractions gRepo.Repository[model.Attraction]
}

func New(db *database.Connection, otel otel.Otel) Catalog {
	return &repositoryImpl{
		flights:     gRepo.NewRepository[model.Flight]("flight", model.FlightTable, model.FieldFlightID, db, otel),
		restaurants: gRepo.NewRepository[model.Restaurant]("restaurant", model.RestaurantTable, model.FieldRestaurantID, db, otel),
		dishes:      gRepo.NewRepository[model.Dish]("dish", model.DishTable, model.FieldDishID, db, otel),
		attractions: gRepo.NewRepository[model.Attraction]("attraction", model.AttractionTable, model.FieldAttractionID, db, otel),
	}
}

func (r *repositoryImpl) Flights(ctx context.Context) ([]model.Flight, error) {
	return r.flights.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{}, model.FieldFlightID, model.FieldFlightNumber) //nolint:wrapcheck
}

func (r *repositoryImpl) Restaurants(ctx context.Context) ([]model.Restaurant, error) {
	return r.restaurants.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{}, model.FieldRestaurantID, model.FieldRestaurantName) //nolint:wrapcheck
}

func (r *repositoryImpl) Attractions(ctx context.Context) ([]model.Attraction, error) {
	return r.attractions.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{}, model.FieldAttractionID, model.FieldAttractionName) //nolint:wrapcheck
}

func (r *repositoryImpl) Flight(ctx context.Context, flightID int64) (model.Flight, error) {
	return r.flights.Get(ctx, shared.FilterByID(flightID, model.FieldFlightID, ""), model.FieldFlightID, model.FieldPrice) //nolint:wrapcheck
}

// FirstDish returns the lowest-id dish of the restaurant; its typical price
// stands for the restaurant in a booking.
func (r *repositoryImpl) FirstDish(ctx context.Context, restaurantID int64) (model.Dish, error) {
	dishes, err := r.dishes.GetAll(
		ctx,
		gDto.QueryParams{Limit: 1, SortBy: model.FieldDishID, SortDir: gDto.SortDirAsc},
		shared.FilterByID(restaurantID, model.FieldRestaurantID, ""),
		model.FieldDishID, model.FieldRestaurantID, model.FieldTypicalPrice,
	)
	if err != nil {
		return model.Dish{}, fmt.Errorf("failed to get first dish: %w", err)
	}

	if len(dishes) == 0 {
		return model.Dish{}, nil
	}

	return dishes[0], nil
}

func (r *repositoryImpl) Attraction(ctx context.Context, attractionID int64) (model.Attraction, error) {
	return r.attractions.Get(ctx, shared.FilterByID(attractionID, model.FieldAttractionID, ""), model.FieldAttractionID, model.FieldEntryFee) //nolint:wrapcheck
}
