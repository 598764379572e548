package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"fmt"
	"strconv"
	"time"
	"travel/config"
	"travel/infras/kafka"
	"travel/infras/otel"
	"travel/internal/domains/booking/model"
	"travel/internal/domains/booking/model/dto"
	"travel/internal/domains/booking/repository"
	catalogService "travel/internal/domains/catalog/service"
	userService "travel/internal/domains/user/service"
	"travel/shared"
	"travel/shared/cache"
	"travel/shared/constant"
	gDto "travel/shared/dto"
	"travel/shared/failure"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, userID *int64) (dto.GetBookingsResponse, error)
	GetByUsername(ctx context.Context, params gDto.QueryParams, username string) (dto.GetBookingsResponse, error)
	GetSummaries(ctx context.Context, userID int64) (dto.GetBookingSummariesResponse, error)
	Delete(ctx context.Context, id int64) (dto.DeleteBookingResponse, error)
}

type serviceImpl struct {
	repo    repository.Booking
	catalog catalogService.Catalog
	user    userService.User
	kafka   kafka.Client
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
}

func New(
	repo repository.Booking,
	catalog catalogService.Catalog,
	user userService.User,
	kafka kafka.Client,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:    repo,
		catalog: catalog,
		user:    user,
		kafka:   kafka,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
	}
}

func byUser(userID *int64) gDto.FilterGroup {
	if userID == nil {
		return gDto.FilterGroup{}
	}

	return shared.FilterByID(*userID, model.FieldUserID, "")
}

// Create prices the selected components, then inserts a single row. Nothing
// is written when a referenced user or component is missing.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exist, err := s.user.Exists(ctx, req.UserID)
	if err != nil {
		log.Error().Err(err).Int64("user_id", req.UserID).Msg("failed to check booking user")

		return res, fmt.Errorf("failed to check booking user: %w", err)
	}

	if !exist {
		return res, failure.UnprocessableEntity(fmt.Sprintf("referenced user %d not found", req.UserID)) //nolint:wrapcheck
	}

	totalCost, err := s.totalCost(ctx, req.Components())
	if err != nil {
		return res, err
	}

	booking, err := req.ToModel(totalCost)
	if err != nil {
		return res, failure.BadRequest(err) //nolint:wrapcheck
	}

	id, err := s.repo.Insert(ctx, booking)
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	booking.BookingID = id

	shared.InvalidateCaches(ctx, s.cache, shared.BuildCacheKey(constant.CacheKeyReport, constant.ReportSlugUserBookings))
	s.publish(ctx, dto.BookingEvent{
		Type:        model.EventCreated,
		BookingID:   id,
		UserID:      booking.UserID,
		BookingDate: req.BookingDate,
		TotalCost:   totalCost.StringFixed(2),
	})

	log.Info().Int64("booking_id", id).Str("total_cost", totalCost.StringFixed(2)).Msg("booking created")

	return dto.CreateBookingResponse{BookingID: id, TotalCost: totalCost.StringFixed(2)}, nil
}

// GetAll lists bookings in table order. Pagination only applies when a
// limit is given.
func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, userID *int64) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := byUser(userID)

	bookings, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	total := len(bookings)

	if params.Limit > 0 {
		total, err = s.repo.Count(ctx, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to count bookings")

			return res, fmt.Errorf("failed to count bookings: %w", err)
		}
	}

	res.FromModels(bookings, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) GetByUsername(ctx context.Context, params gDto.QueryParams, username string) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetByUsername")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	userID, err := s.user.ResolveID(ctx, username)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	return s.GetAll(ctx, params, &userID)
}

func (s *serviceImpl) GetSummaries(ctx context.Context, userID int64) (res dto.GetBookingSummariesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetSummaries")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bookings, err := s.repo.GetAll(ctx, gDto.QueryParams{}, byUser(&userID),
		model.FieldBookingID, model.FieldBookingDate, model.FieldTotalCost)
	if err != nil {
		log.Error().Err(err).Int64("user_id", userID).Msg("failed to get booking summaries")

		return res, fmt.Errorf("failed to get booking summaries: %w", err)
	}

	res.FromModels(bookings)

	return res, nil
}

// Delete removes the booking if present. Deleting an unknown id affects no
// rows and is not an error.
func (s *serviceImpl) Delete(ctx context.Context, id int64) (res dto.DeleteBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	deleted, err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldBookingID, ""))
	if err != nil {
		log.Error().Err(err).Int64("booking_id", id).Msg("failed to delete booking")

		return res, fmt.Errorf("failed to delete booking: %w", err)
	}

	if deleted > 0 {
		shared.InvalidateCaches(ctx, s.cache, shared.BuildCacheKey(constant.CacheKeyReport, constant.ReportSlugUserBookings))
		s.publish(ctx, dto.BookingEvent{Type: model.EventDeleted, BookingID: id})
	}

	log.Info().Int64("booking_id", id).Int64("deleted", deleted).Msg("booking delete executed")

	return dto.DeleteBookingResponse{BookingID: id, Deleted: deleted}, nil
}

func (s *serviceImpl) publish(ctx context.Context, event dto.BookingEvent) {
	event.OccurredAt = time.Now().UTC()

	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{Key: strconv.FormatInt(event.BookingID, 10), Value: event}
		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.Booking, message); err != nil {
			log.Error().Err(err).Str("type", event.Type).Int64("booking_id", event.BookingID).Msg("failed to publish booking event")
		}
	}()
}
