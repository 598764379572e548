package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=User=MockUserService

import (
	"context"
	"fmt"
	"strings"
	"travel/config"
	"travel/infras/otel"
	"travel/internal/domains/user/model"
	"travel/internal/domains/user/model/dto"
	"travel/internal/domains/user/repository"
	"travel/shared"
	"travel/shared/cache"
	"travel/shared/constant"
	gDto "travel/shared/dto"
	"travel/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheUserNames = "user:names"
)

type User interface {
	Create(ctx context.Context, req dto.CreateUserRequest) (dto.CreateUserResponse, error)
	Names(ctx context.Context) (dto.GetUserNamesResponse, error)
	ResolveID(ctx context.Context, username string) (int64, error)
	Exists(ctx context.Context, userID int64) (bool, error)
}

type serviceImpl struct {
	repo  repository.User
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.User, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) User {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func byUsername(username string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldUsername, Value: username, Operator: gDto.FilterOperatorEq},
		},
	}
}

// Create inserts a user. Usernames are unique because pickers map a name
// back to exactly one id.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateUserRequest) (res dto.CreateUserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user := req.ToModel()

	exist, err := s.repo.Exist(ctx, byUsername(user.Username))
	if err != nil {
		log.Error().Err(err).Msg("failed to check username")

		return res, fmt.Errorf("failed to check username: %w", err)
	}

	if exist {
		return res, failure.Conflict(fmt.Sprintf("username %s already exists", user.Username)) //nolint:wrapcheck
	}

	id, err := s.repo.Insert(ctx, user)
	if err != nil {
		log.Error().Err(err).Msg("failed to create user")

		return res, fmt.Errorf("failed to create user: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, cacheUserNames)

	log.Info().Int64("user_id", id).Str("username", user.Username).Msg("user created")

	return dto.CreateUserResponse{UserID: id, Username: user.Username}, nil
}

func (s *serviceImpl) Names(ctx context.Context) (res dto.GetUserNamesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Names")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.cache.Get(ctx, cacheUserNames, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheUserNames).Msg("cache hit for user names")

		return res, nil
	}

	users, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{}, model.FieldUserID, model.FieldUsername)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user names")

		return res, fmt.Errorf("failed to get user names: %w", err)
	}

	res.FromModels(users)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheUserNames, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save user names to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) ResolveID(ctx context.Context, username string) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.ResolveID")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	username = strings.TrimSpace(username)
	if username == "" {
		return 0, failure.BadRequestFromString("username is required") //nolint:wrapcheck
	}

	user, err := s.repo.Get(ctx, byUsername(username), model.FieldUserID)
	if err != nil {
		log.Error().Err(err).Str("username", username).Msg("failed to resolve user")

		return 0, fmt.Errorf("failed to resolve user: %w", err)
	}

	if user.UserID == 0 {
		return 0, failure.NotFound("user not found") //nolint:wrapcheck
	}

	return user.UserID, nil
}

func (s *serviceImpl) Exists(ctx context.Context, userID int64) (exist bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Exists")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exist, err = s.repo.Exist(ctx, shared.FilterByID(userID, model.FieldUserID, ""))
	if err != nil {
		log.Error().Err(err).Int64("user_id", userID).Msg("failed to check user")

		return false, fmt.Errorf("failed to check user: %w", err)
	}

	return exist, nil
}
