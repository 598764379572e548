package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Report=MockReportService

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"path"
	"travel/config"
	"travel/infras/otel"
	"travel/infras/s3"
	"travel/internal/domains/report/model"
	"travel/internal/domains/report/model/dto"
	"travel/internal/domains/report/repository"
	"travel/shared"
	"travel/shared/cache"
	"travel/shared/constant"
	gDto "travel/shared/dto"
	"travel/shared/failure"
	"travel/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	exportDirectory = "reports"
	exportTimeFmt   = "20060102T150405"
)

type Report interface {
	List(ctx context.Context) dto.ListReportsResponse
	Run(ctx context.Context, slug string, params map[string]string, refresh bool) (dto.RunReportResponse, error)
	Departures(ctx context.Context, airportName string) (dto.RunReportResponse, error)
	Export(ctx context.Context, slug string, params map[string]string) (dto.ExportReportResponse, error)
}

type serviceImpl struct {
	repo  repository.Report
	s3    s3.S3
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Report, s3 s3.S3, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Report {
	return &serviceImpl{
		repo:  repo,
		s3:    s3,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) List(_ context.Context) (res dto.ListReportsResponse) {
	res.FromModels(model.Reports)

	return res
}

// Run executes a report. Frames are cached per resolved parameter set;
// refresh skips the lookup but still stores the new frame.
func (s *serviceImpl) Run(ctx context.Context, slug string, params map[string]string, refresh bool) (res dto.RunReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".report.Run")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("slug", slug)

	report, ok := model.Find(slug)
	if !ok {
		return res, failure.UnknownReport
	}

	values, args, err := bind(report, params)
	if err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(constant.CacheKeyReport, slug), values)

	if !refresh {
		err = s.cache.Get(ctx, cacheKey, &res)
		if err == nil {
			log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for report")

			return res, nil
		}
	}

	frame, err := s.repo.Run(ctx, report, args)
	if err != nil {
		log.Error().Err(err).Str("slug", slug).Msg("failed to run report")

		return dto.RunReportResponse{}, fmt.Errorf("failed to run report %s: %w", slug, err)
	}

	res = dto.RunReportResponse{Slug: report.Slug, Title: report.Title, Params: values, Frame: frame}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save report to cache")
		}
	}()

	return res, nil
}

// Departures lists the flights leaving the named airport.
func (s *serviceImpl) Departures(ctx context.Context, airportName string) (dto.RunReportResponse, error) {
	return s.Run(ctx, model.SlugFlightDetails, map[string]string{"airport_name": airportName}, false)
}

// Export renders the report as CSV and uploads it. It always reads fresh
// rows.
func (s *serviceImpl) Export(ctx context.Context, slug string, params map[string]string) (res dto.ExportReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".report.Export")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !s.s3.Enabled() {
		return res, failure.Unimplemented("report export is not configured") //nolint:wrapcheck
	}

	run, err := s.Run(ctx, slug, params, true)
	if err != nil {
		return res, err
	}

	data, err := encodeCSV(run.Frame)
	if err != nil {
		log.Error().Err(err).Str("slug", slug).Msg("failed to encode report")

		return res, fmt.Errorf("failed to encode report %s: %w", slug, err)
	}

	fileName := fmt.Sprintf("%s-%s.csv", timezone.Now().Format(exportTimeFmt), uuid.NewString())

	url, err := s.s3.UploadFileBytes(ctx, s.cfg.External.S3.BucketName, path.Join(exportDirectory, slug), fileName, constant.ContentTypeCSV, data)
	if err != nil {
		log.Error().Err(err).Str("slug", slug).Msg("failed to upload report")

		return res, fmt.Errorf("failed to upload report %s: %w", slug, err)
	}

	log.Info().Str("slug", slug).Str("url", url).Int("rows", run.Len()).Msg("report exported")

	return dto.ExportReportResponse{Slug: slug, URL: url, Rows: run.Len()}, nil
}

func encodeCSV(frame gDto.Frame) ([]byte, error) {
	var buf bytes.Buffer

	writer := csv.NewWriter(&buf)

	if err := writer.Write(frame.Columns); err != nil {
		return nil, err
	}

	if err := writer.WriteAll(frame.Strings()); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
