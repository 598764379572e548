package service

import (
	"context"
	"travel/internal/domains/booking/model/dto"

	"github.com/shopspring/decimal"
)

// totalCost adds up the price of every selected component. No selection
// costs zero, and a component whose row is missing fails the whole sum.
func (s *serviceImpl) totalCost(ctx context.Context, components []dto.Component) (decimal.Decimal, error) {
	total := decimal.Zero

	for _, component := range components {
		price, err := s.catalog.Price(ctx, component.Kind, component.ID)
		if err != nil {
			return decimal.Zero, err //nolint:wrapcheck
		}

		total = total.Add(price)
	}

	return total, nil
}
