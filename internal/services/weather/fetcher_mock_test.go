package weather_test

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) Fetch(ctx context.Context, url string) ([]byte, int, error) {
	args := m.Called(ctx, url)

	body, _ := args.Get(0).([]byte)
	return body, args.Int(1), args.Error(2)
}
