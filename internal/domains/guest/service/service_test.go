package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/config"
	"lodge/infras/otel/mocks"
	guestMocks "lodge/internal/domains/guest/mocks"
	"lodge/internal/domains/guest/model"
	"lodge/internal/domains/guest/model/dto"
	"lodge/internal/domains/guest/service"
	cacheMocks "lodge/shared/cache/mocks"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

type guestFixture struct {
	repo  *guestMocks.MockGuest
	cache *cacheMocks.MockRedisCache
	svc   service.Guest
}

func newGuestFixture(t *testing.T) *guestFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &guestFixture{
		repo:  guestMocks.NewMockGuest(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.repo, cfg, f.cache, mocks.NewOtel())

	// Cache invalidation runs on a detached goroutine after writes.
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func storedGuest() model.Guest {
	return model.Guest{
		ID:          "guest-id",
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Email:       "ada@example.com",
		PhoneNumber: "0812345678",
		Status:      model.StatusActive,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "test-operator",
			ModifiedBy: "test-operator",
		},
	}
}

func TestGuestService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateGuestRequest
		setupMock func(f *guestFixture)
		wantErr   bool
	}{
		{
			name: "successful creation",
			req: dto.CreateGuestRequest{
				FirstName: "Ada",
				LastName:  "Lovelace",
				Email:     "ada@example.com",
			},
			setupMock: func(f *guestFixture) {
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "duplicate email",
			req: dto.CreateGuestRequest{
				FirstName: "Ada",
				LastName:  "Lovelace",
				Email:     "ada@example.com",
			},
			setupMock: func(f *guestFixture) {
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(failure.Conflict("email address is already registered"))
			},
			wantErr: true,
		},
		{
			name: "repository error",
			req: dto.CreateGuestRequest{
				FirstName: "Ada",
				LastName:  "Lovelace",
				Email:     "ada@example.com",
			},
			setupMock: func(f *guestFixture) {
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newGuestFixture(t)
			tt.setupMock(f)

			ctx := context.WithValue(context.Background(), constant.ContextKeyOperator, "test-operator")
			res, err := f.svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, res.ID)
				assert.Equal(t, tt.req.Email, res.Email)
				assert.Equal(t, model.StatusActive, res.Status)
			}
		})
	}
}

func TestGuestService_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f *guestFixture)
		wantErr   bool
		wantID    string
	}{
		{
			name: "cache hit",
			setupMock: func(f *guestFixture) {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "cache miss, successful get from db",
			setupMock: func(f *guestFixture) {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedGuest(), nil)
			},
			wantID: "guest-id",
		},
		{
			name: "guest not found",
			setupMock: func(f *guestFixture) {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Guest{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newGuestFixture(t)
			tt.setupMock(f)

			result, err := f.svc.Get(context.Background(), "guest-id")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, failure.ReasonGuestNotFound, failure.GetReason(err))
			} else {
				assert.NoError(t, err)
				if tt.wantID != "" {
					assert.Equal(t, tt.wantID, result.ID)
				}
			}
		})
	}
}

func TestGuestService_GetAll(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f *guestFixture)
		wantErr   bool
		wantTotal int
	}{
		{
			name: "successful get all",
			setupMock: func(f *guestFixture) {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				f.repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				f.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Guest{storedGuest()}, nil)
			},
			wantTotal: 1,
		},
		{
			name: "get all error",
			setupMock: func(f *guestFixture) {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				f.repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				f.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("get all error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newGuestFixture(t)
			tt.setupMock(f)

			params := gDto.QueryParams{Limit: 10, Page: 1}

			result, err := f.svc.GetAll(context.Background(), params, gDto.FilterGroup{})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantTotal, result.TotalData)
			}
		})
	}
}

func TestGuestService_Update(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.UpdateGuestRequest
		setupMock func(f *guestFixture)
		wantErr   bool
	}{
		{
			name: "successful update",
			req:  dto.UpdateGuestRequest{FirstName: "Augusta"},
			setupMock: func(f *guestFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedGuest(), nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "guest not found",
			req:  dto.UpdateGuestRequest{FirstName: "Augusta"},
			setupMock: func(f *guestFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Guest{}, nil)
			},
			wantErr: true,
		},
		{
			name: "update error",
			req:  dto.UpdateGuestRequest{FirstName: "Augusta"},
			setupMock: func(f *guestFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedGuest(), nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("update error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newGuestFixture(t)
			tt.setupMock(f)

			ctx := context.WithValue(context.Background(), constant.ContextKeyOperator, "test-operator")
			err := f.svc.Update(ctx, tt.req, "guest-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGuestService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f *guestFixture)
		wantErr   bool
	}{
		{
			name: "successful deletion",
			setupMock: func(f *guestFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedGuest(), nil)

				f.repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "guest not found",
			setupMock: func(f *guestFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Guest{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newGuestFixture(t)
			tt.setupMock(f)

			err := f.svc.Delete(context.Background(), "guest-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
