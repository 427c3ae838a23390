package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unirides/unirides/internal/pkg/models"
	"github.com/unirides/unirides/services/bookings/mocks"
)

func setup(t *testing.T) (*BookingUC, *mocks.MockBookingRepo, *mocks.MockBookingGW) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	repo := mocks.NewMockBookingRepo(ctrl)
	gw := mocks.NewMockBookingGW(ctrl)
	return NewBookingUC(&models.Config{}, repo, gw), repo, gw
}

func TestCreateBooking(t *testing.T) {
	testCases := []struct {
		name       string
		booking    *models.Booking
		mockSetup  func(repo *mocks.MockBookingRepo, gw *mocks.MockBookingGW)
		assertFunc func(t *testing.T, b *models.Booking, err error)
	}{
		{
			name:    "Success",
			booking: &models.Booking{RideID: "r-1", PassengerID: "p-1", Status: models.BookingStatusCompleted, RequestID: "forged"},
			mockSetup: func(repo *mocks.MockBookingRepo, gw *mocks.MockBookingGW) {
				repo.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
					Return(&models.Ride{ID: "r-1", AvailableSeats: 1, Status: models.RideStatusAvailable}, nil)
				gw.EXPECT().PublishBookingCreated(gomock.Any(), gomock.Any()).Return(nil)
			},
			assertFunc: func(t *testing.T, b *models.Booking, err error) {
				require.NoError(t, err)
				assert.NotEmpty(t, b.ID)
				assert.Equal(t, models.BookingStatusPending, b.Status)
				assert.Empty(t, b.RequestID)
				assert.False(t, b.CreatedAt.IsZero())
			},
		},
		{
			name:    "Unknown ride still books",
			booking: &models.Booking{RideID: "ghost", PassengerID: "p-1"},
			mockSetup: func(repo *mocks.MockBookingRepo, gw *mocks.MockBookingGW) {
				repo.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(nil, nil)
				gw.EXPECT().PublishBookingCreated(gomock.Any(), gomock.Any()).Return(errors.New("nats down"))
			},
			assertFunc: func(t *testing.T, b *models.Booking, err error) {
				require.NoError(t, err)
				assert.Equal(t, "ghost", b.RideID)
			},
		},
		{
			name:      "Missing ride id",
			booking:   &models.Booking{PassengerID: "p-1"},
			mockSetup: func(repo *mocks.MockBookingRepo, gw *mocks.MockBookingGW) {},
			assertFunc: func(t *testing.T, b *models.Booking, err error) {
				assert.ErrorIs(t, err, models.ErrValidation)
				assert.Nil(t, b)
			},
		},
		{
			name:      "Missing passenger id",
			booking:   &models.Booking{RideID: "r-1"},
			mockSetup: func(repo *mocks.MockBookingRepo, gw *mocks.MockBookingGW) {},
			assertFunc: func(t *testing.T, b *models.Booking, err error) {
				assert.ErrorIs(t, err, models.ErrValidation)
			},
		},
		{
			name:    "Repository failure",
			booking: &models.Booking{RideID: "r-1", PassengerID: "p-1"},
			mockSetup: func(repo *mocks.MockBookingRepo, gw *mocks.MockBookingGW) {
				repo.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
			},
			assertFunc: func(t *testing.T, b *models.Booking, err error) {
				assert.Error(t, err)
				assert.Nil(t, b)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc, repo, gw := setup(t)
			tc.mockSetup(repo, gw)

			b, err := uc.CreateBooking(context.Background(), tc.booking)
			tc.assertFunc(t, b, err)
		})
	}
}

func TestGetBookings(t *testing.T) {
	t.Run("Student by passenger", func(t *testing.T) {
		uc, repo, _ := setup(t)
		repo.EXPECT().ListBookingsByPassenger(gomock.Any(), "s-1").Return([]*models.Booking{{ID: "b-1"}}, nil)

		list, err := uc.GetBookings(context.Background(), "s-1", models.UserTypeStudent)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("Driver by driver", func(t *testing.T) {
		uc, repo, _ := setup(t)
		repo.EXPECT().ListBookingsByDriver(gomock.Any(), "d-1").Return([]*models.Booking{}, nil)

		list, err := uc.GetBookings(context.Background(), "d-1", models.UserTypeDriver)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("Unknown user type", func(t *testing.T) {
		uc, _, _ := setup(t)
		_, err := uc.GetBookings(context.Background(), "x-1", models.UserType("admin"))
		assert.ErrorIs(t, err, models.ErrInvalidUserType)
	})

	t.Run("Missing user id", func(t *testing.T) {
		uc, _, _ := setup(t)
		_, err := uc.GetBookings(context.Background(), "", models.UserTypeStudent)
		assert.ErrorIs(t, err, models.ErrValidation)
	})
}

func TestUpdateBooking(t *testing.T) {
	t.Run("Status change", func(t *testing.T) {
		uc, repo, gw := setup(t)
		stored := &models.Booking{ID: "b-1", RideID: "r-1", Status: models.BookingStatusPending}

		repo.EXPECT().UpdateBooking(gomock.Any(), "b-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, apply func(*models.Booking) error) (*models.Booking, error) {
				require.NoError(t, apply(stored))
				return stored, nil
			})
		gw.EXPECT().PublishBookingUpdated(gomock.Any(), stored).Return(nil)

		status := models.BookingStatusCancelled
		b, err := uc.UpdateBooking(context.Background(), "b-1", models.BookingUpdate{Status: &status})

		require.NoError(t, err)
		assert.Equal(t, models.BookingStatusCancelled, b.Status)
		assert.Equal(t, "r-1", b.RideID)
		assert.False(t, b.UpdatedAt.IsZero())
	})

	t.Run("Unknown status", func(t *testing.T) {
		uc, _, _ := setup(t)
		status := models.BookingStatus("confirmed")
		_, err := uc.UpdateBooking(context.Background(), "b-1", models.BookingUpdate{Status: &status})
		assert.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run("Not found", func(t *testing.T) {
		uc, repo, _ := setup(t)
		repo.EXPECT().UpdateBooking(gomock.Any(), "missing", gomock.Any()).Return(nil, models.ErrBookingNotFound)

		_, err := uc.UpdateBooking(context.Background(), "missing", models.BookingUpdate{})
		assert.ErrorIs(t, err, models.ErrBookingNotFound)
	})
}
