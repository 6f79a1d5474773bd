package bookings

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"conexperto-service/internal/app/contracts"
	"conexperto-service/internal/app/models"
	"conexperto-service/internal/pkg/dto/requests"
	"conexperto-service/internal/pkg/exceptions"
	"conexperto-service/internal/pkg/queries"

	"github.com/lib/pq"
)

// pgUniqueViolation is the class 23 code raised by the partial unique index
// guarding slot exclusivity.
const pgUniqueViolation = "23505"

type bookingPostgresRepository struct {
	DB *sql.DB
}

// mapInsertError translates a unique violation on the live-slot index into
// the slot conflict the caller surfaces as a 409.
func mapInsertError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
		return exceptions.ErrSlotUnavailable(err)
	}
	return exceptions.ErrPostgresDBInsertData(err)
}

func NewBookingPostgresRepository(db *sql.DB) contracts.BookingRepository {
	return &bookingPostgresRepository{
		DB: db,
	}
}

func (repo *bookingPostgresRepository) CreateWithAddons(ctx context.Context, booking *models.Booking, addons []models.BookingAddon) (*models.Booking, error) {
	tx, err := repo.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, exceptions.ErrPostgresDBBeginTransaction(err)
	}
	defer tx.Rollback()

	var created models.Booking
	err = tx.QueryRowContext(ctx, queries.InsertBooking,
		booking.ID,
		booking.ClientID,
		booking.ExpertID,
		booking.ServiceID,
		booking.Status,
		booking.Price,
		booking.Currency,
		booking.ScheduledDate,
		booking.ScheduledTime,
		booking.ClientTimezone,
		booking.ExpertTimezone,
		booking.StartAtUTC,
		booking.MeetingRef,
		booking.PaymentLink,
		booking.ExpiresAt,
	).Scan(
		&created.ID,
		&created.ClientID,
		&created.ExpertID,
		&created.ServiceID,
		&created.Status,
		&created.Price,
		&created.Currency,
		&created.ScheduledDate,
		&created.ScheduledTime,
		&created.ClientTimezone,
		&created.ExpertTimezone,
		&created.StartAtUTC,
		&created.MeetingRef,
		&created.PaymentLink,
		&created.ExpiresAt,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return nil, mapInsertError(err)
	}

	for _, addon := range addons {
		if _, err := tx.ExecContext(ctx, queries.InsertBookingAddon,
			created.ID,
			addon.AddonID,
			addon.Price,
			addon.Currency,
		); err != nil {
			return nil, exceptions.ErrPostgresDBInsertData(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, exceptions.ErrPostgresDBCommit(err)
	}
	return &created, nil
}

func (repo *bookingPostgresRepository) FindByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	row := repo.DB.QueryRowContext(ctx, queries.GetBookingByID, bookingID)
	booking, err := scanBooking(row)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return booking, nil
}

func (repo *bookingPostgresRepository) FindAll(ctx context.Context, params *requests.QueryParams) ([]models.Booking, error) {
	query := queries.GetBookingsByClientID
	ownerID := params.ClientID
	if params.ExpertID != "" {
		query = queries.GetBookingsByExpertID
		ownerID = params.ExpertID
	}

	rows, err := repo.DB.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		if params.Status != "" && string(booking.Status) != params.Status {
			continue
		}
		bookings = append(bookings, *booking)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return bookings, nil
}

func (repo *bookingPostgresRepository) UpdateStatus(ctx context.Context, bookingID string, from, to models.BookingStatus) (bool, error) {
	result, err := repo.DB.ExecContext(ctx, queries.UpdateBookingStatus, bookingID, from, to)
	if err != nil {
		return false, exceptions.ErrPostgresDBUpdateData(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, exceptions.ErrPostgresDBUpdateData(err)
	}
	return affected == 1, nil
}

func (repo *bookingPostgresRepository) UpdateMeetingRef(ctx context.Context, bookingID, meetingRef string) error {
	if _, err := repo.DB.ExecContext(ctx, queries.UpdateBookingMeetingRef, bookingID, meetingRef); err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return nil
}

func (repo *bookingPostgresRepository) UpdatePaymentLink(ctx context.Context, bookingID, paymentLink string) error {
	if _, err := repo.DB.ExecContext(ctx, queries.UpdateBookingPaymentLink, bookingID, paymentLink); err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return nil
}

func (repo *bookingPostgresRepository) ExpireDue(ctx context.Context, now time.Time) (int64, error) {
	result, err := repo.DB.ExecContext(ctx, queries.ExpireDueBookings, now)
	if err != nil {
		return 0, exceptions.ErrPostgresDBUpdateData(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, exceptions.ErrPostgresDBUpdateData(err)
	}
	return affected, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*models.Booking, error) {
	var booking models.Booking
	err := row.Scan(
		&booking.ID,
		&booking.ClientID,
		&booking.ExpertID,
		&booking.ServiceID,
		&booking.Status,
		&booking.Price,
		&booking.Currency,
		&booking.ScheduledDate,
		&booking.ScheduledTime,
		&booking.ClientTimezone,
		&booking.ExpertTimezone,
		&booking.StartAtUTC,
		&booking.MeetingRef,
		&booking.PaymentLink,
		&booking.ExpiresAt,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}
