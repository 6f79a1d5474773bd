package queries

const (
	InsertBooking = `
		INSERT INTO bookings (
			id,
			client_id,
			expert_id,
			service_id,
			status,
			price,
			currency,
			scheduled_date,
			scheduled_time,
			client_timezone,
			expert_timezone,
			start_at_utc,
			meeting_ref,
			payment_link,
			expires_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING
			id,
			client_id,
			expert_id,
			service_id,
			status,
			price,
			currency,
			scheduled_date,
			scheduled_time,
			client_timezone,
			expert_timezone,
			start_at_utc,
			meeting_ref,
			payment_link,
			expires_at,
			created_at,
			updated_at
	`

	InsertBookingAddon = `
		INSERT INTO booking_addons (booking_id, addon_id, price, currency)
		VALUES ($1, $2, $3, $4)
	`

	GetBookingByID = `
		SELECT
			id,
			client_id,
			expert_id,
			service_id,
			status,
			price,
			currency,
			scheduled_date,
			scheduled_time,
			client_timezone,
			expert_timezone,
			start_at_utc,
			meeting_ref,
			payment_link,
			expires_at,
			created_at,
			updated_at
		FROM bookings
		WHERE id = $1
	`

	GetBookingsByClientID = `
		SELECT
			id,
			client_id,
			expert_id,
			service_id,
			status,
			price,
			currency,
			scheduled_date,
			scheduled_time,
			client_timezone,
			expert_timezone,
			start_at_utc,
			meeting_ref,
			payment_link,
			expires_at,
			created_at,
			updated_at
		FROM bookings
		WHERE client_id = $1
		ORDER BY start_at_utc DESC
	`

	GetBookingsByExpertID = `
		SELECT
			id,
			client_id,
			expert_id,
			service_id,
			status,
			price,
			currency,
			scheduled_date,
			scheduled_time,
			client_timezone,
			expert_timezone,
			start_at_utc,
			meeting_ref,
			payment_link,
			expires_at,
			created_at,
			updated_at
		FROM bookings
		WHERE expert_id = $1
		ORDER BY start_at_utc DESC
	`

	// UpdateBookingStatus performs a compare-and-swap on status so terminal
	// states can never be transitioned out of by a racing caller.
	UpdateBookingStatus = `
		UPDATE bookings
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $2
	`

	UpdateBookingMeetingRef = `
		UPDATE bookings
		SET meeting_ref = $2, updated_at = NOW()
		WHERE id = $1
	`

	UpdateBookingPaymentLink = `
		UPDATE bookings
		SET payment_link = $2, updated_at = NOW()
		WHERE id = $1
	`

	ExpireDueBookings = `
		UPDATE bookings
		SET status = 'expired', updated_at = NOW()
		WHERE status = 'pending' AND expires_at <= $1
	`
)
