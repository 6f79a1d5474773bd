package queries

const (
	GetServiceByID = `
		SELECT
			id,
			expert_id,
			title,
			price,
			currency,
			active,
			created_at,
			updated_at
		FROM services
		WHERE id = $1
	`

	GetActiveAddonsByIDs = `
		SELECT
			id,
			name,
			price,
			currency,
			active
		FROM addons
		WHERE active = TRUE AND id = ANY($1)
	`

	GetExpertTimezoneByID = `
		SELECT timezone
		FROM experts
		WHERE id = $1
	`
)
