package catalog

import (
	"context"
	"database/sql"

	"conexperto-service/internal/app/contracts"
	"conexperto-service/internal/app/models"
	"conexperto-service/internal/pkg/exceptions"
	"conexperto-service/internal/pkg/queries"

	"github.com/lib/pq"
)

type servicePostgresRepository struct {
	DB *sql.DB
}

func NewServicePostgresRepository(db *sql.DB) contracts.ServiceRepository {
	return &servicePostgresRepository{
		DB: db,
	}
}

func (repo *servicePostgresRepository) FindByID(ctx context.Context, serviceID string) (*models.Service, error) {
	query := queries.GetServiceByID
	var service models.Service
	err := repo.DB.QueryRowContext(ctx, query, serviceID).Scan(
		&service.ID,
		&service.ExpertID,
		&service.Title,
		&service.Price,
		&service.Currency,
		&service.Active,
		&service.CreatedAt,
		&service.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &service, nil
}

type addonPostgresRepository struct {
	DB *sql.DB
}

func NewAddonPostgresRepository(db *sql.DB) contracts.AddonRepository {
	return &addonPostgresRepository{
		DB: db,
	}
}

func (repo *addonPostgresRepository) FindActiveByIDs(ctx context.Context, addonIDs []string) ([]models.Addon, error) {
	if len(addonIDs) == 0 {
		return nil, nil
	}

	query := queries.GetActiveAddonsByIDs
	rows, err := repo.DB.QueryContext(ctx, query, pq.Array(addonIDs))
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	var addons []models.Addon
	for rows.Next() {
		var model models.Addon
		if err := rows.Scan(
			&model.ID,
			&model.Name,
			&model.Price,
			&model.Currency,
			&model.Active,
		); err != nil {
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		addons = append(addons, model)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}

	return addons, nil
}

type expertPostgresRepository struct {
	DB *sql.DB
}

func NewExpertPostgresRepository(db *sql.DB) contracts.ExpertRepository {
	return &expertPostgresRepository{
		DB: db,
	}
}

func (repo *expertPostgresRepository) FindTimezoneByID(ctx context.Context, expertID string) (string, error) {
	query := queries.GetExpertTimezoneByID
	var timezone string
	err := repo.DB.QueryRowContext(ctx, query, expertID).Scan(&timezone)
	if err == sql.ErrNoRows {
		return "", nil
	} else if err != nil {
		return "", exceptions.ErrPostgresDBFindData(err)
	}
	return timezone, nil
}
