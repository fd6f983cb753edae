package stadium

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-StadiumRental/internal/domain"
	"github.com/m04kA/SMC-StadiumRental/pkg/dbmetrics"
	"github.com/m04kA/SMC-StadiumRental/pkg/psqlbuilder"
)

var stadiumColumns = []string{
	"id",
	"owner_id",
	"name",
	"description",
	"location",
	"district",
	"price",
	"capacity",
	"sport_type",
	"is_active",
	"created_at",
}

// Repository репозиторий каталога стадионов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория стадионов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает стадион по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Stadium, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(stadiumColumns...).
		From("stadiums").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Stadium
	err = executor.QueryRowContext(ctx, query, args...).Scan(stadiumDest(&s)...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStadiumNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan stadium: %v", ErrScanRow, err)
	}

	return &s, nil
}

// Create регистрирует новый стадион, is_active и created_at заполняет БД
func (r *Repository) Create(ctx context.Context, stadium *domain.Stadium) (*domain.Stadium, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("stadiums").
		Columns(
			"owner_id",
			"name",
			"description",
			"location",
			"district",
			"price",
			"capacity",
			"sport_type",
		).
		Values(
			stadium.OwnerID,
			stadium.Name,
			stadium.Description,
			stadium.Location,
			stadium.District,
			stadium.Price,
			stadium.Capacity,
			stadium.SportType,
		).
		Suffix("RETURNING " + strings.Join(stadiumColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var created domain.Stadium
	if err := executor.QueryRowContext(ctx, query, args...).Scan(stadiumDest(&created)...); err != nil {
		return nil, mapWriteError("Create", err)
	}

	return &created, nil
}

// List получает стадионы по фильтру, отсортированные по названию
func (r *Repository) List(ctx context.Context, filter domain.StadiumFilter) ([]*domain.Stadium, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(stadiumColumns...).
		From("stadiums").
		OrderBy("name ASC", "id ASC")

	if filter.District != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"district": *filter.District})
	}
	if filter.SportType != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"sport_type": *filter.SportType})
	}
	if filter.ActiveOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	stadiums := make([]*domain.Stadium, 0)
	for rows.Next() {
		var s domain.Stadium
		if err := rows.Scan(stadiumDest(&s)...); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		stadiums = append(stadiums, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return stadiums, nil
}

func stadiumDest(s *domain.Stadium) []interface{} {
	return []interface{}{
		&s.ID,
		&s.OwnerID,
		&s.Name,
		&s.Description,
		&s.Location,
		&s.District,
		&s.Price,
		&s.Capacity,
		&s.SportType,
		&s.IsActive,
		&s.CreatedAt,
	}
}
