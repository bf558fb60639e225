package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-MovieBooking/internal/domain"
	"github.com/m04kA/SMC-MovieBooking/pkg/psqlbuilder"
)

const table = "movie_catalog"

// columns порядок колонок для insert и select
var columns = []string{
	"movie_name",
	"theatre_name",
	"movie_id",
	"total_tickets",
	"available_tickets",
	"show_times",
	"status",
	"description",
	"genre",
	"language",
	"duration",
	"rating",
	"ticket_price",
	"poster_url",
	"release_date",
	"created_date",
	"modified_date",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Repository зеркало каталога фильмов в PostgreSQL.
// Хранит последний успешно полученный от бэкенда список.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert сохраняет фильмы по ключу (movie_name, theatre_name).
// Фильмы без названия или кинотеатра пропускаются.
func (r *Repository) Upsert(ctx context.Context, movies []domain.Movie) error {
	query, args, ok, err := upsertQuery(movies)
	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}
	if !ok {
		return nil
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// List возвращает все фильмы зеркала
func (r *Repository) List(ctx context.Context) ([]domain.Movie, error) {
	query, args, err := selectQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, "List", query, args)
}

// Search ищет фильмы по подстроке названия без учета регистра
func (r *Repository) Search(ctx context.Context, movieName string) ([]domain.Movie, error) {
	query, args, err := searchQuery(movieName).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Search - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, "Search", query, args)
}

// Delete удаляет фильм из зеркала. Отсутствие строки не считается ошибкой.
func (r *Repository) Delete(ctx context.Context, key domain.MovieKey) error {
	query, args, err := deleteQuery(key).ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) query(ctx context.Context, op, query string, args []any) ([]domain.Movie, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute select: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	movies := make([]domain.Movie, 0)
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - %v", ErrScanRow, op, err)
		}
		movies = append(movies, movie)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows iteration: %v", ErrScanRow, op, err)
	}

	return movies, nil
}

func upsertQuery(movies []domain.Movie) (string, []any, bool, error) {
	insert := psqlbuilder.Insert(table).Columns(columns...)

	seen := make(map[domain.MovieKey]struct{}, len(movies))
	count := 0
	for _, m := range movies {
		key := m.Key()
		if key.MovieName == "" || key.TheatreName == "" {
			continue
		}
		// ON CONFLICT не допускает один ключ дважды в одном insert
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		insert = insert.Values(
			m.MovieName,
			m.TheatreName,
			m.ID,
			m.TotalTickets,
			m.AvailableTickets,
			pq.Array(nonNil(m.ShowTimes)),
			m.Status,
			m.Description,
			m.Genre,
			m.Language,
			m.Duration,
			m.Rating,
			m.TicketPrice,
			m.PosterURL,
			m.ReleaseDate,
			m.CreatedDate,
			m.ModifiedDate,
		)
		count++
	}

	if count == 0 {
		return "", nil, false, nil
	}

	query, args, err := insert.Suffix(conflictClause()).ToSql()
	if err != nil {
		return "", nil, false, err
	}
	return query, args, true, nil
}

func conflictClause() string {
	updates := make([]string, 0, len(columns)-1)
	for _, c := range columns[2:] {
		updates = append(updates, c+" = EXCLUDED."+c)
	}
	updates = append(updates, "synced_at = now()")
	return "ON CONFLICT (movie_name, theatre_name) DO UPDATE SET " + strings.Join(updates, ", ")
}

func selectQuery() squirrel.SelectBuilder {
	return psqlbuilder.Select(columns...).
		From(table).
		OrderBy("movie_name", "theatre_name")
}

func searchQuery(movieName string) squirrel.SelectBuilder {
	pattern := "%" + likeEscaper.Replace(strings.TrimSpace(movieName)) + "%"
	return selectQuery().Where(squirrel.ILike{"movie_name": pattern})
}

func deleteQuery(key domain.MovieKey) squirrel.DeleteBuilder {
	return psqlbuilder.Delete(table).Where(squirrel.Eq{
		"movie_name":   key.MovieName,
		"theatre_name": key.TheatreName,
	})
}

func scanMovie(row rowScanner) (domain.Movie, error) {
	var (
		m                              domain.Movie
		totalTickets, availableTickets sql.NullInt64
		duration                       sql.NullInt64
		rating, ticketPrice            sql.NullFloat64
		showTimes                      pq.StringArray
	)

	err := row.Scan(
		&m.MovieName,
		&m.TheatreName,
		&m.ID,
		&totalTickets,
		&availableTickets,
		&showTimes,
		&m.Status,
		&m.Description,
		&m.Genre,
		&m.Language,
		&duration,
		&rating,
		&ticketPrice,
		&m.PosterURL,
		&m.ReleaseDate,
		&m.CreatedDate,
		&m.ModifiedDate,
	)
	if err != nil {
		return domain.Movie{}, err
	}

	m.TotalTickets = nullInt(totalTickets)
	m.AvailableTickets = nullInt(availableTickets)
	m.Duration = nullInt(duration)
	m.Rating = nullFloat(rating)
	m.TicketPrice = nullFloat(ticketPrice)
	m.ShowTimes = nonNil([]string(showTimes))

	return m, nil
}

func nullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
