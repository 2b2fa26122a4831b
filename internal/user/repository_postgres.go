package user

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

const (
	createUsersTable = `
		CREATE TABLE IF NOT EXISTS users (
			"userId" SERIAL PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			"firstName" TEXT,
			"lastName" TEXT,
			phone TEXT,
			gender TEXT,
			"createdAt" TEXT,
			"updatedAt" TEXT
		)`
	selectUser = `
		SELECT "userId", email, password, "firstName", "lastName", phone, gender, "createdAt", "updatedAt"
		FROM users`
	insertUser = `
		INSERT INTO users (email, password, "firstName", "lastName", phone, gender, "createdAt", "updatedAt")
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING "userId"`
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// EnsureSchema creates the users table when it does not exist yet.
func (r *PostgresRepository) EnsureSchema() error {
	_, err := r.db.Exec(createUsersTable)
	return err
}

func (r *PostgresRepository) FindByID(id int) (User, error) {
	return r.findOne(selectUser+` WHERE "userId" = $1`, id)
}

func (r *PostgresRepository) FindByEmail(email string) (User, error) {
	return r.findOne(selectUser+` WHERE email = $1`, email)
}

func (r *PostgresRepository) findOne(query string, arg any) (User, error) {
	var (
		u                                  User
		firstName, lastName, phone, gender sql.NullString
		createdAt, updatedAt               sql.NullString
	)
	err := r.db.QueryRow(query, arg).Scan(
		&u.ID, &u.Email, &u.PasswordHash,
		&firstName, &lastName, &phone, &gender,
		&createdAt, &updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, err
	}
	u.FirstName, u.LastName = firstName.String, lastName.String
	u.Phone, u.Gender = phone.String, gender.String
	u.CreatedAt, u.UpdatedAt = createdAt.String, updatedAt.String
	return u, nil
}

func (r *PostgresRepository) Insert(u User) (User, error) {
	err := r.db.QueryRow(insertUser,
		u.Email, u.PasswordHash, u.FirstName, u.LastName, u.Phone, u.Gender, u.CreatedAt, u.UpdatedAt,
	).Scan(&u.ID)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return User{}, ErrEmailExists
	}
	if err != nil {
		return User{}, err
	}
	return u, nil
}
