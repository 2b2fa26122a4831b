package address

import (
	"database/sql"
	"errors"
)

// PostgresRepository stores addresses in a dedicated table keyed by user.
// Column names are camelCase to match the rest of the schema.
type PostgresRepository struct {
	db *sql.DB
}

const (
	createAddressTable = `
        CREATE TABLE IF NOT EXISTS address (
            "addressID" SERIAL PRIMARY KEY,
            "userID" INT NOT NULL,
            name TEXT NOT NULL DEFAULT '',
            street TEXT NOT NULL DEFAULT '',
            city TEXT NOT NULL DEFAULT '',
            state TEXT NOT NULL DEFAULT '',
            country TEXT NOT NULL DEFAULT '',
            pincode TEXT NOT NULL DEFAULT '',
            phone TEXT NOT NULL DEFAULT '',
            "createdAt" TEXT,
            "updatedAt" TEXT
        )
    `
	selectAddressesQuery = `
        SELECT "addressID", "userID", name, street, city, state, country, pincode, phone, "createdAt", "updatedAt"
        FROM address WHERE "userID" = $1 ORDER BY "addressID"
    `
	insertAddressQuery = `
        INSERT INTO address ("userID", name, street, city, state, country, pincode, phone, "createdAt", "updatedAt")
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$9)
        RETURNING "addressID", "userID", name, street, city, state, country, pincode, phone, "createdAt", "updatedAt"
    `
	updateAddressQuery = `
        UPDATE address
        SET name=$3, street=$4, city=$5, state=$6, country=$7, pincode=$8, phone=$9, "updatedAt"=$10
        WHERE "userID"=$1 AND "addressID"=$2
        RETURNING "addressID", "userID", name, street, city, state, country, pincode, phone, "createdAt", "updatedAt"
    `
	deleteAddressQuery = `
        DELETE FROM address WHERE "userID"=$1 AND "addressID"=$2
    `
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// EnsureSchema creates the address table when it does not exist yet.
func (r *PostgresRepository) EnsureSchema() error {
	_, err := r.db.Exec(createAddressTable)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAddress(row rowScanner) (Address, error) {
	var (
		a                    Address
		createdAt, updatedAt sql.NullString
	)
	err := row.Scan(&a.ID, &a.UserID, &a.Name, &a.Street, &a.City, &a.State, &a.Country, &a.Pincode, &a.Phone, &createdAt, &updatedAt)
	a.CreatedAt = createdAt.String
	a.UpdatedAt = updatedAt.String
	return a, err
}

func (r *PostgresRepository) List(userID int) ([]Address, error) {
	if userID <= 0 {
		return nil, ErrNotFound
	}
	rows, err := r.db.Query(selectAddressesQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Address, 0)
	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Add(userID int, rec Record, now string) (Address, error) {
	a, err := scanAddress(r.db.QueryRow(insertAddressQuery, userID, rec.Name, rec.Street, rec.City, rec.State, rec.Country, rec.Pincode, rec.Phone, now))
	if errors.Is(err, sql.ErrNoRows) {
		return Address{}, ErrNotFound
	}
	return a, err
}

func (r *PostgresRepository) Update(userID int, rec Record, now string) (Address, error) {
	a, err := scanAddress(r.db.QueryRow(updateAddressQuery, userID, rec.ID, rec.Name, rec.Street, rec.City, rec.State, rec.Country, rec.Pincode, rec.Phone, now))
	if errors.Is(err, sql.ErrNoRows) {
		return Address{}, ErrNotFound
	}
	return a, err
}

func (r *PostgresRepository) Delete(userID int, addressID int) error {
	res, err := r.db.Exec(deleteAddressQuery, userID, addressID)
	if err != nil {
		return err
	}
	cnt, _ := res.RowsAffected()
	if cnt == 0 {
		return ErrNotFound
	}
	return nil
}
