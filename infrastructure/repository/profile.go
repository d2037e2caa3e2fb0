package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/dumar-app/dumar-api/infrastructure/database/postgres"
	"github.com/dumar-app/dumar-api/internal/domain"
)

const profilesTable = "profiles"

type ProfileRepository interface {
	CreateProfile(profile *domain.Profile) (*domain.Profile, error)
	GetProfileByEmail(email string) (*domain.Profile, error)
	GetProfileByID(profileID string) (*domain.Profile, error)
	SavePin(profileID, pin string, sentAt time.Time) error
	MarkPinVerified(profileID string) error
}

type profileRepository struct {
	conn *postgres.Connection
}

func NewProfileRepository(conn *postgres.Connection) ProfileRepository {
	return &profileRepository{
		conn: conn,
	}
}

func (r *profileRepository) CreateProfile(profile *domain.Profile) (*domain.Profile, error) {
	queryBuilder := squirrel.
		Insert(profilesTable).
		Columns("id", "email", "password_hash", "phone", "pin", "pin_sent_at", "pin_verified", "active").
		Values(profile.ID, profile.Email, profile.PasswordHash, profile.Phone, profile.Pin, profile.PinSentAt, profile.PinVerified, profile.Active).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	profileSQL, profileArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(profileSQL, profileArgs...).Scan(&profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return profile, nil
}

func (r *profileRepository) GetProfileByEmail(email string) (*domain.Profile, error) {
	var profile domain.Profile
	err := r.conn.QueryRow(
		"SELECT id, email, password_hash, phone, pin, pin_sent_at, pin_verified, active, created_at, updated_at FROM profiles WHERE email = $1",
		email,
	).Scan(
		&profile.ID,
		&profile.Email,
		&profile.PasswordHash,
		&profile.Phone,
		&profile.Pin,
		&profile.PinSentAt,
		&profile.PinVerified,
		&profile.Active,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *profileRepository) GetProfileByID(profileID string) (*domain.Profile, error) {
	var profile domain.Profile
	err := r.conn.QueryRow(
		"SELECT id, email, password_hash, phone, pin, pin_sent_at, pin_verified, active, created_at, updated_at FROM profiles WHERE id = $1",
		profileID,
	).Scan(
		&profile.ID,
		&profile.Email,
		&profile.PasswordHash,
		&profile.Phone,
		&profile.Pin,
		&profile.PinSentAt,
		&profile.PinVerified,
		&profile.Active,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *profileRepository) SavePin(profileID, pin string, sentAt time.Time) error {
	queryBuilder := squirrel.
		Update(profilesTable).
		Set("pin", pin).
		Set("pin_sent_at", sentAt).
		Set("pin_verified", false).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": profileID}).
		PlaceholderFormat(squirrel.Dollar)

	profileSQL, profileArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(profileSQL, profileArgs...)
	return err
}

func (r *profileRepository) MarkPinVerified(profileID string) error {
	queryBuilder := squirrel.
		Update(profilesTable).
		Set("pin_verified", true).
		Set("active", true).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": profileID}).
		PlaceholderFormat(squirrel.Dollar)

	profileSQL, profileArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(profileSQL, profileArgs...)
	return err
}
