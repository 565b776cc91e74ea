package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"foodtrace/contexts/identity-access/directory-service/domain/entities"
	domainerrors "foodtrace/contexts/identity-access/directory-service/domain/errors"
	"foodtrace/internal/shared/roles"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{db: db, logger: logger}
}

// Migrate creates the participants table.
func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(&participantModel{})
}

func (r *Repository) Upsert(ctx context.Context, record entities.ParticipantRecord) error {
	row := modelFromRecord(record)
	err := r.db.WithContext(ctx).Create(&row).Error
	if err == nil {
		return nil
	}
	if !isUniqueViolation(err) {
		return err
	}

	// Replace the existing record for this wallet address wholesale.
	result := r.db.WithContext(ctx).
		Model(&participantModel{}).
		Where("wallet_address = ?", row.WalletAddress).
		Select("*").
		Omit("id", "created_at").
		Updates(row)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrParticipantNotFound
	}
	return nil
}

func (r *Repository) Lookup(ctx context.Context, address string) (entities.ParticipantRecord, error) {
	var row participantModel
	err := r.db.WithContext(ctx).
		Where("wallet_address = ?", entities.NormalizeAddress(address)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.ParticipantRecord{}, domainerrors.ErrParticipantNotFound
		}
		return entities.ParticipantRecord{}, err
	}
	return row.toRecord(), nil
}

func (r *Repository) List(ctx context.Context) ([]entities.ParticipantRecord, error) {
	var rows []participantModel
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	records := make([]entities.ParticipantRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.toRecord())
	}
	return records, nil
}

type participantModel struct {
	ID             uint   `gorm:"primaryKey"`
	RegistrationID string `gorm:"size:64"`
	WalletAddress  string `gorm:"size:42;uniqueIndex"`
	Role           string `gorm:"size:16"`
	Name           string
	BusinessName   string
	BusinessType   string
	LicenseNumber  string
	Email          string
	Phone          string
	Country        string
	State          string
	City           string
	ZipCode        string
	RegisteredAt   time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (participantModel) TableName() string { return "participants" }

func modelFromRecord(record entities.ParticipantRecord) participantModel {
	return participantModel{
		RegistrationID: record.RegistrationID,
		WalletAddress:  entities.NormalizeAddress(record.WalletAddress),
		Role:           record.Role.String(),
		Name:           record.Name,
		BusinessName:   record.BusinessName,
		BusinessType:   record.BusinessType,
		LicenseNumber:  record.LicenseNumber,
		Email:          record.Email,
		Phone:          record.Phone,
		Country:        record.Location.Country,
		State:          record.Location.State,
		City:           record.Location.City,
		ZipCode:        record.Location.ZipCode,
		RegisteredAt:   record.RegisteredAt,
	}
}

func (m participantModel) toRecord() entities.ParticipantRecord {
	role, _ := roles.Parse(m.Role)
	return entities.ParticipantRecord{
		RegistrationID: m.RegistrationID,
		WalletAddress:  m.WalletAddress,
		Role:           role,
		Name:           m.Name,
		BusinessName:   m.BusinessName,
		BusinessType:   m.BusinessType,
		LicenseNumber:  m.LicenseNumber,
		Email:          m.Email,
		Phone:          m.Phone,
		Location: entities.Location{
			Country: m.Country,
			State:   m.State,
			City:    m.City,
			ZipCode: m.ZipCode,
		},
		RegisteredAt: m.RegisteredAt,
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
