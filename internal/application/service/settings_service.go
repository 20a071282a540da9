package service

import (
	"context"
	"strconv"

	"github.com/thangam/billing-api/internal/domain/entity"
	"github.com/thangam/billing-api/internal/domain/repository"
	"github.com/thangam/billing-api/internal/receipt"
	"github.com/thangam/billing-api/pkg/email"
)

// Receipt-facing defaults, applied when a key is absent from the store.
const (
	defaultStoreName    = "Thangam Stores"
	defaultFooter       = "Thank you for shopping!"
	defaultCharsPerLine = 48
	defaultLineSpacing  = "Normal"
	defaultPaperSize    = "80mm (48 chars)"
)

// SettingsService exposes the key/value settings store and builds typed
// configuration snapshots from it.
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// Get returns a setting value, or the provided default when unset.
func (s *SettingsService) Get(ctx context.Context, key, fallback string) (string, error) {
	value, ok, err := s.settingsRepo.Get(ctx, key)
	if err != nil {
		return "", err
	}
	if !ok {
		return fallback, nil
	}
	return value, nil
}

// Set stores a setting value.
func (s *SettingsService) Set(ctx context.Context, key, value string) error {
	return s.settingsRepo.Set(ctx, key, value)
}

// GetAll returns every stored setting.
func (s *SettingsService) GetAll(ctx context.Context) ([]entity.Setting, error) {
	return s.settingsRepo.GetAll(ctx)
}

// Update stores multiple settings.
func (s *SettingsService) Update(ctx context.Context, values map[string]string) error {
	for key, value := range values {
		if err := s.settingsRepo.Set(ctx, key, value); err != nil {
			return err
		}
	}
	return nil
}

// ReceiptConfig builds the explicit settings snapshot consumed by the
// receipt composer. Absent keys fall back to defaults; composition itself
// never reaches into the store.
func (s *SettingsService) ReceiptConfig(ctx context.Context) (receipt.Config, error) {
	cfg := receipt.Config{}

	var err error
	if cfg.StoreName, err = s.Get(ctx, entity.SettingStoreName, defaultStoreName); err != nil {
		return cfg, err
	}
	if cfg.StoreAddress, err = s.Get(ctx, entity.SettingStoreAddress, ""); err != nil {
		return cfg, err
	}
	if cfg.StorePhone, err = s.Get(ctx, entity.SettingStorePhone, ""); err != nil {
		return cfg, err
	}
	if cfg.FooterText, err = s.Get(ctx, entity.SettingReceiptFooter, defaultFooter); err != nil {
		return cfg, err
	}
	if cfg.PaperSize, err = s.Get(ctx, entity.SettingPaperSize, defaultPaperSize); err != nil {
		return cfg, err
	}

	chars, err := s.Get(ctx, entity.SettingCharsPerLine, strconv.Itoa(defaultCharsPerLine))
	if err != nil {
		return cfg, err
	}
	cfg.CharsPerLine, err = strconv.Atoi(chars)
	if err != nil || cfg.CharsPerLine <= 0 {
		cfg.CharsPerLine = defaultCharsPerLine
	}

	spacing, err := s.Get(ctx, entity.SettingLineSpacing, defaultLineSpacing)
	if err != nil {
		return cfg, err
	}
	cfg.LineSpacing = receipt.ParseSpacing(spacing)

	return cfg, nil
}

// SMTPConfig builds the mail configuration from the settings store.
func (s *SettingsService) SMTPConfig(ctx context.Context) (email.SMTPConfig, error) {
	cfg := email.SMTPConfig{}

	var err error
	if cfg.Host, err = s.Get(ctx, entity.SettingSMTPServer, ""); err != nil {
		return cfg, err
	}
	if cfg.Port, err = s.Get(ctx, entity.SettingSMTPPort, "587"); err != nil {
		return cfg, err
	}
	if cfg.Username, err = s.Get(ctx, entity.SettingSMTPUser, ""); err != nil {
		return cfg, err
	}
	if cfg.Password, err = s.Get(ctx, entity.SettingSMTPPass, ""); err != nil {
		return cfg, err
	}
	return cfg, nil
}
