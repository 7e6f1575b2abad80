package settings

import (
	"context"

	"github.com/arjunalabs/pos-backend/internal/apierr"
	"github.com/arjunalabs/pos-backend/internal/localstore"
	"github.com/arjunalabs/pos-backend/internal/monotime"
)

// Service owns the persisted settings objects. Each getter falls back to the
// fresh-install default when nothing (or garbage) is stored.
type Service interface {
	StoreInfo(ctx context.Context) StoreInfo
	SaveStoreInfo(ctx context.Context, info StoreInfo) error

	Printer(ctx context.Context) PrinterConfig
	SavePrinter(ctx context.Context, cfg PrinterConfig) error

	Notif(ctx context.Context) NotifConfig
	SaveNotif(ctx context.Context, cfg NotifConfig) error

	Staff(ctx context.Context) []Staff
	AddStaff(ctx context.Context, name, role, email string) (Staff, error)
	RemoveStaff(ctx context.Context, id int64) error

	ChangePassword(ctx context.Context, oldPass, newPass, confirm string) error
}

type service struct {
	store localstore.Store
}

func NewService(store localstore.Store) Service {
	return &service{store: store}
}

func (s *service) StoreInfo(ctx context.Context) StoreInfo {
	info := DefaultStoreInfo()
	if ok, _ := localstore.GetJSON(s.store, localstore.KeySettingsStore, &info); !ok {
		return DefaultStoreInfo()
	}
	return info
}

func (s *service) SaveStoreInfo(ctx context.Context, info StoreInfo) error {
	return localstore.SetJSON(s.store, localstore.KeySettingsStore, info)
}

func (s *service) Printer(ctx context.Context) PrinterConfig {
	cfg := DefaultPrinterConfig()
	if ok, _ := localstore.GetJSON(s.store, localstore.KeySettingsPrinter, &cfg); !ok {
		return DefaultPrinterConfig()
	}
	return cfg
}

func (s *service) SavePrinter(ctx context.Context, cfg PrinterConfig) error {
	if cfg.PaperSize != "58mm" && cfg.PaperSize != "80mm" {
		return apierr.Validation("paper_size must be 58mm or 80mm")
	}
	return localstore.SetJSON(s.store, localstore.KeySettingsPrinter, cfg)
}

func (s *service) Notif(ctx context.Context) NotifConfig {
	cfg := DefaultNotifConfig()
	if ok, _ := localstore.GetJSON(s.store, localstore.KeySettingsNotif, &cfg); !ok {
		return DefaultNotifConfig()
	}
	return cfg
}

func (s *service) SaveNotif(ctx context.Context, cfg NotifConfig) error {
	return localstore.SetJSON(s.store, localstore.KeySettingsNotif, cfg)
}

func (s *service) Staff(ctx context.Context) []Staff {
	var list []Staff
	if ok, _ := localstore.GetJSON(s.store, localstore.KeySettingsStaff, &list); !ok {
		return DefaultStaff()
	}
	return list
}

func (s *service) AddStaff(ctx context.Context, name, role, email string) (Staff, error) {
	if name == "" || email == "" {
		return Staff{}, apierr.Validation("name and email are required")
	}
	if role == "" {
		role = "Kasir"
	}
	member := Staff{ID: monotime.Next(), Name: name, Role: role, Email: email}
	list := append(s.Staff(ctx), member)
	if err := localstore.SetJSON(s.store, localstore.KeySettingsStaff, list); err != nil {
		return Staff{}, err
	}
	return member, nil
}

func (s *service) RemoveStaff(ctx context.Context, id int64) error {
	list := s.Staff(ctx)
	kept := list[:0]
	for _, m := range list {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(list) {
		return apierr.NotFound("no staff member with id %d", id)
	}
	return localstore.SetJSON(s.store, localstore.KeySettingsStaff, kept)
}

func (s *service) ChangePassword(ctx context.Context, oldPass, newPass, confirm string) error {
	if newPass != confirm {
		return apierr.Validation("password confirmation does not match")
	}
	if len(newPass) < 6 {
		return apierr.Validation("password must be at least 6 characters")
	}
	// No credential store exists behind the mock backend; a valid request
	// simply succeeds, mirroring the original behavior.
	return nil
}
