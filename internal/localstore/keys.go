package localstore

// Persisted keys. Names are kept identical to the keys the POS UI writes so a
// data directory survives either side reading it.
const (
	KeyAuthToken       = "pos_auth_token"
	KeyUser            = "pos_user"
	KeyLastTransaction = "last_transaction"
	KeySettingsStore   = "settings_store"
	KeySettingsPrinter = "settings_printer"
	KeySettingsStaff   = "settings_staff"
	KeySettingsNotif   = "settings_notif"
)
