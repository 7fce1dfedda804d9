package repository

// Repos agrupa los repositorios atados a una misma transacción.
type Repos struct {
	Users    UserRepository
	Cars     CarRepository
	Treasury TreasuryRepository
	Entries  LedgerEntryRepository
}
