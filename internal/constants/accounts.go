package constants

const (
	MaxUsernameLen = 64
	SignupBonus    = "100.00"
	CurrencySymbol = "$"
	AmountPlaces   = 2
)

const (
	AppName          = "campuspay"
	DefaultUsersFile = "users.json"
	DefaultTxFile    = "transactions.txt"
	DefaultDBFile    = "campuspay.db"
	DriverJSON       = "json"
	DriverSQLite     = "sqlite"
)

const (
	SnapshotIndent     = "  "
	DataFilePermission = 0644
	DataDirPermission  = 0755
)
