package store

// FileStore is the default driver: users.json plus transactions.txt.
type FileStore struct {
	*JSONAccountStore
	*TextTransactionLog
}

func NewFileStore(usersPath, txPath string) *FileStore {
	return &FileStore{
		JSONAccountStore:   NewJSONAccountStore(usersPath),
		TextTransactionLog: NewTextTransactionLog(txPath),
	}
}

func (s *FileStore) Close() error {
	return nil
}
