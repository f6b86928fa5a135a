package store

// DB is the key/value storage interface the tracker persists into. Get
// returns a nil slice and no error when the key is absent.
type DB interface {
	// Get retrieves the value stored under key
	Get(key string) ([]byte, error)
	// Set stores value under key, overwriting any previous value
	Set(key string, value []byte) error
	// Clear removes every key
	Clear() error
	// Close ends the database connection
	Close() error
}
