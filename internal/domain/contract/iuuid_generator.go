package contract

// IUUIDGenerator abstracts id generation so usecases stay deterministic in
// tests.
type IUUIDGenerator interface {
	NewUUID() string
}
