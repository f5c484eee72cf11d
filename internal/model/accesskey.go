package model

// AccessKey is a credential that can be exchanged for a session token.
type AccessKey struct {
	ID    int64
	Key   string
	Label string
}
