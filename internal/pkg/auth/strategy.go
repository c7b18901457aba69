package auth

import "time"

// Strategy issues and verifies bearer tokens identifying a customer.
type Strategy interface {
	IssueToken(customerID int64) (string, error)
	ParseToken(token string) (int64, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
