package seeder

import "errors"

var (
	ErrEmptyConnectionString = errors.New("empty postgres connection string")
	ErrInvalidTableName      = errors.New("invalid fixture table name")
	ErrFailedToParseConfig   = errors.New("failed to parse postgres config")
	ErrFailedToConnect       = errors.New("failed to connect to postgres")
	ErrFailedToEnsureSchema  = errors.New("failed to create fixture table")
	ErrFailedToSeed          = errors.New("failed to insert fixture rows")
)
