package core

import "errors"

var (
	// ErrAlreadyInitialized initialize called twice
	ErrAlreadyInitialized = errors.New("already initialized")
	// ErrNotInitialized operation before initialize
	ErrNotInitialized = errors.New("not initialized")
	// ErrUnauthorized caller is not the owner
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidAsset wrong token supplied
	ErrInvalidAsset = errors.New("invalid asset")
	// ErrInvalidAmount non-positive amount
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInsufficientCollateral borrow would breach the loan ratio
	ErrInsufficientCollateral = errors.New("insufficient collateral")
	// ErrTransferFailed token ledger rejected the transfer
	ErrTransferFailed = errors.New("transfer failed")
	// ErrOracleUnavailable price feed cannot answer
	ErrOracleUnavailable = errors.New("oracle unavailable")
	// ErrStalePrice price feed data too old
	ErrStalePrice = errors.New("stale price")
)
