package errs

import "errors"

// Sentinel errors shared by the usecase and handler layers
var (
	// Lookup errors
	ErrReservationNotFound    = errors.New("reservation not found")
	ErrRoomNotFound           = errors.New("room not found")
	ErrLoyaltyAccountNotFound = errors.New("loyalty account not found")
	ErrGuestNotFound          = errors.New("guest not found")

	// Loyalty linkage errors
	ErrLoyaltyAccountRequired = errors.New("loyalty account required to redeem points")
	ErrLoyaltyAccountMismatch = errors.New("loyalty account belongs to another guest")

	// Conflict errors
	ErrRoomNumberTaken              = errors.New("room number already exists")
	ErrConfirmationNumbersExhausted = errors.New("could not allocate a unique confirmation number")
	ErrLoyaltyNumbersExhausted      = errors.New("could not allocate a unique loyalty number")

	// Auth errors
	ErrStaffRequired = errors.New("staff authentication required")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
