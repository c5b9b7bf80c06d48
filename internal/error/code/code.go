package code

// HTTP status codes.
const (
	// StatusOK - 200: success.
	StatusOK = 200
	// StatusBadRequest - 400: bad request parameters.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: not authenticated.
	StatusUnauthorized = 401
	// StatusForbidden - 403: access denied.
	StatusForbidden = 403
	// StatusNotFound - 404: resource not found.
	StatusNotFound = 404
	// StatusInternalServerError - 500: internal server error.
	StatusInternalServerError = 500
	// StatusTooManyRequests - 429: too many requests.
	StatusTooManyRequests = 429
)

// Generic error codes (100xxx).
const (
	// ErrSuccess - 200: success.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: unknown error.
	ErrUnknown
	// ErrBind - 400: request binding error.
	ErrBind
	// ErrValidation - 400: request validation error.
	ErrValidation
	// ErrTokenInvalid - 401: invalid token.
	ErrTokenInvalid
	// ErrTooManyRequests - 429: request rate too high.
	ErrTooManyRequests
	// ErrPermissionDenied - 403: operator role required.
	ErrPermissionDenied
)

// User error codes (101xxx).
const (
	// ErrUserNotFound - 404: user not found.
	ErrUserNotFound int = iota + 101000
	// ErrUserAlreadyExist - 400: user already exists.
	ErrUserAlreadyExist
	// ErrUserPasswordIncorrect - 401: wrong password.
	ErrUserPasswordIncorrect
)

// Warga error codes (102xxx).
const (
	// ErrWargaNotFound - 404: warga not found.
	ErrWargaNotFound int = iota + 102000
	// ErrWargaNIKExists - 400: NIK already registered.
	ErrWargaNIKExists
	// ErrWargaInvalid - 400: warga data failed validation.
	ErrWargaInvalid
)

// Keluarga error codes (103xxx).
const (
	// ErrKeluargaNotFound - 404: no members under the KK number.
	ErrKeluargaNotFound int = iota + 103000
	// ErrKeluargaInvalid - 400: family payload failed validation.
	ErrKeluargaInvalid
)

// Transaksi error codes (104xxx).
const (
	// ErrTransaksiNotFound - 404: transaction not found.
	ErrTransaksiNotFound int = iota + 104000
	// ErrTransaksiInvalid - 400: transaction payload failed validation.
	ErrTransaksiInvalid
)

// Laporan error codes (105xxx).
const (
	// ErrLaporanEmpty - 400: nothing to export.
	ErrLaporanEmpty int = iota + 105000
	// ErrLaporanRender - 500: export rendering failed.
	ErrLaporanRender
)

// Database error codes (106xxx).
const (
	// ErrDatabase - 500: database error.
	ErrDatabase int = iota + 106000
	// ErrRecordNotFound - 404: record not found.
	ErrRecordNotFound
)
