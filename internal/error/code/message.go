package code

// User-facing messages per error code (Bahasa Indonesia).
var codeMessageMap = map[int]string{
	// Generic
	ErrSuccess:          "Berhasil",
	ErrUnknown:          "Terjadi kesalahan yang tidak diketahui",
	ErrBind:             "Parameter permintaan tidak valid",
	ErrValidation:       "Validasi permintaan gagal",
	ErrTokenInvalid:     "Token autentikasi tidak valid",
	ErrTooManyRequests:  "Permintaan terlalu sering, coba lagi nanti",
	ErrPermissionDenied: "Akses ditolak: perlu hak operator",

	// User
	ErrUserNotFound:          "Pengguna tidak ditemukan",
	ErrUserAlreadyExist:      "Pengguna sudah terdaftar",
	ErrUserPasswordIncorrect: "Password salah",

	// Warga
	ErrWargaNotFound:  "Data warga tidak ditemukan",
	ErrWargaNIKExists: "NIK sudah terdaftar",
	ErrWargaInvalid:   "Data warga tidak valid",

	// Keluarga
	ErrKeluargaNotFound: "Data keluarga tidak ditemukan",
	ErrKeluargaInvalid:  "Data keluarga tidak valid",

	// Transaksi
	ErrTransaksiNotFound: "Transaksi tidak ditemukan",
	ErrTransaksiInvalid:  "Data transaksi tidak valid",

	// Laporan
	ErrLaporanEmpty:  "Belum ada data untuk diekspor",
	ErrLaporanRender: "Gagal membuat berkas laporan",

	// Database
	ErrDatabase:       "Kesalahan basis data",
	ErrRecordNotFound: "Data tidak ditemukan",
}

// HTTP status per error code.
var codeStatusMap = map[int]int{
	// Generic
	ErrSuccess:          StatusOK,
	ErrUnknown:          StatusInternalServerError,
	ErrBind:             StatusBadRequest,
	ErrValidation:       StatusBadRequest,
	ErrTokenInvalid:     StatusUnauthorized,
	ErrTooManyRequests:  StatusTooManyRequests,
	ErrPermissionDenied: StatusForbidden,

	// User
	ErrUserNotFound:          StatusNotFound,
	ErrUserAlreadyExist:      StatusBadRequest,
	ErrUserPasswordIncorrect: StatusUnauthorized,

	// Warga
	ErrWargaNotFound:  StatusNotFound,
	ErrWargaNIKExists: StatusBadRequest,
	ErrWargaInvalid:   StatusBadRequest,

	// Keluarga
	ErrKeluargaNotFound: StatusNotFound,
	ErrKeluargaInvalid:  StatusBadRequest,

	// Transaksi
	ErrTransaksiNotFound: StatusNotFound,
	ErrTransaksiInvalid:  StatusBadRequest,

	// Laporan
	ErrLaporanEmpty:  StatusBadRequest,
	ErrLaporanRender: StatusInternalServerError,

	// Database
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage returns the message for an error code.
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "Terjadi kesalahan yang tidak diketahui"
}

// GetStatus returns the HTTP status for an error code.
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
