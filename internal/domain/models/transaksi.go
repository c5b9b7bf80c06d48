package models

import "time"

// Transaction kinds.
const (
	JenisPemasukan   = "Pemasukan"
	JenisPengeluaran = "Pengeluaran"
)

// Transaksi is one ledger entry. Nominal is a non-negative rupiah amount;
// the sign comes from Jenis (+ for Pemasukan, - for Pengeluaran).
type Transaksi struct {
	BaseModel
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	Jenis      string    `gorm:"type:varchar(15);not null;index" json:"jenis"`
	Nominal    int64     `gorm:"not null" json:"nominal"`
	Keterangan string    `gorm:"type:varchar(255)" json:"keterangan"`
	Tanggal    time.Time `gorm:"not null;index" json:"tanggal"`

	// Relations
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName overrides the default pluralization.
func (Transaksi) TableName() string {
	return "transaksi"
}

// Signed returns the contribution of the entry to a running balance.
func (t *Transaksi) Signed() int64 {
	if t.Jenis == JenisPengeluaran {
		return -t.Nominal
	}
	return t.Nominal
}
