package models

// Household roles on a KK (kartu keluarga).
const (
	PeranKepalaKeluarga = "Kepala Keluarga"
	PeranIstri          = "Istri"
	PeranAnak           = "Anak"
)

// Marital statuses.
const (
	StatusMenikah = "Menikah"
	StatusCerai   = "Cerai"
	StatusLajang  = "Lajang"
)

// Sexes.
const (
	JenisKelaminLaki      = "Laki-laki"
	JenisKelaminPerempuan = "Perempuan"
)

// Warga represents one resident record. Membership in a household is not a
// stored relation: records sharing NoKK form one family at query time.
type Warga struct {
	BaseModel
	Nama         string `gorm:"type:varchar(100);not null;index" json:"nama"`
	NIK          string `gorm:"type:varchar(16);not null;uniqueIndex" json:"nik"`
	NoKK         string `gorm:"type:varchar(16);not null;index" json:"no_kk"`
	TglLahir     string `gorm:"type:varchar(10);not null" json:"tgl_lahir"` // YYYY-MM-DD
	TempatLahir  string `gorm:"type:varchar(100)" json:"tempat_lahir"`
	JenisKelamin string `gorm:"type:varchar(20);default:'Laki-laki'" json:"jenis_kelamin"`
	Agama        string `gorm:"type:varchar(30);default:'Islam'" json:"agama"`
	Pendidikan   string `gorm:"type:varchar(30);default:'SMA/Sederajat'" json:"pendidikan"`
	Pekerjaan    string `gorm:"type:varchar(100)" json:"pekerjaan"`
	Peran        string `gorm:"type:varchar(20);not null;default:'Anak'" json:"peran"`
	Status       string `gorm:"type:varchar(10);not null;default:'Lajang'" json:"status"`
	Alamat       string `gorm:"type:varchar(200)" json:"alamat"`
	RT           string `gorm:"type:varchar(2)" json:"rt"`
	RW           string `gorm:"type:varchar(2)" json:"rw"`
}

// TableName overrides the default pluralization.
func (Warga) TableName() string {
	return "warga"
}
