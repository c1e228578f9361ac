package models

import "time"

type TrxType string

const (
	TrxMasuk  TrxType = "masuk"
	TrxKeluar TrxType = "keluar"
)

func (t TrxType) Valid() bool {
	return t == TrxMasuk || t == TrxKeluar
}

// Transaction adalah satu kejadian pergerakan barang. Baris transaksi
// immutable: tidak ada jalur update/delete setelah tercatat.
type Transaction struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null"   json:"user_id"`
	User   User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user"`

	InventoryID uint      `gorm:"not null" json:"inventory_id"`
	Inventory   Inventory `gorm:"foreignKey:InventoryID;constraint:OnDelete:CASCADE" json:"inventory"`

	TrxType   TrxType   `gorm:"type:varchar(10);not null" json:"trx_type"`
	Qty       int       `gorm:"not null"                  json:"qty"`
	TrxDate   time.Time `gorm:"not null"                  json:"trx_date"`
	CreatedAt time.Time `json:"created_at"`
}
