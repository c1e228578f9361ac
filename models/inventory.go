package models

import "time"

// Inventory adalah master barang. StockQty adalah saldo berjalan hasil
// akumulasi transaksi (masuk menambah, keluar mengurangi) dan tidak boleh
// negatif.
type Inventory struct {
	ID          uint      `gorm:"primaryKey"           json:"id"`
	ItemName    string    `gorm:"uniqueIndex;size:255" json:"item_name"`
	Description string    `gorm:"size:500"             json:"description"`
	StockQty    int       `gorm:"not null;default:0"   json:"stock_qty"`
	MinStock    int       `gorm:"not null;default:0"   json:"min_stock"`
	MaxStock    int       `gorm:"not null;default:100" json:"max_stock"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Inventory) TableName() string { return "inventory" }
