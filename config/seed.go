package config

import (
	"context"
	"time"

	"github.com/si-gho/pijar-pro-inventory/models"
	"github.com/si-gho/pijar-pro-inventory/service"
)

type seedTrx struct {
	username string
	item     string
	trxType  models.TrxType
	qty      int
	date     time.Time
}

// SeedDatabase mengisi data contoh: user, master barang, dan transaksi awal.
// Idempotent: tidak melakukan apa-apa jika sudah ada user.
// Transaksi di-replay lewat ledger service supaya stock_qty konsisten dengan
// log transaksi.
func SeedDatabase(ctx context.Context) error {
	var count int64
	if err := DB.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		GetLogger().Info("seed dilewati: data sudah ada")
		return nil
	}

	users := []models.User{
		{Username: "ahmad_fauzi", FullName: "Ir. Ahmad Fauzi", Role: "supervisor"},
		{Username: "budi_santoso", FullName: "Drs. Budi Santoso", Role: "supervisor"},
		{Username: "operator1", FullName: "Operator Gudang 1", Role: "operator"},
	}
	if err := DB.Create(&users).Error; err != nil {
		return err
	}

	items := []models.Inventory{
		{ItemName: "Semen Tonasa 40kg", Description: "Semen berkualitas tinggi untuk konstruksi"},
		{ItemName: "Besi Beton 10mm", Description: "Besi beton diameter 10mm untuk struktur"},
		{ItemName: "Pasir Cor", Description: "Pasir halus untuk campuran beton"},
		{ItemName: "Cat Tembok Nippon", Description: "Cat tembok interior berkualitas"},
		{ItemName: "Keramik 40x40", Description: "Keramik lantai Roman Granit warna abu-abu"},
	}
	for i := range items {
		items[i].MaxStock = service.DefaultMaxStock
	}
	if err := DB.Create(&items).Error; err != nil {
		return err
	}

	svc := service.NewService(DB)

	// transaksi keluar didahului masuk supaya guard stok lolos
	trxs := []seedTrx{
		{"ahmad_fauzi", "Semen Tonasa 40kg", models.TrxMasuk, 500, date("2025-09-28T08:30:00")},
		{"ahmad_fauzi", "Besi Beton 10mm", models.TrxMasuk, 300, date("2025-09-28T09:00:00")},
		{"ahmad_fauzi", "Besi Beton 10mm", models.TrxKeluar, 200, date("2025-09-28T10:15:00")},
		{"budi_santoso", "Pasir Cor", models.TrxMasuk, 15, date("2025-09-29T09:00:00")},
		{"ahmad_fauzi", "Cat Tembok Nippon", models.TrxMasuk, 50, date("2025-09-29T11:00:00")},
		{"ahmad_fauzi", "Cat Tembok Nippon", models.TrxKeluar, 30, date("2025-09-29T14:30:00")},
		{"budi_santoso", "Keramik 40x40", models.TrxMasuk, 800, date("2025-09-30T07:45:00")},
	}
	for _, t := range trxs {
		if _, err := svc.RecordTransaction(ctx, service.RecordTransactionInput{
			Name:     t.item,
			Type:     t.trxType,
			Quantity: t.qty,
			Date:     t.date,
			Username: t.username,
		}); err != nil {
			return err
		}
	}

	GetLogger().Info("seed selesai")
	return nil
}

func date(s string) time.Time {
	t, _ := time.Parse("2006-01-02T15:04:05", s)
	return t
}
