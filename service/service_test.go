package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/si-gho/pijar-pro-inventory/models"
)

func newTestService(t *testing.T) Service {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Inventory{}, &models.Transaction{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}

	users := []models.User{
		{Username: "ahmad_fauzi", FullName: "Ir. Ahmad Fauzi", Role: "supervisor"},
		{Username: DefaultOperator, FullName: "Operator Gudang 1", Role: "operator"},
	}
	if err := db.Create(&users).Error; err != nil {
		t.Fatalf("seed users: %v", err)
	}

	return NewService(db)
}

func mustRecord(t *testing.T, svc Service, name string, trxType models.TrxType, qty int) TransactionView {
	t.Helper()
	view, err := svc.RecordTransaction(context.Background(), RecordTransactionInput{
		Name:     name,
		Type:     trxType,
		Quantity: qty,
		Date:     time.Date(2025, 9, 28, 8, 30, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("record %s %s %d: %v", name, trxType, qty, err)
	}
	return view
}

func TestRecordTransactionScenario(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	item, err := svc.CreateMasterItem(ctx, CreateItemInput{ItemName: "Semen"})
	if err != nil {
		t.Fatalf("create item: %v", err)
	}
	if item.StockQty != 0 {
		t.Fatalf("new item stock = %d, want 0", item.StockQty)
	}

	view := mustRecord(t, svc, "Semen", models.TrxMasuk, 500)
	if view.StockQty != 500 {
		t.Fatalf("stock after masuk 500 = %d, want 500", view.StockQty)
	}

	view = mustRecord(t, svc, "Semen", models.TrxKeluar, 200)
	if view.StockQty != 300 {
		t.Fatalf("stock after keluar 200 = %d, want 300", view.StockQty)
	}

	_, err = svc.RecordTransaction(ctx, RecordTransactionInput{
		Name:     "Semen",
		Type:     models.TrxKeluar,
		Quantity: 400,
		Date:     time.Now(),
	})
	var serr *InsufficientStockError
	if !errors.As(err, &serr) {
		t.Fatalf("keluar 400: err = %v, want InsufficientStockError", err)
	}
	if serr.Available != 300 || serr.Requested != 400 {
		t.Fatalf("error carries %d/%d, want 300/400", serr.Available, serr.Requested)
	}

	// transaksi gagal tidak boleh mengubah saldo
	stock, err := svc.CurrentStock(ctx, item.ID)
	if err != nil {
		t.Fatalf("current stock: %v", err)
	}
	if stock != 300 {
		t.Fatalf("stock after failed keluar = %d, want 300", stock)
	}
}

func TestStockEqualsSignedSum(t *testing.T) {
	svc := newTestService(t)

	steps := []struct {
		trxType models.TrxType
		qty     int
	}{
		{models.TrxMasuk, 100},
		{models.TrxKeluar, 40},
		{models.TrxMasuk, 7},
		{models.TrxKeluar, 67},
		{models.TrxMasuk, 1},
	}

	sum := 0
	var last TransactionView
	for _, s := range steps {
		last = mustRecord(t, svc, "Pasir Cor", s.trxType, s.qty)
		if s.trxType == models.TrxMasuk {
			sum += s.qty
		} else {
			sum -= s.qty
		}
	}
	if last.StockQty != sum {
		t.Fatalf("stock = %d, want signed sum %d", last.StockQty, sum)
	}
}

func TestRecordTransactionUnknownItem(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// keluar terhadap barang tak dikenal selalu ditolak
	_, err := svc.RecordTransaction(ctx, RecordTransactionInput{
		Name:     "Barang Misterius",
		Type:     models.TrxKeluar,
		Quantity: 1,
		Date:     time.Now(),
	})
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("keluar unknown: err = %v, want ErrItemNotFound", err)
	}

	// masuk membuat master baru dengan saldo = qty transaksi
	view := mustRecord(t, svc, "Barang Misterius", models.TrxMasuk, 25)
	if view.StockQty != 25 {
		t.Fatalf("stock of auto-created item = %d, want 25", view.StockQty)
	}

	items, err := svc.ListItems(ctx)
	if err != nil {
		t.Fatalf("list items: %v", err)
	}
	if len(items) != 1 || items[0].ItemName != "Barang Misterius" {
		t.Fatalf("auto-created item missing from master list: %v", items)
	}
}

func TestRecordTransactionValidation(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.RecordTransaction(context.Background(), RecordTransactionInput{
		Name:     "",
		Type:     "pinjam",
		Quantity: 0,
	})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	for _, field := range []string{"name", "type", "quantity", "date"} {
		if _, ok := verr.Fields[field]; !ok {
			t.Fatalf("missing field %q in %v", field, verr.Fields)
		}
	}
}

func TestRecordTransactionUnknownUser(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.RecordTransaction(context.Background(), RecordTransactionInput{
		Name:     "Semen",
		Type:     models.TrxMasuk,
		Quantity: 1,
		Date:     time.Now(),
		Username: "tidak_ada",
	})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}

func TestCreateMasterItemDuplicate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.CreateMasterItem(ctx, CreateItemInput{ItemName: "Keramik 40x40"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := svc.CreateMasterItem(ctx, CreateItemInput{ItemName: "Keramik 40x40"})
	if !errors.Is(err, ErrDuplicateItem) {
		t.Fatalf("second create: err = %v, want ErrDuplicateItem", err)
	}

	// pencocokan nama case-sensitive: varian kapital bukan duplikat
	if _, err := svc.CreateMasterItem(ctx, CreateItemInput{ItemName: "KERAMIK 40x40"}); err != nil {
		t.Fatalf("case variant: %v", err)
	}
}

func TestCreateMasterItemValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		in    CreateItemInput
		field string
	}{
		{"empty name", CreateItemInput{ItemName: ""}, "item_name"},
		{"name too long", CreateItemInput{ItemName: strings.Repeat("a", 256)}, "item_name"},
		{"invalid characters", CreateItemInput{ItemName: "Semen @40kg!"}, "item_name"},
		{"description too long", CreateItemInput{ItemName: "Semen", Description: strings.Repeat("x", 501)}, "description"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateMasterItem(ctx, tt.in)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("err = %v, want ValidationError", err)
			}
			if _, ok := verr.Fields[tt.field]; !ok {
				t.Fatalf("missing field %q in %v", tt.field, verr.Fields)
			}
		})
	}

	// karakter dari allow-list harus lolos
	if _, err := svc.CreateMasterItem(ctx, CreateItemInput{ItemName: "Besi Beton 10mm (SNI), grade-B_2.5"}); err != nil {
		t.Fatalf("allow-listed characters rejected: %v", err)
	}
}

func TestCurrentStockUnknownItem(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CurrentStock(context.Background(), 9999)
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("err = %v, want ErrItemNotFound", err)
	}
}

func TestListTransactionsJoinedView(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	older := time.Date(2025, 9, 28, 8, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 9, 29, 8, 0, 0, 0, time.UTC)

	if _, err := svc.RecordTransaction(ctx, RecordTransactionInput{
		Name: "Semen", Type: models.TrxMasuk, Quantity: 10, Date: older, Username: "ahmad_fauzi",
	}); err != nil {
		t.Fatalf("record older: %v", err)
	}
	if _, err := svc.RecordTransaction(ctx, RecordTransactionInput{
		Name: "Semen", Type: models.TrxKeluar, Quantity: 4, Date: newer, Username: "ahmad_fauzi",
	}); err != nil {
		t.Fatalf("record newer: %v", err)
	}

	rows, err := svc.ListTransactions(ctx)
	if err != nil {
		t.Fatalf("list transactions: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	// urut tanggal menurun
	if rows[0].Type != models.TrxKeluar || rows[1].Type != models.TrxMasuk {
		t.Fatalf("rows not ordered by date desc: %v", rows)
	}

	first := rows[0]
	if first.Name != "Semen" || first.Quantity != 4 {
		t.Fatalf("joined fields wrong: %+v", first)
	}
	if first.Project != "Ir. Ahmad Fauzi" || first.Supervisor != "Ir. Ahmad Fauzi" {
		t.Fatalf("user join wrong: %+v", first)
	}
	if first.StockQty != 6 {
		t.Fatalf("stock in view = %d, want 6", first.StockQty)
	}
}

func TestCreateUserDefaultsRole(t *testing.T) {
	svc := newTestService(t)

	user, err := svc.CreateUser(context.Background(), CreateUserInput{
		Username: "siti_r",
		FullName: "Siti Rahma",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if user.Role != "operator" {
		t.Fatalf("role = %q, want operator", user.Role)
	}
}
